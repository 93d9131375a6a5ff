// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package reference

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/petar-djukic/go-coderef/internal/config"
	"github.com/petar-djukic/go-coderef/pkg/types"
)

// TypePlaceholder is the prompt shown when the reference type must be chosen.
const TypePlaceholder = "Select reference type"

// maxTypePrompts bounds how often the user is asked again after picking a
// value that is not a reference type.
const maxTypePrompts = 2

// ErrNoChooser is returned when the configured reference type requires a
// prompt and no interactive chooser is available.
var ErrNoChooser = errors.New("no interactive chooser available")

// Chooser asks the user to pick one of choices. ok is false when the user
// cancels.
type Chooser interface {
	Choose(ctx context.Context, placeholder string, choices []string) (choice string, ok bool, err error)
}

// IsReferenceType reports whether value names one of types.ReferenceTypes.
func IsReferenceType(value string) bool {
	for _, t := range types.ReferenceTypes {
		if string(t) == value {
			return true
		}
	}
	return false
}

// ResolveType returns the reference type named by value, prompting through
// chooser when value is not a valid type. ok is false when the user cancels
// or keeps picking invalid values.
func ResolveType(ctx context.Context, chooser Chooser, value string) (types.ReferenceType, bool, error) {
	value = config.UpgradeLegacyRefType(value)
	if IsReferenceType(value) {
		return types.ReferenceType(value), true, nil
	}
	if chooser == nil {
		return "", false, fmt.Errorf("%w: reference type %q", ErrNoChooser, value)
	}

	choices := make([]string, len(types.ReferenceTypes))
	for i, t := range types.ReferenceTypes {
		choices[i] = string(t)
	}

	for range maxTypePrompts {
		choice, ok, err := chooser.Choose(ctx, TypePlaceholder, choices)
		if err != nil {
			return "", false, fmt.Errorf("choosing reference type: %w", err)
		}
		if !ok {
			return "", false, nil
		}

		choice = config.UpgradeLegacyRefType(choice)
		if IsReferenceType(choice) {
			return types.ReferenceType(choice), true, nil
		}
		zerolog.Ctx(ctx).Debug().Str("choice", choice).Msg("chooser returned an unknown reference type")
	}
	return "", false, nil
}
