// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package prompt

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
)

func TestOutcome(t *testing.T) {
	boom := errors.New("tty gone")

	tests := []struct {
		name       string
		choice     string
		err        error
		wantChoice string
		wantOK     bool
		wantErr    error
	}{
		{"picked", "Symbol", nil, "Symbol", true, nil},
		{"aborted", "Symbol", huh.ErrUserAborted, "", false, nil},
		{"timed out", "", huh.ErrTimeout, "", false, nil},
		{"context canceled", "", fmt.Errorf("run: %w", context.Canceled), "", false, nil},
		{"failure", "", boom, "", false, boom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			choice, ok, err := outcome(tt.choice, tt.err)
			assert.Equal(t, tt.wantChoice, choice)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
