// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package reference turns an editor location into a code reference and
// renders it, optionally with a deep link into the hosted repository.
package reference

import "github.com/petar-djukic/go-coderef/pkg/types"

// FromSelection converts a 0-based editor selection into a 1-based range. A
// non-empty selection stays a selection even when it spans a single line.
func FromSelection(sel types.Selection) types.ReferenceRange {
	if sel.IsEmpty {
		return types.CursorAt(sel.Active.Line + 1)
	}
	return types.SelectionOf(sel.Start.Line+1, sel.End.Line+1)
}
