// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package reference

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/petar-djukic/go-coderef/pkg/types"
)

func TestFromSelection(t *testing.T) {
	tests := []struct {
		name string
		sel  types.Selection
		want types.ReferenceRange
	}{
		{
			name: "cursor on first line",
			sel:  types.CursorSelection(types.Position{Line: 0, Character: 4}),
			want: types.CursorAt(1),
		},
		{
			name: "cursor uses active line",
			sel: types.Selection{
				Active:  types.Position{Line: 41},
				Start:   types.Position{Line: 41},
				End:     types.Position{Line: 41},
				IsEmpty: true,
			},
			want: types.CursorAt(42),
		},
		{
			name: "multi-line selection",
			sel: types.Selection{
				Active: types.Position{Line: 9},
				Start:  types.Position{Line: 4},
				End:    types.Position{Line: 9},
			},
			want: types.SelectionOf(5, 10),
		},
		{
			name: "single-line selection is not collapsed",
			sel: types.Selection{
				Active: types.Position{Line: 9, Character: 8},
				Start:  types.Position{Line: 9, Character: 2},
				End:    types.Position{Line: 9, Character: 8},
			},
			want: types.ReferenceRange{Kind: types.SelectionRange, StartLine: 10, EndLine: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromSelection(tt.sel))
		})
	}
}

func TestSelectionOf_OrdersBounds(t *testing.T) {
	r := types.SelectionOf(10, 5)
	assert.Equal(t, 5, r.StartLine)
	assert.Equal(t, 10, r.EndLine)
}
