// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

// Selection is the editor selection. Positions are 0-based. IsEmpty is true
// when only a cursor is placed.
type Selection struct {
	Active  Position
	Start   Position
	End     Position
	IsEmpty bool
}

// CursorSelection returns an empty selection at pos.
func CursorSelection(pos Position) Selection {
	return Selection{Active: pos, Start: pos, End: pos, IsEmpty: true}
}

// EditorContext is what the host editor knows about the active document.
type EditorContext struct {
	FilePath        string    // Absolute path of the active document
	WorkspaceFolder string    // Absolute workspace folder containing the document; empty when none
	Selection       Selection // Current selection or cursor
}
