// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

// SymbolKind identifies the category of a code symbol.
type SymbolKind int

const (
	Function  SymbolKind = iota // Function declaration
	Method                      // Method declaration (has receiver or enclosing class)
	Class                       // Class or struct type declaration
	Interface                   // Interface type declaration
	Field                       // Struct field or class property
	Variable                    // Variable declaration
	Constant                    // Constant declaration
)

// String returns the human-readable name of the symbol kind.
func (k SymbolKind) String() string {
	switch k {
	case Function:
		return "Function"
	case Method:
		return "Method"
	case Class:
		return "Class"
	case Interface:
		return "Interface"
	case Field:
		return "Field"
	case Variable:
		return "Variable"
	case Constant:
		return "Constant"
	default:
		return "Unknown"
	}
}

// Position is a 0-based line and character offset in a document.
type Position struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}

// Before reports whether p comes strictly before other.
func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Character < other.Character
}

// Range is a span of positions from Start to End.
type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// Contains reports whether pos lies inside the range. The end position is
// included so a cursor placed after the last character still matches.
func (r Range) Contains(pos Position) bool {
	return !pos.Before(r.Start) && !r.End.Before(pos)
}

// Symbol is a node of a document outline. Children are ordered by position
// and nested inside the parent's range.
type Symbol struct {
	Name     string     `json:"name"`
	Kind     SymbolKind `json:"kind"`
	Range    Range      `json:"range"`
	Children []Symbol   `json:"children,omitempty"`
}
