// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package reference

import (
	"fmt"
	"strings"

	"github.com/petar-djukic/go-coderef/pkg/types"
)

// Text renders the human-readable part of a reference: the symbol path, or
// the file path or name with or without lines. The path is relative to the
// workspace folder, not the git root; links use the git root path. symbol is
// only used for types.SymbolRef references.
func Text(ref types.Reference, includeRelativePath bool, symbol string) string {
	name := ref.FileName
	if includeRelativePath {
		name = ref.RelativePath
	}

	switch ref.Type {
	case types.SymbolRef:
		return symbol
	case types.FilenameWithLine:
		return name + ":" + ReferenceLineFragment(ref.Range)
	case types.FilenameNoLine:
		return name
	default:
		panic(fmt.Sprintf("reference: unknown reference type %q", ref.Type))
	}
}

// Compose joins the reference text, wrapped in backticks, and the source link,
// wrapped in parentheses. Empty parts are left out.
func Compose(text, link string) string {
	var parts []string
	if text != "" {
		parts = append(parts, surround(text, "`"))
	}
	if link != "" {
		parts = append(parts, "("+link+")")
	}
	return strings.Join(parts, " ")
}

func surround(s, with string) string {
	return with + s + with
}
