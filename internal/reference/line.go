// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package reference

import (
	"fmt"
	"strconv"

	"github.com/petar-djukic/go-coderef/pkg/types"
)

// ReferenceLineFragment renders the range as "L" or "S-E".
func ReferenceLineFragment(r types.ReferenceRange) string {
	switch r.Kind {
	case types.CursorRange:
		return strconv.Itoa(r.Line)
	case types.SelectionRange:
		return fmt.Sprintf("%d-%d", r.StartLine, r.EndLine)
	default:
		panic(fmt.Sprintf("reference: unknown range kind %v", r.Kind))
	}
}

// ProviderLineFragment renders the URL suffix that highlights the reference's
// lines in the provider's file viewer. Azure's lineEnd is exclusive, so it is
// one past the last line.
func ProviderLineFragment(remote types.RemoteInfo, ref types.Reference) string {
	if !remote.Known() {
		return ""
	}

	switch ref.Range.Kind {
	case types.CursorRange:
		return providerCursorLine(remote.Provider, ref.Range.Line)
	case types.SelectionRange:
		return providerSelectionLines(remote.Provider, ref.Range.StartLine, ref.Range.EndLine)
	default:
		panic(fmt.Sprintf("reference: unknown range kind %v", ref.Range.Kind))
	}
}

func providerCursorLine(p types.GitProvider, line int) string {
	switch p {
	case types.ProviderGitHub, types.ProviderGitLab:
		return fmt.Sprintf("#L%d", line)
	case types.ProviderBitbucket:
		return fmt.Sprintf("#lines-%d", line)
	case types.ProviderAzure:
		return fmt.Sprintf("&line=%d&lineEnd=%d", line, line+1)
	case types.ProviderGeneric:
		return ""
	case types.ProviderUnknown:
		return ""
	default:
		panic(fmt.Sprintf("reference: unknown git provider %q", p))
	}
}

func providerSelectionLines(p types.GitProvider, start, end int) string {
	switch p {
	case types.ProviderGitHub:
		return fmt.Sprintf("#L%d-L%d", start, end)
	case types.ProviderGitLab:
		return fmt.Sprintf("#L%d-%d", start, end)
	case types.ProviderBitbucket:
		return fmt.Sprintf("#lines-%d:%d", start, end)
	case types.ProviderAzure:
		return fmt.Sprintf("&line=%d&lineEnd=%d", start, end+1)
	case types.ProviderGeneric:
		return ""
	case types.ProviderUnknown:
		return ""
	default:
		panic(fmt.Sprintf("reference: unknown git provider %q", p))
	}
}
