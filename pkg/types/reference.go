// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package types defines shared types used across coderef packages.
package types

import "fmt"

// GitProvider identifies the hosting service that owns a remote.
type GitProvider string

const (
	ProviderGitHub    GitProvider = "github"
	ProviderGitLab    GitProvider = "gitlab"
	ProviderBitbucket GitProvider = "bitbucket"
	ProviderAzure     GitProvider = "azure"
	ProviderGeneric   GitProvider = "generic"
	ProviderUnknown   GitProvider = "unknown" // No resolvable remote
)

// RemoteInfo describes the origin remote of a repository. URL is empty when
// Provider is ProviderUnknown; otherwise it is the canonical browsing URL for
// the provider.
type RemoteInfo struct {
	Provider GitProvider `json:"provider"`
	URL      string      `json:"url,omitempty"`
}

// UnknownRemote is the RemoteInfo returned when no remote can be resolved.
func UnknownRemote() RemoteInfo {
	return RemoteInfo{Provider: ProviderUnknown}
}

// Known reports whether the remote has a provider and URL.
func (r RemoteInfo) Known() bool {
	return r.Provider != ProviderUnknown && r.Provider != ""
}

// GitContext relates a workspace directory to the root of its git working tree.
// Empty strings mean absent.
type GitContext struct {
	WorkspacePath string `json:"workspacePath"`
	GitRoot       string `json:"gitRoot,omitempty"`
	RelativePath  string `json:"relativePath,omitempty"` // Workspace path relative to GitRoot; empty at the root or outside it
}

// RangeKind distinguishes cursor references from selection references.
type RangeKind int

const (
	CursorRange    RangeKind = iota + 1 // Single line
	SelectionRange                      // Inclusive line range
)

// String returns the lower-case name of the range kind.
func (k RangeKind) String() string {
	switch k {
	case CursorRange:
		return "cursor"
	case SelectionRange:
		return "selection"
	default:
		return fmt.Sprintf("RangeKind(%d)", int(k))
	}
}

// ReferenceRange is a 1-based cursor line or inclusive selection range.
// Line is set for CursorRange; StartLine and EndLine for SelectionRange.
type ReferenceRange struct {
	Kind      RangeKind
	Line      int
	StartLine int
	EndLine   int
}

// CursorAt returns a cursor range on the given 1-based line.
func CursorAt(line int) ReferenceRange {
	return ReferenceRange{Kind: CursorRange, Line: line}
}

// SelectionOf returns a selection range covering start through end (1-based,
// inclusive). The bounds are swapped if given in reverse.
func SelectionOf(start, end int) ReferenceRange {
	if end < start {
		start, end = end, start
	}
	return ReferenceRange{Kind: SelectionRange, StartLine: start, EndLine: end}
}

// ReferenceType selects how a reference is rendered.
type ReferenceType string

const (
	SymbolRef        ReferenceType = "Symbol"
	FilenameWithLine ReferenceType = "Filename (with line)"
	FilenameNoLine   ReferenceType = "Filename (no line)"
)

// ReferenceTypes lists the valid reference types in prompt order.
var ReferenceTypes = []ReferenceType{SymbolRef, FilenameWithLine, FilenameNoLine}

// Reference is the resolved location a user asked to copy.
type Reference struct {
	Type            ReferenceType
	Range           ReferenceRange
	WorkspacePath   string // Directory git commands run in
	RelativePath    string // File path relative to the workspace (absolute when there is no workspace)
	FileName        string // Base name of the file
	GitRoot         string // Empty when the file is not in a git working tree
	PathFromGitRoot string // Slash-separated path from GitRoot; empty when unknown
}

// LinkPath returns the path used in remote browsing URLs, preferring the path
// relative to the git root.
func (r Reference) LinkPath() string {
	if r.PathFromGitRoot != "" {
		return r.PathFromGitRoot
	}
	return r.RelativePath
}
