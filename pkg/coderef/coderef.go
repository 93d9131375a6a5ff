// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package coderef resolves code references for a file location and renders
// them with a Markdown link to the file on its git hosting provider.
package coderef

import (
	"context"
	"errors"
	"time"

	"github.com/petar-djukic/go-coderef/pkg/types"
)

// Error types for the coderef API.
var (
	ErrInvalidConfig   = errors.New("invalid config")
	ErrInvalidLocation = errors.New("invalid location")
)

// RefTypeAsk makes the resolver prompt for the reference type.
const RefTypeAsk = "Ask"

// Chooser asks the user to pick one of choices. ok is false when the user
// cancels.
type Chooser interface {
	Choose(ctx context.Context, placeholder string, choices []string) (choice string, ok bool, err error)
}

// Clipboard receives copied text.
type Clipboard interface {
	WriteAll(text string) error
}

// Config configures a Resolver. Start from DefaultConfig; the zero value
// turns every optional feature off.
type Config struct {
	IncludeRelativePath bool          // Show the path, not just the file name (default true)
	LinkSource          bool          // Append a link to the hosted file (default true)
	CursorRefType       string        // Reference type for cursor references (default "Ask")
	SelectionRefType    string        // Reference type for selections (default "Ask")
	UseGitRoot          bool          // Root paths at the repository, not the workspace (default true)
	AzureLineHighlight  bool          // Add column and style parameters to Azure DevOps links
	GitBinary           string        // git executable; empty picks git on PATH or the built-in reader
	GitTimeout          time.Duration // Per git command timeout; zero waits indefinitely
	NoGit               bool          // Disable git lookups
	Chooser             Chooser       // Prompts for "Ask" reference types; nil fails them
	Clipboard           Clipboard     // Receives Copy output; nil skips the write
}

// DefaultConfig returns the configuration coderef ships with.
func DefaultConfig() Config {
	return Config{
		IncludeRelativePath: true,
		LinkSource:          true,
		CursorRefType:       RefTypeAsk,
		SelectionRefType:    RefTypeAsk,
		UseGitRoot:          true,
	}
}

// Location is a file position. Lines and columns are 1-based. EndLine is
// zero for a cursor and the last selected line for a selection.
type Location struct {
	File      string // Path of the file (required)
	Workspace string // Workspace folder containing File; empty when none
	Line      int    // Cursor line or first selected line (required)
	EndLine   int    // Last selected line; zero for a cursor
	Column    int    // Cursor column (default 1)
}

// Result holds the outcome of a Copy or Resolve call.
type Result struct {
	Status    string           // "resolved", "copied", "canceled" or "empty"
	Content   string           // Rendered reference and link
	Reference types.Reference  // Assembled reference; zero when canceled
	Remote    types.RemoteInfo // Origin remote
	Branch    string           // Checked-out branch
	Symbol    string           // Dotted symbol path for symbol references
	Link      string           // Markdown source link; empty when none
	Message   string           // Notification for the outcome
}

// RepoInfo describes the repository containing a directory.
type RepoInfo struct {
	Remote     types.RemoteInfo `json:"remote"`
	Branch     string           `json:"branch,omitempty"`
	GitContext types.GitContext `json:"git"`
}

// Resolver resolves code references.
type Resolver interface {
	// Copy resolves the reference at loc and writes it to the clipboard.
	Copy(ctx context.Context, loc Location) (*Result, error)

	// Resolve renders the reference at loc without touching the clipboard.
	Resolve(ctx context.Context, loc Location) (*Result, error)

	// Inspect reports the origin remote, branch and git root of dir.
	Inspect(ctx context.Context, dir string) (*RepoInfo, error)
}
