// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package copier resolves the reference for an editor location, renders the
// copy content and places it on the clipboard.
package copier

import (
	"context"
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/rs/zerolog"
	"github.com/sourcegraph/conc"

	"github.com/petar-djukic/go-coderef/internal/config"
	"github.com/petar-djukic/go-coderef/internal/git"
	"github.com/petar-djukic/go-coderef/internal/reference"
	"github.com/petar-djukic/go-coderef/pkg/types"
)

// ErrNoFile is returned when the editor has no active document.
var ErrNoFile = errors.New("no active file")

// Notification texts shown after a copy.
const (
	MsgCopied    = "Reference copied"
	MsgEmpty     = "No identifiable reference to copy"
	failedPrefix = "Failed to copy reference: "
)

// Clipboard receives copied text.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the operating system clipboard.
type SystemClipboard struct{}

// WriteAll replaces the clipboard contents with text.
func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// SymbolLocator finds the dotted symbol path at a position in a file.
type SymbolLocator interface {
	SymbolAt(ctx context.Context, path string, pos types.Position) (string, bool, error)
}

// Status is the outcome of a copy.
type Status int

const (
	StatusResolved Status = iota + 1 // Content rendered, clipboard not written
	StatusCopied                     // Content written to the clipboard
	StatusCanceled                   // User dismissed the reference type prompt
	StatusEmpty                      // Nothing to copy
)

// String returns the lower-case name of the status.
func (s Status) String() string {
	switch s {
	case StatusResolved:
		return "resolved"
	case StatusCopied:
		return "copied"
	case StatusCanceled:
		return "canceled"
	case StatusEmpty:
		return "empty"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result holds everything a copy resolved.
type Result struct {
	Status    Status
	Content   string // Text placed on the clipboard
	Reference types.Reference
	Remote    types.RemoteInfo
	Branch    string
	Symbol    string // Dotted symbol path; empty unless the reference type is Symbol
	Link      string // Markdown source link; empty when not built
}

// Message returns the notification for a copy outcome. A canceled copy has
// no message.
func Message(res Result, err error) string {
	if err != nil {
		return failedPrefix + err.Error()
	}
	switch res.Status {
	case StatusCopied:
		return MsgCopied
	case StatusEmpty:
		return MsgEmpty
	default:
		return ""
	}
}

// Deps holds the collaborators of a Runner.
type Deps struct {
	Git       git.Runner        // nil disables git lookups
	Chooser   reference.Chooser // nil makes "Ask" settings fail with reference.ErrNoChooser
	Symbols   SymbolLocator     // nil leaves symbol references empty
	Clipboard Clipboard         // nil skips the clipboard write
}

// Runner produces copy content for editor locations.
type Runner struct {
	deps Deps
}

// NewRunner creates a Runner with the given dependencies.
func NewRunner(deps Deps) *Runner {
	return &Runner{deps: deps}
}

// Run resolves the copy content for ed and writes it to the clipboard.
func (r *Runner) Run(ctx context.Context, s config.Settings, ed types.EditorContext) (Result, error) {
	res, err := r.Resolve(ctx, s, ed)
	if err != nil || res.Status != StatusResolved {
		return res, err
	}

	if r.deps.Clipboard != nil {
		if err := r.deps.Clipboard.WriteAll(res.Content); err != nil {
			return res, fmt.Errorf("writing clipboard: %w", err)
		}
		res.Status = StatusCopied
	}
	return res, nil
}

// Resolve renders the copy content for ed without writing the clipboard.
func (r *Runner) Resolve(ctx context.Context, s config.Settings, ed types.EditorContext) (Result, error) {
	log := zerolog.Ctx(ctx)

	if ed.FilePath == "" {
		return Result{}, ErrNoFile
	}

	asm := reference.Assembler{Runner: r.deps.Git, Chooser: r.deps.Chooser}
	ref, ok, err := asm.Assemble(ctx, s, ed)
	if err != nil {
		return Result{}, err
	}
	if !ok {
		log.Debug().Msg("reference type prompt canceled")
		return Result{Status: StatusCanceled}, nil
	}

	res := Result{Reference: ref, Remote: types.UnknownRemote()}

	if s.LinkSource && r.deps.Git != nil {
		res.Remote, res.Branch = r.lookupRemote(ctx, ref.WorkspacePath)
		builder := reference.LinkBuilder{AzureLineHighlight: s.AzureLineHighlight}
		res.Link, _ = builder.Link(res.Remote, res.Branch, ref)
	}

	if ref.Type == types.SymbolRef && r.deps.Symbols != nil {
		res.Symbol, _, err = r.deps.Symbols.SymbolAt(ctx, ed.FilePath, ed.Selection.Active)
		if err != nil {
			return Result{}, fmt.Errorf("finding symbol: %w", err)
		}
	}

	res.Content = reference.Compose(reference.Text(ref, s.IncludeRelativePath, res.Symbol), res.Link)
	if res.Content == "" {
		res.Status = StatusEmpty
	} else {
		res.Status = StatusResolved
	}

	log.Debug().
		Str("type", string(ref.Type)).
		Str("provider", string(res.Remote.Provider)).
		Str("branch", res.Branch).
		Str("status", res.Status.String()).
		Msg("reference resolved")
	return res, nil
}

// lookupRemote resolves the origin remote and the current branch of dir in
// parallel.
func (r *Runner) lookupRemote(ctx context.Context, dir string) (types.RemoteInfo, string) {
	var (
		remote types.RemoteInfo
		branch string
		wg     conc.WaitGroup
	)
	wg.Go(func() { remote = git.ResolveRemote(ctx, r.deps.Git, dir) })
	wg.Go(func() { branch = git.CurrentBranch(ctx, r.deps.Git, dir) })
	wg.Wait()
	return remote, branch
}
