// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package coderef

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/petar-djukic/go-coderef/internal/config"
	"github.com/petar-djukic/go-coderef/internal/copier"
	"github.com/petar-djukic/go-coderef/internal/git"
	"github.com/petar-djukic/go-coderef/internal/outline"
	"github.com/petar-djukic/go-coderef/pkg/types"
)

// New validates the config and returns a ready-to-use Resolver.
func New(cfg Config) (Resolver, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	applyDefaults(&cfg)

	deps := copier.Deps{
		Symbols: outline.NewRegistry(),
	}
	if !cfg.NoGit {
		deps.Git = gitRunner(cfg)
	}
	if cfg.Chooser != nil {
		deps.Chooser = cfg.Chooser
	}
	if cfg.Clipboard != nil {
		deps.Clipboard = cfg.Clipboard
	}

	return &resolverAdapter{
		runner:   copier.NewRunner(deps),
		git:      deps.Git,
		settings: settings(cfg),
	}, nil
}

// resolverAdapter adapts internal/copier.Runner to the public Resolver
// interface.
type resolverAdapter struct {
	runner   *copier.Runner
	git      git.Runner
	settings config.Settings
}

func (a *resolverAdapter) Copy(ctx context.Context, loc Location) (*Result, error) {
	ed, err := editorContext(loc)
	if err != nil {
		return nil, err
	}
	res, err := a.runner.Run(ctx, a.settings, ed)
	return toResult(res, err), err
}

func (a *resolverAdapter) Resolve(ctx context.Context, loc Location) (*Result, error) {
	ed, err := editorContext(loc)
	if err != nil {
		return nil, err
	}
	res, err := a.runner.Resolve(ctx, a.settings, ed)
	return toResult(res, err), err
}

func (a *resolverAdapter) Inspect(ctx context.Context, dir string) (*RepoInfo, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", dir, err)
	}

	info := &RepoInfo{
		Remote:     types.UnknownRemote(),
		GitContext: types.GitContext{WorkspacePath: abs},
	}
	if a.git == nil {
		return info, nil
	}

	info.Remote = git.ResolveRemote(ctx, a.git, abs)
	info.Branch = git.CurrentBranch(ctx, a.git, abs)
	info.GitContext = git.ResolveGitContext(ctx, a.git, abs)
	return info, nil
}

func toResult(res copier.Result, err error) *Result {
	return &Result{
		Status:    res.Status.String(),
		Content:   res.Content,
		Reference: res.Reference,
		Remote:    res.Remote,
		Branch:    res.Branch,
		Symbol:    res.Symbol,
		Link:      res.Link,
		Message:   copier.Message(res, err),
	}
}

// validateConfig checks fields that have no usable zero value.
func validateConfig(cfg Config) error {
	if cfg.GitTimeout < 0 {
		return fmt.Errorf("GitTimeout must not be negative, got %s", cfg.GitTimeout)
	}
	return nil
}

// applyDefaults fills in zero-value fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.CursorRefType == "" {
		cfg.CursorRefType = RefTypeAsk
	}
	if cfg.SelectionRefType == "" {
		cfg.SelectionRefType = RefTypeAsk
	}
}

// gitRunner picks the git backend. An explicit binary always runs through
// exec; otherwise git on PATH is preferred over the go-git reader.
func gitRunner(cfg Config) git.Runner {
	if cfg.GitBinary != "" {
		return git.ExecRunner{Binary: cfg.GitBinary, Timeout: cfg.GitTimeout}
	}
	r := git.DetectRunner()
	if er, ok := r.(git.ExecRunner); ok {
		er.Timeout = cfg.GitTimeout
		return er
	}
	return r
}

func settings(cfg Config) config.Settings {
	return config.Settings{
		IncludeRelativePath: cfg.IncludeRelativePath,
		LinkSource:          cfg.LinkSource,
		CursorRefType:       config.UpgradeLegacyRefType(cfg.CursorRefType),
		SelectionRefType:    config.UpgradeLegacyRefType(cfg.SelectionRefType),
		UseGitRoot:          cfg.UseGitRoot,
		AzureLineHighlight:  cfg.AzureLineHighlight,
	}
}

// editorContext converts a 1-based location into the 0-based editor state.
func editorContext(loc Location) (types.EditorContext, error) {
	if loc.File == "" {
		return types.EditorContext{}, fmt.Errorf("%w: File is required", ErrInvalidLocation)
	}
	if loc.Line < 1 {
		return types.EditorContext{}, fmt.Errorf("%w: Line must be at least 1, got %d", ErrInvalidLocation, loc.Line)
	}
	if loc.EndLine < 0 {
		return types.EditorContext{}, fmt.Errorf("%w: EndLine must not be negative, got %d", ErrInvalidLocation, loc.EndLine)
	}
	if loc.Column < 0 {
		return types.EditorContext{}, fmt.Errorf("%w: Column must not be negative, got %d", ErrInvalidLocation, loc.Column)
	}

	file, err := filepath.Abs(loc.File)
	if err != nil {
		return types.EditorContext{}, fmt.Errorf("%w: %v", ErrInvalidLocation, err)
	}
	ed := types.EditorContext{FilePath: file}
	if loc.Workspace != "" {
		if ed.WorkspaceFolder, err = filepath.Abs(loc.Workspace); err != nil {
			return types.EditorContext{}, fmt.Errorf("%w: %v", ErrInvalidLocation, err)
		}
	}

	col := max(loc.Column, 1) - 1
	cursor := types.Position{Line: loc.Line - 1, Character: col}
	if loc.EndLine == 0 {
		ed.Selection = types.CursorSelection(cursor)
		return ed, nil
	}

	end := types.Position{Line: loc.EndLine - 1}
	ed.Selection = types.Selection{Active: end, Start: cursor, End: end}
	if end.Before(cursor) {
		ed.Selection.Start, ed.Selection.End = end, cursor
	}
	return ed, nil
}
