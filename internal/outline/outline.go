// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package outline builds document outlines for source files and finds the
// symbol that encloses a position.
package outline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/petar-djukic/go-coderef/pkg/types"
)

// Provider returns the outline of a source file. Top-level symbols are
// ordered by position; nested declarations are children of their parent.
type Provider interface {
	Outline(ctx context.Context, path string, src []byte) ([]types.Symbol, error)
}

// Registry maps file extensions to outline providers.
type Registry struct {
	byExt map[string]Provider
}

// NewRegistry returns a registry with the Go provider and every tree-sitter
// language registered.
func NewRegistry() *Registry {
	r := &Registry{byExt: make(map[string]Provider)}
	r.Register(GoProvider{}, ".go")
	for _, l := range treeSitterLanguages() {
		r.Register(l.provider, l.extensions...)
	}
	return r
}

// Register associates p with each extension. Extensions include the dot and
// are matched case-insensitively. A later registration replaces an earlier one.
func (r *Registry) Register(p Provider, exts ...string) {
	if r.byExt == nil {
		r.byExt = make(map[string]Provider)
	}
	for _, ext := range exts {
		r.byExt[strings.ToLower(ext)] = p
	}
}

// ForFile returns the provider for path's extension.
func (r *Registry) ForFile(path string) (Provider, bool) {
	p, ok := r.byExt[strings.ToLower(filepath.Ext(path))]
	return p, ok
}

// SymbolAt reads path and returns the dotted path of the innermost symbol
// containing pos. ok is false when the language is not supported, the file
// does not parse or no symbol contains pos.
func (r *Registry) SymbolAt(ctx context.Context, path string, pos types.Position) (string, bool, error) {
	log := zerolog.Ctx(ctx)

	p, ok := r.ForFile(path)
	if !ok {
		log.Debug().Str("file", path).Msg("no outline provider for file type")
		return "", false, nil
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return "", false, fmt.Errorf("reading %s: %w", path, err)
	}

	symbols, err := p.Outline(ctx, path, src)
	if err != nil {
		log.Debug().Err(err).Str("file", path).Msg("outline failed")
		return "", false, nil
	}

	name, ok := SymbolPath(symbols, pos)
	return name, ok, nil
}

// SymbolPath descends into the first symbol containing pos at each level and
// joins the names it passes through with ".".
func SymbolPath(symbols []types.Symbol, pos types.Position) (string, bool) {
	var names []string
	for level := symbols; ; {
		sym, ok := containing(level, pos)
		if !ok {
			break
		}
		names = append(names, sym.Name)
		level = sym.Children
	}
	if len(names) == 0 {
		return "", false
	}
	return strings.Join(names, "."), true
}

func containing(symbols []types.Symbol, pos types.Position) (types.Symbol, bool) {
	for _, s := range symbols {
		if s.Range.Contains(pos) {
			return s, true
		}
	}
	return types.Symbol{}, false
}
