// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package outline

import (
	"context"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"

	"golang.org/x/tools/go/ast/astutil"

	"github.com/petar-djukic/go-coderef/pkg/types"
)

// GoProvider outlines Go source with go/parser. Methods are top-level
// symbols named Receiver.Method; struct fields and interface methods are
// children of their type.
type GoProvider struct{}

// Outline parses src and returns its declarations. A file with syntax errors
// still yields the declarations the parser recovered.
func (GoProvider) Outline(_ context.Context, path string, src []byte) ([]types.Symbol, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, src, parser.SkipObjectResolution)
	if err != nil && (file == nil || len(file.Decls) == 0) {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	var symbols []types.Symbol
	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			symbols = append(symbols, funcSymbol(fset, d))
		case *ast.GenDecl:
			symbols = append(symbols, genDeclSymbols(fset, d)...)
		}
	}
	return symbols, nil
}

func funcSymbol(fset *token.FileSet, fn *ast.FuncDecl) types.Symbol {
	sym := types.Symbol{
		Name:  fn.Name.Name,
		Kind:  types.Function,
		Range: span(fset, fn.Pos(), fn.End()),
	}
	if fn.Recv != nil && len(fn.Recv.List) > 0 {
		sym.Kind = types.Method
		if recv := receiverName(fn.Recv.List[0].Type); recv != "" {
			sym.Name = recv + "." + sym.Name
		}
	}
	return sym
}

// receiverName returns the base type name of a receiver or embedded field:
// T for T, *T, T[K], (*T) and pkg.T.
func receiverName(expr ast.Expr) string {
	switch t := astutil.Unparen(expr).(type) {
	case *ast.Ident:
		return t.Name
	case *ast.StarExpr:
		return receiverName(t.X)
	case *ast.IndexExpr:
		return receiverName(t.X)
	case *ast.IndexListExpr:
		return receiverName(t.X)
	case *ast.SelectorExpr:
		return t.Sel.Name
	default:
		return ""
	}
}

// genDeclSymbols covers type, var and const declarations. An unparenthesized
// declaration spans from its keyword so a cursor on "var" or "type" matches.
func genDeclSymbols(fset *token.FileSet, gd *ast.GenDecl) []types.Symbol {
	var symbols []types.Symbol
	for _, spec := range gd.Specs {
		from, to := spec.Pos(), spec.End()
		if !gd.Lparen.IsValid() {
			from, to = gd.Pos(), gd.End()
		}

		switch s := spec.(type) {
		case *ast.TypeSpec:
			symbols = append(symbols, typeSymbol(fset, s, span(fset, from, to)))
		case *ast.ValueSpec:
			kind := types.Variable
			if gd.Tok == token.CONST {
				kind = types.Constant
			}
			for _, name := range s.Names {
				symbols = append(symbols, types.Symbol{
					Name:  name.Name,
					Kind:  kind,
					Range: span(fset, from, to),
				})
			}
		}
	}
	return symbols
}

func typeSymbol(fset *token.FileSet, ts *ast.TypeSpec, rng types.Range) types.Symbol {
	sym := types.Symbol{Name: ts.Name.Name, Kind: types.Class, Range: rng}

	switch t := ts.Type.(type) {
	case *ast.StructType:
		sym.Children = fieldSymbols(fset, t.Fields, types.Field)
	case *ast.InterfaceType:
		sym.Kind = types.Interface
		sym.Children = fieldSymbols(fset, t.Methods, types.Method)
	}
	return sym
}

// fieldSymbols lists named fields, and embedded struct fields under their
// type name. Embedded interfaces have no name of their own and are skipped.
func fieldSymbols(fset *token.FileSet, fields *ast.FieldList, kind types.SymbolKind) []types.Symbol {
	if fields == nil {
		return nil
	}

	var symbols []types.Symbol
	for _, f := range fields.List {
		rng := span(fset, f.Pos(), f.End())
		if len(f.Names) == 0 {
			if kind == types.Field {
				if name := receiverName(f.Type); name != "" {
					symbols = append(symbols, types.Symbol{Name: name, Kind: kind, Range: rng})
				}
			}
			continue
		}
		for _, name := range f.Names {
			symbols = append(symbols, types.Symbol{Name: name.Name, Kind: kind, Range: rng})
		}
	}
	return symbols
}

// span converts token positions to a 0-based range.
func span(fset *token.FileSet, from, to token.Pos) types.Range {
	start, end := fset.Position(from), fset.Position(to)
	return types.Range{
		Start: types.Position{Line: start.Line - 1, Character: start.Column - 1},
		End:   types.Position{Line: end.Line - 1, Character: end.Column - 1},
	}
}
