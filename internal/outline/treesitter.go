// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package outline

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/smacker/go-tree-sitter/ruby"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/petar-djukic/go-coderef/pkg/types"
)

// TreeSitterProvider outlines a language through its tree-sitter grammar.
// Nodes whose type appears in Kinds and that carry a "name" field become
// symbols; every other node is transparent.
type TreeSitterProvider struct {
	Name     string
	Language *sitter.Language
	Kinds    map[string]types.SymbolKind
}

type registeredLanguage struct {
	provider   *TreeSitterProvider
	extensions []string
}

var (
	pythonKinds = map[string]types.SymbolKind{
		"class_definition":    types.Class,
		"function_definition": types.Function,
	}

	javascriptKinds = map[string]types.SymbolKind{
		"class_declaration":              types.Class,
		"class":                          types.Class,
		"function_declaration":           types.Function,
		"generator_function_declaration": types.Function,
		"method_definition":              types.Method,
		"field_definition":               types.Field,
		"variable_declarator":            types.Variable,
	}

	typescriptKinds = merge(javascriptKinds, map[string]types.SymbolKind{
		"abstract_class_declaration": types.Class,
		"interface_declaration":      types.Interface,
		"enum_declaration":           types.Class,
		"type_alias_declaration":     types.Class,
		"internal_module":            types.Class,
		"public_field_definition":    types.Field,
		"method_signature":           types.Method,
		"abstract_method_signature":  types.Method,
		"property_signature":         types.Field,
	})

	rubyKinds = map[string]types.SymbolKind{
		"class":            types.Class,
		"module":           types.Class,
		"method":           types.Method,
		"singleton_method": types.Method,
	}
)

func treeSitterLanguages() []registeredLanguage {
	return []registeredLanguage{
		{&TreeSitterProvider{Name: "python", Language: python.GetLanguage(), Kinds: pythonKinds}, []string{".py", ".pyi"}},
		{&TreeSitterProvider{Name: "javascript", Language: javascript.GetLanguage(), Kinds: javascriptKinds}, []string{".js", ".mjs", ".cjs", ".jsx"}},
		{&TreeSitterProvider{Name: "typescript", Language: typescript.GetLanguage(), Kinds: typescriptKinds}, []string{".ts", ".mts", ".cts"}},
		{&TreeSitterProvider{Name: "tsx", Language: tsx.GetLanguage(), Kinds: typescriptKinds}, []string{".tsx"}},
		{&TreeSitterProvider{Name: "ruby", Language: ruby.GetLanguage(), Kinds: rubyKinds}, []string{".rb"}},
	}
}

// Outline parses src and walks its named nodes.
func (p *TreeSitterProvider) Outline(ctx context.Context, path string, src []byte) ([]types.Symbol, error) {
	if len(src) == 0 {
		return nil, nil
	}

	parser := sitter.NewParser()
	parser.SetLanguage(p.Language)

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parsing %s as %s: %w", path, p.Name, err)
	}
	defer tree.Close()

	return p.symbols(tree.RootNode(), src, false), nil
}

// symbols collects the symbols below node. Functions directly inside a class
// body are reported as methods.
func (p *TreeSitterProvider) symbols(node *sitter.Node, src []byte, inClass bool) []types.Symbol {
	var out []types.Symbol
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)

		kind, ok := p.Kinds[child.Type()]
		name := child.ChildByFieldName("name")
		if !ok || name == nil || strings.HasSuffix(name.Type(), "pattern") {
			out = append(out, p.symbols(child, src, inClass)...)
			continue
		}

		if kind == types.Function && inClass {
			kind = types.Method
		}
		out = append(out, types.Symbol{
			Name:     name.Content(src),
			Kind:     kind,
			Range:    nodeRange(child),
			Children: p.symbols(child, src, kind == types.Class),
		})
	}
	return out
}

func nodeRange(n *sitter.Node) types.Range {
	start, end := n.StartPoint(), n.EndPoint()
	return types.Range{
		Start: types.Position{Line: int(start.Row), Character: int(start.Column)},
		End:   types.Position{Line: int(end.Row), Character: int(end.Column)},
	}
}

func merge(base, extra map[string]types.SymbolKind) map[string]types.SymbolKind {
	out := make(map[string]types.SymbolKind, len(base)+len(extra))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}
