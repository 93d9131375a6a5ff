// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package outline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/go-coderef/pkg/types"
)

func providerFor(t *testing.T, file string) Provider {
	t.Helper()
	p, ok := NewRegistry().ForFile(file)
	require.True(t, ok, "no provider for %s", file)
	return p
}

func outlineOf(t *testing.T, file, src string) []types.Symbol {
	t.Helper()
	symbols, err := providerFor(t, file).Outline(context.Background(), file, []byte(src))
	require.NoError(t, err)
	return symbols
}

func TestTreeSitter_Python(t *testing.T) {
	src := `import os

class Parser:
    def parse(self, text):
        return text

    @staticmethod
    def create():
        return Parser()

def main():
    pass
`
	symbols := outlineOf(t, "parser.py", src)
	require.Len(t, symbols, 2)

	parser := symbols[0]
	assert.Equal(t, "Parser", parser.Name)
	assert.Equal(t, types.Class, parser.Kind)
	require.Len(t, parser.Children, 2)
	assert.Equal(t, "parse", parser.Children[0].Name)
	assert.Equal(t, types.Method, parser.Children[0].Kind)
	assert.Equal(t, "create", parser.Children[1].Name)
	assert.Equal(t, types.Method, parser.Children[1].Kind)

	assert.Equal(t, "main", symbols[1].Name)
	assert.Equal(t, types.Function, symbols[1].Kind)

	got, ok := SymbolPath(symbols, at(4, 10))
	require.True(t, ok)
	assert.Equal(t, "Parser.parse", got)

	got, ok = SymbolPath(symbols, at(8, 10))
	require.True(t, ok)
	assert.Equal(t, "Parser.create", got)
}

func TestTreeSitter_JavaScript(t *testing.T) {
	src := `class Greeter {
  greet(name) {
    return name
  }
}

function main() {}

const handler = () => {
  return 1
}
`
	symbols := outlineOf(t, "app.js", src)

	got, ok := SymbolPath(symbols, at(2, 4))
	require.True(t, ok)
	assert.Equal(t, "Greeter.greet", got)

	got, ok = SymbolPath(symbols, at(6, 0))
	require.True(t, ok)
	assert.Equal(t, "main", got)

	got, ok = SymbolPath(symbols, at(9, 2))
	require.True(t, ok)
	assert.Equal(t, "handler", got)
}

func TestTreeSitter_TypeScript(t *testing.T) {
	src := `export interface Shape {
  area(): number
}

export class Circle implements Shape {
  radius: number = 1

  area(): number {
    return 3.14 * this.radius
  }
}
`
	symbols := outlineOf(t, "shape.ts", src)

	shape := findSymbol(symbols, "Shape")
	require.NotNil(t, shape)
	assert.Equal(t, types.Interface, shape.Kind)

	got, ok := SymbolPath(symbols, at(8, 6))
	require.True(t, ok)
	assert.Equal(t, "Circle.area", got)

	got, ok = SymbolPath(symbols, at(5, 3))
	require.True(t, ok)
	assert.Equal(t, "Circle.radius", got)
}

func TestTreeSitter_Ruby(t *testing.T) {
	src := `module Shop
  class Cart
    def total
      0
    end
  end
end
`
	symbols := outlineOf(t, "cart.rb", src)

	got, ok := SymbolPath(symbols, at(3, 6))
	require.True(t, ok)
	assert.Equal(t, "Shop.Cart.total", got)
}

func TestTreeSitter_Empty(t *testing.T) {
	symbols := outlineOf(t, "empty.py", "")
	assert.Empty(t, symbols)
}
