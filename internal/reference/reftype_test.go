// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package reference

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/go-coderef/pkg/types"
)

func TestResolveType_ValidValues(t *testing.T) {
	for _, rt := range types.ReferenceTypes {
		t.Run(string(rt), func(t *testing.T) {
			chooser := &mockChooser{}

			got, ok, err := ResolveType(context.Background(), chooser, string(rt))
			require.NoError(t, err)

			assert.True(t, ok)
			assert.Equal(t, rt, got)
			chooser.AssertNotCalled(t, "Choose")
		})
	}
}

func TestResolveType_LegacyFilename(t *testing.T) {
	got, ok, err := ResolveType(context.Background(), nil, "Filename")
	require.NoError(t, err)

	assert.True(t, ok)
	assert.Equal(t, types.FilenameWithLine, got)
}

func TestResolveType_PromptsForUnknownValue(t *testing.T) {
	chooser := &mockChooser{}
	chooser.On("Choose", TypePlaceholder, allChoices).Return("Filename (no line)", true, nil).Once()

	got, ok, err := ResolveType(context.Background(), chooser, "Ask")
	require.NoError(t, err)

	assert.True(t, ok)
	assert.Equal(t, types.FilenameNoLine, got)
	chooser.AssertExpectations(t)
}

func TestResolveType_EmptyValuePrompts(t *testing.T) {
	chooser := &mockChooser{}
	chooser.On("Choose", TypePlaceholder, allChoices).Return("Symbol", true, nil).Once()

	got, ok, err := ResolveType(context.Background(), chooser, "")
	require.NoError(t, err)

	assert.True(t, ok)
	assert.Equal(t, types.SymbolRef, got)
}

func TestResolveType_Cancel(t *testing.T) {
	chooser := &mockChooser{}
	chooser.On("Choose", TypePlaceholder, allChoices).Return("", false, nil).Once()

	got, ok, err := ResolveType(context.Background(), chooser, "Ask")

	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, got)
}

func TestResolveType_ChosenLegacyValue(t *testing.T) {
	chooser := &mockChooser{}
	chooser.On("Choose", TypePlaceholder, allChoices).Return("Filename", true, nil).Once()

	got, ok, err := ResolveType(context.Background(), chooser, "Ask")
	require.NoError(t, err)

	assert.True(t, ok)
	assert.Equal(t, types.FilenameWithLine, got)
}

func TestResolveType_RepeatedInvalidChoiceCancels(t *testing.T) {
	chooser := &mockChooser{}
	chooser.On("Choose", TypePlaceholder, allChoices).Return("Line", true, nil).Times(maxTypePrompts)

	_, ok, err := ResolveType(context.Background(), chooser, "Ask")

	assert.NoError(t, err)
	assert.False(t, ok)
	chooser.AssertNumberOfCalls(t, "Choose", maxTypePrompts)
}

func TestResolveType_InvalidThenValidChoice(t *testing.T) {
	chooser := &mockChooser{}
	chooser.On("Choose", TypePlaceholder, allChoices).Return("Line", true, nil).Once()
	chooser.On("Choose", TypePlaceholder, allChoices).Return("Symbol", true, nil).Once()

	got, ok, err := ResolveType(context.Background(), chooser, "Ask")
	require.NoError(t, err)

	assert.True(t, ok)
	assert.Equal(t, types.SymbolRef, got)
}

func TestResolveType_ChooserError(t *testing.T) {
	chooser := &mockChooser{}
	chooser.On("Choose", TypePlaceholder, allChoices).Return("", false, errors.New("no tty")).Once()

	_, ok, err := ResolveType(context.Background(), chooser, "Ask")

	assert.Error(t, err)
	assert.False(t, ok)
}

func TestResolveType_NoChooser(t *testing.T) {
	_, ok, err := ResolveType(context.Background(), nil, "Ask")

	assert.ErrorIs(t, err, ErrNoChooser)
	assert.False(t, ok)
}
