// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	s, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, Settings{
		IncludeRelativePath: true,
		LinkSource:          true,
		CursorRefType:       RefTypeAsk,
		SelectionRefType:    RefTypeAsk,
		UseGitRoot:          true,
		Logging:             LoggingSettings{Level: DefaultLogLevel, Format: DefaultLogFormat},
	}, s)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coderef.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`includeRelativePath: false
linkSource: false
cursorReferenceType: Symbol
selectionReferenceType: Filename
useGitRoot: false
logging:
  format: json
`), 0o644))

	s, err := Load(viper.New(), path)
	require.NoError(t, err)

	assert.False(t, s.IncludeRelativePath)
	assert.False(t, s.LinkSource)
	assert.False(t, s.UseGitRoot)
	assert.Equal(t, "Symbol", s.CursorRefType)
	assert.Equal(t, "Filename (with line)", s.SelectionRefType, "legacy value is upgraded at load time")
	assert.Equal(t, "json", s.Logging.Format)
	assert.Equal(t, DefaultLogLevel, s.Logging.Level)
}

func TestLoad_MixedOverrides(t *testing.T) {
	isolate(t)
	v := viper.New()
	v.Set("includeRelativePath", false)
	v.Set("selectionReferenceType", "Range")

	s, err := Load(v, "")
	require.NoError(t, err)

	assert.False(t, s.IncludeRelativePath)
	assert.True(t, s.LinkSource)
	assert.Equal(t, RefTypeAsk, s.CursorRefType)
	assert.Equal(t, "Range", s.SelectionRefType)
}

func TestLoad_Environment(t *testing.T) {
	isolate(t)
	t.Setenv("CODEREF_LINKSOURCE", "false")
	t.Setenv("CODEREF_LOGGING_LEVEL", "debug")

	s, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.False(t, s.LinkSource)
	assert.Equal(t, "debug", s.Logging.Level)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidLogFormat(t *testing.T) {
	isolate(t)
	v := viper.New()
	v.Set("logging.format", "xml")

	_, err := Load(v, "")
	assert.ErrorIs(t, err, ErrInvalidSetting)
}

func TestUpgradeLegacyRefType(t *testing.T) {
	assert.Equal(t, "Filename (with line)", UpgradeLegacyRefType("Filename"))
	assert.Equal(t, "Filename (no line)", UpgradeLegacyRefType("Filename (no line)"))
	assert.Equal(t, "Symbol", UpgradeLegacyRefType("Symbol"))
	assert.Equal(t, "Ask", UpgradeLegacyRefType("Ask"))
}

// isolate runs the test from an empty directory with an empty home so no
// stray .coderef.yaml is picked up.
func isolate(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
}
