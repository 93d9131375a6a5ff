// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// initTestRepo creates a committed repository with an origin remote and
// returns its directory and branch.
func initTestRepo(t *testing.T) (string, string) {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	r, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "main.go"), []byte("package main\n\nfunc main() {\n}\n"), 0o644))

	wt, err := r.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("src/main.go")
	require.NoError(t, err)
	_, err = wt.Commit("initial commit", &gogit.CommitOptions{
		Author: &object.Signature{Name: "Test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	_, err = r.CreateRemote(&gitconfig.RemoteConfig{Name: "origin", URLs: []string{"git@github.com:acme/widgets.git"}})
	require.NoError(t, err)

	head, err := r.Head()
	require.NoError(t, err)
	return dir, head.Name().Short()
}

// run executes the root command with args from an isolated home directory.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append(args, "--no-input"))

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "coderef "+version+"\n", out)
}

func TestLink(t *testing.T) {
	dir, branch := initTestRepo(t)

	out, _, err := run(t, "link", filepath.Join(dir, "src", "main.go")+":3", "--workspace", dir)
	require.NoError(t, err)
	assert.Equal(t, "[GitHub](https://github.com/acme/widgets/blob/"+branch+"/src/main.go#L3)\n", out)
}

func TestLink_NoRepository(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.go")
	require.NoError(t, os.WriteFile(file, []byte("package a\n"), 0o644))

	_, _, err := run(t, "link", file, "--workspace", dir)
	assert.ErrorIs(t, err, errNoLink)
}

func TestCopy_NoClipboard(t *testing.T) {
	dir, branch := initTestRepo(t)

	out, stderr, err := run(t, "copy", filepath.Join(dir, "src", "main.go")+":3-4",
		"--workspace", dir, "--type", "Filename (with line)", "--no-clipboard")
	require.NoError(t, err)

	assert.Equal(t, "`src/main.go:3-4` ([GitHub](https://github.com/acme/widgets/blob/"+branch+"/src/main.go#L3-L4))\n", out)
	assert.Empty(t, stderr)
}

func TestCopy_SymbolWithoutLink(t *testing.T) {
	dir, _ := initTestRepo(t)

	out, _, err := run(t, "copy", filepath.Join(dir, "src", "main.go")+":3",
		"--workspace", dir, "--type", "Symbol", "--link-source=false", "--no-clipboard")
	require.NoError(t, err)
	assert.Equal(t, "`main`\n", out)
}

func TestCopy_AskWithoutTerminal(t *testing.T) {
	dir, _ := initTestRepo(t)

	_, _, err := run(t, "copy", filepath.Join(dir, "src", "main.go"), "--workspace", dir, "--no-clipboard")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to copy reference")
}

func TestCopy_MissingFile(t *testing.T) {
	_, _, err := run(t, "copy", filepath.Join(t.TempDir(), "missing.go"), "--no-clipboard")
	assert.Error(t, err)
}

func TestRemote(t *testing.T) {
	dir, branch := initTestRepo(t)

	out, _, err := run(t, "remote", filepath.Join(dir, "src"))
	require.NoError(t, err)

	var got struct {
		Remote struct {
			Provider string `json:"provider"`
			URL      string `json:"url"`
		} `json:"remote"`
		Branch string `json:"branch"`
		Git    struct {
			GitRoot      string `json:"gitRoot"`
			RelativePath string `json:"relativePath"`
		} `json:"git"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	assert.Equal(t, "github", got.Remote.Provider)
	assert.Equal(t, "https://github.com/acme/widgets", got.Remote.URL)
	assert.Equal(t, branch, got.Branch)
	assert.Equal(t, dir, got.Git.GitRoot)
	assert.Equal(t, "src", got.Git.RelativePath)
}

func TestInvalidLogFormat(t *testing.T) {
	_, _, err := run(t, "version", "--log-format", "xml")
	assert.Error(t, err)
}
