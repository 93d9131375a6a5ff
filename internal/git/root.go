// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package git

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/petar-djukic/go-coderef/pkg/types"
)

// FindGitRoot returns the top-level directory of the working tree containing
// path, or "" when path is not inside one.
func FindGitRoot(ctx context.Context, runner Runner, path string) string {
	out, err := runner.Run(ctx, path, "rev-parse", "--show-toplevel")
	if err != nil {
		zerolog.Ctx(ctx).Debug().Err(err).Str("dir", path).Msg("git root lookup failed")
		return ""
	}
	return strings.TrimSpace(out)
}

// ResolveGitContext locates the git root for workspacePath and the
// workspace's position inside it.
func ResolveGitContext(ctx context.Context, runner Runner, workspacePath string) types.GitContext {
	gc := types.GitContext{WorkspacePath: workspacePath}

	root := FindGitRoot(ctx, runner, workspacePath)
	if root == "" {
		return gc
	}
	gc.GitRoot = root
	gc.RelativePath = PathFromRoot(root, workspacePath)
	return gc
}

// PathFromRoot is RelativeTo with a second attempt on the symlink-resolved
// target, since git reports the root with symlinks resolved.
func PathFromRoot(root, target string) string {
	if rel := RelativeTo(root, target); rel != "" {
		return rel
	}
	resolved, err := filepath.EvalSymlinks(target)
	if err != nil || resolved == target {
		return ""
	}
	return RelativeTo(root, resolved)
}

// RelativeTo returns the slash-separated path of target relative to root. It
// returns "" when target is root itself or lies outside root.
func RelativeTo(root, target string) string {
	rel, err := filepath.Rel(root, target)
	if err != nil || rel == "." {
		return ""
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return ""
	}
	return filepath.ToSlash(rel)
}
