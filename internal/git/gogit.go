// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package git

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	gogit "github.com/go-git/go-git/v5"
)

// ErrNoGit is returned when the directory is not inside a git repository.
var ErrNoGit = errors.New("not a git repository")

// GoGitRunner answers the git subcommands this package issues by reading the
// repository with go-git. It is used when no git executable is installed.
type GoGitRunner struct{}

// Run emulates `git remote -v`, `git rev-parse --abbrev-ref HEAD` and
// `git rev-parse --show-toplevel`. Output matches the git CLI closely enough
// for the parsers in this package.
func (GoGitRunner) Run(ctx context.Context, dir string, args ...string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	repo, err := open(dir)
	if err != nil {
		return "", err
	}

	switch strings.Join(args, " ") {
	case "remote -v":
		return listRemotes(repo)
	case "rev-parse --abbrev-ref HEAD":
		return abbrevHead(repo)
	case "rev-parse --show-toplevel":
		return topLevel(repo)
	default:
		return "", fmt.Errorf("%w: git %s", ErrUnsupportedCommand, strings.Join(args, " "))
	}
}

// open finds the repository containing dir, walking up parent directories.
func open(dir string) (*gogit.Repository, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoGit, err)
	}
	return repo, nil
}

// listRemotes renders every remote as `name<TAB>url (fetch)` and
// `name<TAB>url (push)` lines, sorted by remote name.
func listRemotes(repo *gogit.Repository) (string, error) {
	remotes, err := repo.Remotes()
	if err != nil {
		return "", fmt.Errorf("listing remotes: %w", err)
	}

	sort.Slice(remotes, func(i, j int) bool {
		return remotes[i].Config().Name < remotes[j].Config().Name
	})

	var b strings.Builder
	for _, r := range remotes {
		cfg := r.Config()
		if len(cfg.URLs) == 0 {
			continue
		}
		fmt.Fprintf(&b, "%s\t%s (fetch)\n", cfg.Name, cfg.URLs[0])
		for _, u := range cfg.URLs {
			fmt.Fprintf(&b, "%s\t%s (push)\n", cfg.Name, u)
		}
	}
	return b.String(), nil
}

// abbrevHead returns the short branch name, or "HEAD" when detached.
func abbrevHead(repo *gogit.Repository) (string, error) {
	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD: %w", err)
	}
	if !head.Name().IsBranch() {
		return "HEAD\n", nil
	}
	return head.Name().Short() + "\n", nil
}

// topLevel returns the root directory of the working tree.
func topLevel(repo *gogit.Repository) (string, error) {
	wt, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("getting worktree: %w", err)
	}
	return wt.Filesystem.Root() + "\n", nil
}
