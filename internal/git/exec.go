// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package git discovers the origin remote, current branch and working tree
// root of a directory. Every lookup degrades to an absent value instead of
// failing: a missing git binary, a directory outside any repository and a
// repository without an origin are all ordinary outcomes.
package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// ErrUnsupportedCommand is returned by a Runner that cannot answer a git
// subcommand.
var ErrUnsupportedCommand = errors.New("unsupported git command")

// Runner executes a git subcommand in dir and returns its standard output.
// A non-zero exit or a failure to start the process is an error.
type Runner interface {
	Run(ctx context.Context, dir string, args ...string) (string, error)
}

// ExecRunner runs the git executable found on PATH.
type ExecRunner struct {
	Binary  string        // Executable name or path (default "git")
	Timeout time.Duration // Per-command timeout; zero waits for the command to finish
}

// Run executes git with args in dir and captures stdout. Stderr is folded into
// the returned error.
func (r ExecRunner) Run(ctx context.Context, dir string, args ...string) (string, error) {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	bin := r.Binary
	if bin == "" {
		bin = "git"
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return stdout.String(), fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
		}
		return stdout.String(), fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, msg)
	}
	return stdout.String(), nil
}

// DetectRunner returns an ExecRunner when a git executable is on PATH and a
// GoGitRunner otherwise.
func DetectRunner() Runner {
	if _, err := exec.LookPath("git"); err == nil {
		return ExecRunner{}
	}
	return GoGitRunner{}
}
