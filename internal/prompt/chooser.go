// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package prompt asks the user to pick from a list in the terminal.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
)

// Chooser shows a single-select list with huh.
type Chooser struct {
	Accessible bool      // Plain numbered prompt instead of the interactive list
	Input      io.Reader // Defaults to the terminal
	Output     io.Writer // Defaults to the terminal
}

// Interactive reports whether stdin and stderr are both terminals, so a
// prompt can be shown without blocking a pipeline.
func Interactive() bool {
	return isTerminal(os.Stdin) && isTerminal(os.Stderr)
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Choose shows choices under placeholder and returns the picked value. ok is
// false when the user aborts the prompt or ctx is canceled.
func (c Chooser) Choose(ctx context.Context, placeholder string, choices []string) (string, bool, error) {
	var choice string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(placeholder).
				Options(huh.NewOptions(choices...)...).
				Value(&choice),
		),
	).WithAccessible(c.Accessible).WithShowHelp(false)

	if c.Input != nil {
		form = form.WithInput(c.Input)
	}
	if c.Output != nil {
		form = form.WithOutput(c.Output)
	}

	return outcome(choice, form.RunWithContext(ctx))
}

// outcome maps the form result onto the Chooser contract: aborting is a
// cancellation, not an error.
func outcome(choice string, err error) (string, bool, error) {
	switch {
	case err == nil:
		return choice, true, nil
	case errors.Is(err, huh.ErrUserAborted), errors.Is(err, huh.ErrTimeout), errors.Is(err, context.Canceled):
		return "", false, nil
	default:
		return "", false, fmt.Errorf("running prompt: %w", err)
	}
}
