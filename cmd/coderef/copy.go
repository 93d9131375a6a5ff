// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/petar-djukic/go-coderef/internal/copier"
	"github.com/petar-djukic/go-coderef/internal/git"
	"github.com/petar-djukic/go-coderef/internal/prompt"
	"github.com/petar-djukic/go-coderef/pkg/coderef"
	"github.com/petar-djukic/go-coderef/pkg/types"
)

// errNoLink is returned by the link command when the remote yields no link.
var errNoLink = errors.New("no source link for this file")

// newCopyCmd creates the "copy" command.
func newCopyCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "copy FILE[:LINE[-END]]",
		Short: "Copy a reference to a file location",
		Long: "Copy renders the reference for a cursor line or a line range, appends a link to the hosted file " +
			"and writes the result to the clipboard.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCopy(cmd, args[0])
		},
	}

	addLocationFlags(cmd)
	cmd.Flags().StringP("type", "t", "", "Reference type for this call, overriding the configured cursor and selection types")
	cmd.Flags().Bool("no-clipboard", false, "Print the reference without writing the clipboard")

	return cmd
}

// newLinkCmd creates the "link" command.
func newLinkCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "link FILE[:LINE[-END]]",
		Short: "Print the Markdown link to a file location on its git host",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runLink(cmd, args[0])
		},
	}

	addLocationFlags(cmd)

	return cmd
}

func addLocationFlags(cmd *cobra.Command) {
	cmd.Flags().Int("column", 1, "Cursor column, used to find the enclosing symbol")
	cmd.Flags().StringP("workspace", "w", "", "Workspace folder (default: the working directory when it contains FILE)")
}

// runCopy resolves the reference and reports the outcome the way an editor
// notification would: success and warnings on stderr, content on stdout.
func (a *app) runCopy(cmd *cobra.Command, target string) error {
	loc, err := location(cmd, target)
	if err != nil {
		return err
	}

	cfg, err := a.resolverConfig(cmd)
	if err != nil {
		return err
	}
	if refType, _ := cmd.Flags().GetString("type"); refType != "" {
		cfg.CursorRefType, cfg.SelectionRefType = refType, refType
	}
	noClipboard, _ := cmd.Flags().GetBool("no-clipboard")
	if !noClipboard {
		cfg.Clipboard = copier.SystemClipboard{}
	}

	r, err := coderef.New(cfg)
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	res, err := r.Copy(cmd.Context(), loc)
	if err != nil {
		if res != nil && res.Message != "" {
			return errors.New(res.Message)
		}
		return err
	}

	if res.Content != "" {
		fmt.Fprintln(cmd.OutOrStdout(), res.Content)
	}
	if res.Message != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), res.Message)
	}
	return nil
}

// runLink prints only the source link. The reference type does not affect
// the link, so no prompt is shown.
func (a *app) runLink(cmd *cobra.Command, target string) error {
	loc, err := location(cmd, target)
	if err != nil {
		return err
	}

	cfg, err := a.resolverConfig(cmd)
	if err != nil {
		return err
	}
	cfg.LinkSource = true
	cfg.CursorRefType = string(types.FilenameNoLine)
	cfg.SelectionRefType = string(types.FilenameNoLine)
	cfg.Chooser = nil

	r, err := coderef.New(cfg)
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	res, err := r.Resolve(cmd.Context(), loc)
	if err != nil {
		return err
	}
	if res.Link == "" {
		return fmt.Errorf("%w: remote is %s", errNoLink, res.Remote.Provider)
	}

	fmt.Fprintln(cmd.OutOrStdout(), res.Link)
	return nil
}

// resolverConfig translates the loaded settings and git flags into a
// coderef.Config.
func (a *app) resolverConfig(cmd *cobra.Command) (coderef.Config, error) {
	noGit, _ := cmd.Flags().GetBool("no-git")
	noInput, _ := cmd.Flags().GetBool("no-input")
	timeout, err := cmd.Flags().GetDuration("git-timeout")
	if err != nil {
		return coderef.Config{}, err
	}

	s := a.settings
	cfg := coderef.Config{
		IncludeRelativePath: s.IncludeRelativePath,
		LinkSource:          s.LinkSource,
		CursorRefType:       s.CursorRefType,
		SelectionRefType:    s.SelectionRefType,
		UseGitRoot:          s.UseGitRoot,
		AzureLineHighlight:  s.AzureLineHighlight,
		GitTimeout:          timeout,
		NoGit:               noGit,
	}
	if !noInput && prompt.Interactive() {
		cfg.Chooser = prompt.Chooser{}
	}
	return cfg, nil
}

// location builds a coderef.Location from the target argument and flags.
func location(cmd *cobra.Command, target string) (coderef.Location, error) {
	file, line, end, err := parseTarget(target)
	if err != nil {
		return coderef.Location{}, err
	}
	column, _ := cmd.Flags().GetInt("column")
	workspace, _ := cmd.Flags().GetString("workspace")

	file, err = filepath.Abs(file)
	if err != nil {
		return coderef.Location{}, fmt.Errorf("resolving %s: %w", target, err)
	}
	if _, err := os.Stat(file); err != nil {
		return coderef.Location{}, fmt.Errorf("reading %s: %w", target, err)
	}
	if workspace == "" {
		workspace = defaultWorkspace(file)
	}

	return coderef.Location{
		File:      file,
		Workspace: workspace,
		Line:      line,
		EndLine:   end,
		Column:    column,
	}, nil
}

// defaultWorkspace returns the working directory when it contains file, and
// "" otherwise.
func defaultWorkspace(file string) string {
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	if git.RelativeTo(wd, file) != "" {
		return wd
	}
	return ""
}
