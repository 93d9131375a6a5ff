// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/petar-djukic/go-coderef/pkg/coderef"
)

// newRemoteCmd creates the "remote" command.
func newRemoteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remote [DIR]",
		Short: "Show the origin remote, branch and git root of a directory",
		Long:  "Remote prints the normalized origin remote, the current branch and the directory's position in its working tree as JSON.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			cfg, err := a.resolverConfig(cmd)
			if err != nil {
				return err
			}
			cfg.Chooser = nil

			r, err := coderef.New(cfg)
			if err != nil {
				return fmt.Errorf("initialization failed: %w", err)
			}

			info, err := r.Inspect(cmd.Context(), dir)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), info)
		},
	}
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling result: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
