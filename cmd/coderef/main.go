// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Command coderef copies code references with links to the hosted source.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/petar-djukic/go-coderef/internal/config"
	"github.com/petar-djukic/go-coderef/internal/logging"
)

const version = "0.1.0"

// app carries the state shared by subcommands once flags are parsed.
type app struct {
	v        *viper.Viper
	settings config.Settings
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:          "coderef",
		Short:        "Copy code references with links to the hosted source",
		Long:         "coderef renders a file location as a symbol path or file-and-line reference and links it to the file on GitHub, GitLab, Bitbucket or Azure DevOps.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}

	// Global flags.
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Config file (default .coderef.yaml in the working or home directory)")
	pf.Bool("include-relative-path", true, "Show the relative path instead of the file name")
	pf.Bool("link-source", true, "Append a link to the file on its git host")
	pf.String("cursor-type", config.RefTypeAsk, "Reference type for a cursor: Symbol, \"Filename (with line)\", \"Filename (no line)\" or Ask")
	pf.String("selection-type", config.RefTypeAsk, "Reference type for a selection")
	pf.Bool("use-git-root", true, "Build paths from the repository root instead of the workspace")
	pf.Bool("azure-line-highlight", false, "Add column and style parameters to Azure DevOps links")
	pf.Bool("no-git", false, "Disable git lookups")
	pf.Bool("no-input", false, "Never prompt; fail when a reference type must be chosen")
	pf.Duration("git-timeout", 0, "Timeout for each git command (0 waits indefinitely)")
	pf.String("log-level", config.DefaultLogLevel, "Log level: debug, info, warn, error or off")
	pf.String("log-format", config.DefaultLogFormat, "Log format: pretty or json")
	pf.BoolP("verbose", "v", false, "Shorthand for --log-level debug")

	// Bind flags to viper keys.
	for key, flag := range map[string]string{
		"includeRelativePath":    "include-relative-path",
		"linkSource":             "link-source",
		"cursorReferenceType":    "cursor-type",
		"selectionReferenceType": "selection-type",
		"useGitRoot":             "use-git-root",
		"azureLineHighlight":     "azure-line-highlight",
		"logging.level":          "log-level",
		"logging.format":         "log-format",
	} {
		_ = a.v.BindPFlag(key, pf.Lookup(flag))
	}

	rootCmd.AddCommand(newCopyCmd(a))
	rootCmd.AddCommand(newLinkCmd(a))
	rootCmd.AddCommand(newRemoteCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// load reads the settings and installs the logger on the command context.
func (a *app) load(cmd *cobra.Command) error {
	configFile, _ := cmd.Flags().GetString("config")

	s, err := config.Load(a.v, configFile)
	if err != nil {
		return err
	}
	a.settings = s

	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := logging.New(logging.Options{
		Level:   s.Logging.Level,
		Format:  s.Logging.Format,
		Output:  cmd.ErrOrStderr(),
		Verbose: verbose,
	})
	cmd.SetContext(logger.WithContext(cmd.Context()))

	logger.Debug().Str("config", a.v.ConfigFileUsed()).Msg("settings loaded")
	return nil
}

// newVersionCmd creates the "version" command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print coderef version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "coderef %s\n", version)
		},
	}
}
