// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/jeranaias/brochat/internal/config"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// options holds the persistent flag values shared by every command.
type options struct {
	configPath string
	overrides  config.Overrides
}

// NewRootCommand builds the brochat command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "brochat",
		Short: "Chat with your bro, a local Ollama model",
		Long: `brochat is a terminal chat client for a local Ollama server.

Run it with no arguments for the full-screen chat, or use "ask" and "chat"
for scripts and plain terminals.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", Version, GitCommit, BuildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default ~/.brochat/config.toml)")
	flags.StringVar(&opts.overrides.URL, "url", "", "Ollama base URL")
	flags.StringVarP(&opts.overrides.Model, "model", "m", "", "model name")
	flags.StringVar(&opts.overrides.Theme, "theme", "", "theme: light, dark or auto")
	flags.StringVar(&opts.overrides.LogFile, "log-file", "", "write logs to this file")
	flags.BoolVar(&opts.overrides.Debug, "debug", false, "enable debug logging")

	root.AddCommand(
		newAskCommand(opts),
		newChatCommand(opts),
		newConfigCommand(opts),
	)
	return root
}

// Execute runs the root command with an interrupt-aware context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return NewRootCommand().ExecuteContext(ctx)
}
