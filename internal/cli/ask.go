// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jeranaias/brochat/internal/controller"
)

var errEmptyPrompt = errors.New("empty prompt")

func newAskCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "ask [prompt...]",
		Short: "Send one prompt and print the reply",
		Long: `Send one prompt and print the reply.

The prompt is the joined arguments. With no arguments and a non-terminal
stdin, the prompt is read from stdin.`,
		Example: `  brochat ask "what is a goroutine?"
  echo "summarize this" | brochat ask`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAsk(cmd, opts, args)
		},
	}
}

func runAsk(cmd *cobra.Command, opts *options, args []string) error {
	prompt, err := readPrompt(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	a, err := opts.setup()
	if err != nil {
		return err
	}
	defer a.close()

	ctrl := a.newController()
	ctrl.Handle(controller.EditDraft{Text: prompt})
	res, ok := ctrl.SubmitAndWait(cmd.Context())
	if !ok {
		return errEmptyPrompt
	}

	last, _ := ctrl.State().LastMessage()
	fmt.Fprintln(cmd.OutOrStdout(), last.Text)
	if res.Err != nil {
		return fmt.Errorf("ask: %w", res.Err)
	}
	return nil
}

// readPrompt joins args, or reads all of in when there are no args and in is
// not a terminal.
func readPrompt(args []string, in io.Reader) (string, error) {
	var prompt string
	switch {
	case len(args) > 0:
		prompt = strings.Join(args, " ")
	case !isTerminal(in):
		data, err := io.ReadAll(in)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		prompt = string(data)
	}

	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", errEmptyPrompt
	}
	return prompt, nil
}
