// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/jeranaias/brochat/internal/controller"
	"github.com/jeranaias/brochat/internal/ui/styles"
)

const (
	replPrompt = "you> "

	cmdTheme = "/theme"
	cmdQuit  = "/quit"
)

// lineReader is the subset of *liner.State the REPL needs.
type lineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

func newChatCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Chat line by line without the full-screen UI",
		Long: `Chat line by line without the full-screen UI.

Commands:
  /theme   toggle light/dark output
  /quit    exit (Ctrl+D also exits)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := opts.setup()
			if err != nil {
				return err
			}
			defer a.close()

			line := liner.NewLiner()
			defer line.Close()
			line.SetCtrlCAborts(true)

			return runREPL(cmd.Context(), a.newController(), line, cmd.OutOrStdout())
		},
	}
}

// runREPL reads lines until EOF or /quit. Each line goes through the same
// draft/submit sequence the TUI uses.
func runREPL(ctx context.Context, ctrl *controller.Controller, in lineReader, out io.Writer) error {
	theme := styles.NewTheme(ctrl.Store().Theme())
	fmt.Fprintln(out, "Hey! "+theme.HeaderAccent.Render("Bro")+" "+
		theme.ShortcutDesc.Render("/theme to toggle, /quit to exit"))

	for {
		if ctx.Err() != nil {
			return nil
		}

		text, err := in.Prompt(replPrompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(out)
			return nil
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		switch strings.TrimSpace(text) {
		case cmdQuit:
			return nil
		case cmdTheme:
			ctrl.Handle(controller.ToggleTheme{})
			theme = styles.NewTheme(ctrl.Store().Theme())
			fmt.Fprintln(out, theme.ShortcutDesc.Render("theme: "+theme.Name.String()))
			continue
		}

		ctrl.Handle(controller.EditDraft{Text: text})
		if !ctrl.State().CanSubmit() {
			continue
		}
		in.AppendHistory(text)

		fmt.Fprintln(out, theme.Thinking.Render("Thinking..."))
		res, ok := ctrl.SubmitAndWait(ctx)
		if !ok {
			continue
		}

		last, _ := ctrl.State().LastMessage()
		fmt.Fprintln(out, theme.AssistantLabel.Render(last.Sender.DisplayName()+":")+" "+
			replyStyle(theme, res).Render(last.Text))
	}
}

// replyStyle picks the style for the text of res. Failure is decided by the
// result, not by what the text says.
func replyStyle(theme *styles.Theme, res controller.Result) lipgloss.Style {
	if res.Err != nil {
		return theme.ErrorText
	}
	return theme.Body
}
