// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jeranaias/brochat/internal/ui/chat"
)

var errNotTerminal = errors.New(`stdin is not a terminal; use "brochat ask" for piped input`)

// runTUI starts the full-screen chat.
func runTUI(cmd *cobra.Command, opts *options) error {
	if !isTerminal(cmd.InOrStdin()) {
		return errNotTerminal
	}

	a, err := opts.setup()
	if err != nil {
		return err
	}
	defer a.close()

	ctrl := a.newController()
	view := chat.New(cmd.Context(), ctrl,
		chat.WithModelInfo(fmt.Sprintf("%s @ %s", a.client.Model(), a.cfg.Ollama.URL)))

	a.log.Info("starting tui", zap.String("model", a.client.Model()))
	p := tea.NewProgram(view, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("tui: %w", err)
	}
	a.log.Info("tui exited", zap.Int("messages", ctrl.Store().Len()))
	return nil
}
