// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/brochat/internal/controller"
)

// AskResultMsg carries a finished inference call back to Update.
type AskResultMsg struct {
	Result controller.Result
}

// askCmd runs req off the event loop. It must not touch the store.
func askCmd(ctx context.Context, ctrl *controller.Controller, req controller.Request) tea.Cmd {
	return func() tea.Msg {
		return AskResultMsg{Result: ctrl.Run(ctx, req)}
	}
}
