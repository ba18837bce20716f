// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the Bubble Tea chat view for brochat.
//
// The view owns no conversation state of its own. Every interaction is turned
// into a controller.Command, and rendering reads a fresh snapshot from the
// controller each time. The inference call runs inside a tea.Cmd and reports
// back with an AskResultMsg, which keeps all store mutation on the Update
// goroutine.
//
// # Key bindings
//
//	Enter        send the draft
//	Ctrl+T       toggle light/dark theme
//	PgUp/PgDn    scroll the conversation
//	Esc/Ctrl+C   quit
package chat
