// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package controller

// Command is a discrete user interaction.
type Command interface {
	isCommand()
}

// EditDraft replaces the draft with the input's current text.
type EditDraft struct {
	Text string
}

// Submit sends the current draft, if it is non-blank and nothing is in flight.
type Submit struct{}

// ToggleTheme flips the display theme.
type ToggleTheme struct{}

func (EditDraft) isCommand()   {}
func (Submit) isCommand()      {}
func (ToggleTheme) isCommand() {}

// Request is an inference call produced by an accepted Submit.
type Request struct {
	// ID correlates log lines for one submit; it is not part of the state.
	ID     string
	Prompt string
}

// Result is the outcome of running a Request.
type Result struct {
	Request Request
	Reply   string
	Err     error
}
