// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

// =============================================================================
// ACTIONS
// =============================================================================

// Action is a named state mutation. The set is closed: only the types in
// this file implement it.
type Action interface {
	isAction()
}

// SetDraft replaces the draft input.
type SetDraft struct {
	Text string
}

// AppendMessage appends a message to the end of the conversation.
// Empty text is permitted.
type AppendMessage struct {
	Sender Sender
	Text   string
}

// SetBusy moves the phase to Busy (true) or Idle (false).
type SetBusy struct {
	Busy bool
}

// ClearDraft empties the draft input.
type ClearDraft struct{}

// ToggleTheme flips between light and dark.
type ToggleTheme struct{}

func (SetDraft) isAction()      {}
func (AppendMessage) isAction() {}
func (SetBusy) isAction()       {}
func (ClearDraft) isAction()    {}
func (ToggleTheme) isAction()   {}

// =============================================================================
// REDUCER
// =============================================================================

// Reduce applies an action to a state and returns the resulting state.
// It never fails; an unrecognised action returns s unchanged.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case SetDraft:
		s.Draft = a.Text
	case AppendMessage:
		// Copy so earlier snapshots never observe the append
		msgs := make([]Message, len(s.Messages), len(s.Messages)+1)
		copy(msgs, s.Messages)
		s.Messages = append(msgs, Message{Sender: a.Sender, Text: a.Text})
	case SetBusy:
		if a.Busy {
			s.Phase = PhaseBusy
		} else {
			s.Phase = PhaseIdle
		}
	case ClearDraft:
		s.Draft = ""
	case ToggleTheme:
		s.Theme = s.Theme.Toggle()
	}
	return s
}

// ReduceAll applies actions in order.
func ReduceAll(s State, actions ...Action) State {
	for _, a := range actions {
		s = Reduce(s, a)
	}
	return s
}
