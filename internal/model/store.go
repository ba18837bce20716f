// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

// Store owns a single State and mutates it only through Reduce.
//
// Store is not safe for concurrent use. It is meant to be owned by one event
// loop (the Bubble Tea update loop or the line-mode REPL).
type Store struct {
	state State
}

// NewStore creates a store holding NewState(theme).
func NewStore(theme Theme) *Store {
	return &Store{state: NewState(theme)}
}

// NewStoreFrom creates a store holding a copy of s.
func NewStoreFrom(s State) *Store {
	return &Store{state: s.Clone()}
}

// Dispatch applies an action to the held state.
func (st *Store) Dispatch(a Action) {
	st.state = Reduce(st.state, a)
}

// State returns a snapshot of the current state.
func (st *Store) State() State {
	return st.state.Clone()
}

// SetDraft replaces the draft input.
func (st *Store) SetDraft(text string) {
	st.Dispatch(SetDraft{Text: text})
}

// AppendMessage appends a message.
func (st *Store) AppendMessage(sender Sender, text string) {
	st.Dispatch(AppendMessage{Sender: sender, Text: text})
}

// SetBusy sets the phase.
func (st *Store) SetBusy(busy bool) {
	st.Dispatch(SetBusy{Busy: busy})
}

// ClearDraft empties the draft input.
func (st *Store) ClearDraft() {
	st.Dispatch(ClearDraft{})
}

// ToggleTheme flips the theme.
func (st *Store) ToggleTheme() {
	st.Dispatch(ToggleTheme{})
}

// Draft returns the current draft without copying the message history.
func (st *Store) Draft() string {
	return st.state.Draft
}

// Busy reports whether a request is in flight.
func (st *Store) Busy() bool {
	return st.state.Busy()
}

// Theme returns the current theme.
func (st *Store) Theme() Theme {
	return st.state.Theme
}

// Len returns the number of messages.
func (st *Store) Len() int {
	return len(st.state.Messages)
}
