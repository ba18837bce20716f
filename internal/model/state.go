// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"fmt"
	"strings"
)

// =============================================================================
// THEME
// =============================================================================

// Theme is the cosmetic display mode.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// DefaultTheme is used when nothing else is configured.
const DefaultTheme = ThemeDark

// String returns the string representation of the theme.
func (t Theme) String() string {
	return string(t)
}

// Toggle returns the other theme. Anything that is not light becomes light,
// so an unset theme behaves like dark.
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// ParseTheme parses "light" or "dark" (case-insensitive).
func ParseTheme(s string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return ThemeLight, nil
	case "dark":
		return ThemeDark, nil
	default:
		return "", fmt.Errorf("unknown theme %q (want light or dark)", s)
	}
}

// =============================================================================
// PHASE
// =============================================================================

// Phase is the request state machine: Idle -> Busy -> Idle.
// While Busy, no further prompt may be submitted.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseBusy
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseBusy:
		return "busy"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// =============================================================================
// STATE
// =============================================================================

// State is the complete conversation state for one session.
type State struct {
	Messages []Message
	Draft    string
	Phase    Phase
	Theme    Theme
}

// NewState returns the initial state: no messages, empty draft, idle, and the
// given theme (DefaultTheme when empty).
func NewState(theme Theme) State {
	if theme == "" {
		theme = DefaultTheme
	}
	return State{
		Messages: []Message{},
		Phase:    PhaseIdle,
		Theme:    theme,
	}
}

// Busy reports whether an inference request is outstanding.
func (s State) Busy() bool {
	return s.Phase == PhaseBusy
}

// CanSubmit reports whether the current draft may be submitted: it must be
// non-blank and no request may be in flight.
func (s State) CanSubmit() bool {
	return !s.Busy() && strings.TrimSpace(s.Draft) != ""
}

// LastMessage returns the most recent message, if any.
func (s State) LastMessage() (Message, bool) {
	if len(s.Messages) == 0 {
		return Message{}, false
	}
	return s.Messages[len(s.Messages)-1], true
}

// Clone returns a copy whose message slice does not share storage with s.
func (s State) Clone() State {
	out := s
	out.Messages = make([]Message, len(s.Messages))
	copy(out.Messages, s.Messages)
	return out
}
