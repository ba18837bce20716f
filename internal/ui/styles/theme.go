// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/brochat/internal/model"
)

// Theme holds all the styled components for one display mode.
type Theme struct {
	Name    model.Theme
	Palette Palette

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header       lipgloss.Style
	HeaderAccent lipgloss.Style
	Subtitle     lipgloss.Style

	// ==========================================================================
	// MESSAGE BUBBLE STYLES
	// ==========================================================================

	UserBubble      lipgloss.Style
	AssistantBubble lipgloss.Style
	UserLabel       lipgloss.Style
	AssistantLabel  lipgloss.Style
	Body            lipgloss.Style
	EmptyHint       lipgloss.Style

	// ==========================================================================
	// LOADING STYLES
	// ==========================================================================

	Spinner  lipgloss.Style
	Thinking lipgloss.Style

	// ==========================================================================
	// INPUT AREA STYLES
	// ==========================================================================

	InputContainer lipgloss.Style
	InputPrompt    lipgloss.Style
	InputText      lipgloss.Style
	Placeholder    lipgloss.Style
	SendEnabled    lipgloss.Style
	SendDisabled   lipgloss.Style

	// ==========================================================================
	// STATUS BAR STYLES
	// ==========================================================================

	StatusBar    lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style
	ErrorText    lipgloss.Style
}

// NewTheme creates a theme for the given mode. Anything other than light is
// treated as dark.
func NewTheme(mode model.Theme) *Theme {
	p := DarkPalette
	if mode == model.ThemeLight {
		p = LightPalette
	} else {
		mode = model.ThemeDark
	}

	t := &Theme{Name: mode, Palette: p}
	t.initStyles()
	return t
}

// GlamourStyle names the glamour standard style matching this theme.
func (t *Theme) GlamourStyle() string {
	if t.Name == model.ThemeLight {
		return "light"
	}
	return "dark"
}

// initStyles initializes all the lip gloss styles from the palette.
func (t *Theme) initStyles() {
	p := t.Palette

	// Header
	t.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.TextPrimary).
		Padding(1, 2, 0, 2)

	t.HeaderAccent = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Accent)

	t.Subtitle = lipgloss.NewStyle().
		Foreground(p.TextSecondary).
		Padding(0, 2)

	// Message bubbles
	t.UserBubble = lipgloss.NewStyle().
		Foreground(p.UserBubbleFg).
		Background(p.UserBubbleBg).
		Padding(0, 2)

	t.AssistantBubble = lipgloss.NewStyle().
		Foreground(p.AssistantBubbleFg).
		Background(p.AssistantBubbleBg).
		Padding(0, 2)

	t.UserLabel = lipgloss.NewStyle().
		Foreground(p.Accent).
		Bold(true)

	t.AssistantLabel = lipgloss.NewStyle().
		Foreground(p.TextSecondary).
		Bold(true)

	t.Body = lipgloss.NewStyle().
		Foreground(p.TextPrimary)

	t.EmptyHint = lipgloss.NewStyle().
		Foreground(p.TextMuted).
		Italic(true)

	// Loading
	t.Spinner = lipgloss.NewStyle().
		Foreground(p.Accent)

	t.Thinking = lipgloss.NewStyle().
		Foreground(p.TextMuted)

	// Input area
	t.InputContainer = lipgloss.NewStyle().
		Background(p.InputBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1)

	t.InputPrompt = lipgloss.NewStyle().
		Foreground(p.Accent).
		Bold(true)

	t.InputText = lipgloss.NewStyle().
		Foreground(p.TextPrimary)

	t.Placeholder = lipgloss.NewStyle().
		Foreground(p.TextMuted).
		Italic(true)

	t.SendEnabled = lipgloss.NewStyle().
		Foreground(p.Background).
		Background(p.Accent).
		Bold(true).
		Padding(0, 1)

	t.SendDisabled = lipgloss.NewStyle().
		Foreground(p.TextMuted).
		Background(p.Border).
		Padding(0, 1)

	// Status bar
	t.StatusBar = lipgloss.NewStyle().
		Foreground(p.TextSecondary).
		Padding(0, 1)

	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(p.Accent).
		Bold(true)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(p.TextMuted)

	t.ErrorText = lipgloss.NewStyle().
		Foreground(p.Error)
}
