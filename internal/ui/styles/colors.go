// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import "github.com/charmbracelet/lipgloss"

// Palette is the set of colors one theme is built from.
type Palette struct {
	// Accent is the brand color (header highlight, send hint, prompt)
	Accent lipgloss.Color

	// Surfaces
	Background lipgloss.Color
	Card       lipgloss.Color
	InputBg    lipgloss.Color
	Border     lipgloss.Color

	// Text
	TextPrimary   lipgloss.Color
	TextSecondary lipgloss.Color
	TextMuted     lipgloss.Color

	// Message bubbles
	UserBubbleBg      lipgloss.Color
	UserBubbleFg      lipgloss.Color
	AssistantBubbleBg lipgloss.Color
	AssistantBubbleFg lipgloss.Color

	// Semantic
	Error lipgloss.Color
}

// =============================================================================
// PALETTES
// =============================================================================

// DarkPalette is the default: deep navy card with a mint accent.
var DarkPalette = Palette{
	Accent: lipgloss.Color("#4EF3C2"),

	Background: lipgloss.Color("#101223"),
	Card:       lipgloss.Color("#191B37"),
	InputBg:    lipgloss.Color("#14162E"),
	Border:     lipgloss.Color("#313244"),

	TextPrimary:   lipgloss.Color("#FFFFFF"),
	TextSecondary: lipgloss.Color("#CFCFCF"),
	TextMuted:     lipgloss.Color("#AAAAAA"),

	UserBubbleBg:      lipgloss.Color("#1E3A2F"),
	UserBubbleFg:      lipgloss.Color("#FFFFFF"),
	AssistantBubbleBg: lipgloss.Color("#FFFFFF"),
	AssistantBubbleFg: lipgloss.Color("#000000"),

	Error: lipgloss.Color("#FB7185"),
}

// LightPalette mirrors DarkPalette for light terminals.
var LightPalette = Palette{
	Accent: lipgloss.Color("#059669"),

	Background: lipgloss.Color("#FFFFFF"),
	Card:       lipgloss.Color("#F5F5F5"),
	InputBg:    lipgloss.Color("#FAFAFA"),
	Border:     lipgloss.Color("#D4D4D4"),

	TextPrimary:   lipgloss.Color("#1F2937"),
	TextSecondary: lipgloss.Color("#6B7280"),
	TextMuted:     lipgloss.Color("#9CA3AF"),

	UserBubbleBg:      lipgloss.Color("#D1FAE5"),
	UserBubbleFg:      lipgloss.Color("#065F46"),
	AssistantBubbleBg: lipgloss.Color("#F5F3FF"),
	AssistantBubbleFg: lipgloss.Color("#1F2937"),

	Error: lipgloss.Color("#E11D48"),
}
