// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// markdownRenderer caches a glamour renderer for one style and wrap width.
type markdownRenderer struct {
	style string
	width int
	r     *glamour.TermRenderer
}

// render returns text as terminal markdown, or text unchanged if no renderer
// can be built or rendering fails.
func (m *markdownRenderer) render(text, style string, width int) string {
	if width < 10 {
		width = 10
	}
	if m.r == nil || m.style != style || m.width != width {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			m.r = nil
			return text
		}
		m.r, m.style, m.width = r, style, width
	}

	out, err := m.r.Render(text)
	if err != nil {
		return text
	}
	return strings.Trim(out, "\n")
}
