// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/brochat/internal/model"
	"github.com/jeranaias/brochat/internal/util"
)

const (
	greeting     = "Hey! "
	brand        = "Bro"
	subtitle     = "What can I help with?"
	emptyHint    = "Say something to your bro."
	thinkingText = "Thinking..."
	sendHint     = "send ⏎"

	// lenSendHint is the rendered width of the send hint including padding.
	lenSendHint = 8

	// chromeHeight is everything that is not the viewport: title (2),
	// subtitle (1), bordered input (3) and status bar (1).
	chromeHeight = 7
)

// View implements tea.Model.
func (m Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.viewport.View(),
		m.renderInput(),
		m.renderStatus(),
	)
}

// =============================================================================
// HEADER
// =============================================================================

func (m Model) renderHeader() string {
	t := m.theme
	head := t.Header.Render(greeting + t.HeaderAccent.Render(brand))
	return lipgloss.JoinVertical(lipgloss.Left, head, t.Subtitle.Render(subtitle))
}

// =============================================================================
// MESSAGES
// =============================================================================

func (m Model) renderMessages() string {
	state := m.ctrl.State()
	t := m.theme

	if len(state.Messages) == 0 && !state.Busy() {
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, t.EmptyHint.Render(emptyHint))
	}

	bubbleWidth := max(m.width*3/4, 20)
	var b strings.Builder
	for i, msg := range state.Messages {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(m.renderMessage(msg, bubbleWidth))
	}

	if state.Busy() {
		if len(state.Messages) > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(" " + m.spinner.View() + " " + t.Thinking.Render(thinkingText))
	}
	return b.String()
}

// renderMessage draws one bubble. User bubbles sit on the right.
func (m Model) renderMessage(msg model.Message, width int) string {
	t := m.theme
	if msg.IsUser() {
		label := t.UserLabel.Render(msg.Sender.DisplayName())
		bubble := t.UserBubble.MaxWidth(width).Render(wrap(msg.Text, width-4))
		block := lipgloss.JoinVertical(lipgloss.Right, label, bubble)
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Right, block)
	}

	label := t.AssistantLabel.Render(msg.Sender.DisplayName())
	body := m.markdown.render(msg.Text, t.GlamourStyle(), width-4)
	return lipgloss.JoinVertical(lipgloss.Left, label, t.AssistantBubble.Render(body))
}

// wrap soft-wraps plain text to width cells.
func wrap(text string, width int) string {
	return lipgloss.NewStyle().Width(max(width, 1)).Render(text)
}

// =============================================================================
// INPUT AND STATUS
// =============================================================================

func (m Model) renderInput() string {
	t := m.theme
	hint := t.SendDisabled.Render(sendHint)
	if m.ctrl.State().CanSubmit() {
		hint = t.SendEnabled.Render(sendHint)
	}
	row := lipgloss.JoinHorizontal(lipgloss.Center, m.input.View(), " ", hint)
	return t.InputContainer.Width(max(m.width-2, 1)).Render(row)
}

func (m Model) renderStatus() string {
	t := m.theme
	parts := make([]string, 0, len(m.keys.ShortHelp())+1)
	for _, b := range m.keys.ShortHelp() {
		parts = append(parts, helpEntry(t.ShortcutKey, t.ShortcutDesc, b))
	}
	parts = append(parts, t.ShortcutDesc.Render(m.theme.Name.String()))
	line := strings.Join(parts, t.ShortcutDesc.Render(" • "))

	if m.modelInfo != "" {
		room := m.width - lipgloss.Width(line) - 5
		if room > 3 {
			info := util.TruncateWidth(util.SingleLine(m.modelInfo), room)
			line += t.ShortcutDesc.Render(" • ") + t.Subtitle.UnsetPadding().Render(info)
		}
	}
	return t.StatusBar.Render(line)
}

func helpEntry(k, d lipgloss.Style, b key.Binding) string {
	h := b.Help()
	return k.Render(h.Key) + " " + d.Render(h.Desc)
}
