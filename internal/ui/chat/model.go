// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/brochat/internal/controller"
	"github.com/jeranaias/brochat/internal/ui/styles"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	inputPlaceholder = "Ask me anything......."
)

// Model is the Bubble Tea model for the chat screen.
type Model struct {
	ctx   context.Context
	ctrl  *controller.Controller
	keys  KeyMap
	theme *styles.Theme

	// modelInfo is shown in the status bar, usually "model @ url".
	modelInfo string

	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model
	markdown *markdownRenderer

	width  int
	height int
}

// Option configures a Model.
type Option func(*Model)

// WithModelInfo sets the model description shown in the status bar.
func WithModelInfo(s string) Option {
	return func(m *Model) { m.modelInfo = s }
}

// WithKeyMap replaces the default key bindings.
func WithKeyMap(k KeyMap) Option {
	return func(m *Model) { m.keys = k }
}

// New creates the chat view over ctrl. ctx is passed to every inference call.
func New(ctx context.Context, ctrl *controller.Controller, opts ...Option) Model {
	if ctx == nil {
		ctx = context.Background()
	}

	ti := textinput.New()
	ti.Placeholder = inputPlaceholder
	ti.Prompt = "> "
	ti.CharLimit = 0
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		ctx:      ctx,
		ctrl:     ctrl,
		keys:     DefaultKeyMap(),
		input:    ti,
		viewport: viewport.New(defaultWidth, defaultHeight),
		spinner:  sp,
		markdown: &markdownRenderer{},
		width:    defaultWidth,
		height:   defaultHeight,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.applyTheme()
	m.layout()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Controller returns the controller the view drives.
func (m Model) Controller() *controller.Controller {
	return m.ctrl
}

// applyTheme rebuilds styles from the current state's theme.
func (m *Model) applyTheme() {
	m.theme = styles.NewTheme(m.ctrl.Store().Theme())
	m.input.PromptStyle = m.theme.InputPrompt
	m.input.TextStyle = m.theme.InputText
	m.input.PlaceholderStyle = m.theme.Placeholder
	m.spinner.Style = m.theme.Spinner
}

// layout sizes the viewport and input to the terminal.
func (m *Model) layout() {
	m.input.Width = max(m.width-lenSendHint-8, 10)

	vh := m.height - chromeHeight
	if vh < 1 {
		vh = 1
	}
	m.viewport.Width = m.width
	m.viewport.Height = vh
	m.refresh()
}

// refresh re-renders the message list into the viewport and keeps the
// newest message in view.
func (m *Model) refresh() {
	m.rerender()
	m.viewport.GotoBottom()
}

// rerender updates the viewport content without moving the scroll position.
func (m *Model) rerender() {
	m.viewport.SetContent(m.renderMessages())
}
