// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/brochat/internal/controller"
	"github.com/jeranaias/brochat/internal/model"
)

type fakeAsker struct {
	reply   string
	err     error
	prompts []string
}

func (f *fakeAsker) Ask(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.reply, f.err
}

func newTestModel(t *testing.T, asker controller.Asker) Model {
	t.Helper()
	ctrl := controller.New(asker, model.ThemeDark)
	m := New(context.Background(), ctrl, WithModelInfo("llama3.2"))
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return next.(Model)
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return next.(Model)
}

func press(t *testing.T, m Model, k tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(k)
	return next.(Model), cmd
}

// askResult runs cmd and returns the AskResultMsg it produces, descending
// into batches.
func askResult(t *testing.T, cmd tea.Cmd) AskResultMsg {
	t.Helper()
	require.NotNil(t, cmd)

	switch msg := cmd().(type) {
	case AskResultMsg:
		return msg
	case tea.BatchMsg:
		for _, c := range msg {
			if c == nil {
				continue
			}
			if res, ok := c().(AskResultMsg); ok {
				return res
			}
		}
	}
	t.Fatal("command did not produce an AskResultMsg")
	return AskResultMsg{}
}

// =============================================================================
// INPUT TESTS
// =============================================================================

func TestTypingUpdatesDraft(t *testing.T) {
	m := newTestModel(t, &fakeAsker{})
	m = typeText(t, m, "hey")

	require.Equal(t, "hey", m.Controller().State().Draft)
	require.Contains(t, m.View(), "hey")
}

func TestEnterWithEmptyDraftDoesNothing(t *testing.T) {
	asker := &fakeAsker{}
	m := newTestModel(t, asker)
	m = typeText(t, m, "   ")

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Nil(t, cmd)
	require.Empty(t, m.Controller().State().Messages)
	require.False(t, m.Controller().State().Busy())
	require.Empty(t, asker.prompts)
}

func TestAltEnterDoesNotSubmit(t *testing.T) {
	m := newTestModel(t, &fakeAsker{})
	m = typeText(t, m, "hello")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter, Alt: true})
	require.Empty(t, m.Controller().State().Messages)
	require.Equal(t, "hello", m.Controller().State().Draft)
}

func TestCtrlUEditsInput(t *testing.T) {
	m := newTestModel(t, &fakeAsker{})
	m = typeText(t, m, "hello")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlU})
	require.Empty(t, m.input.Value())
	require.Empty(t, m.Controller().State().Draft)
}

// =============================================================================
// SUBMIT FLOW TESTS
// =============================================================================

func TestSubmitRoundTrip(t *testing.T) {
	asker := &fakeAsker{reply: "4"}
	m := newTestModel(t, asker)
	m = typeText(t, m, "2+2?")

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	state := m.Controller().State()
	require.True(t, state.Busy())
	require.Empty(t, state.Draft)
	require.Empty(t, m.input.Value())
	require.False(t, m.input.Focused())
	require.Contains(t, m.View(), thinkingText)

	res := askResult(t, cmd)
	next, _ := m.Update(res)
	m = next.(Model)

	want := []model.Message{
		model.NewUserMessage("2+2?"),
		model.NewAssistantMessage("4"),
	}
	state = m.Controller().State()
	if diff := cmp.Diff(want, state.Messages); diff != "" {
		t.Errorf("messages mismatch (-want +got):\n%s", diff)
	}
	require.False(t, state.Busy())
	require.True(t, m.input.Focused())
	require.NotContains(t, m.View(), thinkingText)
	require.Equal(t, []string{"2+2?"}, asker.prompts)
}

func TestSubmitFailureShowsPlaceholder(t *testing.T) {
	m := newTestModel(t, &fakeAsker{err: errors.New("connection refused")})
	m = typeText(t, m, "hi")

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	next, _ := m.Update(askResult(t, cmd))
	m = next.(Model)

	last, ok := m.Controller().State().LastMessage()
	require.True(t, ok)
	require.Equal(t, model.NewAssistantMessage(controller.ErrorPlaceholder), last)
	require.False(t, m.Controller().State().Busy())
}

func TestInputIgnoredWhileBusy(t *testing.T) {
	m := newTestModel(t, &fakeAsker{reply: "ok"})
	m = typeText(t, m, "first")
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	m = typeText(t, m, "second")
	require.Empty(t, m.Controller().State().Draft)

	m, again := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Nil(t, again)
	require.Len(t, m.Controller().State().Messages, 1)
}

func TestSpinnerTickKeepsScrollPosition(t *testing.T) {
	state := model.NewState(model.ThemeDark)
	for i := 0; i < 20; i++ {
		state.Messages = append(state.Messages,
			model.NewUserMessage("question"),
			model.NewAssistantMessage("answer"))
	}
	ctrl := controller.New(&fakeAsker{reply: "ok"}, model.ThemeDark,
		controller.WithStore(model.NewStoreFrom(state)))

	var m Model
	next, _ := New(context.Background(), ctrl).Update(tea.WindowSizeMsg{Width: 80, Height: 16})
	m = next.(Model)
	m = typeText(t, m, "more")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.Controller().State().Busy())
	require.True(t, m.viewport.AtBottom())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyPgUp})
	require.False(t, m.viewport.AtBottom())
	offset := m.viewport.YOffset

	next, _ = m.Update(spinner.TickMsg{Time: time.Now(), ID: m.spinner.ID()})
	m = next.(Model)
	require.Equal(t, offset, m.viewport.YOffset)
}

// =============================================================================
// THEME AND QUIT TESTS
// =============================================================================

func TestCtrlTTogglesTheme(t *testing.T) {
	m := newTestModel(t, &fakeAsker{})

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	require.Equal(t, model.ThemeLight, m.Controller().State().Theme)
	require.Equal(t, model.ThemeLight, m.theme.Name)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	require.Equal(t, model.ThemeDark, m.theme.Name)
}

func TestQuitKeys(t *testing.T) {
	for _, k := range []tea.KeyMsg{{Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		m := newTestModel(t, &fakeAsker{})
		_, cmd := press(t, m, k)
		require.NotNil(t, cmd, k.String())
		require.Equal(t, tea.QuitMsg{}, cmd(), k.String())
	}
}

// =============================================================================
// VIEW TESTS
// =============================================================================

func TestViewEmptyConversation(t *testing.T) {
	m := newTestModel(t, &fakeAsker{})
	view := m.View()

	require.Contains(t, view, "Hey! Bro")
	require.Contains(t, view, subtitle)
	require.Contains(t, view, inputPlaceholder)
	require.Contains(t, view, "llama3.2")
	require.Contains(t, view, emptyHint)
}

func TestViewShowsUserLabel(t *testing.T) {
	m := newTestModel(t, &fakeAsker{reply: "yo"})
	m = typeText(t, m, "sup")
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	next, _ := m.Update(askResult(t, cmd))
	m = next.(Model)

	view := m.View()
	require.Contains(t, view, "You")
	require.Equal(t, 2, strings.Count(view, "Bro"), "header and assistant label")
	require.Contains(t, view, "sup")
}

func TestMarkdownRendererFallsBackForTinyWidth(t *testing.T) {
	r := &markdownRenderer{}
	out := r.render("plain", "dark", 0)
	require.Contains(t, out, "plain")
	require.Equal(t, 10, r.width)
}
