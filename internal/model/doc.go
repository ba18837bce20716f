// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the conversation state and the reducer that mutates it.
//
// State is only ever changed by applying an Action through Reduce. Reduce is
// pure: it returns a new State and never writes through the old one, so a
// snapshot taken before an action stays valid after it.
//
// # Key Types
//
//   - Message: one chat entry (sender + text), immutable once created
//   - State: messages, draft input, phase (idle/busy) and theme
//   - Phase: the idle -> busy -> idle guard for the single in-flight request
//   - Action: SetDraft, AppendMessage, SetBusy, ClearDraft, ToggleTheme
//   - Store: owns one State and applies actions to it
//
// # Usage
//
//	store := model.NewStore(model.ThemeDark)
//	store.SetDraft("Hello")
//	store.AppendMessage(model.SenderUser, "Hello")
//	fmt.Println(store.State().Messages)
package model
