// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the brochat TUI.
//
// Unlike lipgloss.AdaptiveColor, which follows the terminal background, the
// palette here is chosen by the conversation's own theme so that the user can
// flip it with a keypress.
//
// # Usage
//
//	theme := styles.NewTheme(model.ThemeDark)
//	fmt.Println(theme.UserBubble.Render("Hello"))
package styles
