// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared by the brochat packages.
//
// # Key Functions
//
//   - AtomicWriteFile: crash-safe file writing with fsync, used for config files
//   - TruncateWidth: display-width aware truncation for the status bar
//   - SingleLine: collapses whitespace so multi-line text fits a header line
//
// # Usage
//
//	err := util.AtomicWriteFile(path, data, 0600)
//	title := util.TruncateWidth(model, 24)
package util
