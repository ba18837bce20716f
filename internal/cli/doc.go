// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides the brochat command line.
//
// # Commands
//
//	brochat                  start the chat TUI
//	brochat ask [prompt...]  send one prompt and print the reply
//	brochat chat             line-mode chat without the full-screen UI
//	brochat config show      print the effective configuration
//	brochat config init      write a default config file
//
// Every command builds the same stack: config (file, environment, flags),
// a zap logger, an Ollama client and a controller over a fresh conversation.
package cli
