// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for brochat.
//
// Configuration is TOML, with sensible defaults, environment variable
// overrides, and validation.
//
// # Configuration Precedence
//
// Highest first:
//   - Command-line flags (applied by the cli package via Overrides)
//   - Environment variables (BROCHAT_OLLAMA_URL, BROCHAT_MODEL)
//   - ~/.brochat/config.toml (or the --config path)
//   - Built-in defaults
//
// # Usage
//
//	cfg, err := config.Load("")
//	if err != nil {
//	    return err
//	}
//	if err := cfg.Apply(overrides); err != nil {
//	    return err
//	}
//	client := ollama.NewClientWithConfig(&ollama.ClientConfig{
//	    BaseURL: cfg.Ollama.URL,
//	    Model:   cfg.Ollama.Model,
//	})
package config
