// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ollama provides the HTTP client for the Ollama generate endpoint.
//
// The client sends one non-streaming POST to /api/generate per prompt and
// returns the complete answer. It never retries and sets no timeout of its
// own; the caller's context is the only way a request ends early.
//
// # Key Types
//
//   - Client: HTTP client bound to one endpoint and one model
//   - ClientConfig: base URL, model, logger and optional *http.Client
//   - GenerateRequest / GenerateResponse: the wire format
//   - InferenceError: the single failure type (transport, status, malformed)
//
// # Usage
//
//	client := ollama.NewClientWithConfig(&ollama.ClientConfig{
//	    BaseURL: "http://localhost:11434",
//	    Model:   "llama3.2",
//	})
//	answer, err := client.Ask(ctx, "Hello")
//	if ollama.IsInferenceError(err) {
//	    // show a placeholder
//	}
package ollama
