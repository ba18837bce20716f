// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ollama

import (
	"errors"
	"fmt"
)

// =============================================================================
// WIRE TYPES
// =============================================================================

// GenerateRequest is the request body for /api/generate.
type GenerateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

// GenerateResponse holds the fields brochat reads from a /api/generate reply.
// Ollama sends many more (timings, context); they are ignored.
type GenerateResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

// =============================================================================
// ERROR TYPES
// =============================================================================

// ErrorKind categorizes inference failures.
type ErrorKind int

const (
	// KindTransport: the request never produced an HTTP response.
	KindTransport ErrorKind = iota
	// KindStatus: the endpoint answered with a non-2xx status.
	KindStatus
	// KindMalformed: a 2xx body that is not a JSON object.
	KindMalformed
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindStatus:
		return "status"
	case KindMalformed:
		return "malformed"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// InferenceError is returned by Ask for every failure.
type InferenceError struct {
	Kind       ErrorKind
	StatusCode int    // set for KindStatus
	Body       string // response body for KindStatus and KindMalformed
	Cause      error  // set for KindTransport
}

func (e *InferenceError) Error() string {
	switch e.Kind {
	case KindTransport:
		if e.Cause != nil {
			return "Ollama error: " + e.Cause.Error()
		}
		return "Ollama error: transport failure"
	case KindStatus:
		if e.Body != "" {
			return "Ollama error: " + e.Body
		}
		return fmt.Sprintf("Ollama error: status %d", e.StatusCode)
	case KindMalformed:
		return "Ollama error: malformed response"
	default:
		return "Ollama error"
	}
}

func (e *InferenceError) Unwrap() error {
	return e.Cause
}

// IsInferenceError reports whether err is (or wraps) an *InferenceError.
func IsInferenceError(err error) bool {
	var ie *InferenceError
	return errors.As(err, &ie)
}
