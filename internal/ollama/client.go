// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// =============================================================================
// CLIENT CONFIGURATION
// =============================================================================

const (
	// DefaultBaseURL is the reference local Ollama deployment.
	DefaultBaseURL = "http://localhost:11434"

	// DefaultModel is the model requested when none is configured.
	DefaultModel = "llama3.2"

	generatePath = "/api/generate"
)

// ClientConfig holds configuration options for the Ollama client.
type ClientConfig struct {
	// BaseURL is the Ollama API base URL (default: http://localhost:11434)
	BaseURL string

	// Model is sent with every request (default: "llama3.2")
	Model string

	// HTTPClient overrides the transport. It must not carry a Timeout if the
	// no-timeout contract matters to the caller.
	HTTPClient *http.Client

	// Logger receives request/failure events (default: no-op)
	Logger *zap.Logger
}

// DefaultConfig returns the default client configuration.
func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		BaseURL: DefaultBaseURL,
		Model:   DefaultModel,
	}
}

// =============================================================================
// CLIENT
// =============================================================================

// Client sends prompts to a single, fixed generate endpoint.
// The endpoint is resolved once at construction and never changes.
//
// The Client is safe for concurrent use, although brochat only ever has one
// request in flight.
type Client struct {
	endpoint   string
	model      string
	httpClient *http.Client
	log        *zap.Logger
}

// NewClient creates a new Ollama client with default configuration.
func NewClient() *Client {
	return NewClientWithConfig(DefaultConfig())
}

// NewClientWithConfig creates a new Ollama client with custom configuration.
// Zero values are filled from DefaultConfig.
func NewClientWithConfig(config *ClientConfig) *Client {
	if config == nil {
		config = DefaultConfig()
	}

	baseURL := strings.TrimRight(config.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	model := config.Model
	if model == "" {
		model = DefaultModel
	}
	httpClient := config.HTTPClient
	if httpClient == nil {
		// No Timeout: the call blocks until the endpoint answers or the
		// caller's context ends.
		httpClient = &http.Client{}
	}
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		endpoint:   baseURL + generatePath,
		model:      model,
		httpClient: httpClient,
		log:        logger,
	}
}

// Endpoint returns the full generate URL this client posts to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Model returns the model identifier sent with each request.
func (c *Client) Model() string {
	return c.model
}

// =============================================================================
// GENERATE
// =============================================================================

// Ask sends prompt to the endpoint and returns the generated text.
//
// Any failure is an *InferenceError. A 2xx JSON object with no "response"
// field yields "" and a nil error.
func (c *Client) Ask(ctx context.Context, prompt string) (string, error) {
	resp, err := c.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	return resp.Response, nil
}

// Generate is Ask returning the decoded response envelope.
func (c *Client) Generate(ctx context.Context, prompt string) (*GenerateResponse, error) {
	body, err := json.Marshal(GenerateRequest{
		Model:  c.model,
		Prompt: prompt,
		Stream: false,
	})
	if err != nil {
		return nil, &InferenceError{Kind: KindTransport, Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &InferenceError{Kind: KindTransport, Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	c.log.Debug("generate request",
		zap.String("endpoint", c.endpoint),
		zap.String("model", c.model),
		zap.Int("prompt_len", len(prompt)))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("generate transport failure", zap.Error(err))
		return nil, &InferenceError{Kind: KindTransport, Cause: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Warn("generate read failure", zap.Int("status", resp.StatusCode), zap.Error(err))
		return nil, &InferenceError{Kind: KindTransport, Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn("generate non-success status",
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(raw)))
		return nil, &InferenceError{Kind: KindStatus, StatusCode: resp.StatusCode, Body: string(raw)}
	}

	result, ok := parseGenerate(raw)
	if !ok {
		c.log.Warn("generate malformed response", zap.Int("status", resp.StatusCode))
		return nil, &InferenceError{Kind: KindMalformed, Body: string(raw)}
	}

	c.log.Debug("generate response",
		zap.Int("status", resp.StatusCode),
		zap.Int("response_len", len(result.Response)))
	return result, nil
}

// parseGenerate extracts the fields brochat uses. The body must be a JSON
// object; a missing "response" field is not an error.
func parseGenerate(raw []byte) (*GenerateResponse, bool) {
	if !gjson.ValidBytes(raw) {
		return nil, false
	}
	root := gjson.ParseBytes(raw)
	if !root.IsObject() {
		return nil, false
	}
	return &GenerateResponse{
		Model:    root.Get("model").String(),
		Response: root.Get("response").String(),
		Done:     root.Get("done").Bool(),
	}, true
}
