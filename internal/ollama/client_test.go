// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ollama

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
		goleak.IgnoreTopFunction("internal/poll.runtime_pollWait"),
	)
}

// newTestClient starts a server running handler and returns a client bound to it.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClientWithConfig(&ClientConfig{BaseURL: srv.URL, Model: "llama3.2"})
}

// =============================================================================
// CONFIG TESTS
// =============================================================================

func TestNewClientWithConfig_Defaults(t *testing.T) {
	c := NewClientWithConfig(&ClientConfig{})

	require.Equal(t, "http://localhost:11434/api/generate", c.Endpoint())
	require.Equal(t, DefaultModel, c.Model())
	require.Zero(t, c.httpClient.Timeout, "client must not impose a timeout")
}

func TestNewClientWithConfig_TrimsTrailingSlash(t *testing.T) {
	c := NewClientWithConfig(&ClientConfig{BaseURL: "http://127.0.0.1:9999/", Model: "phi3"})

	require.Equal(t, "http://127.0.0.1:9999/api/generate", c.Endpoint())
	require.Equal(t, "phi3", c.Model())
}

func TestNewClient_NilConfig(t *testing.T) {
	require.Equal(t, NewClient().Endpoint(), NewClientWithConfig(nil).Endpoint())
}

// =============================================================================
// ASK TESTS
// =============================================================================

func TestAsk_SendsGenerateRequest(t *testing.T) {
	type captured struct {
		method      string
		path        string
		contentType string
		body        []byte
	}
	seen := make(chan captured, 1)

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		seen <- captured{r.Method, r.URL.Path, r.Header.Get("Content-Type"), body}

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"model":"llama3.2","response":"Hi there","done":true}`)
	})

	answer, err := c.Ask(context.Background(), "Hello")
	require.NoError(t, err)
	require.Equal(t, "Hi there", answer)

	req := <-seen
	require.Equal(t, http.MethodPost, req.method)
	require.Equal(t, "/api/generate", req.path)
	require.Equal(t, "application/json", req.contentType)

	var got GenerateRequest
	require.NoError(t, json.Unmarshal(req.body, &got))
	require.Equal(t, GenerateRequest{Model: "llama3.2", Prompt: "Hello", Stream: false}, got)

	// stream must be present and false, not omitted
	var rawBody map[string]any
	require.NoError(t, json.Unmarshal(req.body, &rawBody))
	require.Contains(t, rawBody, "stream")
	require.Equal(t, false, rawBody["stream"])
}

func TestGenerate_DecodesEnvelope(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"model":"llama3.2","created_at":"2024-01-01T00:00:00Z","response":"4","done":true,"eval_count":3}`)
	})

	resp, err := c.Generate(context.Background(), "2+2?")
	require.NoError(t, err)
	require.Equal(t, &GenerateResponse{Model: "llama3.2", Response: "4", Done: true}, resp)
}

func TestAsk_MissingResponseFieldIsEmptySuccess(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"done":true}`)
	})

	answer, err := c.Ask(context.Background(), "Hello")
	require.NoError(t, err)
	require.Equal(t, "", answer)
}

func TestAsk_NonSuccessStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"error":"model 'llama3.2' not found"}`)
	})

	_, err := c.Ask(context.Background(), "Hello")
	require.Error(t, err)

	var ie *InferenceError
	require.True(t, errors.As(err, &ie))
	require.Equal(t, KindStatus, ie.Kind)
	require.Equal(t, http.StatusNotFound, ie.StatusCode)
	require.Equal(t, `{"error":"model 'llama3.2' not found"}`, ie.Body)
	require.Equal(t, `Ollama error: {"error":"model 'llama3.2' not found"}`, err.Error())
}

func TestAsk_ServerErrorEmptyBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.Ask(context.Background(), "Hello")

	var ie *InferenceError
	require.ErrorAs(t, err, &ie)
	require.Equal(t, KindStatus, ie.Kind)
	require.Equal(t, "Ollama error: status 500", err.Error())
}

func TestAsk_MalformedBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "<html>oops</html>"},
		{"truncated", `{"response":"Hi`},
		{"array", `["Hi"]`},
		{"string", `"Hi"`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				io.WriteString(w, tc.body)
			})

			_, err := c.Ask(context.Background(), "Hello")

			var ie *InferenceError
			require.ErrorAs(t, err, &ie)
			require.Equal(t, KindMalformed, ie.Kind)
			require.Equal(t, tc.body, ie.Body)
		})
	}
}

func TestAsk_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewClientWithConfig(&ClientConfig{BaseURL: url})
	_, err := c.Ask(context.Background(), "Hello")

	var ie *InferenceError
	require.ErrorAs(t, err, &ie)
	require.Equal(t, KindTransport, ie.Kind)
	require.NotNil(t, ie.Cause)
	require.True(t, IsInferenceError(err))
}

func TestAsk_CanceledContext(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"response":"late"}`)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Ask(ctx, "Hello")

	var ie *InferenceError
	require.ErrorAs(t, err, &ie)
	require.Equal(t, KindTransport, ie.Kind)
	require.ErrorIs(t, err, context.Canceled)
}

func TestAsk_NoRetry(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := c.Ask(context.Background(), "Hello")
	require.Error(t, err)
	require.Equal(t, int32(1), calls.Load())
}

// =============================================================================
// ERROR TYPE TESTS
// =============================================================================

func TestErrorKind_String(t *testing.T) {
	require.Equal(t, "transport", KindTransport.String())
	require.Equal(t, "status", KindStatus.String())
	require.Equal(t, "malformed", KindMalformed.String())
}

func TestIsInferenceError(t *testing.T) {
	require.False(t, IsInferenceError(nil))
	require.False(t, IsInferenceError(errors.New("plain")))
	require.True(t, IsInferenceError(&InferenceError{Kind: KindMalformed}))
}
