// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package controller

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jeranaias/brochat/internal/model"
)

// ErrorPlaceholder is shown as the assistant's reply when inference fails.
const ErrorPlaceholder = "Error getting response."

// Asker turns a prompt into generated text. *ollama.Client implements it.
type Asker interface {
	Ask(ctx context.Context, prompt string) (string, error)
}

// Controller owns the conversation store and is the only thing that mutates it.
// It is not safe for concurrent use; drive it from one event loop.
type Controller struct {
	store *model.Store
	asker Asker
	log   *zap.Logger

	// pending is the request currently in flight, if any
	pending *Request
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger (default: no-op).
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithStore replaces the initial store.
func WithStore(s *model.Store) Option {
	return func(c *Controller) {
		if s != nil {
			c.store = s
		}
	}
}

// New creates a controller over a fresh store with the given theme.
func New(asker Asker, theme model.Theme, opts ...Option) *Controller {
	c := &Controller{
		store: model.NewStore(theme),
		asker: asker,
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns a snapshot of the conversation state.
func (c *Controller) State() model.State {
	return c.store.State()
}

// Store exposes the underlying store for read-mostly callers.
func (c *Controller) Store() *model.Store {
	return c.store
}

// Pending returns the in-flight request, if any.
func (c *Controller) Pending() (Request, bool) {
	if c.pending == nil {
		return Request{}, false
	}
	return *c.pending, true
}

// =============================================================================
// COMMAND HANDLING
// =============================================================================

// Handle applies a command. For an accepted Submit it returns the Request the
// caller must Run and then Complete; for everything else it returns false.
func (c *Controller) Handle(cmd Command) (Request, bool) {
	switch cmd := cmd.(type) {
	case EditDraft:
		c.store.SetDraft(cmd.Text)
	case ToggleTheme:
		c.store.ToggleTheme()
		c.log.Debug("theme toggled", zap.String("theme", c.store.Theme().String()))
	case Submit:
		return c.submit()
	}
	return Request{}, false
}

// submit performs the first half of the submit sequence.
func (c *Controller) submit() (Request, bool) {
	draft := c.store.Draft()
	if strings.TrimSpace(draft) == "" {
		return Request{}, false
	}
	if c.store.Busy() {
		c.log.Debug("submit rejected while busy")
		return Request{}, false
	}

	c.store.AppendMessage(model.SenderUser, draft)
	c.store.SetBusy(true)
	c.store.ClearDraft()

	req := Request{ID: uuid.NewString(), Prompt: draft}
	c.pending = &req
	c.log.Info("prompt submitted",
		zap.String("request_id", req.ID),
		zap.Int("prompt_len", len(draft)))
	return req, true
}

// Run calls the Asker for req. It blocks and touches no state, so it may be
// called from any goroutine.
func (c *Controller) Run(ctx context.Context, req Request) Result {
	if c.asker == nil {
		return Result{Request: req, Err: errNoAsker}
	}
	reply, err := c.asker.Ask(ctx, req.Prompt)
	return Result{Request: req, Reply: reply, Err: err}
}

// Complete performs the second half of the submit sequence: append the reply
// (or ErrorPlaceholder) and return to idle. Busy is cleared unconditionally.
func (c *Controller) Complete(res Result) {
	defer func() {
		c.store.SetBusy(false)
		c.pending = nil
	}()

	if res.Err != nil {
		c.log.Warn("inference failed",
			zap.String("request_id", res.Request.ID),
			zap.Error(res.Err))
		c.store.AppendMessage(model.SenderAssistant, ErrorPlaceholder)
		return
	}

	c.log.Info("inference completed",
		zap.String("request_id", res.Request.ID),
		zap.Int("reply_len", len(res.Reply)))
	c.store.AppendMessage(model.SenderAssistant, res.Reply)
}

// SubmitAndWait runs the whole submit sequence synchronously. It returns
// false when the submit was rejected.
func (c *Controller) SubmitAndWait(ctx context.Context) (Result, bool) {
	req, ok := c.Handle(Submit{})
	if !ok {
		return Result{}, false
	}
	res := c.Run(ctx, req)
	c.Complete(res)
	return res, true
}
