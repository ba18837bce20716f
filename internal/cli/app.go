// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/jeranaias/brochat/internal/config"
	"github.com/jeranaias/brochat/internal/controller"
	"github.com/jeranaias/brochat/internal/logging"
	"github.com/jeranaias/brochat/internal/model"
	"github.com/jeranaias/brochat/internal/ollama"
)

// app is the wired stack a command runs against.
type app struct {
	cfg    *config.Config
	log    *zap.Logger
	client *ollama.Client
}

// loadConfig resolves the effective configuration for opts. Validation runs
// once, after flags are layered over file and environment.
func (o *options) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Apply(o.overrides); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// setup loads config and builds the logger and client. Callers must close
// the returned app.
func (o *options) setup() (*app, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}

	log, err := logging.New(cfg.Log, o.overrides.Debug)
	if err != nil {
		return nil, err
	}

	client := ollama.NewClientWithConfig(&ollama.ClientConfig{
		BaseURL: cfg.Ollama.URL,
		Model:   cfg.Ollama.Model,
		Logger:  log,
	})
	log.Debug("client ready",
		zap.String("endpoint", client.Endpoint()),
		zap.String("model", client.Model()))

	return &app{cfg: cfg, log: log, client: client}, nil
}

// close flushes the logger.
func (a *app) close() {
	_ = a.log.Sync()
}

// newController starts a fresh conversation in the configured theme.
func (a *app) newController() *controller.Controller {
	return controller.New(a.client, a.initialTheme(), controller.WithLogger(a.log))
}

// initialTheme resolves "auto" against the terminal background.
func (a *app) initialTheme() model.Theme {
	return a.cfg.InitialTheme(termenv.HasDarkBackground)
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
