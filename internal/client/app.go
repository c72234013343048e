// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/shop-panel/internal/logger"
	"github.com/MKhiriev/shop-panel/internal/tui"
)

type App struct {
	ui     UI
	closer io.Closer
	logger *logger.Logger
}

// NewApp builds the client runtime. closer, when not nil, is closed once Run
// returns.
func NewApp(ui UI, closer io.Closer, log *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, errors.New("client app: ui is nil")
	}

	return &App{ui: ui, closer: closer, logger: log}, nil
}

// Run alternates login and the dashboard until the user quits. Quitting from
// any screen is not an error.
func (a *App) Run(ctx context.Context) error {
	defer a.close()

	for {
		session, err := a.ui.LoginFlow(ctx)
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("login flow: %w", err)
		}

		a.logger.Info().Int64("user_id", session.ID).Msg("session started")

		logout, err := a.ui.MainLoop(ctx, session)
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			return nil
		}

		a.logger.Info().Int64("user_id", session.ID).Msg("logged out")
	}
}

func (a *App) close() {
	if a.closer == nil {
		return
	}
	if err := a.closer.Close(); err != nil {
		a.logger.Err(err).Str("func", "App.close").Msg("error closing local storage")
	}
}
