// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal surface of the shop admin panel. It runs the
// login screen and the three-section dashboard as Bubble Tea programs.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/shop-panel/internal/adapter"
	"github.com/MKhiriev/shop-panel/internal/config"
	"github.com/MKhiriev/shop-panel/internal/dashboard"
	"github.com/MKhiriev/shop-panel/internal/logger"
	"github.com/MKhiriev/shop-panel/internal/service"
	"github.com/MKhiriev/shop-panel/internal/validators"
	"github.com/MKhiriev/shop-panel/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.ClientServices
	shop      adapter.ShopAdapter
	validator validators.Validator
	cfg       config.ClientApp
	logger    *logger.Logger
	options   []tea.ProgramOption
}

func New(services *service.ClientServices, shop adapter.ShopAdapter, validator validators.Validator, cfg config.ClientApp, logger *logger.Logger) (*TUI, error) {
	return &TUI{
		services:  services,
		shop:      shop,
		validator: validator,
		cfg:       cfg,
		logger:    logger,
		options:   []tea.ProgramOption{tea.WithAltScreen()},
	}, nil
}

// LoginFlow returns the session of the running client, showing the login
// screen only when nobody has logged in yet.
func (t *TUI) LoginFlow(ctx context.Context) (models.Session, error) {
	auth := t.services.AuthService

	session, err := auth.RestoreSession(ctx)
	if err == nil {
		return session, nil
	}
	if !errors.Is(err, service.ErrNoSession) {
		return models.Session{}, err
	}

	email, err := auth.RememberedEmail(ctx)
	if err != nil {
		t.logger.Err(err).Str("func", "TUI.LoginFlow").Msg("remembered email unavailable")
		email = ""
	}

	model := NewLoginModel(ctx, auth, email, t.cfg.RedirectDelay)
	finalModel, runErr := tea.NewProgram(model, t.programOptions(ctx)...).Run()
	if runErr != nil {
		return models.Session{}, runErr
	}

	result, ok := finalModel.(*LoginModel)
	if !ok {
		return models.Session{}, tea.ErrProgramKilled
	}
	if result.quitByUser || !result.loggedIn {
		return models.Session{}, ErrUserQuit
	}

	return result.session, nil
}

// MainLoop runs the dashboard until the user quits or logs out.
func (t *TUI) MainLoop(ctx context.Context, session models.Session) (logout bool, err error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	surface := newTeaSurface()
	dash := dashboard.New(t.shop, t.validator, surface, t.logger)
	model := newMainLoopModel(ctx, t.services.AuthService, dash, session, t.cfg.ToastDuration, t.logger)

	program := tea.NewProgram(model, t.programOptions(ctx)...)
	surface.attach(program)

	finalModel, runErr := program.Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(*mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return false, ErrUserQuit
	}
	return result.logout, nil
}

func (t *TUI) programOptions(ctx context.Context) []tea.ProgramOption {
	return append([]tea.ProgramOption{tea.WithContext(ctx)}, t.options...)
}
