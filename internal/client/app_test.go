// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/shop-panel/internal/logger"
	"github.com/MKhiriev/shop-panel/internal/tui"
	"github.com/MKhiriev/shop-panel/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedUI struct {
	logins   []error
	loops    []bool
	loopErr  error
	loginRun int
	loopRun  int
}

func (u *scriptedUI) LoginFlow(context.Context) (models.Session, error) {
	err := u.logins[u.loginRun]
	u.loginRun++
	return models.Session{ID: 1, Name: "Asha"}, err
}

func (u *scriptedUI) MainLoop(context.Context, models.Session) (bool, error) {
	logout := u.loops[u.loopRun]
	u.loopRun++
	return logout, u.loopErr
}

type countingCloser struct {
	closed int
	err    error
}

func (c *countingCloser) Close() error {
	c.closed++
	return c.err
}

func TestNewApp_RequiresUI(t *testing.T) {
	_, err := NewApp(nil, nil, logger.Nop())
	assert.Error(t, err)
}

func TestRun_LogoutReturnsToLogin(t *testing.T) {
	ui := &scriptedUI{logins: []error{nil, nil}, loops: []bool{true, false}}
	closer := &countingCloser{}

	app, err := NewApp(ui, closer, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, 2, ui.loginRun)
	assert.Equal(t, 2, ui.loopRun)
	assert.Equal(t, 1, closer.closed)
}

func TestRun_QuitFromLoginIsNotAnError(t *testing.T) {
	ui := &scriptedUI{logins: []error{tui.ErrUserQuit}}
	app, err := NewApp(ui, nil, logger.Nop())
	require.NoError(t, err)

	assert.NoError(t, app.Run(context.Background()))
	assert.Equal(t, 0, ui.loopRun)
}

func TestRun_QuitFromDashboardIsNotAnError(t *testing.T) {
	ui := &scriptedUI{logins: []error{nil}, loops: []bool{false}, loopErr: tui.ErrUserQuit}
	app, err := NewApp(ui, nil, logger.Nop())
	require.NoError(t, err)

	assert.NoError(t, app.Run(context.Background()))
}

func TestRun_LoginFailurePropagates(t *testing.T) {
	boom := errors.New("terminal gone")
	ui := &scriptedUI{logins: []error{boom}}
	closer := &countingCloser{err: errors.New("close failed")}

	app, err := NewApp(ui, closer, logger.Nop())
	require.NoError(t, err)

	err = app.Run(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, closer.closed)
}
