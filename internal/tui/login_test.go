// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/shop-panel/internal/app"
	"github.com/MKhiriev/shop-panel/internal/mock"
	"github.com/MKhiriev/shop-panel/internal/service"
	"github.com/MKhiriev/shop-panel/internal/validators"
	"github.com/MKhiriev/shop-panel/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func keyMsg(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runesMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeInto(m tea.Model, s string) tea.Model {
	for _, r := range s {
		m, _ = m.Update(runesMsg(string(r)))
	}
	return m
}

func TestNewLoginModel_PrefillsRememberedEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockClientAuthService(ctrl)

	m := NewLoginModel(context.Background(), auth, "admin@shop.com", time.Millisecond)

	assert.Equal(t, "admin@shop.com", m.inputs[loginEmailInput].Value())
	assert.True(t, m.remember)
	assert.Equal(t, loginPasswordInput, m.focus)
}

func TestNewLoginModel_NoRememberedEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockClientAuthService(ctrl)

	m := NewLoginModel(context.Background(), auth, "", time.Millisecond)

	assert.Empty(t, m.inputs[loginEmailInput].Value())
	assert.False(t, m.remember)
	assert.Equal(t, loginEmailInput, m.focus)
}

func TestLoginModel_SuccessShowsWelcomeThenRedirects(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockClientAuthService(ctrl)
	session := models.Session{ID: 7, Name: "Asha", Email: "asha@shop.com"}

	auth.EXPECT().
		Login(gomock.Any(), models.Credentials{Email: "asha@shop.com", Password: "secret", Remember: true}).
		Return(session, nil)

	m := NewLoginModel(context.Background(), auth, "asha@shop.com", time.Millisecond)
	var model tea.Model = m
	model = typeInto(model, "secret")

	model, cmd := model.Update(keyMsg(tea.KeyEnter))
	require.NotNil(t, cmd)
	assert.True(t, m.submitting)

	model, cmd = model.Update(cmd())
	assert.NotNil(t, cmd)
	assert.Equal(t, "Welcome, Asha! Redirecting…", m.banner)
	assert.True(t, m.bannerOK)
	assert.True(t, m.redirecting)
	assert.False(t, m.loggedIn)

	_, cmd = model.Update(loginRedirectMsg{})
	assert.NotNil(t, cmd)
	assert.True(t, m.loggedIn)
	assert.Equal(t, session, m.session)
}

func TestLoginModel_MismatchClearsPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockClientAuthService(ctrl)

	m := NewLoginModel(context.Background(), auth, "asha@shop.com", time.Millisecond)
	m.inputs[loginPasswordInput].SetValue("wrong")

	_, cmd := m.Update(loginResultMsg{err: service.ErrCredentialMismatch})

	assert.Nil(t, cmd)
	assert.Equal(t, app.MsgInvalidCredentials, m.banner)
	assert.False(t, m.bannerOK)
	assert.Empty(t, m.inputs[loginPasswordInput].Value())
	assert.Equal(t, "asha@shop.com", m.inputs[loginEmailInput].Value())
}

func TestLoginModel_UnreachableServer(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockClientAuthService(ctrl)

	m := NewLoginModel(context.Background(), auth, "", time.Millisecond)
	m.Update(loginResultMsg{err: service.ErrServerUnreachable})

	assert.Equal(t, app.MsgServerUnreachable, m.banner)
}

func TestLoginModel_ValidationErrorsShowPerField(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockClientAuthService(ctrl)

	m := NewLoginModel(context.Background(), auth, "", time.Millisecond)
	m.Update(loginResultMsg{err: &validators.ValidationError{Errors: []validators.FieldError{
		{Field: validators.FieldEmail, Message: "Email is required."},
		{Field: validators.FieldPassword, Message: "Password is required."},
	}}})

	assert.Empty(t, m.banner)
	assert.Equal(t, "Email is required.", m.fieldErrors[validators.FieldEmail])
	assert.Equal(t, "Password is required.", m.fieldErrors[validators.FieldPassword])
	assert.Contains(t, m.View(), "Email is required.")
}

func TestLoginModel_BlurValidatesAndTypingClears(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockClientAuthService(ctrl)

	auth.EXPECT().
		ValidateCredentials(gomock.Any(), gomock.Any(), validators.FieldEmail).
		Return(&validators.ValidationError{Errors: []validators.FieldError{
			{Field: validators.FieldEmail, Message: "Enter a valid email."},
		}})
	auth.EXPECT().
		ValidateCredentials(gomock.Any(), gomock.Any(), validators.FieldPassword).
		Return(nil)

	m := NewLoginModel(context.Background(), auth, "", time.Millisecond)
	var model tea.Model = m
	model = typeInto(model, "bad")

	model, _ = model.Update(keyMsg(tea.KeyTab))
	assert.Equal(t, loginPasswordInput, m.focus)
	assert.Equal(t, "Enter a valid email.", m.fieldErrors[validators.FieldEmail])

	model.Update(keyMsg(tea.KeyShiftTab))
	assert.Equal(t, loginEmailInput, m.focus)
	assert.Equal(t, "Enter a valid email.", m.fieldErrors[validators.FieldEmail])
	assert.NotContains(t, m.fieldErrors, validators.FieldPassword)
}

func TestLoginModel_TypingClearsFieldError(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockClientAuthService(ctrl)

	m := NewLoginModel(context.Background(), auth, "", time.Millisecond)
	m.fieldErrors[validators.FieldEmail] = "Email is required."

	typeInto(m, "a")

	assert.NotContains(t, m.fieldErrors, validators.FieldEmail)
	assert.Equal(t, "a", m.inputs[loginEmailInput].Value())
}

func TestLoginModel_ToggleRemember(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockClientAuthService(ctrl)

	m := NewLoginModel(context.Background(), auth, "", time.Millisecond)
	m.Update(keyMsg(tea.KeyCtrlR))
	assert.True(t, m.remember)
	assert.Contains(t, m.View(), "[x] Remember me")

	m.Update(keyMsg(tea.KeyCtrlR))
	assert.False(t, m.remember)
}

func TestLoginModel_KeysIgnoredWhileSubmitting(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockClientAuthService(ctrl)

	m := NewLoginModel(context.Background(), auth, "", time.Millisecond)
	m.submitting = true

	_, cmd := m.Update(keyMsg(tea.KeyEnter))
	assert.Nil(t, cmd)
}

func TestLoginModel_EscQuits(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockClientAuthService(ctrl)

	m := NewLoginModel(context.Background(), auth, "", time.Millisecond)
	_, cmd := m.Update(keyMsg(tea.KeyEsc))

	assert.NotNil(t, cmd)
	assert.True(t, m.quitByUser)
}
