// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/MKhiriev/shop-panel/internal/service"
	"github.com/MKhiriev/shop-panel/internal/validators"
	"github.com/MKhiriev/shop-panel/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	loginEmailInput = iota
	loginPasswordInput
)

var loginFields = [...]string{validators.FieldEmail, validators.FieldPassword}

// LoginModel is the Bubble Tea model for the login screen. It renders the
// email and password inputs plus the remember-me toggle and dispatches an
// async login command on submit. After a successful login the welcome banner
// stays visible for the redirect delay before the program quits.
type LoginModel struct {
	ctx           context.Context
	auth          service.ClientAuthService
	redirectDelay time.Duration

	inputs      []textinput.Model
	fieldErrors map[string]string
	focus       int
	remember    bool
	submitting  bool

	banner      string
	bannerOK    bool
	session     models.Session
	redirecting bool
	loggedIn    bool
	quitByUser  bool
}

// NewLoginModel creates a [LoginModel]. A non-empty rememberedEmail prefills
// the email input, turns the remember toggle on and focuses the password.
func NewLoginModel(ctx context.Context, auth service.ClientAuthService, rememberedEmail string, redirectDelay time.Duration) *LoginModel {
	emailInput := textinput.New()
	emailInput.Placeholder = "admin@shop.com"
	emailInput.CharLimit = 254
	emailInput.Width = 40

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	m := &LoginModel{
		ctx:           ctx,
		auth:          auth,
		redirectDelay: redirectDelay,
		inputs:        []textinput.Model{emailInput, passwordInput},
		fieldErrors:   make(map[string]string),
	}

	if rememberedEmail != "" {
		m.inputs[loginEmailInput].SetValue(rememberedEmail)
		m.remember = true
		m.focus = loginPasswordInput
	}
	m.inputs[m.focus].Focus()

	return m
}

// Init implements [tea.Model].
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - loginResultMsg   — shows the banner; on success schedules the redirect.
//   - loginRedirectMsg — quits the program with the session set.
//   - tab / shift+tab  — validates the field being left and moves focus.
//   - ctrl+r           — toggles remember me.
//   - enter            — submits the form.
//
// All other key events are forwarded to the focused input and clear that
// input's field error.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loginResultMsg:
		return m.handleResult(msg)
	case loginRedirectMsg:
		m.loggedIn = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitByUser = true
			return m, tea.Quit
		}
		if m.submitting || m.redirecting {
			return m, nil
		}

		switch {
		case key.Matches(msg, keys.esc):
			m.quitByUser = true
			return m, tea.Quit
		case key.Matches(msg, keys.tab):
			m.validateField(m.focus)
			m.moveFocus(1)
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.validateField(m.focus)
			m.moveFocus(-1)
			return m, nil
		case key.Matches(msg, keys.remember):
			m.remember = !m.remember
			return m, nil
		case key.Matches(msg, keys.enter):
			m.submitting = true
			m.banner = ""
			return m, m.cmdLogin(m.credentials())
		}

		delete(m.fieldErrors, loginFields[m.focus])
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString("Email     │ [")
	b.WriteString(m.inputs[loginEmailInput].View())
	b.WriteString("]\n")
	m.writeFieldError(&b, validators.FieldEmail)
	b.WriteString("Password  │ [")
	b.WriteString(m.inputs[loginPasswordInput].View())
	b.WriteString("]\n")
	m.writeFieldError(&b, validators.FieldPassword)

	if m.remember {
		b.WriteString("\n[x] Remember me\n")
	} else {
		b.WriteString("\n[ ] Remember me\n")
	}

	if m.submitting {
		b.WriteString("\n[Signing in...]\n")
	} else {
		b.WriteString("\n[Sign in]\n")
	}

	if m.banner != "" {
		b.WriteString("\n")
		if m.bannerOK {
			b.WriteString(successStyle.Render(m.banner))
		} else {
			b.WriteString(errorStyle.Render(m.banner))
		}
		b.WriteString("\n")
	}

	return renderPage("SHOP ADMIN LOGIN", strings.TrimRight(b.String(), "\n"), "esc: quit │ tab: next field │ ctrl+r: remember me │ enter: sign in")
}

func (m *LoginModel) writeFieldError(b *strings.Builder, field string) {
	if text, ok := m.fieldErrors[field]; ok {
		b.WriteString("          │ ")
		b.WriteString(errorStyle.Render(text))
		b.WriteString("\n")
	}
}

func (m *LoginModel) handleResult(msg loginResultMsg) (tea.Model, tea.Cmd) {
	m.submitting = false
	m.banner = service.LoginBanner(msg.session, msg.err)
	m.bannerOK = msg.err == nil

	var verr *validators.ValidationError
	switch {
	case msg.err == nil:
		m.session = msg.session
		m.redirecting = true
		return m, tea.Tick(m.redirectDelay, func(time.Time) tea.Msg { return loginRedirectMsg{} })
	case errors.As(msg.err, &verr):
		m.showFieldErrors(verr)
	case errors.Is(msg.err, service.ErrCredentialMismatch):
		m.inputs[loginPasswordInput].SetValue("")
		m.setFocus(loginPasswordInput)
	}

	return m, nil
}

func (m *LoginModel) credentials() models.Credentials {
	return models.Credentials{
		Email:    strings.TrimSpace(m.inputs[loginEmailInput].Value()),
		Password: m.inputs[loginPasswordInput].Value(),
		Remember: m.remember,
	}
}

func (m *LoginModel) validateField(idx int) {
	field := loginFields[idx]
	err := m.auth.ValidateCredentials(m.ctx, m.credentials(), field)

	var verr *validators.ValidationError
	if errors.As(err, &verr) {
		if text := verr.Message(field); text != "" {
			m.fieldErrors[field] = text
			return
		}
	}
	delete(m.fieldErrors, field)
}

func (m *LoginModel) showFieldErrors(verr *validators.ValidationError) {
	for _, field := range loginFields {
		if text := verr.Message(field); text != "" {
			m.fieldErrors[field] = text
		} else {
			delete(m.fieldErrors, field)
		}
	}
}

func (m *LoginModel) cmdLogin(creds models.Credentials) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		session, err := auth.Login(ctx, creds)
		return loginResultMsg{session: session, err: err}
	}
}

func (m *LoginModel) moveFocus(delta int) {
	m.setFocus((m.focus + delta + len(m.inputs)) % len(m.inputs))
}

func (m *LoginModel) setFocus(idx int) {
	m.inputs[m.focus].Blur()
	m.focus = idx
	m.inputs[m.focus].Focus()
}
