// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/shop-panel/internal/app"
	"github.com/MKhiriev/shop-panel/internal/logger"
	"github.com/MKhiriev/shop-panel/internal/service"
	"github.com/MKhiriev/shop-panel/internal/utils"
	"github.com/MKhiriev/shop-panel/internal/validators"
	"github.com/MKhiriev/shop-panel/models"
)

// loginPage shows the login form, prefilled with the remembered email.
// A logged-in client goes straight to the dashboard.
func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()
	auth := h.services.AuthService

	if sessionCtx, ok := sessionContext(r); ok {
		if _, err := auth.RestoreSession(sessionCtx); err == nil {
			http.Redirect(w, r, sectionPath(defaultSection), http.StatusSeeOther)
			return
		}
	}

	email, err := auth.RememberedEmail(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.loginPage").Msg("remembered email unavailable")
	}

	h.writePage(w, r, pages.login, loginPage{Email: email, Remember: email != ""}, http.StatusOK)
}

// login handles the login form. Every attempt runs under a fresh session id,
// which is handed to the client as a cookie only on success. Outcomes:
//   - invalid fields: 422 with per-field messages, no network call;
//   - no matching user: 401 with the banner, password cleared;
//   - server unreachable: 503 with the banner;
//   - success: 200 with the welcome banner, the session cookie and a timed
//     redirect.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg(ErrInvalidForm.Error())
		http.Error(w, app.MsgInvalidForm, http.StatusBadRequest)
		return
	}

	creds := models.Credentials{
		Email:    strings.TrimSpace(r.PostForm.Get("email")),
		Password: r.PostForm.Get("password"),
		Remember: r.PostForm.Get("remember") != "",
	}

	sessionID := utils.NewSessionID()
	ctx := utils.WithSessionID(r.Context(), sessionID)

	session, err := h.services.AuthService.Login(ctx, creds)
	page := loginPage{
		Email:    creds.Email,
		Remember: creds.Remember,
		Banner:   service.LoginBanner(session, err),
		BannerOK: err == nil,
	}

	var verr *validators.ValidationError
	switch {
	case err == nil:
		log.Info().Int64("user_id", session.ID).Msg("admin logged in")
		setSessionCookie(w, r, sessionID)
		page.Refresh = refreshTo(h.cfg.RedirectDelay.Seconds(), sectionPath(defaultSection))
		h.writePage(w, r, pages.login, page, http.StatusOK)
	case errors.As(err, &verr):
		page.EmailError = verr.Message(validators.FieldEmail)
		page.PasswordError = verr.Message(validators.FieldPassword)
		h.writePage(w, r, pages.login, page, http.StatusUnprocessableEntity)
	case errors.Is(err, service.ErrCredentialMismatch):
		h.writePage(w, r, pages.login, page, http.StatusUnauthorized)
	default:
		log.Err(err).Str("func", "*Handler.login").Msg("login failed")
		h.writePage(w, r, pages.login, page, http.StatusServiceUnavailable)
	}
}

// logout clears the session of the requesting client only. It runs behind
// [Handler.withSession], so the context is already scoped to that client.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.services.AuthService.Logout(r.Context()); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.logout").Msg("error clearing session")
	}
	clearSessionCookie(w, r)
	http.Redirect(w, r, loginPath, http.StatusSeeOther)
}

func refreshTo(seconds float64, url string) string {
	return strconv.FormatFloat(seconds, 'f', -1, 64) + ";url=" + url
}
