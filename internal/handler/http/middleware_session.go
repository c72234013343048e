// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/shop-panel/internal/logger"
	"github.com/MKhiriev/shop-panel/internal/service"
	"github.com/MKhiriev/shop-panel/internal/utils"
	"github.com/google/uuid"
)

const (
	loginPath         = "/login"
	sessionCookieName = "shopanel_session"
)

// withSession lets a request through only when its client is logged in. The
// client is identified by the session cookie; its session is stored in the
// request context under [utils.SessionCtxKey]. Requests without a session are
// redirected to the login page.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		ctx, ok := sessionContext(r)
		if !ok {
			http.Redirect(w, r, loginPath, http.StatusSeeOther)
			return
		}

		session, err := h.services.AuthService.RestoreSession(ctx)
		if err != nil {
			if !errors.Is(err, service.ErrNoSession) {
				log.Err(err).Msg("error restoring session")
			}
			clearSessionCookie(w, r)
			http.Redirect(w, r, loginPath, http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithSession(ctx, session)))
	})
}

// sessionContext scopes the request context to the client named by the
// session cookie. It reports false when the cookie is absent or malformed.
func sessionContext(r *http.Request) (ctx context.Context, ok bool) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return r.Context(), false
	}
	if _, err = uuid.Parse(cookie.Value); err != nil {
		return r.Context(), false
	}

	return utils.WithSessionID(r.Context(), cookie.Value), true
}

func setSessionCookie(w http.ResponseWriter, r *http.Request, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
}
