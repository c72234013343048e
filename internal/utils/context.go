// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities used across the
// shop-panel client: context keys, the resty client wrapper, trace id
// generation and HTML response writing.
package utils

import (
	"context"

	"github.com/MKhiriev/shop-panel/models"
)

// contextKey is a private type for context keys.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// ConfirmedCtxKey marks a context whose destructive action was already
// confirmed by the user on the requesting surface.
var ConfirmedCtxKey = contextKey("confirmed")

// SessionCtxKey holds the logged-in admin of a web request.
var SessionCtxKey = contextKey("session")

// SessionIDCtxKey holds the id of the client whose Session Record a
// request reads and writes. Contexts without it use the single client
// session of the terminal UI.
var SessionIDCtxKey = contextKey("session_id")

// WithConfirmation returns a copy of ctx carrying the user's answer to a
// destructive-action prompt.
func WithConfirmation(ctx context.Context, confirmed bool) context.Context {
	return context.WithValue(ctx, ConfirmedCtxKey, confirmed)
}

// IsConfirmed reports whether ctx carries a positive confirmation.
func IsConfirmed(ctx context.Context) bool {
	confirmed, ok := ctx.Value(ConfirmedCtxKey).(bool)
	return ok && confirmed
}

// WithSession returns a copy of ctx carrying session.
func WithSession(ctx context.Context, session models.Session) context.Context {
	return context.WithValue(ctx, SessionCtxKey, session)
}

// SessionFromContext returns the session stored by [WithSession].
func SessionFromContext(ctx context.Context) (models.Session, bool) {
	session, ok := ctx.Value(SessionCtxKey).(models.Session)
	return session, ok
}

// WithSessionID returns a copy of ctx scoped to the session of client id.
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, SessionIDCtxKey, id)
}

// SessionIDFromContext returns the id stored by [WithSessionID]. An empty id
// reports false.
func SessionIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(SessionIDCtxKey).(string)
	return id, ok && id != ""
}
