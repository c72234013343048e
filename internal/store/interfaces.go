// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store keeps the client-side state of the dashboard.
//
// Two lifetimes exist:
//   - [SessionRepository] holds the Session Record for the running client
//     only (the tab-scoped store). It is in memory and vanishes on exit.
//   - [PreferenceRepository] holds durable key/value preferences such as the
//     remembered login email. It is backed by a local SQLite file whose
//     schema is managed by goose migrations.
//
// Neither store is encrypted; they are not credential stores.
package store

import (
	"context"

	"github.com/MKhiriev/shop-panel/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Storage keys, shared with every surface.
const (
	SessionKey         = "shopanel_user"
	RememberedEmailKey = "shopanel_email"
)

// SessionRepository stores Session Records. Each call acts on the session of
// the client the context is scoped to (see utils.WithSessionID); an unscoped
// context names the single session of the terminal client.
type SessionRepository interface {
	// Save replaces the current session.
	Save(ctx context.Context, session models.Session) error
	// Load returns the current session or ErrSessionNotFound.
	Load(ctx context.Context) (models.Session, error)
	// Clear removes the current session. Clearing an absent session is not
	// an error.
	Clear(ctx context.Context) error
}

// PreferenceRepository stores durable string preferences by key.
type PreferenceRepository interface {
	// Get returns the value of key or ErrPreferenceNotFound.
	Get(ctx context.Context, key string) (string, error)
	// Set inserts or replaces the value of key.
	Set(ctx context.Context, key, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
