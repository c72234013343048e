// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/shop-panel/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService defines the client-side contract for logging in and for
// the session lifecycle that gates the dashboard.
type ClientAuthService interface {
	// Login resolves creds in order:
	//  1. field validation (no network on failure, returns
	//     *validators.ValidationError);
	//  2. POST /auth/login; any failure there is swallowed;
	//  3. a scan of GET /users/all for the first user whose email matches
	//     case-insensitively and whose password matches exactly.
	// On success the remembered email is written or cleared per
	// creds.Remember and the session is saved.
	// Returns ErrServerUnreachable when the scan cannot fetch users and
	// ErrCredentialMismatch when nobody matches.
	Login(ctx context.Context, creds models.Credentials) (models.Session, error)

	// ValidateCredentials checks creds without any network call, optionally
	// limited to the named fields.
	ValidateCredentials(ctx context.Context, creds models.Credentials, fields ...string) error

	// RestoreSession returns the session of the running client or ErrNoSession.
	RestoreSession(ctx context.Context) (models.Session, error)

	// RememberedEmail returns the remembered login email, or "" when none is
	// stored.
	RememberedEmail(ctx context.Context) (string, error)

	// Logout clears the session. The remembered email is kept.
	Logout(ctx context.Context) error
}
