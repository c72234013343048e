// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/shop-panel/internal/app"
	"github.com/MKhiriev/shop-panel/internal/validators"
	"github.com/MKhiriev/shop-panel/models"
)

var (
	// ErrCredentialMismatch means no user matched the submitted email and
	// password. Terminal for the attempt only.
	ErrCredentialMismatch = errors.New("credential mismatch")

	// ErrServerUnreachable means the fallback user scan could not fetch the
	// user collection.
	ErrServerUnreachable = errors.New("server unreachable")

	// ErrNoSession means nobody has logged in during this client run.
	ErrNoSession = errors.New("no session")
)

// LoginBanner maps a Login outcome to the banner text shown on the login
// surface. Validation failures have no banner: they are shown per field.
func LoginBanner(session models.Session, err error) string {
	var verr *validators.ValidationError
	switch {
	case err == nil:
		return fmt.Sprintf(app.MsgWelcome, session.DisplayName())
	case errors.As(err, &verr):
		return ""
	case errors.Is(err, ErrCredentialMismatch):
		return app.MsgInvalidCredentials
	default:
		return app.MsgServerUnreachable
	}
}
