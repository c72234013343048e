// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/shop-panel/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the interactive surface the client drives.
type UI interface {
	// LoginFlow returns an authenticated session.
	LoginFlow(ctx context.Context) (models.Session, error)
	// MainLoop runs the dashboard and reports whether the user logged out.
	MainLoop(ctx context.Context, session models.Session) (logout bool, err error)
}
