// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the web surface of the admin panel.
//
// It owns the HTTP server lifecycle: startup, stop on context cancellation
// and graceful shutdown.
package server
