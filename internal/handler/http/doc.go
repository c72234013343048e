// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the browser surface of the shop admin panel.
//
// Every request builds its own dashboard over a recording surface, dispatches
// one command and renders the recorded state as an HTML page. Tracing,
// access logging, compression and the session gate are handled by
// middleware before requests reach the section handlers.
package http
