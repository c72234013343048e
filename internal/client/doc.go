// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the terminal client runtime.
//
// It alternates the login flow and the dashboard main loop until the user
// quits, and closes the local storage on exit.
package client
