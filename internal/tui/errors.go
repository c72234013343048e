// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "errors"

// ErrUserQuit is returned when the user leaves the program from any screen.
var ErrUserQuit = errors.New("user quit the program")
