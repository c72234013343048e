// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "github.com/google/uuid"

// NewTraceID returns a time-ordered identifier attached to outgoing requests
// so client and server logs can be correlated.
func NewTraceID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// NewSessionID returns a random identifier for a web client session.
func NewSessionID() string {
	return uuid.NewString()
}
