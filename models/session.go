// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Session is the proof of a successful login, kept for the lifetime of the
// running client only. It carries no token and never expires on its own.
type Session struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// DisplayName returns the name to greet the user with.
func (s Session) DisplayName() string {
	if s.Name == "" {
		return "Admin"
	}
	return s.Name
}

// NewSession derives a session record from the authenticated user.
func NewSession(u User) Session {
	return Session{ID: u.ID, Name: u.Name, Email: u.Email}
}

// Credentials is a login form submission.
type Credentials struct {
	Email    string `json:"email" validate:"required,emailshape"`
	Password string `json:"password" validate:"required,min=3"`

	// Remember is never sent to the server.
	Remember bool `json:"-"`
}
