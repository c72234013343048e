// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User is a registered account as returned by GET /users/all.
//
// Password travels in plaintext: the REST service stores and returns it as
// is, and the login fallback compares against it directly.
type User struct {
	// ID is assigned by the server.
	ID int64 `json:"id"`

	// Name is the display name shown on the user card.
	Name string `json:"name"`

	// Email is the login key. Matched case-insensitively on login.
	Email string `json:"email"`

	// Password is the plaintext credential.
	Password string `json:"password,omitempty"`

	// Phone is optional.
	Phone string `json:"phone,omitempty"`
}

// UserPayload is the body of POST /users/.
type UserPayload struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,emailshape"`
	Password string `json:"password" validate:"required"`
	Phone    string `json:"phone"`
}
