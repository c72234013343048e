// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user input before it reaches the network.
//
// Core concepts:
//   - Validator: generic interface to validate the login form and the create
//     payloads. Supports optional field-level scoping so a surface can
//     re-check a single input as it is edited.
//   - ValidationError: field-scoped failures carrying the message shown next
//     to the offending input.
//
// Validation is backed by github.com/go-playground/validator/v10 with struct
// tags declared on the models plus a custom "emailshape" rule.
package validators

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/validator_mock.go -package=mock

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
