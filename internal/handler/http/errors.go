// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidForm is returned when a POST body cannot be parsed as a form.
	ErrInvalidForm = errors.New("invalid form body")

	// ErrInvalidRecordID is returned when the {id} path segment is not a
	// positive integer.
	ErrInvalidRecordID = errors.New("invalid record id")
)
