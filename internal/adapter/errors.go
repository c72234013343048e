// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrRequestFailed is the single failure signal of the transport.
	ErrRequestFailed = errors.New("request failed")

	// ErrNetworkUnreachable marks failures before any response was received.
	ErrNetworkUnreachable = errors.New("network unreachable")

	// ErrMalformedJSON marks a success response whose body is not valid JSON
	// or does not match the expected shape.
	ErrMalformedJSON = errors.New("malformed json response")
)

// HTTPError is a response with a non-success status.
type HTTPError struct {
	Status int
	Body   string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http %d: %s", e.Status, e.Body)
}

// Unwrap lets errors.Is(err, ErrRequestFailed) match every HTTPError.
func (e *HTTPError) Unwrap() error {
	return ErrRequestFailed
}
