// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// ShopPanel surfaces and services.
//
// All Msg* constants are human-readable strings shown to the user in login
// banners or written into HTTP response bodies of the web surface. Keeping
// them in one place keeps the wording identical on every surface.
package app

const (
	// MsgServerUnreachable is shown when the user collection needed for the
	// login fallback cannot be fetched.
	MsgServerUnreachable = "Could not connect to server. Is your backend running?"

	// MsgInvalidCredentials is shown when no user matches the submitted
	// email and password.
	MsgInvalidCredentials = "Invalid email or password. Please try again."

	// MsgWelcome is the success banner. The verb receives the display name.
	MsgWelcome = "Welcome, %s! Redirecting…"

	// MsgUnknownSection is returned for a section name outside
	// users/products/orders.
	MsgUnknownSection = "unknown section"

	// MsgInvalidRecordID is returned when a record id is not a positive
	// integer.
	MsgInvalidRecordID = "invalid record id"

	// MsgDeleteNotSupported is returned when deleting records of a section
	// without a delete endpoint.
	MsgDeleteNotSupported = "records of this section cannot be deleted"

	// MsgInvalidForm is returned when a form body cannot be parsed.
	MsgInvalidForm = "invalid form data"
)
