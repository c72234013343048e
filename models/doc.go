// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the records exchanged with the ShopPanel REST service
// and the small value types shared by the dashboard layers: sections, toasts,
// login credentials and the session record.
package models
