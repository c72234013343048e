// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/shopspring/decimal"

func init() {
	// the REST service expects JSON numbers for money fields
	decimal.MarshalJSONWithoutQuotes = true
}

// Product is a catalogue entry as returned by GET /products/all.
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`

	// Stock is nil when the server omits it.
	Stock *int `json:"stock,omitempty"`
}

// ProductPayload is the body of POST /products/add.
type ProductPayload struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock" validate:"gte=0"`
}
