// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/shopspring/decimal"

// EntityRef is a nested reference to a related record, e.g. {"id": 7}.
type EntityRef struct {
	ID *int64 `json:"id"`
}

// Order is a placed order as returned by GET /orders/all.
//
// The related user and product may arrive either flat (userId, productId) or
// nested (user: {id}, product: {id}); both shapes decode into the same value
// and are resolved through [Order.UserRef] and [Order.ProductRef].
type Order struct {
	ID          int64           `json:"id"`
	UserID      *int64          `json:"userId,omitempty"`
	ProductID   *int64          `json:"productId,omitempty"`
	User        *EntityRef      `json:"user,omitempty"`
	Product     *EntityRef      `json:"product,omitempty"`
	Quantity    int             `json:"quantity"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// UserRef returns the related user id, preferring the flat field over the
// nested reference. ok is false when neither shape is present.
func (o Order) UserRef() (id int64, ok bool) {
	return resolveRef(o.UserID, o.User)
}

// ProductRef returns the related product id, preferring the flat field over
// the nested reference. ok is false when neither shape is present.
func (o Order) ProductRef() (id int64, ok bool) {
	return resolveRef(o.ProductID, o.Product)
}

func resolveRef(flat *int64, nested *EntityRef) (int64, bool) {
	if flat != nil {
		return *flat, true
	}
	if nested != nil && nested.ID != nil {
		return *nested.ID, true
	}
	return 0, false
}

// OrderPayload is the body of POST /orders/add.
type OrderPayload struct {
	UserID      int64           `json:"userId" validate:"gt=0"`
	ProductID   int64           `json:"productId" validate:"gt=0"`
	Quantity    int             `json:"quantity" validate:"gt=0"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}
