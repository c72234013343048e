// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the dashboard and the
// ShopPanel REST service.
//
// [Transport] is the single generic request function: it attaches JSON
// headers, merges caller options, fails uniformly on non-2xx statuses and
// skips body parsing for no-content responses. [ShopAdapter] builds the typed
// REST contract (users, products, orders, auth) on top of it.
//
// Every failure returned by this package wraps [ErrRequestFailed]; callers
// branch on success or failure only. The finer sentinels
// ([ErrNetworkUnreachable], [ErrMalformedJSON], [*HTTPError]) exist for logs.
package adapter

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/shop-panel/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// RequestOptions are merged over the transport defaults. An empty Method
// means GET.
type RequestOptions struct {
	Method  string
	Body    any
	Headers map[string]string
}

// Transport sends one request and returns the decoded-later JSON body.
type Transport interface {
	// Request issues a single request against path (relative to the base URL).
	// A no-content response, or any DELETE, yields a nil body. There are no
	// retries.
	Request(ctx context.Context, path string, opts RequestOptions) (json.RawMessage, error)
}

// ShopAdapter is the typed REST contract of the ShopPanel service.
type ShopAdapter interface {
	// ListUsers fetches GET /users/all.
	ListUsers(ctx context.Context) ([]models.User, error)
	// CreateUser posts to POST /users/.
	CreateUser(ctx context.Context, payload models.UserPayload) error
	// DeleteUser sends DELETE /users/delete/{id}.
	DeleteUser(ctx context.Context, id int64) error

	// ListProducts fetches GET /products/all.
	ListProducts(ctx context.Context) ([]models.Product, error)
	// CreateProduct posts to POST /products/add.
	CreateProduct(ctx context.Context, payload models.ProductPayload) error

	// ListOrders fetches GET /orders/all.
	ListOrders(ctx context.Context) ([]models.Order, error)
	// CreateOrder posts to POST /orders/add.
	CreateOrder(ctx context.Context, payload models.OrderPayload) error
	// DeleteOrder sends DELETE /orders/delete/{id}.
	DeleteOrder(ctx context.Context, id int64) error

	// Login posts credentials to POST /auth/login and returns the matching
	// user. Any non-2xx status is a failure.
	Login(ctx context.Context, creds models.Credentials) (models.User, error)
}
