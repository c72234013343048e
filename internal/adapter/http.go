// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/shop-panel/internal/config"
	"github.com/MKhiriev/shop-panel/internal/logger"
	"github.com/MKhiriev/shop-panel/models"
)

const (
	pathUsers         = "/users/all"
	pathCreateUser    = "/users/"
	pathDeleteUser    = "/users/delete/%d"
	pathProducts      = "/products/all"
	pathCreateProduct = "/products/add"
	pathOrders        = "/orders/all"
	pathCreateOrder   = "/orders/add"
	pathDeleteOrder   = "/orders/delete/%d"
	pathAuthLogin     = "/auth/login"
)

var jsonNull = []byte("null")

type httpServerAdapter struct {
	transport Transport
	logger    *logger.Logger
}

// NewHTTPServerAdapter constructs the REST implementation of [ShopAdapter]
// over a freshly built [Transport].
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ShopAdapter, error) {
	transport, err := NewHTTPTransport(adapterCfg, logger)
	if err != nil {
		return nil, err
	}

	return NewShopAdapter(transport, logger), nil
}

// NewShopAdapter builds a [ShopAdapter] over an existing transport.
func NewShopAdapter(transport Transport, logger *logger.Logger) ShopAdapter {
	return &httpServerAdapter{transport: transport, logger: logger}
}

// ListUsers implements [ShopAdapter].
func (h *httpServerAdapter) ListUsers(ctx context.Context) ([]models.User, error) {
	return list[models.User](ctx, h.transport, pathUsers)
}

// CreateUser implements [ShopAdapter].
func (h *httpServerAdapter) CreateUser(ctx context.Context, payload models.UserPayload) error {
	return h.post(ctx, pathCreateUser, payload)
}

// DeleteUser implements [ShopAdapter].
func (h *httpServerAdapter) DeleteUser(ctx context.Context, id int64) error {
	return h.delete(ctx, fmt.Sprintf(pathDeleteUser, id))
}

// ListProducts implements [ShopAdapter].
func (h *httpServerAdapter) ListProducts(ctx context.Context) ([]models.Product, error) {
	return list[models.Product](ctx, h.transport, pathProducts)
}

// CreateProduct implements [ShopAdapter].
func (h *httpServerAdapter) CreateProduct(ctx context.Context, payload models.ProductPayload) error {
	return h.post(ctx, pathCreateProduct, payload)
}

// ListOrders implements [ShopAdapter].
func (h *httpServerAdapter) ListOrders(ctx context.Context) ([]models.Order, error) {
	return list[models.Order](ctx, h.transport, pathOrders)
}

// CreateOrder implements [ShopAdapter].
func (h *httpServerAdapter) CreateOrder(ctx context.Context, payload models.OrderPayload) error {
	return h.post(ctx, pathCreateOrder, payload)
}

// DeleteOrder implements [ShopAdapter].
func (h *httpServerAdapter) DeleteOrder(ctx context.Context, id int64) error {
	return h.delete(ctx, fmt.Sprintf(pathDeleteOrder, id))
}

// Login implements [ShopAdapter]. A success response without a user, either
// no body or a JSON null, is a failure so the caller falls back to the
// user scan.
func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	raw, err := h.transport.Request(ctx, pathAuthLogin, RequestOptions{
		Method: http.MethodPost,
		Body:   creds,
	})
	if err != nil {
		return models.User{}, err
	}
	if raw == nil || bytes.Equal(bytes.TrimSpace(raw), jsonNull) {
		return models.User{}, malformedError(pathAuthLogin, nil)
	}

	var user models.User
	if err = json.Unmarshal(raw, &user); err != nil {
		return models.User{}, malformedError(pathAuthLogin, err)
	}

	return user, nil
}

func (h *httpServerAdapter) post(ctx context.Context, path string, payload any) error {
	_, err := h.transport.Request(ctx, path, RequestOptions{
		Method: http.MethodPost,
		Body:   payload,
	})
	return err
}

func (h *httpServerAdapter) delete(ctx context.Context, path string) error {
	_, err := h.transport.Request(ctx, path, RequestOptions{Method: http.MethodDelete})
	return err
}

// list fetches a collection. A null or missing body decodes to a nil slice.
func list[T any](ctx context.Context, transport Transport, path string) ([]T, error) {
	raw, err := transport.Request(ctx, path, RequestOptions{})
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	var items []T
	if err = json.Unmarshal(raw, &items); err != nil {
		return nil, malformedError(path, err)
	}

	return items, nil
}
