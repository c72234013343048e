// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the client business logic that is not tied to a
// single resource section: the Auth Resolver and the session lifecycle.
package service

import (
	"github.com/MKhiriev/shop-panel/internal/adapter"
	"github.com/MKhiriev/shop-panel/internal/logger"
	"github.com/MKhiriev/shop-panel/internal/store"
	"github.com/MKhiriev/shop-panel/internal/validators"
)

// ClientServices bundles the client services shared by every surface.
type ClientServices struct {
	AuthService ClientAuthService
}

// NewClientServices wires the services over the local stores and the REST
// adapter.
func NewClientServices(localStore *store.ClientStorages, shopAdapter adapter.ShopAdapter, validator validators.Validator, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService: NewClientAuthService(localStore, shopAdapter, validator, logger),
	}
}
