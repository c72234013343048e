// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/shop-panel/internal/adapter"
	"github.com/MKhiriev/shop-panel/internal/config"
	"github.com/MKhiriev/shop-panel/internal/handler/http"
	"github.com/MKhiriev/shop-panel/internal/logger"
	"github.com/MKhiriev/shop-panel/internal/service"
	"github.com/MKhiriev/shop-panel/internal/validators"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.ClientServices, shop adapter.ShopAdapter, validator validators.Validator, cfg config.ClientConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, shop, validator, cfg.App, logger),
	}, nil
}
