// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/shop-panel/internal/adapter"
	"github.com/MKhiriev/shop-panel/internal/config"
	"github.com/MKhiriev/shop-panel/internal/logger"
	"github.com/MKhiriev/shop-panel/internal/service"
	"github.com/MKhiriev/shop-panel/internal/validators"
)

type Handler struct {
	services  *service.ClientServices
	shop      adapter.ShopAdapter
	validator validators.Validator
	cfg       config.ClientApp

	logger *logger.Logger
}

func NewHandler(services *service.ClientServices, shop adapter.ShopAdapter, validator validators.Validator, cfg config.ClientApp, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		shop:      shop,
		validator: validator,
		cfg:       cfg,
		logger:    logger,
	}
}
