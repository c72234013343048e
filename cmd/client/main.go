// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/shop-panel/internal/adapter"
	"github.com/MKhiriev/shop-panel/internal/client"
	"github.com/MKhiriev/shop-panel/internal/config"
	"github.com/MKhiriev/shop-panel/internal/logger"
	"github.com/MKhiriev/shop-panel/internal/service"
	"github.com/MKhiriev/shop-panel/internal/store"
	"github.com/MKhiriev/shop-panel/internal/tui"
	"github.com/MKhiriev/shop-panel/internal/validators"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("shop-panel-client").Fatal().Err(err).Msg("error getting configs")
	}

	// the terminal belongs to Bubble Tea, so logs go to a file
	log := logger.NewClientLogger("shop-panel-client", cfg.App.LogFile)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shopAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create shop adapter")
	}

	localStorage, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	validator := validators.NewShopValidator()
	services := service.NewClientServices(localStorage, shopAdapter, validator, log)

	ui, err := tui.New(services, shopAdapter, validator, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, localStorage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
