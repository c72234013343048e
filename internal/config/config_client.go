// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds UI timing and logging settings.
type ClientApp struct {
	RedirectDelay time.Duration
	ToastDuration time.Duration
	LogFile       string
}

// ClientAdapter holds network settings used by the REST transport.
type ClientAdapter struct {
	// HTTPAddress is the REST base URL.
	HTTPAddress string
	// RequestTimeout is the timeout of every outbound request.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings.
type ClientDB struct {
	// DSN is the SQLite file path.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientServer holds the web surface listen address.
type ClientServer struct {
	HTTPAddress string
}

// ClientConfig is the configuration view consumed by the client binaries.
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Server  ClientServer
}

// GetClientConfig builds a validated [ClientConfig] from the merged
// structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg), nil
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			RedirectDelay: cfg.App.RedirectDelay,
			ToastDuration: cfg.App.ToastDuration,
			LogFile:       cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{DB: ClientDB{DSN: cfg.Storage.DB.DSN}},
		Server:  ClientServer{HTTPAddress: cfg.Server.HTTPAddress},
	}
}
