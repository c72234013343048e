// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the raw configuration container populated by every
// source before defaults and validation are applied.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds UI timing and logging settings.
	App App `envPrefix:"APP_"`

	// Adapter holds settings of the REST service the dashboard talks to.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local database used for durable client state.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address of the web surface.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// RedirectDelay is how long the login success message stays visible
	// before the dashboard opens.
	// Env: APP_REDIRECT_DELAY
	RedirectDelay time.Duration `env:"REDIRECT_DELAY"`

	// ToastDuration is how long a toast stays on screen.
	// Env: APP_TOAST_DURATION
	ToastDuration time.Duration `env:"TOAST_DURATION"`

	// LogFile is where the terminal client writes its log.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Adapter holds settings of the outbound REST transport.
type Adapter struct {
	// HTTPAddress is the REST base URL, e.g. "http://localhost:8081/api".
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups local storage settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the SQLite database location.
type DB struct {
	// DSN is the SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds settings of the web surface.
type Server struct {
	// HTTPAddress is the host:port the web surface listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
}

const (
	defaultAPIAddress     = "http://localhost:8081/api"
	defaultRequestTimeout = 15 * time.Second
	defaultDBFile         = "shop-panel.db"
	defaultRedirectDelay  = 900 * time.Millisecond
	defaultToastDuration  = 3200 * time.Millisecond
	defaultServerAddress  = "localhost:8090"
)

// defaults returns the values used for fields no source has set.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			RedirectDelay: defaultRedirectDelay,
			ToastDuration: defaultToastDuration,
		},
		Adapter: Adapter{
			HTTPAddress:    defaultAPIAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Storage: Storage{DB: DB{DSN: defaultDBFile}},
		Server:  Server{HTTPAddress: defaultServerAddress},
	}
}

// GetStructuredConfig loads and merges the configuration from all available
// sources using the process arguments.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(".env").
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
