// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"testing"

	"github.com/MKhiriev/shop-panel/internal/config"
	"github.com/MKhiriev/shop-panel/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewHandlers_WithAddress verifies that a configured listen address
// yields an HTTP handler.
func TestNewHandlers_WithAddress(t *testing.T) {
	cfg := config.ClientConfig{Server: config.ClientServer{HTTPAddress: ":8090"}}

	h, err := NewHandlers(nil, nil, nil, cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
}

// TestNewHandlers_NoAddress verifies that an empty listen address is a
// configuration error.
func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(nil, nil, nil, config.ClientConfig{}, logger.Nop())

	assert.Nil(t, h)
	assert.ErrorIs(t, err, errNoHandlersAreCreated)
}
