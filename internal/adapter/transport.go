// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/shop-panel/internal/config"
	"github.com/MKhiriev/shop-panel/internal/logger"
	"github.com/MKhiriev/shop-panel/internal/utils"
)

const traceIDHeader = "X-Trace-ID"

type httpTransport struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPTransport constructs the resty-backed [Transport]. It normalises
// adapterCfg.HTTPAddress into a base URL (adding an http scheme when
// missing) and applies the request timeout.
//
// Returns an error if the address is empty or cannot be parsed.
func NewHTTPTransport(adapterCfg config.ClientAdapter, logger *logger.Logger) (Transport, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	timeout := adapterCfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &httpTransport{
		client: utils.NewHTTPClient(baseURL, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Request implements [Transport].
func (t *httpTransport) Request(ctx context.Context, path string, opts RequestOptions) (json.RawMessage, error) {
	method := strings.ToUpper(opts.Method)
	if method == "" {
		method = http.MethodGet
	}

	traceID := utils.NewTraceID()
	log := t.logger.With().
		Str("func", "httpTransport.Request").
		Str("method", method).
		Str("path", path).
		Str("trace_id", traceID).
		Logger()

	req := t.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetHeader(traceIDHeader, traceID).
		SetHeaders(opts.Headers)
	if opts.Body != nil {
		req.SetBody(opts.Body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		log.Err(err).Msg("request was not delivered")
		return nil, networkError(method, path, err)
	}

	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Int("status", resp.StatusCode()).Msg("request rejected")
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}

	if resp.StatusCode() == http.StatusNoContent || method == http.MethodDelete {
		log.Debug().Int("status", resp.StatusCode()).Msg("no content")
		return nil, nil
	}

	body := resp.Body()
	if !json.Valid(body) {
		log.Error().Int("status", resp.StatusCode()).Int("size", len(body)).Msg("response is not valid json")
		return nil, malformedError(path, nil)
	}

	log.Debug().Int("status", resp.StatusCode()).Int("size", len(body)).Msg("request completed")
	return json.RawMessage(body), nil
}
