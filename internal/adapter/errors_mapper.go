// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	return &HTTPError{Status: resp.StatusCode(), Body: body}
}

func networkError(method, path string, err error) error {
	return fmt.Errorf("%w: %s %s: %w: %v", ErrRequestFailed, method, path, ErrNetworkUnreachable, err)
}

func malformedError(path string, err error) error {
	if err == nil {
		return fmt.Errorf("%w: %s: %w", ErrRequestFailed, path, ErrMalformedJSON)
	}
	return fmt.Errorf("%w: %s: %w: %v", ErrRequestFailed, path, ErrMalformedJSON, err)
}
