// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "net/http"

// WriteHTML writes a rendered markup fragment or page with the given status
// code.
func WriteHTML(w http.ResponseWriter, markup string, statusCode int) (int, error) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)

	return w.Write([]byte(markup))
}
