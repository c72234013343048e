// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

var gzipWriterPool = sync.Pool{
	New: func() any {
		return gzip.NewWriter(io.Discard)
	},
}

// withGZip compresses responses for clients that accept gzip.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		gz := gzipWriterPool.Get().(*gzip.Writer)
		defer gzipWriterPool.Put(gz)

		gw := &gzipResponseWriter{ResponseWriter: w, gzipWriter: gz}
		next.ServeHTTP(gw, r)
		gw.close()
	})
}

// gzipResponseWriter decides on compression when the status is written.
// Redirects and bodiless statuses are written uncompressed.
type gzipResponseWriter struct {
	http.ResponseWriter

	gzipWriter *gzip.Writer
	decided    bool
	compress   bool
}

func (g *gzipResponseWriter) WriteHeader(statusCode int) {
	if g.decided {
		return
	}
	g.decided = true
	g.compress = compressible(statusCode)

	if g.compress {
		h := g.ResponseWriter.Header()
		h.Set("Content-Encoding", "gzip")
		h.Add("Vary", "Accept-Encoding")
		h.Del("Content-Length")
		g.gzipWriter.Reset(g.ResponseWriter)
	}
	g.ResponseWriter.WriteHeader(statusCode)
}

func (g *gzipResponseWriter) Write(b []byte) (int, error) {
	if !g.decided {
		g.WriteHeader(http.StatusOK)
	}
	if g.compress {
		return g.gzipWriter.Write(b)
	}
	return g.ResponseWriter.Write(b)
}

func (g *gzipResponseWriter) close() {
	if g.compress {
		g.gzipWriter.Close()
	}
}

func compressible(statusCode int) bool {
	switch {
	case statusCode == http.StatusNoContent, statusCode == http.StatusNotModified:
		return false
	case statusCode >= http.StatusMultipleChoices && statusCode < http.StatusBadRequest:
		return false
	default:
		return true
	}
}
