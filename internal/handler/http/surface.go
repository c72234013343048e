// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"sync"

	"github.com/MKhiriev/shop-panel/internal/render"
	"github.com/MKhiriev/shop-panel/internal/utils"
	"github.com/MKhiriev/shop-panel/models"
)

// webSurface records controller output for the duration of one request.
// Confirm answers from the request context: a destructive action runs only
// when the browser already confirmed it, otherwise the prompt is kept so the
// handler can ask.
type webSurface struct {
	mu      sync.Mutex
	views   map[models.Section]render.View
	toasts  []models.Toast
	closed  map[models.Section]bool
	reset   map[models.Section]bool
	pending string
}

func newWebSurface() *webSurface {
	return &webSurface{
		views:  make(map[models.Section]render.View),
		closed: make(map[models.Section]bool),
		reset:  make(map[models.Section]bool),
	}
}

func (s *webSurface) Paint(section models.Section, view render.View) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.views[section] = view
}

func (s *webSurface) Notify(toast models.Toast) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.toasts = append(s.toasts, toast)
}

func (s *webSurface) Confirm(ctx context.Context, prompt string) bool {
	if utils.IsConfirmed(ctx) {
		return true
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = prompt
	return false
}

func (s *webSurface) CloseForm(section models.Section) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed[section] = true
}

func (s *webSurface) ResetForm(section models.Section) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset[section] = true
}

func (s *webSurface) Toasts() []models.Toast {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Toast(nil), s.toasts...)
}

// PendingPrompt returns the prompt of an unconfirmed destructive action.
func (s *webSurface) PendingPrompt() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

func (s *webSurface) FormClosed(section models.Section) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed[section]
}

func (s *webSurface) FormReset(section models.Section) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reset[section]
}
