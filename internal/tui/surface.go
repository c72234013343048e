// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"sync"

	"github.com/MKhiriev/shop-panel/internal/render"
	"github.com/MKhiriev/shop-panel/models"
	tea "github.com/charmbracelet/bubbletea"
)

type sender interface {
	Send(msg tea.Msg)
}

// teaSurface turns controller output into Bubble Tea messages. It is built
// before the program exists and attached once the program is created;
// messages sent while detached are dropped.
type teaSurface struct {
	mu      sync.RWMutex
	program sender
}

func newTeaSurface() *teaSurface {
	return &teaSurface{}
}

func (s *teaSurface) attach(p sender) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.program = p
}

func (s *teaSurface) send(msg tea.Msg) bool {
	s.mu.RLock()
	p := s.program
	s.mu.RUnlock()

	if p == nil {
		return false
	}
	p.Send(msg)
	return true
}

func (s *teaSurface) Paint(section models.Section, view render.View) {
	s.send(paintMsg{section: section, view: view})
}

func (s *teaSurface) Notify(toast models.Toast) {
	s.send(toastMsg{toast: toast})
}

func (s *teaSurface) CloseForm(section models.Section) {
	s.send(closeFormMsg{section: section})
}

func (s *teaSurface) ResetForm(section models.Section) {
	s.send(resetFormMsg{section: section})
}

// Confirm shows the confirmation overlay and blocks until the user answers
// or ctx is done. It must not be called from the program's Update loop.
func (s *teaSurface) Confirm(ctx context.Context, prompt string) bool {
	reply := make(chan bool, 1)
	if !s.send(confirmRequestMsg{prompt: prompt, reply: reply}) {
		return false
	}

	select {
	case ok := <-reply:
		return ok
	case <-ctx.Done():
		return false
	}
}
