// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package dashboard holds the explicit dashboard state, the section
// navigator and the action dispatch table.
//
// [Dashboard] sits between the resource controllers and a view surface.
// Controllers paint into it; it records every view into [State] and only
// forwards views of the active section to the surface. Surfaces never call
// controllers directly: they submit a [Command] to [Dashboard.Dispatch].
package dashboard

import (
	"context"
	"maps"
	"sync"

	"github.com/MKhiriev/shop-panel/internal/adapter"
	"github.com/MKhiriev/shop-panel/internal/controller"
	"github.com/MKhiriev/shop-panel/internal/logger"
	"github.com/MKhiriev/shop-panel/internal/render"
	"github.com/MKhiriev/shop-panel/internal/validators"
	"github.com/MKhiriev/shop-panel/models"
)

// State is a snapshot of what the dashboard displays.
type State struct {
	// Active is the only visible section.
	Active models.Section
	// Views holds the last view of every section that has been loaded,
	// visible or not.
	Views map[models.Section]render.View
}

// View returns the recorded view of section. Sections never loaded report
// a loading view.
func (s State) View(section models.Section) render.View {
	if v, ok := s.Views[section]; ok {
		return v
	}
	return render.Loading()
}

// Dashboard implements [controller.Surface] for the controllers it owns.
type Dashboard struct {
	surface     controller.Surface
	controllers controller.Controllers
	handlers    map[actionKey]handlerFunc
	logger      *logger.Logger

	mu    sync.RWMutex
	state State
}

// New wires the users, products and orders controllers over shop and
// forwards their output to surface.
func New(shop adapter.ShopAdapter, validator validators.Validator, surface controller.Surface, logger *logger.Logger) *Dashboard {
	return NewWithControllers(surface, func(s controller.Surface) controller.Controllers {
		return controller.NewControllers(shop, validator, s, logger)
	}, logger)
}

// NewWithControllers builds a Dashboard whose controllers are created by
// build with the dashboard itself as their surface.
func NewWithControllers(surface controller.Surface, build func(controller.Surface) controller.Controllers, logger *logger.Logger) *Dashboard {
	d := &Dashboard{
		surface: surface,
		logger:  logger,
		state: State{
			Active: models.Sections()[0],
			Views:  make(map[models.Section]render.View),
		},
	}
	d.controllers = build(d)
	d.handlers = d.buildHandlers()

	return d
}

// State returns a copy of the current state.
func (d *Dashboard) State() State {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return State{Active: d.state.Active, Views: maps.Clone(d.state.Views)}
}

// Active returns the active section.
func (d *Dashboard) Active() models.Section {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.state.Active
}

// Deletable reports whether section supports deleting records.
func (d *Dashboard) Deletable(section models.Section) bool {
	c, ok := d.controllers[section]
	return ok && c.Deletable()
}

// Paint implements [controller.Painter].
func (d *Dashboard) Paint(section models.Section, view render.View) {
	d.mu.Lock()
	d.state.Views[section] = view
	active := d.state.Active == section
	d.mu.Unlock()

	if !active {
		d.logger.Debug().
			Str("func", "Dashboard.Paint").
			Str("section", string(section)).
			Str("view", view.Kind.String()).
			Msg("inactive section recorded without painting")
		return
	}
	d.surface.Paint(section, view)
}

// Notify implements [controller.Notifier].
func (d *Dashboard) Notify(toast models.Toast) {
	d.surface.Notify(toast)
}

// Confirm implements [controller.Confirmer].
func (d *Dashboard) Confirm(ctx context.Context, prompt string) bool {
	return d.surface.Confirm(ctx, prompt)
}

// CloseForm implements [controller.FormSurface].
func (d *Dashboard) CloseForm(section models.Section) {
	d.surface.CloseForm(section)
}

// ResetForm implements [controller.FormSurface].
func (d *Dashboard) ResetForm(section models.Section) {
	d.surface.ResetForm(section)
}
