// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package dashboard

import (
	"context"
	"fmt"

	"github.com/MKhiriev/shop-panel/models"
)

// Start loads the initial section. It runs independently of navigation.
func (d *Dashboard) Start(ctx context.Context) {
	d.controllers[d.Active()].Load(ctx)
}

// Activate makes section the only active one and triggers exactly one load
// of it, even when it is already active.
func (d *Dashboard) Activate(ctx context.Context, section models.Section) error {
	c, ok := d.controllers[section]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSection, section)
	}

	d.mu.Lock()
	previous := d.state.Active
	d.state.Active = section
	d.mu.Unlock()

	d.logger.Debug().
		Str("func", "Dashboard.Activate").
		Str("from", string(previous)).
		Str("to", string(section)).
		Msg("section activated")

	c.Load(ctx)
	return nil
}
