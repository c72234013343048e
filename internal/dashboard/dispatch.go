// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package dashboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/shop-panel/models"
)

var (
	ErrUnknownSection = errors.New("unknown section")
	ErrUnknownAction  = errors.New("action not supported by section")
)

// Action is a user intent a surface can submit.
type Action string

const (
	ActionActivate Action = "activate"
	ActionLoad     Action = "load"
	ActionCreate   Action = "create"
	ActionDelete   Action = "delete"
)

// Command is one dispatched user intent. ID is used by delete, Form by
// create.
type Command struct {
	Action  Action
	Section models.Section
	ID      int64
	Form    models.Form
}

type actionKey struct {
	action  Action
	section models.Section
}

type handlerFunc func(ctx context.Context, cmd Command) error

func (d *Dashboard) buildHandlers() map[actionKey]handlerFunc {
	handlers := make(map[actionKey]handlerFunc)

	for section, c := range d.controllers {
		handlers[actionKey{ActionActivate, section}] = func(ctx context.Context, cmd Command) error {
			return d.Activate(ctx, cmd.Section)
		}
		handlers[actionKey{ActionLoad, section}] = func(ctx context.Context, _ Command) error {
			c.Load(ctx)
			return nil
		}
		handlers[actionKey{ActionCreate, section}] = func(ctx context.Context, cmd Command) error {
			c.Create(ctx, cmd.Form)
			return nil
		}
		if c.Deletable() {
			handlers[actionKey{ActionDelete, section}] = func(ctx context.Context, cmd Command) error {
				c.Delete(ctx, cmd.ID)
				return nil
			}
		}
	}

	return handlers
}

// Dispatch routes cmd to the controller method registered for its action
// and section. Outcomes are reported through the surface; the returned error
// only signals a command that has no handler.
func (d *Dashboard) Dispatch(ctx context.Context, cmd Command) error {
	if _, ok := d.controllers[cmd.Section]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSection, cmd.Section)
	}

	handler, ok := d.handlers[actionKey{cmd.Action, cmd.Section}]
	if !ok {
		return fmt.Errorf("%w: %s %s", ErrUnknownAction, cmd.Action, cmd.Section)
	}

	d.logger.Debug().
		Str("func", "Dashboard.Dispatch").
		Str("action", string(cmd.Action)).
		Str("section", string(cmd.Section)).
		Int64("id", cmd.ID).
		Msg("dispatching command")

	return handler(ctx, cmd)
}
