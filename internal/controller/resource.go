// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package controller

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/shop-panel/internal/logger"
	"github.com/MKhiriev/shop-panel/internal/render"
	"github.com/MKhiriev/shop-panel/internal/validators"
	"github.com/MKhiriev/shop-panel/models"
)

// Messages are the toast texts of one resource.
type Messages struct {
	LoadFailed   string
	Created      string
	CreateFailed string
	Deleted      string
	DeleteFailed string
}

// Resource binds a record type T and its create payload P to the calls that
// fetch, create and delete them. A nil Remove makes the section read-only
// for deletes.
type Resource[T, P any] struct {
	Section  models.Section
	List     func(ctx context.Context) ([]T, error)
	Add      func(ctx context.Context, payload P) error
	Remove   func(ctx context.Context, id int64) error
	Parse    func(form models.Form) P
	Render   func(items []T) render.View
	Messages Messages
}

type resourceController[T, P any] struct {
	res       Resource[T, P]
	validator validators.Validator
	surface   Surface
	logger    *logger.Logger

	// mu serialises generation changes with painting so a stale response
	// can never overwrite a newer loading view.
	mu         sync.Mutex
	generation uint64
}

// New builds a [Controller] for res.
func New[T, P any](res Resource[T, P], validator validators.Validator, surface Surface, logger *logger.Logger) Controller {
	return &resourceController[T, P]{
		res:       res,
		validator: validator,
		surface:   surface,
		logger:    logger,
	}
}

func (c *resourceController[T, P]) Section() models.Section {
	return c.res.Section
}

func (c *resourceController[T, P]) Deletable() bool {
	return c.res.Remove != nil
}

// Load implements [Controller].
func (c *resourceController[T, P]) Load(ctx context.Context) {
	log := c.logger.With().
		Str("func", "resourceController.Load").
		Str("section", string(c.res.Section)).
		Logger()

	gen := c.begin()

	var view render.View
	items, err := c.res.List(ctx)
	if err != nil {
		log.Err(err).Uint64("generation", gen).Msg("fetch failed")
		view = render.FailureFor(c.res.Section)
	} else {
		view = c.res.Render(items)
	}

	if !c.settle(gen, view) {
		log.Debug().Uint64("generation", gen).Msg("stale response discarded")
		return
	}
	if err != nil && c.res.Messages.LoadFailed != "" {
		c.surface.Notify(models.Failure(c.res.Messages.LoadFailed))
	}

	log.Debug().Uint64("generation", gen).Str("view", view.Kind.String()).Msg("section rendered")
}

// Create implements [Controller].
func (c *resourceController[T, P]) Create(ctx context.Context, form models.Form) {
	log := c.logger.With().
		Str("func", "resourceController.Create").
		Str("section", string(c.res.Section)).
		Logger()

	if c.res.Add == nil {
		log.Warn().Msg("section does not support create")
		return
	}

	payload := c.res.Parse(form)
	if err := c.validator.Validate(ctx, payload); err != nil {
		log.Warn().Err(err).Msg("create form rejected")

		var verr *validators.ValidationError
		if errors.As(err, &verr) {
			c.surface.Notify(models.Failure(verr.First()))
			return
		}
		c.surface.Notify(models.Failure(c.res.Messages.CreateFailed))
		return
	}

	if err := c.res.Add(ctx, payload); err != nil {
		log.Err(err).Msg("create failed")
		c.surface.Notify(models.Failure(c.res.Messages.CreateFailed))
		return
	}

	log.Info().Msg("record created")
	c.surface.Notify(models.Success(c.res.Messages.Created))
	c.surface.CloseForm(c.res.Section)
	c.surface.ResetForm(c.res.Section)
	c.Load(ctx)
}

// Delete implements [Controller].
func (c *resourceController[T, P]) Delete(ctx context.Context, id int64) {
	log := c.logger.With().
		Str("func", "resourceController.Delete").
		Str("section", string(c.res.Section)).
		Int64("id", id).
		Logger()

	if c.res.Remove == nil {
		log.Warn().Msg("section does not support delete")
		return
	}

	if !c.surface.Confirm(ctx, render.DeletePrompt(c.res.Section, id)) {
		log.Debug().Msg("delete cancelled")
		return
	}

	if err := c.res.Remove(ctx, id); err != nil {
		log.Err(err).Msg("delete failed")
		c.surface.Notify(models.Failure(c.res.Messages.DeleteFailed))
		return
	}

	log.Info().Msg("record deleted")
	c.surface.Notify(models.Success(c.res.Messages.Deleted))
	c.Load(ctx)
}

func (c *resourceController[T, P]) begin() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++
	c.surface.Paint(c.res.Section, render.Loading())
	return c.generation
}

func (c *resourceController[T, P]) settle(gen uint64, view render.View) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		return false
	}
	c.surface.Paint(c.res.Section, view)
	return true
}
