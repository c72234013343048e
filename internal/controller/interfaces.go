// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package controller owns the fetch, render and mutate lifecycle of the
// dashboard resource collections.
//
// One [Controller] exists per section. Load paints a loading view, fetches
// the collection and paints the outcome. Create and Delete mutate the remote
// collection and then run a full Load; the rendered list is never spliced
// locally. Controllers never return errors: failures become error views and
// toasts on the [Surface].
package controller

import (
	"context"

	"github.com/MKhiriev/shop-panel/internal/render"
	"github.com/MKhiriev/shop-panel/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/controller_mock.go -package=mock

// Controller drives one resource section.
type Controller interface {
	// Section returns the section this controller owns.
	Section() models.Section

	// Load fetches the collection and paints loading, then the outcome.
	Load(ctx context.Context)

	// Create parses form, posts it and reloads on success.
	Create(ctx context.Context, form models.Form)

	// Delete asks for confirmation, deletes record id and reloads on success.
	Delete(ctx context.Context, id int64)

	// Deletable reports whether records of this section can be deleted.
	Deletable() bool
}

// Painter receives every settled or loading view of a section.
type Painter interface {
	Paint(section models.Section, view render.View)
}

// Notifier shows transient toasts.
type Notifier interface {
	Notify(toast models.Toast)
}

// Confirmer gates destructive actions. A false answer aborts the action.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}

// FormSurface controls the create form of a section.
type FormSurface interface {
	CloseForm(section models.Section)
	ResetForm(section models.Section)
}

// Surface is everything a controller talks to.
type Surface interface {
	Painter
	Notifier
	Confirmer
	FormSurface
}
