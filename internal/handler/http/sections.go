// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"strconv"

	"github.com/MKhiriev/shop-panel/internal/app"
	"github.com/MKhiriev/shop-panel/internal/dashboard"
	"github.com/MKhiriev/shop-panel/internal/logger"
	"github.com/MKhiriev/shop-panel/internal/render"
	"github.com/MKhiriev/shop-panel/internal/utils"
	"github.com/MKhiriev/shop-panel/models"
	"github.com/go-chi/chi/v5"
)

var defaultSection = models.SectionUsers

// request is one dashboard run over a recording surface.
type request struct {
	dash    *dashboard.Dashboard
	surface *webSurface
}

func (h *Handler) newRequest(r *http.Request) request {
	surface := newWebSurface()
	return request{
		dash:    dashboard.New(h.shop, h.validator, surface, logger.FromRequest(r)),
		surface: surface,
	}
}

// settle loads section when the dispatched command left no settled view
// of it, so the page always shows the collection.
func (req request) settle(ctx context.Context, section models.Section) render.View {
	view := req.dash.State().View(section)
	if view.Settled() {
		return view
	}

	_ = req.dash.Dispatch(ctx, dashboard.Command{Action: dashboard.ActionLoad, Section: section})
	return req.dash.State().View(section)
}

func (h *Handler) showSection(w http.ResponseWriter, r *http.Request) {
	section, ok := h.sectionParam(w, r)
	if !ok {
		return
	}

	req := h.newRequest(r)
	ctx := r.Context()
	if err := req.dash.Dispatch(ctx, dashboard.Command{Action: dashboard.ActionActivate, Section: section}); err != nil {
		h.writeDispatchError(w, r, err)
		return
	}

	h.writeSection(w, r, req, section, nil, http.StatusOK)
}

// sectionGrid returns only the grid markup of a freshly loaded section.
func (h *Handler) sectionGrid(w http.ResponseWriter, r *http.Request) {
	section, ok := h.sectionParam(w, r)
	if !ok {
		return
	}

	req := h.newRequest(r)
	view := req.settle(r.Context(), section)

	if _, err := utils.WriteHTML(w, render.Markup(section, view), http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.sectionGrid").Msg("failed to write grid")
	}
}

func (h *Handler) createRecord(w http.ResponseWriter, r *http.Request) {
	section, ok := h.sectionParam(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.createRecord").Msg(ErrInvalidForm.Error())
		http.Error(w, app.MsgInvalidForm, http.StatusBadRequest)
		return
	}

	form := make(models.Form)
	for _, f := range render.FormFields(section) {
		form[f.Name] = r.PostForm.Get(f.Name)
	}

	req := h.newRequest(r)
	ctx := r.Context()
	if err := req.dash.Dispatch(ctx, dashboard.Command{Action: dashboard.ActionCreate, Section: section, Form: form}); err != nil {
		h.writeDispatchError(w, r, err)
		return
	}

	h.writeSection(w, r, req, section, form, http.StatusOK)
}

func (h *Handler) deleteRecord(w http.ResponseWriter, r *http.Request) {
	section, ok := h.sectionParam(w, r)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		logger.FromRequest(r).Debug().Str("func", "*Handler.deleteRecord").Str("id", chi.URLParam(r, "id")).Msg(ErrInvalidRecordID.Error())
		http.Error(w, app.MsgInvalidRecordID, http.StatusBadRequest)
		return
	}

	req := h.newRequest(r)
	ctx := utils.WithConfirmation(r.Context(), r.PostFormValue("confirm") == "yes")
	if err = req.dash.Dispatch(ctx, dashboard.Command{Action: dashboard.ActionDelete, Section: section, ID: id}); err != nil {
		h.writeDispatchError(w, r, err)
		return
	}

	if prompt := req.surface.PendingPrompt(); prompt != "" {
		h.writePage(w, r, pages.confirm, confirmPage{
			Prompt: prompt,
			Action: deletePath(section, id),
			Back:   sectionPath(section),
		}, http.StatusOK)
		return
	}

	h.writeSection(w, r, req, section, nil, http.StatusOK)
}

func (h *Handler) sectionParam(w http.ResponseWriter, r *http.Request) (models.Section, bool) {
	section, err := models.ParseSection(chi.URLParam(r, "section"))
	if err != nil {
		logger.FromRequest(r).Debug().Err(err).Str("func", "*Handler.sectionParam").Send()
		http.Error(w, app.MsgUnknownSection, http.StatusNotFound)
		return "", false
	}
	return section, true
}

func (h *Handler) writeDispatchError(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromRequest(r).Debug().Err(err).Str("func", "*Handler.writeDispatchError").Send()

	switch {
	case errors.Is(err, dashboard.ErrUnknownSection):
		http.Error(w, app.MsgUnknownSection, http.StatusNotFound)
	case errors.Is(err, dashboard.ErrUnknownAction):
		http.Error(w, app.MsgDeleteNotSupported, http.StatusNotFound)
	default:
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// writeSection renders the full page of section. submitted is the create
// form as posted; it is echoed back unless the create succeeded.
func (h *Handler) writeSection(w http.ResponseWriter, r *http.Request, req request, section models.Section, submitted models.Form, status int) {
	// Markup escapes every interpolated value.
	view := req.settle(r.Context(), section)
	session, _ := utils.SessionFromContext(r.Context())

	values := submitted
	if req.surface.FormReset(section) {
		values = nil
	}
	formOpen := submitted != nil && !req.surface.FormClosed(section)

	h.writePage(w, r, pages.section, sectionPage{
		Session:     session,
		Section:     section,
		Tabs:        tabs(section),
		Toasts:      req.surface.Toasts(),
		FormOpen:    formOpen,
		FormAction:  sectionPath(section),
		Fields:      formInputs(section, values),
		Grid:        template.HTML(render.Markup(section, view)),
		ToastMillis: h.cfg.ToastDuration.Milliseconds(),
	}, status)
}
