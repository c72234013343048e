// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	// routes without a session
	router.Group(func(r chi.Router) {
		r.Get("/login", h.loginPage)
		r.Post("/login", h.login)
	})

	// routes behind the session gate
	router.Group(func(r chi.Router) {
		r.Use(h.withSession)

		r.Get("/", h.index)
		r.Post("/logout", h.logout)
		r.Get("/sections/{section}", h.showSection)
		r.Get("/sections/{section}/grid", h.sectionGrid)
		r.Post("/sections/{section}", h.createRecord)
		r.Post("/sections/{section}/{id}/delete", h.deleteRecord)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, sectionPath(defaultSection), http.StatusSeeOther)
}
