// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// compressionLevel is the gzip level used for JSON and text responses.
const compressionLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		h.withRecover,
		h.withTraceID,
		h.withLogging,
		middleware.Compress(compressionLevel, "application/json", "text/plain"),
	)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/users/register", h.handle(h.register))
		r.Post("/api/users/authenticate", h.handle(h.authenticate))
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/users/me", h.handle(h.me))
		r.Get("/api/users/{id}", h.handle(h.getUser))
		r.Get("/api/users", h.handle(h.findUser))
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
