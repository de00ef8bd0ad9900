// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/user-management/internal/logger"
	"github.com/MKhiriev/user-management/internal/service"
	"github.com/MKhiriev/user-management/internal/utils"
)

// handlerFunc is a route handler that reports failures by returning them.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

// handle adapts fn to an [http.HandlerFunc]. A returned error is written as
// a plain-text response whose status follows the error's [service.Kind] and
// whose body is exactly the error message.
func (h *Handler) handle(fn handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := fn(w, r)
		if err == nil {
			return
		}

		status := statusFromError(err)
		log := logger.FromRequest(r)
		if status >= http.StatusInternalServerError {
			log.Err(err).Int("status", status).Msg("request failed")
		} else {
			log.Debug().Err(err).Int("status", status).Msg("request rejected")
		}

		writeError(w, status, err)
	}
}

func statusFromError(err error) int {
	switch service.KindOf(err) {
	case service.KindValidation:
		return http.StatusBadRequest
	case service.KindNotFound:
		return http.StatusNotFound
	case service.KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	_, _ = utils.WriteText(w, errorMessage(err, status), status)
}

// errorMessage never panics: a nil error, an empty message or an Error
// method that panics all yield the status text.
func errorMessage(err error, status int) (message string) {
	fallback := http.StatusText(status)
	if err == nil {
		return fallback
	}

	defer func() {
		if recover() != nil {
			message = fallback
		}
	}()

	if message = err.Error(); message == "" {
		return fallback
	}
	return message
}
