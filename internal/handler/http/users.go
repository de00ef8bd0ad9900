// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/user-management/internal/logger"
	"github.com/MKhiriev/user-management/internal/service"
	"github.com/MKhiriev/user-management/internal/utils"
	"github.com/MKhiriev/user-management/models"
)

// register handles POST /api/users/register.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) error {
	var registration models.UserRegistration
	if err := decodeJSON(r, &registration); err != nil {
		return err
	}

	id, err := h.services.UserService.RegisterUser(r.Context(), registration)
	if err != nil {
		return err
	}
	if id == "" {
		return service.ErrUserRegistrationFailed
	}

	logger.FromRequest(r).Info().Str("user_id", id).Msg("user registered")

	_, err = utils.WriteJSON(w, models.RegistrationResponse{ID: id}, http.StatusCreated)
	return err
}

// authenticate handles POST /api/users/authenticate. The token is returned
// both in the body and in the Authorization header.
func (h *Handler) authenticate(w http.ResponseWriter, r *http.Request) error {
	var credentials models.UserCredential
	if err := decodeJSON(r, &credentials); err != nil {
		return err
	}

	token, err := h.services.AuthManager.Authenticate(r.Context(), credentials)
	if err != nil {
		return err
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	_, err = utils.WriteJSON(w, models.AuthResponse{
		Token:     token.SignedString,
		ExpiresAt: token.ExpiresAt(),
	}, http.StatusOK)
	return err
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) error {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return service.NewUnauthorizedError(ErrNoUserInContext.Error())
	}

	user, err := h.services.UserService.GetUser(r.Context(), userID)
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, user, http.StatusOK)
	return err
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) error {
	user, err := h.services.UserService.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, user, http.StatusOK)
	return err
}

// findUser handles GET /api/users?email=... and GET /api/users?username=...
// When both are given, email wins.
func (h *Handler) findUser(w http.ResponseWriter, r *http.Request) error {
	query := r.URL.Query()

	var (
		user models.UserDto
		err  error
	)
	switch {
	case query.Get("email") != "":
		user, err = h.services.UserService.GetUserByEmail(r.Context(), query.Get("email"))
	case query.Get("username") != "":
		user, err = h.services.UserService.GetUserByUsername(r.Context(), query.Get("username"))
	default:
		return service.NewValidationError(ErrMissingLookupParameter.Error(), ErrMissingLookupParameter)
	}
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, user, http.StatusOK)
	return err
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return service.NewValidationError(ErrInvalidJSON.Error(), err)
	}
	return nil
}
