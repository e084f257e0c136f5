package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-user-service/internal/logger"
	"github.com/MKhiriev/go-user-service/internal/store"
	"github.com/MKhiriev/go-user-service/internal/utils"
	"github.com/MKhiriev/go-user-service/models"
	"github.com/go-chi/chi/v5"
)

const userIDParam = "id"

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		writeServiceError(w, r, err, 0)
		return
	}

	if users == nil {
		users = []models.User{}
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

// getUser keeps two failure channels apart: a missing user is a 404, any
// other error is reported as a 500 carrying the error message.
func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), id)
	switch {
	case err == nil:
		utils.WriteJSON(w, user, http.StatusOK)
	case errors.Is(err, store.ErrUserNotFound):
		utils.WriteJSON(w, userNotFoundMessage(id), http.StatusNotFound)
	default:
		logger.FromRequest(r).Err(err).Int64("id", id).Msg("unexpected error occurred during getting user")
		utils.WriteJSON(w, models.ErrorResponse{Error: unexpectedErrorPrefix + err.Error()}, http.StatusInternalServerError)
	}
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	user, ok := decodeUser(w, r)
	if !ok {
		return
	}

	created, err := h.services.UserService.CreateUser(r.Context(), user)
	if err != nil {
		writeServiceError(w, r, err, 0)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("%s/%d", usersPath, created.ID))
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	user, ok := decodeUser(w, r)
	if !ok {
		return
	}

	updated, err := h.services.UserService.UpdateUser(r.Context(), id, user)
	if err != nil {
		writeServiceError(w, r, err, id)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.UserService.DeleteUser(r.Context(), id); err != nil {
		writeServiceError(w, r, err, id)
		return
	}

	utils.WriteJSON(w, fmt.Sprintf(userDeletedFormat, id), http.StatusOK)
}

// userIDFromRequest reads the {id} route parameter. The route pattern only
// admits an optionally signed run of digits, so the parse fails only on
// int64 overflow; such a path is answered like an unknown route.
func userIDFromRequest(w http.ResponseWriter, r *http.Request) (int64, bool) {
	rawID := chi.URLParam(r, userIDParam)

	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		logger.FromRequest(r).Debug().Err(err).Str("id", rawID).Msg("user id out of range")
		http.NotFound(w, r)
		return 0, false
	}

	return id, true
}

// decodeUser reads exactly one JSON value from the body. Anything but
// whitespace after it makes the body invalid.
func decodeUser(w http.ResponseWriter, r *http.Request) (models.User, bool) {
	var user models.User

	dec := json.NewDecoder(r.Body)
	err := dec.Decode(&user)
	if err == nil {
		if extraErr := dec.Decode(&struct{}{}); !errors.Is(extraErr, io.EOF) {
			err = errTrailingData
		}
	}

	if err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: invalidJSONMessage}, http.StatusBadRequest)
		return models.User{}, false
	}

	return user, true
}
