package http

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-user-service/internal/logger"
	"github.com/MKhiriev/go-user-service/internal/utils"
	"github.com/MKhiriev/go-user-service/models"
)

// withAuth guards every path starting with /users. The "Authorization"
// header must equal "Bearer <token>" verbatim; otherwise the request is
// answered with 401 and the rest of the chain is never invoked.
func (h *Handler) withAuth(next http.Handler) http.Handler {
	expected := []byte("Bearer " + h.authToken)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, usersPath) {
			next.ServeHTTP(w, r)
			return
		}

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			rejectUnauthorized(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		if subtle.ConstantTimeCompare([]byte(authHeader), expected) != 1 {
			rejectUnauthorized(w, r, ErrInvalidToken)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func rejectUnauthorized(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromRequest(r).Warn().Err(err).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("unauthorized request")

	utils.WriteJSON(w, models.ErrorResponse{Error: unauthorizedMessage}, http.StatusUnauthorized)
}
