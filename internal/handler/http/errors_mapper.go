package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-user-service/internal/logger"
	"github.com/MKhiriev/go-user-service/internal/service"
	"github.com/MKhiriev/go-user-service/internal/store"
	"github.com/MKhiriev/go-user-service/internal/utils"
	"github.com/MKhiriev/go-user-service/internal/validators"
	"github.com/MKhiriev/go-user-service/models"
)

var errorStatusMap = map[error]int{
	service.ErrValidationFailed:        http.StatusBadRequest,
	service.ErrEmailAlreadyExists:      http.StatusBadRequest,
	service.ErrEmailTakenByAnotherUser: http.StatusBadRequest,

	store.ErrEmailAlreadyExists: http.StatusBadRequest,
	store.ErrUserNotFound:       http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messagesFromError returns the list body of a 400 response.
func messagesFromError(err error) []string {
	var validationErrors validators.ValidationErrors
	switch {
	case errors.As(err, &validationErrors):
		return validationErrors.Messages()
	case errors.Is(err, service.ErrEmailTakenByAnotherUser):
		return []string{emailTakenByAnotherUserMessage}
	case errors.Is(err, service.ErrEmailAlreadyExists), errors.Is(err, store.ErrEmailAlreadyExists):
		return []string{emailAlreadyExistsMessage}
	default:
		return []string{err.Error()}
	}
}

func userNotFoundMessage(id int64) string {
	return fmt.Sprintf(userNotFoundFormat, id)
}

// writeServiceError answers a failed user operation on the user with the
// given id: 400 with a message list, 404 with the not-found message or an
// opaque 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, id int64) {
	log := logger.FromRequest(r)

	switch status := statusFromError(err); status {
	case http.StatusBadRequest:
		log.Debug().Err(err).Msg("request rejected")
		utils.WriteJSON(w, messagesFromError(err), status)
	case http.StatusNotFound:
		log.Debug().Err(err).Msg("user not found")
		utils.WriteJSON(w, userNotFoundMessage(id), status)
	default:
		log.Err(err).Msg("unexpected error occurred")
		utils.WriteJSON(w, models.ErrorResponse{Error: internalServerErrorMessage}, http.StatusInternalServerError)
	}
}
