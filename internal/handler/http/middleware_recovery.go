package http

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-user-service/internal/logger"
	"github.com/MKhiriev/go-user-service/internal/utils"
	"github.com/MKhiriev/go-user-service/models"
)

// withRecovery is the only fault boundary of the chain. The inner chain
// writes into a buffer that is flushed after it returns; on panic the buffer
// is dropped and a generic 500 is written instead, so a partially written
// response never reaches the client.
//
// http.ErrAbortHandler is re-panicked so net/http can abort the connection.
func (h *Handler) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		bw := newBufferedResponseWriter()

		defer func() {
			rec := recover()
			if rec == nil {
				if err := bw.flushTo(w); err != nil {
					logger.FromRequest(r).Err(err).Msg("error writing response")
				}
				return
			}

			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.FromRequest(r).Error().
				Str("error", fmt.Sprint(rec)).
				Str("stack", string(debug.Stack())).
				Msg("panic recovered")

			utils.WriteJSON(w, models.ErrorResponse{Error: internalServerErrorMessage}, http.StatusInternalServerError)
		}()

		next.ServeHTTP(bw, r)
	})
}
