package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-user-service/internal/logger"
)

// withLogging writes one access log line per request once the handler has
// returned:
//
//	[LOG] GET /users responded with 200
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		path := r.URL.Path
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)

		status := lw.status
		if status == 0 {
			status = http.StatusOK
		}

		log.Info().
			Str("method", method).
			Str("path", path).
			Int("status", status).
			Dur("duration", duration).
			Int("size", lw.size).
			Msgf("[LOG] %s %s responded with %d", method, path, status)
	})
}
