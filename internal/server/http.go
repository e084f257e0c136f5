package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-user-service/internal/config"
	"github.com/MKhiriev/go-user-service/internal/logger"
)

type httpServer struct {
	server *http.Server
	logger *logger.Logger
}

func newHTTPServer(handler http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:         cfg.HTTPAddress,
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		logger: logger,
	}
}

// serve blocks until the server stops. A stop caused by shutdown is not an
// error.
func (h *httpServer) serve() error {
	h.logger.Info().Str("address", h.server.Addr).Msg("Launching HTTP server")

	err := h.server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return fmt.Errorf("HTTP server ListenAndServe on %s: %w", h.server.Addr, err)
}

// shutdown stops accepting connections and waits for in-flight requests
// until ctx expires.
func (h *httpServer) shutdown(ctx context.Context) error {
	if err := h.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("HTTP server Shutdown: %w", err)
	}

	return nil
}
