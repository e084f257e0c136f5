package http

import (
	"github.com/MKhiriev/go-user-service/internal/config"
	"github.com/MKhiriev/go-user-service/internal/logger"
	"github.com/MKhiriev/go-user-service/internal/service"
	"github.com/MKhiriev/go-user-service/internal/utils"
)

type Handler struct {
	services *service.Services

	// authToken is the shared secret expected after "Bearer " on /users routes.
	authToken string
	traceIDs  *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		authToken: cfg.AuthToken,
		traceIDs:  utils.NewUUIDGenerator(),
		logger:    logger,
	}
}
