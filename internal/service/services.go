package service

import (
	"fmt"

	"github.com/MKhiriev/go-user-service/internal/config"
	"github.com/MKhiriev/go-user-service/internal/logger"
	"github.com/MKhiriev/go-user-service/internal/store"
)

type Services struct {
	UserService    UserService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	userService := NewUserValidationService().Wrap(NewUserService(storages.UserStore, logger))

	return &Services{
		UserService:    userService,
		AppInfoService: appInfoService,
	}, nil
}
