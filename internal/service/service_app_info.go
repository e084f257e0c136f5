package service

import (
	"context"

	"github.com/MKhiriev/go-user-service/internal/config"
	"github.com/MKhiriev/go-user-service/internal/logger"
)

// appInfoService serves static facts about the running application.
type appInfoService struct {
	appVersion string

	logger *logger.Logger
}

// NewAppInfoService returns an AppInfoService reporting cfg.Version.
// An empty version is a startup misconfiguration ([ErrVersionIsNotSpecified]).
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Debug().Str("version", cfg.Version).Msg("app info service created")

	return &appInfoService{
		appVersion: cfg.Version,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}
