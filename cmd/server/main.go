package main

import (
	"fmt"

	"github.com/MKhiriev/go-user-service/internal/config"
	"github.com/MKhiriev/go-user-service/internal/handler"
	"github.com/MKhiriev/go-user-service/internal/logger"
	"github.com/MKhiriev/go-user-service/internal/server"
	"github.com/MKhiriev/go-user-service/internal/service"
	"github.com/MKhiriev/go-user-service/internal/store"
	"github.com/MKhiriev/go-user-service/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("user-service")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err := logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("version", cfg.App.Version).
		Str("log_level", cfg.App.LogLevel).
		Dur("read_timeout", cfg.Server.ReadTimeout).
		Dur("write_timeout", cfg.Server.WriteTimeout).
		Dur("shutdown_timeout", cfg.Server.ShutdownTimeout).
		Msg("received configs")

	storages := store.NewStorages(log)

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
