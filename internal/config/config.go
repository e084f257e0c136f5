// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-user-service application. It is populated by merging defaults, an
// optional .env file, environment variables, command-line flags and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: the shared API token, the
	// application version and the log level.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// AuthToken is the shared secret every request under /users must present
	// as "Authorization: Bearer <AuthToken>".
	// Env: APP_AUTH_TOKEN
	AuthToken string `env:"AUTH_TOKEN"`

	// Version is the version string exposed via GET /version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is the minimal zerolog level that is written
	// (e.g. "debug", "info").
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network and timeout settings for the inbound HTTP server.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// ReadTimeout bounds reading an entire request, body included.
	// Env: SERVER_READ_TIMEOUT
	ReadTimeout time.Duration `env:"READ_TIMEOUT"`

	// WriteTimeout bounds writing the response.
	// Env: SERVER_WRITE_TIMEOUT
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT"`

	// ShutdownTimeout is how long in-flight requests may take to finish
	// after a stop signal.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Default values applied to every field that no other source sets.
const (
	DefaultHTTPAddress     = "localhost:8080"
	DefaultAuthToken       = "mysecrettoken123"
	DefaultVersion         = "1.0.0"
	DefaultLogLevel        = "debug"
	DefaultReadTimeout     = 10 * time.Second
	DefaultWriteTimeout    = 10 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
)

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Defaults
//  2. Environment variables (after loading the optional .env file named by
//     ENV_FILE, ".env" by default)
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv(os.Getenv("ENV_FILE")).
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			AuthToken: DefaultAuthToken,
			Version:   DefaultVersion,
			LogLevel:  DefaultLogLevel,
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			ReadTimeout:     DefaultReadTimeout,
			WriteTimeout:    DefaultWriteTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
	}
}
