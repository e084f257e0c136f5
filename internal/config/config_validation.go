// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.AuthToken == "" {
		return fmt.Errorf("%w: empty auth token", ErrInvalidAppConfigs)
	}

	if cfg.App.LogLevel != "" {
		if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
			return fmt.Errorf("%w: unknown log level %q", ErrInvalidAppConfigs, cfg.App.LogLevel)
		}
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty address", ErrInvalidServerConfigs)
	}

	if cfg.Server.ReadTimeout < 0 || cfg.Server.WriteTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: negative timeout", ErrInvalidServerConfigs)
	}

	return nil
}
