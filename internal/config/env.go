// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from APP_*, SERVER_* and CONFIG variables. Variables
// loaded from a .env file are visible here too, since withDotEnv runs first.
// Unset variables leave their fields zero so they never override other
// sources during the merge.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
