// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] can start the
// client. Credentials are optional: without them only manual login works.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.Game.URL) == "" || cfg.Game.RequestTimeout <= 0 {
		return ErrInvalidGameConfigs
	}

	if strings.TrimSpace(cfg.Log.Path) == "" {
		return ErrInvalidLogConfigs
	}
	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	return nil
}
