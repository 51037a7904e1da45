// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"GAME_URL":             "http://localhost:8080",
		"GAME_REQUEST_TIMEOUT": "30s",

		"ACCOUNT_USERNAME":  "alice",
		"ACCOUNT_PASSWORD":  "secret",
		"ACCOUNT_AUTOLOGIN": "true",

		"LOG_PATH":  "/tmp/client.log",
		"LOG_LEVEL": "info",
	}
	for k, v := range envVars {
		t.Setenv(k, v)
	}

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "http://localhost:8080", cfg.Game.URL)
	assert.Equal(t, 30*time.Second, cfg.Game.RequestTimeout)
	assert.Equal(t, Account{Username: "alice", Password: "secret", Autologin: true}, cfg.Account)
	assert.Equal(t, Log{Path: "/tmp/client.log", Level: "info"}, cfg.Log)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("GAME_REQUEST_TIMEOUT", "invalid_duration")

	err := parseEnv(&StructuredConfig{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "env")
}

func TestParseEnv_InvalidBool(t *testing.T) {
	t.Setenv("ACCOUNT_AUTOLOGIN", "maybe")

	require.Error(t, parseEnv(&StructuredConfig{}))
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{"minutes", "2m", 2 * time.Minute},
		{"seconds", "30s", 30 * time.Second},
		{"millis", "1500ms", 1500 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("GAME_REQUEST_TIMEOUT", tt.envValue)

			cfg := &StructuredConfig{}
			require.NoError(t, parseEnv(cfg))
			assert.Equal(t, tt.expected, cfg.Game.RequestTimeout)
		})
	}
}
