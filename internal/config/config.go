// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Defaults applied before any other source is read.
const (
	DefaultGameURL        = "https://online.onapsis.com"
	DefaultRequestTimeout = 15 * time.Second
	DefaultLogPath        = "./onapsis-client.log"
	DefaultLogLevel       = "debug"
	DefaultConfigFile     = "onapsis-client.config"
	DefaultDotEnvFile     = ".env"
)

// StructuredConfig is the top-level configuration container for the
// adventure client. It is populated by merging defaults, an optional JSON
// file, a .env file, environment variables and command-line flags.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Game holds the remote game server settings.
	Game Game `envPrefix:"GAME_"`

	// Account holds the credentials used by the autologin command.
	Account Account `envPrefix:"ACCOUNT_"`

	// Log holds the log file settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the path to the JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Game holds the address and timeouts of the remote game server.
type Game struct {
	// URL is the base URL of the game, e.g. "https://online.onapsis.com".
	// Env: GAME_URL
	URL string `env:"URL"`

	// RequestTimeout bounds every HTTP request made to the game.
	// Env: GAME_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Account holds stored credentials.
type Account struct {
	// Username used by autologin.
	// Env: ACCOUNT_USERNAME
	Username string `env:"USERNAME"`

	// Password used by autologin. When empty, autologin asks for it.
	// Env: ACCOUNT_PASSWORD
	Password string `env:"PASSWORD"`

	// Autologin makes the client log in right after startup.
	// Env: ACCOUNT_AUTOLOGIN
	Autologin bool `env:"AUTOLOGIN"`
}

// Log holds the client log file settings.
type Log struct {
	// Path of the append-only log file.
	// Env: LOG_PATH
	Path string `env:"PATH"`

	// Level is a zerolog level name ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Game: Game{
			URL:            DefaultGameURL,
			RequestTimeout: DefaultRequestTimeout,
		},
		Log: Log{
			Path:  DefaultLogPath,
			Level: DefaultLogLevel,
		},
		JSONFilePath: DefaultConfigFile,
	}
}

// GetClientConfig loads, merges, and validates the client configuration.
// Sources are applied in the following order, later non-zero fields winning:
//  1. Built-in defaults
//  2. JSON file (default onapsis-client.config, overridable by CONFIG / -c)
//  3. .env file in the working directory
//  4. Environment variables
//  5. Command-line flags (args, without the program name)
func GetClientConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv(DefaultDotEnvFile).
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
