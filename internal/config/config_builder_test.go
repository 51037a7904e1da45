package config

import (
	"encoding/json"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// chdir switches the working directory for the duration of the test so the
// default config file lookup does not see files from the package directory.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
	assert.Nil(t, b.defaults)
	assert.Nil(t, b.file)
}

// TestBuild_EmptyBuilderFailsValidation verifies that a config without a game
// URL is rejected.
func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidGameConfigs)
}

func TestBuild_DefaultsOnly(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultGameURL, cfg.Game.URL)
	assert.Equal(t, DefaultRequestTimeout, cfg.Game.RequestTimeout)
	assert.Equal(t, DefaultLogPath, cfg.Log.Path)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.False(t, cfg.Account.Autologin)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterLayersWin verifies the precedence defaults < file < layers.
func TestBuild_LaterLayersWin(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.file = &StructuredConfig{
		Game:    Game{URL: "http://file.example"},
		Account: Account{Username: "file-user", Password: "file-pass"},
	}
	b.configs = append(b.configs,
		&StructuredConfig{Account: Account{Username: "env-user"}},
		&StructuredConfig{Game: Game{RequestTimeout: time.Minute}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "http://file.example", cfg.Game.URL)
	assert.Equal(t, time.Minute, cfg.Game.RequestTimeout)
	assert.Equal(t, "env-user", cfg.Account.Username)
	assert.Equal(t, "file-pass", cfg.Account.Password)
}

func TestBuild_InvalidLogLevel(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs, &StructuredConfig{Log: Log{Level: "chatty"}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidLogConfigs)
}

// ── withEnv / withDotEnv ──────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("GAME_URL", "http://env.example")
	t.Setenv("ACCOUNT_AUTOLOGIN", "true")

	b := newConfigBuilder().withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "http://env.example", b.configs[0].Game.URL)
	assert.True(t, b.configs[0].Account.Autologin)
}

func TestWithDotEnv_MissingFileIsIgnored(t *testing.T) {
	b := newConfigBuilder().withDotEnv(filepath.Join(t.TempDir(), ".env"))
	assert.NoError(t, b.err)
}

func TestWithDotEnv_ExportsVariables(t *testing.T) {
	// registered so the variable is restored after the test
	t.Setenv("ACCOUNT_USERNAME", "")
	require.NoError(t, os.Unsetenv("ACCOUNT_USERNAME"))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("ACCOUNT_USERNAME=dotenv-user\n"), 0o600))

	b := newConfigBuilder().withDotEnv(path).withEnv()

	require.NoError(t, b.err)
	assert.Equal(t, "dotenv-user", b.configs[0].Account.Username)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_AppendsConfig(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-user", "flag-user"})

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "flag-user", b.configs[0].Account.Username)
}

func TestWithFlags_UnknownFlag(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-nope"})
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_ExplicitPath(t *testing.T) {
	path := writeTempJSONConfig(t, StructuredJSONConfig{Username: "json-user", Autologin: true})

	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.NotNil(t, b.file)
	assert.Equal(t, "json-user", b.file.Account.Username)
	assert.True(t, b.file.Account.Autologin)
}

func TestWithJSON_ExplicitMissingFileIsError(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
	b.withJSON()

	assert.Error(t, b.err)
}

func TestWithJSON_DefaultMissingFileIsSkipped(t *testing.T) {
	chdir(t, t.TempDir())

	b := newConfigBuilder().withDefaults().withJSON()

	assert.NoError(t, b.err)
	assert.Nil(t, b.file)
}

func TestWithJSON_DefaultFileIsRead(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultConfigFile),
		[]byte(`{"autologin": true, "username": "alice", "password": "secret"}`), 0o600))

	b := newConfigBuilder().withDefaults().withJSON()

	require.NoError(t, b.err)
	require.NotNil(t, b.file)
	assert.Equal(t, "alice", b.file.Account.Username)
	assert.Equal(t, "secret", b.file.Account.Password)
}

func TestWithJSON_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not valid json"), 0o600))

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	assert.Error(t, b.err)
}

func TestWithJSON_UsesLastPath(t *testing.T) {
	first := writeTempJSONConfig(t, StructuredJSONConfig{Username: "first"})
	last := writeTempJSONConfig(t, StructuredJSONConfig{Username: "last"})

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: first},
		&StructuredConfig{JSONFilePath: ""},
		&StructuredConfig{JSONFilePath: last},
	)
	b.withJSON()

	require.NoError(t, b.err)
	assert.Equal(t, "last", b.file.Account.Username)
}

// ── GetClientConfig ───────────────────────────────────────────────────────────

func TestGetClientConfig_FlagsOverrideFileAndEnv(t *testing.T) {
	chdir(t, t.TempDir())
	path := writeTempJSONConfig(t, StructuredJSONConfig{
		Username:       "json-user",
		Password:       "json-pass",
		URL:            "http://json.example",
		RequestTimeout: Duration(5 * time.Second),
	})
	t.Setenv("CONFIG", path)
	t.Setenv("GAME_URL", "http://env.example")

	cfg, err := GetClientConfig([]string{"-user", "flag-user", "-autologin"})
	require.NoError(t, err)

	assert.Equal(t, "http://env.example", cfg.Game.URL)
	assert.Equal(t, 5*time.Second, cfg.Game.RequestTimeout)
	assert.Equal(t, "flag-user", cfg.Account.Username)
	assert.Equal(t, "json-pass", cfg.Account.Password)
	assert.True(t, cfg.Account.Autologin)
	assert.Equal(t, DefaultLogPath, cfg.Log.Path)
}

func TestGetClientConfig_HelpKeepsErrHelp(t *testing.T) {
	chdir(t, t.TempDir())
	prev := usageOutput
	usageOutput = io.Discard
	t.Cleanup(func() { usageOutput = prev })

	_, err := GetClientConfig([]string{"-h"})
	assert.ErrorIs(t, err, flag.ErrHelp)
}
