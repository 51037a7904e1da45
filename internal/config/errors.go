package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidGameConfigs indicates a missing game URL or a non-positive
	// request timeout.
	ErrInvalidGameConfigs = errors.New("invalid game configuration")
	// ErrInvalidLogConfigs indicates a missing log path or an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
