package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN or both domains pointing at one file).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
