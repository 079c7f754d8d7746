package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when the merged
// configuration is missing required values.
var (
	// ErrNoDatabaseDSN is returned when no database connection string was
	// provided by any configuration source.
	ErrNoDatabaseDSN = errors.New("database DSN is not configured")

	// ErrNoTokenSignKey is returned when no JWT signing key was provided by
	// any configuration source.
	ErrNoTokenSignKey = errors.New("token sign key is not configured")
)
