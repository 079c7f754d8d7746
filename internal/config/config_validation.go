package config

import (
	"errors"
	"time"
)

// Defaults applied after all configuration sources have been merged.
const (
	defaultHTTPAddress       = "0.0.0.0:8080"
	defaultRequestTimeout    = 60 * time.Second
	defaultTokenIssuer       = "palabras"
	defaultTokenDuration     = 24 * time.Hour
	defaultClassifierTimeout = 30 * time.Second
	defaultMaxBatchSize      = 50
)

// applyDefaults fills zero-valued fields that have sensible defaults.
// Secrets (sign keys, API keys, DSN) have no defaults on purpose.
func (c *StructuredConfig) applyDefaults() {
	if c.Server.HTTPAddress == "" {
		c.Server.HTTPAddress = defaultHTTPAddress
	}
	if c.Server.RequestTimeout == 0 {
		c.Server.RequestTimeout = defaultRequestTimeout
	}
	if c.App.TokenIssuer == "" {
		c.App.TokenIssuer = defaultTokenIssuer
	}
	if c.App.TokenDuration == 0 {
		c.App.TokenDuration = defaultTokenDuration
	}
	if c.Classifier.Timeout == 0 {
		c.Classifier.Timeout = defaultClassifierTimeout
	}
	if c.Classifier.MaxBatchSize == 0 {
		c.Classifier.MaxBatchSize = defaultMaxBatchSize
	}
}

// validate checks that the merged configuration is complete enough for the
// server to start.
func (c *StructuredConfig) validate() error {
	var errs []error

	if c.Storage.DB.DSN == "" {
		errs = append(errs, ErrNoDatabaseDSN)
	}
	if c.App.TokenSignKey == "" {
		errs = append(errs, ErrNoTokenSignKey)
	}

	return errors.Join(errs...)
}
