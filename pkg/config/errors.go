package config

import "errors"

// Sentinel errors for registry lookups and config loading.
var (
	// ErrProviderNotFound indicates the named provider is not in the catalog.
	ErrProviderNotFound = errors.New("provider not found")

	// ErrModelNotFound indicates no provider serves the named model.
	ErrModelNotFound = errors.New("model not found")

	// ErrChainNotFound indicates no fallback chain is configured for the model.
	ErrChainNotFound = errors.New("fallback chain not found")

	// ErrConfigInvalid indicates the loaded configuration failed validation.
	ErrConfigInvalid = errors.New("invalid configuration")
)
