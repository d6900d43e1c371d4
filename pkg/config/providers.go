package config

import (
	"fmt"
	"sync"
)

// ProviderFormat identifies the wire format a provider speaks.
type ProviderFormat string

// The three wire formats the LLM router can normalize.
const (
	FormatOpenAI    ProviderFormat = "openai"
	FormatAnthropic ProviderFormat = "anthropic"
	FormatGoogle    ProviderFormat = "google"
)

// Valid reports whether the format is one of the supported values.
func (f ProviderFormat) Valid() bool {
	switch f {
	case FormatOpenAI, FormatAnthropic, FormatGoogle:
		return true
	}
	return false
}

// ProviderConfig defines one LLM provider endpoint.
type ProviderConfig struct {
	// Wire format (required): openai, anthropic, or google.
	Format ProviderFormat `yaml:"format"`

	// Base URL of the provider API. Empty uses the SDK default endpoint.
	APIBase string `yaml:"api_base,omitempty"`

	// Environment variable name holding the API key.
	APIKeyEnv string `yaml:"api_key_env"`

	// Extra headers sent with every request (e.g. for proxies).
	Headers map[string]string `yaml:"headers,omitempty"`

	// DefaultMaxTokens caps completion length when the caller does not set one.
	DefaultMaxTokens int `yaml:"default_max_tokens,omitempty"`
}

// ProviderRegistry stores provider configurations with thread-safe access.
type ProviderRegistry struct {
	providers map[string]*ProviderConfig
	mu        sync.RWMutex
}

// NewProviderRegistry creates a registry over a defensive copy of providers.
func NewProviderRegistry(providers map[string]*ProviderConfig) *ProviderRegistry {
	copied := make(map[string]*ProviderConfig, len(providers))
	for k, v := range providers {
		copied[k] = v
	}
	return &ProviderRegistry{providers: copied}
}

// Get retrieves a provider configuration by name.
func (r *ProviderRegistry) Get(name string) (*ProviderConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.providers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProviderNotFound, name)
	}
	return p, nil
}

// GetAll returns a copy of all provider configurations.
func (r *ProviderRegistry) GetAll() map[string]*ProviderConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]*ProviderConfig, len(r.providers))
	for k, v := range r.providers {
		result[k] = v
	}
	return result
}

// Has checks if a provider exists in the registry.
func (r *ProviderRegistry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.providers[name]
	return ok
}

// Len returns the number of providers in the registry.
func (r *ProviderRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.providers)
}
