package config

import (
	"fmt"
	"sync"
)

// ModelRef names a model on a specific provider.
type ModelRef struct {
	Model    string `yaml:"model" json:"model"`
	Provider string `yaml:"provider" json:"provider"`
}

// String renders the ref as provider/model for logs.
func (m ModelRef) String() string {
	return m.Provider + "/" + m.Model
}

// ChainConfig defines the fallback chain for a primary model. When a call to
// the primary fails with a retryable error, the router walks Fallbacks in
// order. MaxRetries caps the total number of distinct models attempted at
// MaxRetries+1.
type ChainConfig struct {
	Primary    ModelRef   `yaml:"primary"`
	Fallbacks  []ModelRef `yaml:"fallbacks,omitempty"`
	MaxRetries int        `yaml:"max_retries,omitempty"`
}

// DefaultChainMaxRetries applies when a chain omits max_retries.
const DefaultChainMaxRetries = 2

// ChainRegistry stores fallback chains keyed by primary model name.
type ChainRegistry struct {
	chains map[string]*ChainConfig
	mu     sync.RWMutex
}

// NewChainRegistry creates a registry over a defensive copy of chains.
func NewChainRegistry(chains map[string]*ChainConfig) *ChainRegistry {
	copied := make(map[string]*ChainConfig, len(chains))
	for k, v := range chains {
		copied[k] = v
	}
	return &ChainRegistry{chains: copied}
}

// Get retrieves the fallback chain for a primary model name.
func (r *ChainRegistry) Get(model string) (*ChainConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.chains[model]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrChainNotFound, model)
	}
	return c, nil
}

// Has checks if a chain exists for the model.
func (r *ChainRegistry) Has(model string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.chains[model]
	return ok
}

// Len returns the number of chains in the registry.
func (r *ChainRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.chains)
}
