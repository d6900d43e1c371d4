package config

// Config is the umbrella configuration object that encapsulates all
// registries, defaults, and configuration state. This is the primary object
// returned by Initialize() and used throughout the application.
type Config struct {
	configDir string

	// System-wide defaults (default model, capability routing).
	Defaults *Defaults

	// Queue and worker pool configuration.
	Queue *QueueConfig

	// Component registries.
	ProviderRegistry *ProviderRegistry
	ChainRegistry    *ChainRegistry

	// Tool catalog overrides from maestro.yaml, keyed by tool name.
	ToolOverrides map[string]*ToolOverride
}

// Stats contains statistics about loaded configuration.
type Stats struct {
	Providers     int
	Chains        int
	ToolOverrides int
}

// Stats returns configuration statistics for logging/monitoring.
func (c *Config) Stats() Stats {
	s := Stats{ToolOverrides: len(c.ToolOverrides)}
	if c.ProviderRegistry != nil {
		s.Providers = c.ProviderRegistry.Len()
	}
	if c.ChainRegistry != nil {
		s.Chains = c.ChainRegistry.Len()
	}
	return s
}

// ConfigDir returns the configuration directory path.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// GetProvider retrieves a provider configuration by name.
// Convenience wrapper around ProviderRegistry.Get().
func (c *Config) GetProvider(name string) (*ProviderConfig, error) {
	return c.ProviderRegistry.Get(name)
}

// GetChain retrieves the fallback chain for a primary model.
// Convenience wrapper around ChainRegistry.Get().
func (c *Config) GetChain(model string) (*ChainConfig, error) {
	return c.ChainRegistry.Get(model)
}
