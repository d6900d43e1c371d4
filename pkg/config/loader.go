package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// MaestroYAMLConfig represents the complete maestro.yaml file structure.
type MaestroYAMLConfig struct {
	Defaults       *Defaults                  `yaml:"defaults"`
	Queue          *QueueConfig               `yaml:"queue"`
	Providers      map[string]*ProviderConfig `yaml:"providers"`
	FallbackChains map[string]*ChainConfig    `yaml:"fallback_chains"`
	Tools          map[string]*ToolOverride   `yaml:"tools"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load maestro.yaml from configDir (missing file uses built-ins only)
//  2. Expand environment variables
//  3. Merge built-in + user-defined configurations (user wins)
//  4. Build in-memory registries
//  5. Validate all configuration
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"providers", stats.Providers,
		"chains", stats.Chains,
		"tool_overrides", stats.ToolOverrides)

	return cfg, nil
}

func load(_ context.Context, configDir string) (*Config, error) {
	userCfg, err := loadMaestroYAML(configDir)
	if err != nil {
		return nil, err
	}

	builtin := GetBuiltinConfig()

	providers := mergeMaps(builtin.Providers, userCfg.Providers)
	chains := mergeMaps(builtin.Chains, userCfg.FallbackChains)

	defaults := builtin.Defaults
	if userCfg.Defaults != nil {
		// User-defined defaults override built-ins field by field.
		if err := mergo.Merge(defaults, userCfg.Defaults, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge defaults: %w", err)
		}
	}

	queue := DefaultQueueConfig()
	if userCfg.Queue != nil {
		if err := mergo.Merge(queue, userCfg.Queue, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge queue config: %w", err)
		}
	}

	for _, chain := range chains {
		if chain.MaxRetries == 0 {
			chain.MaxRetries = DefaultChainMaxRetries
		}
	}

	return &Config{
		configDir:        configDir,
		Defaults:         defaults,
		Queue:            queue,
		ProviderRegistry: NewProviderRegistry(providers),
		ChainRegistry:    NewChainRegistry(chains),
		ToolOverrides:    userCfg.Tools,
	}, nil
}

// loadMaestroYAML reads and parses maestro.yaml with env expansion.
// A missing file is not an error; built-ins carry the system.
func loadMaestroYAML(configDir string) (*MaestroYAMLConfig, error) {
	path := filepath.Join(configDir, "maestro.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Info("No maestro.yaml found, using built-in configuration", "path", path)
			return &MaestroYAMLConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	expanded := ExpandEnv(data)

	var cfg MaestroYAMLConfig
	if err := yaml.Unmarshal(expanded, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}

// mergeMaps overlays user entries on built-in ones. A user entry with the
// same key replaces the built-in wholesale rather than field-merging, so a
// redefined provider or chain is exactly what the user wrote.
func mergeMaps[V any](builtin, user map[string]V) map[string]V {
	merged := make(map[string]V, len(builtin)+len(user))
	for k, v := range builtin {
		merged[k] = v
	}
	for k, v := range user {
		merged[k] = v
	}
	return merged
}

func validate(cfg *Config) error {
	for name, p := range cfg.ProviderRegistry.GetAll() {
		if !p.Format.Valid() {
			return fmt.Errorf("%w: provider %q has unknown format %q", ErrConfigInvalid, name, p.Format)
		}
		if p.APIKeyEnv == "" {
			return fmt.Errorf("%w: provider %q missing api_key_env", ErrConfigInvalid, name)
		}
	}

	for model, chain := range chainEntries(cfg.ChainRegistry) {
		if chain.Primary.Model == "" || chain.Primary.Provider == "" {
			return fmt.Errorf("%w: chain %q missing primary model/provider", ErrConfigInvalid, model)
		}
		if !cfg.ProviderRegistry.Has(chain.Primary.Provider) {
			return fmt.Errorf("%w: chain %q references unknown provider %q", ErrConfigInvalid, model, chain.Primary.Provider)
		}
		for _, fb := range chain.Fallbacks {
			if !cfg.ProviderRegistry.Has(fb.Provider) {
				return fmt.Errorf("%w: chain %q fallback references unknown provider %q", ErrConfigInvalid, model, fb.Provider)
			}
		}
		if chain.MaxRetries < 0 {
			return fmt.Errorf("%w: chain %q has negative max_retries", ErrConfigInvalid, model)
		}
	}

	d := cfg.Defaults
	if d.Model == "" || d.Provider == "" {
		return fmt.Errorf("%w: defaults missing model/provider", ErrConfigInvalid)
	}
	if !cfg.ProviderRegistry.Has(d.Provider) {
		return fmt.Errorf("%w: default provider %q not configured", ErrConfigInvalid, d.Provider)
	}
	for capability, routes := range d.CapabilityModels {
		for tier, ref := range routes {
			if !cfg.ProviderRegistry.Has(ref.Provider) {
				return fmt.Errorf("%w: capability %q tier %q references unknown provider %q", ErrConfigInvalid, capability, tier, ref.Provider)
			}
		}
	}

	q := cfg.Queue
	if q.WorkerCount < 1 {
		return fmt.Errorf("%w: queue worker_count must be positive", ErrConfigInvalid)
	}
	if q.MaxConcurrentRuns < 1 {
		return fmt.Errorf("%w: queue max_concurrent_runs must be positive", ErrConfigInvalid)
	}
	if q.HeartbeatInterval >= q.LeaseDuration {
		return fmt.Errorf("%w: heartbeat_interval must be shorter than lease_duration", ErrConfigInvalid)
	}
	if q.EventBufferSize < 1 {
		return fmt.Errorf("%w: event_buffer_size must be positive", ErrConfigInvalid)
	}
	return nil
}

// chainEntries snapshots the chain registry for validation.
func chainEntries(r *ChainRegistry) map[string]*ChainConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]*ChainConfig, len(r.chains))
	for k, v := range r.chains {
		out[k] = v
	}
	return out
}
