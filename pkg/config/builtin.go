package config

// BuiltinConfig bundles the configuration shipped with the binary.
// User-defined maestro.yaml entries override built-ins key by key.
type BuiltinConfig struct {
	Providers map[string]*ProviderConfig
	Chains    map[string]*ChainConfig
	Defaults  *Defaults
}

// GetBuiltinConfig returns the built-in provider catalog, fallback chains,
// and routing defaults. A fresh copy is returned on every call so callers
// can mutate the result during merging.
func GetBuiltinConfig() *BuiltinConfig {
	return &BuiltinConfig{
		Providers: map[string]*ProviderConfig{
			"openai": {
				Format:           FormatOpenAI,
				APIKeyEnv:        "OPENAI_API_KEY",
				DefaultMaxTokens: 8192,
			},
			"anthropic": {
				Format:           FormatAnthropic,
				APIKeyEnv:        "ANTHROPIC_API_KEY",
				DefaultMaxTokens: 8192,
			},
			"google": {
				Format:           FormatGoogle,
				APIBase:          "https://generativelanguage.googleapis.com/v1beta",
				APIKeyEnv:        "GOOGLE_API_KEY",
				DefaultMaxTokens: 8192,
			},
			// OpenAI-compatible gateways share the openai format.
			"xai": {
				Format:           FormatOpenAI,
				APIBase:          "https://api.x.ai/v1",
				APIKeyEnv:        "XAI_API_KEY",
				DefaultMaxTokens: 8192,
			},
		},
		Chains: map[string]*ChainConfig{
			"gemini-2.5-flash": {
				Primary: ModelRef{Model: "gemini-2.5-flash", Provider: "google"},
				Fallbacks: []ModelRef{
					{Model: "gpt-4o-mini", Provider: "openai"},
					{Model: "claude-3-5-haiku-latest", Provider: "anthropic"},
				},
				MaxRetries: 2,
			},
			"gemini-2.0-flash": {
				Primary: ModelRef{Model: "gemini-2.0-flash", Provider: "google"},
				Fallbacks: []ModelRef{
					{Model: "gpt-4o-mini", Provider: "openai"},
				},
				MaxRetries: 2,
			},
			"gpt-4o": {
				Primary: ModelRef{Model: "gpt-4o", Provider: "openai"},
				Fallbacks: []ModelRef{
					{Model: "claude-sonnet-4-20250514", Provider: "anthropic"},
				},
				MaxRetries: 2,
			},
			"claude-sonnet-4-20250514": {
				Primary: ModelRef{Model: "claude-sonnet-4-20250514", Provider: "anthropic"},
				Fallbacks: []ModelRef{
					{Model: "gpt-4o", Provider: "openai"},
				},
				MaxRetries: 2,
			},
		},
		Defaults: &Defaults{
			Model:    BuiltinDefaultModel,
			Provider: BuiltinDefaultProvider,
			Tier:     BuiltinDefaultTier,
			CapabilityModels: map[string]map[string]ModelRef{
				"code_execution": {
					"standard": {Model: "gpt-4o", Provider: "openai"},
					"premium":  {Model: "claude-sonnet-4-20250514", Provider: "anthropic"},
				},
				"web_browsing": {
					"standard": {Model: "gemini-2.5-flash", Provider: "google"},
				},
				"document_generation": {
					"standard": {Model: "gpt-4o", Provider: "openai"},
				},
			},
		},
	}
}
