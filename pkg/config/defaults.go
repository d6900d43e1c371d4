package config

// Defaults contains system-wide default configurations.
// These values are used when a run or caller does not specify its own.
type Defaults struct {
	// Model used when neither the run config nor a capability hint names one.
	Model string `yaml:"model,omitempty"`

	// Provider serving the default model.
	Provider string `yaml:"provider,omitempty"`

	// CapabilityModels routes capability → tier → model. Consulted when a
	// chat request carries a capability hint instead of an explicit model.
	CapabilityModels map[string]map[string]ModelRef `yaml:"capability_models,omitempty"`

	// Tier used when the caller does not supply one.
	Tier string `yaml:"tier,omitempty"`
}

// Built-in house defaults, applied when maestro.yaml omits them.
const (
	BuiltinDefaultModel    = "gemini-2.0-flash"
	BuiltinDefaultProvider = "google"
	BuiltinDefaultTier     = "standard"
)

// ResolveCapability returns the model routed for a capability and tier.
// Falls back tier → default tier → system default model.
func (d *Defaults) ResolveCapability(capability, tier string) ModelRef {
	if routes, ok := d.CapabilityModels[capability]; ok {
		if ref, ok := routes[tier]; ok {
			return ref
		}
		if ref, ok := routes[d.Tier]; ok {
			return ref
		}
	}
	return ModelRef{Model: d.Model, Provider: d.Provider}
}
