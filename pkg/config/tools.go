package config

// ToolOverride adjusts a built-in tool catalog entry from maestro.yaml.
// Zero fields leave the catalog value untouched.
type ToolOverride struct {
	TimeoutMS   int            `yaml:"timeout_ms,omitempty"`
	CostCredits int            `yaml:"cost_credits,omitempty"`
	RateLimit   *RateLimitSpec `yaml:"rate_limit,omitempty"`
	Disabled    bool           `yaml:"disabled,omitempty"`
}

// RateLimitSpec bounds tool invocation frequency per tenant.
type RateLimitSpec struct {
	PerMinute  int `yaml:"per_minute,omitempty"`
	PerHour    int `yaml:"per_hour,omitempty"`
	Concurrent int `yaml:"concurrent,omitempty"`
}
