// Package llm routes chat requests across providers. Adapters normalize the
// three provider wire formats (openai-compatible, anthropic, google) to one
// internal request/response pair; the Router picks the model, walks its
// fallback chain, and tracks per-model health.
package llm

// Role identifies the author of a chat message.
type Role string

// Message roles.
const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn of conversation history.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the provider-independent chat call.
type ChatRequest struct {
	Messages    []Message `json:"messages"`
	Model       string    `json:"model,omitempty"`
	Temperature float64   `json:"temperature,omitempty"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Stream      bool      `json:"stream,omitempty"`

	// Routing context.
	UserID     string `json:"user_id,omitempty"`
	RunID      string `json:"run_id,omitempty"`
	StepID     string `json:"step_id,omitempty"`
	Capability string `json:"capability,omitempty"`
	Tier       string `json:"tier,omitempty"`
}

// Usage is the token accounting for one call.
type Usage struct {
	PromptTokens     int `json:"prompt"`
	CompletionTokens int `json:"completion"`
	TotalTokens      int `json:"total"`
}

// ChatResponse is the provider-independent chat result.
type ChatResponse struct {
	ID           string `json:"id"`
	Model        string `json:"model"`
	Provider     string `json:"provider"`
	Content      string `json:"content"`
	FinishReason string `json:"finish_reason"`
	Usage        Usage  `json:"usage"`
	LatencyMS    int    `json:"latency_ms"`
}
