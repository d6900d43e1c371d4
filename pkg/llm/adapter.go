package llm

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/taskfleet/maestro/pkg/config"
	"github.com/taskfleet/maestro/pkg/models"
)

// Adapter speaks one provider wire format. Implementations do not retry or
// track health; that is the Router's job.
type Adapter interface {
	// Chat sends the request to the named model and returns the normalized
	// response. Provider failures come back classified (see classifyStatus).
	Chat(ctx context.Context, model string, req *ChatRequest) (*ChatResponse, error)
}

// buildAdapter constructs the adapter for a provider based on its wire format.
func buildAdapter(name string, cfg *config.ProviderConfig) (Adapter, error) {
	apiKey := os.Getenv(cfg.APIKeyEnv)

	switch cfg.Format {
	case config.FormatOpenAI:
		return newOpenAIAdapter(name, cfg, apiKey), nil
	case config.FormatAnthropic:
		return newAnthropicAdapter(name, cfg, apiKey), nil
	case config.FormatGoogle:
		return newGoogleAdapter(name, cfg, apiKey), nil
	default:
		return nil, fmt.Errorf("provider %s: unsupported format %q", name, cfg.Format)
	}
}

// classifyStatus maps a provider HTTP status to a structured error.
// 429 and 5xx are recoverable (fall through the chain or retry); other 4xx
// means the request itself is bad and retrying the same payload is pointless.
func classifyStatus(provider, model string, status int, message, retryAfter string) *models.AgentError {
	switch {
	case status == 429:
		ae := models.NewRecoverableError(models.CodeProviderRateLimited,
			fmt.Sprintf("%s rate limited model %s: %s", provider, model, message))
		if secs, err := strconv.Atoi(retryAfter); err == nil && secs > 0 {
			ae.RetryAfterMS = int64(secs) * 1000
		}
		return ae
	case status >= 500:
		return models.NewRecoverableError(models.CodeProviderUnavailable,
			fmt.Sprintf("%s returned %d for model %s: %s", provider, status, model, message))
	default:
		return models.NewAgentError(models.CodeProviderUnavailable,
			fmt.Sprintf("%s rejected request for model %s (%d): %s", provider, model, status, message))
	}
}

// classifyTransport wraps connection-level failures (DNS, TLS, timeouts) as
// recoverable provider unavailability.
func classifyTransport(provider, model string, err error) *models.AgentError {
	return models.NewRecoverableError(models.CodeProviderUnavailable,
		fmt.Sprintf("%s unreachable for model %s: %v", provider, model, err))
}
