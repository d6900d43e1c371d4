package llm

import (
	"context"
	"errors"
	"strings"
	"time"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/taskfleet/maestro/pkg/config"
)

// Anthropic requires max_tokens; used when neither the request nor the
// provider config sets one.
const anthropicDefaultMaxTokens = 1024

type anthropicAdapter struct {
	name   string
	cfg    *config.ProviderConfig
	client sdk.Client
}

func newAnthropicAdapter(name string, cfg *config.ProviderConfig, apiKey string) *anthropicAdapter {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if cfg.APIBase != "" {
		opts = append(opts, option.WithBaseURL(cfg.APIBase))
	}
	for k, v := range cfg.Headers {
		opts = append(opts, option.WithHeader(k, v))
	}
	return &anthropicAdapter{name: name, cfg: cfg, client: sdk.NewClient(opts...)}
}

func (a *anthropicAdapter) Chat(ctx context.Context, model string, req *ChatRequest) (*ChatResponse, error) {
	max := maxTokensFor(req, a.cfg)
	if max <= 0 {
		max = anthropicDefaultMaxTokens
	}

	system, msgs := splitSystem(req.Messages)
	params := sdk.MessageNewParams{
		Model:     sdk.Model(model),
		MaxTokens: int64(max),
		Messages:  msgs,
	}
	if system != "" {
		params.System = []sdk.TextBlockParam{{Text: system}}
	}
	if req.Temperature > 0 {
		params.Temperature = sdk.Float(req.Temperature)
	}

	start := time.Now()
	msg, err := a.client.Messages.New(ctx, params)
	if err != nil {
		var apierr *sdk.Error
		if errors.As(err, &apierr) {
			retryAfter := ""
			if apierr.Response != nil {
				retryAfter = apierr.Response.Header.Get("Retry-After")
			}
			return nil, classifyStatus(a.name, model, apierr.StatusCode, apierr.Error(), retryAfter)
		}
		return nil, classifyTransport(a.name, model, err)
	}

	var content strings.Builder
	for _, block := range msg.Content {
		content.WriteString(block.Text)
	}

	return &ChatResponse{
		ID:           msg.ID,
		Model:        model,
		Provider:     a.name,
		Content:      content.String(),
		FinishReason: string(msg.StopReason),
		Usage: Usage{
			PromptTokens:     int(msg.Usage.InputTokens),
			CompletionTokens: int(msg.Usage.OutputTokens),
			TotalTokens:      int(msg.Usage.InputTokens + msg.Usage.OutputTokens),
		},
		LatencyMS: int(time.Since(start).Milliseconds()),
	}, nil
}

// splitSystem lifts system messages out of the history; Anthropic carries the
// system prompt as a top-level field, not a message.
func splitSystem(msgs []Message) (string, []sdk.MessageParam) {
	var system strings.Builder
	out := make([]sdk.MessageParam, 0, len(msgs))
	for _, m := range msgs {
		switch m.Role {
		case RoleSystem:
			if system.Len() > 0 {
				system.WriteString("\n\n")
			}
			system.WriteString(m.Content)
		case RoleAssistant:
			out = append(out, sdk.NewAssistantMessage(sdk.NewTextBlock(m.Content)))
		default:
			out = append(out, sdk.NewUserMessage(sdk.NewTextBlock(m.Content)))
		}
	}
	return system.String(), out
}
