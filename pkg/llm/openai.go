package llm

import (
	"context"
	"errors"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/taskfleet/maestro/pkg/config"
)

// openaiAdapter serves any provider speaking the OpenAI chat completions
// format (OpenAI itself, xAI, and most proxies).
type openaiAdapter struct {
	name   string
	cfg    *config.ProviderConfig
	client openai.Client
}

func newOpenAIAdapter(name string, cfg *config.ProviderConfig, apiKey string) *openaiAdapter {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		// The router owns retries and fallback; the SDK must not retry underneath it.
		option.WithMaxRetries(0),
	}
	if cfg.APIBase != "" {
		opts = append(opts, option.WithBaseURL(cfg.APIBase))
	}
	for k, v := range cfg.Headers {
		opts = append(opts, option.WithHeader(k, v))
	}
	return &openaiAdapter{name: name, cfg: cfg, client: openai.NewClient(opts...)}
}

func (a *openaiAdapter) Chat(ctx context.Context, model string, req *ChatRequest) (*ChatResponse, error) {
	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(model),
		Messages: toOpenAIMessages(req.Messages),
	}
	if req.Temperature > 0 {
		params.Temperature = openai.Float(req.Temperature)
	}
	if max := maxTokensFor(req, a.cfg); max > 0 {
		params.MaxTokens = openai.Int(int64(max))
	}

	start := time.Now()
	resp, err := a.client.Chat.Completions.New(ctx, params)
	if err != nil {
		var apierr *openai.Error
		if errors.As(err, &apierr) {
			retryAfter := ""
			if apierr.Response != nil {
				retryAfter = apierr.Response.Header.Get("Retry-After")
			}
			return nil, classifyStatus(a.name, model, apierr.StatusCode, apierr.Message, retryAfter)
		}
		return nil, classifyTransport(a.name, model, err)
	}
	if len(resp.Choices) == 0 {
		return nil, classifyStatus(a.name, model, 502, "response contained no choices", "")
	}

	choice := resp.Choices[0]
	return &ChatResponse{
		ID:           resp.ID,
		Model:        model,
		Provider:     a.name,
		Content:      choice.Message.Content,
		FinishReason: string(choice.FinishReason),
		Usage: Usage{
			PromptTokens:     int(resp.Usage.PromptTokens),
			CompletionTokens: int(resp.Usage.CompletionTokens),
			TotalTokens:      int(resp.Usage.TotalTokens),
		},
		LatencyMS: int(time.Since(start).Milliseconds()),
	}, nil
}

func toOpenAIMessages(msgs []Message) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(msgs))
	for _, m := range msgs {
		switch m.Role {
		case RoleSystem:
			out = append(out, openai.SystemMessage(m.Content))
		case RoleAssistant:
			out = append(out, openai.AssistantMessage(m.Content))
		default:
			out = append(out, openai.UserMessage(m.Content))
		}
	}
	return out
}

// maxTokensFor prefers the caller's limit, then the provider default.
func maxTokensFor(req *ChatRequest, cfg *config.ProviderConfig) int {
	if req.MaxTokens > 0 {
		return req.MaxTokens
	}
	return cfg.DefaultMaxTokens
}
