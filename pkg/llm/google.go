package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/taskfleet/maestro/pkg/config"
)

// googleAdapter speaks the Gemini generateContent REST API. There is no
// Google SDK in the dependency set, so this is a hand-rolled HTTP client
// over the documented wire format.
type googleAdapter struct {
	name       string
	cfg        *config.ProviderConfig
	apiKey     string
	httpClient *http.Client
}

func newGoogleAdapter(name string, cfg *config.ProviderConfig, apiKey string) *googleAdapter {
	return &googleAdapter{
		name:       name,
		cfg:        cfg,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 120 * time.Second},
	}
}

type googlePart struct {
	Text string `json:"text"`
}

type googleContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []googlePart `json:"parts"`
}

type googleGenerationConfig struct {
	Temperature     *float64 `json:"temperature,omitempty"`
	MaxOutputTokens int      `json:"maxOutputTokens,omitempty"`
}

type googleRequest struct {
	SystemInstruction *googleContent         `json:"systemInstruction,omitempty"`
	Contents          []googleContent        `json:"contents"`
	GenerationConfig  googleGenerationConfig `json:"generationConfig"`
}

type googleResponse struct {
	Candidates []struct {
		Content      googleContent `json:"content"`
		FinishReason string        `json:"finishReason"`
	} `json:"candidates"`
	UsageMetadata struct {
		PromptTokenCount     int `json:"promptTokenCount"`
		CandidatesTokenCount int `json:"candidatesTokenCount"`
		TotalTokenCount      int `json:"totalTokenCount"`
	} `json:"usageMetadata"`
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

func (a *googleAdapter) Chat(ctx context.Context, model string, req *ChatRequest) (*ChatResponse, error) {
	body := a.buildRequest(req)

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent",
		strings.TrimSuffix(a.cfg.APIBase, "/"), model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", a.apiKey)
	for k, v := range a.cfg.Headers {
		httpReq.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := a.httpClient.Do(httpReq)
	if err != nil {
		return nil, classifyTransport(a.name, model, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classifyTransport(a.name, model, err)
	}

	var parsed googleResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, classifyStatus(a.name, model, resp.StatusCode,
			fmt.Sprintf("unparseable response: %v", err), "")
	}

	if resp.StatusCode != http.StatusOK {
		msg := parsed.Error.Message
		if msg == "" {
			msg = string(raw)
		}
		return nil, classifyStatus(a.name, model, resp.StatusCode, msg,
			resp.Header.Get("Retry-After"))
	}
	if len(parsed.Candidates) == 0 {
		return nil, classifyStatus(a.name, model, 502, "response contained no candidates", "")
	}

	var content strings.Builder
	for _, part := range parsed.Candidates[0].Content.Parts {
		content.WriteString(part.Text)
	}

	return &ChatResponse{
		ID:           fmt.Sprintf("gemini-%d", start.UnixNano()),
		Model:        model,
		Provider:     a.name,
		Content:      content.String(),
		FinishReason: strings.ToLower(parsed.Candidates[0].FinishReason),
		Usage: Usage{
			PromptTokens:     parsed.UsageMetadata.PromptTokenCount,
			CompletionTokens: parsed.UsageMetadata.CandidatesTokenCount,
			TotalTokens:      parsed.UsageMetadata.TotalTokenCount,
		},
		LatencyMS: int(time.Since(start).Milliseconds()),
	}, nil
}

// buildRequest maps the normalized request to Gemini's content layout.
// Gemini uses "model" for assistant turns and lifts system messages into
// systemInstruction.
func (a *googleAdapter) buildRequest(req *ChatRequest) googleRequest {
	out := googleRequest{}

	var system strings.Builder
	for _, m := range req.Messages {
		switch m.Role {
		case RoleSystem:
			if system.Len() > 0 {
				system.WriteString("\n\n")
			}
			system.WriteString(m.Content)
		case RoleAssistant:
			out.Contents = append(out.Contents, googleContent{
				Role:  "model",
				Parts: []googlePart{{Text: m.Content}},
			})
		default:
			out.Contents = append(out.Contents, googleContent{
				Role:  "user",
				Parts: []googlePart{{Text: m.Content}},
			})
		}
	}
	if system.Len() > 0 {
		out.SystemInstruction = &googleContent{Parts: []googlePart{{Text: system.String()}}}
	}

	if req.Temperature > 0 {
		t := req.Temperature
		out.GenerationConfig.Temperature = &t
	}
	if max := maxTokensFor(req, a.cfg); max > 0 {
		out.GenerationConfig.MaxOutputTokens = max
	}
	return out
}
