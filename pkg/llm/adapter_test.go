package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskfleet/maestro/pkg/config"
	"github.com/taskfleet/maestro/pkg/models"
)

func TestClassifyStatus(t *testing.T) {
	rateLimited := classifyStatus("openai", "gpt-4o", 429, "slow down", "7")
	assert.Equal(t, models.CodeProviderRateLimited, rateLimited.Code)
	assert.True(t, rateLimited.Recoverable)
	assert.Equal(t, int64(7000), rateLimited.RetryAfterMS)

	unavailable := classifyStatus("openai", "gpt-4o", 503, "overloaded", "")
	assert.Equal(t, models.CodeProviderUnavailable, unavailable.Code)
	assert.True(t, unavailable.Recoverable)

	badRequest := classifyStatus("openai", "gpt-4o", 400, "bad prompt", "")
	assert.Equal(t, models.CodeProviderUnavailable, badRequest.Code)
	assert.False(t, badRequest.Recoverable)
}

func TestGoogleAdapter_Chat(t *testing.T) {
	var gotBody googleRequest
	var gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-goog-api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{{
				"content":      map[string]any{"role": "model", "parts": []map[string]any{{"text": "answer"}}},
				"finishReason": "STOP",
			}},
			"usageMetadata": map[string]any{
				"promptTokenCount": 12, "candidatesTokenCount": 3, "totalTokenCount": 15,
			},
		})
	}))
	defer srv.Close()

	a := newGoogleAdapter("google", &config.ProviderConfig{
		Format: config.FormatGoogle, APIBase: srv.URL, DefaultMaxTokens: 2048,
	}, "test-key")

	resp, err := a.Chat(context.Background(), "gemini-2.0-flash", &ChatRequest{
		Messages: []Message{
			{Role: RoleSystem, Content: "be brief"},
			{Role: RoleUser, Content: "question"},
		},
		Temperature: 0.5,
	})
	require.NoError(t, err)

	assert.Equal(t, "test-key", gotKey)
	require.NotNil(t, gotBody.SystemInstruction)
	assert.Equal(t, "be brief", gotBody.SystemInstruction.Parts[0].Text)
	require.Len(t, gotBody.Contents, 1)
	assert.Equal(t, "user", gotBody.Contents[0].Role)
	assert.Equal(t, 2048, gotBody.GenerationConfig.MaxOutputTokens)

	assert.Equal(t, "answer", resp.Content)
	assert.Equal(t, "stop", resp.FinishReason)
	assert.Equal(t, 15, resp.Usage.TotalTokens)
	assert.Equal(t, "google", resp.Provider)
}

func TestGoogleAdapter_RateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "3")
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"code": 429, "message": "quota exceeded", "status": "RESOURCE_EXHAUSTED"},
		})
	}))
	defer srv.Close()

	a := newGoogleAdapter("google", &config.ProviderConfig{
		Format: config.FormatGoogle, APIBase: srv.URL,
	}, "test-key")

	_, err := a.Chat(context.Background(), "gemini-2.0-flash", &ChatRequest{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	require.Error(t, err)

	ae := models.AsAgentError(err)
	assert.Equal(t, models.CodeProviderRateLimited, ae.Code)
	assert.True(t, ae.Recoverable)
	assert.Equal(t, int64(3000), ae.RetryAfterMS)
	assert.Contains(t, ae.Message, "quota exceeded")
}

func TestGoogleAdapter_AssistantRoleMapsToModel(t *testing.T) {
	a := newGoogleAdapter("google", &config.ProviderConfig{APIBase: "http://localhost"}, "k")
	body := a.buildRequest(&ChatRequest{
		Messages: []Message{
			{Role: RoleUser, Content: "q"},
			{Role: RoleAssistant, Content: "a"},
			{Role: RoleUser, Content: "q2"},
		},
	})
	require.Len(t, body.Contents, 3)
	assert.Equal(t, "model", body.Contents[1].Role)
}

func TestSplitSystem(t *testing.T) {
	system, msgs := splitSystem([]Message{
		{Role: RoleSystem, Content: "rule one"},
		{Role: RoleSystem, Content: "rule two"},
		{Role: RoleUser, Content: "hello"},
	})
	assert.Equal(t, "rule one\n\nrule two", system)
	assert.Len(t, msgs, 1)
}

func TestMaxTokensFor(t *testing.T) {
	cfg := &config.ProviderConfig{DefaultMaxTokens: 512}
	assert.Equal(t, 100, maxTokensFor(&ChatRequest{MaxTokens: 100}, cfg))
	assert.Equal(t, 512, maxTokensFor(&ChatRequest{}, cfg))
	assert.Equal(t, 0, maxTokensFor(&ChatRequest{}, &config.ProviderConfig{}))
}
