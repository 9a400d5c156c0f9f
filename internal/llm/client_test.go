package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrops/recruiting-server/internal/config"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()

	server := httptest.NewUnstartedServer(handler)
	server.Config.SetKeepAlivesEnabled(false)
	server.Start()
	t.Cleanup(server.Close)
	return server
}

func TestNewCompleter(t *testing.T) {
	t.Parallel()

	t.Run("nil config is disabled", func(t *testing.T) {
		t.Parallel()

		c, err := NewCompleter(nil)
		require.NoError(t, err)

		_, err = c.Complete(context.Background(), "hello", Options{})
		require.ErrorIs(t, err, ErrDisabled)
	})

	t.Run("provider defaults", func(t *testing.T) {
		t.Parallel()

		c, err := NewCompleter(&config.LLMConfig{Provider: "Groq", APIKey: "gsk_test"})
		require.NoError(t, err)

		client, ok := c.(*Client)
		require.True(t, ok)
		assert.Equal(t, GroqBaseURL, client.baseURL)
		assert.Equal(t, GroqModel, client.model)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Parallel()

		c, err := NewCompleter(&config.LLMConfig{
			Provider: config.LLMProviderOpenAI,
			APIKey:   "sk_test",
			BaseURL:  "https://llm.internal/v1/",
			Model:    "gpt-4o-mini",
		})
		require.NoError(t, err)

		client, ok := c.(*Client)
		require.True(t, ok)
		assert.Equal(t, "https://llm.internal/v1", client.baseURL)
		assert.Equal(t, "gpt-4o-mini", client.model)
	})

	t.Run("custom http client", func(t *testing.T) {
		t.Parallel()

		hc := &http.Client{Timeout: time.Second}
		c, err := NewCompleter(&config.LLMConfig{Provider: config.LLMProviderOllama}, WithHTTPClient(hc))
		require.NoError(t, err)

		client, ok := c.(*Client)
		require.True(t, ok)
		assert.Same(t, hc, client.http)
		assert.Equal(t, OllamaBaseURL, client.baseURL)
	})

	t.Run("ollama needs no key", func(t *testing.T) {
		t.Parallel()

		_, err := NewCompleter(&config.LLMConfig{Provider: config.LLMProviderOllama})
		require.NoError(t, err)
	})

	t.Run("unknown provider", func(t *testing.T) {
		t.Parallel()

		_, err := NewCompleter(&config.LLMConfig{Provider: "anthropic-ish", APIKey: "k"})
		require.Error(t, err)
	})
}

func TestClient_Complete(t *testing.T) {
	t.Parallel()

	var got openai.ChatCompletionRequest
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk_test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  Remote work policy\n"}}]}`))
	})

	c, err := NewCompleter(&config.LLMConfig{
		Provider: config.LLMProviderOpenAI,
		APIKey:   "sk_test",
		BaseURL:  server.URL,
	})
	require.NoError(t, err)

	out, err := c.Complete(context.Background(), "Write a policy", Options{
		System:      "You are an HR policy expert.",
		MaxTokens:   1500,
		Temperature: 0.7,
	})
	require.NoError(t, err)
	assert.Equal(t, "Remote work policy", out)

	assert.Equal(t, OpenAIModel, got.Model)
	assert.Equal(t, 1500, got.MaxTokens)
	assert.InDelta(t, 0.7, got.Temperature, 1e-6)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, got.Messages[0].Role)
	assert.Equal(t, "You are an HR policy expert.", got.Messages[0].Content)
	assert.Equal(t, openai.ChatMessageRoleUser, got.Messages[1].Role)
	assert.Equal(t, "Write a policy", got.Messages[1].Content)
}

func TestClient_CompleteFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		status     int
		body       string
		errIs      error
		wantStatus int
	}{
		{name: "api error message", status: http.StatusServiceUnavailable, body: `{"error":{"message":"model overloaded"}}`, wantStatus: http.StatusServiceUnavailable},
		{name: "no choices", status: http.StatusOK, body: `{"choices":[]}`, errIs: ErrEmptyCompletion},
		{name: "invalid json", status: http.StatusOK, body: `not json`},
		{name: "http failure", status: http.StatusUnauthorized, body: `{"error":{"message":"bad key"}}`, wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			c, err := NewCompleter(&config.LLMConfig{Provider: config.LLMProviderOllama, BaseURL: server.URL})
			require.NoError(t, err)

			out, err := c.Complete(context.Background(), "prompt", Options{})
			require.Error(t, err)
			assert.Empty(t, out)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
			}
			if tt.wantStatus != 0 {
				var apiErr *openai.APIError
				require.True(t, errors.As(err, &apiErr))
				assert.Equal(t, tt.wantStatus, apiErr.HTTPStatusCode)
			}
		})
	}
}
