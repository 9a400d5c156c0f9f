// Package llm provides text completion against OpenAI-compatible chat APIs
package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"
	"go.opentelemetry.io/otel/trace"

	"github.com/hrops/recruiting-server/internal/config"
	"github.com/hrops/recruiting-server/internal/otel"
)

const tracerName = "github.com/hrops/recruiting-server/llm"

// Default endpoints and models per provider
const (
	OpenAIBaseURL = "https://api.openai.com/v1"
	GroqBaseURL   = "https://api.groq.com/openai/v1"
	OllamaBaseURL = "http://localhost:11434/v1"

	OpenAIModel = "gpt-3.5-turbo"
	GroqModel   = "llama-3.1-8b-instant"
	OllamaModel = "llama3"
)

var (
	// ErrDisabled is returned by every call when no provider is configured
	ErrDisabled = errors.New("llm provider not configured")

	// ErrEmptyCompletion is returned when the API answers without any choices
	ErrEmptyCompletion = errors.New("llm returned no completion")
)

// Options tunes a single completion
type Options struct {
	// System is an optional system message sent before the prompt
	System      string
	MaxTokens   int
	Temperature float64
}

// Completer turns a prompt into text
//
//go:generate mockgen -destination=mocks/mock_completer.go -package=mocks -source=client.go Completer
type Completer interface {
	Complete(ctx context.Context, prompt string, opts Options) (string, error)
}

// Client calls the chat completions endpoint of an OpenAI-compatible API
type Client struct {
	api      *openai.Client
	http     *http.Client
	provider string
	baseURL  string
	model    string
	tracer   trace.Tracer
}

var _ Completer = (*Client)(nil)

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		client.http = c
	}
}

// WithTracerProvider enables completion spans
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(client *Client) {
		if tp != nil {
			client.tracer = tp.Tracer(tracerName)
		}
	}
}

type disabled struct{}

func (disabled) Complete(context.Context, string, Options) (string, error) {
	return "", ErrDisabled
}

// NewCompleter builds the Completer for the configured provider. The "none"
// provider yields a Completer that always fails with ErrDisabled.
func NewCompleter(cfg *config.LLMConfig, opts ...Option) (Completer, error) {
	provider := cfg.GetProvider()
	if provider == config.LLMProviderNone {
		slog.Info("LLM provider not configured; AI authoring endpoints are disabled")
		return disabled{}, nil
	}

	apiKey, err := cfg.GetAPIKey()
	if err != nil {
		return nil, fmt.Errorf("failed to load LLM API key: %w", err)
	}

	baseURL, model := defaultsFor(provider)
	if baseURL == "" {
		return nil, fmt.Errorf("unsupported llm provider %q", provider)
	}
	if apiKey == "" && provider != config.LLMProviderOllama {
		return nil, fmt.Errorf("no API key configured for llm provider %s: set apiKeyFile or %s_LLM_API_KEY",
			provider, config.EnvPrefix)
	}
	if cfg.BaseURL != "" {
		baseURL = cfg.BaseURL
	}
	if cfg.Model != "" {
		model = cfg.Model
	}

	c := &Client{
		http:     &http.Client{Timeout: cfg.GetTimeout()},
		provider: provider,
		baseURL:  strings.TrimRight(baseURL, "/"),
		model:    model,
	}
	for _, opt := range opts {
		opt(c)
	}

	apiCfg := openai.DefaultConfig(apiKey)
	apiCfg.BaseURL = c.baseURL
	apiCfg.HTTPClient = c.http
	c.api = openai.NewClientWithConfig(apiCfg)

	slog.Info("LLM completion enabled", "provider", provider, "model", c.model)
	return c, nil
}

func defaultsFor(provider string) (baseURL, model string) {
	switch provider {
	case config.LLMProviderOpenAI:
		return OpenAIBaseURL, OpenAIModel
	case config.LLMProviderGroq:
		return GroqBaseURL, GroqModel
	case config.LLMProviderOllama:
		return OllamaBaseURL, OllamaModel
	default:
		return "", ""
	}
}

// Complete sends prompt as a user message and returns the trimmed reply
func (c *Client) Complete(ctx context.Context, prompt string, opts Options) (string, error) {
	ctx, span := otel.StartSpan(ctx, c.tracer, "llm.Complete",
		trace.WithAttributes(
			otel.AttrLLMProvider.String(c.provider),
			otel.AttrLLMModel.String(c.model),
		),
	)
	defer span.End()

	req := openai.ChatCompletionRequest{
		Model:       c.model,
		MaxTokens:   opts.MaxTokens,
		Temperature: float32(opts.Temperature),
	}
	if opts.System != "" {
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: opts.System,
		})
	}
	req.Messages = append(req.Messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: prompt,
	})

	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		otel.RecordError(span, err)
		return "", fmt.Errorf("%s completion failed: %w", c.provider, err)
	}
	if len(resp.Choices) == 0 {
		otel.RecordError(span, ErrEmptyCompletion)
		return "", ErrEmptyCompletion
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
