package llm

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"

	"cryptonews-collector/internal/resilience/circuitbreaker"
	"cryptonews-collector/internal/resilience/retry"
)

// OllamaClient talks to a local Ollama server through its OpenAI-compatible
// chat endpoint. Calls are rate limited, retried on transient failures, and
// guarded by a circuit breaker.
type OllamaClient struct {
	client  *openai.Client
	model   string
	limiter *rate.Limiter
	breaker *circuitbreaker.CircuitBreaker
	retry   retry.Config
	logger  *slog.Logger
}

// NewOllamaClient creates a client for the configured Ollama endpoint.
func NewOllamaClient(cfg Config, logger *slog.Logger) *OllamaClient {
	clientCfg := openai.DefaultConfig("ollama")
	clientCfg.BaseURL = cfg.Host
	clientCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	rpm := rate.Limit(float64(cfg.RequestsPerMinute) / 60.0)

	return &OllamaClient{
		client:  openai.NewClientWithConfig(clientCfg),
		model:   cfg.Model,
		limiter: rate.NewLimiter(rpm, 1),
		breaker: circuitbreaker.New(circuitbreaker.ChatAPIConfig()),
		retry:   retry.ChatAPIConfig(),
		logger:  logger,
	}
}

// Chat sends one system/user message pair and returns the raw assistant text.
func (c *OllamaClient) Chat(ctx context.Context, system, user string) (string, error) {
	requestID := uuid.New().String()

	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("Chat: rate limit wait: %w", err)
	}

	c.logger.Debug("sending chat request",
		slog.String("request_id", requestID),
		slog.String("provider", ProviderOllama),
		slog.String("model", c.model),
		slog.Int("user_chars", len(user)))

	var content string
	err := retry.WithBackoff(ctx, c.retry, func() error {
		result, err := c.breaker.Execute(func() (interface{}, error) {
			resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
				Model: c.model,
				Messages: []openai.ChatCompletionMessage{
					{Role: openai.ChatMessageRoleSystem, Content: system},
					{Role: openai.ChatMessageRoleUser, Content: user},
				},
			})
			if err != nil {
				return nil, err
			}
			if len(resp.Choices) == 0 {
				return nil, fmt.Errorf("empty choices in chat response")
			}
			return resp.Choices[0].Message.Content, nil
		})
		if err != nil {
			return err
		}
		content = result.(string)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("Chat: %w", err)
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return "", fmt.Errorf("Chat: empty response content")
	}

	c.logger.Debug("received chat response",
		slog.String("request_id", requestID),
		slog.Int("response_chars", len(content)))

	return content, nil
}
