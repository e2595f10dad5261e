package llm

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"cryptonews-collector/internal/resilience/circuitbreaker"
	"cryptonews-collector/internal/resilience/retry"
)

const claudeMaxTokens = 2048

// ClaudeClient calls the Anthropic Messages API. It satisfies the same chat
// contract as OllamaClient so the verifier and translator do not care which
// provider is wired in.
type ClaudeClient struct {
	client  anthropic.Client
	model   string
	limiter *rate.Limiter
	breaker *circuitbreaker.CircuitBreaker
	retry   retry.Config
	logger  *slog.Logger
}

// NewClaudeClient creates a client for the Anthropic API.
func NewClaudeClient(cfg Config, logger *slog.Logger) *ClaudeClient {
	rpm := rate.Limit(float64(cfg.RequestsPerMinute) / 60.0)

	httpClient := &http.Client{Timeout: cfg.Timeout}

	return &ClaudeClient{
		client: anthropic.NewClient(
			option.WithAPIKey(cfg.APIKey),
			option.WithHTTPClient(httpClient),
		),
		model:   cfg.Model,
		limiter: rate.NewLimiter(rpm, 1),
		breaker: circuitbreaker.New(circuitbreaker.ChatAPIConfig()),
		retry:   retry.ChatAPIConfig(),
		logger:  logger,
	}
}

// Chat sends one system/user message pair and returns the assistant text.
func (c *ClaudeClient) Chat(ctx context.Context, system, user string) (string, error) {
	requestID := uuid.New().String()

	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("Chat: rate limit wait: %w", err)
	}

	c.logger.Debug("sending chat request",
		slog.String("request_id", requestID),
		slog.String("provider", ProviderClaude),
		slog.String("model", c.model),
		slog.Int("user_chars", len(user)))

	var content string
	err := retry.WithBackoff(ctx, c.retry, func() error {
		result, err := c.breaker.Execute(func() (interface{}, error) {
			msg, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
				Model:     anthropic.Model(c.model),
				MaxTokens: claudeMaxTokens,
				System: []anthropic.TextBlockParam{
					{Text: system},
				},
				Messages: []anthropic.MessageParam{
					anthropic.NewUserMessage(anthropic.NewTextBlock(user)),
				},
			})
			if err != nil {
				return nil, err
			}
			if len(msg.Content) == 0 {
				return nil, fmt.Errorf("empty content in messages response")
			}
			return msg.Content[0].Text, nil
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
