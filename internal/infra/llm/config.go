// Package llm provides chat-model clients for the relevance verifier and the
// translator: a local Ollama endpoint speaking the OpenAI chat protocol, and
// the Anthropic API as an alternative provider.
package llm

import (
	"fmt"
	"log/slog"
	"time"

	"cryptonews-collector/pkg/config"
)

const (
	// ProviderOllama selects the local Ollama endpoint.
	ProviderOllama = "ollama"
	// ProviderClaude selects the Anthropic API.
	ProviderClaude = "claude"

	defaultOllamaHost  = "http://localhost:11434/v1"
	defaultOllamaModel = "deepseek-r1:7b"
	defaultClaudeModel = "claude-3-5-haiku-latest"

	defaultTimeout           = 60 * time.Second
	defaultRequestsPerMinute = 30
)

// Config holds chat-model client configuration loaded from the environment.
type Config struct {
	Provider string
	Model    string
	Host     string
	APIKey   string

	Timeout           time.Duration
	RequestsPerMinute int
}

// LoadConfig reads chat-model configuration from the environment. Malformed
// optional values fall back to defaults with a warning; a claude provider
// without an API key is an error because every call would fail.
func LoadConfig() (Config, error) {
	cfg := Config{
		Provider:          config.GetEnvString("LLM_PROVIDER", ProviderOllama),
		Host:              config.GetEnvString("LLM_HOST", defaultOllamaHost),
		APIKey:            config.GetEnvString("ANTHROPIC_API_KEY", ""),
		Timeout:           config.GetEnvDuration("LLM_TIMEOUT", defaultTimeout),
		RequestsPerMinute: config.GetEnvInt("LLM_REQUESTS_PER_MINUTE", defaultRequestsPerMinute),
	}

	switch cfg.Provider {
	case ProviderOllama:
		cfg.Model = config.GetEnvString("LLM_MODEL", defaultOllamaModel)
	case ProviderClaude:
		cfg.Model = config.GetEnvString("LLM_MODEL", defaultClaudeModel)
		if cfg.APIKey == "" {
			return Config{}, fmt.Errorf("LLM_PROVIDER is %q but ANTHROPIC_API_KEY is not set", ProviderClaude)
		}
	default:
		return Config{}, fmt.Errorf("unknown LLM_PROVIDER %q (want %q or %q)", cfg.Provider, ProviderOllama, ProviderClaude)
	}

	if cfg.Timeout <= 0 {
		slog.Warn("non-positive LLM_TIMEOUT, using default",
			slog.Duration("default", defaultTimeout))
		cfg.Timeout = defaultTimeout
	}
	if cfg.RequestsPerMinute <= 0 {
		slog.Warn("non-positive LLM_REQUESTS_PER_MINUTE, using default",
			slog.Int("default", defaultRequestsPerMinute))
		cfg.RequestsPerMinute = defaultRequestsPerMinute
	}

	return cfg, nil
}
