// Package relevance decides whether a normalized feed entry is crypto news.
//
// Classification runs in two stages. A keyword lexicon gates the expensive
// path: entries matching no term are rejected immediately. Matching entries
// go to a chat model that must answer YES or NO after a <think> block.
// Errors anywhere in the model path reject the entry; a failure must never
// admit an article the model did not approve.
package relevance

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"cryptonews-collector/internal/observability/metrics"
	"cryptonews-collector/internal/observability/tracing"
)

const classifierSystemPrompt = `You are a content classifier for crypto/blockchain news. Analyze if the content is:
1. Actually a news article (not an advertisement or promotional content)
2. Related to crypto/blockchain topics

IMPORTANT: Your response must follow this exact format:
<think>your analysis</think>
YES or NO

The answer must be a single word YES or NO on a new line after the think tag.`

// ChatModel sends one system/user exchange to a chat model and returns the
// raw assistant text.
type ChatModel interface {
	Chat(ctx context.Context, system, user string) (string, error)
}

// Classifier is the two-stage relevance classifier.
type Classifier struct {
	lexicon *Lexicon
	model   ChatModel
	logger  *slog.Logger
}

// NewClassifier creates a classifier over the given lexicon and chat model.
func NewClassifier(lexicon *Lexicon, model ChatModel, logger *slog.Logger) *Classifier {
	return &Classifier{
		lexicon: lexicon,
		model:   model,
		logger:  logger,
	}
}

// Classify reports whether the entry is relevant crypto news. A non-nil
// error means the verdict could not be established; callers reject in that
// case.
func (c *Classifier) Classify(ctx context.Context, title, description string) (bool, error) {
	ctx, span := tracing.Tracer().Start(ctx, "relevance.Classify")
	defer span.End()

	matched := c.lexicon.Match(title, description)
	if len(matched) == 0 {
		metrics.RecordKeywordRejected()
		c.logger.Debug("entry rejected by keyword gate",
			slog.String("title", title))
		return false, nil
	}
	span.SetAttributes(attribute.Int("keywords.matched", len(matched)))

	c.logger.Debug("keywords found",
		slog.String("title", title),
		slog.Any("keywords", matched))

	userPrompt := fmt.Sprintf("Title: %s\nDescription: %s", title, description)
	response, err := c.model.Chat(ctx, classifierSystemPrompt, userPrompt)
	if err != nil {
		metrics.RecordVerifierCall("error")
		return false, fmt.Errorf("Classify: %w", err)
	}

	relevant, err := ParseVerdict(response)
	if err != nil {
		metrics.RecordVerifierCall("error")
		return false, fmt.Errorf("Classify: %w", err)
	}

	if relevant {
		metrics.RecordVerifierCall("accepted")
	} else {
		metrics.RecordVerifierCall("rejected")
	}
	return relevant, nil
}
