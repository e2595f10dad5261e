// Package translate converts non-English feed text to English through a chat
// model before classification and storage.
package translate

import (
	"context"
	"fmt"
	"strings"
)

const translateSystemPrompt = `You are a translator. Translate the following text to English, maintaining the original meaning and technical terms.`

// ChatModel sends one system/user exchange to a chat model and returns the
// raw assistant text.
type ChatModel interface {
	Chat(ctx context.Context, system, user string) (string, error)
}

// Translator translates text to English via a chat model.
type Translator struct {
	model ChatModel
}

// NewTranslator creates a translator over the given chat model.
func NewTranslator(model ChatModel) *Translator {
	return &Translator{model: model}
}

// Translate returns the English rendering of text. Empty input passes
// through unchanged. Callers decide what to do with errors; the collection
// pipeline keeps the original text and continues.
func (t *Translator) Translate(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return text, nil
	}

	translated, err := t.model.Chat(ctx, translateSystemPrompt, text)
	if err != nil {
		return "", fmt.Errorf("Translate: %w", err)
	}
	return strings.TrimSpace(translated), nil
}
