// The classify command runs a single title/description pair through the
// relevance pipeline and prints the keyword matches and the verdict. Useful
// for tuning the lexicon and checking model behavior without a database.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"cryptonews-collector/internal/infra/llm"
	"cryptonews-collector/internal/observability/logging"
	"cryptonews-collector/internal/usecase/relevance"
	"cryptonews-collector/pkg/config"
)

func main() {
	config.LoadDotEnv()
	logger := logging.Setup()

	var (
		title       string
		description string
		timeout     time.Duration
	)
	flag.StringVar(&title, "title", "", "entry title")
	flag.StringVar(&description, "description", "", "entry description")
	flag.DurationVar(&timeout, "timeout", 2*time.Minute, "classification timeout")
	flag.Parse()

	if title == "" && description == "" {
		fmt.Fprintln(os.Stderr, "usage: classify -title <title> [-description <description>]")
		os.Exit(2)
	}

	lexicon, err := relevance.LoadLexicon(os.Getenv("LEXICON_PATH"))
	if err != nil {
		logger.Error("failed to load keyword lexicon", slog.Any("error", err))
		os.Exit(1)
	}

	matched := lexicon.Match(title, description)
	if len(matched) == 0 {
		fmt.Println("keywords: none")
		fmt.Println("verdict: NOT RELEVANT (keyword gate)")
		return
	}
	fmt.Printf("keywords: %s\n", strings.Join(matched, ", "))

	cfg, err := llm.LoadConfig()
	if err != nil {
		logger.Error("failed to load chat model configuration", slog.Any("error", err))
		os.Exit(1)
	}

	var model relevance.ChatModel
	switch cfg.Provider {
	case llm.ProviderClaude:
		model = llm.NewClaudeClient(cfg, logger)
	default:
		model = llm.NewOllamaClient(cfg, logger)
	}

	classifier := relevance.NewClassifier(lexicon, model, logger)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	relevant, err := classifier.Classify(ctx, title, description)
	if err != nil {
		logger.Error("classification failed", slog.Any("error", err))
		fmt.Println("verdict: NOT RELEVANT (classification error)")
		os.Exit(1)
	}

	if relevant {
		fmt.Println("verdict: RELEVANT")
	} else {
		fmt.Println("verdict: NOT RELEVANT")
	}
}
