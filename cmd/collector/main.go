// The collector daemon runs the collection pipeline on a fixed schedule:
// fetch every registered feed, translate and classify the new entries, and
// persist the relevant ones.
package main

import (
	"context"
	"crypto/tls"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	pgRepo "cryptonews-collector/internal/infra/adapter/persistence/postgres"
	"cryptonews-collector/internal/infra/db"
	"cryptonews-collector/internal/infra/feed"
	"cryptonews-collector/internal/infra/llm"
	workerPkg "cryptonews-collector/internal/infra/worker"
	"cryptonews-collector/internal/observability/logging"
	"cryptonews-collector/internal/observability/metrics"
	"cryptonews-collector/internal/usecase/collect"
	"cryptonews-collector/internal/usecase/relevance"
	"cryptonews-collector/internal/usecase/translate"
	"cryptonews-collector/pkg/config"
)

func main() {
	config.LoadDotEnv()
	logger := logging.Setup()

	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	workerConfig := workerPkg.LoadConfigFromEnv(logger)
	logger.Info("worker configuration loaded",
		slog.String("schedule", workerConfig.Schedule),
		slog.String("timezone", workerConfig.Timezone),
		slog.Duration("cycle_timeout", workerConfig.CycleTimeout),
		slog.Int("health_port", workerConfig.HealthPort))

	startMetricsServer(ctx, logger)

	healthAddr := fmt.Sprintf(":%d", workerConfig.HealthPort)
	healthServer := workerPkg.NewHealthServer(healthAddr, logger)
	go func() {
		if err := healthServer.Start(ctx); err != nil && err != http.ErrServerClosed {
			logger.Error("health server failed", slog.Any("error", err))
		}
	}()

	svc := setupCollectService(logger, database)

	startCronWorker(ctx, logger, svc, database, workerConfig, healthServer)
}

// initDatabase opens the connection pool and applies schema migrations.
func initDatabase(logger *slog.Logger) *sql.DB {
	database := db.Open()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := db.MigrateUp(ctx, database); err != nil {
		logger.Error("failed to apply migrations", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// setupCollectService wires the collection pipeline: repositories, feed
// fetcher, chat model, translator, and classifier.
func setupCollectService(logger *slog.Logger, database *sql.DB) collect.Service {
	srcRepo := pgRepo.NewSourceRepo(database)
	artRepo := pgRepo.NewArticleRepo(database)

	fetcher := feed.NewRSSFetcher(createHTTPClient())
	chatModel := createChatModel(logger)

	lexicon, err := relevance.LoadLexicon(os.Getenv("LEXICON_PATH"))
	if err != nil {
		logger.Error("failed to load keyword lexicon", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("keyword lexicon loaded", slog.Int("terms", lexicon.Size()))

	classifier := relevance.NewClassifier(lexicon, chatModel, logger)
	translator := translate.NewTranslator(chatModel)

	return collect.NewService(srcRepo, artRepo, fetcher, translator, classifier)
}

// createChatModel creates the chat client selected by LLM_PROVIDER.
func createChatModel(logger *slog.Logger) relevance.ChatModel {
	cfg, err := llm.LoadConfig()
	if err != nil {
		logger.Error("failed to load chat model configuration", slog.Any("error", err))
		os.Exit(1)
	}

	switch cfg.Provider {
	case llm.ProviderClaude:
		logger.Info("using Anthropic API for classification and translation",
			slog.String("model", cfg.Model))
		return llm.NewClaudeClient(cfg, logger)
	default:
		logger.Info("using Ollama for classification and translation",
			slog.String("host", cfg.Host),
			slog.String("model", cfg.Model))
		return llm.NewOllamaClient(cfg, logger)
	}
}

// createHTTPClient creates the HTTP client used for feed fetching.
// TLS 1.2+ is enforced.
func createHTTPClient() *http.Client {
	return &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
			TLSClientConfig: &tls.Config{
				MinVersion: tls.VersionTLS12,
			},
		},
	}
}

// startCronWorker runs one cycle immediately, then schedules recurring
// cycles. SkipIfStillRunning guarantees cycles never overlap: a tick that
// fires while a cycle is in flight is dropped, not queued. Cancelling ctx
// stops the schedule, cancels any in-flight cycle, and returns.
func startCronWorker(ctx context.Context, logger *slog.Logger, svc collect.Service, database *sql.DB, cfg *workerPkg.Config, healthServer *workerPkg.HealthServer) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Error("invalid timezone, using UTC", slog.String("timezone", cfg.Timezone), slog.Any("error", err))
		loc = time.UTC
	}

	cronLogger := &slogCronLogger{logger: logger}
	c := cron.New(
		cron.WithLocation(loc),
		cron.WithChain(cron.SkipIfStillRunning(cronLogger)),
	)

	_, err = c.AddFunc(cfg.Schedule, func() {
		runCollectCycle(ctx, logger, svc, database, cfg)
	})
	if err != nil {
		logger.Error("failed to add cron job", slog.Any("error", err))
		os.Exit(1)
	}

	healthServer.SetReady(true)
	logger.Info("worker started",
		slog.String("schedule", cfg.Schedule),
		slog.String("timezone", cfg.Timezone))

	// First cycle runs right away; the schedule only fires after one interval.
	runCollectCycle(ctx, logger, svc, database, cfg)

	c.Start()
	<-ctx.Done()

	logger.Info("shutdown signal received")
	healthServer.SetReady(false)

	// Stop returns once the in-flight job, if any, has finished. The job's
	// context is already cancelled, so this only waits for cleanup.
	stopCtx := c.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(30 * time.Second):
		logger.Warn("timed out waiting for in-flight cycle to stop")
	}
	logger.Info("worker stopped")
}

// runCollectCycle executes one collection cycle with a timeout. The cycle
// inherits the worker context, so shutdown cancels it.
func runCollectCycle(parent context.Context, logger *slog.Logger, svc collect.Service, database *sql.DB, cfg *workerPkg.Config) {
	startTime := time.Now()
	logger.Info("collection cycle started")

	ctx, cancel := context.WithTimeout(parent, cfg.CycleTimeout)
	defer cancel()

	stats, err := svc.CollectAllSources(ctx)
	if err != nil {
		logger.Error("collection cycle failed", slog.Any("error", err))
		workerPkg.RecordCycle(false, time.Since(startTime))
		return
	}

	workerPkg.RecordCycle(true, time.Since(startTime))
	updateStoreGauges(ctx, database)

	logger.Info("collection cycle finished",
		slog.Int("sources", stats.Sources),
		slog.Int64("entries", stats.Entries),
		slog.Int64("inserted", stats.Inserted),
		slog.Int64("duplicated", stats.Duplicated),
		slog.Int64("rejected", stats.Rejected),
		slog.Duration("duration", stats.Duration),
	)
}

// updateStoreGauges refreshes the stored-article and source-count gauges
// after a cycle. Failures only cost metric freshness.
func updateStoreGauges(ctx context.Context, database *sql.DB) {
	artRepo := pgRepo.NewArticleRepo(database)
	srcRepo := pgRepo.NewSourceRepo(database)

	if count, err := artRepo.CountArticles(ctx); err == nil {
		metrics.SetArticlesStored(count)
	}
	if count, err := srcRepo.CountSources(ctx); err == nil {
		metrics.SetSourcesRegistered(count)
	}
}

// slogCronLogger adapts slog to the cron.Logger interface.
type slogCronLogger struct {
	logger *slog.Logger
}

func (l *slogCronLogger) Info(msg string, keysAndValues ...interface{}) {
	if msg == "skip" {
		workerPkg.RecordCycleSkipped()
		l.logger.Warn("collection cycle still running, skipping tick")
		return
	}
	l.logger.Info(msg, keysAndValues...)
}

func (l *slogCronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	args := append([]interface{}{slog.Any("error", err)}, keysAndValues...)
	l.logger.Error(msg, args...)
}
