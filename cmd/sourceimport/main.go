// The sourceimport command loads feed sources from a CSV file into the
// registry. Rows upsert by source name, so re-running against an updated file
// refreshes existing entries instead of duplicating them.
//
// Expected CSV header: name,url,language,country,category. The legacy "lan"
// header is accepted as an alias for "language".
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"cryptonews-collector/internal/domain/entity"
	pgRepo "cryptonews-collector/internal/infra/adapter/persistence/postgres"
	"cryptonews-collector/internal/infra/db"
	"cryptonews-collector/internal/observability/logging"
	"cryptonews-collector/pkg/config"
)

func main() {
	config.LoadDotEnv()
	logger := logging.Setup()

	var csvPath string
	flag.StringVar(&csvPath, "file", "sources.csv", "path to the sources CSV file")
	flag.Parse()

	database := db.Open()
	defer func() { _ = database.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := db.MigrateUp(ctx, database); err != nil {
		logger.Error("failed to apply migrations", slog.Any("error", err))
		os.Exit(1)
	}

	srcRepo := pgRepo.NewSourceRepo(database)

	imported, skipped, err := importSources(ctx, srcRepo, csvPath, logger)
	if err != nil {
		logger.Error("import failed", slog.String("file", csvPath), slog.Any("error", err))
		os.Exit(1)
	}

	total, err := srcRepo.CountSources(ctx)
	if err != nil {
		logger.Warn("failed to count sources", slog.Any("error", err))
	}

	logger.Info("source import completed",
		slog.String("file", csvPath),
		slog.Int("imported", imported),
		slog.Int("skipped", skipped),
		slog.Int64("registry_total", total))
}

type sourceImporter interface {
	Upsert(ctx context.Context, source *entity.Source) error
}

// importSources reads the CSV and upserts each row. Invalid rows are logged
// and skipped; only file-level failures abort the import.
func importSources(ctx context.Context, repo sourceImporter, path string, logger *slog.Logger) (imported, skipped int, err error) {
	f, err := os.Open(path) // #nosec G304 -- path comes from the operator's flag.
	if err != nil {
		return 0, 0, fmt.Errorf("open csv: %w", err)
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return 0, 0, fmt.Errorf("read header: %w", err)
	}
	cols, err := mapColumns(header)
	if err != nil {
		return 0, 0, err
	}

	line := 1
	for {
		line++
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			logger.Warn("skipping malformed row",
				slog.Int("line", line),
				slog.Any("error", err))
			skipped++
			continue
		}

		source := &entity.Source{
			Name:     field(record, cols["name"]),
			URL:      field(record, cols["url"]),
			Language: field(record, cols["language"]),
			Country:  field(record, cols["country"]),
			Category: field(record, cols["category"]),
		}
		if err := repo.Upsert(ctx, source); err != nil {
			logger.Warn("skipping row",
				slog.Int("line", line),
				slog.String("name", source.Name),
				slog.Any("error", err))
			skipped++
			continue
		}
		imported++
	}

	return imported, skipped, nil
}

// mapColumns resolves header names to column indexes. "lan" is a legacy
// alias for "language". name and url are required; the rest default to -1
// and produce empty fields.
func mapColumns(header []string) (map[string]int, error) {
	cols := map[string]int{
		"name":     -1,
		"url":      -1,
		"language": -1,
		"country":  -1,
		"category": -1,
	}
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(h))
		if name == "lan" {
			name = "language"
		}
		if _, ok := cols[name]; ok {
			cols[name] = i
		}
	}
	if cols["name"] < 0 || cols["url"] < 0 {
		return nil, fmt.Errorf("csv header must contain name and url columns, got %v", header)
	}
	return cols, nil
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}
