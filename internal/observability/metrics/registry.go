// Package metrics defines the Prometheus instruments for the collection
// pipeline and helpers for recording them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// EntriesSeenTotal counts feed entries observed across all sources.
	EntriesSeenTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "collector_entries_seen_total",
		Help: "Total number of feed entries observed",
	})

	// EntriesSkippedTotal counts entries dropped before classification,
	// partitioned by reason (missing_link, missing_fields, duplicate).
	EntriesSkippedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "collector_entries_skipped_total",
		Help: "Total number of feed entries skipped before classification",
	}, []string{"reason"})

	// KeywordRejectedTotal counts entries rejected by the keyword gate
	// without a verifier call.
	KeywordRejectedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "collector_keyword_rejected_total",
		Help: "Total number of entries rejected by the keyword gate",
	})

	// VerifierCallsTotal counts chat-model relevance verdicts by outcome
	// (accepted, rejected, error).
	VerifierCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "collector_verifier_calls_total",
		Help: "Total number of relevance verifier calls by outcome",
	}, []string{"outcome"})

	// TranslationsTotal counts translation attempts by status (ok, fallback).
	TranslationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "collector_translations_total",
		Help: "Total number of translation attempts by status",
	}, []string{"status"})

	// ArticlesInsertedTotal counts articles persisted to the store.
	ArticlesInsertedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "collector_articles_inserted_total",
		Help: "Total number of articles inserted into the store",
	})

	// DuplicateLinksTotal counts inserts rejected by the link constraint.
	DuplicateLinksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "collector_duplicate_links_total",
		Help: "Total number of inserts rejected as duplicate links",
	})

	// FeedFetchErrorsTotal counts failed feed fetches by source name.
	FeedFetchErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "collector_feed_fetch_errors_total",
		Help: "Total number of failed feed fetches by source",
	}, []string{"source"})

	// SourceCollectDuration observes wall time spent collecting one source.
	SourceCollectDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "collector_source_collect_duration_seconds",
		Help:    "Duration of collecting a single source",
		Buckets: prometheus.DefBuckets,
	}, []string{"source"})

	// ArticlesStored reports the current number of stored articles.
	ArticlesStored = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "collector_articles_stored",
		Help: "Current number of articles in the store",
	})

	// SourcesRegistered reports the current number of registered sources.
	SourcesRegistered = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "collector_sources_registered",
		Help: "Current number of registered sources",
	})
)
