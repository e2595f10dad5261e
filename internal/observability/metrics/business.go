package metrics

import "time"

// RecordEntrySeen records one observed feed entry.
func RecordEntrySeen() {
	EntriesSeenTotal.Inc()
}

// RecordEntrySkipped records an entry dropped before classification.
func RecordEntrySkipped(reason string) {
	EntriesSkippedTotal.WithLabelValues(reason).Inc()
}

// RecordKeywordRejected records a keyword-gate rejection.
func RecordKeywordRejected() {
	KeywordRejectedTotal.Inc()
}

// RecordVerifierCall records a relevance verifier outcome.
func RecordVerifierCall(outcome string) {
	VerifierCallsTotal.WithLabelValues(outcome).Inc()
}

// RecordTranslation records a translation attempt.
func RecordTranslation(status string) {
	TranslationsTotal.WithLabelValues(status).Inc()
}

// RecordArticleInserted records a persisted article.
func RecordArticleInserted() {
	ArticlesInsertedTotal.Inc()
}

// RecordDuplicateLink records an insert rejected by the link constraint.
func RecordDuplicateLink() {
	DuplicateLinksTotal.Inc()
}

// RecordFeedFetchError records a failed feed fetch.
func RecordFeedFetchError(source string) {
	FeedFetchErrorsTotal.WithLabelValues(source).Inc()
}

// RecordSourceCollectDuration records wall time spent on one source.
func RecordSourceCollectDuration(source string, d time.Duration) {
	SourceCollectDuration.WithLabelValues(source).Observe(d.Seconds())
}

// SetArticlesStored updates the stored-article gauge.
func SetArticlesStored(n int64) {
	ArticlesStored.Set(float64(n))
}

// SetSourcesRegistered updates the registered-source gauge.
func SetSourcesRegistered(n int64) {
	SourcesRegistered.Set(float64(n))
}
