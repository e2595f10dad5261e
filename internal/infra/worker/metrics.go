package worker

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cycleRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "collector_cycle_runs_total",
		Help: "Total number of collection cycle runs by result",
	}, []string{"result"})

	cycleDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "collector_cycle_duration_seconds",
		Help:    "Duration of collection cycles",
		Buckets: []float64{10, 30, 60, 120, 300, 600, 1200, 1800, 2700},
	})

	cycleSkippedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "collector_cycle_skipped_total",
		Help: "Total number of cycle ticks skipped because a cycle was still running",
	})

	lastCycleSuccess = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "collector_last_cycle_success_timestamp_seconds",
		Help: "Unix timestamp of the last successful collection cycle",
	})
)

// RecordCycle records one completed cycle.
func RecordCycle(success bool, duration time.Duration) {
	result := "success"
	if !success {
		result = "error"
	}
	cycleRunsTotal.WithLabelValues(result).Inc()
	cycleDuration.Observe(duration.Seconds())
	if success {
		lastCycleSuccess.SetToCurrentTime()
	}
}

// RecordCycleSkipped records a tick dropped by the overlap guard.
func RecordCycleSkipped() {
	cycleSkippedTotal.Inc()
}
