package engine

import "github.com/prometheus/client_golang/prometheus"

// metrics mirrors the teacher's query.queryMetrics: a package-level struct
// of registered collectors, initialized once in init() (query/metrics.go).
type engineMetrics struct {
	runDurationSeconds prometheus.Histogram
	rowsEmittedTotal   prometheus.Counter
}

var metrics engineMetrics

func init() {
	metrics = engineMetrics{
		runDurationSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "memgraph",
			Subsystem: "query",
			Name:      "run_duration_seconds",
			Help:      "Time spent in one engine.Run call, from its start until it returns, failed runs included.",
		}),
		rowsEmittedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "memgraph",
			Subsystem: "query",
			Name:      "rows_emitted_total",
			Help:      "Rows emitted by the top-level operator across all queries.",
		}),
	}
	prometheus.MustRegister(metrics.runDurationSeconds, metrics.rowsEmittedTotal)
}
