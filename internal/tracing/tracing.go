// Package tracing assists with reporting OpenTracing spans and wiring their
// duration into a Prometheus metric, grounded on the teacher's
// util/tracing.UpdateMetric helper (util/tracing/tracing.go): there, a
// jaeger.ContribObserver feeds a tagged metric from the span's elapsed time
// at Finish. The engine has no jaeger-specific reporter configured, so
// ObserveSpan does the same bookkeeping directly: tag the span for trace
// visibility, and observe the metric against a caller-supplied start time.
package tracing

import (
	"strings"
	"time"

	opentracing "github.com/opentracing/opentracing-go"
	"github.com/prometheus/client_golang/prometheus"
)

// Metric is satisfied by prometheus.Summary and prometheus.Histogram.
type Metric interface {
	prometheus.Metric
	Observe(float64)
}

// ObserveSpan tags span with metric's name and feeds metric the elapsed
// time since start, in seconds.
func ObserveSpan(span opentracing.Span, metric Metric, start time.Time) {
	span.SetTag("metric", stringableMetric{metric})
	metric.Observe(time.Since(start).Seconds())
}

type stringableMetric struct {
	Metric
}

// String reports the metric's fully-qualified name, the same trimming the
// teacher's stringableMetric applies to a prometheus Desc's Stringer
// output.
func (m stringableMetric) String() string {
	s := m.Desc().String()
	const prefix = `Desc{fqName: "`
	if !strings.HasPrefix(s, prefix) {
		return ""
	}
	s = s[len(prefix):]
	if i := strings.IndexByte(s, '"'); i >= 0 {
		return s[:i]
	}
	return ""
}
