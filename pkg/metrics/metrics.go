// Package metrics exposes Prometheus counters for the extraction pipeline.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/FACorreiaa/statement-parser/internal/domain/statement"
)

var (
	statementsParsed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "statements_parsed_total",
		Help: "Statements processed, labeled by classified issuer.",
	}, []string{"issuer"})

	fieldsMissing = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "statement_fields_missing_total",
		Help: "Fields that remained unresolved after all fallback tiers.",
	}, []string{"field"})

	extractionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "statement_extraction_duration_seconds",
		Help:    "Wall-clock time of a single document extraction.",
		Buckets: prometheus.DefBuckets,
	})
)

// ObserveExtraction records counters for one extraction outcome.
func ObserveExtraction(parsed statement.ParsedStatement, elapsed time.Duration) {
	statementsParsed.WithLabelValues(string(parsed.Issuer)).Inc()
	extractionDuration.Observe(elapsed.Seconds())

	if !parsed.OK {
		return
	}
	for field, value := range parsed.Fields {
		if !value.Found {
			fieldsMissing.WithLabelValues(string(field)).Inc()
		}
	}
}

// Handler returns the Prometheus scrape handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
