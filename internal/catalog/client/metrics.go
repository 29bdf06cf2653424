package client

import (
	"context"
	"errors"
	"time"

	"storefront/internal/catalog"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricRequestsTotal   = "catalog_api_requests_total"
	metricRequestDuration = "catalog_api_request_duration_seconds"

	OutcomeSuccess     = "success"
	OutcomeNotFound    = "not_found"
	OutcomeRejected    = "rejected"
	OutcomeUnavailable = "unavailable"
	OutcomeCanceled    = "canceled"
)

type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: metricRequestsTotal,
			Help: "Catalog API requests by operation and outcome",
		}, []string{"operation", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    metricRequestDuration,
			Help:    "Catalog API request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
	}
	reg.MustRegister(m.requests, m.duration)
	return m
}

func (m *Metrics) observe(op string, err error, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(op, Outcome(err)).Inc()
	m.duration.WithLabelValues(op).Observe(elapsed.Seconds())
}

// Outcome names the class of a catalog call result for metrics and logs.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, context.Canceled):
		return OutcomeCanceled
	case errors.Is(err, catalog.ErrNotFound):
		return OutcomeNotFound
	case errors.Is(err, catalog.ErrRejected):
		return OutcomeRejected
	default:
		return OutcomeUnavailable
	}
}
