package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	reportsGenerated    *prometheus.CounterVec
	reportDuration      prometheus.Histogram
	reportRows          *prometheus.GaugeVec
	claimsGenerated     *prometheus.CounterVec
	claimGenDuration    prometheus.Histogram
	claimRowsTotal      *prometheus.GaugeVec
	requestsTotal       *prometheus.CounterVec
	authEventsTotal     *prometheus.CounterVec
	rateLimitedRequests prometheus.Counter
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		reportsGenerated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reports_generated_total",
				Help: "Total number of report generations",
			},
			[]string{"report", "status"},
		),
		reportDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "report_generation_duration_milliseconds",
				Help:    "Report generation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		reportRows: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "report_rows",
				Help: "Row count of the most recent report generation",
			},
			[]string{"report"},
		),
		claimsGenerated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "synthetic_claims_generated_total",
				Help: "Total number of synthetic claim lines generated",
			},
			[]string{"source"},
		),
		claimGenDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "synthetic_claim_generation_duration_milliseconds",
				Help:    "Synthetic claim generation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		claimRowsTotal: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "claim_rows_total",
				Help: "Current number of claim lines per source table",
			},
			[]string{"source"},
		),
		requestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests by handler and status",
			},
			[]string{"handler", "status"},
		),
		authEventsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event_type"},
		),
		rateLimitedRequests: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "rate_limited_requests_total",
				Help: "Total number of requests rejected by the rate limiter",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	status := tags["status"]

	switch name {
	case "report.generated":
		if report := tags["report"]; report != "" && status != "" {
			m.reportsGenerated.WithLabelValues(report, status).Inc()
		}
	case "claims.generated":
		if source := tags["source"]; source != "" {
			m.claimsGenerated.WithLabelValues(source).Inc()
		}
	case "http.request":
		if handler := tags["handler"]; handler != "" && status != "" {
			m.requestsTotal.WithLabelValues(handler, status).Inc()
		}
	case "authentication_event":
		if eventType := tags["event_type"]; eventType != "" {
			m.authEventsTotal.WithLabelValues(eventType).Inc()
		}
	case "rate_limit.rejected":
		m.rateLimitedRequests.Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "report.generation":
		m.reportDuration.Observe(float64(duration.Milliseconds()))
	case "claims.generation":
		m.claimGenDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "report.rows":
		if report := tags["report"]; report != "" {
			m.reportRows.WithLabelValues(report).Set(value)
		}
	case "claims.rows":
		if source := tags["source"]; source != "" {
			m.claimRowsTotal.WithLabelValues(source).Set(value)
		}
	}
}
