package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_http_requests_total",
			Help: "Total number of HTTP requests handled by the gateway",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gateway_http_request_duration_seconds",
			Help:    "Duration of HTTP request handling in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	FeedbackRatings = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "gateway_feedback_rating",
			Help:    "Distribution of submitted feedback ratings",
			Buckets: []float64{0, 1, 2, 3, 4, 5},
		},
	)

	FeedbackSinkFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gateway_feedback_sink_failures_total",
			Help: "Total number of feedback records a sink failed to accept",
		},
	)
)
