package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelKind    = "kind"
	LabelOutcome = "outcome"
)

// Text generation outcomes.
const (
	OutcomeGenerated = "generated"
	OutcomeCached    = "cached"
	OutcomeFallback  = "fallback"
	OutcomeError     = "error"
)

var HTTPLatencyBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nextribe_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "nextribe_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "nextribe_http_requests_in_flight",
			Help: "Current number of HTTP requests being served",
		},
	)
)

// Business Metrics
var (
	TextGenerations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nextribe_textgen_requests_total",
			Help: "Text generation requests by kind and outcome",
		},
		[]string{LabelKind, LabelOutcome},
	)

	ProgressDerivations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nextribe_progress_derivations_total",
			Help: "Country progress records derived, by status",
		},
		[]string{LabelStatus},
	)

	SharePurchases = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nextribe_share_purchases_total",
			Help: "Share purchases by resulting status",
		},
		[]string{LabelStatus},
	)

	SharesSold = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "nextribe_shares_sold_total",
			Help: "Total number of opportunity shares sold",
		},
	)
)
