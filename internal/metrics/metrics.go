package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	SearchesPerformed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSearchesPerformed,
			Help: HelpTextSearchesPerformed,
		},
	)

	ItemsCarted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameItemsCarted,
			Help: HelpTextItemsCarted,
		},
	)

	RequestsSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRequestsSubmitted,
			Help: HelpTextRequestsSubmitted,
		},
		[]string{LabelSource},
	)

	RequestsResolved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRequestsResolved,
			Help: HelpTextRequestsResolved,
		},
		[]string{LabelOutcome},
	)

	IndexRebuilds = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameIndexRebuilds,
			Help: HelpTextIndexRebuilds,
		},
	)

	IndexedItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameIndexedItems,
			Help: HelpTextIndexedItems,
		},
	)

	IndexedSpells = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameIndexedSpells,
			Help: HelpTextIndexedSpells,
		},
	)
)
