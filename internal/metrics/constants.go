package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameSearchesPerformed = "searches_performed_total"
	MetricNameItemsCarted       = "items_carted_total"
	MetricNameRequestsSubmitted = "requests_submitted_total"
	MetricNameRequestsResolved  = "requests_resolved_total"
	MetricNameIndexRebuilds     = "index_rebuilds_total"
	MetricNameIndexedItems      = "indexed_items"
	MetricNameIndexedSpells     = "indexed_spells"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextSearchesPerformed = "Total number of bank searches performed"
	HelpTextItemsCarted       = "Total number of items added to carts"
	HelpTextRequestsSubmitted = "Total number of bank requests submitted"
	HelpTextRequestsResolved  = "Total number of staff resolutions by outcome"
	HelpTextIndexRebuilds     = "Total number of inventory index rebuilds"
	HelpTextIndexedItems      = "Number of items in the current inventory index"
	HelpTextIndexedSpells     = "Number of spells in the current inventory index"
)

// Metric label names
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelOutcome = "outcome"
	LabelSource  = "source"
)

// HTTPLatencyBuckets are the histogram buckets for request latency
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}
