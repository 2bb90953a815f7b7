package jsonrpc

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusReporter is the requestReporter MetricsReporterMiddleware
// drives when method timing is enabled (§6.3 features.method_timing),
// grounded on subscription.Manager's explicit-construction +
// Collectors() pattern rather than promauto's implicit global registry.
type PrometheusReporter struct {
	requestsTotal *prometheus.CounterVec
	errorsTotal   *prometheus.CounterVec
	duration      *prometheus.HistogramVec
}

// NewPrometheusReporter builds a PrometheusReporter. Its collectors
// must be registered by the caller (Collectors) before first use.
func NewPrometheusReporter() *PrometheusReporter {
	return &PrometheusReporter{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gateway_rpc_requests_total",
			Help: "JSON-RPC requests handled, by method.",
		}, []string{"method"}),
		errorsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gateway_rpc_request_errors_total",
			Help: "JSON-RPC requests that returned an error, by method and code.",
		}, []string{"method", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gateway_rpc_request_duration_seconds",
			Help:    "JSON-RPC request handling latency, by method.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),
	}
}

// Collectors exposes the reporter's prometheus collectors for
// registration by the composition root.
func (r *PrometheusReporter) Collectors() []prometheus.Collector {
	return []prometheus.Collector{r.requestsTotal, r.errorsTotal, r.duration}
}

func (r *PrometheusReporter) ReportRequest(method string) {
	r.requestsTotal.WithLabelValues(method).Inc()
}

func (r *PrometheusReporter) ReportRequestError(method string, errCode int) {
	r.errorsTotal.WithLabelValues(method, strconv.Itoa(errCode)).Inc()
}

func (r *PrometheusReporter) ReportRequestDuration(method string, duration time.Duration) {
	r.duration.WithLabelValues(method).Observe(duration.Seconds())
}
