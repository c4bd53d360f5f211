// Package observability provides Prometheus metrics for alignment runs and the
// HTTP service.
//
// Metrics:
//   - nwalign_align_runs_total{source}: completed alignments (cli, http)
//   - nwalign_align_duration_seconds{source}: wall time per alignment
//   - nwalign_align_matrix_cells{source}: (n+1)*(m+1) cells filled per alignment
//   - nwalign_http_requests_total{path,status}: served requests
//   - nwalign_http_request_duration_seconds{path}: request latency
//
// All methods are safe for concurrent use and are no-ops on a nil *Metrics.
package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "nwalign"

// Source labels.
const (
	SourceCLI  = "cli"
	SourceHTTP = "http"
)

// Metrics holds the registered collectors.
type Metrics struct {
	RunsTotal       *prometheus.CounterVec
	RunDuration     *prometheus.HistogramVec
	MatrixCells     *prometheus.HistogramVec
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// New registers all collectors with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		RunsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "align",
			Name:      "runs_total",
			Help:      "Total number of completed alignments by source",
		}, []string{"source"}),
		RunDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "align",
			Name:      "duration_seconds",
			Help:      "Wall time spent per alignment",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 12),
		}, []string{"source"}),
		MatrixCells: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "align",
			Name:      "matrix_cells",
			Help:      "Score matrix cells filled per alignment",
			Buckets:   prometheus.ExponentialBuckets(1, 10, 10),
		}, []string{"source"}),
		RequestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by path and status",
		}, []string{"path", "status"}),
		RequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by path",
			Buckets:   prometheus.DefBuckets,
		}, []string{"path"}),
	}
}

// ObserveAlignment records one finished alignment of lengths n and m.
func (m *Metrics) ObserveAlignment(source string, n, mm int, d time.Duration) {
	if m == nil {
		return
	}
	m.RunsTotal.WithLabelValues(source).Inc()
	m.RunDuration.WithLabelValues(source).Observe(d.Seconds())
	m.MatrixCells.WithLabelValues(source).Observe(float64((n + 1) * (mm + 1)))
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(path string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(path, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(path).Observe(d.Seconds())
}
