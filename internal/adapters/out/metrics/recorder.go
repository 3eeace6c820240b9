// Package metrics exposes depot outcomes and HTTP traffic as Prometheus
// metrics on a private registry.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"depot/internal/core/domain/model/record"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "depot"

// Recorder implements ports.Metrics.
type Recorder struct {
	registry *prometheus.Registry

	parcelsReleased  *prometheus.CounterVec
	feesCharged      *prometheus.HistogramVec
	parcelsNotFound  *prometheus.CounterVec
	emptyQueueEvents prometheus.Counter

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// NewRecorder creates a recorder with its own registry, including Go and process collectors.
func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	r := &Recorder{
		registry: registry,
		parcelsReleased: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "parcels_released_total",
				Help:      "Parcels that left the depot, by how they left.",
			},
			[]string{"kind"},
		),
		feesCharged: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "fee_dollars",
				Help:      "Fees charged for released parcels.",
				Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
			},
			[]string{"kind"},
		),
		parcelsNotFound: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "parcels_not_found_total",
				Help:      "Requests for parcels that were not in the depot.",
			},
			[]string{"kind"},
		),
		emptyQueueEvents: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "queue_empty_total",
				Help:      "Processing attempts made while no customer was queued.",
			},
		),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests.",
			},
			[]string{"method", "path", "status"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
	}

	registry.MustRegister(
		r.parcelsReleased,
		r.feesCharged,
		r.parcelsNotFound,
		r.emptyQueueEvents,
		r.httpRequests,
		r.httpRequestDuration,
	)
	return r
}

// ParcelReleased counts a released parcel and observes its fee.
func (r *Recorder) ParcelReleased(kind record.Kind, fee float64) {
	r.parcelsReleased.WithLabelValues(kind.String()).Inc()
	r.feesCharged.WithLabelValues(kind.String()).Observe(fee)
}

// ParcelNotFound counts a release attempt for a missing parcel.
func (r *Recorder) ParcelNotFound(kind record.Kind) {
	r.parcelsNotFound.WithLabelValues(kind.String()).Inc()
}

// QueueEmpty counts a processing attempt on an empty queue.
func (r *Recorder) QueueEmpty() {
	r.emptyQueueEvents.Inc()
}

// RecordHTTPRequest counts one served request. path should be the route
// pattern, not the raw URL.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	r.httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	r.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// Registry returns the registry backing Handler.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}
