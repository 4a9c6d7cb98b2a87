package metric

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "brownhttpd"

// Registry holds all application metrics.
type Registry struct {
	registry *prometheus.Registry

	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	BytesServed     prometheus.Counter
	RateLimited     prometheus.Counter
	WriteErrors     prometheus.Counter
}

// NewRegistry creates a registry with request instruments plus the Go
// runtime and process collectors.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Requests answered, by status code and routing outcome.",
		}, []string{"code", "outcome"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "Time from dequeue to response completion, by routing outcome.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"outcome"}),
		BytesServed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bytes_served_total",
			Help:      "Response body bytes written.",
		}),
		RateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the global rate limit.",
		}),
		WriteErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "write_errors_total",
			Help:      "Responses abandoned because the client connection failed.",
		}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.RequestsTotal,
		r.RequestDuration,
		r.BytesServed,
		r.RateLimited,
		r.WriteErrors,
	)

	return r
}

// MustRegister registers additional collectors.
func (r *Registry) MustRegister(cs ...prometheus.Collector) {
	r.registry.MustRegister(cs...)
}

// Handler returns the /metrics handler for this registry.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{
		Registry: r.registry,
	})
}

// ObserveRequest records one answered request.
func (r *Registry) ObserveRequest(outcome string, code int, d time.Duration) {
	if r == nil {
		return
	}
	r.RequestsTotal.WithLabelValues(strconv.Itoa(code), outcome).Inc()
	r.RequestDuration.WithLabelValues(outcome).Observe(d.Seconds())
}

// AddBytes records response body bytes written.
func (r *Registry) AddBytes(n int64) {
	if r == nil || n <= 0 {
		return
	}
	r.BytesServed.Add(float64(n))
}

// IncRateLimited counts one rejected request.
func (r *Registry) IncRateLimited() {
	if r == nil {
		return
	}
	r.RateLimited.Inc()
}

// IncWriteError counts one failed response write.
func (r *Registry) IncWriteError() {
	if r == nil {
		return
	}
	r.WriteErrors.Inc()
}
