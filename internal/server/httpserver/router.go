package httpserver

import (
	"log/slog"
	"net/http"

	"github.com/yndnr/brownhttpd/internal/telemetry/logger"
	"github.com/yndnr/brownhttpd/internal/telemetry/metric"
)

// RouterConfig holds configuration for the request pipeline.
type RouterConfig struct {
	// Handler answers requests once a worker picks them up.
	Handler http.Handler

	// Workers is the worker pool size.
	Workers int

	// Logger for diagnostics.
	Logger *slog.Logger

	// Access receives the per-request access line.
	Access *logger.AccessLog

	// DecodeURL maps the raw request URI to its access-line form.
	DecodeURL func(string) string

	// Metrics records request metrics. Nil disables them.
	Metrics *metric.Registry

	// RateLimit is the global request rate in requests/second (0 = off).
	RateLimit float64

	// ServerName is the Server header value; empty uses the build version.
	ServerName string
}

// NewRouter assembles the middleware chain in front of a worker pool.
// The pool is returned unstarted.
func NewRouter(cfg *RouterConfig) (http.Handler, *Pool) {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	pool := NewPool(cfg.Workers, cfg.Handler, WithPoolLogger(log))

	h := Chain(pool,
		RequestID(log),
		ServerHeader(cfg.ServerName),
		Observe(ObserveConfig{
			Access:    cfg.Access,
			DecodeURL: cfg.DecodeURL,
			Metrics:   cfg.Metrics,
			Logger:    log,
		}),
		Recover(log),
		RateLimit(cfg.RateLimit, 0, cfg.Metrics),
	)
	return h, pool
}

// NewMetricsHandler serves reg on /metrics. It is meant for its own
// listener, apart from the served files.
func NewMetricsHandler(reg *metric.Registry) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("GET /metrics", reg.Handler())
	return mux
}
