package handler

import (
	"log/slog"
	"net/http"

	"github.com/yndnr/brownhttpd/internal/core/domain"
	"github.com/yndnr/brownhttpd/internal/core/listing"
	"github.com/yndnr/brownhttpd/internal/core/service"
	"github.com/yndnr/brownhttpd/internal/telemetry/logger"
	"github.com/yndnr/brownhttpd/internal/telemetry/metric"
)

// Handler answers every request from the served root.
type Handler struct {
	router   *service.Router
	renderer *listing.Renderer
	logger   *slog.Logger
	metrics  *metric.Registry
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the diagnostics logger used outside a request-scoped one.
func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		h.logger = l
	}
}

// WithMetrics sets the metrics registry for byte and write-error counts.
func WithMetrics(m *metric.Registry) Option {
	return func(h *Handler) {
		h.metrics = m
	}
}

// New creates a Handler over router. Listing hrefs are encoded with the
// router's path codec.
func New(router *service.Router, opts ...Option) *Handler {
	h := &Handler{
		router:   router,
		renderer: listing.New(listing.WithHref(router.Codec().Encode)),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestPath := r.URL.EscapedPath()
	out := h.router.Route(requestPath)

	log := h.requestLogger(r)
	log.Debug("routed", "path", requestPath, "outcome", out.Kind.String(), "target", out.Path)

	var (
		kind domain.OutcomeKind
		err  error
	)
	switch out.Kind {
	case domain.OutcomeFile, domain.OutcomeIndex:
		kind, err = h.serveFile(w, r, out)
	case domain.OutcomeListing:
		kind, err = h.serveListing(w, r, requestPath, out.Path)
	default:
		if out.Err != nil {
			log.Debug("not found", "code", domain.GetErrorCode(out.Err), "error", out.Err)
		}
		kind, err = h.serveNotFound(w, r)
	}

	if err != nil {
		h.metrics.IncWriteError()
		log.Warn("response write failed", "path", requestPath, "error", err)
	}

	TraceFromContext(r.Context()).record(kind, err)
}

func (h *Handler) requestLogger(r *http.Request) *slog.Logger {
	return logger.FromContext(r.Context(), h.logger)
}
