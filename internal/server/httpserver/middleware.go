package httpserver

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/oklog/ulid/v2"
	"golang.org/x/time/rate"

	"github.com/yndnr/brownhttpd/internal/infra/buildinfo"
	"github.com/yndnr/brownhttpd/internal/server/httpserver/handler"
	"github.com/yndnr/brownhttpd/internal/telemetry/logger"
	"github.com/yndnr/brownhttpd/internal/telemetry/metric"
)

// HeaderRequestID carries the request ID on responses.
const HeaderRequestID = "X-Request-ID"

// Middleware wraps an http.Handler with additional functionality.
type Middleware func(http.Handler) http.Handler

// Chain chains multiple middlewares together. The first middleware is the
// outermost.
func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}

// RequestID assigns a ULID to each request. An incoming X-Request-ID is
// kept as is. Downstream code logs through logger.FromContext, which
// carries the ID.
func RequestID(log *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(HeaderRequestID)
			if requestID == "" {
				requestID = ulid.Make().String()
			}

			w.Header().Set(HeaderRequestID, requestID)

			ctx := logger.WithRequest(r.Context(), log, requestID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ServerHeader sets the Server response header.
func ServerHeader(value string) Middleware {
	if value == "" {
		value = buildinfo.ServerHeader()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Server", value)
			next.ServeHTTP(w, r)
		})
	}
}

// Recover recovers from panics and answers 500 if nothing was written yet.
func Recover(log *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					if err == http.ErrAbortHandler {
						panic(err)
					}
					logger.FromContext(r.Context(), log).Error("panic recovered",
						"error", err,
						"path", r.URL.Path,
					)
					if rw, ok := w.(*responseWriter); !ok || !rw.wroteHeader {
						http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
					}
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// RateLimit applies a global token bucket of requestsPerSecond with the
// given burst. Excess requests are answered 429. A non-positive rate
// disables the limit.
func RateLimit(requestsPerSecond float64, burst int, metrics *metric.Registry) Middleware {
	if requestsPerSecond <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	if burst < 1 {
		burst = max(1, int(requestsPerSecond))
	}
	limiter := rate.NewLimiter(rate.Limit(requestsPerSecond), burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				metrics.IncRateLimited()
				w.Header().Set("Retry-After", "1")
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ObserveConfig configures Observe.
type ObserveConfig struct {
	// Access receives the per-request access line. Nil disables it.
	Access *logger.AccessLog
	// DecodeURL maps the raw request URI to the form shown in the access
	// line. Nil shows it verbatim.
	DecodeURL func(string) string
	// Metrics records request counts and durations. Nil disables it.
	Metrics *metric.Registry
	// Logger receives a debug record per request.
	Logger *slog.Logger
}

// Observe writes one access line and one metrics observation per request.
// Requests that never reached a responder (rate limited, rejected by the
// pool, panicked) are labeled "rejected".
func Observe(cfg ObserveConfig) Middleware {
	decode := cfg.DecodeURL
	if decode == nil {
		decode = func(s string) string { return s }
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx, trace := handler.NewTraceContext(r.Context())
			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			defer func() {
				outcome := "rejected"
				if trace.Handled {
					outcome = trace.Outcome.String()
				}
				duration := time.Since(start)

				cfg.Access.Log(r.Method, decode(r.RequestURI), wrapped.statusCode)
				cfg.Metrics.ObserveRequest(outcome, wrapped.statusCode, duration)
				logger.FromContext(r.Context(), log).Debug("request completed",
					"method", r.Method,
					"uri", r.RequestURI,
					"status", wrapped.statusCode,
					"outcome", outcome,
					"bytes", wrapped.written,
					"duration", duration,
				)
			}()

			next.ServeHTTP(wrapped, r.WithContext(ctx))
		})
	}
}

// responseWriter wraps http.ResponseWriter to capture status code and
// body size.
type responseWriter struct {
	http.ResponseWriter
	statusCode  int
	wroteHeader bool
	written     int64
}

func (w *responseWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.statusCode = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *responseWriter) Write(p []byte) (int, error) {
	w.wroteHeader = true
	n, err := w.ResponseWriter.Write(p)
	w.written += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *responseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
