package httpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/net/netutil"

	"github.com/yndnr/brownhttpd/internal/core/domain"
)

// Server represents the HTTP server.
type Server struct {
	httpServer *http.Server
	handler    http.Handler
	listener   net.Listener
	maxConns   int
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithTimeout sets read, write and idle timeouts. Zero leaves connections
// without deadlines.
func WithTimeout(d time.Duration) ServerOption {
	return func(s *Server) {
		s.httpServer.ReadTimeout = d
		s.httpServer.WriteTimeout = d
		s.httpServer.IdleTimeout = d
	}
}

// WithMaxConns caps the number of simultaneously open connections.
// Zero means unlimited.
func WithMaxConns(n int) ServerOption {
	return func(s *Server) {
		s.maxConns = n
	}
}

// WithErrorLog routes net/http's internal errors to l at warn level.
func WithErrorLog(l *slog.Logger) ServerOption {
	return func(s *Server) {
		s.httpServer.ErrorLog = slog.NewLogLogger(l.Handler(), slog.LevelWarn)
	}
}

// New creates a new HTTP server.
func New(addr string, handler http.Handler, opts ...ServerOption) *Server {
	s := &Server{
		httpServer: &http.Server{
			Addr:    addr,
			Handler: handler,
		},
		handler: handler,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Listen binds the listening socket without serving yet.
func (s *Server) Listen() error {
	if s.listener != nil {
		return nil
	}
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return domain.ErrBind.WithDetails(fmt.Sprintf("%s: %v", s.httpServer.Addr, err)).Wrap(err)
	}
	if s.maxConns > 0 {
		ln = netutil.LimitListener(ln, s.maxConns)
	}
	s.listener = ln
	return nil
}

// Addr returns the bound address, or the configured one before Listen.
func (s *Server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.httpServer.Addr
}

// Serve accepts connections until Shutdown. It binds first if Listen was
// not called. A clean shutdown returns nil.
func (s *Server) Serve() error {
	if err := s.Listen(); err != nil {
		return err
	}
	err := s.httpServer.Serve(s.listener)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
