package command

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/brownhttpd/internal/core/service"
	"github.com/yndnr/brownhttpd/internal/infra/buildinfo"
	"github.com/yndnr/brownhttpd/internal/infra/shutdown"
	"github.com/yndnr/brownhttpd/internal/infra/sysproc"
	"github.com/yndnr/brownhttpd/internal/server/config"
	"github.com/yndnr/brownhttpd/internal/server/httpserver"
	"github.com/yndnr/brownhttpd/internal/server/httpserver/handler"
	"github.com/yndnr/brownhttpd/internal/telemetry/logger"
	"github.com/yndnr/brownhttpd/internal/telemetry/metric"
)

// shutdownTimeout bounds draining in-flight requests on SIGINT/SIGTERM.
const shutdownTimeout = 10 * time.Second

// serve runs the startup sequence and blocks until shutdown.
func serve(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	log, err := initLogger(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	out := c.App.Writer
	servedRoot, err := prepareProcess(cfg, out)
	if err != nil {
		return err
	}
	if servedRoot == "" {
		// parent of a daemonized child
		return nil
	}

	srv := newServer(cfg, servedRoot, out, log)
	if err := srv.Listen(); err != nil {
		return err
	}

	log.Info("starting brownhttpd",
		"version", buildinfo.Version,
		"root", cfg.Server.Root,
		"addr", srv.Addr(),
		"threads", cfg.Server.Threads,
	)

	return srv.Run(c.Context)
}

// initLogger initializes the structured logger on stderr.
func initLogger(cfg *config.Config) (*slog.Logger, error) {
	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: os.Stderr,
	})
	if err != nil {
		return nil, err
	}
	slog.SetDefault(log)
	return log, nil
}

// prepareProcess daemonizes, changes into the root and chroots, in that
// order. It returns the served root as seen after confinement, or "" in
// the parent of a daemonized process.
func prepareProcess(cfg *config.Config, out io.Writer) (string, error) {
	if cfg.Process.Daemon {
		if !sysproc.IsDaemonChild() {
			fmt.Fprintln(out, "Forking to background...")
		}
		parent, err := sysproc.Daemonize()
		if err != nil {
			return "", err
		}
		if parent {
			return "", nil
		}
	}

	root := cfg.Server.Root
	if err := sysproc.Chdir(root); err != nil {
		return "", err
	}

	if cfg.Process.Chroot {
		if err := sysproc.Chroot(root); err != nil {
			return "", err
		}
		fmt.Fprintf(out, "Chrooted to '%s'\n", root)
		root = "/"
	}

	fmt.Fprintf(out, "Serving directory '%s'\n", cfg.Server.Root)
	return root, nil
}

// Server is the assembled file server: responders behind the middleware
// chain and worker pool, plus the optional metrics listener.
type Server struct {
	out  io.Writer
	log  *slog.Logger
	pool *httpserver.Pool
	http *httpserver.Server

	metrics *httpserver.Server
}

// newServer wires the request pipeline for servedRoot.
func newServer(cfg *config.Config, servedRoot string, out io.Writer, log *slog.Logger) *Server {
	var reg *metric.Registry
	if cfg.Metrics.Addr != "" {
		reg = metric.NewRegistry()
	}

	codec := service.CodecFor(cfg.Server.Decode)
	router := service.NewRouter(service.NewRootFs(servedRoot),
		service.WithIndex(cfg.Server.Index),
		service.WithCodec(codec),
	)
	responders := handler.New(router,
		handler.WithLogger(log),
		handler.WithMetrics(reg),
	)

	h, pool := httpserver.NewRouter(&httpserver.RouterConfig{
		Handler:   responders,
		Workers:   cfg.Server.Threads,
		Logger:    log,
		Access:    logger.NewAccessLog(out, cfg.Log.Access),
		DecodeURL: codec.Decode,
		Metrics:   reg,
		RateLimit: cfg.Limits.Rate,
	})

	s := &Server{
		out:  out,
		log:  log,
		pool: pool,
		http: httpserver.New(cfg.Server.Addr(), h,
			httpserver.WithTimeout(cfg.Limits.Timeout),
			httpserver.WithMaxConns(cfg.Limits.Conns),
			httpserver.WithErrorLog(log),
		),
	}

	if reg != nil {
		reg.MustRegister(metric.NewCollector(pool))
		s.metrics = httpserver.New(cfg.Metrics.Addr, httpserver.NewMetricsHandler(reg),
			httpserver.WithErrorLog(log),
		)
	}

	return s
}

// Listen binds the file listener and, if configured, the metrics listener.
func (s *Server) Listen() error {
	if err := s.http.Listen(); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Listening on http://%s/\n", s.http.Addr())

	if s.metrics != nil {
		if err := s.metrics.Listen(); err != nil {
			return err
		}
		s.log.Info("metrics listening", "addr", s.metrics.Addr())
	}
	return nil
}

// Addr returns the bound file server address.
func (s *Server) Addr() string {
	return s.http.Addr()
}

// Run serves until SIGINT/SIGTERM or ctx is done, then drains. A listener
// failure stops the server and is returned.
func (s *Server) Run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := s.pool.Start(ctx); err != nil {
		return err
	}

	stopper := shutdown.NewHandler(shutdownTimeout)
	stopper.OnShutdown(func(context.Context) error {
		s.log.Debug("stopping workers")
		s.pool.Stop()
		return nil
	})
	stopper.OnShutdown(func(ctx context.Context) error {
		s.log.Debug("shutting down HTTP server")
		return s.http.Shutdown(ctx)
	})
	if s.metrics != nil {
		stopper.OnShutdown(func(ctx context.Context) error {
			return s.metrics.Shutdown(ctx)
		})
	}

	serveErr := make(chan error, 2)
	start := func(srv *httpserver.Server) {
		go func() {
			if err := srv.Serve(); err != nil {
				serveErr <- err
				cancel()
			}
		}()
	}
	start(s.http)
	if s.metrics != nil {
		start(s.metrics)
	}

	if err := stopper.Wait(ctx); err != nil {
		s.log.Error("shutdown error", "error", err)
		return err
	}

	select {
	case err := <-serveErr:
		return fmt.Errorf("serve: %w", err)
	default:
	}

	if sig := stopper.Signal(); sig != nil {
		s.log.Info("server stopped", "signal", sig.String())
	}
	return nil
}
