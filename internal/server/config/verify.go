package config

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/yndnr/brownhttpd/internal/core/domain"
	"github.com/yndnr/brownhttpd/internal/telemetry/logger"
)

// Verify validates the configuration. Every failure wraps
// domain.ErrInvalidConfig.
func Verify(cfg *Config) error {
	var errs []error

	errs = append(errs, verifyServer(&cfg.Server)...)
	errs = append(errs, verifyLimits(&cfg.Limits)...)
	errs = append(errs, verifyLog(&cfg.Log)...)
	errs = append(errs, verifyMetrics(&cfg.Metrics)...)

	if err := errors.Join(errs...); err != nil {
		return domain.ErrInvalidConfig.WithDetails(err.Error()).Wrap(err)
	}
	return nil
}

func verifyServer(s *ServerSection) []error {
	var errs []error

	if s.Root == "" {
		errs = append(errs, errors.New("server.root is required"))
	}
	if s.Port < 0 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port %d out of range 0-65535", s.Port))
	}
	if s.Threads < 1 {
		errs = append(errs, fmt.Errorf("server.threads must be at least 1, got %d", s.Threads))
	}
	if s.Index == "" {
		errs = append(errs, errors.New("server.index must not be empty"))
	} else if strings.ContainsAny(s.Index, `/\`) || s.Index == "." || s.Index == ".." {
		errs = append(errs, fmt.Errorf("server.index %q must be a plain file name", s.Index))
	}
	if s.Decode != DecodeNarrow && s.Decode != DecodeFull {
		errs = append(errs, fmt.Errorf("server.decode must be %q or %q, got %q", DecodeNarrow, DecodeFull, s.Decode))
	}

	return errs
}

func verifyLimits(l *LimitsSection) []error {
	var errs []error

	if l.Rate < 0 {
		errs = append(errs, fmt.Errorf("limits.rate must not be negative, got %v", l.Rate))
	}
	if l.Conns < 0 {
		errs = append(errs, fmt.Errorf("limits.conns must not be negative, got %d", l.Conns))
	}
	if l.Timeout < 0 {
		errs = append(errs, fmt.Errorf("limits.timeout must not be negative, got %v", l.Timeout))
	}

	return errs
}

func verifyLog(l *LogSection) []error {
	var errs []error

	if !logger.ValidLevel(l.Level) {
		errs = append(errs, fmt.Errorf("log.level %q is not one of debug, info, warn, error", l.Level))
	}
	if !logger.ValidFormat(l.Format) {
		errs = append(errs, fmt.Errorf("log.format %q is not one of json, text", l.Format))
	}

	return errs
}

func verifyMetrics(m *MetricsSection) []error {
	if m.Addr == "" {
		return nil
	}
	if _, _, err := net.SplitHostPort(m.Addr); err != nil {
		return []error{fmt.Errorf("metrics.addr %q: %w", m.Addr, err)}
	}
	return nil
}
