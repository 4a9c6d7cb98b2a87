package config

import (
	"net"
	"strconv"
	"time"
)

// Config is the root configuration for brownhttpd.
type Config struct {
	Server  ServerSection  `koanf:"server"`
	Process ProcessSection `koanf:"process"`
	Limits  LimitsSection  `koanf:"limits"`
	Log     LogSection     `koanf:"log"`
	Metrics MetricsSection `koanf:"metrics"`
}

// ServerSection configures what is served and where.
type ServerSection struct {
	// Root is the absolute path of the served directory.
	Root string `koanf:"root"`
	// Port is the TCP listen port. 0 picks an ephemeral port.
	Port int `koanf:"port"`
	// IPv6 binds the IPv6 loopback instead of the IPv4 any-address.
	IPv6 bool `koanf:"ipv6"`
	// Threads is the worker pool size.
	Threads int `koanf:"threads"`
	// Index is the per-directory default document.
	Index string `koanf:"index"`
	// Decode selects request path decoding: "narrow" (only %20) or "full".
	Decode string `koanf:"decode"`
}

// ProcessSection configures process-level confinement.
type ProcessSection struct {
	// Daemon detaches into the background before binding.
	Daemon bool `koanf:"daemon"`
	// Chroot confines the process to Root after changing into it.
	Chroot bool `koanf:"chroot"`
}

// LimitsSection configures optional protections. Zero disables each one.
type LimitsSection struct {
	// Rate is the global request rate limit in requests per second.
	Rate float64 `koanf:"rate"`
	// Conns caps simultaneously open connections.
	Conns int `koanf:"conns"`
	// Timeout bounds reading a request and writing its response.
	Timeout time.Duration `koanf:"timeout"`
}

// LogSection configures logging.
type LogSection struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	// Access enables the per-request access line on stdout.
	Access bool `koanf:"access"`
}

// MetricsSection configures the Prometheus endpoint.
type MetricsSection struct {
	// Addr is the listen address for /metrics. Empty disables it.
	Addr string `koanf:"addr"`
}

// Host returns the bind host for the configured address family.
func (s ServerSection) Host() string {
	if s.IPv6 {
		return IPv6Host
	}
	return IPv4Host
}

// Addr returns the listen address, e.g. "0.0.0.0:7878" or "[::1]:7878".
func (s ServerSection) Addr() string {
	return net.JoinHostPort(s.Host(), strconv.Itoa(s.Port))
}
