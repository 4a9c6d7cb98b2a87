package config

import (
	"path/filepath"
	"strings"
)

// Sanitize returns a normalized copy of cfg.
//
// A worker count below one means sequential service and becomes one. Root
// is cleaned, and made absolute when possible. Mode names are lower-cased.
// The input is not modified.
func Sanitize(cfg *Config) *Config {
	out := *cfg

	if out.Server.Threads < 1 {
		out.Server.Threads = 1
	}
	if out.Server.Root != "" {
		if abs, err := filepath.Abs(out.Server.Root); err == nil {
			out.Server.Root = abs
		} else {
			out.Server.Root = filepath.Clean(out.Server.Root)
		}
	}
	out.Server.Decode = strings.ToLower(strings.TrimSpace(out.Server.Decode))
	if out.Server.Decode == "" {
		out.Server.Decode = DefaultDecode
	}
	out.Log.Level = strings.ToLower(out.Log.Level)
	out.Log.Format = strings.ToLower(out.Log.Format)

	return &out
}
