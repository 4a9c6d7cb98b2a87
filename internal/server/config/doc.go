// Package config defines the server configuration structure.
//
// A Config is assembled once at startup (defaults, then environment, then
// command-line flags), sanitized, verified, and from then on only read.
// It is passed by pointer into the router, responders and server; nothing
// mutates it after the listener starts.
package config
