// Package buildinfo provides build information for brownhttpd.
//
// Values are injected at build time via ldflags:
//
//	go build -ldflags "-X github.com/yndnr/brownhttpd/internal/infra/buildinfo.Version=v1.0.0"
//
// The version also names the server in the Server response header.
package buildinfo
