// Package logger provides logging for brownhttpd.
//
// Files:
//
//   - logger.go: structured diagnostics (log/slog, JSON or text) on stderr
//   - access.go: the per-request access line "<METHOD> '<url>' => <status>"
//     on stdout, one line per response
//   - context.go: request-scoped logger and request ID propagation
package logger
