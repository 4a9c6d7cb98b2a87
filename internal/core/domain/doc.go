// Package domain defines the core domain models for brownhttpd.
//
// Domain models are pure values without any IO dependencies. This
// package contains:
//
//   - Outcome: the routing decision for a request path
//   - DirEntry: a single row of a directory listing
//   - Errors: domain-specific error definitions
package domain
