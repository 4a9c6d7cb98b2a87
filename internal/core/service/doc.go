// Package service provides the request routing logic for brownhttpd.
//
// This package contains:
//
//   - Router: decodes a request path, resolves it against the served root
//     and classifies it as file, index, listing, or not found
//   - Lister: enumerates a directory for the listing renderer
//
// Both operate on an afero.Fs rooted at the served root, so they never
// touch process-global state and are safe for concurrent use by any number
// of workers.
package service
