// Package httpserver provides the HTTP server for brownhttpd.
//
// The request path is:
//
//	listener (optionally capped by netutil.LimitListener)
//	  -> RequestID -> ServerHeader -> Observe -> Recover -> RateLimit
//	  -> Pool (fixed set of workers)
//	  -> handler.Handler
//
// Pool hands each request to exactly one worker, which runs it to
// completion before taking the next. With one worker requests are served
// strictly one at a time.
//
// Observe writes the access line and records metrics exactly once per
// request, whatever produced the response.
package httpserver
