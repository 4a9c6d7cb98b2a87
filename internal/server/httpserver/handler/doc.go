// Package handler provides the responders for brownhttpd.
//
// Handler routes each request through service.Router and dispatches on
// the outcome:
//
//   - file and index: the file bytes with status 200
//   - listing: a generated HTML page with status 200
//   - not found: a fixed HTML page echoing the requested URL, status 404
//
// Any failure after routing (the file vanished, the directory became
// unreadable) degrades to the 404 responder. Failed writes to the client
// are logged and counted, never fatal.
package handler
