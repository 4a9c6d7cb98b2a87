// Package shutdown provides graceful shutdown for brownhttpd.
//
// A Handler waits for SIGINT or SIGTERM, or for its context to end when
// a listener fails, then runs the registered cleanup hooks in reverse
// order of registration under a common timeout.
//
// Usage:
//
//	h := shutdown.NewHandler(10 * time.Second)
//	h.OnShutdown(srv.Shutdown)
//	err := h.Wait(ctx)
package shutdown
