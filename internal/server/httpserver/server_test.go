package httpserver

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/yndnr/brownhttpd/internal/core/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNew(t *testing.T) {
	s := New("127.0.0.1:0", okHandler(), WithTimeout(3*time.Second), WithMaxConns(5))
	if s == nil {
		t.Fatal("New returned nil")
	}
	if s.httpServer.ReadTimeout != 3*time.Second || s.httpServer.WriteTimeout != 3*time.Second {
		t.Errorf("timeouts = %v/%v, want 3s", s.httpServer.ReadTimeout, s.httpServer.WriteTimeout)
	}
	if s.maxConns != 5 {
		t.Errorf("maxConns = %d, want 5", s.maxConns)
	}
	if s.Addr() != "127.0.0.1:0" {
		t.Errorf("Addr() before Listen = %q", s.Addr())
	}
}

func TestServer_ListenBindError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer ln.Close()

	s := New(ln.Addr().String(), okHandler())
	err = s.Listen()
	if !errors.Is(err, domain.ErrBind) {
		t.Errorf("Listen on busy port = %v, want ErrBind", err)
	}
}

func TestServer_ServeAndShutdown(t *testing.T) {
	s := New("127.0.0.1:0", okHandler(), WithMaxConns(2), WithErrorLog(discardLogger()))
	if err := s.Listen(); err != nil {
		t.Fatalf("Listen: %v", err)
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- s.Serve()
	}()

	resp, err := http.Get("http://" + s.Addr() + "/")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		t.Errorf("Shutdown error: %v", err)
	}

	select {
	case err := <-errChan:
		if err != nil {
			t.Errorf("Serve returned unexpected error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Error("timeout waiting for Serve to return")
	}
}
