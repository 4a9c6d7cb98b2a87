package httpserver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// waitFor polls cond until it holds or the deadline passes.
func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met before deadline")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func startPool(t *testing.T, size int, h http.Handler) *Pool {
	t.Helper()
	p := NewPool(size, h)
	if err := p.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	t.Cleanup(p.Stop)
	return p
}

func TestNewPool_MinimumSize(t *testing.T) {
	for _, size := range []int{-3, 0, 1} {
		if got := NewPool(size, http.NotFoundHandler()).Size(); got != 1 {
			t.Errorf("NewPool(%d).Size() = %d, want 1", size, got)
		}
	}
}

func TestPool_StartTwice(t *testing.T) {
	p := startPool(t, 1, http.NotFoundHandler())
	if err := p.Start(context.Background()); !errors.Is(err, ErrPoolStarted) {
		t.Errorf("second Start = %v, want %v", err, ErrPoolStarted)
	}
}

func TestPool_SingleWorkerIsSequential(t *testing.T) {
	var running, peak atomic.Int32
	h := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		n := running.Add(1)
		for {
			old := peak.Load()
			if n <= old || peak.CompareAndSwap(old, n) {
				break
			}
		}
		time.Sleep(2 * time.Millisecond)
		running.Add(-1)
		w.WriteHeader(http.StatusOK)
	})
	p := startPool(t, 1, h)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec := httptest.NewRecorder()
			p.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
			if rec.Code != http.StatusOK {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
			}
		}()
	}
	wg.Wait()

	if got := peak.Load(); got != 1 {
		t.Errorf("peak concurrency = %d, want 1", got)
	}
}

func TestPool_WorkersRunConcurrently(t *testing.T) {
	const size = 4
	started := make(chan struct{}, size)
	release := make(chan struct{})
	h := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		started <- struct{}{}
		<-release
		w.WriteHeader(http.StatusNoContent)
	})
	p := startPool(t, size, h)

	var wg sync.WaitGroup
	for i := 0; i < size; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		}()
	}

	for i := 0; i < size; i++ {
		select {
		case <-started:
		case <-time.After(5 * time.Second):
			t.Fatalf("only %d of %d workers started", i, size)
		}
	}
	if got := p.Busy(); got != size {
		t.Errorf("Busy() = %d, want %d", got, size)
	}
	close(release)
	wg.Wait()
}

func TestPool_Pending(t *testing.T) {
	release := make(chan struct{})
	h := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-release
	})
	p := startPool(t, 1, h)

	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		}()
	}

	waitFor(t, func() bool { return p.Busy() == 1 && p.Pending() == 2 })
	close(release)
	wg.Wait()

	if got := p.Pending(); got != 0 {
		t.Errorf("Pending() = %d, want 0", got)
	}
}

func TestPool_PanicIsRecovered(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/boom" {
			panic("boom")
		}
		w.WriteHeader(http.StatusOK)
	})
	p := startPool(t, 1, h)

	rec := httptest.NewRecorder()
	p.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("panic status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}

	// the worker survives
	rec = httptest.NewRecorder()
	p.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("status after panic = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestPool_StoppedAnswers503(t *testing.T) {
	p := NewPool(2, http.NotFoundHandler())
	if err := p.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	p.Stop()

	rec := httptest.NewRecorder()
	p.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}
}

func TestPool_ContextCancelStops(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := NewPool(1, http.NotFoundHandler())
	if err := p.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	cancel()

	done := make(chan struct{})
	go func() {
		p.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Stop did not return after context cancel")
	}
}

func TestPool_ClientGoneWhileQueued(t *testing.T) {
	release := make(chan struct{})
	h := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-release
	})
	p := startPool(t, 1, h)
	defer close(release)

	go p.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	waitFor(t, func() bool { return p.Busy() == 1 })

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)
	done := make(chan struct{})
	go func() {
		p.ServeHTTP(httptest.NewRecorder(), req)
		close(done)
	}()
	waitFor(t, func() bool { return p.Pending() == 1 })
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("queued request did not return after its context was cancelled")
	}
}
