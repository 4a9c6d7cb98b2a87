package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/yndnr/brownhttpd/internal/telemetry/logger"
)

// ErrPoolStarted is returned by Start on a pool that already ran.
var ErrPoolStarted = errors.New("worker pool already started")

// job is one request handed from the accepting goroutine to a worker.
type job struct {
	w    http.ResponseWriter
	r    *http.Request
	done chan struct{}
}

// Pool is a fixed set of workers pulling requests from one shared queue.
//
// Each request is run to completion by exactly one worker. The queue is
// unbuffered, so a request waits until a worker is free to take it.
type Pool struct {
	size int
	next http.Handler
	log  *slog.Logger

	jobs     chan *job
	stopped  chan struct{}
	stopOnce sync.Once
	started  atomic.Bool
	group    errgroup.Group

	pending atomic.Int64
	busy    atomic.Int64
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithPoolLogger sets the logger used for recovered panics.
func WithPoolLogger(l *slog.Logger) PoolOption {
	return func(p *Pool) {
		p.log = l
	}
}

// NewPool creates a pool of size workers running next. Sizes below one
// are raised to one.
func NewPool(size int, next http.Handler, opts ...PoolOption) *Pool {
	if size < 1 {
		size = 1
	}
	p := &Pool{
		size:    size,
		next:    next,
		log:     slog.Default(),
		jobs:    make(chan *job),
		stopped: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Start launches the workers. They run until Stop is called or ctx is
// done.
func (p *Pool) Start(ctx context.Context) error {
	if !p.started.CompareAndSwap(false, true) {
		return ErrPoolStarted
	}
	context.AfterFunc(ctx, p.close)

	for i := 0; i < p.size; i++ {
		id := i
		p.group.Go(func() error {
			p.work(id)
			return nil
		})
	}
	return nil
}

// Stop stops accepting requests and waits for running ones to finish.
func (p *Pool) Stop() {
	p.close()
	p.group.Wait()
}

// ServeHTTP queues the request and blocks until a worker has answered it.
// Once the pool is stopped, or if the client goes away while queued, the
// request is answered 503.
func (p *Pool) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	j := &job{w: w, r: r, done: make(chan struct{})}

	p.pending.Add(1)
	select {
	case p.jobs <- j:
		p.pending.Add(-1)
	case <-p.stopped:
		p.pending.Add(-1)
		http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		return
	case <-r.Context().Done():
		p.pending.Add(-1)
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	<-j.done
}

// Size returns the number of workers.
func (p *Pool) Size() int {
	return p.size
}

// Pending returns the number of requests waiting for a worker.
func (p *Pool) Pending() int {
	return int(p.pending.Load())
}

// Busy returns the number of workers currently running a request.
func (p *Pool) Busy() int {
	return int(p.busy.Load())
}

func (p *Pool) close() {
	p.stopOnce.Do(func() { close(p.stopped) })
}

func (p *Pool) work(id int) {
	for {
		select {
		case <-p.stopped:
			return
		case j := <-p.jobs:
			p.run(id, j)
		}
	}
}

// run serves one job. A panic is answered with 500 and the worker keeps
// going.
func (p *Pool) run(id int, j *job) {
	p.busy.Add(1)
	defer func() {
		if err := recover(); err != nil && err != http.ErrAbortHandler {
			logger.FromContext(j.r.Context(), p.log).Error("worker recovered from panic",
				"worker", id,
				"path", j.r.URL.Path,
				"error", err,
			)
			if rw, ok := j.w.(*responseWriter); !ok || !rw.wroteHeader {
				http.Error(j.w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}
		}
		p.busy.Add(-1)
		close(j.done)
	}()

	p.next.ServeHTTP(j.w, j.r)
}
