package handler

import (
	"context"

	"github.com/yndnr/brownhttpd/internal/core/domain"
)

type traceKey struct{}

// Trace records what the responders did with a request, for middleware
// that runs around them.
type Trace struct {
	// Outcome is the final responder used. A file outcome that fell back
	// to 404 reports OutcomeNotFound.
	Outcome domain.OutcomeKind
	// Handled is set once a responder ran.
	Handled bool
	// WriteErr is the first error writing the body, if any.
	WriteErr error
}

// NewTraceContext returns ctx carrying a fresh Trace.
func NewTraceContext(ctx context.Context) (context.Context, *Trace) {
	t := &Trace{}
	return context.WithValue(ctx, traceKey{}, t), t
}

// TraceFromContext returns the Trace carried by ctx, or nil.
func TraceFromContext(ctx context.Context) *Trace {
	t, _ := ctx.Value(traceKey{}).(*Trace)
	return t
}

func (t *Trace) record(kind domain.OutcomeKind, writeErr error) {
	if t == nil {
		return
	}
	t.Outcome = kind
	t.Handled = true
	if t.WriteErr == nil {
		t.WriteErr = writeErr
	}
}
