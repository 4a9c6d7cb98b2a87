package service

import (
	"fmt"
	"os"
	"path"

	"github.com/spf13/afero"

	"github.com/yndnr/brownhttpd/internal/core/domain"
)

// DefaultIndex is the index filename used when none is configured.
const DefaultIndex = "index.html"

// Router classifies request paths against the served root.
//
// The filesystem is expected to be rooted at the served root (see NewRootFs).
// A Router holds no mutable state.
type Router struct {
	fs    afero.Fs
	index string
	codec PathCodec
}

// Option configures a Router.
type Option func(*Router)

// WithIndex sets the per-directory default document. An empty name keeps
// DefaultIndex.
func WithIndex(name string) Option {
	return func(r *Router) {
		if name != "" {
			r.index = name
		}
	}
}

// WithCodec sets the request path codec. The default is NarrowCodec.
func WithCodec(c PathCodec) Option {
	return func(r *Router) {
		if c != nil {
			r.codec = c
		}
	}
}

// NewRouter creates a router over fs.
func NewRouter(fs afero.Fs, opts ...Option) *Router {
	r := &Router{
		fs:    fs,
		index: DefaultIndex,
		codec: NarrowCodec{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewRootFs returns the OS filesystem confined to root.
//
// Lookups are joined onto root and cleaned; a path that would resolve
// outside root fails as if it did not exist. Symlinks inside root are still
// followed wherever they point.
func NewRootFs(root string) afero.Fs {
	return afero.NewBasePathFs(afero.NewOsFs(), root)
}

// Index returns the configured index filename.
func (r *Router) Index() string {
	return r.index
}

// Codec returns the request path codec.
func (r *Router) Codec() PathCodec {
	return r.codec
}

// Route decodes requestPath and decides how it should be answered.
//
// Every lookup failure, including permission errors and symlink loops,
// collapses into a not-found outcome.
func (r *Router) Route(requestPath string) domain.Outcome {
	p := Clean(r.codec.Decode(requestPath))

	fi, err := r.fs.Stat(p)
	if err != nil {
		return domain.NotFound(domain.ErrNotFound.Wrap(err).WithDetails(p))
	}

	switch {
	case fi.IsDir():
		idx := path.Join(p, r.index)
		if ifi, err := r.fs.Stat(idx); err == nil && ifi.Mode().IsRegular() {
			return domain.ServeIndex(idx)
		}
		return domain.ServeListing(p)
	case fi.Mode().IsRegular():
		return domain.ServeFile(p)
	default:
		return domain.NotFound(domain.ErrUnsupportedKind.WithDetails(p))
	}
}

// Open opens a regular file previously classified by Route.
//
// The file may have vanished or changed kind since classification; in
// that case an ErrOpenFailed error is returned and the caller answers 404.
func (r *Router) Open(p string) (afero.File, os.FileInfo, error) {
	f, err := r.fs.Open(p)
	if err != nil {
		return nil, nil, domain.ErrOpenFailed.Wrap(err).WithDetails(p)
	}

	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, domain.ErrOpenFailed.Wrap(err).WithDetails(p)
	}
	if !fi.Mode().IsRegular() {
		f.Close()
		return nil, nil, domain.ErrOpenFailed.Wrap(fmt.Errorf("%s is not a regular file", p))
	}

	return f, fi, nil
}

// Clean returns the rooted, slash-separated form of p.
func Clean(p string) string {
	return path.Clean("/" + p)
}
