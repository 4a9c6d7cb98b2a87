package service

import (
	"github.com/spf13/afero"

	"github.com/yndnr/brownhttpd/internal/core/domain"
)

// List returns the immediate children of dir, sorted by name.
//
// Entries are read fresh on every call. Directories are reported without
// a size.
func (r *Router) List(dir string) ([]domain.DirEntry, error) {
	infos, err := afero.ReadDir(r.fs, dir)
	if err != nil {
		return nil, domain.ErrDirUnreadable.Wrap(err).WithDetails(dir)
	}

	entries := make([]domain.DirEntry, 0, len(infos))
	for _, fi := range infos {
		e := domain.DirEntry{Name: fi.Name(), Dir: fi.IsDir()}
		if !e.Dir {
			e.Size = fi.Size()
		}
		entries = append(entries, e)
	}

	return entries, nil
}
