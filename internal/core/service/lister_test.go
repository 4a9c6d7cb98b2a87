package service

import (
	"errors"
	"testing"

	"github.com/yndnr/brownhttpd/internal/core/domain"
)

func TestRouter_List(t *testing.T) {
	r := NewRouter(newTestFs(t))

	entries, err := r.List("/")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	want := []domain.DirEntry{
		{Name: "a%41.txt", Size: 7},
		{Name: "a.txt", Size: 5},
		{Name: "my file.txt", Size: 6},
		{Name: "odd", Dir: true},
		{Name: "site", Dir: true},
		{Name: "sub", Dir: true},
	}
	if len(entries) != len(want) {
		t.Fatalf("List() returned %d entries, want %d: %+v", len(entries), len(want), entries)
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entries[%d] = %+v, want %+v", i, entries[i], want[i])
		}
	}
}

func TestRouter_List_Missing(t *testing.T) {
	r := NewRouter(newTestFs(t))

	if _, err := r.List("/gone"); !errors.Is(err, domain.ErrDirUnreadable) {
		t.Errorf("List() error = %v, want ErrDirUnreadable", err)
	}
}
