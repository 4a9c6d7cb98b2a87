package benchmark

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

// EntryCounts defines directory sizes for listing benchmarks.
var EntryCounts = []int{10, 100, 1000, 10000}

// WorkerCounts defines pool sizes for throughput benchmarks.
var WorkerCounts = []int{1, 2, 4, 8}

// FileSizes defines file sizes for file serving benchmarks.
var FileSizes = []int{1 << 10, 64 << 10, 1 << 20}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTree builds an in-memory root with:
//
//	/dir/f00000.txt ... one file per entry
//	/files/<size>.bin   one file per FileSizes entry
//	/site/index.html
func newTree(b *testing.B, entries int) afero.Fs {
	b.Helper()
	fs := afero.NewMemMapFs()
	for i := 0; i < entries; i++ {
		name := fmt.Sprintf("/dir/f%05d.txt", i)
		if err := afero.WriteFile(fs, name, []byte(name), 0o644); err != nil {
			b.Fatal(err)
		}
	}
	for _, size := range FileSizes {
		name := fmt.Sprintf("/files/%d.bin", size)
		if err := afero.WriteFile(fs, name, []byte(strings.Repeat("x", size)), 0o644); err != nil {
			b.Fatal(err)
		}
	}
	if err := afero.WriteFile(fs, "/site/index.html", []byte("<h1>home</h1>"), 0o644); err != nil {
		b.Fatal(err)
	}
	return fs
}
