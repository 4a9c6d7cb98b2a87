// Package benchmark provides performance benchmarks for brownhttpd.
//
// Run benchmarks with:
//
//	go test -bench=. -benchmem ./internal/tests/benchmark/...
//
// Run with a specific directory size:
//
//	go test -bench=BenchmarkListing/entries=1000 -benchmem -benchtime=10s ./internal/tests/benchmark/...
//
// Compare results:
//
//	benchstat old.txt new.txt
package benchmark
