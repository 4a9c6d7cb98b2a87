// Package metric provides Prometheus metrics for brownhttpd.
//
//   - prometheus.go: registry, request instruments and HTTP handler
//   - collector.go: worker pool gauges read at scrape time
//
// Metrics are exposed at /metrics on a dedicated listener so they never
// shadow a file under the served root.
package metric
