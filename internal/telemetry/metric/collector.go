package metric

import "github.com/prometheus/client_golang/prometheus"

// PoolStats is the view of the worker pool read at scrape time.
type PoolStats interface {
	Size() int
	Pending() int
	Busy() int
}

// Collector reports worker pool size, busy workers and queue depth.
type Collector struct {
	stats PoolStats

	workers *prometheus.Desc
	busy    *prometheus.Desc
	pending *prometheus.Desc
}

// NewCollector creates a collector over stats.
func NewCollector(stats PoolStats) *Collector {
	return &Collector{
		stats: stats,
		workers: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "workers"),
			"Configured worker pool size.",
			nil, nil,
		),
		busy: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "workers_busy"),
			"Workers currently handling a request.",
			nil, nil,
		),
		pending: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "queue_pending"),
			"Requests waiting for a free worker.",
			nil, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.workers
	ch <- c.busy
	ch <- c.pending
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(c.workers, prometheus.GaugeValue, float64(c.stats.Size()))
	ch <- prometheus.MustNewConstMetric(c.busy, prometheus.GaugeValue, float64(c.stats.Busy()))
	ch <- prometheus.MustNewConstMetric(c.pending, prometheus.GaugeValue, float64(c.stats.Pending()))
}
