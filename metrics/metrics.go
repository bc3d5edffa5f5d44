// Package metrics exports the counters of a pagetree.Tree to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"pagetree"
)

// StatsFunc returns the current counters of a tree. A Tree is not safe for
// concurrent use, so the func must serialize with whatever mutates the tree;
// the registry calls it from its own goroutine on every scrape.
type StatsFunc func() pagetree.Stats

// Collector is a prometheus.Collector reading a tree's Stats on each scrape.
type Collector struct {
	stats StatsFunc

	keys   *prometheus.Desc
	pages  *prometheus.Desc
	height *prometheus.Desc

	ops        *prometheus.Desc
	rejected   *prometheus.Desc
	structural *prometheus.Desc
	cache      *prometheus.Desc
}

// NewCollector creates a collector named under namespace. constLabels are
// attached to every metric, e.g. to tell several trees apart.
func NewCollector(namespace string, constLabels prometheus.Labels, stats StatsFunc) *Collector {
	desc := func(name, help string, labels ...string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "pagetree", name), help, labels, constLabels)
	}

	return &Collector{
		stats:      stats,
		keys:       desc("keys", "Keys stored in the tree."),
		pages:      desc("pages", "Pages currently allocated."),
		height:     desc("height", "Levels from the root to the leaves."),
		ops:        desc("operations_total", "Successful operations.", "op"),
		rejected:   desc("rejected_total", "Operations rejected without changing the tree.", "reason"),
		structural: desc("rebalances_total", "Structural changes made while rebalancing.", "kind"),
		cache:      desc("locate_cache_total", "Locate cache lookups.", "result"),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.keys
	ch <- c.pages
	ch <- c.height
	ch <- c.ops
	ch <- c.rejected
	ch <- c.structural
	ch <- c.cache
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.stats()

	gauge := func(d *prometheus.Desc, v int) {
		ch <- prometheus.MustNewConstMetric(d, prometheus.GaugeValue, float64(v))
	}
	counter := func(d *prometheus.Desc, v uint64, label string) {
		ch <- prometheus.MustNewConstMetric(d, prometheus.CounterValue, float64(v), label)
	}

	gauge(c.keys, s.Keys)
	gauge(c.pages, s.Pages)
	gauge(c.height, s.Height)

	counter(c.ops, s.Inserts, "insert")
	counter(c.ops, s.Deletes, "delete")

	counter(c.rejected, s.Duplicates, "duplicate")
	counter(c.rejected, s.Misses, "not_found")

	counter(c.structural, s.Splits, "split")
	counter(c.structural, s.RootSplits, "root_split")
	counter(c.structural, s.Rotations, "rotation")
	counter(c.structural, s.Merges, "merge")
	counter(c.structural, s.RootCollapses, "root_collapse")

	counter(c.cache, s.CacheHits, "hit")
	counter(c.cache, s.CacheMisses, "miss")
}
