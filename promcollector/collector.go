// Package promcollector exports arena metrics to Prometheus.
//
//	c := promcollector.New(promcollector.Config{Namespace: "myapp", ArenaName: "sessions"})
//	prometheus.MustRegister(c)
//
//	sessions := slotarena.NewDefault[*Session](slotarena.WithMetricsCollector(c))
package promcollector

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/slotarena"
)

// Config controls metric naming.
type Config struct {
	Namespace string
	Subsystem string // defaults to "slotarena"

	// ArenaName is attached as the constant label "arena" when set.
	ArenaName string
}

// Collector implements slotarena.MetricsCollector and prometheus.Collector.
type Collector struct {
	inserts        *prometheus.CounterVec
	insertFailures prometheus.Counter
	removes        prometheus.Counter
	tombstones     prometheus.Counter
	grows          prometheus.Counter
	growBytes      prometheus.Counter
	capacity       prometheus.Gauge
	clears         prometheus.Counter
}

var _ slotarena.MetricsCollector = (*Collector)(nil)

// New creates a Collector. Register it with a prometheus.Registerer before use.
func New(cfg Config) *Collector {
	if cfg.Subsystem == "" {
		cfg.Subsystem = "slotarena"
	}

	var labels prometheus.Labels
	if cfg.ArenaName != "" {
		labels = prometheus.Labels{"arena": cfg.ArenaName}
	}

	counter := func(name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        name,
			Help:        help,
			ConstLabels: labels,
		})
	}

	return &Collector{
		inserts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "inserts_total",
			Help:        "Successful inserts, by whether the slot came from the free list",
			ConstLabels: labels,
		}, []string{"slot"}),
		insertFailures: counter("insert_failures_total", "Inserts rejected by index range or memory limit"),
		removes:        counter("removes_total", "Values removed, including by retain"),
		tombstones:     counter("tombstones_total", "Slots retired because their version is exhausted"),
		grows:          counter("grows_total", "Slot table reallocations"),
		growBytes:      counter("grow_bytes_total", "Bytes added to slot tables by reallocation"),
		capacity: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "capacity_slots",
			Help:        "Slot capacity after the most recent reallocation",
			ConstLabels: labels,
		}),
		clears: counter("clears_total", "Arena clears"),
	}
}

// RecordInsert implements slotarena.MetricsCollector.
func (c *Collector) RecordInsert(reused bool) {
	if reused {
		c.inserts.WithLabelValues("reused").Inc()
		return
	}
	c.inserts.WithLabelValues("new").Inc()
}

// RecordInsertFailure implements slotarena.MetricsCollector.
func (c *Collector) RecordInsertFailure(error) {
	c.insertFailures.Inc()
}

// RecordRemove implements slotarena.MetricsCollector.
func (c *Collector) RecordRemove() {
	c.removes.Inc()
}

// RecordTombstone implements slotarena.MetricsCollector.
func (c *Collector) RecordTombstone(int) {
	c.tombstones.Inc()
}

// RecordGrow implements slotarena.MetricsCollector.
func (c *Collector) RecordGrow(_, newCap int, bytes int64) {
	c.grows.Inc()
	c.growBytes.Add(float64(bytes))
	c.capacity.Set(float64(newCap))
}

// RecordClear implements slotarena.MetricsCollector.
func (c *Collector) RecordClear(int) {
	c.clears.Inc()
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.inserts.Describe(ch)
	c.insertFailures.Describe(ch)
	c.removes.Describe(ch)
	c.tombstones.Describe(ch)
	c.grows.Describe(ch)
	c.growBytes.Describe(ch)
	c.capacity.Describe(ch)
	c.clears.Describe(ch)
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.inserts.Collect(ch)
	c.insertFailures.Collect(ch)
	c.removes.Collect(ch)
	c.tombstones.Collect(ch)
	c.grows.Collect(ch)
	c.growBytes.Collect(ch)
	c.capacity.Collect(ch)
	c.clears.Collect(ch)
}
