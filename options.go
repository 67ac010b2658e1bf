package slotarena

import (
	"github.com/hupe1980/slotarena/resource"
)

type options struct {
	capacity         int
	name             string
	logger           *Logger
	metricsCollector MetricsCollector
	memory           *resource.Controller
}

// Option configures an Arena at construction time.
type Option func(*options)

// WithCapacity pre-allocates room for n slots.
//
// The capacity is a hint: if the memory controller refuses the reservation
// the arena starts empty and grows on demand.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// WithName tags every log line emitted by the arena.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithLogger sets the logger used for growth, tombstone and exhaustion events.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector sets the collector notified about arena operations.
//
// If nil is passed, NoopMetricsCollector is used.
func WithMetricsCollector(c MetricsCollector) Option {
	return func(o *options) {
		if c == nil {
			c = NoopMetricsCollector{}
		}
		o.metricsCollector = c
	}
}

// WithMemoryController charges slot storage against c.
//
// Growth that would exceed the controller's limit fails the insert (or
// reservation) instead of allocating.
func WithMemoryController(c *resource.Controller) Option {
	return func(o *options) {
		o.memory = c
	}
}

func defaultOptions() options {
	return options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
}
