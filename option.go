package pacer

import (
	"log"

	"github.com/jonboulle/clockwork"
)

type config struct {
	clock       clockwork.Clock
	onDrop      func()
	onSupersede func()
	logger      *log.Logger
}

// Option configures a Debouncer or Throttler.
type Option func(*config)

// WithClock sets the time source used to schedule and measure delays.
// If not provided, the real wall clock is used. Tests typically pass a
// clockwork fake clock.
func WithClock(c clockwork.Clock) Option {
	return func(cfg *config) {
		cfg.clock = c
	}
}

// WithOnDrop sets a callback that fires each time a Throttler discards a call
// because its window is still open. Calls after Stop do not trigger it.
// Debouncers ignore it.
func WithOnDrop(fn func()) Option {
	return func(cfg *config) {
		cfg.onDrop = fn
	}
}

// WithOnSupersede sets a callback that fires each time a Debouncer replaces a
// pending invocation with a newer one. Throttlers ignore it.
func WithOnSupersede(fn func()) Option {
	return func(cfg *config) {
		cfg.onSupersede = fn
	}
}

// WithLogger enables lifecycle logging (creation, flush, stop) to l.
func WithLogger(l *log.Logger) Option {
	return func(cfg *config) {
		cfg.logger = l
	}
}

func newConfig(opts []Option) *config {
	cfg := &config{}
	for _, o := range opts {
		o(cfg)
	}
	if cfg.clock == nil {
		cfg.clock = clockwork.NewRealClock()
	}
	return cfg
}

func (c *config) logf(format string, args ...any) {
	if c.logger != nil {
		c.logger.Printf(format, args...)
	}
}
