package pacer

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Debouncer defers an action until calls to it have stopped for a quiet
// period. Each Call replaces the pending invocation, so a burst of calls
// results in a single invocation carrying the arguments of the last one.
//
// A Debouncer is safe for concurrent use. The action runs on the timer's
// goroutine (or the caller's, for Flush) and never while internal state is
// locked, so it may call back into the Debouncer.
type Debouncer[T any] struct {
	action func(T)
	delay  time.Duration
	cfg    *config

	mu      sync.Mutex
	timer   clockwork.Timer
	args    T
	gen     uint64
	stopped bool
}

// Debounce wraps action so that it runs delay after the most recent Call.
// It returns an error wrapping ErrInvalidArgument if action is nil or delay
// is negative.
func Debounce[T any](action func(T), delay time.Duration, opts ...Option) (*Debouncer[T], error) {
	if err := validate(action, delay, "delay"); err != nil {
		return nil, err
	}
	cfg := newConfig(opts)
	cfg.logf("pacer: debounce created (delay %s)", delay)
	return &Debouncer[T]{action: action, delay: delay, cfg: cfg}, nil
}

// Call schedules the action to run with args once delay has passed without
// another Call. Any invocation scheduled by an earlier Call is canceled.
// Calls after Stop are ignored.
func (d *Debouncer[T]) Call(args T) {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}

	superseded := d.timer != nil
	if superseded {
		d.timer.Stop()
	}

	d.gen++
	gen := d.gen
	d.args = args
	d.timer = d.cfg.clock.AfterFunc(d.delay, func() { d.fire(gen) })
	d.mu.Unlock()

	if superseded && d.cfg.onSupersede != nil {
		d.cfg.onSupersede()
	}
}

// fire runs the action scheduled under generation gen. A timer that was
// superseded after it had already fired finds a newer generation and does
// nothing.
func (d *Debouncer[T]) fire(gen uint64) {
	d.mu.Lock()
	if d.stopped || gen != d.gen || d.timer == nil {
		d.mu.Unlock()
		return
	}
	args := d.take()
	d.mu.Unlock()

	d.action(args)
}

// take clears the pending invocation and returns its arguments.
// The caller must hold d.mu.
func (d *Debouncer[T]) take() T {
	args := d.args
	var zero T
	d.args = zero
	d.timer = nil
	d.gen++
	return args
}

// Cancel abandons the pending invocation, if any, and reports whether there
// was one. The Debouncer remains usable.
func (d *Debouncer[T]) Cancel() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer == nil {
		return false
	}
	d.timer.Stop()
	d.take()
	return true
}

// Flush runs the pending invocation immediately on the calling goroutine
// instead of waiting for the delay. It reports whether an invocation ran.
func (d *Debouncer[T]) Flush() bool {
	d.mu.Lock()
	if d.stopped || d.timer == nil {
		d.mu.Unlock()
		return false
	}
	d.timer.Stop()
	args := d.take()
	d.mu.Unlock()

	d.cfg.logf("pacer: debounce flushed")
	d.action(args)
	return true
}

// Pending reports whether an invocation is scheduled.
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Stop cancels any pending invocation and disables the Debouncer. Subsequent
// calls to Call are ignored. Stop is idempotent.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
		d.take()
	}
	d.stopped = true
	d.cfg.logf("pacer: debounce stopped")
}
