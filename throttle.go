package pacer

import (
	"sync"
	"time"
)

// Throttler runs an action at most once per window, on the leading edge.
// The first Call in a quiet period runs the action immediately and opens a
// window; calls that arrive while the window is open are dropped along with
// their arguments. There is no trailing invocation.
//
// A Throttler is safe for concurrent use.
type Throttler[T any] struct {
	action func(T)
	window time.Duration
	cfg    *config

	mu      sync.Mutex
	firedAt time.Time
	open    bool
	stopped bool
}

// Throttle wraps action so that it runs at most once per window.
// It returns an error wrapping ErrInvalidArgument if action is nil or window
// is negative.
func Throttle[T any](action func(T), window time.Duration, opts ...Option) (*Throttler[T], error) {
	if err := validate(action, window, "window"); err != nil {
		return nil, err
	}
	cfg := newConfig(opts)
	cfg.logf("pacer: throttle created (window %s)", window)
	return &Throttler[T]{action: action, window: window, cfg: cfg}, nil
}

// Call runs the action with args if no window is open and reports whether it
// did. The action runs on the calling goroutine.
func (t *Throttler[T]) Call(args T) bool {
	t.mu.Lock()
	now := t.cfg.clock.Now()
	if t.stopped {
		t.mu.Unlock()
		return false
	}
	if t.open && now.Sub(t.firedAt) < t.window {
		t.mu.Unlock()
		if t.cfg.onDrop != nil {
			t.cfg.onDrop()
		}
		return false
	}
	t.firedAt = now
	t.open = true
	t.mu.Unlock()

	t.action(args)
	return true
}

// Reset closes the open window so the next Call runs immediately.
func (t *Throttler[T]) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.open = false
}

// Stop disables the Throttler. Subsequent calls are dropped without invoking
// the WithOnDrop hook. Stop is idempotent.
func (t *Throttler[T]) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stopped {
		return
	}
	t.stopped = true
	t.cfg.logf("pacer: throttle stopped")
}
