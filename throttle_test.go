package pacer

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

func TestThrottleLeadingEdge(t *testing.T) {
	fc := clockwork.NewFakeClock()
	var got []int
	var drops int
	th, err := Throttle(func(n int) { got = append(got, n) }, 100*time.Millisecond,
		WithClock(fc),
		WithOnDrop(func() { drops++ }),
	)
	if err != nil {
		t.Fatal(err)
	}

	// Calls at 0, w/2, w, 1.5w.
	steps := []struct {
		advance time.Duration
		want    bool
	}{
		{0, true},
		{50 * time.Millisecond, false},
		{50 * time.Millisecond, true},
		{50 * time.Millisecond, false},
	}
	for i, s := range steps {
		fc.Advance(s.advance)
		if fired := th.Call(i); fired != s.want {
			t.Errorf("call %d: fired = %v, want %v", i, fired, s.want)
		}
	}

	if len(got) != 2 || got[0] != 0 || got[1] != 2 {
		t.Errorf("action args = %v, want [0 2]", got)
	}
	if drops != 2 {
		t.Errorf("drops = %d, want 2", drops)
	}
}

func TestThrottleDroppedCallsAreNotDeferred(t *testing.T) {
	fc := clockwork.NewFakeClock()
	var count int
	th, err := Throttle(func(struct{}) { count++ }, time.Second, WithClock(fc))
	if err != nil {
		t.Fatal(err)
	}

	th.Call(struct{}{})
	fc.Advance(900 * time.Millisecond)
	th.Call(struct{}{})
	fc.Advance(10 * time.Second)

	if count != 1 {
		t.Errorf("count = %d, want 1 (no trailing call)", count)
	}
}

func TestThrottleReset(t *testing.T) {
	fc := clockwork.NewFakeClock()
	var count int
	th, err := Throttle(func(int) { count++ }, time.Hour, WithClock(fc))
	if err != nil {
		t.Fatal(err)
	}

	th.Call(1)
	if th.Call(2) {
		t.Fatal("second call inside the window should be dropped")
	}
	th.Reset()
	if !th.Call(3) {
		t.Fatal("call after Reset should fire")
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
}

func TestThrottleStop(t *testing.T) {
	fc := clockwork.NewFakeClock()
	var count int
	th, err := Throttle(func(int) { count++ }, time.Second, WithClock(fc))
	if err != nil {
		t.Fatal(err)
	}

	th.Stop()
	th.Stop()
	if th.Call(1) {
		t.Error("call after Stop should be dropped")
	}
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}
}

func TestThrottleZeroWindow(t *testing.T) {
	var count int
	th, err := Throttle(func(int) { count++ }, 0, WithClock(clockwork.NewFakeClock()))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		th.Call(i)
	}
	if count != 5 {
		t.Errorf("count = %d, want 5", count)
	}
}

func TestThrottleReentrant(t *testing.T) {
	var th *Throttler[int]
	var inner bool
	th, err := Throttle(func(n int) {
		if n == 0 {
			inner = th.Call(1)
		}
	}, time.Second, WithClock(clockwork.NewFakeClock()))
	if err != nil {
		t.Fatal(err)
	}

	if !th.Call(0) {
		t.Fatal("first call should fire")
	}
	if inner {
		t.Error("reentrant call inside the window should be dropped")
	}
}

func TestThrottleConcurrent(t *testing.T) {
	var count atomic.Int32
	th, err := Throttle(func(int) { count.Add(1) }, time.Minute, WithClock(clockwork.NewFakeClock()))
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	var fired atomic.Int32
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if th.Call(i) {
				fired.Add(1)
			}
		}(i)
	}
	wg.Wait()

	if got := count.Load(); got != 1 {
		t.Errorf("action ran %d times, want 1", got)
	}
	if got := fired.Load(); got != 1 {
		t.Errorf("Call reported firing %d times, want 1", got)
	}
}

func TestThrottleInvalidArguments(t *testing.T) {
	if _, err := Throttle[int](nil, time.Second); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("nil action: got %v, want ErrInvalidArgument", err)
	}

	_, err := Throttle(func(int) {}, -time.Millisecond)
	var argErr *ArgumentError
	if !errors.As(err, &argErr) {
		t.Fatalf("expected *ArgumentError, got %T", err)
	}
	if argErr.Param != "window" {
		t.Errorf("param = %q, want %q", argErr.Param, "window")
	}
}

func TestThrottleLogger(t *testing.T) {
	var buf bytes.Buffer
	th, err := Throttle(func(int) {}, time.Second, WithLogger(log.New(&buf, "", 0)))
	if err != nil {
		t.Fatal(err)
	}
	th.Stop()

	out := buf.String()
	if !strings.Contains(out, "throttle created") || !strings.Contains(out, "throttle stopped") {
		t.Errorf("unexpected log output: %q", out)
	}
}

func TestThrottleStopDoesNotReportDrops(t *testing.T) {
	fc := clockwork.NewFakeClock()
	var drops int
	th, err := Throttle(func(int) {}, time.Second,
		WithClock(fc),
		WithOnDrop(func() { drops++ }),
	)
	if err != nil {
		t.Fatal(err)
	}

	th.Call(1)
	th.Call(2)
	if drops != 1 {
		t.Fatalf("drops inside window = %d, want 1", drops)
	}

	th.Stop()
	th.Call(3)
	fc.Advance(time.Minute)
	th.Call(4)
	if drops != 1 {
		t.Errorf("drops after Stop = %d, want 1", drops)
	}
}
