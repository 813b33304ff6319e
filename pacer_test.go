package pacer

import (
	"testing"
	"time"
)

// receive waits for one value on ch or fails the test.
func receive[T any](t *testing.T, ch <-chan T) T {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for action")
	}
	var zero T
	return zero
}

// expectNone fails the test if a value shows up on ch shortly.
func expectNone[T any](t *testing.T, ch <-chan T) {
	t.Helper()
	select {
	case v := <-ch:
		t.Fatalf("unexpected action with %v", v)
	case <-time.After(20 * time.Millisecond):
	}
}
