package pacer

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidArgument is returned when a wrapper is constructed with a nil
// action or a negative duration.
var ErrInvalidArgument = errors.New("pacer: invalid argument")

// ArgumentError names the constructor parameter that was rejected.
type ArgumentError struct {
	Param  string
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("pacer: invalid argument %s: %s", e.Param, e.Reason)
}

func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

func validate[T any](action func(T), d time.Duration, param string) error {
	if action == nil {
		return &ArgumentError{Param: "action", Reason: "must not be nil"}
	}
	if d < 0 {
		return &ArgumentError{Param: param, Reason: fmt.Sprintf("must be non-negative, got %s", d)}
	}
	return nil
}
