package compose

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is wrapped by every construction failure.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrBadCall is wrapped by errors raised when a reflected func is called
// with arguments it cannot accept.
var ErrBadCall = errors.New("bad call")

// ErrUnknownKind is returned when a kind name cannot be parsed.
var ErrUnknownKind = errors.New("unknown composer kind")

// ArgumentError describes a rejected constructor call.
type ArgumentError struct {
	Op     string // Constructor, e.g. "solo.New"
	Reason string
}

func (e *ArgumentError) Error() string {
	return e.Op + "() " + e.Reason
}

func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// CallError describes arguments a step could not accept.
type CallError struct {
	Step   string
	Reason string
}

func (e *CallError) Error() string {
	return fmt.Sprintf("%s: %s", e.Step, e.Reason)
}

func (e *CallError) Unwrap() error {
	return ErrBadCall
}
