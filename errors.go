package polydraw

import (
	"errors"
	"fmt"
)

// Sentinel errors for the polydraw package.
var (
	// ErrInvalidArgument is returned when geometry, pens or brushes are
	// constructed from malformed input.
	ErrInvalidArgument = errors.New("polydraw: invalid argument")

	// ErrUnsupported is returned for operations that are intentionally not
	// implemented.
	ErrUnsupported = errors.New("polydraw: unsupported operation")
)

// ArgumentError describes which argument of which constructor was rejected.
// It matches ErrInvalidArgument with errors.Is.
type ArgumentError struct {
	Op     string // constructor or method, e.g. "NewPen"
	Arg    string // offending argument name
	Reason string // violated constraint
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("polydraw: %s: invalid %s: %s", e.Op, e.Arg, e.Reason)
}

// Is reports whether target is ErrInvalidArgument.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

func invalidArg(op, arg, reason string) error {
	return &ArgumentError{Op: op, Arg: arg, Reason: reason}
}

func unsupported(what string) error {
	return fmt.Errorf("%w: %s", ErrUnsupported, what)
}
