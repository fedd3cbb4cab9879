package ribbon

import (
	"errors"
	"fmt"
)

var (
	// ErrLastStrip is returned when an operation would remove the ribbon's
	// only strip.
	ErrLastStrip = errors.New("cannot close the last strip")
	// ErrPatchNotFound is returned when a patch id no longer resolves.
	ErrPatchNotFound = errors.New("patch not found")
	// ErrHandleNotComparable is returned when a content handle cannot be
	// compared with ==, such as a slice or map.
	ErrHandleNotComparable = errors.New("content handle is not comparable")
)

// InvariantError reports broken ribbon bookkeeping. It is never caused by
// user input.
type InvariantError struct {
	Op     string
	Detail string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("ribbon invariant violated in %s: %s", e.Op, e.Detail)
}

// IsInvariant reports whether err wraps an InvariantError.
func IsInvariant(err error) bool {
	var inv *InvariantError
	return errors.As(err, &inv)
}

func invariant(op, format string, args ...interface{}) error {
	return &InvariantError{Op: op, Detail: fmt.Sprintf(format, args...)}
}
