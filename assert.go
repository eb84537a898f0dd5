package substring

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is reported by checked operations (At, Substr) when a
// position falls outside the view, under a policy that reports at all.
var ErrOutOfRange = errors.New("out of range")

// AssertPolicy decides what happens when a checked precondition fails.
// It is a type parameter of View, so the choice is made per view type
// and the Relaxed path compiles down to no check at all.
type AssertPolicy interface {
	// OutOfRange returns nil when ok is true. When ok is false the
	// policy either returns an error wrapping ErrOutOfRange, panics,
	// or ignores the violation.
	OutOfRange(ok bool, msg string) error
}

// Strict reports precondition failures as errors wrapping ErrOutOfRange.
type Strict struct{}

func (Strict) OutOfRange(ok bool, msg string) error {
	if ok {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrOutOfRange, msg)
}

// Abort panics on precondition failures. Meant for builds where an
// out-of-range slice is a bug worth crashing on.
type Abort struct{}

func (Abort) OutOfRange(ok bool, msg string) error {
	if !ok {
		panic(fmt.Sprintf("substring: %s", msg))
	}
	return nil
}

// Relaxed skips precondition checks entirely; checked operations never
// return an error under it. Unlike the raw-pointer equivalent this
// cannot read wild memory: Substr past the end clamps to an empty tail
// view, and element access past the end hits the runtime bounds panic.
type Relaxed struct{}

func (Relaxed) OutOfRange(bool, string) error { return nil }
