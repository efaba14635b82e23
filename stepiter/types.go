// Package stepiter defines the Sequence contract and sentinel errors
// for the stepiter subpackage of github.com/katalvlaran/lexgrid.
package stepiter

import (
	"errors"
)

// Sentinel errors for stepiter constructors. All constructors MUST return
// these sentinels and tests MUST check them via errors.Is. No cursor
// operation panics on user-triggered error conditions.
var (
	// ErrNilSequence indicates a nil Sequence was passed to a constructor.
	ErrNilSequence = errors.New("stepiter: sequence must not be nil")
	// ErrNonPositiveStride indicates a requested stride smaller than 1.
	ErrNonPositiveStride = errors.New("stepiter: stride must be >= 1")
)

// Sequence is the minimal random-access contract cursors traverse:
// O(1) indexed read, O(1) indexed write, and a length.
//
// Implementations alias caller-owned storage; the package never copies,
// allocates, or frees elements. The storage must outlive every cursor
// derived from it.
type Sequence[T any] interface {
	// At returns the element at flat offset i.
	At(i int) T
	// Set assigns v at flat offset i.
	Set(i int, v T)
	// Len returns the number of elements.
	Len() int
}

// Cursor is the bidirectional contract the Reverse adapter can wrap.
// C is the concrete cursor type itself (self-referential constraint), so
// that Next and Prev return fresh values of the same type.
type Cursor[C, T any] interface {
	// Next returns a cursor one step forward.
	Next() C
	// Prev returns a cursor one step backward.
	Prev() C
	// Value returns the element at the cursor position.
	Value() T
	// SetValue assigns v at the cursor position.
	SetValue(v T)
	// Equal reports whether both cursors sit on the same position.
	Equal(other C) bool
}
