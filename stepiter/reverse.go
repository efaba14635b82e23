// File: reverse.go
// Role: Generic reverse adapter over any bidirectional cursor.
//
// Written once against the Cursor constraint and reused for every cursor
// family in the module (row cursors, column cursors). The adapter follows
// the classic reverse-iterator contract: its position mirrors the wrapped
// forward position, and dereference reads one step behind it, so that
// Reverse(end)..Reverse(begin) visits exactly the elements of
// begin..end in the opposite order.

package stepiter

// Reverse inverts the direction of a wrapped bidirectional cursor.
// Next on the adapter moves the base backward, Prev moves it forward,
// and Value/SetValue act one step behind the base position.
//
// A Reverse is a value like the cursors it wraps: movement methods return
// fresh adapters and never mutate the receiver.
type Reverse[C Cursor[C, T], T any] struct {
	base C // wrapped forward cursor; adapter dereferences at base.Prev()
}

// NewReverse wraps a forward cursor. Wrapping a range's end cursor yields
// the reverse range's begin; wrapping its begin yields the reverse end.
// Complexity: O(1).
func NewReverse[C Cursor[C, T], T any](base C) Reverse[C, T] {
	return Reverse[C, T]{base: base}
}

// Base returns the wrapped forward cursor, undoing NewReverse.
// Complexity: O(1).
func (r Reverse[C, T]) Base() C {
	return r.base
}

// Value returns the element one step behind the wrapped position.
// Complexity: O(1).
func (r Reverse[C, T]) Value() T {
	return r.base.Prev().Value()
}

// SetValue assigns v one step behind the wrapped position.
// Complexity: O(1).
func (r Reverse[C, T]) SetValue(v T) {
	r.base.Prev().SetValue(v)
}

// Next returns an adapter advanced by one step (base moves backward).
// Complexity: O(1).
func (r Reverse[C, T]) Next() Reverse[C, T] {
	return Reverse[C, T]{base: r.base.Prev()}
}

// Prev returns an adapter retreated by one step (base moves forward).
// Complexity: O(1).
func (r Reverse[C, T]) Prev() Reverse[C, T] {
	return Reverse[C, T]{base: r.base.Next()}
}

// Equal reports whether both adapters wrap equal base positions.
// Complexity: O(1).
func (r Reverse[C, T]) Equal(other Reverse[C, T]) bool {
	return r.base.Equal(other.base)
}
