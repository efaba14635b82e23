// Package stepiter implements the strided Iterator cursor.
//
// An Iterator is a value: every movement method returns a fresh cursor
// and leaves the receiver untouched, so cursors can be stored, copied,
// and compared freely. Only SetValue has a side effect, and that effect
// lands in the underlying Sequence, not in the cursor.
package stepiter

// Iterator is a cursor over a Sequence that moves by a fixed stride per
// step. It holds a borrowed Sequence, an absolute element offset, and the
// stride; it owns nothing and is safe to copy shallowly.
//
// Preconditions (unchecked, zero-overhead by design):
//   - dereferencing (Value/SetValue) requires 0 <= Pos() < seq.Len();
//   - Distance, Equal and Before require both cursors to share the same
//     Sequence and stride.
type Iterator[T any] struct {
	seq    Sequence[T] // borrowed backing storage
	pos    int         // absolute element offset into seq
	stride int         // elements skipped per step, >= 1
}

// New creates a cursor positioned at absolute offset pos, moving by
// stride elements per step.
//
// Stage 1 (Validate): seq non-nil, stride >= 1.
// Stage 2 (Finalize): return the cursor value.
// Returns ErrNilSequence or ErrNonPositiveStride on invalid input.
// pos itself is not range-checked: one-past-the-end cursors are legal
// boundary markers and must be constructible.
// Complexity: O(1).
func New[T any](seq Sequence[T], pos, stride int) (Iterator[T], error) {
	if seq == nil {
		return Iterator[T]{}, ErrNilSequence
	}
	if stride < 1 {
		return Iterator[T]{}, ErrNonPositiveStride
	}

	return Iterator[T]{seq: seq, pos: pos, stride: stride}, nil
}

// Value returns the element at the cursor position.
// Complexity: O(1).
func (it Iterator[T]) Value() T {
	return it.seq.At(it.pos) // read through the borrowed sequence
}

// SetValue assigns v at the cursor position. The write is visible through
// every other cursor and view sharing the same sequence.
// Complexity: O(1).
func (it Iterator[T]) SetValue(v T) {
	it.seq.Set(it.pos, v) // write through the borrowed sequence
}

// Next returns a cursor advanced by exactly one stride.
// Complexity: O(1).
func (it Iterator[T]) Next() Iterator[T] {
	it.pos += it.stride // value receiver: mutating the copy is returning a new cursor

	return it
}

// Prev returns a cursor retreated by exactly one stride.
// Complexity: O(1).
func (it Iterator[T]) Prev() Iterator[T] {
	it.pos -= it.stride

	return it
}

// Advance returns a cursor moved by n strides; n may be negative.
// Complexity: O(1).
func (it Iterator[T]) Advance(n int) Iterator[T] {
	it.pos += n * it.stride

	return it
}

// Distance returns the number of steps (not raw elements) from it to
// other: (other.Pos() - it.Pos()) / stride. Negative when other precedes
// it. Both cursors must share the same stride.
// Complexity: O(1).
func (it Iterator[T]) Distance(other Iterator[T]) int {
	return (other.pos - it.pos) / it.stride
}

// Equal reports whether both cursors sit on the same absolute offset.
// Strides are not compared; mixing strides is a caller error.
// Complexity: O(1).
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.pos == other.pos
}

// Before reports whether it precedes other in the underlying sequence.
// Complexity: O(1).
func (it Iterator[T]) Before(other Iterator[T]) bool {
	return it.pos < other.pos
}

// Pos returns the absolute element offset of the cursor.
// Complexity: O(1).
func (it Iterator[T]) Pos() int {
	return it.pos
}

// Stride returns the number of elements skipped per step.
// Complexity: O(1).
func (it Iterator[T]) Stride() int {
	return it.stride
}
