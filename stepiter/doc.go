// Package stepiter provides strided cursors over flat random-access
// sequences, plus a generic reverse adapter.
//
// What:
//
//   - Sequence[T] is the minimal random-access contract: indexed read,
//     indexed write, and length. Slice[T] adapts a plain []T to it with
//     zero copying.
//   - Iterator[T] is a value-type cursor over a Sequence that moves by a
//     fixed stride per step. A family of such cursors started at offsets
//     0..w-1 and advanced together visits one full column of a row-major
//     w-wide grid.
//   - Reverse[C, T] wraps any bidirectional cursor and inverts its
//     direction, dereferencing one step behind the wrapped position.
//
// Why:
//
//   - Column traversal over row-major storage: stride = row width.
//   - Downsampling: stride k visits every k-th sample of a signal.
//   - Backward sweeps (e.g. back-substitution) via the Reverse adapter
//     without writing a second traversal.
//
// Complexity:
//
//   - Every cursor operation (Next, Prev, Advance, Distance, Value,
//     SetValue, Equal, Before) is O(1); cursors are cheap copyable values.
//
// Errors:
//
//   - ErrNilSequence: a nil Sequence was passed to New.
//   - ErrNonPositiveStride: the requested stride is < 1.
//
// Cursors perform no bounds checking of their own: advancing past either
// end of the sequence and then dereferencing is the caller's mistake,
// mirroring raw index arithmetic. Comparing cursors with different strides
// is likewise a caller error; comparisons inspect positions only.
package stepiter
