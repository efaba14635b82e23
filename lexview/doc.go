// Package lexview reinterprets a flat, contiguous sequence as a
// row-major 2-D grid, exposing row-wise and column-wise traversal
// without copying or reorganizing the underlying data.
//
// What:
//
//   - View[T] attaches to an existing Sequence (or a sub-range of one)
//     with a caller-supplied row width xSize; the row count ySize is
//     derived as length / xSize at construction.
//   - Row cursors (XBegin/XEnd) are plain stride-1 cursors over the
//     flat storage; column cursors (YBegin/YEnd, Column) step by xSize
//     per move, so the element at grid position (x, y) lives at flat
//     offset y*xSize + x.
//   - ReverseXBegin/ReverseXEnd and ReverseYBegin/ReverseYEnd derive
//     right-to-left and bottom-to-top traversal from the forward
//     cursors via the generic stepiter.Reverse adapter.
//   - At/Set offer checked direct cell access for callers that want
//     coordinates rather than cursors.
//
// Why:
//
//   - Finite differences: a discretized 2-D function stored in a 1-D
//     array can be swept by rows, then by columns, with one buffer.
//   - Image/field processing: axis-aligned passes over flat pixel or
//     cell buffers, forward or backward, with no transposition.
//
// Complexity:
//
//   - Construction: O(1) — two offsets and two dimensions, no copying.
//   - Every accessor returns a cursor in O(1); traversal cost is the
//     caller's loop length.
//
// Errors:
//
//   - ErrNilSequence: the sequence is nil.
//   - ErrRangeInvalid: begin/end do not denote a sub-range of the sequence.
//   - ErrNonPositiveXSize: the requested row width is < 1.
//   - ErrIndivisible: the attached length is not a multiple of xSize
//     (lifted by the WithTruncate option).
//   - ErrOutOfRange: At/Set coordinates outside the grid.
//
// The view never owns its storage: it aliases the caller's buffer, as
// does every cursor it produces. Writes through any cursor are visible
// through all others and through the buffer itself. The buffer must
// outlive the view and its cursors; concurrent writers need external
// synchronization, since the view performs no locking of any kind.
package lexview
