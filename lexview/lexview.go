// Package lexview provides the View type: a lexicographical (row-major)
// 2-D reinterpretation of a flat random-access sequence. The view stores
// only two offsets and two dimensions; all traversal methods are pure
// O(1) factories for stepiter cursors over the shared storage.
package lexview

import (
	"github.com/katalvlaran/lexgrid/stepiter"
)

// View is a row-major 2-D grid of dimensions xSize×ySize laid over a flat
// sequence: the element at grid position (x, y) is the sequence element
// at flat offset begin + y*xSize + x.
//
// The view borrows its sequence and is immutable in shape after
// construction; it holds no owned resources and copies shallowly. Writes
// through the sequence, through any cursor, or through Set are visible
// everywhere, because there is exactly one underlying buffer.
//
// Invariant (established at construction, never re-checked):
// xSize*ySize == end-begin.
type View[T any] struct {
	seq   stepiter.Sequence[T] // borrowed backing storage
	begin int                  // first element offset covered by the view
	end   int                  // one past the last covered element offset
	xSize int                  // row width, >= 1
	ySize int                  // row count, derived once: (end-begin)/xSize
}

// New attaches a view with row width xSize to the whole sequence.
//
// Stage 1 (Validate): delegate to NewRange over [0, seq.Len()).
// Stage 2 (Finalize): return the view or the first violated sentinel.
// Complexity: O(1) — nothing is copied.
func New[T any](seq stepiter.Sequence[T], xSize int, opts ...Option) (View[T], error) {
	if seq == nil {
		// NewRange would need Len() for its range check; reject nil here.
		return View[T]{}, ErrNilSequence
	}

	return NewRange(seq, 0, seq.Len(), xSize, opts...)
}

// NewRange attaches a view with row width xSize to the sub-range
// [begin, end) of the sequence.
//
// Stage 1 (Validate): seq non-nil; 0 <= begin <= end <= seq.Len();
// xSize >= 1; (end-begin) divisible by xSize unless WithTruncate.
// Stage 2 (Prepare): derive ySize = (end-begin)/xSize; under truncation,
// lower end so that the remainder is outside every row and column.
// Stage 3 (Finalize): return the view value.
// Returns ErrNilSequence, ErrRangeInvalid, ErrNonPositiveXSize or
// ErrIndivisible on invalid input.
// Complexity: O(1).
func NewRange[T any](seq stepiter.Sequence[T], begin, end, xSize int, opts ...Option) (View[T], error) {
	// Validate the storage and the attached range.
	if seq == nil {
		return View[T]{}, ErrNilSequence
	}
	if begin < 0 || end < begin || end > seq.Len() {
		return View[T]{}, ErrRangeInvalid
	}
	// Validate the row width before dividing by it.
	if xSize < 1 {
		return View[T]{}, ErrNonPositiveXSize
	}

	// Apply construction options.
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	// Divisibility: reject by default, truncate only on explicit request.
	length := end - begin
	if length%xSize != 0 {
		if !cfg.truncate {
			return View[T]{}, ErrIndivisible
		}
		end = begin + (length/xSize)*xSize // drop the trailing remainder
	}

	return View[T]{
		seq:   seq,
		begin: begin,
		end:   end,
		xSize: xSize,
		ySize: (end - begin) / xSize,
	}, nil
}

// OfSlice attaches a view with row width xSize to a plain slice, sharing
// its backing array. Thin convenience over New(stepiter.Slice[T], ...).
// Complexity: O(1).
func OfSlice[T any](data []T, xSize int, opts ...Option) (View[T], error) {
	return New[T](stepiter.Slice[T](data), xSize, opts...)
}

// ---------- Inspectors (all O(1), no side effects) ----------

// XSize returns the row width of the view.
func (v View[T]) XSize() int { return v.xSize }

// YSize returns the row count of the view.
func (v View[T]) YSize() int { return v.ySize }

// Len returns the number of cells covered by the view: xSize*ySize.
// Under WithTruncate this can be smaller than the attached slice length.
func (v View[T]) Len() int { return v.end - v.begin }

// Index maps grid coordinates to the row-major flat offset within the
// view: y*xSize + x. No range check; see At for the checked form.
func (v View[T]) Index(x, y int) int { return y*v.xSize + x }

// Coordinate converts a row-major offset within the view back to (x, y).
func (v View[T]) Coordinate(idx int) (x, y int) {
	return idx % v.xSize, idx / v.xSize
}

// ---------- Checked cell access ----------

// At retrieves the element at grid position (x, y).
// Stage 1 (Validate): 0 <= x < xSize and 0 <= y < ySize.
// Stage 2 (Execute): read the flat offset through the sequence.
// Returns ErrOutOfRange on invalid coordinates.
// Complexity: O(1).
func (v View[T]) At(x, y int) (T, error) {
	if x < 0 || x >= v.xSize || y < 0 || y >= v.ySize {
		var zero T
		return zero, ErrOutOfRange
	}

	return v.seq.At(v.begin + v.Index(x, y)), nil
}

// Set assigns value t at grid position (x, y). The write lands in the
// shared storage and is visible through every cursor over it.
// Returns ErrOutOfRange on invalid coordinates.
// Complexity: O(1).
func (v View[T]) Set(x, y int, t T) error {
	if x < 0 || x >= v.xSize || y < 0 || y >= v.ySize {
		return ErrOutOfRange
	}
	v.seq.Set(v.begin+v.Index(x, y), t)

	return nil
}

// ---------- Row traversal ----------
//
// Row cursors are stride-1 stepiter cursors: a row is a contiguous run of
// the flat storage. Stride and shape were validated at construction, so
// the stepiter constructor cannot fail here and its error is discarded.

// XBegin returns a cursor on the first element of row y.
// Precondition: 0 <= y < YSize(); not checked.
// Complexity: O(1).
func (v View[T]) XBegin(y int) stepiter.Iterator[T] {
	it, _ := stepiter.New(v.seq, v.begin+y*v.xSize, 1)

	return it
}

// XEnd returns the one-past-the-end cursor of row y: a boundary marker
// that must not be dereferenced.
// Precondition: 0 <= y < YSize(); not checked.
// Complexity: O(1).
func (v View[T]) XEnd(y int) stepiter.Iterator[T] {
	it, _ := stepiter.New(v.seq, v.begin+(y+1)*v.xSize, 1)

	return it
}

// ReverseXBegin returns a reverse cursor that visits row y right-to-left,
// starting at its last element.
// Precondition: 0 <= y < YSize(); not checked.
// Complexity: O(1).
func (v View[T]) ReverseXBegin(y int) stepiter.Reverse[stepiter.Iterator[T], T] {
	return stepiter.NewReverse[stepiter.Iterator[T], T](v.XEnd(y))
}

// ReverseXEnd returns the one-past-the-end marker of the reversed row y.
// Precondition: 0 <= y < YSize(); not checked.
// Complexity: O(1).
func (v View[T]) ReverseXEnd(y int) stepiter.Reverse[stepiter.Iterator[T], T] {
	return stepiter.NewReverse[stepiter.Iterator[T], T](v.XBegin(y))
}

// ---------- Column traversal ----------
//
// Column cursors step by xSize elements per move: starting at begin+x and
// advancing repeatedly visits column x top-to-bottom across all rows.

// Column returns a cursor on the head of column x — the direct accessor
// for "give me column x and let me walk it". Identical to YBegin.
// Precondition: 0 <= x < XSize(); not checked.
// Complexity: O(1).
func (v View[T]) Column(x int) stepiter.Iterator[T] {
	return v.YBegin(x)
}

// YBegin returns a cursor on the first (top) element of column x.
// Precondition: 0 <= x < XSize(); not checked.
// Complexity: O(1).
func (v View[T]) YBegin(x int) stepiter.Iterator[T] {
	it, _ := stepiter.New(v.seq, v.begin+x, v.xSize)

	return it
}

// YEnd returns the one-past-the-end cursor of column x: YBegin advanced
// ySize steps of xSize elements each. Boundary marker only.
// Precondition: 0 <= x < XSize(); not checked.
// Complexity: O(1).
func (v View[T]) YEnd(x int) stepiter.Iterator[T] {
	return v.YBegin(x).Advance(v.ySize)
}

// ReverseYBegin returns a reverse cursor that visits column x
// bottom-to-top, starting at its last element.
// Precondition: 0 <= x < XSize(); not checked.
// Complexity: O(1).
func (v View[T]) ReverseYBegin(x int) stepiter.Reverse[stepiter.Iterator[T], T] {
	return stepiter.NewReverse[stepiter.Iterator[T], T](v.YEnd(x))
}

// ReverseYEnd returns the one-past-the-end marker of the reversed
// column x.
// Precondition: 0 <= x < XSize(); not checked.
// Complexity: O(1).
func (v View[T]) ReverseYEnd(x int) stepiter.Reverse[stepiter.Iterator[T], T] {
	return stepiter.NewReverse[stepiter.Iterator[T], T](v.YBegin(x))
}
