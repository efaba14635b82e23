// Package stepiter_test contains unit tests for the strided Iterator
// cursor of the stepiter package.
package stepiter_test

import (
	"testing"

	"github.com/katalvlaran/lexgrid/stepiter"
	"github.com/stretchr/testify/require"
)

// TestNew_Errors verifies that New rejects nil sequences and bad strides.
func TestNew_Errors(t *testing.T) {
	seq := stepiter.Slice[int]{1, 2, 3}

	cases := []struct {
		name   string
		seq    stepiter.Sequence[int]
		stride int
		err    error
	}{
		{"NilSequence", nil, 1, stepiter.ErrNilSequence},
		{"ZeroStride", seq, 0, stepiter.ErrNonPositiveStride},
		{"NegativeStride", seq, -2, stepiter.ErrNonPositiveStride},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := stepiter.New(tc.seq, 0, tc.stride)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNew_BoundaryPosition ensures one-past-the-end cursors are constructible.
func TestNew_BoundaryPosition(t *testing.T) {
	seq := stepiter.Slice[int]{1, 2, 3}

	it, err := stepiter.New[int](seq, seq.Len(), 1) // legal boundary marker
	require.NoError(t, err)
	require.Equal(t, 3, it.Pos())
}

// TestValueAndStride checks dereference and inspectors on a stride-3 cursor.
func TestValueAndStride(t *testing.T) {
	seq := stepiter.Slice[int]{0, 1, 2, 3, 4, 5, 6, 7, 8}

	it, err := stepiter.New[int](seq, 1, 3) // start at offset 1, skip 3 per step
	require.NoError(t, err)

	require.Equal(t, 1, it.Value())  // element at offset 1
	require.Equal(t, 1, it.Pos())    // absolute offset
	require.Equal(t, 3, it.Stride()) // configured stride
}

// TestNextPrev verifies that one step moves exactly one stride, both ways.
func TestNextPrev(t *testing.T) {
	seq := stepiter.Slice[int]{0, 1, 2, 3, 4, 5, 6, 7, 8}

	it, err := stepiter.New[int](seq, 0, 3)
	require.NoError(t, err)

	fwd := it.Next() // offset 0 -> 3
	require.Equal(t, 3, fwd.Pos())
	require.Equal(t, 3, fwd.Value())

	back := fwd.Prev() // offset 3 -> 0, round trip
	require.Equal(t, 0, back.Pos())
	require.True(t, back.Equal(it))
}

// TestValueSemantics ensures movement returns fresh cursors and never
// mutates the receiver.
func TestValueSemantics(t *testing.T) {
	seq := stepiter.Slice[int]{0, 1, 2, 3, 4, 5}

	it, err := stepiter.New[int](seq, 0, 2)
	require.NoError(t, err)

	_ = it.Next()
	_ = it.Advance(2)
	require.Equal(t, 0, it.Pos()) // receiver untouched by either call
}

// TestAdvance covers positive, zero, and negative step counts.
func TestAdvance(t *testing.T) {
	seq := stepiter.Slice[int]{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}

	it, err := stepiter.New[int](seq, 0, 3)
	require.NoError(t, err)

	require.Equal(t, 9, it.Advance(3).Pos())            // 3 steps of 3 elements
	require.Equal(t, 0, it.Advance(0).Pos())            // no movement
	require.Equal(t, 3, it.Advance(3).Advance(-2).Pos()) // negative steps retreat
}

// TestDistance verifies subtraction counts steps, not raw elements.
func TestDistance(t *testing.T) {
	seq := stepiter.Slice[int]{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}

	a, err := stepiter.New[int](seq, 0, 4)
	require.NoError(t, err)
	b := a.Advance(3) // 12 raw elements ahead

	require.Equal(t, 3, a.Distance(b))  // steps forward
	require.Equal(t, -3, b.Distance(a)) // steps backward
	require.Equal(t, 0, a.Distance(a))  // self distance
}

// TestEqualBefore checks that comparisons inspect positions only.
func TestEqualBefore(t *testing.T) {
	seq := stepiter.Slice[int]{0, 1, 2, 3, 4, 5}

	a, err := stepiter.New[int](seq, 2, 1)
	require.NoError(t, err)
	b, err := stepiter.New[int](seq, 2, 1)
	require.NoError(t, err)

	require.True(t, a.Equal(b)) // same position, independent values
	require.False(t, a.Before(b))

	c := b.Next()
	require.False(t, a.Equal(c))
	require.True(t, a.Before(c))
	require.False(t, c.Before(a))
}

// TestSetValue_SharedStorage ensures writes land in the caller's slice and
// are visible through other cursors over the same storage.
func TestSetValue_SharedStorage(t *testing.T) {
	data := []int{0, 1, 2, 3, 4, 5}
	seq := stepiter.Slice[int](data)

	writer, err := stepiter.New[int](seq, 0, 2)
	require.NoError(t, err)
	reader, err := stepiter.New[int](seq, 4, 4)
	require.NoError(t, err)

	writer.Advance(2).SetValue(42) // writes offset 4

	require.Equal(t, 42, data[4])         // visible in the raw slice
	require.Equal(t, 42, reader.Value())  // visible through another cursor
	require.Equal(t, 42, seq.At(4))       // visible through the adapter
}

// TestSlice_Adapter checks the zero-copy Sequence adapter directly.
func TestSlice_Adapter(t *testing.T) {
	data := []string{"a", "b", "c"}
	seq := stepiter.Slice[string](data)

	require.Equal(t, 3, seq.Len())
	require.Equal(t, "b", seq.At(1))

	seq.Set(1, "B")
	require.Equal(t, "B", data[1]) // adapter shares the backing array
}
