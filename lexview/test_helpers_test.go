// Package lexview_test — shared traversal helpers for the view tests.
package lexview_test

import (
	"github.com/katalvlaran/lexgrid/stepiter"
)

// walk collects every value of the forward cursor range [begin, end).
func walk(begin, end stepiter.Iterator[int]) []int {
	out := []int{}
	for it := begin; !it.Equal(end); it = it.Next() {
		out = append(out, it.Value())
	}

	return out
}

// walkReverse collects every value of the reverse range [begin, end).
func walkReverse(begin, end stepiter.Reverse[stepiter.Iterator[int], int]) []int {
	out := []int{}
	for it := begin; !it.Equal(end); it = it.Next() {
		out = append(out, it.Value())
	}

	return out
}

// mirror returns a reversed copy of s, leaving s untouched.
func mirror(s []int) []int {
	out := make([]int, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}

	return out
}

// iota0 returns the slice [0, 1, ..., n-1].
func iota0(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}
