// Package lexgrid is a zero-copy toolkit for treating flat, contiguous
// buffers as 2-D grids — row-major views, strided cursors, and reverse
// traversal, without moving a single element.
//
// 🚀 What is lexgrid?
//
//	A small, thread-neutral, zero-dependency library that brings together:
//		• Stepping cursors: walk any random-access sequence with a fixed stride
//		• Reverse adapters: derive backward traversal from any forward cursor
//		• Lexicographical views: reinterpret a 1-D buffer as an xSize×ySize grid
//		• Row & column iteration: forward and reverse, over the same storage
//
// ✨ Why choose lexgrid?
//
//   - Zero-copy – views and cursors alias your buffer, never reorganize it
//   - Rock-solid validation – construction rejects shapes that cannot fit
//   - Pure Go – no cgo, no hidden deps
//   - Generic – works over any element type and any Sequence implementation
//
// Everything is organized under two subpackages:
//
//	stepiter/ — Sequence abstraction, strided Iterator, Reverse adapter
//	lexview/  — View: row-major 2-D reinterpretation of a flat sequence
//
// Quick ASCII example — a 6-element buffer seen as a 3×2 grid:
//
//	flat:  [ 0 1 2 3 4 5 ]            grid:  0 1 2
//	                                         3 4 5
//
//	row 1    = XBegin(1)..XEnd(1)   → 3 4 5
//	column 2 = YBegin(2)..YEnd(2)   → 2 5
//
// Typical use: feeding a discretized 2-D function, stored as a 1-D array,
// to a finite-difference scheme that sweeps it first by rows, then by
// columns — see examples/ for a runnable heat-diffusion walkthrough.
package lexgrid
