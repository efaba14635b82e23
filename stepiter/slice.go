package stepiter

// Slice adapts a plain Go slice to the Sequence interface without copying:
// converting []T to Slice[T] shares the backing array, so writes through
// the adapter are visible through the original slice and vice versa.
type Slice[T any] []T

// At returns the element at flat offset i.
// Complexity: O(1).
func (s Slice[T]) At(i int) T { return s[i] }

// Set assigns v at flat offset i.
// Complexity: O(1).
func (s Slice[T]) Set(i int, v T) { s[i] = v }

// Len returns the number of elements.
// Complexity: O(1).
func (s Slice[T]) Len() int { return len(s) }
