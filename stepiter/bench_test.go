package stepiter_test

import (
	"testing"

	"github.com/katalvlaran/lexgrid/stepiter"
)

// BenchmarkIterator_StridedSum walks a 1M-element buffer with stride 64
// and sums the visited samples.
func BenchmarkIterator_StridedSum(b *testing.B) {
	const n = 1 << 20
	const stride = 64
	data := make([]float64, n)
	for i := range data {
		data[i] = float64(i)
	}
	seq := stepiter.Slice[float64](data)

	b.ReportAllocs()
	b.SetBytes(int64(n / stride * 8))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		begin, _ := stepiter.New[float64](seq, 0, stride)
		end := begin.Advance(n / stride)
		var sum float64
		for it := begin; !it.Equal(end); it = it.Next() {
			sum += it.Value()
		}
		_ = sum
	}
}

// BenchmarkReverse_Sum measures the reverse adapter against the forward
// walk over the same 64K-element range.
func BenchmarkReverse_Sum(b *testing.B) {
	const n = 1 << 16
	data := make([]float64, n)
	for i := range data {
		data[i] = float64(i)
	}
	seq := stepiter.Slice[float64](data)
	begin, _ := stepiter.New[float64](seq, 0, 1)
	end := begin.Advance(n)

	b.ReportAllocs()
	b.SetBytes(int64(n * 8))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		rbegin := stepiter.NewReverse[stepiter.Iterator[float64], float64](end)
		rend := stepiter.NewReverse[stepiter.Iterator[float64], float64](begin)
		var sum float64
		for it := rbegin; !it.Equal(rend); it = it.Next() {
			sum += it.Value()
		}
		_ = sum
	}
}
