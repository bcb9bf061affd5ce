// File: segarray/bench_test.go
// Author: momentics <momentics@gmail.com>

package segarray_test

import (
	"testing"

	"github.com/momentics/segarr/segarray"
)

func BenchmarkAppend(b *testing.B) {
	sa := segarray.New[int]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := sa.Append(i); err != nil {
			b.Fatal(err)
		}
	}
	b.StopTimer()
	sa.Close()
}

func BenchmarkAt(b *testing.B) {
	const size = 1 << 16
	sa := segarray.New[int]()
	for i := 0; i < size; i++ {
		if err := sa.Append(i); err != nil {
			b.Fatal(err)
		}
	}
	defer sa.Close()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sa.At(i & (size - 1)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDrain(b *testing.B) {
	const size = 1 << 12
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sa := segarray.New[int]()
		for j := 0; j < size; j++ {
			if err := sa.Append(j); err != nil {
				b.Fatal(err)
			}
		}
		it, err := sa.Drain()
		if err != nil {
			b.Fatal(err)
		}
		for {
			if _, ok := it.Next(); !ok {
				break
			}
		}
		it.Close()
	}
}
