package gotoh_test

import (
	"math/rand"
	"testing"

	"github.com/seqan/lara2/gotoh"
)

// benchmarkNew fills the tables for random sequences of lengths n and m.
func benchmarkNew(b *testing.B, n, m int) {
	rng := rand.New(rand.NewSource(1))
	seqA, seqB := randomSeq(rng, n), randomSeq(rng, m)
	cfg := simple(b)

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := gotoh.New(seqA, seqB, cfg); err != nil {
			b.Fatalf("New failed: %v", err)
		}
	}
}

// BenchmarkNew_Small fills 100×100 tables.
func BenchmarkNew_Small(b *testing.B) { benchmarkNew(b, 100, 100) }

// BenchmarkNew_Medium fills 500×500 tables.
func BenchmarkNew_Medium(b *testing.B) { benchmarkNew(b, 500, 500) }

// BenchmarkNew_Reversed fills tables over zero-copy reversed views.
func BenchmarkNew_Reversed(b *testing.B) {
	rng := rand.New(rand.NewSource(2))
	seqA, seqB := randomSeq(rng, 300), randomSeq(rng, 300)
	cfg := simple(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gotoh.New(seqA.Reverse(), seqB.Reverse(), cfg); err != nil {
			b.Fatalf("New failed: %v", err)
		}
	}
}
