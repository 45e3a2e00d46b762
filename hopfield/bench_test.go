package hopfield_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/hopfield/hopfield"
)

func BenchmarkHebb(b *testing.B) {
	for _, n := range []int{64, 256} {
		set := randomPatterns(1, 8, n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := hopfield.Hebb(set); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkPseudoinverse_128(b *testing.B) {
	set := randomPatterns(2, 12, 128)
	for i := 0; i < b.N; i++ {
		if _, err := hopfield.Pseudoinverse(set); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRecall(b *testing.B) {
	const n = 512
	w, err := hopfield.Hebb(randomPatterns(3, 16, n))
	if err != nil {
		b.Fatal(err)
	}
	probe := randomPatterns(4, 1, n)[0]
	for _, workers := range []int{1, 4} {
		b.Run(fmt.Sprintf("sync/workers=%d", workers), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = hopfield.Recall(w, probe, hopfield.WithWorkers(workers), hopfield.WithMaxIterations(20))
			}
		})
	}
	b.Run("async", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = hopfield.Recall(w, probe, hopfield.WithMode(hopfield.Asynchronous), hopfield.WithMaxIterations(20))
		}
	})
}
