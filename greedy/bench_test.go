package greedy_test

import (
	"math/rand"
	"testing"
)

// BenchmarkVariants measures each variant on a budget allocation instance
// with 40 channels and r = 30; oracle calls are reported per run.
func BenchmarkVariants(b *testing.B) {
	f := budget(b, 1, 40)
	for name, run := range variants {
		b.Run(name, func(b *testing.B) {
			rng := rand.New(rand.NewSource(1))
			f.Reset()
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, _, err := run(rng, f, 30); err != nil {
					b.Fatal(err)
				}
			}
			b.ReportMetric(float64(f.Calls())/float64(b.N), "calls/op")
		})
	}
}
