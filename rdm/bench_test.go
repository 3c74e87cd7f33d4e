package rdm_test

import (
	"testing"

	"github.com/katalvlaran/neurorsa/dataset"
	"github.com/katalvlaran/neurorsa/rdm"
)

// BenchmarkObserved measures building the observed RDM from a mid-sized
// dataset (8 categories × 8 runs × 4 reps, F=128), correlation metric.
func BenchmarkObserved(b *testing.B) {
	ds, err := dataset.Generate(dataset.Config{Categories: 8, Runs: 8, Reps: 4, Features: 128, Seed: 1})
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := rdm.Observed(ds); err != nil {
			b.Fatal(err)
		}
	}
}
