package dataset

// Generate — synthetic base-data factory.
//
// Description:
//
//	Produces a Dataset of independent Gaussian feature vectors with a fixed
//	observation order, so that identical configs yield bit-identical data.
//	The base data deliberately contains no between-condition structure;
//	representational similarity is injected afterwards (package cluster),
//	keeping the analysis ground truth fully known.
//
// Layout:
//  1. Resolve defaults (Subjects/Reps/Features/NoiseSigma) and validate.
//  2. For subject = 1..Subjects, run = 1..Runs, rep = 1..Reps,
//     category = 1..Categories: append one observation with
//     target = category and chunk = (subject-1)×Runs + run.
//  3. Every feature value is an independent draw from N(0, NoiseSigma²)
//     using the stream NewRand(cfg.Seed), consumed row-major.
//
// Determinism:
//   - Fixed loop order and a single RNG stream: same Config ⇒ same Dataset.
//
// Complexity: O(Subjects × Runs × Reps × Categories × Features).

// Generate builds a base Dataset from cfg. Labels are left unattached; use
// Dataset.AttachLabels (typically via cluster.Apply) once injection is done.
//
// Errors: ErrInvalidConfig when a resolved field is out of range.
func Generate(cfg Config) (*Dataset, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	n := cfg.Subjects * cfg.Runs * cfg.Reps * cfg.Categories
	ds := &Dataset{
		Samples: make([][]float64, 0, n),
		Targets: make([]int, 0, n),
		Chunks:  make([]int, 0, n),
	}

	rng := NewRand(cfg.Seed)
	for subject := 1; subject <= cfg.Subjects; subject++ {
		for run := 1; run <= cfg.Runs; run++ {
			chunk := (subject-1)*cfg.Runs + run
			for rep := 1; rep <= cfg.Reps; rep++ {
				for category := 1; category <= cfg.Categories; category++ {
					row := make([]float64, cfg.Features)
					for j := range row {
						row[j] = rng.NormFloat64() * cfg.NoiseSigma
					}
					ds.Samples = append(ds.Samples, row)
					ds.Targets = append(ds.Targets, category)
					ds.Chunks = append(ds.Chunks, chunk)
				}
			}
		}
	}

	return ds, nil
}
