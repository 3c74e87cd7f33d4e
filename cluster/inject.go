package cluster

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/neurorsa/dataset"
)

// Inject — shared-pattern cluster injection.
//
// Description:
//
//	Pulls the feature vectors of every observation whose target id is in
//	spec.Targets toward one shared random pattern, creating (or strengthening)
//	representational similarity between those conditions.
//
// Algorithm Outline:
//  1. Validate the dataset and the spec; require at least one affected
//     observation.
//  2. sigma==0 ⇒ identity: return immediately without touching data or RNG.
//  3. Select round(sigma×F) feature indices pseudo-randomly — the higher the
//     strength, the more features the pattern overwrites.
//  4. Draw a pattern of length F from N(0, s²) where s is the dataset's global
//     standard deviation, so the injected structure sits on the same scale as
//     the existing noise regardless of F or amplitude. Zero the pattern outside
//     the selected indices.
//  5. Replace every affected row with (1−sigma)·row + sigma·pattern.
//
// RNG call order is fixed (subset first, then F pattern draws): a fixed seed
// reproduces the subset and pattern exactly.
//
// Errors:
//   - ErrInvalidClusterSpec — empty/out-of-range targets, sigma outside [0,1],
//     or no observation carries a targeted id.
//   - dataset validation errors pass through unchanged.
//
// Side effects: mutates feature values of affected observations only; targets,
// chunks and dimensionality are untouched.
//
// Complexity: O(observations × F).
func Inject(ds *dataset.Dataset, spec Spec, rng *rand.Rand) error {
	if err := ds.Validate(); err != nil {
		return err
	}
	if err := spec.Validate(ds.NumCategories()); err != nil {
		return err
	}

	var affected []int
	for i, t := range ds.Targets {
		if spec.member(t) {
			affected = append(affected, i)
		}
	}
	if len(affected) == 0 {
		return fmt.Errorf("spec %q: no observations carry a targeted id: %w", spec.Desc, ErrInvalidClusterSpec)
	}

	if spec.Sigma == 0 {
		return nil
	}

	f := ds.NumFeatures()
	k := int(math.Round(spec.Sigma * float64(f)))
	selected, err := dataset.PermSubset(f, k, rng)
	if err != nil {
		return err
	}

	scale := ds.GlobalStdDev()
	pattern := make([]float64, f)
	for j := range pattern {
		pattern[j] = rng.NormFloat64() * scale
	}
	keep := make([]bool, f)
	for _, j := range selected {
		keep[j] = true
	}
	for j := range pattern {
		if !keep[j] {
			pattern[j] = 0
		}
	}

	blend := spec.Sigma
	for _, i := range affected {
		row := ds.Samples[i]
		for j := range row {
			row[j] = (1-blend)*row[j] + blend*pattern[j]
		}
	}

	return nil
}
