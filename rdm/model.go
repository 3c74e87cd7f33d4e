package rdm

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/neurorsa/cluster"
)

// Models — categorical model-RDM generation.
//
// Description:
//
//	Builds one idealized RDM per clustering scheme, independent of any sampled
//	data, to serve as the hypothesis/regressor set for RSA. Only the schemes'
//	target groupings matter here; their sigma strengths parameterize data
//	generation, not model predictions.
//
// Algorithm Outline (per scheme):
//  1. Initialize a C×C matrix to DifferentCluster (2) everywhere, diagonal
//     included for the moment.
//  2. For each Spec, in order: set every cell (i,j) with i and j both in the
//     spec's target set to SameCluster (0). Overlapping specs are idempotent —
//     setting a cell to 0 twice has no added effect; there is no graded model
//     dissimilarity.
//  3. Force the diagonal to 0. Covered categories already got it in step 2
//     (every target is compared with itself); this extends the zero-diagonal
//     invariant to categories no spec mentions.
//
// Cells never touched by any spec stay at 2: a scheme that does not cover all
// categories correctly predicts maximal dissimilarity for the uncovered pairs.
//
// Errors: cluster.ErrInvalidClusterSpec (via Scheme.Validate) when a scheme
// references targets outside 1..c; ErrTooFewCategories when c < 2.
//
// Complexity: O(len(schemes) × (C² + Σ|targets|²)).
func Models(c int, schemes []cluster.Scheme) ([]RDM, error) {
	if c < 2 {
		return nil, fmt.Errorf("c=%d: %w", c, ErrTooFewCategories)
	}

	out := make([]RDM, 0, len(schemes))
	for _, scheme := range schemes {
		if err := scheme.Validate(c); err != nil {
			return nil, err
		}

		m := mat.NewSymDense(c, nil)
		for i := 0; i < c; i++ {
			for j := i; j < c; j++ {
				m.SetSym(i, j, DifferentCluster)
			}
		}
		for _, sp := range scheme.Specs {
			for _, ti := range sp.Targets {
				for _, tj := range sp.Targets {
					if ti <= tj {
						m.SetSym(ti-1, tj-1, SameCluster)
					}
				}
			}
		}
		for i := 0; i < c; i++ {
			m.SetSym(i, i, SameCluster)
		}

		out = append(out, RDM{M: m, Desc: scheme.Name})
	}

	return out, nil
}
