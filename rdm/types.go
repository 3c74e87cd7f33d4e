package rdm

import "gonum.org/v1/gonum/mat"

// Dissimilarity values used by categorical model RDMs.
const (
	// SameCluster marks two categories declared similar by a scheme (and the
	// diagonal).
	SameCluster = 0.0

	// DifferentCluster marks two categories with no declared similarity —
	// absence of evidence for similarity means maximal modeled dissimilarity.
	DifferentCluster = 2.0
)

// RDM is one representational dissimilarity matrix: a symmetric C×C matrix
// with a zero diagonal, plus the ordered category labels matching its rows and
// a description of what it represents (a scheme name for model RDMs, the
// metric for observed ones). Treat it as read-only once built.
type RDM struct {
	M      *mat.SymDense
	Labels []string
	Desc   string
}

// Size returns C, the number of categories (rows).
func (r RDM) Size() int {
	if r.M == nil {
		return 0
	}

	return r.M.SymmetricDim()
}

// At returns the dissimilarity between categories i and j (0-based).
func (r RDM) At(i, j int) float64 { return r.M.At(i, j) }

// TriangleVector flattens the strict lower triangle (diagonal excluded) into a
// vector, row-major: (1,0), (2,0), (2,1), (3,0), ... This fixed order is the
// regression contract shared by every RDM, so observed and model vectors align
// element-wise.
//
// Length: C·(C−1)/2. Complexity: O(C²).
func (r RDM) TriangleVector() []float64 {
	n := r.Size()
	out := make([]float64, 0, n*(n-1)/2)
	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			out = append(out, r.M.At(i, j))
		}
	}

	return out
}
