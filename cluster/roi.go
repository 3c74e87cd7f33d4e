package cluster

import "fmt"

// ROI tags a simulated brain region with its own assumed representational
// geometry. Per-region branching is resolved here, before the pipeline runs:
// SchemeForROI maps a tag to one named Scheme, and the injector/builder never
// branch on regions themselves.
type ROI int

const (
	// VentralTemporal carries the nested animate hierarchy: a broad animate
	// cluster with human and animal sub-clusters, plus an inanimate cluster.
	VentralTemporal ROI = iota

	// EarlyVisual carries only weak, category-agnostic similarity — a
	// retinotopic region is not expected to organize by semantic category.
	EarlyVisual
)

// String returns the conventional anatomical abbreviation.
func (r ROI) String() string {
	switch r {
	case VentralTemporal:
		return "VT"
	case EarlyVisual:
		return "V1"
	default:
		return fmt.Sprintf("ROI(%d)", int(r))
	}
}

// Injection strengths used by the built-in schemes.
const (
	// BroadSigma is the strength of top-level clusters (animate, inanimate).
	BroadSigma = 0.8

	// NestedSigma is the strength of sub-clusters injected on top of a broad
	// cluster; lower than BroadSigma so the parent structure survives.
	NestedSigma = 0.6

	// WeakSigma is the near-floor strength used for category-agnostic regions.
	WeakSigma = 0.1
)

// schemeMinCategories is the smallest design the built-in schemes cover.
const schemeMinCategories = 8

// SchemeForROI resolves a region tag into its named Scheme for a design with c
// categories. The built-in schemes address the first eight target ids and
// therefore require c ≥ 8.
//
// Errors:
//   - ErrUnknownROI for a tag without a definition;
//   - ErrInvalidClusterSpec when c is too small for the built-in target sets.
func SchemeForROI(r ROI, c int) (Scheme, error) {
	if c < schemeMinCategories {
		return Scheme{}, fmt.Errorf("roi %s: built-in schemes need ≥%d categories, got %d: %w",
			r, schemeMinCategories, c, ErrInvalidClusterSpec)
	}

	switch r {
	case VentralTemporal:
		return Scheme{
			Name: "VT animate hierarchy",
			Specs: []Spec{
				{Targets: []int{1, 2, 3, 4}, Sigma: BroadSigma, Desc: "animate"},
				{Targets: []int{1, 2}, Sigma: NestedSigma, Desc: "humans"},
				{Targets: []int{3, 4}, Sigma: NestedSigma, Desc: "animals"},
				{Targets: []int{5, 6, 7, 8}, Sigma: BroadSigma, Desc: "inanimate"},
			},
		}, nil
	case EarlyVisual:
		return Scheme{
			Name: "V1 weak uniform",
			Specs: []Spec{
				{Targets: seq(1, c), Sigma: WeakSigma, Desc: "low-level similarity"},
			},
		}, nil
	default:
		return Scheme{}, fmt.Errorf("roi %d: %w", int(r), ErrUnknownROI)
	}
}

// seq returns the inclusive integer range lo..hi.
func seq(lo, hi int) []int {
	out := make([]int, 0, hi-lo+1)
	for t := lo; t <= hi; t++ {
		out = append(out, t)
	}

	return out
}
