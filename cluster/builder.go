package cluster

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/neurorsa/dataset"
)

// Apply runs a clustering Scheme over ds: one Inject per Spec, strictly in list
// order, threading the mutated dataset through each step. Sequencing matters —
// a later, narrower spec ("humans") partially overwrites structure injected by
// an earlier, broader one ("animate"), which is exactly how nested similarity
// is modeled; Apply therefore never reorders or deduplicates the list.
//
// After all injections the observations are labeled through the labels
// dictionary (skipped when labels is nil, for pipelines that label later).
//
// Returns the list of Specs applied, in application order, for diagnostics;
// callers typically log targets, sigma and description per entry.
//
// Errors:
//   - ErrInvalidClusterSpec (via Inject) aborts the run at the offending spec;
//   - dataset.ErrUnknownTarget when the dictionary misses a target id.
//
// The dataset is mutated in place up to the failing step; on error callers
// should discard it rather than analyze partially injected data.
//
// Complexity: O(len(scheme.Specs) × observations × F).
func Apply(ds *dataset.Dataset, scheme Scheme, labels map[int]string, rng *rand.Rand) ([]Spec, error) {
	applied := make([]Spec, 0, len(scheme.Specs))
	for i, sp := range scheme.Specs {
		if err := Inject(ds, sp, rng); err != nil {
			return nil, fmt.Errorf("scheme %q: step %d: %w", scheme.Name, i, err)
		}
		applied = append(applied, sp)
	}

	if labels != nil {
		if err := ds.AttachLabels(labels); err != nil {
			return nil, fmt.Errorf("scheme %q: %w", scheme.Name, err)
		}
	}

	return applied, nil
}

// defaultLabelNames is the fixed condition vocabulary used by DefaultLabels.
// The first eight entries follow the classic animate/inanimate object batteries.
var defaultLabelNames = []string{
	"human face",
	"human body",
	"animal face",
	"animal body",
	"fruit",
	"tool",
	"house",
	"chair",
}

// DefaultLabels builds the fixed target→label dictionary for c categories:
// the classic object-category names for ids 1..8, "condition N" beyond them.
// Build it once at configuration time and treat it as immutable.
func DefaultLabels(c int) map[int]string {
	labels := make(map[int]string, c)
	for t := 1; t <= c; t++ {
		if t <= len(defaultLabelNames) {
			labels[t] = defaultLabelNames[t-1]
		} else {
			labels[t] = fmt.Sprintf("condition %d", t)
		}
	}

	return labels
}
