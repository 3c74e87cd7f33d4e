package dataset

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Dataset holds one simulated acquisition: a samples matrix plus per-observation
// target (category) ids and chunk (run) ids. Labels stays empty until
// AttachLabels freezes a target→label dictionary onto the observations.
//
// Invariants (checked by Validate):
//   - len(Samples) == len(Targets) == len(Chunks) (> 0);
//   - every row of Samples has the same length F;
//   - every target id lies in 1..NumCategories() (dense ids).
//
// Feature values are mutated in place by cluster injection; targets, chunks and
// dimensionality never change after creation.
type Dataset struct {
	Samples [][]float64 // observations × features
	Targets []int       // dense category ids, 1..C
	Chunks  []int       // run/chunk ids
	Labels  []string    // per-observation labels; nil until attached
}

// NumObservations returns the number of observations (rows).
func (d *Dataset) NumObservations() int { return len(d.Samples) }

// NumFeatures returns the shared feature dimensionality F, or 0 when empty.
func (d *Dataset) NumFeatures() int {
	if len(d.Samples) == 0 {
		return 0
	}

	return len(d.Samples[0])
}

// NumCategories returns C, the number of distinct target ids. Target ids are
// dense 1..C, so C is simply the maximum id present.
func (d *Dataset) NumCategories() int {
	var c int
	for _, t := range d.Targets {
		if t > c {
			c = t
		}
	}

	return c
}

// Validate checks the structural invariants listed on Dataset.
//
// Returns ErrEmptyDataset, ErrLengthMismatch, ErrRaggedSamples or
// ErrBadTarget; nil when the dataset is well-formed.
//
// Complexity: O(observations × features).
func (d *Dataset) Validate() error {
	if d == nil || len(d.Samples) == 0 {
		return ErrEmptyDataset
	}
	if len(d.Targets) != len(d.Samples) || len(d.Chunks) != len(d.Samples) {
		return ErrLengthMismatch
	}

	f := len(d.Samples[0])
	for _, row := range d.Samples {
		if len(row) != f {
			return ErrRaggedSamples
		}
	}

	c := d.NumCategories()
	for i, t := range d.Targets {
		if t < 1 || t > c {
			return fmt.Errorf("observation %d: target %d: %w", i, t, ErrBadTarget)
		}
	}

	return nil
}

// Clone returns a deep copy of the dataset. Injection experiments that need a
// pristine baseline (e.g. the sigma-sweep example) clone before mutating.
func (d *Dataset) Clone() *Dataset {
	cp := &Dataset{
		Samples: make([][]float64, len(d.Samples)),
		Targets: append([]int(nil), d.Targets...),
		Chunks:  append([]int(nil), d.Chunks...),
	}
	for i, row := range d.Samples {
		cp.Samples[i] = append([]float64(nil), row...)
	}
	if d.Labels != nil {
		cp.Labels = append([]string(nil), d.Labels...)
	}

	return cp
}

// AttachLabels maps every observation's target id through labels and stores the
// result in d.Labels. The mapping is expected to be a fixed dictionary built at
// configuration time; a target id without an entry aborts with ErrUnknownTarget
// naming the offending id, leaving d.Labels unchanged.
//
// Complexity: O(observations).
func (d *Dataset) AttachLabels(labels map[int]string) error {
	out := make([]string, len(d.Targets))
	for i, t := range d.Targets {
		name, ok := labels[t]
		if !ok {
			return fmt.Errorf("attach labels: target %d: %w", t, ErrUnknownTarget)
		}
		out[i] = name
	}
	d.Labels = out

	return nil
}

// CategoryMean returns the mean feature vector over all observations whose
// target id equals target, together with the number of observations averaged.
// A count of 0 means the category is empty; the caller decides whether that is
// an error (the observed-RDM builder treats it as one).
//
// Complexity: O(observations × features).
func (d *Dataset) CategoryMean(target int) ([]float64, int) {
	f := d.NumFeatures()
	mean := make([]float64, f)

	var n int
	for i, t := range d.Targets {
		if t != target {
			continue
		}
		n++
		for j, v := range d.Samples[i] {
			mean[j] += v
		}
	}
	if n == 0 {
		return mean, 0
	}
	for j := range mean {
		mean[j] /= float64(n)
	}

	return mean, n
}

// GlobalStdDev returns the sample standard deviation over every feature value
// in the dataset, treating the samples matrix as one flat population. The
// cluster injector uses it to scale shared patterns to the amplitude of the
// existing data, independent of F or the noise level.
//
// Complexity: O(observations × features).
func (d *Dataset) GlobalStdDev() float64 {
	flat := make([]float64, 0, len(d.Samples)*d.NumFeatures())
	for _, row := range d.Samples {
		flat = append(flat, row...)
	}
	if len(flat) < 2 {
		return 0
	}

	return stat.StdDev(flat, nil)
}
