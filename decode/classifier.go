package decode

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// NearestCentroid classifies an observation as the category whose mean
// training vector is closest in Euclidean distance. Ties break toward the
// smaller target id so predictions are deterministic.
//
// The zero value is ready to use; call Fit before Predict.
type NearestCentroid struct {
	centroids map[int][]float64
	targets   []int // fitted target ids, ascending
}

// Fit computes one centroid per target id from the training rows.
//
// Errors: ErrNoTrainingData when samples is empty; ErrLengthMismatch when
// samples and targets disagree in length.
//
// Complexity: O(rows × F).
func (nc *NearestCentroid) Fit(samples [][]float64, targets []int) error {
	if len(samples) == 0 {
		return ErrNoTrainingData
	}
	if len(samples) != len(targets) {
		return fmt.Errorf("%d samples vs %d targets: %w", len(samples), len(targets), ErrLengthMismatch)
	}

	sums := make(map[int][]float64)
	counts := make(map[int]int)
	for i, row := range samples {
		t := targets[i]
		if sums[t] == nil {
			sums[t] = make([]float64, len(row))
		}
		floats.Add(sums[t], row)
		counts[t]++
	}

	nc.centroids = make(map[int][]float64, len(sums))
	nc.targets = nc.targets[:0]
	for t, sum := range sums {
		floats.Scale(1/float64(counts[t]), sum)
		nc.centroids[t] = sum
		nc.targets = append(nc.targets, t)
	}
	sort.Ints(nc.targets)

	return nil
}

// Predict returns the target id of the closest centroid.
//
// Errors: ErrNotFitted before a successful Fit.
func (nc *NearestCentroid) Predict(x []float64) (int, error) {
	if len(nc.centroids) == 0 {
		return 0, ErrNotFitted
	}

	best := nc.targets[0]
	bestDist := floats.Distance(x, nc.centroids[best], 2)
	for _, t := range nc.targets[1:] {
		if d := floats.Distance(x, nc.centroids[t], 2); d < bestDist {
			best, bestDist = t, d
		}
	}

	return best, nil
}
