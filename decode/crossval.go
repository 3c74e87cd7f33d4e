package decode

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/neurorsa/dataset"
)

// LeaveOneChunkOut cross-validates a NearestCentroid classifier over the
// dataset's chunks: each fold trains on every other chunk and predicts the
// held-out one. Returns the predicted target per observation (aligned to the
// dataset's observation order) and the overall accuracy.
//
// Errors: dataset validation errors; ErrTooFewChunks below two distinct
// chunk ids.
//
// Complexity: O(chunks × observations × F).
func LeaveOneChunkOut(ds *dataset.Dataset) ([]int, float64, error) {
	if err := ds.Validate(); err != nil {
		return nil, 0, err
	}

	chunkSet := map[int]bool{}
	for _, ch := range ds.Chunks {
		chunkSet[ch] = true
	}
	if len(chunkSet) < 2 {
		return nil, 0, fmt.Errorf("%d chunk(s): %w", len(chunkSet), ErrTooFewChunks)
	}
	chunks := make([]int, 0, len(chunkSet))
	for ch := range chunkSet {
		chunks = append(chunks, ch)
	}
	sort.Ints(chunks)

	predicted := make([]int, ds.NumObservations())
	var correct int
	for _, held := range chunks {
		var trainX [][]float64
		var trainY []int
		for i, ch := range ds.Chunks {
			if ch != held {
				trainX = append(trainX, ds.Samples[i])
				trainY = append(trainY, ds.Targets[i])
			}
		}

		var nc NearestCentroid
		if err := nc.Fit(trainX, trainY); err != nil {
			return nil, 0, fmt.Errorf("fold %d: %w", held, err)
		}
		for i, ch := range ds.Chunks {
			if ch != held {
				continue
			}
			p, err := nc.Predict(ds.Samples[i])
			if err != nil {
				return nil, 0, fmt.Errorf("fold %d: %w", held, err)
			}
			predicted[i] = p
			if p == ds.Targets[i] {
				correct++
			}
		}
	}

	return predicted, float64(correct) / float64(ds.NumObservations()), nil
}
