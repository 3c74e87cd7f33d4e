package decode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/neurorsa/dataset"
	"github.com/katalvlaran/neurorsa/decode"
)

// TestNearestCentroid_FitPredict: hand-built centroids, deterministic
// predictions, and the not-fitted guard.
func TestNearestCentroid_FitPredict(t *testing.T) {
	var nc decode.NearestCentroid

	_, err := nc.Predict([]float64{0, 0})
	assert.ErrorIs(t, err, decode.ErrNotFitted)

	samples := [][]float64{{0, 0}, {0, 2}, {10, 10}, {10, 12}}
	targets := []int{1, 1, 2, 2}
	require.NoError(t, nc.Fit(samples, targets))

	p, err := nc.Predict([]float64{1, 1})
	require.NoError(t, err)
	assert.Equal(t, 1, p)

	p, err = nc.Predict([]float64{9, 9})
	require.NoError(t, err)
	assert.Equal(t, 2, p)

	assert.ErrorIs(t, nc.Fit(nil, nil), decode.ErrNoTrainingData)
}

// TestNearestCentroid_FitLengthMismatch: rows without matching targets are a
// caller bug distinct from an empty training set, and the error says how the
// two counts disagree.
func TestNearestCentroid_FitLengthMismatch(t *testing.T) {
	var nc decode.NearestCentroid

	err := nc.Fit([][]float64{{0, 0}, {1, 1}}, []int{1})
	assert.ErrorIs(t, err, decode.ErrLengthMismatch)
	assert.NotErrorIs(t, err, decode.ErrNoTrainingData)
	assert.Contains(t, err.Error(), "2 samples vs 1 targets")
}

// TestLeaveOneChunkOut_SeparableData: widely separated per-category offsets
// decode essentially perfectly; prediction slice aligns to observation order.
func TestLeaveOneChunkOut_SeparableData(t *testing.T) {
	ds, err := dataset.Generate(dataset.Config{Categories: 3, Runs: 4, Reps: 2, Features: 20, NoiseSigma: 0.1, Seed: 7})
	require.NoError(t, err)
	// Shift each category far away from the others.
	for i, target := range ds.Targets {
		for j := range ds.Samples[i] {
			ds.Samples[i][j] += float64(target) * 10
		}
	}

	predicted, accuracy, err := decode.LeaveOneChunkOut(ds)
	require.NoError(t, err)
	require.Len(t, predicted, ds.NumObservations())
	assert.Equal(t, 1.0, accuracy, "separated categories decode perfectly")
	assert.Equal(t, ds.Targets, predicted)
}

// TestLeaveOneChunkOut_TooFewChunks rejects single-run datasets.
func TestLeaveOneChunkOut_TooFewChunks(t *testing.T) {
	ds, err := dataset.Generate(dataset.Config{Categories: 3, Runs: 1, Reps: 2, Seed: 7})
	require.NoError(t, err)

	_, _, err = decode.LeaveOneChunkOut(ds)
	assert.ErrorIs(t, err, decode.ErrTooFewChunks)
}
