package decode

import "errors"

var (
	// ErrTooFewChunks indicates fewer than two distinct chunk ids; one chunk
	// cannot be both training and test material.
	ErrTooFewChunks = errors.New("decode: at least two distinct chunks required")
	// ErrNotFitted indicates Predict was called before Fit.
	ErrNotFitted = errors.New("decode: classifier is not fitted")
	// ErrNoTrainingData indicates Fit received no observations.
	ErrNoTrainingData = errors.New("decode: no training observations")
	// ErrLengthMismatch indicates Fit received differing numbers of samples
	// and targets.
	ErrLengthMismatch = errors.New("decode: samples and targets must have equal length")
)
