package dataset

import "errors"

var (
	// ErrInvalidConfig indicates a non-positive count or a negative noise
	// level in a generator Config.
	ErrInvalidConfig = errors.New("dataset: invalid generator config")
	// ErrEmptyDataset indicates a Dataset with zero observations where at
	// least one is required.
	ErrEmptyDataset = errors.New("dataset: dataset has no observations")
	// ErrRaggedSamples indicates observations with differing feature counts.
	ErrRaggedSamples = errors.New("dataset: all observations must share one feature dimensionality")
	// ErrLengthMismatch indicates Samples/Targets/Chunks of differing lengths.
	ErrLengthMismatch = errors.New("dataset: samples, targets and chunks must have equal length")
	// ErrBadTarget indicates a target id outside the dense range 1..C.
	ErrBadTarget = errors.New("dataset: target id out of range")
	// ErrUnknownTarget indicates a target id with no entry in a label mapping.
	ErrUnknownTarget = errors.New("dataset: unknown target id in label mapping")
	// ErrSubsetBounds indicates an invalid (n, k) pair passed to PermSubset.
	ErrSubsetBounds = errors.New("dataset: subset size out of bounds")
)
