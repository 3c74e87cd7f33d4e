package rdm

import "errors"

var (
	// ErrEmptyCategory indicates a target id in 1..C with zero observations
	// when computing condition means.
	ErrEmptyCategory = errors.New("rdm: category has no observations")
	// ErrConstantPattern indicates a condition mean with zero variance, for
	// which correlation distance is undefined.
	ErrConstantPattern = errors.New("rdm: constant condition pattern, correlation undefined")
	// ErrTooFewCategories indicates a dataset with fewer than two categories;
	// a 1×1 RDM has no off-diagonal structure to analyze.
	ErrTooFewCategories = errors.New("rdm: at least two categories required")
)
