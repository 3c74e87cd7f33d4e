package rsa

import "errors"

var (
	// ErrDimensionMismatch indicates a model RDM whose size disagrees with the
	// observed RDM (or an observed RDM too small to have a triangle).
	ErrDimensionMismatch = errors.New("rsa: rdm dimension mismatch")
	// ErrNoModels indicates an empty model list.
	ErrNoModels = errors.New("rsa: at least one model rdm required")
	// ErrUnderdetermined indicates fewer triangle elements than regressors.
	ErrUnderdetermined = errors.New("rsa: more regressors than rdm triangle elements")
	// ErrIllConditioned indicates a rank-deficient or near-singular design —
	// duplicate model RDMs, or a constant model colliding with the intercept.
	// Bounded by DefaultMaxCondition.
	ErrIllConditioned = errors.New("rsa: ill-conditioned model design")
)
