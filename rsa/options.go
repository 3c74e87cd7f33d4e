package rsa

// DEFAULTS - single source of truth for Regress's zero-option behavior.
const (
	// DefaultIntercept includes an intercept column in the design.
	DefaultIntercept = true

	// DefaultRankTransform fits raw values (ordinary least squares).
	DefaultRankTransform = false
)

// Option mutates Regress's internal options. Last-writer-wins.
type Option func(*options)

type options struct {
	intercept bool
	rank      bool
}

// WithIntercept includes an intercept column in the design (default).
func WithIntercept() Option {
	return func(o *options) { o.intercept = true }
}

// WithoutIntercept forces the fit through the origin. Use only when the
// response is already centered relative to the models.
func WithoutIntercept() Option {
	return func(o *options) { o.intercept = false }
}

// WithRankTransform rank-transforms response and regressors before the fit
// (average ranks on ties), making the coefficients insensitive to monotone
// distortions of the dissimilarities.
func WithRankTransform() Option {
	return func(o *options) { o.rank = true }
}

// WithoutRankTransform fits raw values (default).
func WithoutRankTransform() Option {
	return func(o *options) { o.rank = false }
}

// gatherOptions resolves setters against the documented defaults.
func gatherOptions(user ...Option) options {
	o := options{intercept: DefaultIntercept, rank: DefaultRankTransform}
	for _, set := range user {
		set(&o)
	}

	return o
}
