package rdm

// Metric selects the pairwise dissimilarity used by Observed.
//
//   - CorrelationDistance — 1 − Pearson correlation between condition means.
//     The RSA default: insensitive to overall response amplitude, bounded
//     in [0, 2].
//   - EuclideanDistance — plain L2 distance; keeps amplitude information.
type Metric int

const (
	// CorrelationDistance: 1 − Pearson correlation. Requires non-constant
	// condition means (ErrConstantPattern otherwise).
	CorrelationDistance Metric = iota

	// EuclideanDistance: L2 distance between condition means.
	EuclideanDistance
)

// DEFAULTS - single source of truth for Observed's zero-option behavior.
const (
	// DefaultMetric is CorrelationDistance.
	DefaultMetric = CorrelationDistance

	// DefaultCenter subtracts each condition mean's own average before the
	// distance is taken. A no-op for Pearson (which centers internally) but
	// it removes per-condition offsets under EuclideanDistance.
	DefaultCenter = true
)

// Option mutates Observed's internal options. Setters are idempotent;
// last-writer-wins.
type Option func(*options)

type options struct {
	metric Metric
	center bool
}

// WithMetric selects the dissimilarity metric.
func WithMetric(m Metric) Option {
	return func(o *options) { o.metric = m }
}

// WithCentering centers each condition mean before the distance (default).
func WithCentering() Option {
	return func(o *options) { o.center = true }
}

// WithoutCentering keeps condition means as-is.
func WithoutCentering() Option {
	return func(o *options) { o.center = false }
}

// gatherOptions resolves setters against the documented defaults.
func gatherOptions(user ...Option) options {
	o := options{metric: DefaultMetric, center: DefaultCenter}
	for _, set := range user {
		set(&o)
	}

	return o
}
