package dataset

import "fmt"

// DEFAULTS - single source of truth for zero-value Config fields.
const (
	// DefaultSubjects is used when Config.Subjects == 0.
	DefaultSubjects = 1

	// DefaultReps is used when Config.Reps == 0.
	DefaultReps = 1

	// DefaultNoiseSigma is used when Config.NoiseSigma == 0: unit-variance
	// Gaussian noise, the conventional baseline for simulated responses.
	DefaultNoiseSigma = 1.0

	// DefaultFeaturesPerCategory sizes the feature dimensionality when
	// Config.Features == 0: F = DefaultFeaturesPerCategory × Categories,
	// so richer designs get proportionally more voxel-like features.
	DefaultFeaturesPerCategory = 4
)

// Config parameterizes Generate. Zero values for Subjects, Reps, Features and
// NoiseSigma select the documented defaults; Categories and Runs must be set
// explicitly.
//
// Fields:
//   - Categories — number of experimental conditions C (target ids 1..C).
//   - Subjects   — number of simulated subjects; chunks are numbered
//     continuously across subjects so chunk ids stay globally unique.
//   - Runs       — acquisition runs per subject; each run contributes one
//     chunk id.
//   - Reps       — repetitions of every category within a run.
//   - Features   — feature dimensionality F (0 ⇒ DefaultFeaturesPerCategory×C).
//   - NoiseSigma — standard deviation of the i.i.d. Gaussian baseline noise
//     (0 ⇒ DefaultNoiseSigma; must not be negative).
//   - Seed       — RNG seed; 0 selects the fixed default stream (see NewRand).
type Config struct {
	Categories int
	Subjects   int
	Runs       int
	Reps       int
	Features   int
	NoiseSigma float64
	Seed       int64
}

// withDefaults returns cfg with documented defaults substituted for zero values.
func (cfg Config) withDefaults() Config {
	if cfg.Subjects == 0 {
		cfg.Subjects = DefaultSubjects
	}
	if cfg.Reps == 0 {
		cfg.Reps = DefaultReps
	}
	if cfg.NoiseSigma == 0 {
		cfg.NoiseSigma = DefaultNoiseSigma
	}
	if cfg.Features == 0 {
		cfg.Features = DefaultFeaturesPerCategory * cfg.Categories
	}

	return cfg
}

// Validate reports ErrInvalidConfig (with the offending field named) when any
// count is non-positive or NoiseSigma is negative. Called by Generate after
// default substitution; exported so callers can pre-flight configs.
func (cfg Config) Validate() error {
	switch {
	case cfg.Categories < 1:
		return fmt.Errorf("categories %d: %w", cfg.Categories, ErrInvalidConfig)
	case cfg.Subjects < 1:
		return fmt.Errorf("subjects %d: %w", cfg.Subjects, ErrInvalidConfig)
	case cfg.Runs < 1:
		return fmt.Errorf("runs %d: %w", cfg.Runs, ErrInvalidConfig)
	case cfg.Reps < 1:
		return fmt.Errorf("reps %d: %w", cfg.Reps, ErrInvalidConfig)
	case cfg.Features < 1:
		return fmt.Errorf("features %d: %w", cfg.Features, ErrInvalidConfig)
	case cfg.NoiseSigma < 0:
		return fmt.Errorf("noise sigma %g: %w", cfg.NoiseSigma, ErrInvalidConfig)
	}

	return nil
}
