// Package dataset defines the in-memory Dataset model shared by the whole
// pipeline and a deterministic factory for synthetic base data.
//
// A Dataset is an ordered collection of observations: a samples matrix
// (observations × features), one integer target/category id per observation
// (dense 1..C), one chunk/run id per observation, and — once attached — one
// human-readable label per observation.
//
// ✨ Key features:
//   - Generate: i.i.d. Gaussian base data with a fixed observation order
//     (subject → run → repetition → category), reproducible per seed
//   - AttachLabels: freeze a target→label dictionary onto the observations
//   - NewRand / PermSubset: the single RNG policy used by every stochastic
//     step downstream (seed==0 ⇒ fixed default seed)
//
// ⚙️ Usage:
//
//	cfg := dataset.Config{Categories: 8, Runs: 4, Reps: 2, Seed: 42}
//	ds, err := dataset.Generate(cfg)
//
// The base data carries no representational structure on purpose: similarity
// between conditions is injected afterwards by package cluster, so that the
// ground truth of every analysis is known exactly.
//
// Performance: Generate is O(observations × features); all other methods are
// linear in the data they touch.
package dataset
