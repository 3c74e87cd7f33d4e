// Package cluster injects controllable representational similarity into a
// synthetic dataset by blending shared random patterns into chosen conditions.
//
// 🚀 How it works
//
//	A Spec names a set of target ids, a strength sigma ∈ [0,1] and a
//	description. Inject pulls every observation of those targets toward one
//	shared pattern: the stronger sigma, the more features the pattern
//	overwrites and the harder the pull. A Scheme is an ordered list of Specs;
//	Apply runs them in sequence, so later, narrower specs partially overwrite
//	earlier, broader ones — that is how nested hierarchies such as
//	Humans ⊂ Animate arise, and why a Scheme's order is a contract, never
//	something this package reorders.
//
// ✨ Key features:
//   - sigma==0 is an exact identity (bit-identical dataset, RNG untouched)
//   - sigma==1 replaces the selected features with the pattern outright
//   - pattern scale tracks the dataset's global standard deviation, so the
//     injected structure sits on the same amplitude as the existing noise
//   - per-ROI scheme library resolved before the pipeline runs
//
// ⚙️ Usage:
//
//	rng := dataset.NewRand(42)
//	scheme, _ := cluster.SchemeForROI(cluster.VentralTemporal, 8)
//	applied, err := cluster.Apply(ds, scheme, cluster.DefaultLabels(8), rng)
//
// Determinism: all randomness flows through the caller's *rand.Rand in a fixed
// call order (feature subset first, then the pattern), so a fixed seed replays
// the injection exactly.
package cluster
