// Package neurorsa is an in-memory laboratory for representational
// similarity analysis (RSA) on fabricated neural-response data — from
// controllable dataset synthesis to model-RDM regression.
//
// 🚀 What is neurorsa?
//
//	A deterministic, pure-Go toolkit for methodological experiments where
//	the ground truth is known because you injected it yourself:
//		• Dataset synthesis: Gaussian base data with per-condition targets & runs
//		• Cluster injection: blend shared patterns into chosen conditions
//		• Clustering schemes: ordered, nestable similarity hypotheses per ROI
//		• Model RDMs: idealized 0/2 dissimilarity matrices per scheme
//		• Observed RDMs: condition-averaged correlation-distance matrices
//		• RSA regression: decompose an observed RDM onto a model basis
//		• Reference decoding: nearest-centroid + leave-one-run-out CV
//
// ✨ Why choose neurorsa?
//
//   - Reproducible by construction – every random draw flows through an
//     explicitly threaded generator; same seed ⇒ identical results
//   - Sentinel errors, no panics – precondition violations abort the run
//     with a matchable error, never with fabricated data
//   - Pure data – no I/O, no plotting, no services; numeric tables in,
//     numeric tables out
//
// The pipeline is organized as flat subpackages:
//
//	dataset/ — Dataset model, seeded base-data factory, RNG utilities
//	cluster/ — ClusterSpec injection & ordered scheme application
//	rdm/     — model (categorical) and observed (empirical) RDM builders
//	rsa/     — regression of an observed RDM against stacked model RDMs
//	decode/  — reference nearest-centroid decoder with run-wise CV
//
// Typical flow:
//
//	generate → inject scheme → label → observed RDM ┐
//	                      model RDMs per hypothesis ┴→ regress → coefficients
//
// See examples/ for complete runnable scenarios.
//
//	go get github.com/katalvlaran/neurorsa
package neurorsa
