// Package rdm builds representational dissimilarity matrices (RDMs): the
// idealized model matrices predicted by clustering schemes and the empirical
// matrix observed in a dataset.
//
// 🚀 What is an RDM?
//
//	A symmetric C×C matrix of pairwise dissimilarities between the C
//	experimental conditions, zero on the diagonal. RSA compares an observed
//	RDM against model RDMs to ask which hypothesized structure best explains
//	the data.
//
// ✨ Two builders:
//   - Models — one categorical RDM per clustering scheme, independent of any
//     sampled data: 0 where two categories share a cluster, 2 otherwise.
//     Binary by design; there is no graded model dissimilarity.
//   - Observed — averages the dataset per category (across runs/reps) and
//     measures pairwise correlation distance (1 − Pearson) between the
//     condition means; Euclidean distance is available as an option.
//
// ⚙️ Usage:
//
//	models, err := rdm.Models(8, schemes)
//	observed, err := rdm.Observed(ds)
//	tri := observed.TriangleVector() // lower triangle, ready for regression
//
// Matrices are stored as gonum *mat.SymDense and are immutable by convention
// once built.
package rdm
