// Package decode provides a reference decoder for simulated datasets: a
// nearest-centroid classifier with leave-one-chunk-out cross-validation.
//
// It sits downstream of the analysis core — RDM construction and RSA never
// depend on it — and exists so pipelines can report a decoding accuracy next
// to their representational results: injected cluster structure that is
// measurable in an RDM is usually also decodable, and a chance-level accuracy
// on supposedly structured data is a red flag for the simulation setup.
//
// ⚙️ Usage:
//
//	predicted, accuracy, err := decode.LeaveOneChunkOut(ds)
//
// Chunks (runs) are the cross-validation unit: each fold holds one chunk out,
// fits centroids on the rest, and predicts the held-out observations, so
// train and test never share a run.
package decode
