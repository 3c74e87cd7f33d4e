// Package rsa regresses an observed representational dissimilarity matrix
// against a set of model RDMs — the final, inferential step of the pipeline.
//
// 🚀 How it works
//
//	Every RDM is flattened to its strict lower triangle (a fixed, shared
//	order). The model triangles are stacked as regressors, the observed
//	triangle is the response, and ordinary least squares yields one
//	coefficient per model: how strongly that model's predicted structure is
//	present in the data. Optionally both sides are rank-transformed first
//	(a Spearman-flavored fit that ignores monotone distortions).
//
// ⚠️ Interpretation:
//
//	The coefficients are a linear decomposition of observed structure onto
//	the supplied hypothesis basis — nothing more. A large coefficient is not
//	a causal claim about "true" representational content.
//
// ⚙️ Usage:
//
//	res, err := rsa.Regress(observed, models)
//	for i, c := range res.Coefficients {
//	  fmt.Printf("%-24s %+.3f\n", res.Descriptions[i], c)
//	}
//
// An intercept column is included by default (model triangles are 0/2-valued
// while correlation distances hover around 1; without an intercept the
// coefficients would absorb that offset). Disable with WithoutIntercept.
package rsa
