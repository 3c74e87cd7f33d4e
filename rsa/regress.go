package rsa

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/neurorsa/rdm"
)

// DefaultMaxCondition bounds the design matrix's 2-norm condition number.
// Above it (duplicate or near-duplicate model RDMs, a constant model next to
// the intercept) the least-squares coefficients stop meaning "how strongly
// this model's structure is present" and become numerically explosive;
// Regress refuses with ErrIllConditioned instead of fabricating results.
const DefaultMaxCondition = 1e12

// Result holds one regression outcome: a coefficient per model RDM, aligned to
// the input model order, the matching descriptions, and the fitted intercept
// (0 under WithoutIntercept).
type Result struct {
	Coefficients []float64
	Descriptions []string
	Intercept    float64
}

// Regress — RSA model-comparison regression.
//
// Description:
//
//	Flattens the observed RDM and every model RDM to their strict lower
//	triangles (diagonal excluded, shared fixed order), stacks the model
//	vectors as regressors and fits the observed vector as the response via
//	QR least squares. One coefficient per model, in input order.
//
// Outline:
//  1. Validate: observed C ≥ 2; model list non-empty; every model C×C.
//  2. Flatten triangles; optionally rank-transform all vectors.
//  3. Assemble the design matrix (intercept column first when enabled) and
//     solve min ‖Xβ − y‖₂.
//
// Errors:
//   - ErrDimensionMismatch — a model size disagrees with the observed RDM;
//   - ErrNoModels, ErrUnderdetermined, ErrIllConditioned.
//
// Determinism: pure function of its inputs; the triangle order is fixed by
// rdm.TriangleVector.
//
// Complexity: O(C² × models) to assemble, O(rows × p²) to solve.
func Regress(observed rdm.RDM, models []rdm.RDM, opts ...Option) (Result, error) {
	n := observed.Size()
	if n < 2 {
		return Result{}, fmt.Errorf("observed rdm %d×%d has no triangle: %w", n, n, ErrDimensionMismatch)
	}
	if len(models) == 0 {
		return Result{}, ErrNoModels
	}
	for i, m := range models {
		if m.Size() != n {
			return Result{}, fmt.Errorf("model %d (%s) is %d×%d, observed is %d×%d: %w",
				i, m.Desc, m.Size(), m.Size(), n, n, ErrDimensionMismatch)
		}
	}
	o := gatherOptions(opts...)

	y := observed.TriangleVector()
	cols := make([][]float64, len(models))
	descs := make([]string, len(models))
	for i, m := range models {
		cols[i] = m.TriangleVector()
		descs[i] = m.Desc
	}
	if o.rank {
		y = rankTransform(y)
		for i := range cols {
			cols[i] = rankTransform(cols[i])
		}
	}

	rows := len(y)
	p := len(models)
	if o.intercept {
		p++
	}
	if rows < p {
		return Result{}, fmt.Errorf("%d regressors vs %d triangle elements: %w", p, rows, ErrUnderdetermined)
	}

	design := mat.NewDense(rows, p, nil)
	shift := 0
	if o.intercept {
		for r := 0; r < rows; r++ {
			design.Set(r, 0, 1)
		}
		shift = 1
	}
	for i, col := range cols {
		for r, v := range col {
			design.Set(r, shift+i, v)
		}
	}

	// An exactly rank-deficient design (e.g. two identical model RDMs) passes
	// through QR with err == nil; guard on the condition number first.
	if cond := mat.Cond(design, 2); math.IsInf(cond, 1) || cond > DefaultMaxCondition {
		return Result{}, fmt.Errorf("design condition number %.3g exceeds %.0e: %w",
			cond, DefaultMaxCondition, ErrIllConditioned)
	}

	var sol mat.VecDense
	if err := sol.SolveVec(design, mat.NewVecDense(rows, y)); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return Result{}, fmt.Errorf("least squares: %v: %w", err, ErrIllConditioned)
		}
		// A finite condition-number warning still carries a usable solution.
	}

	res := Result{
		Coefficients: make([]float64, len(models)),
		Descriptions: descs,
	}
	if o.intercept {
		res.Intercept = sol.AtVec(0)
	}
	for i := range models {
		res.Coefficients[i] = sol.AtVec(shift + i)
	}

	return res, nil
}

// rankTransform returns the average ranks (1-based) of v, ties sharing the
// mean of their rank run. Input is left untouched.
func rankTransform(v []float64) []float64 {
	idx := make([]int, len(v))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return v[idx[a]] < v[idx[b]] })

	out := make([]float64, len(v))
	for s := 0; s < len(idx); {
		e := s + 1
		for e < len(idx) && v[idx[e]] == v[idx[s]] {
			e++
		}
		avg := float64(s+e+1) / 2 // mean of ranks s+1 .. e
		for k := s; k < e; k++ {
			out[idx[k]] = avg
		}
		s = e
	}

	return out
}
