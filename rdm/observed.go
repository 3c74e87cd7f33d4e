package rdm

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/neurorsa/dataset"
)

// Observed — empirical RDM construction.
//
// Description:
//
//	Averages the dataset across repetitions/runs per condition, then measures
//	the pairwise dissimilarity between the C condition means. Row/column order
//	is ascending target id; labels are carried from the dataset when attached
//	(first observation of each target), "condition N" otherwise.
//
// Outline:
//  1. Validate the dataset; require C ≥ 2.
//  2. Per target 1..C: mean feature vector over all its observations.
//     A target with zero observations aborts with ErrEmptyCategory naming it —
//     imputing a missing condition would fabricate similarity structure.
//  3. Optionally center each mean (subtract its own average).
//  4. Fill the symmetric matrix with the configured metric; zero diagonal.
//
// Errors: dataset validation errors, ErrTooFewCategories, ErrEmptyCategory,
// ErrConstantPattern (correlation against a zero-variance mean).
//
// Complexity: O(observations × F + C² × F).
func Observed(ds *dataset.Dataset, opts ...Option) (RDM, error) {
	if err := ds.Validate(); err != nil {
		return RDM{}, err
	}
	c := ds.NumCategories()
	if c < 2 {
		return RDM{}, fmt.Errorf("c=%d: %w", c, ErrTooFewCategories)
	}
	o := gatherOptions(opts...)

	means := make([][]float64, c)
	labels := make([]string, c)
	for t := 1; t <= c; t++ {
		mean, n := ds.CategoryMean(t)
		if n == 0 {
			return RDM{}, fmt.Errorf("observed rdm: target %d: %w", t, ErrEmptyCategory)
		}
		means[t-1] = mean
		labels[t-1] = fmt.Sprintf("condition %d", t)
	}
	if ds.Labels != nil {
		for i, t := range ds.Targets {
			labels[t-1] = ds.Labels[i]
		}
	}

	if o.center {
		for _, mean := range means {
			offset := stat.Mean(mean, nil)
			for j := range mean {
				mean[j] -= offset
			}
		}
	}

	m := mat.NewSymDense(c, nil)
	for i := 0; i < c; i++ {
		for j := i + 1; j < c; j++ {
			d, err := dissimilarity(means[i], means[j], o.metric)
			if err != nil {
				return RDM{}, fmt.Errorf("observed rdm: conditions %d/%d: %w", i+1, j+1, err)
			}
			m.SetSym(i, j, d)
		}
	}

	return RDM{M: m, Labels: labels, Desc: metricDesc(o.metric)}, nil
}

// dissimilarity applies one pairwise metric to two equal-length vectors.
func dissimilarity(a, b []float64, metric Metric) (float64, error) {
	switch metric {
	case EuclideanDistance:
		var sum float64
		for j := range a {
			d := a[j] - b[j]
			sum += d * d
		}

		return math.Sqrt(sum), nil
	default: // CorrelationDistance
		if stat.StdDev(a, nil) == 0 || stat.StdDev(b, nil) == 0 {
			return 0, ErrConstantPattern
		}

		return 1 - stat.Correlation(a, b, nil), nil
	}
}

// metricDesc names the metric for the RDM legend.
func metricDesc(metric Metric) string {
	if metric == EuclideanDistance {
		return "euclidean distance"
	}

	return "1 - Pearson correlation"
}
