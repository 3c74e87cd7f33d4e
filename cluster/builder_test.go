package cluster_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/neurorsa/cluster"
	"github.com/katalvlaran/neurorsa/dataset"
)

// TestApply_OrderAndDiagnostics verifies in-order application, the returned
// diagnostic spec list, and label attachment.
func TestApply_OrderAndDiagnostics(t *testing.T) {
	ds := baseDS(t, 8)
	scheme, err := cluster.SchemeForROI(cluster.VentralTemporal, 8)
	require.NoError(t, err)

	applied, err := cluster.Apply(ds, scheme, cluster.DefaultLabels(8), dataset.NewRand(42))
	require.NoError(t, err)

	assert.Equal(t, scheme.Specs, applied, "diagnostics mirror the scheme in application order")
	require.NotNil(t, ds.Labels)
	assert.Equal(t, "human face", ds.Labels[0], "target 1 labeled through the dictionary")
	assert.NoError(t, ds.Validate())
}

// TestApply_OrderDependence: running the same specs in reverse produces a
// different dataset — sequencing is semantic and must not be normalized away.
func TestApply_OrderDependence(t *testing.T) {
	broad := cluster.Spec{Targets: []int{1, 2, 3, 4}, Sigma: 0.8, Desc: "animate"}
	narrow := cluster.Spec{Targets: []int{1, 2}, Sigma: 0.6, Desc: "humans"}

	forward := baseDS(t, 4)
	_, err := cluster.Apply(forward, cluster.Scheme{Name: "fwd", Specs: []cluster.Spec{broad, narrow}}, nil, dataset.NewRand(3))
	require.NoError(t, err)

	reversed := baseDS(t, 4)
	_, err = cluster.Apply(reversed, cluster.Scheme{Name: "rev", Specs: []cluster.Spec{narrow, broad}}, nil, dataset.NewRand(3))
	require.NoError(t, err)

	assert.NotEqual(t, forward.Samples, reversed.Samples)
}

// TestApply_NestedHierarchy: after the VT scheme, within-subcluster condition
// means sit closer together than across subclusters, and animate–inanimate is
// the widest split.
func TestApply_NestedHierarchy(t *testing.T) {
	// A wide feature space keeps the pattern-norm estimates tight.
	ds, err := dataset.Generate(dataset.Config{Categories: 8, Runs: 4, Reps: 2, Features: 200, Seed: 42})
	require.NoError(t, err)
	scheme, err := cluster.SchemeForROI(cluster.VentralTemporal, 8)
	require.NoError(t, err)
	_, err = cluster.Apply(ds, scheme, nil, dataset.NewRand(42))
	require.NoError(t, err)

	mean := func(target int) []float64 {
		m, n := ds.CategoryMean(target)
		require.Positive(t, n)
		return m
	}
	withinHumans := euclid(mean(1), mean(2))
	humanAnimal := euclid(mean(1), mean(3))
	animateInanimate := euclid(mean(1), mean(5))

	assert.Less(t, withinHumans, humanAnimal, "nested cluster tighter than its parent")
	assert.Less(t, humanAnimal, animateInanimate, "parent cluster tighter than no cluster")
}

// TestApply_LabelFailureAborts: a dictionary missing a target id must surface
// dataset.ErrUnknownTarget and leave the dataset unlabeled.
func TestApply_LabelFailureAborts(t *testing.T) {
	ds := baseDS(t, 4)
	scheme := cluster.Scheme{
		Name:  "flat",
		Specs: []cluster.Spec{{Targets: []int{1, 2}, Sigma: 0.5, Desc: "pair"}},
	}
	sparse := map[int]string{1: "a", 2: "b", 3: "c"} // 4 is missing

	_, err := cluster.Apply(ds, scheme, sparse, dataset.NewRand(1))
	assert.ErrorIs(t, err, dataset.ErrUnknownTarget)
	assert.Nil(t, ds.Labels)
}

// TestApply_FailingSpecNamesStep: the error wraps scheme name and step index.
func TestApply_FailingSpecNamesStep(t *testing.T) {
	ds := baseDS(t, 4)
	scheme := cluster.Scheme{
		Name: "broken",
		Specs: []cluster.Spec{
			{Targets: []int{1}, Sigma: 0.4, Desc: "ok"},
			{Targets: []int{9}, Sigma: 0.4, Desc: "out of range"},
		},
	}

	_, err := cluster.Apply(ds, scheme, nil, dataset.NewRand(1))
	assert.ErrorIs(t, err, cluster.ErrInvalidClusterSpec)
	assert.Contains(t, err.Error(), `scheme "broken": step 1`)
}

// TestDefaultLabels_VocabularyAndFallback covers the fixed names and the
// synthetic fallback beyond the built-in vocabulary.
func TestDefaultLabels_VocabularyAndFallback(t *testing.T) {
	labels := cluster.DefaultLabels(10)
	assert.Len(t, labels, 10)
	assert.Equal(t, "human face", labels[1])
	assert.Equal(t, "chair", labels[8])
	assert.Equal(t, "condition 9", labels[9])
}

// TestSchemeForROI covers the scheme library and its preconditions.
func TestSchemeForROI(t *testing.T) {
	vt, err := cluster.SchemeForROI(cluster.VentralTemporal, 8)
	require.NoError(t, err)
	assert.Len(t, vt.Specs, 4)
	assert.NoError(t, vt.Validate(8))

	v1, err := cluster.SchemeForROI(cluster.EarlyVisual, 12)
	require.NoError(t, err)
	require.Len(t, v1.Specs, 1)
	assert.Len(t, v1.Specs[0].Targets, 12, "weak uniform spec spans every category")

	_, err = cluster.SchemeForROI(cluster.VentralTemporal, 6)
	assert.ErrorIs(t, err, cluster.ErrInvalidClusterSpec)

	_, err = cluster.SchemeForROI(cluster.ROI(99), 8)
	assert.ErrorIs(t, err, cluster.ErrUnknownROI)
}
