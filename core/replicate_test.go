package core

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timkahlke/panbiom/otutable"
	"gopkg.in/guregu/null.v3"
)

// fourSamples has two groups, A=[S1,S2] and B=[S3,S4]. OTU_1 passes in one
// replicate of A and both of B; OTU_2 passes everywhere; OTU_3 is missing
// from all of B.
func fourSamples(t *testing.T) *otutable.Table {
	t.Helper()
	tbl, err := otutable.New(
		[]string{"OTU_1", "OTU_2", "OTU_3"},
		[]string{"S1", "S2", "S3", "S4"},
		[][]float64{
			{4, 0, 7, 2},
			{1, 1, 1, 1},
			{9, 9, 0, 0},
		},
		nil,
	)
	require.NoError(t, err)
	return tbl
}

var twoGroups = []ReplicateGroup{
	{Name: "A", Samples: []string{"S1", "S2"}},
	{Name: "B", Samples: []string{"S3", "S4"}},
}

func TestMinPassing(t *testing.T) {
	for _, v := range []struct {
		size      int
		required  null.Int
		tolerance Tolerance
		expected  int
	}{
		{3, null.Int{}, ToleranceMinimum, 3},
		{3, null.Int{}, ToleranceExcludeOutliers, 3},
		{3, null.IntFrom(2), ToleranceMinimum, 2},
		{3, null.IntFrom(1), ToleranceExcludeOutliers, 2},
		{3, null.IntFrom(0), ToleranceExcludeOutliers, 3},
		{3, null.IntFrom(0), ToleranceMinimum, 1},
		{3, null.IntFrom(5), ToleranceExcludeOutliers, 1},
		{3, null.IntFrom(5), ToleranceMinimum, 5},
		{0, null.Int{}, ToleranceMinimum, 1},
	} {
		assert.Equal(t, v.expected, MinPassing(v.size, v.required, v.tolerance), "%+v", v)
	}
}

func TestReplicateScenarioOneOfTwo(t *testing.T) {
	tbl := fourSamples(t)

	opts := DefaultOptions()
	opts.RequiredCount = null.IntFrom(1)
	opts.Tolerance = ToleranceMinimum

	res, err := Compute(tbl, Request{Groups: twoGroups, Options: opts})
	require.NoError(t, err)

	assert.Equal(t, []string{"OTU_1", "OTU_2"}, res.FeatureIDs(tbl))
	assert.Equal(t, []int{0, 1, 2, 3}, res.Columns)
	require.Len(t, res.Groups, 2)
	assert.Equal(t, GroupCore{Name: "A", Columns: []int{0, 1}, MinPassing: 1, Size: 3}, res.Groups[0])
	assert.Equal(t, GroupCore{Name: "B", Columns: []int{2, 3}, MinPassing: 1, Size: 2}, res.Groups[1])
}

func TestReplicateEveryReplicateByDefault(t *testing.T) {
	tbl := fourSamples(t)

	res, err := Compute(tbl, Request{Groups: twoGroups, Options: DefaultOptions()})
	require.NoError(t, err)
	assert.Equal(t, []string{"OTU_2"}, res.FeatureIDs(tbl))
}

func TestReplicateExcludeOutliers(t *testing.T) {
	tbl := fourSamples(t)

	opts := DefaultOptions()
	opts.RequiredCount = null.IntFrom(1)
	opts.Tolerance = ToleranceExcludeOutliers

	// One failure per group is allowed, so OTU_1 survives group A.
	res, err := Compute(tbl, Request{Groups: twoGroups, Options: opts})
	require.NoError(t, err)
	assert.Equal(t, []string{"OTU_1", "OTU_2"}, res.FeatureIDs(tbl))
}

func TestExcludeOutliersZeroEqualsMinimumAll(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for iter := 0; iter < 20; iter++ {
		tbl := randomTable(t, rng, 50, 6)
		groups := []ResolvedGroup{
			{Name: "A", Columns: []int{0, 1, 2}},
			{Name: "B", Columns: []int{3, 4}},
			{Name: "C", Columns: []int{5}},
		}

		outliers, err := ExtractReplicateCore(tbl, groups, 2, null.IntFrom(0), ToleranceExcludeOutliers)
		require.NoError(t, err)

		// ToleranceMinimum with |g| per group is expressed by leaving the
		// count unset, since each group has a different size.
		minimum, err := ExtractReplicateCore(tbl, groups, 2, null.Int{}, ToleranceMinimum)
		require.NoError(t, err)
		assert.Equal(t, minimum.Rows, outliers.Rows)

		for _, g := range groups {
			single, err := ExtractReplicateCore(tbl, []ResolvedGroup{g}, 2, null.IntFrom(int64(len(g.Columns))), ToleranceMinimum)
			require.NoError(t, err)
			zero, err := ExtractReplicateCore(tbl, []ResolvedGroup{g}, 2, null.IntFrom(0), ToleranceExcludeOutliers)
			require.NoError(t, err)
			assert.Equal(t, single.Rows, zero.Rows)
		}

		// With every replicate required the result is the plain core.
		assert.Equal(t, ExtractCore(tbl, []int{0, 1, 2, 3, 4, 5}, 2).Rows, minimum.Rows)
	}
}

func TestReplicateNoGroups(t *testing.T) {
	tbl := fourSamples(t)

	_, err := ExtractReplicateCore(tbl, nil, 0, null.Int{}, ToleranceMinimum)
	var groupErr *InvalidGroupError
	assert.True(t, errors.As(err, &groupErr))
}

func TestReplicateEmptyGroupEmptiesCore(t *testing.T) {
	tbl := fourSamples(t)

	res, err := ExtractReplicateCore(tbl, []ResolvedGroup{
		{Name: "A", Columns: []int{0, 1}},
		{Name: "empty"},
	}, 0, null.Int{}, ToleranceMinimum)
	require.NoError(t, err)
	assert.Empty(t, res.Rows)
	assert.Equal(t, 0, res.Groups[1].Size)
}

func TestReplicateThreshold(t *testing.T) {
	tbl := fourSamples(t)

	// Selection total is 35, so a fraction of 0.1 puts the threshold at 3.5
	// and OTU_2's counts of 1 no longer pass.
	opts := DefaultOptions()
	opts.Fraction = null.FloatFrom(0.1)
	opts.RequiredCount = null.IntFrom(1)

	res, err := Compute(tbl, Request{Groups: twoGroups, Options: opts})
	require.NoError(t, err)
	assert.InDelta(t, 3.5, res.Threshold, 1e-12)
	assert.Equal(t, []string{"OTU_1"}, res.FeatureIDs(tbl))
}
