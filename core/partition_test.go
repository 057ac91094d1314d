package core

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartitionClasses(t *testing.T) {
	tbl := fourSamples(t)

	p := Partition(tbl, []int{0, 1, 2, 3}, 0)
	assert.Equal(t, []int{3, 4, 2}, p.Prevalence)
	assert.Equal(t, []int{1}, p.Core)
	assert.Equal(t, []int{0, 2}, p.Accessory)
	assert.Empty(t, p.Unique)
	assert.Empty(t, p.Absent)

	p = Partition(tbl, []int{1, 2}, 0)
	assert.Equal(t, ClassUnique, p.Classify(0))
	assert.Equal(t, ClassCore, p.Classify(1))
	assert.Equal(t, ClassUnique, p.Classify(2))

	p = Partition(tbl, []int{1, 3}, 5)
	assert.Equal(t, ClassAbsent, p.Classify(0))
	assert.Equal(t, ClassAbsent, p.Classify(1))
	assert.Equal(t, ClassUnique, p.Classify(2))
}

func TestPartitionCoreMatchesExtractCore(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for iter := 0; iter < 20; iter++ {
		tbl := randomTable(t, rng, 30, 4)
		columns := rng.Perm(4)[:1+rng.Intn(4)]
		threshold := float64(rng.Intn(20))

		p := Partition(tbl, columns, threshold)
		assert.Equal(t, ExtractCore(tbl, columns, threshold).Rows, p.Core)
		assert.Equal(t, tbl.NumFeatures(), len(p.Core)+len(p.Accessory)+len(p.Unique)+len(p.Absent))
	}
}

func TestComputePartitionUsesGroupsAsSelection(t *testing.T) {
	tbl := fourSamples(t)

	p, err := ComputePartition(tbl, Request{Groups: twoGroups, Options: DefaultOptions()})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, p.Columns)
	assert.Equal(t, []int{1}, p.Core)
}
