package depth

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timkahlke/panbiom/otutable"
)

func TestDescribe(t *testing.T) {
	tbl, err := otutable.New(
		[]string{"F1", "F2"},
		[]string{"S1", "S2", "S3", "S4"},
		[][]float64{{1, 2, 3, 10}, {1, 2, 3, 10}},
		nil,
	)
	require.NoError(t, err)

	s, err := Describe(tbl, []int{0, 1, 2, 3})
	require.NoError(t, err)

	assert.Equal(t, 4, s.Samples)
	assert.InDelta(t, 8.0, s.Mean, 1e-9)
	assert.InDelta(t, 5.0, s.Median, 1e-9)
	assert.Equal(t, 2.0, s.Min)
	assert.Equal(t, 20.0, s.Max)
	assert.Greater(t, s.StdDev, 0.0)
	assert.Contains(t, s.String(), "4 samples")

	_, err = Describe(tbl, nil)
	assert.Error(t, err)
}

func TestFprintPrevalenceDegenerate(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FprintPrevalence(&buf, []int{0, 0}, 10))
	assert.Contains(t, buf.String(), "No feature")

	buf.Reset()
	require.NoError(t, FprintPrevalence(&buf, []int{3, 0, 3}, 10))
	assert.Contains(t, buf.String(), "All 2 observed features pass in 3 samples")
}

func TestFprintPrevalence(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FprintPrevalence(&buf, []int{1, 1, 2, 3, 3, 3, 0}, 10))
	assert.NotEmpty(t, buf.String())
}
