package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timkahlke/panbiom/core"
	"github.com/timkahlke/panbiom/otutable"
)

func taxonomyTable(t *testing.T) *otutable.Table {
	t.Helper()
	tbl, err := otutable.New(
		[]string{"OTU_1", "OTU_2", "OTU_3"},
		[]string{"S1", "S2"},
		[][]float64{{10, 0}, {5, 5}, {3, 8}},
		[][]string{{"k__Bacteria", "p__Firmicutes"}, {"k__Bacteria", "p__Bacteroidetes"}, {}},
	)
	require.NoError(t, err)
	return tbl
}

func TestWriteCoreWithTaxonomy(t *testing.T) {
	tbl := taxonomyTable(t)
	res := core.ExtractCore(tbl, []int{0, 1}, 0)

	var buf bytes.Buffer
	require.NoError(t, WriteCore(&buf, "table.tsv", tbl, res, true))
	assert.Equal(t, "# Core OTUs of file table.tsv: 2\nOTU_2\tk__Bacteria;p__Bacteroidetes\nOTU_3\n", buf.String())
}

func TestWriteCoreWithoutTaxonomy(t *testing.T) {
	tbl := taxonomyTable(t)
	res := core.ExtractCore(tbl, []int{0}, 0)

	var buf bytes.Buffer
	require.NoError(t, WriteCore(&buf, "t", tbl, res, false))
	assert.Equal(t, "# Core OTUs of file t: 3\nOTU_1\nOTU_2\nOTU_3\n", buf.String())
}

func TestWriteCoreEmpty(t *testing.T) {
	tbl := taxonomyTable(t)

	var buf bytes.Buffer
	require.NoError(t, WriteCore(&buf, "t", tbl, core.ExtractCore(tbl, nil, 0), true))
	assert.Equal(t, "# Core OTUs of file t: 0\n", buf.String())
}

func TestWritePartition(t *testing.T) {
	tbl := taxonomyTable(t)
	p := core.Partition(tbl, []int{0, 1}, 0)

	var buf bytes.Buffer
	require.NoError(t, WritePartition(&buf, tbl, p))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "feature\tprevalence\tclass\ttaxonomy", lines[0])
	assert.Equal(t, "OTU_1\t1\tunique\tk__Bacteria;p__Firmicutes", lines[1])
	assert.Equal(t, "OTU_2\t2\tcore\tk__Bacteria;p__Bacteroidetes", lines[2])
	assert.Equal(t, "OTU_3\t2\tcore\t", lines[3])

	assert.Equal(t, "core 2, accessory 0, unique 1, absent 0", PartitionCounts(p))
}
