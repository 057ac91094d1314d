package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timkahlke/panbiom/core"
	"gopkg.in/guregu/null.v3"
)

const table = "# Constructed from biom file\n" +
	"#OTU ID\tS1\tS2\tS3\tS4\ttaxonomy\n" +
	"OTU_1\t4\t0\t7\t2\tk__Bacteria; p__Firmicutes\n" +
	"OTU_2\t1\t1\t1\t1\tk__Bacteria; p__Proteobacteria\n" +
	"OTU_3\t9\t9\t0\t0\tk__Archaea\n"

func writeInputs(t *testing.T, treatments string) (dir, tablePath, treatmentsPath string) {
	t.Helper()
	dir = t.TempDir()

	tablePath = filepath.Join(dir, "otu_table.tsv")
	require.NoError(t, os.WriteFile(tablePath, []byte(table), 0o644))

	if treatments != "" {
		treatmentsPath = filepath.Join(dir, "treatments.txt")
		require.NoError(t, os.WriteFile(treatmentsPath, []byte(treatments), 0o644))
	}

	return dir, tablePath, treatmentsPath
}

func TestRunAllSamples(t *testing.T) {
	dir, tablePath, _ := writeInputs(t, "")
	out := filepath.Join(dir, "core.txt")
	partition := filepath.Join(dir, "partition.tsv")

	cfg := config{
		tablePath:     tablePath,
		outputPath:    out,
		partitionPath: partition,
		delimiter:     "\t",
		options:       core.DefaultOptions(),
	}
	require.NoError(t, run(cfg))

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "# Core OTUs of file "+tablePath+": 1\nOTU_2\tk__Bacteria;p__Proteobacteria\n", string(got))

	got, err = os.ReadFile(partition)
	require.NoError(t, err)
	assert.Contains(t, string(got), "OTU_1\t3\taccessory\t")
}

func TestRunReplicates(t *testing.T) {
	dir, tablePath, treatmentsPath := writeInputs(t, "S1\tA\nS2\tA\nS3\tB\nS4\tB\n")
	out := filepath.Join(dir, "core.txt")

	opts := core.DefaultOptions()
	opts.RequiredCount = null.IntFrom(1)
	opts.PrintTaxonomy = false

	require.NoError(t, run(config{
		tablePath:      tablePath,
		treatmentsPath: treatmentsPath,
		outputPath:     out,
		delimiter:      "\t",
		options:        opts,
	}))

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "# Core OTUs of file "+tablePath+": 2\nOTU_1\nOTU_2\n", string(got))
}

func TestRunUnknownSample(t *testing.T) {
	dir, tablePath, treatmentsPath := writeInputs(t, "S1\nS9\n")
	out := filepath.Join(dir, "core.txt")

	err := run(config{
		tablePath:      tablePath,
		treatmentsPath: treatmentsPath,
		outputPath:     out,
		delimiter:      "\t",
		options:        core.DefaultOptions(),
	})
	require.Error(t, err)

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr), "no output is written when the selection is invalid")
}

func TestRunRejectsLongDelimiter(t *testing.T) {
	_, tablePath, _ := writeInputs(t, "")
	assert.Error(t, run(config{tablePath: tablePath, delimiter: "ab", options: core.DefaultOptions()}))
}
