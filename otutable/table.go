// Package otutable holds the feature-by-sample abundance matrix that every
// panbiom computation reads from, together with a loader for tab separated
// OTU tables as exported by `biom convert --to-tsv`.
//
// A Table is immutable once constructed and may be shared freely between
// goroutines.
package otutable

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ErrEmptyTable is returned when a table would have no features or no
// samples.
var ErrEmptyTable = errors.New("otutable: table has no features or no samples")

type DuplicateFeatureError struct {
	Feature string
}

func (e *DuplicateFeatureError) Error() string {
	return fmt.Sprintf("otutable: feature %q appears more than once", e.Feature)
}

type DuplicateSampleError struct {
	Sample string
}

func (e *DuplicateSampleError) Error() string {
	return fmt.Sprintf("otutable: sample %q appears more than once", e.Sample)
}

// NegativeCountError reports a count below zero, or one that is not a finite
// number.
type NegativeCountError struct {
	Feature string
	Sample  string
	Count   float64
}

func (e *NegativeCountError) Error() string {
	if math.IsNaN(e.Count) || math.IsInf(e.Count, 0) {
		return fmt.Sprintf("otutable: count for feature %q in sample %q is not finite (%v)", e.Feature, e.Sample, e.Count)
	}
	return fmt.Sprintf("otutable: count for feature %q in sample %q is negative (%v)", e.Feature, e.Sample, e.Count)
}

// Table is a features x samples matrix of non-negative counts. Rows are
// features and columns are samples, both kept in the order they were
// supplied.
type Table struct {
	features []string
	samples  []string
	taxonomy [][]string

	featureIndex map[string]int
	sampleIndex  map[string]int

	counts    *mat.Dense
	columnSum []float64
}

// New builds a Table. counts is indexed [feature][sample]. taxonomy may be nil,
// otherwise it must hold one (possibly empty) label list per feature.
func New(features, samples []string, counts [][]float64, taxonomy [][]string) (*Table, error) {
	if len(features) == 0 || len(samples) == 0 {
		return nil, ErrEmptyTable
	}
	if len(counts) != len(features) {
		return nil, fmt.Errorf("otutable: %d count rows for %d features", len(counts), len(features))
	}
	if taxonomy != nil && len(taxonomy) != len(features) {
		return nil, fmt.Errorf("otutable: %d taxonomy entries for %d features", len(taxonomy), len(features))
	}

	t := &Table{
		features:     append([]string(nil), features...),
		samples:      append([]string(nil), samples...),
		featureIndex: make(map[string]int, len(features)),
		sampleIndex:  make(map[string]int, len(samples)),
	}

	for i, f := range features {
		if _, exists := t.featureIndex[f]; exists {
			return nil, &DuplicateFeatureError{Feature: f}
		}
		t.featureIndex[f] = i
	}
	for j, s := range samples {
		if _, exists := t.sampleIndex[s]; exists {
			return nil, &DuplicateSampleError{Sample: s}
		}
		t.sampleIndex[s] = j
	}

	data := make([]float64, 0, len(features)*len(samples))
	for i, row := range counts {
		if len(row) != len(samples) {
			return nil, fmt.Errorf("otutable: feature %q has %d counts for %d samples", features[i], len(row), len(samples))
		}
		for j, v := range row {
			if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, &NegativeCountError{Feature: features[i], Sample: samples[j], Count: v}
			}
		}
		data = append(data, row...)
	}
	t.counts = mat.NewDense(len(features), len(samples), data)

	if taxonomy != nil {
		t.taxonomy = make([][]string, len(taxonomy))
		for i, labels := range taxonomy {
			t.taxonomy[i] = append([]string{}, labels...)
		}
	}

	// Column sums are needed by every threshold computation, so take them
	// once here.
	t.columnSum = make([]float64, len(samples))
	col := make([]float64, len(features))
	for j := range samples {
		t.columnSum[j] = floats.Sum(mat.Col(col, j, t.counts))
	}

	return t, nil
}

func (t *Table) NumFeatures() int { return len(t.features) }

func (t *Table) NumSamples() int { return len(t.samples) }

// FeatureID returns the identifier of the feature in row i.
func (t *Table) FeatureID(i int) string { return t.features[i] }

// SampleID returns the identifier of the sample in column j.
func (t *Table) SampleID(j int) string { return t.samples[j] }

// FeatureIDs returns a copy of the feature identifiers in row order.
func (t *Table) FeatureIDs() []string { return append([]string(nil), t.features...) }

// SampleIDs returns a copy of the sample identifiers in column order.
func (t *Table) SampleIDs() []string { return append([]string(nil), t.samples...) }

// FeatureIndex returns the row of the named feature.
func (t *Table) FeatureIndex(feature string) (int, bool) {
	i, ok := t.featureIndex[feature]
	return i, ok
}

// SampleIndex returns the column of the named sample.
func (t *Table) SampleIndex(sample string) (int, bool) {
	j, ok := t.sampleIndex[sample]
	return j, ok
}

// At returns the count of feature row i in sample column j.
func (t *Table) At(i, j int) float64 { return t.counts.At(i, j) }

// Column copies the counts of sample column j into dst, which is allocated
// when nil or too short, and returns it.
func (t *Table) Column(dst []float64, j int) []float64 {
	if len(dst) < len(t.features) {
		dst = make([]float64, len(t.features))
	}
	return mat.Col(dst[:len(t.features)], j, t.counts)
}

// ColumnSum returns the total count of sample column j.
func (t *Table) ColumnSum(j int) float64 { return t.columnSum[j] }

// ColumnSums returns a copy of every sample's total count, in column order.
func (t *Table) ColumnSums() []float64 { return append([]float64(nil), t.columnSum...) }

// Total returns the sum of every count in the table.
func (t *Table) Total() float64 { return floats.Sum(t.columnSum) }

// HasTaxonomy reports whether the table was built with taxonomy annotations.
func (t *Table) HasTaxonomy() bool { return t.taxonomy != nil }

// Taxonomy returns the classification labels of feature row i, or nil when
// there are none.
func (t *Table) Taxonomy(i int) []string {
	if t.taxonomy == nil {
		return nil
	}
	return t.taxonomy[i]
}
