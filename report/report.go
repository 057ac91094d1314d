// Package report writes core results and feature partitions.
package report

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/timkahlke/panbiom/core"
	"github.com/timkahlke/panbiom/otutable"
)

// WriteCore writes the core features of res: a header line naming source and
// the number of features, then one feature per line, followed by its
// ;-joined taxonomy when printTaxonomy is set and the feature has any.
func WriteCore(w io.Writer, source string, t *otutable.Table, res core.Result, printTaxonomy bool) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# Core OTUs of file %s: %d\n", source, res.Len())
	for _, i := range res.Rows {
		bw.WriteString(t.FeatureID(i))
		if labels := t.Taxonomy(i); printTaxonomy && len(labels) > 0 {
			bw.WriteByte('\t')
			bw.WriteString(strings.Join(labels, ";"))
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// PartitionRow is one line of a partition table.
type PartitionRow struct {
	Feature    string `csv:"feature"`
	Prevalence int    `csv:"prevalence"`
	Class      string `csv:"class"`
	Taxonomy   string `csv:"taxonomy"`
}

// PartitionRows lists every feature of the table with its prevalence and
// class, in table order.
func PartitionRows(t *otutable.Table, p core.PartitionResult) []*PartitionRow {
	out := make([]*PartitionRow, 0, len(p.Prevalence))
	for i, n := range p.Prevalence {
		out = append(out, &PartitionRow{
			Feature:    t.FeatureID(i),
			Prevalence: n,
			Class:      string(p.Classify(i)),
			Taxonomy:   strings.Join(t.Taxonomy(i), ";"),
		})
	}
	return out
}

// WritePartition writes the partition as a tab separated table with a
// header.
func WritePartition(w io.Writer, t *otutable.Table, p core.PartitionResult) error {
	rows := PartitionRows(t, p)

	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(cw)); err != nil {
		return err
	}
	cw.Flush()

	return cw.Error()
}

// PartitionCounts returns a one line summary of the partition sizes.
func PartitionCounts(p core.PartitionResult) string {
	return fmt.Sprintf("core %d, accessory %d, unique %d, absent %d", len(p.Core), len(p.Accessory), len(p.Unique), len(p.Absent))
}
