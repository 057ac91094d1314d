package otutable

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
	"github.com/timkahlke/panbiom"
)

// TaxonomyColumn is the (case insensitive) header of the optional trailing
// taxonomy column.
const TaxonomyColumn = "taxonomy"

// sniffBytes bounds how much of the input is handed to the delimiter
// detector.
const sniffBytes = 64 * 1024

type ReadOptions struct {
	// Delimiter separates columns. If zero, it is detected from the data.
	Delimiter rune

	// Verbose logs what was skipped and loaded.
	Verbose bool
}

// Open loads the table at path, which may be local or gs://, compressed or
// not. client is only needed for gs:// paths.
func Open(ctx context.Context, path string, client *storage.Client, opts ReadOptions) (*Table, error) {
	rc, err := panbiom.OpenInput(ctx, path, client)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	t, err := Read(rc, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if opts.Verbose {
		log.Printf("Loaded %d features x %d samples from %s\n", t.NumFeatures(), t.NumSamples(), path)
	}

	return t, nil
}

// Read parses a classic OTU table. Leading lines starting with # that hold a
// single field (such as "# Constructed from biom file") are skipped. The first
// line with more than one field is the header; its first cell (usually
// "#OTU ID") is ignored, the remaining cells name the samples, and a final
// "taxonomy" cell marks a column of ;-separated classification labels.
func Read(r io.Reader, opts ReadOptions) (*Table, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, pfx.Err(err)
	}

	delim := opts.Delimiter
	if delim == 0 {
		sample := raw
		if len(sample) > sniffBytes {
			sample = sample[:sniffBytes]
		}
		delim = panbiom.DetermineDelimiter(sample)
	}

	cr := csv.NewReader(bytes.NewReader(raw))
	cr.Comma = delim
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var (
		header      []string
		hasTaxonomy bool
		features    []string
		counts      [][]float64
		taxonomy    [][]string
	)

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, pfx.Err(err)
		}
		line, _ := cr.FieldPos(0)

		if header == nil {
			if len(row) < 2 {
				if opts.Verbose {
					log.Printf("Skipping line %d before the header: %q\n", line, strings.Join(row, string(delim)))
				}
				continue
			}

			header = row
			if last := strings.TrimSpace(header[len(header)-1]); strings.EqualFold(last, TaxonomyColumn) {
				hasTaxonomy = true
			}
			continue
		}

		if len(row) > 0 && strings.HasPrefix(row[0], "#") {
			continue
		}
		if len(row) == 1 && strings.TrimSpace(row[0]) == "" {
			continue
		}

		if len(row) != len(header) {
			return nil, fmt.Errorf("line %d has %d fields, but the header has %d", line, len(row), len(header))
		}

		feature := strings.TrimSpace(row[0])
		countCells := row[1:]
		if hasTaxonomy {
			countCells = row[1 : len(row)-1]
			taxonomy = append(taxonomy, ParseTaxonomy(row[len(row)-1]))
		}

		values := make([]float64, len(countCells))
		for j, cell := range countCells {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, fmt.Errorf("line %d, feature %q, sample %q: %w", line, feature, strings.TrimSpace(header[j+1]), err)
			}
			values[j] = v
		}

		features = append(features, feature)
		counts = append(counts, values)
	}

	if header == nil {
		return nil, ErrEmptyTable
	}

	sampleCells := header[1:]
	if hasTaxonomy {
		sampleCells = header[1 : len(header)-1]
	}
	samples := make([]string, len(sampleCells))
	for j, s := range sampleCells {
		samples[j] = strings.TrimSpace(s)
	}

	return New(features, samples, counts, taxonomy)
}

// ParseTaxonomy splits a taxonomy cell such as
// "k__Bacteria; p__Firmicutes; c__" into its non-empty labels.
func ParseTaxonomy(cell string) []string {
	cell = strings.Trim(strings.TrimSpace(cell), `"`)
	if cell == "" {
		return []string{}
	}

	parts := strings.Split(cell, ";")
	labels := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			labels = append(labels, p)
		}
	}

	return labels
}
