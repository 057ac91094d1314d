package panbiom

import (
	"bytes"
	"strings"

	"github.com/csimplestring/go-csv/detector"
)

// Delimiters that can plausibly separate the columns of an OTU table. Spaces
// are excluded because the BIOM header ("#OTU ID") contains one.
const candidateDelimiters = "\t,;|"

// DetermineDelimiter returns the single most likely rune that delimits the
// values in sample, assuming a CSV-like OTU table. Tables exported from BIOM
// are tab delimited, so tab is returned when nothing better is detected.
func DetermineDelimiter(sample []byte) rune {
	d := detector.New()
	delimiters := d.DetectDelimiter(bytes.NewReader(sample), '"')

	for _, v := range delimiters {
		if v == "" {
			continue
		}
		if r := rune(v[0]); strings.ContainsRune(candidateDelimiters, r) {
			return r
		}
	}

	return '\t'
}
