// Package depth summarises sequencing depth and feature prevalence for the
// status lines printed by the panbiom commands.
package depth

import (
	"fmt"
	"io"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/carbocation/runningvariance"
	"github.com/montanaflynn/stats"
	"github.com/timkahlke/panbiom/otutable"
)

// Summary describes the total counts of a set of samples.
type Summary struct {
	Samples int
	Mean    float64
	StdDev  float64
	Median  float64
	Min     float64
	Max     float64
}

func (s Summary) String() string {
	return fmt.Sprintf("%d samples, depth mean %.6g (SD %.6g), median %.6g, range %.6g-%.6g",
		s.Samples, s.Mean, s.StdDev, s.Median, s.Min, s.Max)
}

// Describe summarises the column totals of the given columns.
func Describe(t *otutable.Table, columns []int) (Summary, error) {
	if len(columns) == 0 {
		return Summary{}, fmt.Errorf("depth: no columns to describe")
	}

	rs := runningvariance.NewRunningStat()
	sums := make(stats.Float64Data, 0, len(columns))
	for _, j := range columns {
		v := t.ColumnSum(j)
		rs.Push(v)
		sums = append(sums, v)
	}

	out := Summary{
		Samples: len(columns),
		Mean:    rs.Mean(),
		StdDev:  rs.StandardDeviation(),
	}

	var err error
	if out.Median, err = stats.Median(sums); err != nil {
		return out, err
	}
	if out.Min, err = stats.Min(sums); err != nil {
		return out, err
	}
	if out.Max, err = stats.Max(sums); err != nil {
		return out, err
	}

	return out, nil
}

// FprintPrevalence draws a text histogram of per-feature prevalence (the
// number of samples a feature passes in), ignoring absent features.
func FprintPrevalence(w io.Writer, prevalence []int, bins int) error {
	values := make([]float64, 0, len(prevalence))
	lo, hi := 0, 0
	for _, n := range prevalence {
		if n == 0 {
			continue
		}
		if len(values) == 0 || n < lo {
			lo = n
		}
		if n > hi {
			hi = n
		}
		values = append(values, float64(n))
	}

	switch {
	case len(values) == 0:
		_, err := fmt.Fprintln(w, "No feature passes in any sample")
		return err
	case lo == hi:
		_, err := fmt.Fprintf(w, "All %d observed features pass in %d samples\n", len(values), lo)
		return err
	}

	if span := hi - lo + 1; bins <= 0 || bins > span {
		bins = span
	}

	return histogram.Fprint(w, histogram.Hist(bins, values), histogram.Linear(40))
}
