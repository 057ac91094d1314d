package core

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/timkahlke/panbiom/otutable"
)

// Result is an ordered, duplicate free list of core features.
type Result struct {
	// Rows are table rows of the core features, in table order.
	Rows []int

	Threshold float64

	// Columns are the sample columns that took part.
	Columns []int

	// Groups describes each replicate group's local core. It is empty for a
	// plain selection.
	Groups []GroupCore
}

// GroupCore summarises one replicate group's contribution.
type GroupCore struct {
	Name       string
	Columns    []int
	MinPassing int
	Size       int
}

func (r Result) Len() int { return len(r.Rows) }

// FeatureIDs returns the identifiers of the core features.
func (r Result) FeatureIDs(t *otutable.Table) []string {
	out := make([]string, len(r.Rows))
	for k, i := range r.Rows {
		out[k] = t.FeatureID(i)
	}
	return out
}

// ExtractCore returns the features passing the threshold in every one of
// columns. With no columns there is no core.
func ExtractCore(t *otutable.Table, columns []int, threshold float64) Result {
	res := Result{
		Threshold: threshold,
		Columns:   append([]int(nil), columns...),
	}

	if len(columns) == 0 {
		res.Rows = []int{}
		return res
	}

	buf := make([]float64, t.NumFeatures())
	perColumn := make([]*roaring.Bitmap, 0, len(columns))
	for _, j := range columns {
		rb := passingFeatures(t, j, threshold, buf)
		if rb.IsEmpty() {
			res.Rows = []int{}
			return res
		}
		perColumn = append(perColumn, rb)
	}

	res.Rows = rows(roaring.FastAnd(perColumn...))
	return res
}
