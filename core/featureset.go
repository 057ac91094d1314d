package core

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/timkahlke/panbiom/otutable"
)

// passes is the per-sample predicate shared by every extractor.
func passes(count, threshold float64) bool {
	return count > 0 && count >= threshold
}

// passingFeatures returns the rows of every feature passing in column j. buf
// is scratch space of at least NumFeatures.
func passingFeatures(t *otutable.Table, j int, threshold float64, buf []float64) *roaring.Bitmap {
	rb := roaring.New()
	for i, v := range t.Column(buf, j) {
		if passes(v, threshold) {
			rb.Add(uint32(i))
		}
	}

	return rb
}

// rows lists the bitmap's members in ascending, i.e. table, order.
func rows(rb *roaring.Bitmap) []int {
	if rb == nil {
		return []int{}
	}

	out := make([]int, 0, rb.GetCardinality())
	it := rb.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}

	return out
}
