package core

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/timkahlke/panbiom/otutable"
	"gopkg.in/guregu/null.v3"
)

// MinPassing returns how many of a group's size replicates a feature must
// pass in. An unset requiredCount demands every replicate. The result is never
// below 1, so a feature absent from every replicate cannot be kept.
func MinPassing(size int, requiredCount null.Int, tolerance Tolerance) int {
	need := size
	if requiredCount.Valid {
		switch tolerance {
		case ToleranceExcludeOutliers:
			need = size - int(requiredCount.Int64)
		default:
			need = int(requiredCount.Int64)
		}
	}

	if need < 1 {
		need = 1
	}
	return need
}

// ExtractReplicateCore keeps, per group, the features passing in at least
// MinPassing of its columns, then intersects the groups' local cores. A group
// without columns has an empty local core and so empties the result.
// A feature passes a column only with a nonzero count at or above threshold,
// and MinPassing is never below 1.
func ExtractReplicateCore(t *otutable.Table, groups []ResolvedGroup, threshold float64, requiredCount null.Int, tolerance Tolerance) (Result, error) {
	if len(groups) == 0 {
		return Result{}, &InvalidGroupError{Reason: "no replicate groups were given"}
	}
	if requiredCount.Valid && requiredCount.Int64 < 0 {
		return Result{}, &InvalidRequiredCountError{RequiredCount: requiredCount.Int64}
	}
	if _, err := ParseTolerance(string(tolerance)); err != nil {
		return Result{}, err
	}

	res := Result{
		Threshold: threshold,
		Columns:   groupColumns(groups),
		Groups:    make([]GroupCore, 0, len(groups)),
	}

	buf := make([]float64, t.NumFeatures())
	passCount := make([]int, t.NumFeatures())

	// nil until the first group's local core is known.
	var core *roaring.Bitmap

	for _, g := range groups {
		minPassing := MinPassing(len(g.Columns), requiredCount, tolerance)
		local := localCore(t, g.Columns, threshold, minPassing, buf, passCount)

		res.Groups = append(res.Groups, GroupCore{
			Name:       g.Name,
			Columns:    append([]int(nil), g.Columns...),
			MinPassing: minPassing,
			Size:       int(local.GetCardinality()),
		})

		if core == nil {
			core = local
		} else {
			core.And(local)
		}
	}

	res.Rows = rows(core)
	return res, nil
}

func localCore(t *otutable.Table, columns []int, threshold float64, minPassing int, buf []float64, passCount []int) *roaring.Bitmap {
	local := roaring.New()
	if len(columns) == 0 {
		return local
	}

	for i := range passCount {
		passCount[i] = 0
	}
	for _, j := range columns {
		for i, v := range t.Column(buf, j) {
			if passes(v, threshold) {
				passCount[i]++
			}
		}
	}

	for i, n := range passCount {
		if n >= minPassing {
			local.Add(uint32(i))
		}
	}

	return local
}
