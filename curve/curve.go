// Package curve accounts for the sample subsets a core/accessory/unique
// curve would have to visit. For n features it counts, for every subset size
// k from 1 to n-2, the k-combinations of n-1 items. The total grows as
// 2^(n-1), so callers use it to decide whether brute force enumeration is
// feasible at all.
package curve

import (
	"context"
	"fmt"

	"github.com/BenLubar/memoize"
)

// HardLimit is the largest feature count whose subset space, 2^(n-1)-2,
// still fits in an int64.
const HardLimit = 63

var memoizedPascalRow = memoize.Memoize(pascalRow)

// pascalRow returns C(n, 0..n). Building the row by addition keeps every
// intermediate value no larger than the result, which multiplicative
// formulas do not manage near HardLimit.
func pascalRow(n int) []int64 {
	row := make([]int64, 1, n+1)
	row[0] = 1
	for i := 1; i <= n; i++ {
		row = append(row, 1)
		for k := i - 1; k > 0; k-- {
			row[k] += row[k-1]
		}
	}
	return row
}

func binomial(n, k int) int64 {
	return memoizedPascalRow.(func(int) []int64)(n)[k]
}

// TooManyFeaturesError is returned instead of starting a computation whose
// size exceeds the configured bound.
type TooManyFeaturesError struct {
	Features int
	Limit    int
}

func (e *TooManyFeaturesError) Error() string {
	return fmt.Sprintf("curve: %d features exceeds the limit of %d", e.Features, e.Limit)
}

// SizeCount is the number of subsets of one size.
type SizeCount struct {
	Size         int
	Combinations int64

	// RunningTotal includes this and every smaller size.
	RunningTotal int64
}

type Estimate struct {
	Features int
	Sizes    []SizeCount
	Total    int64
}

// Estimator counts subset spaces. The zero value is usable and bounded by
// HardLimit.
type Estimator struct {
	// MaxFeatures bounds the accepted feature count. Zero, or anything above
	// HardLimit, means HardLimit.
	MaxFeatures int

	// Progress, if set, is called once each subset size has been counted.
	Progress func(SizeCount)
}

func (e Estimator) limit() int {
	if e.MaxFeatures <= 0 || e.MaxFeatures > HardLimit {
		return HardLimit
	}
	return e.MaxFeatures
}

func (e Estimator) check(featureCount int) error {
	if featureCount < 0 {
		return fmt.Errorf("curve: feature count %d is negative", featureCount)
	}
	if limit := e.limit(); featureCount > limit {
		return &TooManyFeaturesError{Features: featureCount, Limit: limit}
	}
	return nil
}

// SubsetSpaceSize returns C(featureCount-1, k) for k in 1..featureCount-2 and
// their sum. Fewer than three features leave no sizes to count. ctx is checked
// before every size.
func (e Estimator) SubsetSpaceSize(ctx context.Context, featureCount int) (Estimate, error) {
	if err := e.check(featureCount); err != nil {
		return Estimate{}, err
	}

	est := Estimate{Features: featureCount, Sizes: []SizeCount{}}
	for k := 1; k <= featureCount-2; k++ {
		if err := ctx.Err(); err != nil {
			return est, err
		}

		c := binomial(featureCount-1, k)
		est.Total += c
		sc := SizeCount{Size: k, Combinations: c, RunningTotal: est.Total}
		est.Sizes = append(est.Sizes, sc)

		if e.Progress != nil {
			e.Progress(sc)
		}
	}

	return est, nil
}
