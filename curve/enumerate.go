package curve

import (
	"context"

	"gonum.org/v1/gonum/stat/combin"
)

// Enumerate visits every subset that SubsetSpaceSize counts, in increasing
// size and lexicographic order within a size. subset holds indices into
// 0..featureCount-2 and is reused between calls. Enumeration stops at the
// first error from visit or from ctx, and the number of subsets visited so
// far is returned with it.
func (e Estimator) Enumerate(ctx context.Context, featureCount int, visit func(size int, subset []int) error) (int64, error) {
	if err := e.check(featureCount); err != nil {
		return 0, err
	}

	var visited int64
	items := featureCount - 1
	for k := 1; k <= featureCount-2; k++ {
		gen := combin.NewCombinationGenerator(items, k)
		subset := make([]int, k)
		for gen.Next() {
			if err := ctx.Err(); err != nil {
				return visited, err
			}

			gen.Combination(subset)
			if err := visit(k, subset); err != nil {
				return visited, err
			}
			visited++
		}

		if e.Progress != nil {
			e.Progress(SizeCount{Size: k, Combinations: binomial(items, k), RunningTotal: visited})
		}
	}

	return visited, nil
}
