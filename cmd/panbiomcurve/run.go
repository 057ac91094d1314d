package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/carbocation/pfx"
	"github.com/timkahlke/panbiom/curve"
)

func run(ctx context.Context, cfg config, features int) error {
	if cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.timeout)
		defer cancel()
	}

	estimator := curve.Estimator{MaxFeatures: cfg.maxFeatures}
	est, err := estimator.SubsetSpaceSize(ctx, features)
	if err != nil {
		return err
	}

	if cfg.warnAbove > 0 && est.Total > cfg.warnAbove {
		log.Printf("WARNING: %d features give %d sample subsets; a brute force curve is unlikely to finish\n", features, est.Total)
	}

	if err := writeEstimate(os.Stdout, est); err != nil {
		return err
	}

	if cfg.plotPath != "" && len(est.Sizes) > 0 {
		f, err := os.Create(cfg.plotPath)
		if err != nil {
			return pfx.Err(err)
		}
		if err := curve.Plot(f, est); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return pfx.Err(err)
		}
	}

	if !cfg.enumerate {
		return nil
	}

	estimator.Progress = func(sc curve.SizeCount) {
		log.Printf("Visited %d combinations of %d (%d so far)\n", sc.Combinations, sc.Size, sc.RunningTotal)
	}
	visited, err := estimator.Enumerate(ctx, features, func(int, []int) error { return nil })
	if err != nil {
		return fmt.Errorf("enumeration stopped after %d of %d subsets: %w", visited, est.Total, err)
	}
	log.Printf("Visited all %d subsets\n", visited)

	return nil
}

func writeEstimate(w io.Writer, est curve.Estimate) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "size\tcombinations\trunning_total\n")
	for _, sc := range est.Sizes {
		fmt.Fprintf(bw, "%d\t%d\t%d\n", sc.Size, sc.Combinations, sc.RunningTotal)
	}
	fmt.Fprintf(bw, "total\t%d\n", est.Total)

	return bw.Flush()
}
