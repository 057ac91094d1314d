// panbiomcurve estimates whether a brute force core/accessory/unique curve is
// feasible for an OTU table, by counting the sample subsets it would have to
// visit for every subset size.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
	"github.com/timkahlke/panbiom"
	_ "github.com/timkahlke/panbiom/compileinfoprint"
	"github.com/timkahlke/panbiom/curve"
	"github.com/timkahlke/panbiom/otutable"
)

func main() {
	var (
		tablePath string
		features  int
		cfg       config
	)

	flag.StringVar(&tablePath, "biom", "", "OTU table exported from biom as tab separated text. Its number of OTUs is used as the feature count.")
	flag.IntVar(&features, "features", 0, "Feature count to estimate for, instead of reading --biom.")
	flag.IntVar(&cfg.maxFeatures, "max", curve.HardLimit, fmt.Sprintf("Refuse feature counts above this. Counting is exact up to %d.", curve.HardLimit))
	flag.BoolVar(&cfg.enumerate, "enumerate", false, "Visit every subset instead of only counting them. Only sensible for small feature counts.")
	flag.Int64Var(&cfg.warnAbove, "warn", 1_000_000, "Warn when the subset space is larger than this.")
	flag.DurationVar(&cfg.timeout, "timeout", 0, "Give up after this long (e.g. 30s). 0 means no limit.")
	flag.StringVar(&cfg.plotPath, "plot", "", "Optional. PNG file to draw the per-size subset counts to.")
	flag.Parse()

	if tablePath == "" && features <= 0 {
		flag.PrintDefaults()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if tablePath != "" {
		n, err := featureCount(ctx, tablePath)
		if err != nil {
			log.Fatalln(err)
		}
		features = n
	}

	if err := run(ctx, cfg, features); err != nil {
		log.Fatalln(err)
	}
}

func featureCount(ctx context.Context, tablePath string) (int, error) {
	var client *storage.Client
	if panbiom.NeedsGoogleStorage(tablePath) {
		var err error
		if client, err = storage.NewClient(ctx); err != nil {
			return 0, pfx.Err(err)
		}
		defer client.Close()
	}

	tbl, err := otutable.Open(ctx, tablePath, client, otutable.ReadOptions{})
	if err != nil {
		return 0, err
	}
	log.Printf("%s has %d OTUs in %d samples\n", tablePath, tbl.NumFeatures(), tbl.NumSamples())

	return tbl.NumFeatures(), nil
}

type config struct {
	maxFeatures int
	enumerate   bool
	warnAbove   int64
	timeout     time.Duration
	plotPath    string
}
