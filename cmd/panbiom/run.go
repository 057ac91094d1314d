package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"unicode/utf8"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
	"github.com/timkahlke/panbiom"
	"github.com/timkahlke/panbiom/core"
	"github.com/timkahlke/panbiom/depth"
	"github.com/timkahlke/panbiom/otutable"
	"github.com/timkahlke/panbiom/report"
	"github.com/timkahlke/panbiom/treatment"
)

type config struct {
	tablePath      string
	treatmentsPath string
	outputPath     string
	partitionPath  string
	delimiter      string
	histogram      bool
	verbose        bool
	options        core.Options
}

func run(cfg config) error {
	ctx := context.Background()

	var client *storage.Client
	if panbiom.NeedsGoogleStorage(cfg.tablePath, cfg.treatmentsPath) {
		var err error
		if client, err = storage.NewClient(ctx); err != nil {
			return pfx.Err(err)
		}
		defer client.Close()
	}

	// Cheap checks first, so bad options never wait on a large table.
	if err := cfg.options.Validate(); err != nil {
		return err
	}

	readOpts := otutable.ReadOptions{Verbose: cfg.verbose}
	if cfg.delimiter != "" {
		r, size := utf8.DecodeRuneInString(cfg.delimiter)
		if size != len(cfg.delimiter) {
			return fmt.Errorf("delimiter %q must be a single character", cfg.delimiter)
		}
		readOpts.Delimiter = r
	}

	req := core.Request{Options: cfg.options}
	if cfg.treatmentsPath != "" {
		tr, err := treatment.Open(ctx, cfg.treatmentsPath, client)
		if err != nil {
			return err
		}
		req = tr.Request(cfg.options)

		if tr.Grouped() {
			log.Printf("Using %d samples in %d treatments from %s\n", len(tr.Samples), len(tr.Groups), cfg.treatmentsPath)
		} else {
			log.Printf("Using %d samples from %s\n", len(tr.Samples), cfg.treatmentsPath)
		}
	}

	log.Println("Loading", cfg.tablePath)
	tbl, err := otutable.Open(ctx, cfg.tablePath, client, readOpts)
	if err != nil {
		return err
	}

	res, err := core.Compute(tbl, req)
	if err != nil {
		return err
	}

	if cfg.verbose {
		if summary, err := depth.Describe(tbl, res.Columns); err == nil {
			log.Println("Selection:", summary)
		}
		for _, g := range res.Groups {
			log.Printf("Treatment %s: %d replicates, %d required, %d local core OTUs\n", g.Name, len(g.Columns), g.MinPassing, g.Size)
		}
	}
	log.Printf("Threshold %.6g: %d core OTUs across %d samples\n", res.Threshold, res.Len(), len(res.Columns))

	if err := writeCore(cfg, tbl, res); err != nil {
		return err
	}

	if cfg.partitionPath == "" && !cfg.histogram {
		return nil
	}

	p, err := core.ComputePartition(tbl, req)
	if err != nil {
		return err
	}
	log.Println("Partition:", report.PartitionCounts(p))

	if cfg.histogram {
		if err := depth.FprintPrevalence(os.Stderr, p.Prevalence, 20); err != nil {
			return err
		}
	}

	if cfg.partitionPath != "" {
		return writeFile(cfg.partitionPath, func(w io.Writer) error {
			return report.WritePartition(w, tbl, p)
		})
	}

	return nil
}

func writeCore(cfg config, tbl *otutable.Table, res core.Result) error {
	write := func(w io.Writer) error {
		return report.WriteCore(w, cfg.tablePath, tbl, res, cfg.options.PrintTaxonomy)
	}

	if cfg.outputPath == "" {
		return write(os.Stdout)
	}

	return writeFile(cfg.outputPath, write)
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return pfx.Err(err)
	}

	if err := write(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
