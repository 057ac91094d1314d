// panbiom reports the core OTUs of an OTU table: the features present, above
// an optional relative abundance minimum, in every selected sample or in
// enough replicates of every treatment.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/timkahlke/panbiom/compileinfo"
	_ "github.com/timkahlke/panbiom/compileinfoprint"
	"github.com/timkahlke/panbiom/core"
	"gopkg.in/guregu/null.v3"
)

func main() {
	var (
		cfg         = config{options: core.DefaultOptions()}
		scope       string
		tolerance   string
		showVersion bool
	)

	flag.StringVar(&cfg.tablePath, "biom", "", "OTU table exported from biom as tab separated text. May be compressed and may be a gs:// path.")
	flag.StringVar(&cfg.outputPath, "output", "", "File to write the core OTUs to. If empty, writes to stdout.")
	flag.StringVar(&cfg.treatmentsPath, "treatments", "", "Optional. File of samples to consider, one per line, optionally followed by a tab and the treatment (replicate group) name. If empty, all samples are used.")
	flag.Func("abundance", "Optional. Relative abundance minimum in [0,1]. A count must reach this fraction of the total count (see --scope) to be considered present. Default 0.", func(s string) error {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		cfg.options.Fraction = null.FloatFrom(f)
		return nil
	})
	flag.StringVar(&scope, "scope", string(core.ScopeSelection), fmt.Sprintf("Total the abundance minimum is relative to: %q (selected samples) or %q (the whole table).", core.ScopeSelection, core.ScopeComplete))
	flag.Func("replicates", "Optional. Replicate count per treatment, read according to --tolerance. If unset, an OTU must be present in every replicate of every treatment. Requires a treatments file with treatment names.", func(s string) error {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return err
		}
		cfg.options.RequiredCount = null.IntFrom(n)
		return nil
	})
	flag.StringVar(&tolerance, "tolerance", string(core.ToleranceMinimum), fmt.Sprintf("How --replicates is read: %q (present in at least that many replicates) or %q (absent from at most that many replicates).", core.ToleranceMinimum, core.ToleranceExcludeOutliers))
	flag.BoolVar(&cfg.options.PrintTaxonomy, "taxonomy", true, "Print the taxonomy of each core OTU, if the table has one.")
	flag.StringVar(&cfg.partitionPath, "partition", "", "Optional. File to write every OTU's prevalence and core/accessory/unique class to.")
	flag.BoolVar(&cfg.histogram, "histogram", false, "Print a histogram of OTU prevalence across the selected samples to stderr.")
	flag.StringVar(&cfg.delimiter, "delimiter", "", "Optional. Column delimiter of the OTU table. If empty, it is detected.")
	flag.BoolVar(&cfg.verbose, "verbose", false, "Log additional detail.")
	flag.BoolVar(&showVersion, "version", false, "Print the version and exit.")
	flag.Parse()

	if showVersion {
		fmt.Println(compileinfo.Get().Short())
		return
	}

	if cfg.tablePath == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	var err error
	if cfg.options.Scope, err = core.ParseScope(scope); err != nil {
		log.Fatalln(err)
	}
	if cfg.options.Tolerance, err = core.ParseTolerance(tolerance); err != nil {
		log.Fatalln(err)
	}

	if err := run(cfg); err != nil {
		log.Fatalln(err)
	}
}
