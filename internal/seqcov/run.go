package seqcov

import (
	"errors"
	"io"
	"log"
	"os"

	"github.com/koisland/covstats/config"
	"github.com/spf13/cobra"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)
)

// RunStats is the entry point of the stats command. It gathers settings
// from Viper, ingests the index files, computes the per-sample summary
// and writes it out, with charts when requested. The first invalid input
// aborts the run; nothing is emitted for a failed invocation.
func RunStats(cmd *cobra.Command, args []string) {
	conf := config.New()
	if err := conf.Validate(); err != nil {
		stderr.Fatal(err)
	}

	table, err := ReadLengths(conf.Fofns, conf.Fais)
	if err != nil {
		if errors.Is(err, ErrNoInput) {
			cmd.Help()
		}
		stderr.Fatal(err)
	}

	stats, err := table.Stats(conf.GenomeGbp)
	if err != nil {
		stderr.Fatal(err)
	}

	var out io.Writer = os.Stdout
	if conf.Out != "" {
		f, err := os.Create(conf.Out)
		if err != nil {
			stderr.Fatalf("failed to create output file %s: %v", conf.Out, err)
		}
		defer f.Close()
		out = f
	}

	if conf.TSV {
		err = WriteTSV(out, stats)
	} else {
		err = WriteText(out, stats)
	}
	if err != nil {
		stderr.Fatal(err)
	}

	if conf.Plot.Out != "" {
		if err := WritePlots(conf.Plot.Out, table, conf.Plot.MaxReadLength, conf.Plot.Bins); err != nil {
			stderr.Fatal(err)
		}
	}
}
