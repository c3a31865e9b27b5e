package seqcov

import (
	"fmt"
	"io"
	"strings"
)

// TSVHeader is the canonical header row for tab-delimited summaries.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "sample\tcoverage\tcoverage_100kb\tn50_kb\treads"

// WriteTSV writes one tab-delimited row per sample under TSVHeader.
func WriteTSV(w io.Writer, stats []SampleStats) error {
	if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
		return err
	}
	for _, s := range stats {
		_, err := fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%.1f\t%d\n",
			s.Sample, s.Coverage, s.CoverageLong, s.N50Kb, s.Reads)
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteText writes a human readable block per sample.
func WriteText(w io.Writer, stats []SampleStats) error {
	for i, s := range stats {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, "%s\n%s\n  coverage:          %.2fX\n  coverage (100kb+): %.2fX\n  N50:               %.1f kb\n  reads:             %d\n",
			s.Sample, strings.Repeat("-", len(s.Sample)), s.Coverage, s.CoverageLong, s.N50Kb, s.Reads)
		if err != nil {
			return err
		}
	}
	return nil
}
