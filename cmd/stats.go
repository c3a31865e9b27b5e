package cmd

import (
	"github.com/koisland/covstats/internal/seqcov"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize coverage, N50 and read counts per sample from fasta index files",
	Long: `Gather read lengths from fasta index (.fai) files, group them by sample, and
report per sample:

1. X-fold coverage of the estimated genome
2. X-fold coverage restricted to reads of 100kbp and longer
3. N50 in kilobases
4. the number of reads

Samples come from file-of-filename (FOFN) lists, one list per sample with each
line naming an index file, or from index files passed directly, one sample per
file. Index files may be gzip compressed. With --plot, a read-length
distribution chart per sample is written to a single HTML file with median,
mean, N50, N1 and max markers.`,
	Run: seqcov.RunStats,
}

// set flags
func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringSliceP("fofn", "f", nil, "FOFN list(s) of index files, one FOFN per sample")
	statsCmd.Flags().StringSliceP("fai", "i", nil, "Index file(s), one sample per file <FAI>")
	statsCmd.Flags().Float64P("genome", "g", 0, "Estimated genome size in Gbp")
	statsCmd.Flags().StringP("out", "o", "", "Output file for the summary (default stdout)")
	statsCmd.Flags().Bool("tsv", false, "Write the summary as tab-delimited rows")
	statsCmd.Flags().StringP("plot", "p", "", "Output HTML file for read-length distribution charts")
	statsCmd.Flags().Int("max-read-length", 50_000, "Longest read length included in the plots")
	statsCmd.Flags().Int("bins", 50, "Number of histogram bins in the plots")

	statsCmd.MarkFlagRequired("genome")

	viper.BindPFlag("fofn", statsCmd.Flags().Lookup("fofn"))
	viper.BindPFlag("fai", statsCmd.Flags().Lookup("fai"))
	viper.BindPFlag("genome", statsCmd.Flags().Lookup("genome"))
	viper.BindPFlag("out", statsCmd.Flags().Lookup("out"))
	viper.BindPFlag("tsv", statsCmd.Flags().Lookup("tsv"))
	viper.BindPFlag("plot", statsCmd.Flags().Lookup("plot"))
	viper.BindPFlag("max-read-length", statsCmd.Flags().Lookup("max-read-length"))
	viper.BindPFlag("bins", statsCmd.Flags().Lookup("bins"))
}
