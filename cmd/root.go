// Package cmd is for command line interactions with the covstats application
package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "covstats",
	Short: `Summarize long-read sequencing runs from fasta index files.
Reports per-sample coverage, N50 and read counts with optional read-length plots`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		stderr.Fatalf("%v", err)
	}
}
