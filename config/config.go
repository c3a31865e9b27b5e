// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/viper"
)

var (
	// ErrGenomeSize is returned when the estimated genome size is zero or negative
	ErrGenomeSize = errors.New("genome size must be greater than zero")

	// ErrBins is returned when the histogram bin count is zero or negative
	ErrBins = errors.New("bin count must be greater than zero")

	// ErrMaxReadLength is returned when the plot read-length cutoff is zero or negative
	ErrMaxReadLength = errors.New("max read length must be greater than zero")
)

// PlotConfig is settings for the read-length distribution charts
type PlotConfig struct {
	// the path of the HTML file the charts are written to; empty disables plotting
	Out string `mapstructure:"plot"`

	// reads at or above this length are excluded from the charts
	MaxReadLength int `mapstructure:"max-read-length"`

	// the number of histogram bins
	Bins int `mapstructure:"bins"`
}

// Config is the root-level settings struct and is a mix
// of settings from the command line and the environment
type Config struct {
	// FOFN lists of index files, one list per sample
	Fofns []string `mapstructure:"fofn"`

	// index files passed directly, one sample per file
	Fais []string `mapstructure:"fai"`

	// the estimated genome size in Gbp used for coverage
	GenomeGbp float64 `mapstructure:"genome"`

	// the path of the summary output file; empty means stdout
	Out string `mapstructure:"out"`

	// whether the summary is tab-delimited instead of human readable
	TSV bool `mapstructure:"tsv"`

	// Plot settings
	Plot PlotConfig `mapstructure:",squash"`
}

// New returns a new Config struct populated by Viper settings
// (command line arguments and/or the environment)
func New() *Config {
	c := &Config{}

	if err := viper.Unmarshal(c); err != nil {
		log.Fatalf("unable to decode settings into struct: %v", err)
	}

	return c
}

// Validate checks settings that the statistics engine depends on.
// A genome size of zero or less would make every coverage value
// infinite or undefined, so it is rejected up front.
func (c *Config) Validate() error {
	if c.GenomeGbp <= 0 {
		return fmt.Errorf("%w: got %v Gbp", ErrGenomeSize, c.GenomeGbp)
	}
	if c.Plot.Out != "" {
		if c.Plot.Bins <= 0 {
			return fmt.Errorf("%w: got %d", ErrBins, c.Plot.Bins)
		}
		if c.Plot.MaxReadLength <= 0 {
			return fmt.Errorf("%w: got %d", ErrMaxReadLength, c.Plot.MaxReadLength)
		}
	}
	return nil
}
