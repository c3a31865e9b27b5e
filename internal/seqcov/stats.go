// Package seqcov summarizes long-read sequencing runs: it gathers read
// lengths from fasta index files grouped by sample and computes per-sample
// coverage, N50 and read counts.
package seqcov

import (
	"errors"
	"fmt"
	"sort"
)

// longReadLength is the cutoff, in bp, above which reads count toward
// the long-read coverage column.
const longReadLength = 100_000

var (
	// ErrNoLengths is returned when a statistic is requested for an empty
	// collection of read lengths
	ErrNoLengths = errors.New("no sequence lengths")

	// ErrPercentRange is returned when an Nx threshold is outside (0, 100]
	ErrPercentRange = errors.New("percent threshold outside (0, 100]")
)

// SampleStats are the summary statistics of a single sample. They are
// recomputed from the raw lengths on every run and never mutated.
type SampleStats struct {
	// the sample id the statistics belong to
	Sample string

	// X-fold coverage of the estimated genome
	Coverage float64

	// X-fold coverage restricted to reads of 100kbp and longer
	CoverageLong float64

	// N50 in kilobases
	N50Kb float64

	// the number of reads
	Reads int
}

// Nx returns the length L at which reads of length >= L, taken longest
// first, account for at least x percent of all sequenced bases. N50 is
// Nx(lengths, 50), N1 is Nx(lengths, 1).
func Nx(lengths []int, x float64) (int, error) {
	if len(lengths) == 0 {
		return 0, fmt.Errorf("%w: Nx is undefined on an empty collection", ErrNoLengths)
	}
	if x <= 0 || x > 100 {
		return 0, fmt.Errorf("%w: got %v", ErrPercentRange, x)
	}

	desc := descending(lengths)

	var total int
	for _, l := range desc {
		total += l
	}
	threshold := float64(total) * x / 100.0

	var running int
	for _, l := range desc {
		running += l
		if float64(running) >= threshold {
			return l, nil
		}
	}
	return 0, nil // unreachable while x <= 100
}

// N50 returns the N50 of the lengths in kilobases: the length of the read
// at the midpoint of descending-sorted cumulative base coverage. Pass
// sorted when lengths are already in descending order.
//
// This integer floor-division midpoint form is the authoritative N50 for
// the summary statistics. Nx(lengths, 50) may pick the neighboring read
// when the midpoint lands exactly on a cumulative sum.
func N50(lengths []int, sorted bool) float64 {
	if len(lengths) == 0 {
		return 0
	}

	desc := lengths
	if !sorted {
		desc = descending(lengths)
	}

	cum := make([]int, len(desc))
	var running int
	for i, l := range desc {
		running += l
		cum[i] = running
	}
	midpoint := running / 2

	var idx int
	for _, c := range cum {
		if c <= midpoint {
			idx++
		}
	}
	if idx == len(desc) {
		// only reachable when every length is zero
		idx = len(desc) - 1
	}

	return float64(desc[idx]) / 1000.0
}

// Stats computes the summary statistics of one sample from its raw read
// lengths. The genome size is assumed validated at the boundary (see
// config.Config.Validate).
func Stats(sample string, lengths []int, genomeGbp float64) (SampleStats, error) {
	if len(lengths) == 0 {
		return SampleStats{}, fmt.Errorf("%w: sample %q has no reads", ErrNoLengths, sample)
	}

	genomeBases := genomeGbp * 1e9

	var total, long int
	for _, l := range lengths {
		total += l
		if l >= longReadLength {
			long += l
		}
	}

	return SampleStats{
		Sample:       sample,
		Coverage:     float64(total) / genomeBases,
		CoverageLong: float64(long) / genomeBases,
		N50Kb:        N50(lengths, false),
		Reads:        len(lengths),
	}, nil
}

// Stats computes the summary statistics of every sample in the table, in
// the order the samples were first seen.
func (t *LengthTable) Stats(genomeGbp float64) ([]SampleStats, error) {
	stats := make([]SampleStats, 0, len(t.samples))
	for _, sample := range t.samples {
		s, err := Stats(sample, t.lengths[sample], genomeGbp)
		if err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, nil
}

// descending returns a copy of lengths sorted longest first.
func descending(lengths []int) []int {
	desc := make([]int, len(lengths))
	copy(desc, lengths)
	sort.Sort(sort.Reverse(sort.IntSlice(desc)))
	return desc
}
