package seqcov

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/biogo/hts/fai"
	gzip "github.com/klauspost/pgzip"
)

// ErrNoInput is returned when neither FOFN lists nor index files were supplied
var ErrNoInput = errors.New("no index files or FOFN lists supplied")

// LengthRecord is a single row of an ingested index file: one read's
// name and length, tagged with the sample it belongs to.
type LengthRecord struct {
	// the read name, only used for uniqueness within the index
	Name string

	// the read length in bp
	Length int

	// the sample id the read was ingested under
	Sample string
}

// LengthTable holds every ingested read length grouped by sample id.
// Samples enumerate in the order they were first seen so that reports
// and plots are reproducible between runs.
type LengthTable struct {
	samples []string
	lengths map[string][]int
}

// NewLengthTable makes an empty LengthTable.
func NewLengthTable() *LengthTable {
	return &LengthTable{lengths: make(map[string][]int)}
}

// Add appends one record to its sample's length collection.
func (t *LengthTable) Add(r LengthRecord) {
	if _, seen := t.lengths[r.Sample]; !seen {
		t.samples = append(t.samples, r.Sample)
	}
	t.lengths[r.Sample] = append(t.lengths[r.Sample], r.Length)
}

// Samples returns the sample ids in first-seen order. A sample only
// exists if at least one record mapped to it.
func (t *LengthTable) Samples() []string {
	return t.samples
}

// Lengths returns the raw read lengths of a sample.
func (t *LengthTable) Lengths(sample string) []int {
	return t.lengths[sample]
}

// ReadLengths ingests read lengths from both input modes: FOFN lists,
// each naming one sample whose lines are paths to index files, and index
// files passed directly, each its own sample. Index files may be gzip
// compressed.
func ReadLengths(fofns, fais []string) (*LengthTable, error) {
	if len(fofns) == 0 && len(fais) == 0 {
		return nil, ErrNoInput
	}

	t := NewLengthTable()
	for _, fofn := range fofns {
		sample := sampleName(fofn)
		paths, err := readFofn(fofn)
		if err != nil {
			return nil, err
		}
		for _, p := range paths {
			if err := readFai(p, sample, t); err != nil {
				return nil, err
			}
		}
	}
	for _, f := range fais {
		if err := readFai(f, sampleName(f), t); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// readFofn reads a file-of-filenames: one index file path per line,
// blank lines and #-comments skipped. Relative paths are resolved
// against the FOFN's own directory.
func readFofn(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open FOFN %s: %w", path, err)
	}
	defer f.Close()

	dir := filepath.Dir(path)
	var paths []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !filepath.IsAbs(line) {
			line = filepath.Join(dir, line)
		}
		paths = append(paths, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read FOFN %s: %w", path, err)
	}
	return paths, nil
}

// readFai parses one fasta index file and adds its records to the table
// under the given sample id.
func readFai(path, sample string, t *LengthTable) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open index %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return fmt.Errorf("failed to decompress index %s: %w", path, err)
		}
		defer gz.Close()
		r = gz
	}

	idx, err := fai.ReadFrom(r)
	if err != nil {
		return fmt.Errorf("failed to parse index %s: %w", path, err)
	}
	for name, rec := range idx {
		t.Add(LengthRecord{Name: name, Length: rec.Length, Sample: sample})
	}
	return nil
}

// sampleName derives a sample id from a file path: the base name with
// index, sequence and compression extensions stripped.
func sampleName(path string) string {
	base := filepath.Base(path)
	for _, ext := range []string{".gz", ".fai", ".fa", ".fasta", ".fofn", ".txt"} {
		base = strings.TrimSuffix(base, ext)
	}
	return base
}
