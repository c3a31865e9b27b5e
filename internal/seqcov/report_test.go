package seqcov

import (
	"bytes"
	"strings"
	"testing"
)

var reportStats = []SampleStats{
	{Sample: "sampleA", Coverage: 12.25, CoverageLong: 1.5, N50Kb: 23.5, Reads: 123456},
	{Sample: "sampleB", Coverage: 0.5, CoverageLong: 0, N50Kb: 50.0, Reads: 2},
}

func Test_WriteTSV(t *testing.T) {
	var b bytes.Buffer
	if err := WriteTSV(&b, reportStats); err != nil {
		t.Fatal(err)
	}

	want := TSVHeader + "\n" +
		"sampleA\t12.25\t1.50\t23.5\t123456\n" +
		"sampleB\t0.50\t0.00\t50.0\t2\n"
	if got := b.String(); got != want {
		t.Errorf("WriteTSV() = %q, want %q", got, want)
	}
}

func Test_WriteText(t *testing.T) {
	var b bytes.Buffer
	if err := WriteText(&b, reportStats); err != nil {
		t.Fatal(err)
	}
	got := b.String()

	for _, want := range []string{
		"sampleA",
		"coverage:          12.25X",
		"coverage (100kb+): 1.50X",
		"N50:               23.5 kb",
		"reads:             123456",
		"sampleB",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("WriteText() output missing %q:\n%s", want, got)
		}
	}

	// samples print in the order given
	if strings.Index(got, "sampleA") > strings.Index(got, "sampleB") {
		t.Errorf("WriteText() printed samples out of order:\n%s", got)
	}
}
