package seqcov

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func Test_PlotInput(t *testing.T) {
	lengths := []int{20000, 100000, 30000, 50000}

	kept, marks, err := PlotInput(lengths, 60000)
	if err != nil {
		t.Fatal(err)
	}

	if want := []int{50000, 30000, 20000}; !reflect.DeepEqual(kept, want) {
		t.Errorf("PlotInput() kept = %v, want %v", kept, want)
	}

	// markers come from the unfiltered collection
	if marks.N50Kb != 100.0 {
		t.Errorf("PlotInput() N50 marker = %v kb, want 100", marks.N50Kb)
	}
	if marks.N1Kb != 100.0 {
		t.Errorf("PlotInput() N1 marker = %v kb, want 100", marks.N1Kb)
	}
	if marks.MaxKb != 100.0 {
		t.Errorf("PlotInput() max marker = %v kb, want 100", marks.MaxKb)
	}
	if marks.MeanKb != 50.0 {
		t.Errorf("PlotInput() mean marker = %v kb, want 50", marks.MeanKb)
	}
	if marks.MedianKb < 30.0 || marks.MedianKb > 50.0 {
		t.Errorf("PlotInput() median marker = %v kb, want within [30, 50]", marks.MedianKb)
	}
}

func Test_PlotInput_empty(t *testing.T) {
	if _, _, err := PlotInput(nil, 50000); !errors.Is(err, ErrNoLengths) {
		t.Errorf("PlotInput() error = %v, want %v", err, ErrNoLengths)
	}
}

func Test_histogram(t *testing.T) {
	mids, counts := histogram([]int{100, 2600, 2600, 4900, 7000}, 5000, 5)

	if want := []float64{0.5, 1.5, 2.5, 3.5, 4.5}; !reflect.DeepEqual(mids, want) {
		t.Errorf("histogram() mids = %v, want %v", mids, want)
	}
	// 7000 is past the range and lands in the last bin
	if want := []float64{1, 0, 2, 0, 2}; !reflect.DeepEqual(counts, want) {
		t.Errorf("histogram() counts = %v, want %v", counts, want)
	}
}

func Test_Charts(t *testing.T) {
	table := NewLengthTable()
	table.Add(LengthRecord{Name: "r1", Length: 100000, Sample: "sampleB"})
	table.Add(LengthRecord{Name: "r2", Length: 50000, Sample: "sampleB"})
	table.Add(LengthRecord{Name: "r3", Length: 30000, Sample: "sampleA"})
	table.Add(LengthRecord{Name: "r4", Length: 20000, Sample: "sampleA"})

	charts, err := Charts(table, 50000, 25)
	if err != nil {
		t.Fatal(err)
	}

	if len(charts) != 2 {
		t.Fatalf("Charts() made %d charts, want 2", len(charts))
	}
	if charts[0].Label != "sampleB" || charts[1].Label != "sampleA" {
		t.Errorf("Charts() labels = %v, %v, want sampleB, sampleA", charts[0].Label, charts[1].Label)
	}
}

func Test_WritePlots(t *testing.T) {
	table := NewLengthTable()
	table.Add(LengthRecord{Name: "r1", Length: 100000, Sample: "sampleA"})
	table.Add(LengthRecord{Name: "r2", Length: 50000, Sample: "sampleA"})
	table.Add(LengthRecord{Name: "r3", Length: 20000, Sample: "sampleA"})

	path := filepath.Join(t.TempDir(), "dist.html")
	if err := WritePlots(path, table, 50000, 25); err != nil {
		t.Fatal(err)
	}

	html, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(html) == 0 {
		t.Error("WritePlots() wrote an empty file")
	}
}
