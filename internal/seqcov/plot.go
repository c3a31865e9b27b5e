package seqcov

import (
	"fmt"
	"os"

	"github.com/aclements/go-moremath/stats"
	chartjs "github.com/brentp/go-chartjs"
	"github.com/brentp/go-chartjs/types"
)

// Marks are the annotated statistic values overlaid on a sample's
// read-length chart, each in kilobases. Median, mean and max describe
// the full length collection; N50 and N1 come from the general Nx form.
type Marks struct {
	MedianKb float64
	MeanKb   float64
	N50Kb    float64
	N1Kb     float64
	MaxKb    float64
}

// PlotInput prepares one sample's lengths for plotting: the collection
// sorted longest first and filtered to lengths below maxLen, plus the
// five marker values computed over the unfiltered collection.
func PlotInput(lengths []int, maxLen int) ([]int, Marks, error) {
	n50, err := Nx(lengths, 50)
	if err != nil {
		return nil, Marks{}, err
	}
	n1, err := Nx(lengths, 1)
	if err != nil {
		return nil, Marks{}, err
	}

	desc := descending(lengths)

	// ascending copy for the quantile lookup
	xs := make([]float64, len(desc))
	for i, l := range desc {
		xs[len(desc)-1-i] = float64(l)
	}
	sample := stats.Sample{Xs: xs, Sorted: true}

	marks := Marks{
		MedianKb: sample.Quantile(0.5) / 1000.0,
		MeanKb:   sample.Mean() / 1000.0,
		N50Kb:    float64(n50) / 1000.0,
		N1Kb:     float64(n1) / 1000.0,
		MaxKb:    float64(desc[0]) / 1000.0,
	}

	kept := make([]int, 0, len(desc))
	for _, l := range desc {
		if l < maxLen {
			kept = append(kept, l)
		}
	}
	return kept, marks, nil
}

// histogram bins lengths into equal-width bins over [0, maxLen) and
// returns the bin midpoints (in kb) and the per-bin read counts.
func histogram(lengths []int, maxLen, bins int) (mids, counts []float64) {
	width := float64(maxLen) / float64(bins)
	mids = make([]float64, bins)
	counts = make([]float64, bins)
	for i := range mids {
		mids[i] = (float64(i) + 0.5) * width / 1000.0
	}
	for _, l := range lengths {
		b := int(float64(l) / width)
		if b >= bins {
			b = bins - 1
		}
		counts[b]++
	}
	return mids, counts
}

type xy struct {
	x []float64
	y []float64
}

func (v xy) Xs() []float64 { return v.x }
func (v xy) Ys() []float64 { return v.y }
func (v xy) Rs() []float64 { return nil }

var markColors = []types.RGBA{
	{R: 51, G: 160, B: 44, A: 240},   // median
	{R: 255, G: 127, B: 0, A: 240},   // mean
	{R: 227, G: 26, B: 28, A: 240},   // N50
	{R: 106, G: 61, B: 154, A: 240},  // N1
	{R: 120, G: 120, B: 120, A: 240}, // max
}

// lengthChart builds one sample's read-length distribution chart: a
// frequency polygon of the binned lengths plus a vertical line per mark.
func lengthChart(sample string, lengths []int, marks Marks, maxLen, bins int) (chartjs.Chart, error) {
	chart := chartjs.Chart{Label: sample}

	xa, err := chart.AddXAxis(chartjs.Axis{Type: chartjs.Linear, Position: chartjs.Bottom,
		ScaleLabel: &chartjs.ScaleLabel{LabelString: "read length (kb)", Display: types.True}})
	if err != nil {
		return chart, err
	}
	ya, err := chart.AddYAxis(chartjs.Axis{Type: chartjs.Linear, Position: chartjs.Left,
		ScaleLabel: &chartjs.ScaleLabel{LabelString: "reads", Display: types.True}})
	if err != nil {
		return chart, err
	}

	mids, counts := histogram(lengths, maxLen, bins)
	dist := chartjs.Dataset{Data: xy{x: mids, y: counts}, Type: chartjs.Line, Label: sample,
		Fill: types.False, PointRadius: 0, BorderWidth: 2,
		BorderColor: &types.RGBA{R: 31, G: 120, B: 180, A: 240}}
	dist.XAxisID = xa
	dist.YAxisID = ya
	chart.AddDataset(dist)

	var peak float64
	for _, c := range counts {
		if c > peak {
			peak = c
		}
	}

	labels := []string{"median", "mean", "N50", "N1", "max"}
	values := []float64{marks.MedianKb, marks.MeanKb, marks.N50Kb, marks.N1Kb, marks.MaxKb}
	for i, v := range values {
		mark := chartjs.Dataset{Data: xy{x: []float64{v, v}, y: []float64{0, peak}},
			Type: chartjs.Line, Label: fmt.Sprintf("%s=%.1fkb", labels[i], v),
			Fill: types.False, PointRadius: 0, BorderWidth: 1, BorderColor: &markColors[i]}
		mark.XAxisID = xa
		mark.YAxisID = ya
		chart.AddDataset(mark)
	}

	return chart, nil
}

// Charts builds the read-length distribution chart of every sample in
// the table, in first-seen order.
func Charts(t *LengthTable, maxLen, bins int) ([]chartjs.Chart, error) {
	charts := make([]chartjs.Chart, 0, len(t.samples))
	for _, sample := range t.samples {
		kept, marks, err := PlotInput(t.lengths[sample], maxLen)
		if err != nil {
			return nil, err
		}
		chart, err := lengthChart(sample, kept, marks, maxLen, bins)
		if err != nil {
			return nil, err
		}
		if len(charts) > 0 {
			chart.Options.Legend = &chartjs.Legend{Display: types.False}
		}
		charts = append(charts, chart)
	}
	return charts, nil
}

// WritePlots renders every sample's chart into a single HTML file.
func WritePlots(path string, t *LengthTable, maxLen, bins int) error {
	charts, err := Charts(t, maxLen, bins)
	if err != nil {
		return err
	}

	wtr, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create plot file %s: %w", path, err)
	}
	defer wtr.Close()

	return chartjs.SaveCharts(wtr, map[string]interface{}{"height": 800, "width": 800}, charts...)
}
