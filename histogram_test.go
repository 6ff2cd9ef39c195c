package pointviz

import (
	"math"
	"testing"

	"cogentcore.org/core/math32"
)

func TestHistogramBins(t *testing.T) {
	h := newHistogram([]float64{0, 0, 1}, mustColorMap("Viridis"))

	if len(h.heights) != histBinCount {
		t.Fatalf("expected %d bins, got %d", histBinCount, len(h.heights))
	}
	if h.span.Min != 0 || h.span.Max != 1 {
		t.Errorf("expected span (0, 1), got (%g, %g)", h.span.Min, h.span.Max)
	}

	// Two values in the first bin, one in the last; tallest normalized to 1
	if h.heights[0] != 1 {
		t.Errorf("expected first bin height 1, got %g", h.heights[0])
	}
	if h.heights[histBinCount-1] != 0.5 {
		t.Errorf("expected last bin height 0.5, got %g", h.heights[histBinCount-1])
	}
	if h.heights[25] != 0 {
		t.Errorf("expected empty middle bin, got %g", h.heights[25])
	}
}

func TestHistogramEmpty(t *testing.T) {
	h := newHistogram(nil, mustColorMap("Viridis"))
	if h.heights != nil {
		t.Errorf("expected no bins for empty input, got %d", len(h.heights))
	}

	h = newHistogram([]float64{math.NaN(), math.Inf(1)}, mustColorMap("Viridis"))
	if h.heights != nil {
		t.Errorf("expected no bins for all non-finite input, got %d", len(h.heights))
	}
}

func TestHistogramConstantData(t *testing.T) {
	h := newHistogram([]float64{3, 3, 3, 3}, mustColorMap("Viridis"))

	if h.span.Min != 2.5 || h.span.Max != 3.5 {
		t.Errorf("expected padded span (2.5, 3.5), got (%g, %g)", h.span.Min, h.span.Max)
	}
	if h.heights[25] != 1 {
		t.Errorf("expected all mass in the middle bin, got %g", h.heights[25])
	}
	if h.heights[0] != 0 || h.heights[histBinCount-1] != 0 {
		t.Error("expected empty edge bins for constant data")
	}
}

func TestHistogramSpanIsFullRange(t *testing.T) {
	// The bins cover the true extremes so outliers stay visible, even
	// when the display range estimate would trim them.
	h := newHistogram([]float64{math.NaN(), 1, 2, 1000}, mustColorMap("Viridis"))
	if h.span.Min != 1 || h.span.Max != 1000 {
		t.Errorf("expected span (1, 1000), got (%g, %g)", h.span.Min, h.span.Max)
	}
}

func TestBarColorRange(t *testing.T) {
	h := newHistogram([]float64{0, 10}, mustColorMap("Viridis"))
	h.setColorRange(2, 8)

	// Bin centers below and above the color range come back not ok
	if _, ok := h.barColor(0); ok {
		t.Error("expected bin below the color range to be out")
	}
	if _, ok := h.barColor(histBinCount - 1); ok {
		t.Error("expected bin above the color range to be out")
	}

	c, ok := h.barColor(25)
	if !ok {
		t.Fatal("expected mid bin inside the color range")
	}
	if c == 0 {
		t.Error("expected a shaded color for an in-range bin")
	}
}

func TestBarColorReversedRange(t *testing.T) {
	h := newHistogram([]float64{0, 10}, mustColorMap("Viridis"))
	h.setColorRange(8, 2)

	if _, ok := h.barColor(25); !ok {
		t.Error("expected mid bin inside a reversed color range")
	}
	if _, ok := h.barColor(0); ok {
		t.Error("expected low bin outside a reversed (8, 2) range")
	}
}

func TestBarColorZeroWidthRange(t *testing.T) {
	h := newHistogram([]float64{0, 10}, mustColorMap("Viridis"))
	h.setColorRange(5, 5)

	c, ok := h.barColor(0)
	if !ok {
		t.Fatal("expected zero-width range to map bins to the low end")
	}
	if want := h.table.At(0); c != want {
		t.Errorf("expected low-end color %#x, got %#x", want, c)
	}
}

func TestHistogramFollowsQuantityRange(t *testing.T) {
	pc := newPointCloud("scan", make([]math32.Vector3, 4), nil, func() {}, func(error) {})
	q, err := newScalarQuantity(pc, "v", []float64{1, 2, 3, 4}, DataStandard)
	if err != nil {
		t.Fatal(err)
	}

	if q.hist.colorRange != q.vizRange {
		t.Errorf("expected color range %v to match viz range %v", q.hist.colorRange, q.vizRange)
	}

	q.SetMapRange(3, 9)
	if q.hist.colorRange.Min != 3 || q.hist.colorRange.Max != 9 {
		t.Errorf("expected color range (3, 9), got (%g, %g)", q.hist.colorRange.Min, q.hist.colorRange.Max)
	}

	q.ResetMapRange()
	if q.hist.colorRange != q.vizRange {
		t.Errorf("expected color range to follow reset, got %v want %v", q.hist.colorRange, q.vizRange)
	}

	q.SetColorMap("Plasma")
	if q.hist.table.Name != "Plasma" {
		t.Errorf("expected histogram table to follow the colormap, got %q", q.hist.table.Name)
	}
}

func TestNormTo(t *testing.T) {
	if got := normTo(0, 10, 5); got != 0.5 {
		t.Errorf("expected 0.5, got %g", got)
	}
	if got := normTo(10, 0, 2.5); got != 0.75 {
		t.Errorf("expected 0.75 for reversed span, got %g", got)
	}
	if got := normTo(3, 3, 7); got != 0 {
		t.Errorf("expected 0 for zero-width span, got %g", got)
	}
	if got := normTo(0, 1, 2); got != 2 {
		t.Errorf("expected unclamped 2, got %g", got)
	}
}

func BenchmarkHistogramRebuild(b *testing.B) {
	values := make([]float64, 100000)
	for i := range values {
		values[i] = math.Sin(float64(i)) * float64(i%977)
	}
	h := newHistogram(values, mustColorMap("Viridis"))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.rebuild(values)
	}
}
