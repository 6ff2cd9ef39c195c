package pointviz

import (
	"math"
	"slices"

	"cogentcore.org/core/math32/minmax"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// histBinCount is the fixed number of histogram bins.
const histBinCount = 51

// Histogram summarizes a scalar field for the quantity UI: normalized bin
// heights over the full data span, with each bar shaded through the
// owning quantity's colormap across its current visualization range.
// It feeds the UI only; the GPU path maps raw values directly.
type Histogram struct {
	heights []float64  // one per bin, tallest bin normalized to 1; nil when empty
	span    minmax.F64 // data span the bins cover

	colorRange minmax.F64 // span the colormap covers, follows the quantity's map range
	table      *ColorTable
}

func newHistogram(values []float64, table *ColorTable) *Histogram {
	h := &Histogram{table: table}
	h.rebuild(values)
	return h
}

// rebuild recounts the bins from values. Only value changes need this;
// colormap and range changes just restyle the existing bars.
func (h *Histogram) rebuild(values []float64) {
	h.heights = nil
	h.span.Set(0, 0)

	lo, hi, ok := finiteMinMax(values)
	if !ok {
		return
	}
	if lo == hi {
		// Constant data: pad the span so the single occupied bin sits in
		// the middle instead of dividing by a zero width.
		lo, hi = lo-0.5, hi+0.5
	}
	h.span.Set(lo, hi)

	finite := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			finite = append(finite, v)
		}
	}
	slices.Sort(finite)

	edges := floats.Span(make([]float64, histBinCount+1), lo, hi)
	// stat.Histogram requires max(x) strictly below the last divider.
	edges[histBinCount] = math.Nextafter(hi, math.Inf(1))
	counts := stat.Histogram(make([]float64, histBinCount), edges, finite, nil)

	if peak := floats.Max(counts); peak > 0 {
		for i := range counts {
			counts[i] /= peak
		}
	}
	h.heights = counts
}

// setColorTable swaps the colormap the bars are shaded with.
func (h *Histogram) setColorTable(t *ColorTable) {
	h.table = t
}

// setColorRange sets the span the colormap covers, exactly as given
// (it mirrors the quantity's map range, reversed pairs included).
func (h *Histogram) setColorRange(lo, hi float64) {
	h.colorRange.Set(lo, hi)
}

// binCenter returns the data value at the middle of bin i.
func (h *Histogram) binCenter(i int) float64 {
	w := h.span.Range() / histBinCount
	return h.span.Min + (float64(i)+0.5)*w
}

// barColor shades bin i through the colormap over the color range,
// returning ok=false for bins outside it (drawn gray). A zero-width
// range maps everything to the low end, matching the draw shader.
func (h *Histogram) barColor(i int) (c uint32, ok bool) {
	t := normTo(h.colorRange.Min, h.colorRange.Max, h.binCenter(i))
	if t < 0 || t > 1 {
		return 0, false
	}
	return h.table.At(float32(t)), true
}

// normTo normalizes v into the (lo, hi) span without clamping, so callers
// can tell in-range from out-of-range. Zero-width spans collapse to 0.
func normTo(lo, hi, v float64) float64 {
	if hi == lo {
		return 0
	}
	return (v - lo) / (hi - lo)
}
