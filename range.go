package pointviz

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// trimFraction is the quantile trimmed off each end of the data when
// estimating a display range. It sheds stray outliers in large samples;
// modest samples keep their true extremes.
const trimFraction = 1e-5

// robustRange estimates the (low, high) display span of values.
// Non-finite entries are ignored. Empty input yields (-1, 1). If the
// trimmed quantiles collapse while the data itself spans a wider range,
// the full min/max is used instead. Constant data comes back as (c, c).
func robustRange(values []float64) (lo, hi float64) {
	finite := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			finite = append(finite, v)
		}
	}
	if len(finite) == 0 {
		return -1, 1
	}
	slices.Sort(finite)

	lo = stat.Quantile(trimFraction, stat.Empirical, finite, nil)
	hi = stat.Quantile(1-trimFraction, stat.Empirical, finite, nil)
	if lo == hi && finite[0] < finite[len(finite)-1] {
		lo, hi = finite[0], finite[len(finite)-1]
	}
	return lo, hi
}

// finiteMinMax returns the plain min/max over the finite entries of values,
// and ok=false when there are none. The histogram spans this full range
// rather than the trimmed one, so outliers stay visible in the tail bars.
func finiteMinMax(values []float64) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
		ok = true
	}
	if !ok {
		return 0, 0, false
	}
	return lo, hi, true
}
