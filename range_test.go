package pointviz

import (
	"math"
	"testing"
)

func TestRobustRangeSmallSampleKeepsExtremes(t *testing.T) {
	lo, hi := robustRange([]float64{1, 2, 3, 4, 5, 1000})
	if lo != 1 || hi != 1000 {
		t.Errorf("expected (1, 1000), got (%g, %g)", lo, hi)
	}
}

func TestRobustRangeLargeSampleTrimsOutliers(t *testing.T) {
	// With a 1e-5 trim the quantiles step inside the extremes once the
	// sample passes 1e5 entries.
	values := make([]float64, 100001)
	for i := range values {
		values[i] = float64(i)
	}
	values[100000] = 1e9

	lo, hi := robustRange(values)
	if lo != 1 {
		t.Errorf("expected low quantile 1, got %g", lo)
	}
	if hi != 99999 {
		t.Errorf("expected outlier trimmed to 99999, got %g", hi)
	}
}

func TestRobustRangeCollapseFallsBackToFullSpan(t *testing.T) {
	// Nearly all mass on one value: both trimmed quantiles land on it,
	// so the estimate widens back to the true min/max.
	values := make([]float64, 100002)
	for i := range values {
		values[i] = 5
	}
	values[0] = 0
	values[1] = 10

	lo, hi := robustRange(values)
	if lo != 0 || hi != 10 {
		t.Errorf("expected fallback to (0, 10), got (%g, %g)", lo, hi)
	}
}

func TestRobustRangeEmpty(t *testing.T) {
	lo, hi := robustRange(nil)
	if lo != -1 || hi != 1 {
		t.Errorf("expected (-1, 1) for empty input, got (%g, %g)", lo, hi)
	}

	lo, hi = robustRange([]float64{math.NaN(), math.Inf(1), math.Inf(-1)})
	if lo != -1 || hi != 1 {
		t.Errorf("expected (-1, 1) for all non-finite input, got (%g, %g)", lo, hi)
	}
}

func TestRobustRangeConstant(t *testing.T) {
	lo, hi := robustRange([]float64{3, 3, 3})
	if lo != 3 || hi != 3 {
		t.Errorf("expected (3, 3), got (%g, %g)", lo, hi)
	}
}

func TestRobustRangeIgnoresNonFinite(t *testing.T) {
	lo, hi := robustRange([]float64{math.NaN(), 2, math.Inf(1), -4, math.Inf(-1), 7})
	if lo != -4 || hi != 7 {
		t.Errorf("expected (-4, 7), got (%g, %g)", lo, hi)
	}
}

func TestFiniteMinMax(t *testing.T) {
	lo, hi, ok := finiteMinMax([]float64{math.NaN(), 2, math.Inf(1), -4, 7})
	if !ok {
		t.Fatal("expected ok for data with finite entries")
	}
	if lo != -4 || hi != 7 {
		t.Errorf("expected (-4, 7), got (%g, %g)", lo, hi)
	}

	if _, _, ok := finiteMinMax(nil); ok {
		t.Error("expected not ok for empty input")
	}
	if _, _, ok := finiteMinMax([]float64{math.NaN(), math.Inf(-1)}); ok {
		t.Error("expected not ok for all non-finite input")
	}
}

func BenchmarkRobustRange(b *testing.B) {
	values := make([]float64, 100000)
	for i := range values {
		values[i] = math.Sin(float64(i)) * float64(i%977)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		robustRange(values)
	}
}
