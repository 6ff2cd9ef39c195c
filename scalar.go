package pointviz

import (
	"fmt"
	"math"
	"slices"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/math32/minmax"
)

// DataKind describes how a scalar field maps onto a color range.
type DataKind int

const (
	// DataStandard spans the data's own range.
	DataStandard DataKind = iota
	// DataSymmetric centers the range on zero, for signed fields where
	// the sign carries meaning.
	DataSymmetric
	// DataMagnitude spans from zero up, for non-negative fields.
	DataMagnitude
)

func (k DataKind) String() string {
	switch k {
	case DataStandard:
		return "standard"
	case DataSymmetric:
		return "symmetric"
	case DataMagnitude:
		return "magnitude"
	}
	return "unknown"
}

// ScalarQuantity colors the points of a cloud by a per-point scalar
// field. The field's robust data range is estimated once at construction;
// the visualization range (what the colormap spans) moves freely under
// user and programmatic control without touching GPU buffers.
type ScalarQuantity struct {
	name   string
	cloud  *PointCloud
	values []float64
	kind   DataKind

	dataRange minmax.F64
	vizRange  minmax.F64

	colormap string
	hist     *Histogram

	enabled       bool
	handle        programHandle
	requestRedraw func()
}

func newScalarQuantity(cloud *PointCloud, name string, values []float64, kind DataKind) (*ScalarQuantity, error) {
	var err error
	if len(values) != len(cloud.positions) {
		err = &ValidationError{
			Structure: cloud.name,
			Quantity:  name,
			Got:       len(values),
			Want:      len(cloud.positions),
		}
	}
	q := &ScalarQuantity{
		name:          name,
		cloud:         cloud,
		values:        slices.Clone(values),
		kind:          kind,
		requestRedraw: cloud.requestRedraw,
	}
	q.dataRange.Set(robustRange(q.values))
	q.colormap = defaultColorMap(kind)
	q.hist = newHistogram(q.values, mustColorMap(q.colormap))
	q.ResetMapRange()
	return q, err
}

// Name returns the registry key the quantity was added under.
func (q *ScalarQuantity) Name() string { return q.name }

// NiceName returns the display name, marking the quantity type.
func (q *ScalarQuantity) NiceName() string { return q.name + " (scalar)" }

// Kind returns how the field maps onto a color range.
func (q *ScalarQuantity) Kind() DataKind { return q.kind }

// Values returns the field's values, one per point. The quantity keeps
// its own copy of the data it was constructed with.
func (q *ScalarQuantity) Values() []float64 { return q.values }

// Hist returns the histogram summarizing the field for UI display. Its
// bars follow the quantity's colormap and map range.
func (q *ScalarQuantity) Hist() *Histogram { return q.hist }

// DataRange returns the robust span of the data, estimated once at
// construction with outliers trimmed.
func (q *ScalarQuantity) DataRange() (lo, hi float64) {
	return q.dataRange.Min, q.dataRange.Max
}

// MapRange returns the span the colormap currently covers.
func (q *ScalarQuantity) MapRange() (lo, hi float64) {
	return q.vizRange.Min, q.vizRange.Max
}

// SetMapRange sets the span the colormap covers, exactly as given. The
// pair is not clamped to the data and not reordered; the mapping
// normalizes by (v-lo)/(hi-lo) whatever the pair. The draw program keeps
// its buffers: the range rides a uniform.
func (q *ScalarQuantity) SetMapRange(lo, hi float64) *ScalarQuantity {
	q.vizRange.Set(lo, hi)
	q.hist.setColorRange(lo, hi)
	q.requestRedraw()
	return q
}

// mapBounds returns the kind's natural span: the robust data range for
// standard fields, zero-centered for symmetric ones, zero up to the
// robust high for magnitudes. ResetMapRange restores exactly this span,
// and the range slider travels over it.
func (q *ScalarQuantity) mapBounds() (lo, hi float64) {
	dlo, dhi := q.dataRange.Min, q.dataRange.Max
	switch q.kind {
	case DataSymmetric:
		m := math.Max(math.Abs(dlo), math.Abs(dhi))
		return -m, m
	case DataMagnitude:
		return 0, dhi
	default:
		return dlo, dhi
	}
}

// ResetMapRange restores the map range to the kind's natural span.
func (q *ScalarQuantity) ResetMapRange() *ScalarQuantity {
	q.vizRange.Set(q.mapBounds())
	q.hist.setColorRange(q.vizRange.Min, q.vizRange.Max)
	q.requestRedraw()
	return q
}

// ColorMap returns the name of the active colormap.
func (q *ScalarQuantity) ColorMap() string { return q.colormap }

// SetColorMap switches the colormap by registry name. The name is stored
// as given; the registry rejects an unknown one when the draw program
// next bakes it. The baked table lives in the program's texture, so the
// program goes stale and rebuilds on the next draw.
func (q *ScalarQuantity) SetColorMap(name string) *ScalarQuantity {
	q.colormap = name
	if t, err := BakeColorMap(name); err == nil {
		q.hist.setColorTable(t)
	}
	q.handle.invalidate()
	q.requestRedraw()
	return q
}

// Enabled reports whether the overlay draws.
func (q *ScalarQuantity) Enabled() bool { return q.enabled }

// SetEnabled turns the overlay on or off. Enabling takes over from any
// other enabled quantity on the same cloud: one overlay draws at a time.
func (q *ScalarQuantity) SetEnabled(on bool) *ScalarQuantity {
	if on == q.enabled {
		return q
	}
	q.enabled = on
	if on {
		q.cloud.setDominant(q)
	}
	q.requestRedraw()
	return q
}

func (q *ScalarQuantity) disable() {
	if q.enabled {
		q.enabled = false
		q.requestRedraw()
	}
}

// Draw renders the overlay. Program builds are deferred to here so
// mutations between frames stay cheap; a stale handle rebuilds exactly
// once. view already carries the cloud's transform.
func (q *ScalarQuantity) Draw(view, proj *math32.Matrix4) {
	if !q.enabled || len(q.values) != len(q.cloud.positions) {
		return
	}
	prog, err := q.handle.ensure(func() (PointProgram, error) {
		table, err := BakeColorMap(q.colormap)
		if err != nil {
			return nil, err
		}
		return q.cloud.engine.CreatePointProgram(PointProgramSpec{
			Positions: q.cloud.positions,
			Values:    q.values,
			Table:     table,
		})
	})
	if err != nil {
		q.cloud.reportError(fmt.Errorf("scalar overlay %q: %w", q.name, err))
		return
	}
	if prog == nil {
		return
	}
	prog.SetView(view, proj)
	prog.SetPointRadius(q.cloud.pointRadius)
	prog.SetRange(float32(q.vizRange.Min), float32(q.vizRange.Max))
	prog.Draw(len(q.cloud.positions))
}

func (q *ScalarQuantity) geometryChanged() {
	q.handle.invalidate()
	q.requestRedraw()
}

func (q *ScalarQuantity) destroy() {
	q.handle.destroy()
}
