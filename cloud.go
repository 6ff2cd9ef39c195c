package pointviz

import (
	"fmt"
	"slices"

	"cogentcore.org/core/math32"
)

// defaultPointRadius is relative to a unit-scale scene.
const defaultPointRadius = 0.005

// PointCloud is a named set of 3D points that quantities attach to. It
// draws either its flat base color or, when one is enabled, the dominant
// quantity's overlay.
type PointCloud struct {
	name        string
	positions   []math32.Vector3
	transform   math32.Matrix4
	pointRadius float32
	baseColor   uint32
	enabled     bool

	quantities map[string]Quantity
	order      []string

	engine        Engine
	requestRedraw func()
	reportError   func(error)

	handle programHandle
}

func newPointCloud(name string, positions []math32.Vector3, engine Engine, requestRedraw func(), reportError func(error)) *PointCloud {
	pc := &PointCloud{
		name:          name,
		positions:     positions,
		pointRadius:   defaultPointRadius,
		baseColor:     RGBA(120, 160, 255, 255),
		enabled:       true,
		quantities:    map[string]Quantity{},
		engine:        engine,
		requestRedraw: requestRedraw,
		reportError:   reportError,
	}
	pc.transform.SetIdentity()
	return pc
}

// Name returns the cloud's registry name.
func (pc *PointCloud) Name() string { return pc.name }

// NumPoints returns the number of points.
func (pc *PointCloud) NumPoints() int { return len(pc.positions) }

// Positions returns the point positions. The slice is borrowed.
func (pc *PointCloud) Positions() []math32.Vector3 { return pc.positions }

// Enabled reports whether the cloud draws at all.
func (pc *PointCloud) Enabled() bool { return pc.enabled }

// SetEnabled shows or hides the whole cloud, quantities included.
func (pc *PointCloud) SetEnabled(on bool) *PointCloud {
	if pc.enabled != on {
		pc.enabled = on
		pc.requestRedraw()
	}
	return pc
}

// PointRadius returns the point sprite radius, relative to scene scale.
func (pc *PointCloud) PointRadius() float32 { return pc.pointRadius }

// SetPointRadius sets the point sprite radius. A uniform, no rebuild.
func (pc *PointCloud) SetPointRadius(r float32) *PointCloud {
	pc.pointRadius = r
	pc.requestRedraw()
	return pc
}

// SetBaseColor sets the flat color used when no overlay is enabled.
func (pc *PointCloud) SetBaseColor(c uint32) *PointCloud {
	pc.baseColor = c
	pc.requestRedraw()
	return pc
}

// Transform returns the object-to-world transform.
func (pc *PointCloud) Transform() math32.Matrix4 { return pc.transform }

// SetTransform sets the object-to-world transform. Positions are baked in
// object space, so this is a uniform-only change.
func (pc *PointCloud) SetTransform(m math32.Matrix4) *PointCloud {
	pc.transform = m
	pc.requestRedraw()
	return pc
}

// AddScalarQuantity attaches a per-point scalar field. A length mismatch
// is reported as a *ValidationError alongside the built quantity: the
// field keeps the given values and stays attached but undrawn until the
// counts agree. A same-named quantity is replaced.
func (pc *PointCloud) AddScalarQuantity(name string, values []float64, kind DataKind) (*ScalarQuantity, error) {
	q, err := newScalarQuantity(pc, name, values, kind)
	pc.addQuantity(q)
	return q, err
}

func (pc *PointCloud) addQuantity(q Quantity) {
	name := q.Name()
	if old, ok := pc.quantities[name]; ok {
		old.destroy()
	} else {
		pc.order = append(pc.order, name)
	}
	pc.quantities[name] = q
	vizLogger.Debug("quantity added", "cloud", pc.name, "quantity", name)
	pc.requestRedraw()
}

// Quantity looks up an attached quantity by name, or nil.
func (pc *PointCloud) Quantity(name string) Quantity {
	return pc.quantities[name]
}

// QuantityNames returns the attached quantity names in insertion order.
func (pc *PointCloud) QuantityNames() []string {
	return slices.Clone(pc.order)
}

// RemoveQuantity detaches and destroys the named quantity.
func (pc *PointCloud) RemoveQuantity(name string) {
	q, ok := pc.quantities[name]
	if !ok {
		return
	}
	q.destroy()
	delete(pc.quantities, name)
	if i := slices.Index(pc.order, name); i >= 0 {
		pc.order = slices.Delete(pc.order, i, i+1)
	}
	pc.requestRedraw()
}

// RemoveAllQuantities detaches and destroys every quantity.
func (pc *PointCloud) RemoveAllQuantities() {
	for _, name := range pc.order {
		pc.quantities[name].destroy()
	}
	pc.quantities = map[string]Quantity{}
	pc.order = nil
	pc.requestRedraw()
}

// UpdatePositions moves the points. Quantity values stay attached by
// index; every draw program rebuilds on its next frame. A changed point
// count leaves mismatched quantities attached but undrawn.
func (pc *PointCloud) UpdatePositions(positions []math32.Vector3) *PointCloud {
	if len(positions) != len(pc.positions) {
		vizLogger.Warn("point count changed, mismatched quantities will not draw",
			"cloud", pc.name, "was", len(pc.positions), "now", len(positions))
	}
	pc.positions = positions
	pc.handle.invalidate()
	for _, name := range pc.order {
		pc.quantities[name].geometryChanged()
	}
	pc.requestRedraw()
	return pc
}

// dominantQuantity returns the enabled overlay, if any.
func (pc *PointCloud) dominantQuantity() Quantity {
	for _, name := range pc.order {
		if q := pc.quantities[name]; q.Enabled() {
			return q
		}
	}
	return nil
}

// setDominant enforces at most one enabled overlay per cloud.
func (pc *PointCloud) setDominant(dom Quantity) {
	for _, name := range pc.order {
		if q := pc.quantities[name]; q != dom {
			q.disable()
		}
	}
}

// Draw renders the cloud: the dominant overlay when one is enabled,
// otherwise the flat base color. Programs build lazily on first use.
func (pc *PointCloud) Draw(view, proj *math32.Matrix4) {
	if !pc.enabled || len(pc.positions) == 0 {
		return
	}
	var mv math32.Matrix4
	mv.MulMatrices(view, &pc.transform)

	if q := pc.dominantQuantity(); q != nil {
		q.Draw(&mv, proj)
		return
	}

	prog, err := pc.handle.ensure(func() (PointProgram, error) {
		return pc.engine.CreatePointProgram(PointProgramSpec{Positions: pc.positions})
	})
	if err != nil {
		pc.reportError(fmt.Errorf("point cloud %q: %w", pc.name, err))
		return
	}
	if prog == nil {
		return
	}
	prog.SetView(&mv, proj)
	prog.SetPointRadius(pc.pointRadius)
	prog.SetFlatColor(pc.baseColor)
	prog.Draw(len(pc.positions))
}

func (pc *PointCloud) destroy() {
	for _, name := range pc.order {
		pc.quantities[name].destroy()
	}
	pc.handle.destroy()
}
