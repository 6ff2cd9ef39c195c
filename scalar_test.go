package pointviz_test

import (
	"errors"
	"testing"

	"cogentcore.org/core/math32"

	"github.com/go-theft-auto/pointviz"
)

// mockProgram records the uniforms and draw calls it receives.
type mockProgram struct {
	flat             bool
	draws            int
	destroys         int
	lastCount        int
	rangeLo, rangeHi float32
	radius           float32
	flatColor        uint32
}

func (p *mockProgram) SetView(view, proj *math32.Matrix4) {}
func (p *mockProgram) SetPointRadius(r float32)           { p.radius = r }
func (p *mockProgram) SetRange(lo, hi float32)            { p.rangeLo, p.rangeHi = lo, hi }
func (p *mockProgram) SetFlatColor(c uint32)              { p.flatColor = c }
func (p *mockProgram) Draw(count int)                     { p.draws++; p.lastCount = count }
func (p *mockProgram) Destroy()                           { p.destroys++ }

// mockEngine counts program builds so tests can observe the rebuild
// lifecycle without a GPU.
type mockEngine struct {
	builds   int
	fail     bool
	programs []*mockProgram
}

func (e *mockEngine) CreatePointProgram(spec pointviz.PointProgramSpec) (pointviz.PointProgram, error) {
	e.builds++
	if e.fail {
		return nil, errors.New("compile failed")
	}
	p := &mockProgram{flat: spec.Values == nil}
	e.programs = append(e.programs, p)
	return p, nil
}

func (e *mockEngine) last() *mockProgram {
	return e.programs[len(e.programs)-1]
}

func identity() *math32.Matrix4 {
	var m math32.Matrix4
	m.SetIdentity()
	return &m
}

func newSceneViewer(t *testing.T) (*pointviz.Viewer, *mockEngine) {
	t.Helper()
	eng := &mockEngine{}
	return pointviz.New(&mockRenderer{}, eng), eng
}

func TestAddScalarQuantityLengthMismatch(t *testing.T) {
	viewer, eng := newSceneViewer(t)
	pc := viewer.RegisterPointCloud("scan", make([]math32.Vector3, 10))

	q, err := pc.AddScalarQuantity("short", []float64{1, 2, 3, 4, 5}, pointviz.DataStandard)
	if err == nil {
		t.Fatal("expected a validation error for 5 values on 10 points")
	}
	var verr *pointviz.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if verr.Got != 5 || verr.Want != 10 {
		t.Errorf("expected got=5 want=10, got got=%d want=%d", verr.Got, verr.Want)
	}

	// The mismatch does not abort construction: the quantity is built
	// from the given values and attached alongside the error.
	if q == nil {
		t.Fatal("expected the quantity despite the mismatch")
	}
	if len(q.Values()) != 5 {
		t.Errorf("expected the 5 given values kept, got %d", len(q.Values()))
	}
	if names := pc.QuantityNames(); len(names) != 1 || names[0] != "short" {
		t.Errorf("expected the mismatched quantity attached, got %v", names)
	}

	// It stays undrawn until the counts agree
	q.SetEnabled(true)
	pc.Draw(identity(), identity())
	if eng.builds != 0 {
		t.Errorf("expected mismatched overlay not to build, got %d builds", eng.builds)
	}
}

func TestNiceName(t *testing.T) {
	viewer, _ := newSceneViewer(t)
	pc := viewer.RegisterPointCloud("scan", []math32.Vector3{{X: 0, Y: 0, Z: 0}})

	q, err := pc.AddScalarQuantity("height", []float64{1}, pointviz.DataStandard)
	if err != nil {
		t.Fatal(err)
	}
	if q.NiceName() != "height (scalar)" {
		t.Errorf("expected %q, got %q", "height (scalar)", q.NiceName())
	}
}

func TestDataRangeTrimsOutliers(t *testing.T) {
	viewer, _ := newSceneViewer(t)
	pc := viewer.RegisterPointCloud("scan", make([]math32.Vector3, 6))

	q, err := pc.AddScalarQuantity("v", []float64{1, 2, 3, 4, 5, 1000}, pointviz.DataStandard)
	if err != nil {
		t.Fatal(err)
	}

	// Small samples keep their true extremes; the trim only sheds
	// outliers in large samples.
	lo, hi := q.DataRange()
	if lo != 1 || hi != 1000 {
		t.Errorf("expected data range (1, 1000), got (%g, %g)", lo, hi)
	}
}

func TestResetMapRangeByKind(t *testing.T) {
	viewer, _ := newSceneViewer(t)
	pc := viewer.RegisterPointCloud("scan", make([]math32.Vector3, 4))
	constant := []float64{7, 7, 7, 7}

	std, err := pc.AddScalarQuantity("std", constant, pointviz.DataStandard)
	if err != nil {
		t.Fatal(err)
	}
	if lo, hi := std.MapRange(); lo != 7 || hi != 7 {
		t.Errorf("standard: expected (7, 7), got (%g, %g)", lo, hi)
	}

	sym, err := pc.AddScalarQuantity("sym", constant, pointviz.DataSymmetric)
	if err != nil {
		t.Fatal(err)
	}
	if lo, hi := sym.MapRange(); lo != -7 || hi != 7 {
		t.Errorf("symmetric: expected (-7, 7), got (%g, %g)", lo, hi)
	}

	mag, err := pc.AddScalarQuantity("mag", constant, pointviz.DataMagnitude)
	if err != nil {
		t.Fatal(err)
	}
	if lo, hi := mag.MapRange(); lo != 0 || hi != 7 {
		t.Errorf("magnitude: expected (0, 7), got (%g, %g)", lo, hi)
	}
}

func TestSetMapRangeVerbatim(t *testing.T) {
	viewer, _ := newSceneViewer(t)
	pc := viewer.RegisterPointCloud("scan", make([]math32.Vector3, 3))

	q, err := pc.AddScalarQuantity("v", []float64{0, 1, 2}, pointviz.DataStandard)
	if err != nil {
		t.Fatal(err)
	}

	// Wider than the data
	q.SetMapRange(-100, 100)
	if lo, hi := q.MapRange(); lo != -100 || hi != 100 {
		t.Errorf("expected (-100, 100), got (%g, %g)", lo, hi)
	}

	// Reversed pair is kept as given, not reordered
	q.SetMapRange(2, -1)
	if lo, hi := q.MapRange(); lo != 2 || hi != -1 {
		t.Errorf("expected reversed pair (2, -1) kept, got (%g, %g)", lo, hi)
	}

	// Degenerate pair is kept too
	q.SetMapRange(5, 5)
	if lo, hi := q.MapRange(); lo != 5 || hi != 5 {
		t.Errorf("expected (5, 5), got (%g, %g)", lo, hi)
	}
}

func TestResetMapRangeIdempotent(t *testing.T) {
	viewer, _ := newSceneViewer(t)
	pc := viewer.RegisterPointCloud("scan", make([]math32.Vector3, 3))

	q, err := pc.AddScalarQuantity("v", []float64{-2, 0, 6}, pointviz.DataSymmetric)
	if err != nil {
		t.Fatal(err)
	}

	q.SetMapRange(40, -3)
	q.ResetMapRange()
	lo1, hi1 := q.MapRange()
	if lo1 != -6 || hi1 != 6 {
		t.Errorf("expected (-6, 6) after reset, got (%g, %g)", lo1, hi1)
	}

	q.ResetMapRange()
	lo2, hi2 := q.MapRange()
	if lo2 != lo1 || hi2 != hi1 {
		t.Errorf("second reset moved the range: (%g, %g) -> (%g, %g)", lo1, hi1, lo2, hi2)
	}
}

func TestProgramLifecycle(t *testing.T) {
	viewer, eng := newSceneViewer(t)
	pc := viewer.RegisterPointCloud("scan", []math32.Vector3{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0},
	})
	q, err := pc.AddScalarQuantity("v", []float64{0, 1, 2}, pointviz.DataStandard)
	if err != nil {
		t.Fatal(err)
	}
	q.SetEnabled(true)

	view, proj := identity(), identity()

	// First draw builds the overlay program
	pc.Draw(view, proj)
	if eng.builds != 1 {
		t.Fatalf("expected 1 build after first draw, got %d", eng.builds)
	}
	if eng.last().flat {
		t.Error("overlay program should carry values")
	}
	if eng.last().lastCount != 3 {
		t.Errorf("expected draw of 3 points, got %d", eng.last().lastCount)
	}

	// Drawing again reuses it
	pc.Draw(view, proj)
	if eng.builds != 1 {
		t.Errorf("expected no rebuild on second draw, got %d builds", eng.builds)
	}

	// A colormap change rebuilds exactly once and retires the old program
	q.SetColorMap("Plasma")
	pc.Draw(view, proj)
	pc.Draw(view, proj)
	if eng.builds != 2 {
		t.Errorf("expected 2 builds after colormap change, got %d", eng.builds)
	}
	if eng.programs[0].destroys != 1 {
		t.Errorf("expected old program destroyed once, got %d", eng.programs[0].destroys)
	}

	// Map range rides a uniform: no rebuild, new range on the next draw
	q.SetMapRange(-2, 5)
	pc.Draw(view, proj)
	if eng.builds != 2 {
		t.Errorf("expected no rebuild after SetMapRange, got %d builds", eng.builds)
	}
	if eng.last().rangeLo != -2 || eng.last().rangeHi != 5 {
		t.Errorf("expected range uniform (-2, 5), got (%g, %g)", eng.last().rangeLo, eng.last().rangeHi)
	}

	// Moving the points rebuilds
	pc.UpdatePositions([]math32.Vector3{
		{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 0, Y: 1, Z: 1},
	})
	pc.Draw(view, proj)
	if eng.builds != 3 {
		t.Errorf("expected rebuild after UpdatePositions, got %d builds", eng.builds)
	}
}

func TestFlatAndOverlayProgramsIndependent(t *testing.T) {
	viewer, eng := newSceneViewer(t)
	pc := viewer.RegisterPointCloud("scan", []math32.Vector3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}})
	pc.SetBaseColor(pointviz.RGBA(10, 20, 30, 255))
	q, err := pc.AddScalarQuantity("v", []float64{0, 1}, pointviz.DataStandard)
	if err != nil {
		t.Fatal(err)
	}

	view, proj := identity(), identity()

	// No overlay enabled: flat program with the base color
	pc.Draw(view, proj)
	if eng.builds != 1 {
		t.Fatalf("expected 1 build, got %d", eng.builds)
	}
	if !eng.last().flat {
		t.Error("expected a flat program without an enabled overlay")
	}
	if eng.last().flatColor != pointviz.RGBA(10, 20, 30, 255) {
		t.Errorf("expected base color uniform, got %#x", eng.last().flatColor)
	}

	// Enabling the overlay builds its own program
	q.SetEnabled(true)
	pc.Draw(view, proj)
	if eng.builds != 2 {
		t.Fatalf("expected overlay build, got %d builds", eng.builds)
	}

	// Disabling falls back to the still-built flat program
	q.SetEnabled(false)
	pc.Draw(view, proj)
	if eng.builds != 2 {
		t.Errorf("expected no rebuild on fallback to flat, got %d builds", eng.builds)
	}
}

func TestFailedBuildDoesNotRetryUntilInputChanges(t *testing.T) {
	viewer, eng := newSceneViewer(t)
	pc := viewer.RegisterPointCloud("scan", []math32.Vector3{{X: 0, Y: 0, Z: 0}})
	q, err := pc.AddScalarQuantity("v", []float64{1}, pointviz.DataStandard)
	if err != nil {
		t.Fatal(err)
	}
	q.SetEnabled(true)

	view, proj := identity(), identity()

	eng.fail = true
	pc.Draw(view, proj)
	if eng.builds != 1 {
		t.Fatalf("expected 1 build attempt, got %d", eng.builds)
	}

	// The failure latches; frames don't hammer the compiler
	pc.Draw(view, proj)
	pc.Draw(view, proj)
	if eng.builds != 1 {
		t.Errorf("expected no retry while inputs unchanged, got %d attempts", eng.builds)
	}

	// An input change clears the latch and retries
	eng.fail = false
	q.SetColorMap("ColdHot")
	pc.Draw(view, proj)
	if eng.builds != 2 {
		t.Errorf("expected retry after colormap change, got %d attempts", eng.builds)
	}
	if eng.last().draws != 1 {
		t.Errorf("expected successful draw after retry, got %d", eng.last().draws)
	}
}

func TestDominance(t *testing.T) {
	viewer, _ := newSceneViewer(t)
	pc := viewer.RegisterPointCloud("scan", make([]math32.Vector3, 2))

	qa, err := pc.AddScalarQuantity("a", []float64{0, 1}, pointviz.DataStandard)
	if err != nil {
		t.Fatal(err)
	}
	qb, err := pc.AddScalarQuantity("b", []float64{1, 0}, pointviz.DataStandard)
	if err != nil {
		t.Fatal(err)
	}

	qa.SetEnabled(true)
	if !qa.Enabled() || qb.Enabled() {
		t.Fatal("expected only a enabled")
	}

	// Enabling b takes over from a
	qb.SetEnabled(true)
	if qa.Enabled() {
		t.Error("enabling b should disable a")
	}
	if !qb.Enabled() {
		t.Error("b should be enabled")
	}

	// Disabling b leaves nothing enabled; a does not come back
	qb.SetEnabled(false)
	if qa.Enabled() || qb.Enabled() {
		t.Error("expected no enabled quantity after disabling b")
	}
}

func TestSetColorMapStoredVerbatim(t *testing.T) {
	viewer, eng := newSceneViewer(t)
	pc := viewer.RegisterPointCloud("scan", make([]math32.Vector3, 2))

	q, err := pc.AddScalarQuantity("v", []float64{0, 1}, pointviz.DataStandard)
	if err != nil {
		t.Fatal(err)
	}
	q.SetEnabled(true)

	// The name is stored exactly as given, known to the registry or not
	q.SetColorMap("NotAColormap")
	if q.ColorMap() != "NotAColormap" {
		t.Errorf("expected %q stored, got %q", "NotAColormap", q.ColorMap())
	}

	// The registry rejects it at build time: the bake fails before the
	// engine is asked for a program, and the failure latches.
	view, proj := identity(), identity()
	pc.Draw(view, proj)
	pc.Draw(view, proj)
	if eng.builds != 0 {
		t.Errorf("expected no program build under an unknown colormap, got %d", eng.builds)
	}

	// A valid name recovers on the next draw
	q.SetColorMap("Plasma")
	pc.Draw(view, proj)
	if eng.builds != 1 {
		t.Fatalf("expected a build after a valid colormap, got %d", eng.builds)
	}
	if eng.last().draws != 1 {
		t.Errorf("expected a draw after recovery, got %d", eng.last().draws)
	}
}

func TestQuantityReplacementAndRemoval(t *testing.T) {
	viewer, eng := newSceneViewer(t)
	pc := viewer.RegisterPointCloud("scan", []math32.Vector3{{X: 0, Y: 0, Z: 0}})

	q1, err := pc.AddScalarQuantity("v", []float64{1}, pointviz.DataStandard)
	if err != nil {
		t.Fatal(err)
	}
	q1.SetEnabled(true)
	pc.Draw(identity(), identity())
	if eng.builds != 1 {
		t.Fatalf("expected 1 build, got %d", eng.builds)
	}

	// Replacing under the same name destroys the old quantity's program
	if _, err := pc.AddScalarQuantity("v", []float64{2}, pointviz.DataStandard); err != nil {
		t.Fatal(err)
	}
	if eng.programs[0].destroys != 1 {
		t.Errorf("expected replaced quantity's program destroyed, got %d", eng.programs[0].destroys)
	}
	if names := pc.QuantityNames(); len(names) != 1 || names[0] != "v" {
		t.Errorf("expected names [v], got %v", names)
	}

	pc.RemoveQuantity("v")
	if len(pc.QuantityNames()) != 0 {
		t.Errorf("expected no quantities after removal, got %v", pc.QuantityNames())
	}
	if pc.Quantity("v") != nil {
		t.Error("removed quantity should not be found")
	}
}

func TestUpdatePositionsCountMismatchSkipsOverlay(t *testing.T) {
	viewer, eng := newSceneViewer(t)
	pc := viewer.RegisterPointCloud("scan", make([]math32.Vector3, 3))
	q, err := pc.AddScalarQuantity("v", []float64{0, 1, 2}, pointviz.DataStandard)
	if err != nil {
		t.Fatal(err)
	}
	q.SetEnabled(true)

	view, proj := identity(), identity()
	pc.Draw(view, proj)
	if eng.builds != 1 {
		t.Fatalf("expected 1 build, got %d", eng.builds)
	}

	// Fewer points than values: the overlay stays attached but undrawn
	pc.UpdatePositions(make([]math32.Vector3, 2))
	pc.Draw(view, proj)
	if eng.builds != 1 {
		t.Errorf("expected mismatched overlay not to build, got %d builds", eng.builds)
	}
	if names := pc.QuantityNames(); len(names) != 1 {
		t.Errorf("expected quantity to stay attached, got %v", names)
	}
}

func TestMutationsRequestRedraw(t *testing.T) {
	viewer, _ := newSceneViewer(t)
	pc := viewer.RegisterPointCloud("scan", make([]math32.Vector3, 2))
	q, err := pc.AddScalarQuantity("v", []float64{0, 1}, pointviz.DataStandard)
	if err != nil {
		t.Fatal(err)
	}

	check := func(name string, mutate func()) {
		t.Helper()
		viewer.ClearRedraw()
		mutate()
		if !viewer.RedrawRequested() {
			t.Errorf("%s should request a redraw", name)
		}
	}

	check("SetMapRange", func() { q.SetMapRange(0, 2) })
	check("ResetMapRange", func() { q.ResetMapRange() })
	check("SetColorMap", func() { q.SetColorMap("Plasma") })
	check("SetEnabled", func() { q.SetEnabled(true) })
	check("SetPointRadius", func() { pc.SetPointRadius(0.01) })
	check("SetBaseColor", func() { pc.SetBaseColor(pointviz.RGBA(1, 2, 3, 255)) })
	check("UpdatePositions", func() { pc.UpdatePositions(make([]math32.Vector3, 2)) })
	check("RemoveQuantity", func() { pc.RemoveQuantity("v") })

	// Toggling to the current state is a no-op and stays quiet
	viewer.ClearRedraw()
	pc.SetEnabled(true)
	if viewer.RedrawRequested() {
		t.Error("enabling an already enabled cloud should not request a redraw")
	}
}

func TestQuantityAccessors(t *testing.T) {
	viewer, _ := newSceneViewer(t)
	pc := viewer.RegisterPointCloud("scan", make([]math32.Vector3, 3))

	values := []float64{0.5, 1.5, 2.5}
	q, err := pc.AddScalarQuantity("v", values, pointviz.DataMagnitude)
	if err != nil {
		t.Fatal(err)
	}

	if q.Name() != "v" {
		t.Errorf("expected name v, got %q", q.Name())
	}
	if q.Kind() != pointviz.DataMagnitude {
		t.Errorf("expected magnitude kind, got %v", q.Kind())
	}
	if got := q.Values(); len(got) != 3 || got[0] != 0.5 {
		t.Errorf("expected the given values, got %v", got)
	}
	if q.Hist() == nil {
		t.Error("expected a histogram")
	}
	if pc.Quantity("v") == nil {
		t.Error("expected interface lookup to find the quantity")
	}
}

func TestValuesCopiedAtConstruction(t *testing.T) {
	viewer, _ := newSceneViewer(t)
	pc := viewer.RegisterPointCloud("scan", make([]math32.Vector3, 3))

	values := []float64{1, 2, 3}
	q, err := pc.AddScalarQuantity("v", values, pointviz.DataStandard)
	if err != nil {
		t.Fatal(err)
	}

	// The quantity owns its copy; the caller's slice is free to change
	values[0] = 999
	if got := q.Values()[0]; got != 1 {
		t.Errorf("expected stored values isolated from the caller's slice, got %g", got)
	}
}
