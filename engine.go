package pointviz

import "cogentcore.org/core/math32"

// ProgramState tracks the lifecycle of a lazily built draw program.
type ProgramState int

const (
	// ProgramAbsent means no program has been built yet (or the last build
	// failed).
	ProgramAbsent ProgramState = iota
	// ProgramStale means a program exists but an input baked into it
	// (geometry, colormap texture) changed since the build.
	ProgramStale
	// ProgramBuilt means the program matches its baked inputs.
	ProgramBuilt
)

func (s ProgramState) String() string {
	switch s {
	case ProgramAbsent:
		return "absent"
	case ProgramStale:
		return "stale"
	case ProgramBuilt:
		return "built"
	}
	return "unknown"
}

// PointProgramSpec carries everything a point program bakes at build time.
// Per-frame inputs (matrices, range, radius, flat color) travel as
// uniforms instead and never force a rebuild.
type PointProgramSpec struct {
	Positions []math32.Vector3
	Values    []float64   // nil for flat-color drawing
	Table     *ColorTable // nil for flat-color drawing
}

// PointProgram is a built GPU program for one point cloud, or for one
// scalar overlay on it.
type PointProgram interface {
	SetView(view, proj *math32.Matrix4)
	SetPointRadius(r float32)
	SetRange(lo, hi float32)
	SetFlatColor(c uint32)
	Draw(count int)
	Destroy()
}

// Engine creates draw programs. backend/opengl provides the GL
// implementation; tests substitute counting fakes.
type Engine interface {
	CreatePointProgram(spec PointProgramSpec) (PointProgram, error)
}

// programHandle pairs a program with its lifecycle state and owns the
// rebuild bookkeeping shared by clouds and scalar quantities.
type programHandle struct {
	prog   PointProgram
	state  ProgramState
	failed bool // last build errored; cleared when inputs change
}

// invalidate marks a built program stale. Absent and stale programs keep
// their state (they need a build either way). Changed inputs also clear
// any recorded build failure so the next draw retries.
func (h *programHandle) invalidate() {
	h.failed = false
	if h.state == ProgramBuilt {
		h.state = ProgramStale
	}
}

// ensure returns a ready program, building through build when the handle
// is absent or stale. A failed build destroys any stale program, leaves
// the handle absent and returns the error once; until an input changes,
// later calls return (nil, nil) so the frame loop is not spammed.
func (h *programHandle) ensure(build func() (PointProgram, error)) (PointProgram, error) {
	if h.state == ProgramBuilt && h.prog != nil {
		return h.prog, nil
	}
	if h.failed {
		return nil, nil
	}
	if h.prog != nil {
		h.prog.Destroy()
		h.prog = nil
	}
	p, err := build()
	if err != nil {
		h.state = ProgramAbsent
		h.failed = true
		return nil, err
	}
	vizLogger.Debug("point program built")
	h.prog = p
	h.state = ProgramBuilt
	return p, nil
}

// destroy releases the program and resets the handle to absent.
func (h *programHandle) destroy() {
	if h.prog != nil {
		h.prog.Destroy()
		h.prog = nil
	}
	h.state = ProgramAbsent
}
