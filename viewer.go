package pointviz

import (
	"errors"

	"cogentcore.org/core/math32"
)

// Renderer is the interface for rendering UI draw data.
type Renderer interface {
	Render(dl *DrawList) error
	FontTextureID() uint32
	Resize(width, height int)
}

// Viewer owns the scene registry, the camera and the immediate-mode UI
// shell. Everything runs on the render thread: the model is frame-driven
// and single-threaded, and mutations between frames flag a redraw
// instead of drawing eagerly.
type Viewer struct {
	renderer     Renderer
	engine       Engine
	stateStore   StateStore
	style        Style
	ctx          *Context
	fontProvider FontProvider

	camera *Camera
	clouds map[string]*PointCloud
	order  []string

	panels  *PanelRegistry
	actions *ActionRegistry
	toasts  *ToastState
	snap    *SnapManager

	curInput *InputState

	selection    PickResult
	hasSelection bool

	// Scene input tracking
	lastMouse     Vec2
	haveLastMouse bool
	pickStart     Vec2
	pickArmed     bool

	redrawRequested bool
}

// ViewerOption configures a Viewer instance.
type ViewerOption func(*Viewer)

// WithStyle sets the UI style.
func WithStyle(style Style) ViewerOption {
	return func(v *Viewer) { v.style = style }
}

// WithStateStore sets a custom widget state store.
func WithStateStore(store StateStore) ViewerOption {
	return func(v *Viewer) { v.stateStore = store }
}

// New creates a viewer drawing UI through renderer and scene geometry
// through engine.
func New(renderer Renderer, engine Engine, opts ...ViewerOption) *Viewer {
	v := &Viewer{
		renderer:   renderer,
		engine:     engine,
		stateStore: make(MapStateStore),
		style:      DefaultStyle(),
		ctx:        NewContext(),
		camera:     NewCamera(),
		clouds:     map[string]*PointCloud{},
		panels:     NewPanelRegistry(),
		toasts:     &ToastState{},
	}
	v.actions = NewActionRegistry(v.panels)
	v.setupUI()

	for _, opt := range opts {
		opt(v)
	}

	return v
}

// Camera returns the viewer's camera.
func (v *Viewer) Camera() *Camera { return v.camera }

// Panels returns the panel registry, for registering app panels and
// their hotkeys.
func (v *Viewer) Panels() *PanelRegistry { return v.panels }

// Actions returns the action registry for global hotkeys.
func (v *Viewer) Actions() *ActionRegistry { return v.actions }

// Toasts returns the toast stack, for app-level notifications.
func (v *Viewer) Toasts() *ToastState { return v.toasts }

// RegisterPointCloud adds (or replaces) a named point cloud and returns
// it for fluent configuration.
func (v *Viewer) RegisterPointCloud(name string, positions []math32.Vector3) *PointCloud {
	if old, ok := v.clouds[name]; ok {
		if v.hasSelection && v.selection.Cloud == old {
			v.ClearSelection()
		}
		old.destroy()
	} else {
		v.order = append(v.order, name)
	}

	pc := newPointCloud(name, positions, v.engine, v.RequestRedraw, v.ReportError)
	v.clouds[name] = pc
	vizLogger.Debug("point cloud registered", "name", name, "points", len(positions))
	v.RequestRedraw()
	return pc
}

// PointCloud looks up a registered cloud by name, or nil.
func (v *Viewer) PointCloud(name string) *PointCloud {
	return v.clouds[name]
}

// PointCloudNames returns registered cloud names in registration order.
func (v *Viewer) PointCloudNames() []string {
	out := make([]string, len(v.order))
	copy(out, v.order)
	return out
}

// RemovePointCloud unregisters and destroys the named cloud.
func (v *Viewer) RemovePointCloud(name string) {
	pc, ok := v.clouds[name]
	if !ok {
		return
	}
	if v.hasSelection && v.selection.Cloud == pc {
		v.ClearSelection()
	}
	pc.destroy()
	delete(v.clouds, name)
	for i, n := range v.order {
		if n == name {
			v.order = append(v.order[:i], v.order[i+1:]...)
			break
		}
	}
	v.RequestRedraw()
}

// cloudsInOrder returns registered clouds in registration order.
func (v *Viewer) cloudsInOrder() []*PointCloud {
	out := make([]*PointCloud, 0, len(v.order))
	for _, name := range v.order {
		out = append(out, v.clouds[name])
	}
	return out
}

// RequestRedraw flags that something visible changed. Callers that
// render on demand check RedrawRequested each frame and clear it after
// presenting; callers that render continuously can ignore it.
func (v *Viewer) RequestRedraw() { v.redrawRequested = true }

// RedrawRequested reports whether a redraw has been requested since the
// last ClearRedraw.
func (v *Viewer) RedrawRequested() bool { return v.redrawRequested }

// ClearRedraw resets the redraw flag.
func (v *Viewer) ClearRedraw() { v.redrawRequested = false }

// ReportError surfaces a non-fatal error: validation problems toast as
// warnings, everything else as errors; both land in the log. A nil error
// is ignored.
func (v *Viewer) ReportError(err error) {
	if err == nil {
		return
	}
	var verr *ValidationError
	if errors.As(err, &verr) {
		vizLogger.Warn("validation failed", "err", err)
		v.toasts.ToastWarning(err.Error())
		return
	}
	vizLogger.Error("viewer error", "err", err)
	v.toasts.ToastError(err.Error())
}

// Selection returns the picked point, when there is one.
func (v *Viewer) Selection() (PickResult, bool) {
	return v.selection, v.hasSelection
}

// ClearSelection drops the picked point.
func (v *Viewer) ClearSelection() {
	v.selection = PickResult{}
	v.hasSelection = false
	v.RequestRedraw()
}

// PickAt picks the point under window coordinates (x, y) and makes it
// the selection; empty space clears it.
func (v *Viewer) PickAt(x, y, w, h float32) (PickResult, bool) {
	res, ok := pickPoint(v.cloudsInOrder(), v.camera, w, h, x, y)
	if ok {
		v.selection = res
		v.hasSelection = true
	} else {
		v.selection = PickResult{}
		v.hasSelection = false
	}
	v.RequestRedraw()
	return res, ok
}

// Begin starts a UI frame and returns the context to build widgets with.
// Call after the scene pass, before any widget calls.
func (v *Viewer) Begin(input *InputState, displaySize Vec2, deltaTime float32) *Context {
	ctx := v.ctx

	// Acquire draw lists from the pool
	ctx.DrawList = AcquireDrawList()
	ctx.ForegroundDrawList = AcquireDrawList() // For popups, dropdowns (drawn on top)

	// Set frame state
	ctx.Input = input
	ctx.stateStore = v.stateStore
	ctx.DisplaySize = displaySize
	ctx.DeltaTime = deltaTime
	ctx.SetStyle(v.style)
	ctx.FontTextureID = v.renderer.FontTextureID()

	if v.fontProvider != nil {
		ctx.SetFontProvider(v.fontProvider)
	}

	// Reset per-frame state
	ctx.Reset(displaySize, deltaTime)

	v.snap.SetScreenSize(displaySize)
	v.toasts.Update(deltaTime)

	return ctx
}

// End finishes the frame and renders the UI.
// Call this after all UI drawing is complete.
func (v *Viewer) End() error {
	if v.ctx.DrawList == nil {
		return nil
	}

	// Render main draw list
	err := v.renderer.Render(v.ctx.DrawList)
	if err != nil {
		return err
	}

	// Render foreground draw list (popups, dropdowns) on top
	if v.ctx.ForegroundDrawList != nil && len(v.ctx.ForegroundDrawList.CmdBuffer) > 0 {
		err = v.renderer.Render(v.ctx.ForegroundDrawList)
	}

	// Release draw lists back to pool
	ReleaseDrawList(v.ctx.DrawList)
	v.ctx.DrawList = nil
	if v.ctx.ForegroundDrawList != nil {
		ReleaseDrawList(v.ctx.ForegroundDrawList)
		v.ctx.ForegroundDrawList = nil
	}

	return err
}

// Context returns the UI context.
// Only valid between Begin() and End() calls.
func (v *Viewer) Context() *Context { return v.ctx }

// Style returns the current UI style.
func (v *Viewer) Style() Style { return v.style }

// SetStyle sets the UI style.
func (v *Viewer) SetStyle(style Style) { v.style = style }

// SetFontProvider installs an app font atlas in place of the built-in
// bitmap font.
func (v *Viewer) SetFontProvider(fp FontProvider) { v.fontProvider = fp }

// FontProvider returns the current font provider, or nil if not set.
func (v *Viewer) FontProvider() FontProvider { return v.fontProvider }

// Resize propagates a window size change to the UI renderer.
func (v *Viewer) Resize(width, height int) { v.renderer.Resize(width, height) }

// DrawScene draws every registered cloud with the current camera.
// Call once per frame, before Begin.
func (v *Viewer) DrawScene(aspect float32) {
	view := v.camera.ViewMatrix()
	proj := v.camera.ProjectionMatrix(aspect)
	for _, pc := range v.cloudsInOrder() {
		pc.Draw(view, proj)
	}
}

// HandleSceneInput applies camera and picking mouse bindings: left-drag
// orbits, right-drag or shift-drag pans, wheel zooms, a left click
// picks. Call before Begin so the previous frame's UI hover state is
// still valid; skipped entirely while the UI wants the mouse.
func (v *Viewer) HandleSceneInput(input *InputState, w, h float32) {
	if input == nil {
		return
	}

	mouse := Vec2{X: input.MouseX, Y: input.MouseY}
	var dx, dy float32
	if v.haveLastMouse {
		dx = mouse.X - v.lastMouse.X
		dy = mouse.Y - v.lastMouse.Y
	}
	v.lastMouse = mouse
	v.haveLastMouse = true

	if v.ctx.WantCaptureMouse {
		v.pickArmed = false
		return
	}

	if input.MouseWheelY != 0 {
		v.camera.Zoom(input.MouseWheelY)
		v.RequestRedraw()
	}

	panning := input.MouseDown(MouseButtonRight) ||
		(input.MouseDown(MouseButtonLeft) && input.ModShift)
	switch {
	case panning:
		if dx != 0 || dy != 0 {
			v.camera.Pan(dx/w, dy/h)
			v.RequestRedraw()
		}
	case input.MouseDown(MouseButtonLeft):
		if dx != 0 || dy != 0 {
			v.camera.Orbit(dx*orbitSpeed, dy*orbitSpeed)
			v.RequestRedraw()
		}
	}

	// A click that barely moves is a pick; a drag is camera motion.
	if input.MouseClicked(MouseButtonLeft) && !input.ModShift {
		v.pickStart = mouse
		v.pickArmed = true
	}
	if v.pickArmed && input.MouseReleased(MouseButtonLeft) {
		moved := math32.Abs(mouse.X-v.pickStart.X) > pickClickSlop ||
			math32.Abs(mouse.Y-v.pickStart.Y) > pickClickSlop
		if !moved {
			v.PickAt(mouse.X, mouse.Y, w, h)
		}
		v.pickArmed = false
	}
}

const (
	orbitSpeed    = 0.01 // radians per pixel of drag
	pickClickSlop = 3    // pixels of drag tolerated for a click pick
)
