package pointviz

const (
	controlsPanelWidth  float32 = 330
	selectionPanelWidth float32 = 280
	panelMargin         float32 = 10
)

// controlsPanel is the structure browser: one collapsible section per
// registered cloud, each carrying its quantities' control rows.
type controlsPanel struct {
	viewer *Viewer
	open   bool
	drag   *DraggablePanel
}

func newControlsPanel(v *Viewer) *controlsPanel {
	return &controlsPanel{
		viewer: v,
		open:   true,
		drag:   NewDraggablePanel(panelMargin, panelMargin),
	}
}

func (p *controlsPanel) Open()         { p.open = true }
func (p *controlsPanel) Close()        { p.open = false }
func (p *controlsPanel) Toggle() bool  { p.open = !p.open; return p.open }
func (p *controlsPanel) IsOpen() bool  { return p.open }
func (p *controlsPanel) CanOpen() bool { return true }

func (p *controlsPanel) HandleInput(input *InputState) bool { return false }

func (p *controlsPanel) Draw(ctx *Context) {
	if !p.open {
		return
	}
	p.drag.HandleDrag(ctx)
	start := p.drag.Position
	ctx.SetCursorPos(start.X, start.Y)

	ctx.Panel("Controls", Width(controlsPanelWidth), WithHotkey("Tab"))(func() {
		clouds := p.viewer.cloudsInOrder()
		if len(clouds) == 0 {
			ctx.HintEmpty("No point clouds registered")
			return
		}
		for _, pc := range clouds {
			pc.BuildUI(ctx)
		}
	})

	p.drag.Size = Vec2{X: controlsPanelWidth, Y: ctx.GetCursorPos().Y - start.Y}
	if p.viewer.snap != nil {
		p.viewer.snap.UpdatePanel("controls", PanelBounds{
			X: start.X, Y: start.Y, W: p.drag.Size.X, H: p.drag.Size.Y,
		})
	}
	p.drag.DrawSnapGuides(ctx)
}

// selectionPanel shows the picked point's readout. It opens by picking
// rather than by hotkey; closing it (Escape) clears the selection.
type selectionPanel struct {
	viewer *Viewer
	drag   *DraggablePanel
	placed bool
}

func newSelectionPanel(v *Viewer) *selectionPanel {
	return &selectionPanel{
		viewer: v,
		drag:   NewDraggablePanel(panelMargin, panelMargin),
	}
}

func (p *selectionPanel) Open()         {}
func (p *selectionPanel) Close()        { p.viewer.ClearSelection() }
func (p *selectionPanel) Toggle() bool  { return p.IsOpen() }
func (p *selectionPanel) IsOpen() bool  { _, ok := p.viewer.Selection(); return ok }
func (p *selectionPanel) CanOpen() bool { return false }

func (p *selectionPanel) HandleInput(input *InputState) bool { return false }

func (p *selectionPanel) Draw(ctx *Context) {
	sel, ok := p.viewer.Selection()
	if !ok {
		return
	}
	if !p.placed && ctx.DisplaySize.X > 0 {
		p.drag.Position = Vec2{
			X: ctx.DisplaySize.X - selectionPanelWidth - panelMargin,
			Y: panelMargin,
		}
		p.placed = true
	}
	p.drag.HandleDrag(ctx)
	start := p.drag.Position
	ctx.SetCursorPos(start.X, start.Y)

	ctx.Panel("Selection", Width(selectionPanelWidth))(func() {
		sel.Cloud.BuildPickUI(ctx, sel.Index)
		ctx.Spacing(SpaceSM)
		ctx.HintFooterClose()
	})

	p.drag.Size = Vec2{X: selectionPanelWidth, Y: ctx.GetCursorPos().Y - start.Y}
	if p.viewer.snap != nil {
		p.viewer.snap.UpdatePanel("selection", PanelBounds{
			X: start.X, Y: start.Y, W: p.drag.Size.X, H: p.drag.Size.Y,
		})
	}
	p.drag.DrawSnapGuides(ctx)
}

// setupUI registers the built-in panels and hotkeys: Tab toggles the
// controls panel, R resets the camera, Escape dismisses the selection.
func (v *Viewer) setupUI() {
	v.snap = NewSnapManager(Vec2{}, DefaultSnapConfig())
	v.panels.SetExclusive(false)

	controls := newControlsPanel(v)
	controls.drag.SetSnapManager(v.snap, "controls")
	v.panels.Register("controls", controls, KeyTab, 10)
	// The controls panel is the primary surface; Escape leaves it alone.
	v.panels.SetCloseBinding("controls", func() bool { return false })

	selection := newSelectionPanel(v)
	selection.drag.SetSnapManager(v.snap, "selection")
	v.panels.Register("selection", selection, KeyNone, 20)

	v.actions.Register("reset camera", func() bool {
		return v.curInput != nil && v.curInput.KeyPressed(KeyR)
	}, func() {
		v.camera.Reset()
		v.RequestRedraw()
	})
}

// HandleUIInput routes panel hotkeys, close keys and global actions.
// Call once per frame before Begin; returns true if the UI consumed the
// input. Hotkeys are suppressed while a widget holds keyboard capture
// (a range edit in progress, an open dropdown).
func (v *Viewer) HandleUIInput(input *InputState) bool {
	if input == nil {
		return false
	}
	v.curInput = input
	if v.ctx.WantCaptureKeyboard {
		return false
	}
	if v.panels.HandleHotkeys(input) {
		return true
	}
	if v.actions.HandleActions() {
		return true
	}
	return v.panels.HandleInput(input)
}

// DrawUI draws the controls and selection panels and the toast stack.
// Call between Begin and End, after the scene pass.
func (v *Viewer) DrawUI() {
	v.ctx.SetPanelRegistry(v.panels)
	v.panels.Draw(v.ctx)
	v.ctx.DrawToasts(v.toasts)
}
