package pointviz

// PanelBounds represents the bounds of a panel for snapping calculations.
type PanelBounds struct {
	X, Y, W, H float32
	Name       string
}

// SnapGuide represents a visual snap guide line.
type SnapGuide struct {
	X1, Y1, X2, Y2 float32
	Horizontal     bool
}

// SnapManager handles panel snapping to screen edges and other panels.
// Panels register their bounds each frame; a panel being dragged asks
// for the snapped position plus guide lines to visualize the snap.
type SnapManager struct {
	panels       []PanelBounds
	screenSize   Vec2
	config       SnapConfig
	activeGuides []SnapGuide
}

// NewSnapManager creates a new snap manager.
func NewSnapManager(screenSize Vec2, config SnapConfig) *SnapManager {
	return &SnapManager{
		panels:       make([]PanelBounds, 0, 8),
		screenSize:   screenSize,
		config:       config,
		activeGuides: make([]SnapGuide, 0, 4),
	}
}

// SetScreenSize updates the screen size for edge snapping.
func (sm *SnapManager) SetScreenSize(size Vec2) {
	sm.screenSize = size
}

// SetConfig updates the snap configuration.
func (sm *SnapManager) SetConfig(config SnapConfig) {
	sm.config = config
}

// Clear removes all registered panels.
func (sm *SnapManager) Clear() {
	sm.panels = sm.panels[:0]
	sm.activeGuides = sm.activeGuides[:0]
}

// RegisterPanel adds a panel to the snap manager.
func (sm *SnapManager) RegisterPanel(name string, bounds PanelBounds) {
	bounds.Name = name
	sm.panels = append(sm.panels, bounds)
}

// UpdatePanel updates the bounds of an existing panel.
func (sm *SnapManager) UpdatePanel(name string, bounds PanelBounds) {
	for i := range sm.panels {
		if sm.panels[i].Name == name {
			bounds.Name = name
			sm.panels[i] = bounds
			return
		}
	}
	// Not found, add it
	sm.RegisterPanel(name, bounds)
}

// RemovePanel removes a panel from the snap manager.
func (sm *SnapManager) RemovePanel(name string) {
	for i := range sm.panels {
		if sm.panels[i].Name == name {
			sm.panels = append(sm.panels[:i], sm.panels[i+1:]...)
			return
		}
	}
}

// snapCandidate is one position an axis can snap to, with its guide line.
type snapCandidate struct {
	pos   float32
	guide SnapGuide
}

// CalculateSnap calculates the snapped position for a panel being dragged.
// Returns the adjusted position and the guide lines that triggered.
// excluding is the name of the panel being dragged (to avoid self-snapping).
func (sm *SnapManager) CalculateSnap(bounds PanelBounds, excluding string) (Vec2, []SnapGuide) {
	if !sm.config.Enabled {
		return Vec2{X: bounds.X, Y: bounds.Y}, nil
	}

	sm.activeGuides = sm.activeGuides[:0]
	pos := Vec2{X: bounds.X, Y: bounds.Y}

	if c, ok := sm.snapX(bounds, excluding); ok {
		pos.X = c.pos
		sm.activeGuides = append(sm.activeGuides, c.guide)
	}
	if c, ok := sm.snapY(bounds, excluding); ok {
		pos.Y = c.pos
		sm.activeGuides = append(sm.activeGuides, c.guide)
	}

	return pos, sm.activeGuides
}

// snapX finds the first horizontal snap within range. Screen edges and
// center take priority over other panels' edges.
func (sm *SnapManager) snapX(b PanelBounds, excluding string) (snapCandidate, bool) {
	if m := sm.config.EdgeMargin; m > 0 {
		right := sm.screenSize.X
		center := sm.screenSize.X / 2
		switch {
		case absf32(b.X) < m:
			return snapCandidate{0, sm.vGuide(0)}, true
		case absf32(b.X+b.W-right) < m:
			return snapCandidate{right - b.W, sm.vGuide(right)}, true
		case absf32(b.X+b.W/2-center) < m:
			return snapCandidate{center - b.W/2, sm.vGuide(center)}, true
		}
	}
	if m := sm.config.PanelMargin; m > 0 {
		for _, other := range sm.panels {
			if other.Name == excluding {
				continue
			}
			left, right := other.X, other.X+other.W
			switch {
			case absf32(b.X+b.W-left) < m: // our right edge to their left
				return snapCandidate{left - b.W, vPanelGuide(left, b, other)}, true
			case absf32(b.X-left) < m: // left edges aligned
				return snapCandidate{left, vPanelGuide(left, b, other)}, true
			case absf32(b.X-right) < m: // our left edge to their right
				return snapCandidate{right, vPanelGuide(right, b, other)}, true
			case absf32(b.X+b.W-right) < m: // right edges aligned
				return snapCandidate{right - b.W, vPanelGuide(right, b, other)}, true
			}
		}
	}
	return snapCandidate{}, false
}

// snapY finds the first vertical snap within range.
func (sm *SnapManager) snapY(b PanelBounds, excluding string) (snapCandidate, bool) {
	if m := sm.config.EdgeMargin; m > 0 {
		bottom := sm.screenSize.Y
		center := sm.screenSize.Y / 2
		switch {
		case absf32(b.Y) < m:
			return snapCandidate{0, sm.hGuide(0)}, true
		case absf32(b.Y+b.H-bottom) < m:
			return snapCandidate{bottom - b.H, sm.hGuide(bottom)}, true
		case absf32(b.Y+b.H/2-center) < m:
			return snapCandidate{center - b.H/2, sm.hGuide(center)}, true
		}
	}
	if m := sm.config.PanelMargin; m > 0 {
		for _, other := range sm.panels {
			if other.Name == excluding {
				continue
			}
			top, bottom := other.Y, other.Y+other.H
			switch {
			case absf32(b.Y+b.H-top) < m: // our bottom edge to their top
				return snapCandidate{top - b.H, hPanelGuide(top, b, other)}, true
			case absf32(b.Y-top) < m: // top edges aligned
				return snapCandidate{top, hPanelGuide(top, b, other)}, true
			case absf32(b.Y-bottom) < m: // our top edge to their bottom
				return snapCandidate{bottom, hPanelGuide(bottom, b, other)}, true
			case absf32(b.Y+b.H-bottom) < m: // bottom edges aligned
				return snapCandidate{bottom - b.H, hPanelGuide(bottom, b, other)}, true
			}
		}
	}
	return snapCandidate{}, false
}

// vGuide returns a full-height vertical guide line at x.
func (sm *SnapManager) vGuide(x float32) SnapGuide {
	return SnapGuide{X1: x, Y1: 0, X2: x, Y2: sm.screenSize.Y}
}

// hGuide returns a full-width horizontal guide line at y.
func (sm *SnapManager) hGuide(y float32) SnapGuide {
	return SnapGuide{X1: 0, Y1: y, X2: sm.screenSize.X, Y2: y, Horizontal: true}
}

// vPanelGuide returns a vertical guide at x spanning both panels' extents.
func vPanelGuide(x float32, a, b PanelBounds) SnapGuide {
	return SnapGuide{
		X1: x, Y1: minf(a.Y, b.Y),
		X2: x, Y2: maxf(a.Y+a.H, b.Y+b.H),
	}
}

// hPanelGuide returns a horizontal guide at y spanning both panels' extents.
func hPanelGuide(y float32, a, b PanelBounds) SnapGuide {
	return SnapGuide{
		X1: minf(a.X, b.X), Y1: y,
		X2: maxf(a.X+a.W, b.X+b.W), Y2: y,
		Horizontal: true,
	}
}

// DrawGuides draws the active snap guide lines.
// Call this during a drag operation to show visual feedback.
func (sm *SnapManager) DrawGuides(dl *DrawList) {
	guideColor := RGBA(0, 180, 255, 150)
	for _, guide := range sm.activeGuides {
		dl.AddLine(guide.X1, guide.Y1, guide.X2, guide.Y2, guideColor, 1)
	}
}

// ActiveGuides returns the currently active snap guides.
func (sm *SnapManager) ActiveGuides() []SnapGuide {
	return sm.activeGuides
}

// ClearGuides clears the active snap guides.
func (sm *SnapManager) ClearGuides() {
	sm.activeGuides = sm.activeGuides[:0]
}
