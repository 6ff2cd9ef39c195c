package pointviz

// StateStore persists widget state between frames.
// Unlike ImGui's hidden state, this is explicit and inspectable.
type StateStore interface {
	Get(id ID) (any, bool)
	Set(id ID, value any)
	Delete(id ID)
}

// MapStateStore is a simple in-memory StateStore implementation.
type MapStateStore map[ID]any

// Get retrieves a value from the store.
func (m MapStateStore) Get(id ID) (any, bool) {
	v, ok := m[id]
	return v, ok
}

// Set stores a value in the store.
func (m MapStateStore) Set(id ID, value any) {
	m[id] = value
}

// Delete removes a value from the store.
func (m MapStateStore) Delete(id ID) {
	delete(m, id)
}

// GetState retrieves typed state from the context.
// Returns defaultVal if the state doesn't exist or has wrong type.
func GetState[T any](ctx *Context, id ID, defaultVal T) T {
	if v, ok := ctx.stateStore.Get(id); ok {
		if typed, ok := v.(T); ok {
			return typed
		}
	}
	return defaultVal
}

// SetState stores typed state in the context.
func SetState[T any](ctx *Context, id ID, value T) {
	ctx.stateStore.Set(id, value)
}

// DeleteState removes state from the context.
func DeleteState(ctx *Context, id ID) {
	ctx.stateStore.Delete(id)
}

// absf32 returns the absolute value of a float32.
func absf32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// Common state types for widgets

// ScrollState tracks scroll position for scrollable areas.
type ScrollState struct {
	ScrollY       float32 // Current scroll position
	TargetScrollY float32 // Target for smooth scrolling
	ContentHeight float32 // Total content height
}

// UpdateSmooth smoothly interpolates scroll position toward target.
// Call this each frame with the frame's delta time.
// Returns true if still animating.
func (s *ScrollState) UpdateSmooth(deltaTime float32) bool {
	const smoothSpeed = 15.0 // Higher = faster convergence
	const threshold = 0.5    // Stop animating when this close

	diff := s.TargetScrollY - s.ScrollY
	if absf32(diff) < threshold {
		s.ScrollY = s.TargetScrollY
		return false
	}

	s.ScrollY += diff * deltaTime * smoothSpeed
	return true
}

// CollapsingHeaderState tracks collapsed state for collapsing headers.
type CollapsingHeaderState struct {
	Open bool
}

// SliderState tracks state for slider widgets.
type SliderState struct {
	Dragging       bool    // True when the grab handle is being dragged
	DragStartX     float32 // Mouse X position when drag started
	DragStartValue float32 // Value when drag started
}

// ComboBoxState tracks state for combo box widgets.
type ComboBoxState struct {
	Open          bool    // True when dropdown is open
	ScrollY       float32 // Scroll position in dropdown
	HoveredIndex  int     // Currently hovered item index (-1 = none)
	KeyboardIndex int     // Currently keyboard-selected index (-1 = none)
}

// PopupState tracks an anchored popup's open state.
type PopupState struct {
	Open        bool
	Pos         Vec2   // Top-left anchor, captured when opened
	OpenedFrame uint64 // Frame the popup opened on (guards the opening click)
}

// RangeSliderState tracks state for dual-handle range slider widgets.
// Handles are numbered 0 (lower bound) and 1 (upper bound); -1 means none.
type RangeSliderState struct {
	DragHandle     int     // Handle being dragged (-1 = none)
	DragStartX     float32 // Mouse X when drag started
	DragStartValue float64 // Bound value when drag started
	EditHandle     int     // Handle in text edit mode (-1 = none)
	EditText       string  // Text being edited
}

// ResizableEdge represents which edge(s) of a panel are being resized.
type ResizableEdge uint8

const (
	ResizeEdgeNone   ResizableEdge = 0
	ResizeEdgeLeft   ResizableEdge = 1 << 0
	ResizeEdgeRight  ResizableEdge = 1 << 1
	ResizeEdgeTop    ResizableEdge = 1 << 2
	ResizeEdgeBottom ResizableEdge = 1 << 3
)

// ResizeState tracks the state of a panel resize operation.
type ResizeState struct {
	Active      bool          // Currently being resized
	Edge        ResizableEdge // Which edge(s) are being resized
	StartMouseX float32       // Mouse X when resize started
	StartMouseY float32       // Mouse Y when resize started
	StartX      float32       // Panel X when resize started
	StartY      float32       // Panel Y when resize started
	StartW      float32       // Panel width when resize started
	StartH      float32       // Panel height when resize started
}
