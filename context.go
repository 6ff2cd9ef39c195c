package pointviz

// Context holds all state for UI rendering in a single frame.
// This is NOT context.Context - it's a dedicated UI context type.
// Using a dedicated type avoids type assertions and map lookups,
// providing better performance and type safety.
type Context struct {
	// Drawing output
	DrawList           *DrawList
	ForegroundDrawList *DrawList // For popups, dropdowns, tooltips (drawn on top)

	// Styling
	style      Style
	styleStack []Style // For PushStyle/PopStyle

	// Layout
	cursor      Vec2
	layoutStack []*Layout

	// Input (read-only during frame)
	Input *InputState

	// Widget state (persisted between frames)
	stateStore StateStore

	// IDs
	idStack   []ID
	idCounter uint32 // Auto-increment for call-site IDs

	// Screen
	DisplaySize Vec2
	DPIScale    float32

	// Frame info
	FrameCount uint64
	DeltaTime  float32

	// Focus/Active/Hover tracking
	focusedID ID // Widget in edit mode (e.g., typing a range bound)
	activeID  ID // Widget being interacted with (e.g., pressed button)
	hoveredID ID // Widget under mouse cursor

	// Keyboard/mouse tracking for this frame
	hotID ID // Widget that will become active on next click

	// Two-pass layout support (for centering, etc.)
	measuringPass bool
	measuredSizes map[ID]Vec2

	// Font texture ID (set by renderer) - legacy field for built-in font
	FontTextureID uint32

	// FontProvider for advanced font support (optional, interface-based)
	fontProvider FontProvider

	// Input capture flags (output from UI to application)
	// These tell the application whether the UI wants to consume input.
	WantCaptureMouse    bool // True if mouse is over any UI element
	WantCaptureKeyboard bool // True if a text input has focus

	// Panel registry, set by the viewer each frame.
	panelRegistry *PanelRegistry

	// Drag state tracking (for draggable panels)
	// Only one panel can be dragged at a time.
	activeDragPanel *DraggablePanel

	// Performance optimization: pre-allocated glyph buffer for text rendering.
	// Reused between addText() calls to avoid per-call allocations.
	glyphBuffer []GlyphQuad

	// Performance optimization: text measurement cache.
	// Avoids redundant MeasureText calls for the same text within a frame.
	textMeasureCache map[string]Vec2

	// Section stack - tracks indent depths for BeginSection/EndSection API
	sectionStack []float32

	// Active popup tracking - persists across frames for input handling
	// When a popup (dropdown, menu) is open, it owns keyboard input.
	activePopupID ID
}

// NewContext creates a new UI context with default settings.
func NewContext() *Context {
	return &Context{
		styleStack:       make([]Style, 0, 8),
		layoutStack:      make([]*Layout, 0, 16),
		idStack:          make([]ID, 0, 32),
		measuredSizes:    make(map[ID]Vec2),
		glyphBuffer:      make([]GlyphQuad, 0, 256), // Pre-allocate for typical text
		textMeasureCache: make(map[string]Vec2, 64), // Cache for text measurements
		DPIScale:         1.0,
	}
}

// Style returns the current style.
func (ctx *Context) Style() Style {
	return ctx.style
}

// SetStyle sets the base style.
func (ctx *Context) SetStyle(style Style) {
	ctx.style = style
}

// PushStyle temporarily overrides the style.
func (ctx *Context) PushStyle(style Style) {
	ctx.styleStack = append(ctx.styleStack, ctx.style)
	ctx.style = style
}

// PopStyle restores the previous style.
func (ctx *Context) PopStyle() {
	n := len(ctx.styleStack)
	if n > 0 {
		ctx.style = ctx.styleStack[n-1]
		ctx.styleStack = ctx.styleStack[:n-1]
	}
}

// PushStyleColor temporarily overrides a single color.
func (ctx *Context) PushStyleColor(field StyleColorField, color uint32) {
	ctx.PushStyle(ctx.style)
	switch field {
	case StyleColorText:
		ctx.style.TextColor = color
	case StyleColorButton:
		ctx.style.ButtonColor = color
	case StyleColorButtonHovered:
		ctx.style.ButtonHoveredColor = color
	case StyleColorButtonActive:
		ctx.style.ButtonActiveColor = color
	case StyleColorPanel:
		ctx.style.PanelColor = color
	case StyleColorSelected:
		ctx.style.SelectedBgColor = color
	}
}

// StyleColorField identifies a color field in Style for PushStyleColor.
type StyleColorField int

const (
	StyleColorText StyleColorField = iota
	StyleColorButton
	StyleColorButtonHovered
	StyleColorButtonActive
	StyleColorPanel
	StyleColorSelected
)

// Reset prepares the context for a new frame.
func (ctx *Context) Reset(displaySize Vec2, deltaTime float32) {
	// Advance frame counter and clean up stale FrameStore entries
	NextFrame()
	ctx.FrameCount++

	ctx.cursor = Vec2{0, 0}
	ctx.layoutStack = ctx.layoutStack[:0]
	ctx.styleStack = ctx.styleStack[:0]
	ctx.idStack = ctx.idStack[:0]
	ctx.idCounter = 0
	ctx.DisplaySize = displaySize
	ctx.DeltaTime = deltaTime

	// Clear previous frame's hot/active state that wasn't renewed
	ctx.hotID = 0

	// Reset input capture flags - widgets will set these during the frame
	ctx.WantCaptureMouse = false
	ctx.WantCaptureKeyboard = false

	// Clear text measurement cache (valid only for current frame)
	clear(ctx.textMeasureCache)

	// Clear activePopupID - widgets with active popups must reclaim it each
	// frame, so an orphaned popup (its widget no longer draws) stops eating
	// input.
	if ctx.activePopupID != 0 {
		vizLogger.Debug("Reset: clearing activePopupID", "id", ctx.activePopupID)
	}
	ctx.activePopupID = 0
}

// Helper methods for widget interaction

// isHovered returns true if the widget area is under the mouse cursor.
func (ctx *Context) isHovered(id ID, rect Rect) bool {
	if ctx.Input == nil {
		return false
	}
	return rect.Contains(Vec2{ctx.Input.MouseX, ctx.Input.MouseY})
}

// IsHovered returns true if the widget area is under the mouse cursor (public API).
func (ctx *Context) IsHovered(id ID, rect Rect) bool {
	return ctx.isHovered(id, rect)
}

// isClicked returns true if the widget was clicked this frame.
func (ctx *Context) isClicked(id ID, rect Rect) bool {
	if ctx.Input == nil {
		return false
	}
	hovered := ctx.isHovered(id, rect)
	clicked := ctx.Input.MouseClicked(MouseButtonLeft)

	// Debug logging for click detection issues
	if clicked && vizVerbose() {
		if hovered {
			vizLogger.Debug("click detected",
				"id", id,
				"rect", rect,
				"mouse", Vec2{ctx.Input.MouseX, ctx.Input.MouseY})
		} else {
			vizLogger.Debug("click missed - not hovered",
				"id", id,
				"rect", rect,
				"mouse", Vec2{ctx.Input.MouseX, ctx.Input.MouseY})
		}
	}

	return hovered && clicked
}

// IsClicked returns true if the widget was clicked this frame (public API).
func (ctx *Context) IsClicked(id ID, rect Rect) bool {
	return ctx.isClicked(id, rect)
}

// isPressed returns true if the widget is being held down.
func (ctx *Context) isPressed(id ID, rect Rect) bool {
	if ctx.Input == nil {
		return false
	}
	return ctx.isHovered(id, rect) && ctx.Input.MouseDown(MouseButtonLeft)
}

// SetFocused sets the focused widget.
func (ctx *Context) SetFocused(id ID) {
	ctx.focusedID = id
}

// IsFocused returns true if the widget has keyboard focus.
func (ctx *Context) IsFocused(id ID) bool {
	return ctx.focusedID == id
}

// ClearFocus removes keyboard focus.
func (ctx *Context) ClearFocus() {
	ctx.focusedID = 0
}

// HasWidgetFocus returns true if any widget has keyboard focus (edit mode).
func (ctx *Context) HasWidgetFocus() bool {
	return ctx.focusedID != 0
}

// SetActivePopup marks a popup (dropdown, menu) as open.
// While a popup is active it owns keyboard input.
// Call with id=0 to close the popup.
func (ctx *Context) SetActivePopup(id ID) {
	ctx.activePopupID = id
	if id != 0 {
		ctx.WantCaptureKeyboard = true
	}
}

// HasActivePopup returns true if a popup is currently open.
func (ctx *Context) HasActivePopup() bool {
	return ctx.activePopupID != 0
}

// ActivePopupID returns the ID of the currently active popup, or 0 if none.
func (ctx *Context) ActivePopupID() ID {
	return ctx.activePopupID
}

// SetCursorPos sets the cursor position for the next widget.
func (ctx *Context) SetCursorPos(x, y float32) {
	ctx.cursor = Vec2{X: x, Y: y}
}

// GetCursorPos returns the current cursor position.
func (ctx *Context) GetCursorPos() Vec2 {
	return ctx.cursor
}

// lineHeight returns the height of a single line of text.
// Uses the font provider if available, otherwise falls back to CharHeight * FontScale.
func (ctx *Context) lineHeight() float32 {
	if f := ctx.activeFont(); f != nil {
		return f.LineHeight(ctx.style.FontScale)
	}
	return ctx.style.CharHeight * ctx.style.FontScale
}

// LineHeight returns the height of a single line of text (public API).
func (ctx *Context) LineHeight() float32 {
	return ctx.lineHeight()
}

// MeasureText returns the size of rendered text.
// Uses the font provider if available, otherwise falls back to monospace calculation.
// Results are cached per-frame to avoid redundant measurements.
func (ctx *Context) MeasureText(text string) Vec2 {
	// Check cache first
	if ctx.textMeasureCache != nil {
		if cached, ok := ctx.textMeasureCache[text]; ok {
			return cached
		}
	}

	var result Vec2
	if f := ctx.activeFont(); f != nil {
		size := f.MeasureText(text, ctx.style.FontScale)
		result = Vec2{X: size.X, Y: size.Y}
	} else {
		// Fallback to monospace calculation
		charW := ctx.style.CharWidth * ctx.style.FontScale
		charH := ctx.style.CharHeight * ctx.style.FontScale
		result = Vec2{X: float32(len(text)) * charW, Y: charH}
	}

	// Cache the result
	if ctx.textMeasureCache != nil {
		ctx.textMeasureCache[text] = result
	}

	return result
}

// activeFont returns the current active font, or nil if no font provider is set.
// This is a helper to reduce repetitive null checks.
func (ctx *Context) activeFont() Font {
	if ctx.fontProvider != nil {
		return ctx.fontProvider.ActiveFont()
	}
	return nil
}

// SetFontProvider sets the font provider for advanced font support.
// The provider must implement the FontProvider interface.
// Pass nil to disable font provider and use built-in monospace font.
func (ctx *Context) SetFontProvider(fp FontProvider) {
	ctx.fontProvider = fp
}

// SetPanelRegistry associates a panel registry with this context.
func (ctx *Context) SetPanelRegistry(registry *PanelRegistry) {
	ctx.panelRegistry = registry
}

// PanelRegistry returns the associated panel registry, or nil if not set.
func (ctx *Context) PanelRegistry() *PanelRegistry {
	return ctx.panelRegistry
}

// SetActiveDragPanel sets the panel currently being dragged.
// Only one panel can be dragged at a time.
func (ctx *Context) SetActiveDragPanel(dp *DraggablePanel) {
	ctx.activeDragPanel = dp
}

// ActiveDragPanel returns the panel currently being dragged, or nil.
func (ctx *Context) ActiveDragPanel() *DraggablePanel {
	return ctx.activeDragPanel
}

// IsDraggingPanel returns true if any panel is currently being dragged.
func (ctx *Context) IsDraggingPanel() bool {
	return ctx.activeDragPanel != nil && ctx.activeDragPanel.IsDragging()
}

// FontProvider returns the current font provider, or nil if not set.
func (ctx *Context) FontProvider() FontProvider {
	return ctx.fontProvider
}

// SetFont sets the active font by name.
// Returns an error if the font is not found.
// Does nothing if no font provider is set.
func (ctx *Context) SetFont(name string) error {
	if ctx.fontProvider == nil {
		return nil
	}
	return ctx.fontProvider.SetActiveFont(name)
}

// currentLayoutWidth returns the available width in the current layout.
func (ctx *Context) currentLayoutWidth() float32 {
	if len(ctx.layoutStack) > 0 {
		layout := ctx.layoutStack[len(ctx.layoutStack)-1]
		return layout.Width - layout.Padding*2 - layout.PaddingX*2
	}
	return ctx.DisplaySize.X
}

// CurrentLayoutWidth returns the available width in the current layout (public API).
func (ctx *Context) CurrentLayoutWidth() float32 {
	return ctx.currentLayoutWidth()
}

// currentLayoutHeight returns the available height in the current layout.
func (ctx *Context) currentLayoutHeight() float32 {
	if len(ctx.layoutStack) > 0 {
		layout := ctx.layoutStack[len(ctx.layoutStack)-1]
		return layout.Height - layout.Padding*2 - layout.PaddingY*2
	}
	return ctx.DisplaySize.Y
}

// currentLayout returns the current layout or nil.
func (ctx *Context) currentLayout() *Layout {
	if len(ctx.layoutStack) > 0 {
		return ctx.layoutStack[len(ctx.layoutStack)-1]
	}
	return nil
}

// addText is a helper to draw text with current style.
// Uses the font provider if available, otherwise falls back to built-in monospace font.
// Performance: reuses pre-allocated glyph buffer to avoid allocations in hot paths.
func (ctx *Context) addText(x, y float32, text string, color uint32) {
	ctx.AddText(x, y, text, color)
}

// addTextTo draws text to a specific DrawList (for foreground/overlay rendering).
func (ctx *Context) addTextTo(dl *DrawList, x, y float32, text string, color uint32) {
	ctx.AddTextTo(dl, x, y, text, color)
}

// AddTextTo draws text to a specific DrawList (public API).
// This is useful for drawing to foreground/overlay layers.
func (ctx *Context) AddTextTo(dl *DrawList, x, y float32, text string, color uint32) {
	if dl == nil {
		return
	}
	if f := ctx.activeFont(); f != nil {
		dl.SetTexture(f.TextureID())
		fontQuads := f.GetGlyphQuads(text, x, y, ctx.style.FontScale)

		if cap(ctx.glyphBuffer) < len(fontQuads) {
			ctx.glyphBuffer = make([]GlyphQuad, 0, len(fontQuads)*2)
		}
		ctx.glyphBuffer = ctx.glyphBuffer[:len(fontQuads)]

		for i, q := range fontQuads {
			ctx.glyphBuffer[i] = GlyphQuad{
				X0: q.X0, Y0: q.Y0,
				X1: q.X1, Y1: q.Y1,
				U0: q.U0, V0: q.V0,
				U1: q.U1, V1: q.V1,
			}
		}
		dl.AddGlyphQuads(ctx.glyphBuffer, color)
		dl.SetTexture(0)
		return
	}

	// Fallback to built-in monospace font (legacy renderer)
	dl.SetTexture(ctx.FontTextureID)
	dl.AddText(x, y, text, color, ctx.style.FontScale, ctx.style.CharWidth, ctx.style.CharHeight)
	dl.SetTexture(0)
}

// AddText draws text with current style (public API).
// Uses the font provider if available, otherwise falls back to built-in monospace font.
func (ctx *Context) AddText(x, y float32, text string, color uint32) {
	if f := ctx.activeFont(); f != nil {
		ctx.DrawList.SetTexture(f.TextureID())
		// Get glyph quads from font and convert to UI format
		fontQuads := f.GetGlyphQuads(text, x, y, ctx.style.FontScale)

		// Reuse pre-allocated buffer instead of allocating each call
		if cap(ctx.glyphBuffer) < len(fontQuads) {
			// Grow buffer with some headroom to reduce future allocations
			ctx.glyphBuffer = make([]GlyphQuad, 0, len(fontQuads)*2)
		}
		ctx.glyphBuffer = ctx.glyphBuffer[:len(fontQuads)]

		for i, q := range fontQuads {
			ctx.glyphBuffer[i] = GlyphQuad{
				X0: q.X0, Y0: q.Y0,
				X1: q.X1, Y1: q.Y1,
				U0: q.U0, V0: q.V0,
				U1: q.U1, V1: q.V1,
			}
		}
		ctx.DrawList.AddGlyphQuads(ctx.glyphBuffer, color)
		ctx.DrawList.SetTexture(0)
		return
	}

	// Fallback to built-in monospace font (legacy renderer)
	ctx.DrawList.SetTexture(ctx.FontTextureID)
	ctx.DrawList.AddText(x, y, text, color, ctx.style.FontScale, ctx.style.CharWidth, ctx.style.CharHeight)
	ctx.DrawList.SetTexture(0)
}

// beginItem applies gap spacing before drawing an item.
// Call this before drawing any widget to ensure proper spacing.
func (ctx *Context) beginItem() {
	layout := ctx.currentLayout()
	if layout == nil {
		return
	}

	// Add gap BEFORE this item (if not first)
	if layout.ItemCount > 0 {
		if layout.Type == LayoutVertical {
			gap := layout.GapY
			if gap == 0 {
				gap = layout.Gap
			}
			if gap == 0 {
				gap = ctx.style.ItemSpacing
			}
			ctx.cursor.Y += gap
		} else {
			gap := layout.GapX
			if gap == 0 {
				gap = layout.Gap
			}
			if gap == 0 {
				gap = ctx.style.ItemSpacing
			}
			ctx.cursor.X += gap
		}
	}
}

// ItemPos returns the position for the next widget with gap applied.
// This is the recommended way for widgets to get their drawing position.
// It handles layout gaps automatically.
func (ctx *Context) ItemPos() Vec2 {
	ctx.beginItem()
	return ctx.cursor
}

// advanceCursor moves the cursor after drawing an item.
func (ctx *Context) advanceCursor(size Vec2) {
	ctx.AdvanceCursor(size)
}

// AdvanceCursor moves the cursor after drawing an item (public API).
func (ctx *Context) AdvanceCursor(size Vec2) {
	layout := ctx.currentLayout()
	if layout == nil {
		// No layout, just advance vertically
		ctx.cursor.Y += size.Y + ctx.style.ItemSpacing
		return
	}

	// Track content bounds
	if layout.Type == LayoutVertical {
		ctx.cursor.Y += size.Y
		layout.MaxWidth = maxf(layout.MaxWidth, size.X)
		layout.MaxHeight = ctx.cursor.Y - layout.StartY
	} else {
		ctx.cursor.X += size.X
		layout.MaxWidth = ctx.cursor.X - layout.StartX
		layout.MaxHeight = maxf(layout.MaxHeight, size.Y)
	}

	layout.ItemCount++
}
