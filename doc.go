/*
Package pointviz is a 3D point cloud viewer with data overlays and an
immediate-mode control UI, designed as idiomatic Go with a dedicated
Context type.

# Overview

A Viewer owns a registry of named point clouds, an orbit camera and the
UI shell. Per-point scalar fields attach to clouds as quantities and
color the points through a colormap; the UI is rebuilt every frame, so
widgets return interaction results directly instead of firing callbacks.

Everything is frame-driven and single-threaded: mutate clouds and
quantities between frames from the render thread, and draw each frame
with DrawScene followed by a Begin/End UI pass. Mutations flag a redraw
(RedrawRequested) instead of drawing eagerly, so on-demand renderers can
skip idle frames.

# Quick Start

	// Setup
	renderer, _ := opengl.NewRenderer(1024, 720)
	engine := opengl.NewSceneEngine(1024, 720)
	viewer := pointviz.New(renderer, engine, pointviz.WithStyle(pointviz.SlateStyle()))

	pc := viewer.RegisterPointCloud("sample", positions)
	q, err := pc.AddScalarQuantity("height", heights, pointviz.DataStandard)
	if err != nil {
	    viewer.ReportError(err)
	}
	q.SetEnabled(true)

	// Frame loop
	for !window.ShouldClose() {
	    input := pollInput(window)

	    viewer.HandleUIInput(input)
	    viewer.HandleSceneInput(input, width, height)

	    viewer.DrawScene(width / height)

	    ctx := viewer.Begin(input, pointviz.Vec2{X: width, Y: height}, deltaTime)
	    viewer.DrawUI()
	    _ = viewer.End()

	    window.SwapBuffers()
	}

# Scene Model

Point clouds are registered by name and draw either a flat base color
or, when one is enabled, the overlay of their dominant quantity. At most
one quantity per cloud is enabled at a time; enabling one disables the
others.

	pc := viewer.RegisterPointCloud("scan", positions)
	pc.SetPointRadius(0.008)
	pc.SetBaseColor(pointviz.RGBA(120, 160, 255, 255))
	pc.UpdatePositions(moved) // values stay attached by index

Scalar quantities map a per-point field onto a colormap. The DataKind
chooses how the color range resets:

	DataStandard   spans the data's own robust range
	DataSymmetric  zero-centered, for signed fields
	DataMagnitude  zero up to the robust high, for non-negative fields

The data range is estimated once at construction with a tiny quantile
trimmed off each end, so stray outliers in large samples do not stretch
the colors. The map range (what the colormap actually spans) moves
freely under SetMapRange, is never clamped or reordered, and rides a
shader uniform, so changing it never rebuilds GPU buffers.
ResetMapRange restores the kind's natural span.

	q.SetMapRange(-0.5, 2.0)
	lo, hi := q.DataRange()
	q.SetColorMap("ColdHot") // stored as given; an unknown name fails the next program build
	q.ResetMapRange()

Draw programs build lazily on first draw and rebuild only when a baked
input changes (positions, colormap texture). Camera matrices, point
radius, map range and flat color are uniforms.

A length mismatch between values and points is reported as a
*ValidationError; the quantity still attaches with the given values and
stays undrawn until the counts agree:

	if _, err := pc.AddScalarQuantity("bad", short, pointviz.DataStandard); err != nil {
	    viewer.ReportError(err) // toasts a warning, field kept but not drawn
	}

# Scene Controls

HandleSceneInput implements the default mouse bindings; they are skipped
whenever the UI wants the mouse (WantCaptureMouse).

	Left drag          Orbit around the target
	Right drag         Pan the target
	Shift+Left drag    Pan (one-button mice)
	Mouse wheel        Zoom
	Left click         Pick the point under the cursor; empty space clears

Picking selects the closest point whose projected sprite covers the
click, and the built-in selection panel shows the picked point's
position plus one readout row per quantity (%g formatted). Programmatic
picking goes through Viewer.PickAt.

The built-in UI registers a controls panel on Tab and camera reset on R
through the action registry; apps add their own panels and hotkeys via
Panels() and Actions().

# Widget Reference

## Text

	ctx.Text(text string)
	ctx.TextColored(text string, color uint32)
	ctx.TextDisabled(text string)
	ctx.TextWrapped(text string, maxWidth float32)
	    Word-wrapped text; maxWidth=0 uses the current layout width.
	ctx.LabelText(label, value string)
	    Label and value side by side.

## Buttons and Toggles

	ctx.Button(label string, opts ...Option) bool
	    Returns true when clicked. Options: WithID, WithDisabled, WithWidth.
	ctx.SmallButton(label string, opts ...Option) bool
	ctx.Checkbox(label string, value *bool, opts ...Option) bool
	ctx.RadioButton(label string, active bool, opts ...Option) bool
	ctx.RadioGroup(label string, selectedIndex *int, items []string, opts ...Option) bool
	    One radio button per item, stacked vertically.
	ctx.RadioGroupHorizontal(label string, selectedIndex *int, items []string, opts ...Option) bool
	ctx.Selectable(label string, selected bool, opts ...Option) bool

## Value Widgets

	ctx.SliderFloat(label string, value *float32, min, max float32, opts ...Option) bool
	    Options: WithID, WithWidth, WithFormat, WithStep.
	ctx.SliderInt(label string, value *int, min, max int, opts ...Option) bool
	ctx.RangeSliderFloat(label string, lo, hi *float64, boundLo, boundHi float64, opts ...Option) bool
	    Dual-handle slider editing a (lo, hi) pair. Dragging a handle or
	    its value box sweeps the bound and pushes the other to keep
	    lo <= hi; Ctrl+click a value box to type an exact value (Enter
	    commits verbatim, Escape cancels). Options: WithID, WithWidth,
	    WithFormat, WithDragSpeed.
	ctx.ComboBox(label string, selectedIndex *int, items []string, opts ...Option) bool
	    Dropdown selection. With WithColorPreviews each item carries a
	    gradient strip baked from a ColorTable, which is how the quantity
	    UI renders its colormap picker. Options: WithID, WithWidth,
	    WithMaxDropdownHeight, WithColorPreviews.
	ctx.Histogram(id string, hist *Histogram, opts ...Option)
	    Bar summary of a scalar field, each bar shaded through the owning
	    quantity's colormap over its current map range; out-of-range bars
	    draw gray. Options: WithWidth, WithHeight.

## Popups

	ctx.OpenPopup(id string)
	    Opens the named popup anchored at the mouse position.
	ctx.IsPopupOpen(id string) bool
	ctx.PopupMenu(id string, items []string, opts ...Option) int
	    Draws the popup while open; returns the clicked item index or -1.
	    Closes on item click, click outside, or Escape.

## Layout

	ctx.Panel(title string, opts ...LayoutOption) func(func())
	    Container with background and optional title.
	ctx.CenteredPanel(id string, opts ...LayoutOption) func(func())
	    Panel centered on screen using cached size from the previous frame.
	ctx.VStack(opts ...LayoutOption) func(func())
	ctx.HStack(opts ...LayoutOption) func(func())
	ctx.Row(contents func())
	ctx.ListBox(id string, height float32, opts ...LayoutOption) func(func())
	    Scrollable list area with smooth scrolling.
	ctx.Section(label string, opts ...Option) func(func())
	    Collapsible indented section; also available as
	    BeginSection/EndSection. Options: DefaultOpen, Open.
	ctx.CollapsingHeader(label string, opts ...Option) bool
	ctx.Separator()
	ctx.Spacing(pixels float32)
	ctx.Indent(pixels float32) / ctx.Unindent(pixels float32)
	ctx.SameLine()
	ctx.Tooltip(text string)

## Hints and Toasts

	ctx.HintFooter(hints ...HintAction)
	    Key-hint bar at the bottom of a panel, e.g. Hint(HintKeyEnter, "apply").
	ctx.HintHeader / ctx.HintEmpty / ctx.HintStatus
	ctx.HintFooterNav / ctx.HintFooterConfirm / ctx.HintFooterClose
	ctx.DrawToasts(ts *ToastState)
	    Drawn by the viewer each frame; apps push through
	    viewer.Toasts().ToastInfo and friends.

# Widget Options

	WithID(id string)              Explicit ID (use in loops)
	WithDisabled(disabled bool)    Disable widget interaction
	WithWidth(width float32)       Set widget width
	WithHeight(height float32)     Set widget height
	WithFormat(format string)      Printf-style format (e.g., "%.2f")
	WithStep(step float32)         Value increment step
	WithRange(min, max float32)    Value range constraints
	WithDragSpeed(speed float32)   Drag sensitivity
	WithPrefix(prefix string)      Text prefix (e.g., "X:")
	WithSuffix(suffix string)      Text suffix (e.g., "px")
	WithMaxDropdownHeight(h)       Limit dropdown height
	WithColorPreviews(tables)      Gradient strips for ComboBox items
	WithColumns(n int)             Multi-column layout
	DefaultOpen()                  Start sections expanded
	Open(ptr *bool)                External open state for sections

# Layout Options

Options for Panel, VStack, HStack and ListBox:

	Gap(pixels float32)            Space between all children
	GapX(pixels float32)           Horizontal spacing override
	GapY(pixels float32)           Vertical spacing override
	Padding(pixels float32)        Inner padding on all sides
	PaddingXY(x, y float32)        Separate X/Y padding
	Width(w float32)               Fixed width
	Height(h float32)              Fixed height
	Align(alignment Alignment)     Cross-axis alignment
	Justify(just Justification)    Main-axis alignment

Alignment values: AlignStart, AlignCenter, AlignEnd, AlignStretch
Justification values: JustifyStart, JustifyCenter, JustifyEnd, JustifyBetween

# Spacing Constants

Use these instead of magic numbers:

	SpaceNone  = 0   // No spacing
	SpaceXS    = 2   // Extra small
	SpaceSM    = 4   // Small (default item spacing)
	SpaceMD    = 8   // Medium (default padding)
	SpaceLG    = 12  // Large
	SpaceXL    = 16  // Extra large
	Space2XL   = 24  // 2x extra large

# State Types

Widget state types for GetState/SetState:

	ScrollState           Scroll position for ListBox
	CollapsingHeaderState Collapsed state for CollapsingHeader
	SliderState           Drag state for Slider
	ComboBoxState         Open/scroll state for ComboBox
	PopupState            Anchor and open state for popups
	RangeSliderState      Drag/edit state for RangeSliderFloat
	ResizeState           Edge-resize state for panels

State persists between frames in the viewer's StateStore; unlike hidden
per-widget state it is explicit and inspectable, and apps can substitute
their own store with WithStateStore.

# Panels, Hotkeys, Dragging

PanelRegistry manages named app panels with open/close hotkeys,
priorities and blocked-by relations; ActionRegistry runs global hotkeys
with the same blocking rules. DraggablePanel adds title-bar dragging,
edge resizing and snap guides (SnapManager) to any panel. The built-in
controls panel and selection panel are registered the same way apps
register theirs.

# Rendering Backends

The Renderer interface draws UI DrawLists; the Engine interface builds
point draw programs. backend/opengl provides both for OpenGL 4.1 core on
GLFW. Custom backends implement the two interfaces; tests substitute
counting fakes.

# Performance Notes

  - sync.Pool for DrawList buffer reuse
  - Batched rendering by texture
  - Pre-allocated glyph buffer for text
  - Per-frame text measurement cache
  - Lazy draw program builds; uniform-only updates for camera, radius
    and map range
  - Colormaps baked once into 256-sample tables
*/
package pointviz
