package pointviz

import "strings"

// Text draws text at the current cursor position.
func (ctx *Context) Text(text string) {
	pos := ctx.ItemPos()
	ctx.addText(pos.X, pos.Y, text, ctx.style.TextColor)
	ctx.advanceCursor(ctx.MeasureText(text))
}

// TextColored draws text with a specific color.
func (ctx *Context) TextColored(text string, color uint32) {
	pos := ctx.ItemPos()
	ctx.addText(pos.X, pos.Y, text, color)
	ctx.advanceCursor(ctx.MeasureText(text))
}

// TextDisabled draws text with the disabled color.
func (ctx *Context) TextDisabled(text string) {
	pos := ctx.ItemPos()
	ctx.addText(pos.X, pos.Y, text, ctx.style.TextDisabledColor)
	ctx.advanceCursor(ctx.MeasureText(text))
}

// TextWrapped draws text with automatic word wrapping.
// maxWidth specifies the maximum line width (0 = use current layout width).
func (ctx *Context) TextWrapped(text string, maxWidth float32) {
	if maxWidth <= 0 {
		maxWidth = ctx.currentLayoutWidth()
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return
	}

	pos := ctx.ItemPos()
	lineH := ctx.lineHeight()

	line := ""
	y := pos.Y
	lineCount := 0

	for _, word := range words {
		testLine := line
		if testLine != "" {
			testLine += " "
		}
		testLine += word

		// Use proper text measurement (works with proportional fonts)
		width := ctx.MeasureText(testLine).X
		if width > maxWidth && line != "" {
			// Draw current line and start new one
			ctx.addText(pos.X, y, line, ctx.style.TextColor)
			y += lineH
			lineCount++
			line = word
		} else {
			line = testLine
		}
	}

	// Draw remaining text
	if line != "" {
		ctx.addText(pos.X, y, line, ctx.style.TextColor)
		lineCount++
	}

	ctx.advanceCursor(Vec2{maxWidth, float32(lineCount) * lineH})
}

// LabelText draws a label and value side by side.
func (ctx *Context) LabelText(label, value string) {
	ctx.HStack()(func() {
		ctx.Text(label)
		ctx.Text(value)
	})
}

// Button draws a button and returns true if clicked.
func (ctx *Context) Button(label string, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)

	// Generate ID
	id := ctx.GetID(label)
	if optID := GetOpt(o, OptID); optID != "" {
		id = ctx.GetID(optID)
	}

	// Calculate size
	textSize := ctx.MeasureText(label)
	size := Vec2{
		X: textSize.X + ctx.style.ButtonPadding*2,
		Y: textSize.Y + ctx.style.ButtonPadding*2,
	}

	// Apply custom dimensions
	if optWidth := GetOpt(o, OptWidth); optWidth > 0 {
		size.X = optWidth
	}
	if optHeight := GetOpt(o, OptHeight); optHeight > 0 {
		size.Y = optHeight
	}

	// Interaction rect
	rect := Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}

	// State-based coloring
	disabled := GetOpt(o, OptDisabled)
	bgColor := ctx.style.ButtonColor
	hovered := ctx.isHovered(id, rect) && !disabled
	pressed := ctx.isPressed(id, rect) && !disabled

	if hovered {
		bgColor = ctx.style.ButtonHoveredColor
	}
	if pressed {
		bgColor = ctx.style.ButtonActiveColor
	}
	if disabled {
		bgColor = ctx.style.ButtonDisabledColor
	}

	// Draw background
	ctx.DrawList.AddRect(pos.X, pos.Y, size.X, size.Y, bgColor)

	// Draw text (centered in button)
	textX := pos.X + (size.X-textSize.X)/2
	textY := pos.Y + (size.Y-textSize.Y)/2
	textColor := ctx.style.TextColor
	if disabled {
		textColor = ctx.style.TextDisabledColor
	}
	ctx.addText(textX, textY, label, textColor)

	// Check for click
	clicked := !disabled && ctx.isClicked(id, rect)
	ctx.advanceCursor(size)

	return clicked
}

// SmallButton draws a smaller button without extra padding.
func (ctx *Context) SmallButton(label string, opts ...Option) bool {
	// Temporarily reduce padding
	savedPadding := ctx.style.ButtonPadding
	ctx.style.ButtonPadding = 2
	result := ctx.Button(label, opts...)
	ctx.style.ButtonPadding = savedPadding
	return result
}

// Selectable draws a selectable list item.
// Returns true if clicked.
func (ctx *Context) Selectable(label string, selected bool, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)

	// Generate ID
	id := ctx.GetID(label)
	if optID := GetOpt(o, OptID); optID != "" {
		id = ctx.GetID(optID)
	}

	// Determine prefix first (needed for width calculation)
	prefix := "  "
	if selected {
		prefix = "> "
	}

	// Calculate size based on text width (auto-size to content)
	textSize := ctx.MeasureText(prefix + label)
	w := textSize.X + ctx.style.ItemSpacing*2
	h := ctx.lineHeight()

	// Interaction rect
	rect := Rect{X: pos.X, Y: pos.Y, W: w, H: h}

	// Determine appearance
	var bgColor uint32
	textColor := ctx.style.TextColor

	disabled := GetOpt(o, OptDisabled)
	hovered := ctx.isHovered(id, rect) && !disabled

	if selected {
		bgColor = ctx.style.SelectedBgColor
		textColor = ctx.style.SelectedTextColor
	} else if hovered {
		bgColor = ctx.style.HoveredBgColor
	}
	if disabled {
		textColor = ctx.style.TextDisabledColor
	}

	// Draw background
	if bgColor != 0 {
		ctx.DrawList.AddRect(pos.X, pos.Y, w, h, bgColor)
	}

	// Draw selection cursor bar (left edge indicator) for selected items
	if selected {
		cursorWidth := float32(4)
		ctx.DrawList.AddRect(pos.X, pos.Y, cursorWidth, h, ctx.style.TextHighlightColor)
	}

	// Draw text
	ctx.addText(pos.X, pos.Y, prefix+label, textColor)

	// Check for click
	clicked := !disabled && ctx.isClicked(id, rect)
	ctx.advanceCursor(Vec2{w, h})

	return clicked
}

// Checkbox draws a checkbox with label.
// Returns true if the value changed.
func (ctx *Context) Checkbox(label string, value *bool, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)

	id := ctx.GetID(label)
	if optID := GetOpt(o, OptID); optID != "" {
		id = ctx.GetID(optID)
	}

	// Size of checkbox box
	boxSize := ctx.lineHeight()
	totalWidth := boxSize + ctx.style.ItemSpacing + ctx.MeasureText(label).X

	// Interaction rect
	rect := Rect{X: pos.X, Y: pos.Y, W: totalWidth, H: boxSize}

	disabled := GetOpt(o, OptDisabled)
	hovered := ctx.isHovered(id, rect) && !disabled

	// Draw checkbox box
	boxColor := ctx.style.InputBgColor
	if hovered {
		boxColor = ctx.style.InputFocusedBgColor
	}
	ctx.DrawList.AddRect(pos.X, pos.Y, boxSize, boxSize, boxColor)
	ctx.DrawList.AddRectOutline(pos.X, pos.Y, boxSize, boxSize,
		ctx.style.InputBorderColor, 1)

	// Draw checkmark if checked
	if *value {
		// Simple X checkmark
		padding := boxSize * 0.2
		x1, y1 := pos.X+padding, pos.Y+padding
		x2, y2 := pos.X+boxSize-padding, pos.Y+boxSize-padding
		ctx.DrawList.AddLine(x1, y1, x2, y2, ctx.style.TextColor, 2)
		ctx.DrawList.AddLine(x1, y2, x2, y1, ctx.style.TextColor, 2)
	}

	// Draw label
	textX := pos.X + boxSize + ctx.style.ItemSpacing
	textColor := ctx.style.TextColor
	if disabled {
		textColor = ctx.style.TextDisabledColor
	}
	ctx.addText(textX, pos.Y, label, textColor)

	// Handle click
	changed := false
	if !disabled && ctx.isClicked(id, rect) {
		*value = !*value
		changed = true
	}

	ctx.advanceCursor(Vec2{totalWidth, boxSize})
	return changed
}

// RadioButton draws a radio button.
// Returns true if this option was selected.
func (ctx *Context) RadioButton(label string, active bool, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)

	id := ctx.GetID(label)
	if optID := GetOpt(o, OptID); optID != "" {
		id = ctx.GetID(optID)
	}

	// Size of radio circle
	circleSize := ctx.lineHeight()
	totalWidth := circleSize + ctx.style.ItemSpacing + ctx.MeasureText(label).X

	// Interaction rect
	rect := Rect{X: pos.X, Y: pos.Y, W: totalWidth, H: circleSize}

	disabled := GetOpt(o, OptDisabled)
	hovered := ctx.isHovered(id, rect) && !disabled

	// Draw outer circle (as square for simplicity - could use actual circle)
	boxColor := ctx.style.InputBgColor
	if hovered {
		boxColor = ctx.style.InputFocusedBgColor
	}
	ctx.DrawList.AddRect(pos.X, pos.Y, circleSize, circleSize, boxColor)
	ctx.DrawList.AddRectOutline(pos.X, pos.Y, circleSize, circleSize,
		ctx.style.InputBorderColor, 1)

	// Draw inner filled circle if active
	if active {
		padding := circleSize * 0.25
		ctx.DrawList.AddRect(
			pos.X+padding, pos.Y+padding,
			circleSize-padding*2, circleSize-padding*2,
			ctx.style.SelectedBgColor)
	}

	// Draw label
	textX := pos.X + circleSize + ctx.style.ItemSpacing
	textColor := ctx.style.TextColor
	if disabled {
		textColor = ctx.style.TextDisabledColor
	}
	ctx.addText(textX, pos.Y, label, textColor)

	// Handle click
	clicked := !disabled && ctx.isClicked(id, rect)

	ctx.advanceCursor(Vec2{totalWidth, circleSize})
	return clicked
}

// Tooltip shows a tooltip at the mouse position.
// Call right after the widget it belongs to, gated on that widget's hover.
func (ctx *Context) Tooltip(text string) {
	if ctx.Input == nil {
		return
	}

	mx, my := ctx.Input.MouseX, ctx.Input.MouseY

	// Draw tooltip background
	padding := float32(4)
	textSize := ctx.MeasureText(text)
	w := textSize.X + padding*2
	h := textSize.Y + padding*2

	// Position tooltip near mouse, but keep on screen
	x := mx + 10
	y := my + 10
	if x+w > ctx.DisplaySize.X {
		x = ctx.DisplaySize.X - w
	}
	if y+h > ctx.DisplaySize.Y {
		y = ctx.DisplaySize.Y - h
	}

	dl := ctx.ForegroundDrawList
	dl.AddRect(x, y, w, h, ctx.style.PanelColor)
	dl.AddRectOutline(x, y, w, h, ctx.style.PanelBorderColor, 1)
	ctx.addTextTo(dl, x+padding, y+padding, text, ctx.style.TextColor)
}

// CollapsingHeader draws a collapsible header.
// Returns true if the section is expanded.
func (ctx *Context) CollapsingHeader(label string, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)

	id := ctx.GetID(label)
	if optID := GetOpt(o, OptID); optID != "" {
		id = ctx.GetID(optID)
	}

	// Get stored state
	defaultOpen := true
	if HasOpt(o, OptDefaultOpen) {
		defaultOpen = GetOpt(o, OptDefaultOpen)
	}
	state := GetState(ctx, id, CollapsingHeaderState{Open: defaultOpen})

	// Calculate size
	w := ctx.currentLayoutWidth()
	h := ctx.lineHeight()

	// Interaction rect
	rect := Rect{X: pos.X, Y: pos.Y, W: w, H: h}

	hovered := ctx.isHovered(id, rect)

	// Draw background
	bgColor := ctx.style.ButtonColor
	if hovered {
		bgColor = ctx.style.ButtonHoveredColor
	}
	ctx.DrawList.AddRect(pos.X, pos.Y, w, h, bgColor)

	// Draw arrow indicator
	arrow := "►"
	if state.Open {
		arrow = "▼"
	}
	ctx.addText(pos.X+2, pos.Y, arrow, ctx.style.TextColor)

	// Draw label
	ctx.addText(pos.X+ctx.MeasureText(arrow).X+4, pos.Y, label, ctx.style.TextColor)

	// Handle click
	if ctx.isClicked(id, rect) {
		state.Open = !state.Open
		SetState(ctx, id, state)
	}

	ctx.advanceCursor(Vec2{w, h})

	return state.Open
}
