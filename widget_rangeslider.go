package pointviz

import (
	"fmt"
	"strconv"
)

// RangeSliderFloat draws a dual-handle slider editing a (lo, hi) value pair
// inside [boundLo, boundHi]. Returns true if either value was changed.
//
// The two value boxes act as drag widgets: dragging one sweeps its bound at
// a rate of (boundHi-boundLo)/100 per pixel (override with WithDragSpeed),
// so a drag across ~100 pixels covers the whole span. Dragging keeps
// lo <= hi by pushing the other bound along. Ctrl+click a value box to type
// an exact value: Enter commits it verbatim (no clamping), Escape cancels.
//
// The track between the boxes is a read-only picture of where the pair sits
// within the bounds; a pair outside the bounds draws pinned to the edges.
//
// Usage:
//
//	if ctx.RangeSliderFloat("range", &lo, &hi, dataLo, dataHi) {
//	    quantity.SetMapRange(lo, hi)
//	}
func (ctx *Context) RangeSliderFloat(label string, lo, hi *float64, boundLo, boundHi float64, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)

	id := ctx.GetID(label)
	if optID := GetOpt(o, OptID); optID != "" {
		id = ctx.GetID(optID)
	}

	state := GetState(ctx, id, RangeSliderState{DragHandle: -1, EditHandle: -1})

	format := GetOpt(o, OptFormat)
	if format == "" {
		format = "%.3e"
	}
	speed := float64(GetOpt(o, OptDragSpeed))
	if speed == 0 {
		speed = (boundHi - boundLo) / 100
	}

	trackWidth := float32(140)
	if optWidth := GetOpt(o, OptWidth); optWidth > 0 {
		trackWidth = optWidth
	}

	h := ctx.lineHeight() + ctx.style.InputPadding*2
	boxPad := ctx.style.InputPadding
	changed := false

	// Value boxes left and right of the track
	minText := "Min: " + fmt.Sprintf(format, *lo)
	maxText := "Max: " + fmt.Sprintf(format, *hi)
	if state.EditHandle == 0 {
		minText = "Min: " + state.EditText
	}
	if state.EditHandle == 1 {
		maxText = "Max: " + state.EditText
	}

	minW := ctx.MeasureText(minText).X + boxPad*2
	maxW := ctx.MeasureText(maxText).X + boxPad*2

	minRect := Rect{X: pos.X, Y: pos.Y, W: minW, H: h}
	trackX := pos.X + minW + ctx.style.ItemSpacing
	maxRect := Rect{X: trackX + trackWidth + ctx.style.ItemSpacing, Y: pos.Y, W: maxW, H: h}

	// Handle grab rects on the track, positioned by display ratio
	grabW := float32(8)
	tLo := clampf(float32(normTo(boundLo, boundHi, *lo)), 0, 1)
	tHi := clampf(float32(normTo(boundLo, boundHi, *hi)), 0, 1)
	grabLoX := trackX + tLo*(trackWidth-grabW)
	grabHiX := trackX + tHi*(trackWidth-grabW)
	grabLoRect := Rect{X: grabLoX, Y: pos.Y, W: grabW, H: h}
	grabHiRect := Rect{X: grabHiX, Y: pos.Y, W: grabW, H: h}

	input := ctx.Input
	if input != nil {
		mouse := Vec2{X: input.MouseX, Y: input.MouseY}

		// Start a drag or an edit on click
		if input.MouseClicked(MouseButtonLeft) && state.DragHandle < 0 {
			overMin := minRect.Contains(mouse) || grabLoRect.Contains(mouse)
			overMax := maxRect.Contains(mouse) || grabHiRect.Contains(mouse)
			// Overlapping grabs: the upper handle wins on the right half
			if overMin && overMax && grabLoRect.Contains(mouse) && grabHiRect.Contains(mouse) {
				overMin = mouse.X < grabHiX+grabW/2
				overMax = !overMin
			}
			switch {
			case input.ModCtrl && (minRect.Contains(mouse) || maxRect.Contains(mouse)):
				if minRect.Contains(mouse) {
					state.EditHandle = 0
					state.EditText = strconv.FormatFloat(*lo, 'g', -1, 64)
				} else {
					state.EditHandle = 1
					state.EditText = strconv.FormatFloat(*hi, 'g', -1, 64)
				}
			case overMin:
				state.DragHandle = 0
				state.DragStartX = input.MouseX
				state.DragStartValue = *lo
				state.EditHandle = -1
			case overMax:
				state.DragHandle = 1
				state.DragStartX = input.MouseX
				state.DragStartValue = *hi
				state.EditHandle = -1
			default:
				// Click elsewhere cancels a pending edit
				state.EditHandle = -1
			}
		}

		// Ongoing drag: speed-based, pushing the other bound to keep order
		if state.DragHandle >= 0 {
			if input.MouseDown(MouseButtonLeft) {
				delta := float64(input.MouseX-state.DragStartX) * speed
				v := clamp64(state.DragStartValue+delta, boundLo, boundHi)
				if state.DragHandle == 0 {
					if v != *lo {
						*lo = v
						changed = true
					}
					if *hi < v {
						*hi = v
						changed = true
					}
				} else {
					if v != *hi {
						*hi = v
						changed = true
					}
					if *lo > v {
						*lo = v
						changed = true
					}
				}
			} else {
				state.DragHandle = -1
			}
		}

		// Edit mode: collect typed characters, Enter commits, Escape cancels
		if state.EditHandle >= 0 {
			ctx.WantCaptureKeyboard = true
			for _, ch := range input.InputChars {
				if isFloatChar(ch) {
					state.EditText += string(ch)
				}
			}
			if input.KeyRepeated(KeyBackspace) && len(state.EditText) > 0 {
				state.EditText = state.EditText[:len(state.EditText)-1]
			}
			if input.KeyPressed(KeyEnter) {
				if v, err := strconv.ParseFloat(state.EditText, 64); err == nil {
					if state.EditHandle == 0 && v != *lo {
						*lo = v
						changed = true
					}
					if state.EditHandle == 1 && v != *hi {
						*hi = v
						changed = true
					}
				}
				state.EditHandle = -1
			}
			if input.KeyPressed(KeyEscape) {
				state.EditHandle = -1
			}
		}
	}

	// Recompute display ratios after input so the handles track the drag
	tLo = clampf(float32(normTo(boundLo, boundHi, *lo)), 0, 1)
	tHi = clampf(float32(normTo(boundLo, boundHi, *hi)), 0, 1)
	grabLoX = trackX + tLo*(trackWidth-grabW)
	grabHiX = trackX + tHi*(trackWidth-grabW)

	// Min value box
	minText = "Min: " + fmt.Sprintf(format, *lo)
	if state.EditHandle == 0 {
		minText = "Min: " + state.EditText
	}
	ctx.drawRangeBox(minRect, minText, state.EditHandle == 0, state.DragHandle == 0)

	// Track with fill between the handles
	trackH := ctx.lineHeight() * 0.5
	trackY := pos.Y + (h-trackH)/2
	ctx.DrawList.AddRect(trackX, trackY, trackWidth, trackH, ctx.style.SliderTrackColor)
	fillX := grabLoX + grabW/2
	fillW := grabHiX - grabLoX
	if fillW > 0 {
		ctx.DrawList.AddRect(fillX, trackY, fillW, trackH, ctx.style.SliderFillColor)
	}

	// Grab handles
	for handle, gx := range [2]float32{grabLoX, grabHiX} {
		grabColor := ctx.style.SliderGrabColor
		rect := Rect{X: gx, Y: pos.Y, W: grabW, H: h}
		if state.DragHandle == handle {
			grabColor = ctx.style.SliderGrabActive
		} else if input != nil && rect.Contains(Vec2{X: input.MouseX, Y: input.MouseY}) {
			grabColor = ctx.style.SliderGrabHovered
		}
		ctx.DrawList.AddRect(gx, pos.Y, grabW, h, grabColor)
		ctx.DrawList.AddRectOutline(gx, pos.Y, grabW, h, ctx.style.InputBorderColor, 1)
	}

	// Max value box
	maxText = "Max: " + fmt.Sprintf(format, *hi)
	if state.EditHandle == 1 {
		maxText = "Max: " + state.EditText
	}
	ctx.drawRangeBox(maxRect, maxText, state.EditHandle == 1, state.DragHandle == 1)

	SetState(ctx, id, state)

	totalWidth := maxRect.X + maxRect.W - pos.X
	ctx.advanceCursor(Vec2{totalWidth, h})

	return changed
}

// drawRangeBox draws one value box of a range slider.
func (ctx *Context) drawRangeBox(rect Rect, text string, editing, dragging bool) {
	bgColor := ctx.style.InputBgColor
	if editing || dragging {
		bgColor = ctx.style.InputFocusedBgColor
	}
	ctx.DrawList.AddRect(rect.X, rect.Y, rect.W, rect.H, bgColor)
	borderColor := ctx.style.InputBorderColor
	if editing {
		borderColor = ctx.style.FocusColor
	}
	ctx.DrawList.AddRectOutline(rect.X, rect.Y, rect.W, rect.H, borderColor, 1)
	pad := ctx.style.InputPadding
	ctx.addText(rect.X+pad, rect.Y+(rect.H-ctx.lineHeight())/2, text, ctx.style.TextColor)
	if editing {
		// Text cursor after the last character
		cursorX := rect.X + pad + ctx.MeasureText(text).X + 1
		ctx.DrawList.AddLine(cursorX, rect.Y+2, cursorX, rect.Y+rect.H-2, ctx.style.TextColor, 1)
	}
}

// isFloatChar reports whether ch can appear in a typed float literal.
func isFloatChar(ch rune) bool {
	switch {
	case ch >= '0' && ch <= '9':
		return true
	case ch == '.' || ch == '-' || ch == '+' || ch == 'e' || ch == 'E':
		return true
	}
	return false
}

// clamp64 clamps v to the [lo, hi] interval.
func clamp64(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
