package pointviz

import "fmt"

// HistogramState holds the interactive state of a histogram widget.
type HistogramState struct {
	HoveredBin int // Index of hovered bin (-1 = none)
}

// Histogram draws the distribution of a scalar field as contiguous bars
// shaded through the owning quantity's colormap. Bars whose value falls
// outside the colormap range are drawn gray. Hovering a bar shows the
// data value at its center.
//
// Usage:
//
//	ctx.Histogram("distance_hist", quantity.Hist(), pointviz.WithHeight(80))
func (ctx *Context) Histogram(id string, hist *Histogram, opts ...Option) {
	pos := ctx.ItemPos()
	o := applyOptions(opts)

	histID := ctx.GetID(id)

	// Get or create state
	state := GetState(ctx, histID, HistogramState{HoveredBin: -1})

	// Calculate dimensions
	w := ctx.currentLayoutWidth()
	if width := GetOpt(o, OptWidth); width > 0 {
		w = width
	}
	h := float32(80)
	if height := GetOpt(o, OptHeight); height > 0 {
		h = height
	}

	// Draw background
	ctx.DrawList.AddRect(pos.X, pos.Y, w, h, ctx.style.InputBgColor)

	if hist == nil || len(hist.heights) == 0 {
		// Empty state
		msg := "(no data)"
		msgSize := ctx.MeasureText(msg)
		ctx.addText(pos.X+(w-msgSize.X)/2, pos.Y+(h-msgSize.Y)/2, msg, ctx.style.TextDisabledColor)
		ctx.DrawList.AddRectOutline(pos.X, pos.Y, w, h, ctx.style.BorderColor, 1)
		ctx.advanceCursor(Vec2{w, h})
		return
	}

	bins := len(hist.heights)
	innerX := pos.X + 1
	innerY := pos.Y + 1
	innerW := w - 2
	innerH := h - 2

	// Track hovered bin
	state.HoveredBin = -1
	if ctx.Input != nil {
		mx, my := ctx.Input.MouseX, ctx.Input.MouseY
		plotRect := Rect{X: innerX, Y: innerY, W: innerW, H: innerH}
		if plotRect.Contains(Vec2{mx, my}) {
			bin := int((mx - innerX) / innerW * float32(bins))
			if bin >= 0 && bin < bins {
				state.HoveredBin = bin
			}
		}
	}

	// Draw contiguous bars, bottom-aligned
	for i, height := range hist.heights {
		x0 := innerX + float32(i)*innerW/float32(bins)
		x1 := innerX + float32(i+1)*innerW/float32(bins)

		barH := float32(height) * innerH
		if barH <= 0 {
			continue
		}
		barY := innerY + innerH - barH

		barColor, inRange := hist.barColor(i)
		if !inRange {
			barColor = ColorGray
		}

		// Brighten on hover
		if i == state.HoveredBin {
			r, g, b, a := UnpackRGBA(barColor)
			barColor = RGBA(uint8(mini(int(r)+30, 255)), uint8(mini(int(g)+30, 255)), uint8(mini(int(b)+30, 255)), a)
		}

		ctx.DrawList.AddRect(x0, barY, x1-x0, barH, barColor)
	}

	// Hover readout: data value at the bin center
	if state.HoveredBin >= 0 && ctx.Input != nil {
		ctx.Tooltip(fmt.Sprintf("%.4g", hist.binCenter(state.HoveredBin)))
	}

	// Draw border
	ctx.DrawList.AddRectOutline(pos.X, pos.Y, w, h, ctx.style.BorderColor, 1)

	// Save state
	SetState(ctx, histID, state)

	ctx.advanceCursor(Vec2{w, h})
}

// mini returns the minimum of two ints.
func mini(a, b int) int {
	if a < b {
		return a
	}
	return b
}
