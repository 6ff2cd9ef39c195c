package pointviz

import "hash/fnv"

// popupID hashes a popup name directly. Popups are addressed globally by
// name rather than by call site, so OpenPopup and PopupMenu agree on the
// key from different places in the frame. Callers keep names unique by
// prefixing the owning quantity or cloud name.
func popupID(name string) ID {
	h := fnv.New64a()
	h.Write([]byte(name))
	return ID(h.Sum64())
}

// OpenPopup opens the popup named id, anchored at the current mouse
// position. Draw the popup body with PopupMenu later in the frame. Opening
// is typically wired to a button:
//
//	if ctx.SmallButton("Options") {
//	    ctx.OpenPopup("quantity_options")
//	}
//	switch ctx.PopupMenu("quantity_options", []string{"Reset colormap range"}) {
//	case 0:
//	    q.ResetMapRange()
//	}
func (ctx *Context) OpenPopup(id string) {
	pid := popupID(id)
	state := GetState(ctx, pid, PopupState{})
	state.Open = true
	state.OpenedFrame = ctx.FrameCount
	if ctx.Input != nil {
		state.Pos = Vec2{X: ctx.Input.MouseX, Y: ctx.Input.MouseY}
	} else {
		state.Pos = ctx.GetCursorPos()
	}
	SetState(ctx, pid, state)
	ctx.SetActivePopup(pid)
}

// IsPopupOpen returns true if the popup named id is open.
func (ctx *Context) IsPopupOpen(id string) bool {
	return GetState(ctx, popupID(id), PopupState{}).Open
}

// PopupMenu draws a small anchored menu while its popup is open.
// Returns the index of the clicked item, or -1. The menu closes after an
// item click, a click outside it, or Escape. It renders on the foreground
// draw list so it appears above the panel that spawned it.
func (ctx *Context) PopupMenu(id string, items []string, opts ...Option) int {
	pid := popupID(id)
	state := GetState(ctx, pid, PopupState{})
	if !state.Open {
		if ctx.ActivePopupID() == pid {
			ctx.SetActivePopup(0)
		}
		return -1
	}

	o := applyOptions(opts)

	ctx.SetActivePopup(pid)
	ctx.WantCaptureKeyboard = true

	fgDrawList := ctx.ForegroundDrawList
	if fgDrawList == nil {
		fgDrawList = ctx.DrawList
	}

	// Size to the widest item
	width := GetOpt(o, OptWidth)
	if width == 0 {
		for _, item := range items {
			w := ctx.MeasureText(item).X + ctx.style.ButtonPadding*2
			if w > width {
				width = w
			}
		}
	}
	itemHeight := ctx.lineHeight() + ctx.style.ItemSpacing*2
	height := float32(len(items))*itemHeight + 4

	// Keep the menu on screen
	x, y := state.Pos.X, state.Pos.Y
	if ctx.DisplaySize.X > 0 && x+width > ctx.DisplaySize.X {
		x = ctx.DisplaySize.X - width
	}
	if ctx.DisplaySize.Y > 0 && y+height > ctx.DisplaySize.Y {
		y = ctx.DisplaySize.Y - height
	}

	fgDrawList.AddRect(x, y, width, height, ctx.style.DropdownBgColor)
	fgDrawList.AddRectOutline(x, y, width, height, ctx.style.InputBorderColor, 1)

	clicked := -1
	menuRect := Rect{X: x, Y: y, W: width, H: height}

	itemY := y + 2
	for i, item := range items {
		itemRect := Rect{X: x + 2, Y: itemY, W: width - 4, H: itemHeight}
		hovered := ctx.isHovered(pid, itemRect)
		if hovered {
			fgDrawList.AddRect(itemRect.X, itemRect.Y, itemRect.W, itemRect.H, ctx.style.HoveredBgColor)
		}
		ctx.addTextTo(fgDrawList, itemRect.X+ctx.style.ButtonPadding, itemY+ctx.style.ItemSpacing, item, ctx.style.TextColor)

		if hovered && ctx.Input != nil && ctx.Input.MouseClicked(MouseButtonLeft) {
			clicked = i
			state.Open = false
			ctx.SetActivePopup(0)
		}
		itemY += itemHeight
	}

	if ctx.Input != nil {
		// Close on click outside, except on the frame the popup opened
		// (that click is the one on the button that opened it)
		justOpened := state.OpenedFrame == ctx.FrameCount
		if !justOpened && ctx.Input.MouseClicked(MouseButtonLeft) && !menuRect.Contains(Vec2{X: ctx.Input.MouseX, Y: ctx.Input.MouseY}) {
			state.Open = false
			ctx.SetActivePopup(0)
		}
		if ctx.Input.KeyPressed(KeyEscape) {
			state.Open = false
			ctx.SetActivePopup(0)
		}
	}

	SetState(ctx, pid, state)
	return clicked
}
