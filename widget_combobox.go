package pointviz

// ComboBox draws a dropdown selection widget.
// Returns true if the selection changed.
//
// Usage:
//
//	items := []string{"Low", "Medium", "High"}
//	if ctx.ComboBox("Quality", &selectedIndex, items) {
//	    applyQuality(selectedIndex)
//	}
//
// With WithColorPreviews, each item (and the header) gets a gradient strip
// sampled from the matching color table, which is how colormap pickers are
// built.
func (ctx *Context) ComboBox(label string, selectedIndex *int, items []string, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)

	id := ctx.GetID(label)
	if optID := GetOpt(o, OptID); optID != "" {
		id = ctx.GetID(optID)
	}

	// Get state
	state := GetState(ctx, id, ComboBoxState{HoveredIndex: -1, KeyboardIndex: -1})
	previews := GetOpt(o, OptColorPreviews)

	// Calculate dimensions
	labelWidth := float32(0)
	if label != "" {
		labelWidth = ctx.MeasureText(label).X + ctx.style.ItemSpacing
	}

	// Calculate combo width based on longest item
	comboWidth := float32(150)
	if width := GetOpt(o, OptWidth); width > 0 {
		comboWidth = width
	} else {
		for _, item := range items {
			itemWidth := ctx.MeasureText(item).X + ctx.style.ButtonPadding*2 + 20 // +20 for arrow
			if itemWidth > comboWidth {
				comboWidth = itemWidth
			}
		}
		if len(previews) > 0 {
			comboWidth += comboStripWidth + ctx.style.ItemSpacing
		}
	}

	h := ctx.lineHeight() + ctx.style.ButtonPadding*2
	arrowSize := float32(8)

	// Draw label
	if label != "" {
		ctx.addText(pos.X, pos.Y+(h-ctx.lineHeight())/2, label, ctx.style.TextColor)
	}

	// Header box position
	headerX := pos.X + labelWidth
	headerY := pos.Y

	// Interaction rect for header
	headerRect := Rect{X: headerX, Y: headerY, W: comboWidth, H: h}

	hovered := ctx.isHovered(id, headerRect)
	changed := false

	// Draw header background
	bgColor := ctx.style.ButtonColor
	if hovered || state.Open {
		bgColor = ctx.style.ButtonHoveredColor
	}
	ctx.DrawList.AddRect(headerX, headerY, comboWidth, h, bgColor)
	ctx.DrawList.AddRectOutline(headerX, headerY, comboWidth, h, ctx.style.InputBorderColor, 1)

	// Draw selected item text
	selectedText := ""
	if *selectedIndex >= 0 && *selectedIndex < len(items) {
		selectedText = items[*selectedIndex]
	}
	textX := headerX + ctx.style.ButtonPadding
	textY := headerY + (h-ctx.lineHeight())/2
	ctx.addText(textX, textY, selectedText, ctx.style.TextColor)

	// Draw dropdown arrow
	arrowX := headerX + comboWidth - ctx.style.ButtonPadding - arrowSize
	arrowY := headerY + h/2
	if state.Open {
		// Up arrow when open
		ctx.DrawList.AddTriangle(
			arrowX+arrowSize/2, arrowY-arrowSize/4,
			arrowX, arrowY+arrowSize/4,
			arrowX+arrowSize, arrowY+arrowSize/4,
			ctx.style.ComboArrowColor,
		)
	} else {
		// Down arrow when closed
		ctx.DrawList.AddTriangle(
			arrowX+arrowSize/2, arrowY+arrowSize/4,
			arrowX, arrowY-arrowSize/4,
			arrowX+arrowSize, arrowY-arrowSize/4,
			ctx.style.ComboArrowColor,
		)
	}

	// Gradient preview for the current selection, between text and arrow
	if *selectedIndex >= 0 && *selectedIndex < len(previews) && previews[*selectedIndex] != nil {
		stripX := arrowX - comboStripWidth - ctx.style.ItemSpacing
		ctx.drawColorStrip(ctx.DrawList, previews[*selectedIndex], stripX, headerY+3, comboStripWidth, h-6)
	}

	// Track if dropdown was just opened this frame (to prevent Enter from immediately closing)
	justOpened := false

	// Handle header click
	if ctx.isClicked(id, headerRect) {
		state.Open = !state.Open
		state.HoveredIndex = -1
		if state.Open {
			justOpened = true
			state.KeyboardIndex = *selectedIndex // Start keyboard nav at current selection
			ctx.SetActivePopup(id)               // Mark popup as active
		} else {
			ctx.SetActivePopup(0) // Close popup
		}
	}

	// Draw dropdown when open (uses ForegroundDrawList to render on top of everything)
	if state.Open {
		// Mark popup as active every frame it's open (for HandleInput in next frame)
		ctx.SetActivePopup(id)
		// Capture keyboard while open
		ctx.WantCaptureKeyboard = true

		// Use foreground draw list for popups so they appear above other widgets
		fgDrawList := ctx.ForegroundDrawList
		if fgDrawList == nil {
			fgDrawList = ctx.DrawList // Fallback if no foreground list
		}

		dropdownY := headerY + h

		// Calculate dropdown height
		itemHeight := ctx.lineHeight() + ctx.style.ItemSpacing

		maxDropdownHeight := GetOpt(o, OptMaxDropdownHeight)
		if maxDropdownHeight == 0 {
			maxDropdownHeight = 200
		}

		contentHeight := float32(len(items)) * itemHeight
		dropdownHeight := minf(contentHeight, maxDropdownHeight)

		// Draw dropdown background (fully opaque for visibility)
		fgDrawList.AddRect(headerX, dropdownY, comboWidth, dropdownHeight, ctx.style.DropdownBgColor)
		fgDrawList.AddRectOutline(headerX, dropdownY, comboWidth, dropdownHeight, ctx.style.InputBorderColor, 1)

		// Push clip rect for scrollable area
		fgDrawList.PushClipRect(headerX, dropdownY, headerX+comboWidth, dropdownY+dropdownHeight)

		// Draw items with scroll offset
		itemY := dropdownY - state.ScrollY
		state.HoveredIndex = -1

		for i, item := range items {
			// Skip items outside visible area
			if itemY+itemHeight < dropdownY {
				itemY += itemHeight
				continue
			}
			if itemY > dropdownY+dropdownHeight {
				break
			}

			itemRect := Rect{X: headerX + 2, Y: itemY, W: comboWidth - 4, H: itemHeight}

			// Check if hovered
			if ctx.isHovered(id, itemRect) && itemRect.Y >= dropdownY && itemRect.Y+itemRect.H <= dropdownY+dropdownHeight {
				state.HoveredIndex = i
			}

			// Draw item background
			if i == *selectedIndex || state.KeyboardIndex == i {
				fgDrawList.AddRect(itemRect.X, itemRect.Y, itemRect.W, itemRect.H, ctx.style.SelectedBgColor)
			} else if state.HoveredIndex == i {
				fgDrawList.AddRect(itemRect.X, itemRect.Y, itemRect.W, itemRect.H, ctx.style.HoveredBgColor)
			}

			// Draw item text
			textColor := ctx.style.TextColor
			if i == *selectedIndex || state.KeyboardIndex == i {
				textColor = ctx.style.SelectedTextColor
			}
			ctx.addTextTo(fgDrawList, itemRect.X+ctx.style.ItemSpacing, itemY, item, textColor)

			// Gradient preview strip at the right edge of the row
			if i < len(previews) && previews[i] != nil {
				stripX := itemRect.X + itemRect.W - comboStripWidth - ctx.style.ItemSpacing
				ctx.drawColorStrip(fgDrawList, previews[i], stripX, itemY+2, comboStripWidth, itemHeight-4)
			}

			// Handle click on item
			if ctx.Input != nil && ctx.Input.MouseClicked(MouseButtonLeft) {
				if ctx.isHovered(id, itemRect) && itemRect.Y >= dropdownY && itemRect.Y+itemRect.H <= dropdownY+dropdownHeight {
					if i != *selectedIndex {
						*selectedIndex = i
						changed = true
					}
					state.Open = false
					ctx.SetActivePopup(0)
				}
			}

			itemY += itemHeight
		}

		fgDrawList.PopClipRect()

		// Handle scroll
		if ctx.Input != nil {
			dropdownRect := Rect{X: headerX, Y: headerY + h, W: comboWidth, H: dropdownHeight}
			if ctx.isHovered(id, dropdownRect) && ctx.Input.MouseWheelY != 0 {
				maxScroll := maxf(0, contentHeight-dropdownHeight)
				state.ScrollY = clampf(state.ScrollY-ctx.Input.MouseWheelY*20, 0, maxScroll)
			}
		}

		// Close on click outside
		if ctx.Input != nil && ctx.Input.MouseClicked(MouseButtonLeft) {
			dropdownRect := Rect{X: headerX, Y: headerY, W: comboWidth, H: h + dropdownHeight}
			if !ctx.isHovered(id, dropdownRect) {
				state.Open = false
				ctx.SetActivePopup(0)
			}
		}

		// Close on Escape
		if ctx.Input != nil && ctx.Input.KeyPressed(KeyEscape) {
			state.Open = false
			ctx.SetActivePopup(0)
		}

		// Keyboard navigation within dropdown
		if ctx.Input != nil {
			if state.KeyboardIndex < 0 {
				state.KeyboardIndex = *selectedIndex
			}

			// Up/Down to navigate items
			if ctx.Input.KeyRepeated(KeyUp) {
				if state.KeyboardIndex > 0 {
					state.KeyboardIndex--
				}
			}
			if ctx.Input.KeyRepeated(KeyDown) {
				if state.KeyboardIndex < len(items)-1 {
					state.KeyboardIndex++
				}
			}

			// Enter to select and close (skip if we just opened this frame)
			if !justOpened && ctx.Input.KeyPressed(KeyEnter) {
				if state.KeyboardIndex >= 0 && state.KeyboardIndex < len(items) {
					if state.KeyboardIndex != *selectedIndex {
						*selectedIndex = state.KeyboardIndex
						changed = true
					}
					state.Open = false
					ctx.SetActivePopup(0)
				}
			}
		}
	} else {
		// Dropdown is closed - if this combobox owned the popup, clear it
		if ctx.ActivePopupID() == id {
			ctx.SetActivePopup(0)
		}
	}

	// Save state
	SetState(ctx, id, state)

	// Advance cursor
	totalWidth := labelWidth + comboWidth
	ctx.advanceCursor(Vec2{totalWidth, h})

	return changed
}

// comboStripWidth is the width of gradient preview strips in pixels.
const comboStripWidth float32 = 44

// drawColorStrip draws a horizontal gradient strip sampled from table.
func (ctx *Context) drawColorStrip(dl *DrawList, table *ColorTable, x, y, w, h float32) {
	if table == nil || w <= 0 || h <= 0 {
		return
	}
	step := float32(2)
	for sx := float32(0); sx < w; sx += step {
		sw := minf(step, w-sx)
		dl.AddRect(x+sx, y, sw, h, table.At(sx/w))
	}
	dl.AddRectOutline(x, y, w, h, ctx.style.BorderColor, 1)
}
