package pointviz_test

import (
	"testing"

	"github.com/go-theft-auto/pointviz"
)

func TestPopupOpensAtMouseAndPersists(t *testing.T) {
	viewer := pointviz.New(&mockRenderer{}, nil)
	input := pointviz.NewInputState()
	items := []string{"Reset colormap range", "Export values"}

	// Frame 1: open the popup. It anchors at the mouse.
	input.SetMousePos(200, 150)
	ctx := viewer.Begin(input, pointviz.Vec2{X: 800, Y: 600}, 0.016)
	ctx.OpenPopup("quantity_options")
	if clicked := ctx.PopupMenu("quantity_options", items); clicked != -1 {
		t.Errorf("expected no item clicked on open, got %d", clicked)
	}
	if !ctx.IsPopupOpen("quantity_options") {
		t.Error("popup should be open")
	}
	if !ctx.WantCaptureKeyboard {
		t.Error("open popup should capture the keyboard")
	}
	_ = viewer.End()

	// Frame 2: still open with no input.
	input.Reset()
	ctx = viewer.Begin(input, pointviz.Vec2{X: 800, Y: 600}, 0.016)
	if clicked := ctx.PopupMenu("quantity_options", items); clicked != -1 {
		t.Errorf("expected no item clicked, got %d", clicked)
	}
	if !ctx.IsPopupOpen("quantity_options") {
		t.Error("popup should stay open across frames")
	}
	_ = viewer.End()
}

func TestPopupItemClick(t *testing.T) {
	viewer := pointviz.New(&mockRenderer{}, nil)
	input := pointviz.NewInputState()
	items := []string{"Reset colormap range", "Export values"}

	input.SetMousePos(200, 150)
	ctx := viewer.Begin(input, pointviz.Vec2{X: 800, Y: 600}, 0.016)
	ctx.OpenPopup("quantity_options")
	ctx.PopupMenu("quantity_options", items)
	_ = viewer.End()

	// Click the second item: one row of 16px below the menu's top edge.
	input.Reset()
	input.SetMousePos(210, 170)
	input.SetMouseButton(pointviz.MouseButtonLeft, true)
	ctx = viewer.Begin(input, pointviz.Vec2{X: 800, Y: 600}, 0.016)
	clicked := ctx.PopupMenu("quantity_options", items)
	if clicked != 1 {
		t.Errorf("expected item 1 clicked, got %d", clicked)
	}
	if ctx.IsPopupOpen("quantity_options") {
		t.Error("popup should close after an item click")
	}
	_ = viewer.End()

	// Closed popups draw nothing and report no clicks.
	input.Reset()
	input.SetMouseButton(pointviz.MouseButtonLeft, false)
	ctx = viewer.Begin(input, pointviz.Vec2{X: 800, Y: 600}, 0.016)
	if clicked := ctx.PopupMenu("quantity_options", items); clicked != -1 {
		t.Errorf("expected closed popup to report -1, got %d", clicked)
	}
	_ = viewer.End()
}

func TestPopupClickOutsideCloses(t *testing.T) {
	viewer := pointviz.New(&mockRenderer{}, nil)
	input := pointviz.NewInputState()
	items := []string{"Reset colormap range"}

	// Frame 1: the opening click itself does not count as a click
	// outside, even when the mouse ends the frame away from the menu.
	input.SetMousePos(50, 50)
	input.SetMouseButton(pointviz.MouseButtonLeft, true)
	ctx := viewer.Begin(input, pointviz.Vec2{X: 800, Y: 600}, 0.016)
	ctx.OpenPopup("quantity_options")
	input.SetMousePos(700, 100)
	ctx.PopupMenu("quantity_options", items)
	if !ctx.IsPopupOpen("quantity_options") {
		t.Error("opening click should not close the popup")
	}
	_ = viewer.End()

	// Frame 2: holding the button does nothing.
	input.Reset()
	ctx = viewer.Begin(input, pointviz.Vec2{X: 800, Y: 600}, 0.016)
	ctx.PopupMenu("quantity_options", items)
	if !ctx.IsPopupOpen("quantity_options") {
		t.Error("held button should not close the popup")
	}
	_ = viewer.End()

	// Frame 3: release, then a fresh click away from the menu closes it.
	input.Reset()
	input.SetMouseButton(pointviz.MouseButtonLeft, false)
	ctx = viewer.Begin(input, pointviz.Vec2{X: 800, Y: 600}, 0.016)
	ctx.PopupMenu("quantity_options", items)
	_ = viewer.End()

	input.Reset()
	input.SetMouseButton(pointviz.MouseButtonLeft, true)
	ctx = viewer.Begin(input, pointviz.Vec2{X: 800, Y: 600}, 0.016)
	clicked := ctx.PopupMenu("quantity_options", items)
	if clicked != -1 {
		t.Errorf("expected no item clicked, got %d", clicked)
	}
	if ctx.IsPopupOpen("quantity_options") {
		t.Error("click outside should close the popup")
	}
	_ = viewer.End()
}

func TestPopupEscapeCloses(t *testing.T) {
	viewer := pointviz.New(&mockRenderer{}, nil)
	input := pointviz.NewInputState()
	items := []string{"Reset colormap range"}

	input.SetMousePos(200, 150)
	ctx := viewer.Begin(input, pointviz.Vec2{X: 800, Y: 600}, 0.016)
	ctx.OpenPopup("quantity_options")
	ctx.PopupMenu("quantity_options", items)
	_ = viewer.End()

	input.Reset()
	input.SetKey(pointviz.KeyEscape, true)
	ctx = viewer.Begin(input, pointviz.Vec2{X: 800, Y: 600}, 0.016)
	ctx.PopupMenu("quantity_options", items)
	if ctx.IsPopupOpen("quantity_options") {
		t.Error("Escape should close the popup")
	}
	_ = viewer.End()
}
