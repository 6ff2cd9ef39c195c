package pointviz_test

import (
	"testing"

	"github.com/go-theft-auto/pointviz"
)

func TestRangeSliderNoInput(t *testing.T) {
	viewer := pointviz.New(&mockRenderer{}, nil)
	input := pointviz.NewInputState()

	lo, hi := 2.0, 8.0
	ctx := viewer.Begin(input, pointviz.Vec2{X: 800, Y: 600}, 0.016)
	changed := ctx.RangeSliderFloat("range", &lo, &hi, 0, 10)
	_ = viewer.End()

	if changed {
		t.Error("slider should not report a change without input")
	}
	if lo != 2 || hi != 8 {
		t.Errorf("expected values untouched, got (%g, %g)", lo, hi)
	}
}

func TestRangeSliderDragMin(t *testing.T) {
	viewer := pointviz.New(&mockRenderer{}, nil)
	input := pointviz.NewInputState()

	lo, hi := 2.0, 8.0

	// Frame 1: press inside the min value box. The grab starts but the
	// mouse hasn't moved, so nothing changes yet.
	input.SetMousePos(5, 5)
	input.SetMouseButton(pointviz.MouseButtonLeft, true)
	ctx := viewer.Begin(input, pointviz.Vec2{X: 800, Y: 600}, 0.016)
	changed := ctx.RangeSliderFloat("range", &lo, &hi, 0, 10)
	_ = viewer.End()
	if changed {
		t.Error("press without movement should not change values")
	}

	// Frame 2: drag 30px right. Bounds span 10 over 100px, so +3.
	input.Reset()
	input.SetMousePos(35, 5)
	ctx = viewer.Begin(input, pointviz.Vec2{X: 800, Y: 600}, 0.016)
	changed = ctx.RangeSliderFloat("range", &lo, &hi, 0, 10)
	_ = viewer.End()
	if !changed {
		t.Error("drag should report a change")
	}
	if lo != 5 {
		t.Errorf("expected lo 5 after 30px drag, got %g", lo)
	}
	if hi != 8 {
		t.Errorf("expected hi untouched at 8, got %g", hi)
	}

	// Frame 3: release ends the drag; later movement does nothing.
	input.Reset()
	input.SetMouseButton(pointviz.MouseButtonLeft, false)
	ctx = viewer.Begin(input, pointviz.Vec2{X: 800, Y: 600}, 0.016)
	changed = ctx.RangeSliderFloat("range", &lo, &hi, 0, 10)
	_ = viewer.End()
	if changed {
		t.Error("release should not change values")
	}

	input.Reset()
	input.SetMousePos(95, 5)
	ctx = viewer.Begin(input, pointviz.Vec2{X: 800, Y: 600}, 0.016)
	changed = ctx.RangeSliderFloat("range", &lo, &hi, 0, 10)
	_ = viewer.End()
	if changed || lo != 5 {
		t.Errorf("movement after release should not drag, got lo %g", lo)
	}
}

func TestRangeSliderDragPushesAndClamps(t *testing.T) {
	viewer := pointviz.New(&mockRenderer{}, nil)
	input := pointviz.NewInputState()

	lo, hi := 2.0, 3.0

	// Frame 1: grab the min box.
	input.SetMousePos(5, 5)
	input.SetMouseButton(pointviz.MouseButtonLeft, true)
	ctx := viewer.Begin(input, pointviz.Vec2{X: 800, Y: 600}, 0.016)
	ctx.RangeSliderFloat("range", &lo, &hi, 0, 10)
	_ = viewer.End()

	// Frame 2: drag past the max; the max is pushed along to keep order.
	input.Reset()
	input.SetMousePos(75, 5)
	ctx = viewer.Begin(input, pointviz.Vec2{X: 800, Y: 600}, 0.016)
	ctx.RangeSliderFloat("range", &lo, &hi, 0, 10)
	_ = viewer.End()
	if lo != 9 || hi != 9 {
		t.Errorf("expected max pushed to (9, 9), got (%g, %g)", lo, hi)
	}

	// Frame 3: keep dragging past the bound; both values clamp to it.
	// The drag is measured from its start, not frame to frame.
	input.Reset()
	input.SetMousePos(205, 5)
	ctx = viewer.Begin(input, pointviz.Vec2{X: 800, Y: 600}, 0.016)
	ctx.RangeSliderFloat("range", &lo, &hi, 0, 10)
	_ = viewer.End()
	if lo != 10 || hi != 10 {
		t.Errorf("expected clamp to (10, 10), got (%g, %g)", lo, hi)
	}
}

func TestRangeSliderCtrlClickEditCommitsVerbatim(t *testing.T) {
	viewer := pointviz.New(&mockRenderer{}, nil)
	input := pointviz.NewInputState()

	lo, hi := 2.0, 8.0

	// Frame 1: ctrl+click the min box to start typing. The field is
	// seeded with the current value.
	input.SetMousePos(5, 5)
	input.ModCtrl = true
	input.SetMouseButton(pointviz.MouseButtonLeft, true)
	ctx := viewer.Begin(input, pointviz.Vec2{X: 800, Y: 600}, 0.016)
	changed := ctx.RangeSliderFloat("range", &lo, &hi, 0, 10)
	_ = viewer.End()
	if changed {
		t.Error("starting an edit should not change values")
	}

	// Frame 2: type a digit after the seeded "2".
	input.Reset()
	input.ModCtrl = false
	input.SetMouseButton(pointviz.MouseButtonLeft, false)
	input.AddInputChar('5')
	ctx = viewer.Begin(input, pointviz.Vec2{X: 800, Y: 600}, 0.016)
	ctx.RangeSliderFloat("range", &lo, &hi, 0, 10)
	_ = viewer.End()

	// Frame 3: Enter commits "25" exactly as typed. Typed values are
	// not clamped to the bounds and the other bound is left alone.
	input.Reset()
	input.SetKey(pointviz.KeyEnter, true)
	ctx = viewer.Begin(input, pointviz.Vec2{X: 800, Y: 600}, 0.016)
	changed = ctx.RangeSliderFloat("range", &lo, &hi, 0, 10)
	_ = viewer.End()
	if !changed {
		t.Error("commit should report a change")
	}
	if lo != 25 {
		t.Errorf("expected typed value 25 committed, got %g", lo)
	}
	if hi != 8 {
		t.Errorf("expected hi untouched at 8, got %g", hi)
	}
}

func TestRangeSliderEditEscapeCancels(t *testing.T) {
	viewer := pointviz.New(&mockRenderer{}, nil)
	input := pointviz.NewInputState()

	lo, hi := 2.0, 8.0

	// Frame 1: ctrl+click the min box.
	input.SetMousePos(5, 5)
	input.ModCtrl = true
	input.SetMouseButton(pointviz.MouseButtonLeft, true)
	ctx := viewer.Begin(input, pointviz.Vec2{X: 800, Y: 600}, 0.016)
	ctx.RangeSliderFloat("range", &lo, &hi, 0, 10)
	_ = viewer.End()

	// Frame 2: type a digit.
	input.Reset()
	input.ModCtrl = false
	input.SetMouseButton(pointviz.MouseButtonLeft, false)
	input.AddInputChar('9')
	ctx = viewer.Begin(input, pointviz.Vec2{X: 800, Y: 600}, 0.016)
	ctx.RangeSliderFloat("range", &lo, &hi, 0, 10)
	_ = viewer.End()

	// Frame 3: Escape throws the edit away.
	input.Reset()
	input.SetKey(pointviz.KeyEscape, true)
	ctx = viewer.Begin(input, pointviz.Vec2{X: 800, Y: 600}, 0.016)
	changed := ctx.RangeSliderFloat("range", &lo, &hi, 0, 10)
	_ = viewer.End()
	if changed {
		t.Error("cancel should not change values")
	}
	if lo != 2 {
		t.Errorf("expected lo unchanged at 2, got %g", lo)
	}

	// Frame 4: the edit is gone; Enter does nothing.
	input.Reset()
	input.SetKey(pointviz.KeyEscape, false)
	input.SetKey(pointviz.KeyEnter, true)
	ctx = viewer.Begin(input, pointviz.Vec2{X: 800, Y: 600}, 0.016)
	changed = ctx.RangeSliderFloat("range", &lo, &hi, 0, 10)
	_ = viewer.End()
	if changed || lo != 2 {
		t.Errorf("expected no commit after cancel, got lo %g", lo)
	}
}
