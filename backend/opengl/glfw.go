package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/pointviz"
)

// GLFWInputAdapter adapts GLFW input to pointviz.InputState.
type GLFWInputAdapter struct {
	window *glfw.Window
	input  *pointviz.InputState
}

// NewGLFWInputAdapter creates a new GLFW input adapter.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{
		window: window,
		input:  pointviz.NewInputState(),
	}

	// Setup callbacks
	window.SetKeyCallback(adapter.keyCallback)
	window.SetCharCallback(adapter.charCallback)
	window.SetMouseButtonCallback(adapter.mouseButtonCallback)
	window.SetScrollCallback(adapter.scrollCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)

	return adapter
}

// Update updates the input state for a new frame.
// Call this at the start of each frame.
func (a *GLFWInputAdapter) Update() *pointviz.InputState {
	a.input.Reset()

	// Update mouse position
	x, y := a.window.GetCursorPos()
	a.input.SetMousePos(float32(x), float32(y))

	// Update modifiers
	a.input.ModCtrl = a.window.GetKey(glfw.KeyLeftControl) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightControl) == glfw.Press
	a.input.ModShift = a.window.GetKey(glfw.KeyLeftShift) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightShift) == glfw.Press
	a.input.ModAlt = a.window.GetKey(glfw.KeyLeftAlt) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightAlt) == glfw.Press
	a.input.ModSuper = a.window.GetKey(glfw.KeyLeftSuper) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightSuper) == glfw.Press

	return a.input
}

// Input returns the current input state.
func (a *GLFWInputAdapter) Input() *pointviz.InputState {
	return a.input
}

func (a *GLFWInputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	k := translateKey(key)
	if k == pointviz.KeyNone {
		return
	}

	switch action {
	case glfw.Press, glfw.Repeat:
		a.input.SetKey(k, true)
	case glfw.Release:
		a.input.SetKey(k, false)
	}
}

func (a *GLFWInputAdapter) charCallback(w *glfw.Window, char rune) {
	a.input.AddInputChar(char)
}

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	b := translateMouseButton(button)
	if b < 0 {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetMouseButton(b, true)
	case glfw.Release:
		a.input.SetMouseButton(b, false)
	}
}

func (a *GLFWInputAdapter) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	a.input.SetMouseWheel(float32(xoff), float32(yoff))
}

func (a *GLFWInputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.input.SetMousePos(float32(xpos), float32(ypos))
}

// translateKey maps GLFW keys to pointviz keys.
func translateKey(key glfw.Key) pointviz.Key {
	switch key {
	case glfw.KeyTab:
		return pointviz.KeyTab
	case glfw.KeyLeft:
		return pointviz.KeyLeft
	case glfw.KeyRight:
		return pointviz.KeyRight
	case glfw.KeyUp:
		return pointviz.KeyUp
	case glfw.KeyDown:
		return pointviz.KeyDown
	case glfw.KeyPageUp:
		return pointviz.KeyPageUp
	case glfw.KeyPageDown:
		return pointviz.KeyPageDown
	case glfw.KeyHome:
		return pointviz.KeyHome
	case glfw.KeyEnd:
		return pointviz.KeyEnd
	case glfw.KeyInsert:
		return pointviz.KeyInsert
	case glfw.KeyDelete:
		return pointviz.KeyDelete
	case glfw.KeyBackspace:
		return pointviz.KeyBackspace
	case glfw.KeySpace:
		return pointviz.KeySpace
	case glfw.KeyEnter:
		return pointviz.KeyEnter
	case glfw.KeyEscape:
		return pointviz.KeyEscape
	case glfw.KeyA:
		return pointviz.KeyA
	case glfw.KeyC:
		return pointviz.KeyC
	case glfw.KeyR:
		return pointviz.KeyR
	case glfw.KeyS:
		return pointviz.KeyS
	case glfw.KeyT:
		return pointviz.KeyT
	case glfw.KeyV:
		return pointviz.KeyV
	case glfw.KeyX:
		return pointviz.KeyX
	case glfw.KeyY:
		return pointviz.KeyY
	case glfw.KeyZ:
		return pointviz.KeyZ
	case glfw.KeyF1:
		return pointviz.KeyF1
	case glfw.KeyF2:
		return pointviz.KeyF2
	case glfw.KeyF3:
		return pointviz.KeyF3
	case glfw.KeyF4:
		return pointviz.KeyF4
	case glfw.KeyF5:
		return pointviz.KeyF5
	case glfw.KeyF6:
		return pointviz.KeyF6
	case glfw.KeyF7:
		return pointviz.KeyF7
	case glfw.KeyF8:
		return pointviz.KeyF8
	case glfw.KeyF9:
		return pointviz.KeyF9
	case glfw.KeyF10:
		return pointviz.KeyF10
	case glfw.KeyF11:
		return pointviz.KeyF11
	case glfw.KeyF12:
		return pointviz.KeyF12
	default:
		return pointviz.KeyNone
	}
}

// translateMouseButton maps GLFW mouse buttons to pointviz mouse buttons.
func translateMouseButton(button glfw.MouseButton) pointviz.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return pointviz.MouseButtonLeft
	case glfw.MouseButtonRight:
		return pointviz.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return pointviz.MouseButtonMiddle
	default:
		return -1
	}
}
