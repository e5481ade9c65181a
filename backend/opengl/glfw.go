package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/gui/v2"
)

// GLFWInputAdapter adapts GLFW input to gui.InputState.
//
// Call Update once per frame after glfw.PollEvents. The per-frame edges of
// the previous frame are cleared by the first event of the next frame, or by
// Update itself when no event arrived.
type GLFWInputAdapter struct {
	window *glfw.Window
	input  *gui.InputState
	stale  bool // input still holds the edges of the last returned frame
}

// NewGLFWInputAdapter creates a new GLFW input adapter and installs its
// callbacks on window.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{
		window: window,
		input:  gui.NewInputState(),
	}

	window.SetKeyCallback(adapter.keyCallback)
	window.SetCharCallback(adapter.charCallback)
	window.SetMouseButtonCallback(adapter.mouseButtonCallback)
	window.SetScrollCallback(adapter.scrollCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)

	return adapter
}

// Update completes the input snapshot for a new frame and returns it.
func (a *GLFWInputAdapter) Update() *gui.InputState {
	a.begin()
	a.stale = true

	x, y := a.window.GetCursorPos()
	a.input.SetMousePos(float32(x), float32(y))

	a.input.ModCtrl = a.held(glfw.KeyLeftControl, glfw.KeyRightControl)
	a.input.ModShift = a.held(glfw.KeyLeftShift, glfw.KeyRightShift)
	a.input.ModAlt = a.held(glfw.KeyLeftAlt, glfw.KeyRightAlt)
	a.input.ModSuper = a.held(glfw.KeyLeftSuper, glfw.KeyRightSuper)

	return a.input
}

// Input returns the current input state.
func (a *GLFWInputAdapter) Input() *gui.InputState {
	return a.input
}

// held reports whether either key is down.
func (a *GLFWInputAdapter) held(left, right glfw.Key) bool {
	return a.window.GetKey(left) == glfw.Press || a.window.GetKey(right) == glfw.Press
}

// begin clears last frame's edges once per frame.
func (a *GLFWInputAdapter) begin() {
	if a.stale {
		a.input.Reset()
		a.stale = false
	}
}

func (a *GLFWInputAdapter) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	guiKey, ok := glfwKeys[key]
	if !ok {
		return
	}
	a.begin()

	switch action {
	case glfw.Press, glfw.Repeat:
		a.input.SetKey(guiKey, true)
	case glfw.Release:
		a.input.SetKey(guiKey, false)
	}
}

func (a *GLFWInputAdapter) charCallback(_ *glfw.Window, char rune) {
	a.begin()
	a.input.AddInputChar(char)
}

func (a *GLFWInputAdapter) mouseButtonCallback(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	guiButton, ok := glfwButtons[button]
	if !ok {
		return
	}
	a.begin()

	switch action {
	case glfw.Press:
		a.input.SetMouseButton(guiButton, true)
	case glfw.Release:
		a.input.SetMouseButton(guiButton, false)
	}
}

func (a *GLFWInputAdapter) scrollCallback(_ *glfw.Window, _, yoff float64) {
	a.begin()
	a.input.SetMouseWheel(a.input.MouseWheelY + float32(yoff))
}

func (a *GLFWInputAdapter) cursorPosCallback(_ *glfw.Window, xpos, ypos float64) {
	a.begin()
	a.input.SetMousePos(float32(xpos), float32(ypos))
}

// glfwKeys maps the GLFW keys the toolkit reacts to.
var glfwKeys = map[glfw.Key]gui.Key{
	glfw.KeyTab:       gui.KeyTab,
	glfw.KeyLeft:      gui.KeyLeft,
	glfw.KeyRight:     gui.KeyRight,
	glfw.KeyUp:        gui.KeyUp,
	glfw.KeyDown:      gui.KeyDown,
	glfw.KeyPageUp:    gui.KeyPageUp,
	glfw.KeyPageDown:  gui.KeyPageDown,
	glfw.KeyHome:      gui.KeyHome,
	glfw.KeyEnd:       gui.KeyEnd,
	glfw.KeyDelete:    gui.KeyDelete,
	glfw.KeyBackspace: gui.KeyBackspace,
	glfw.KeySpace:     gui.KeySpace,
	glfw.KeyEnter:     gui.KeyEnter,
	glfw.KeyKPEnter:   gui.KeyEnter,
	glfw.KeyEscape:    gui.KeyEscape,
}

var glfwButtons = map[glfw.MouseButton]gui.MouseButton{
	glfw.MouseButtonLeft:   gui.MouseButtonLeft,
	glfw.MouseButtonRight:  gui.MouseButtonRight,
	glfw.MouseButtonMiddle: gui.MouseButtonMiddle,
}
