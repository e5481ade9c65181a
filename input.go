package gui

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// Key represents a keyboard key.
type Key int

const (
	KeyNone Key = iota
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyDelete
	KeyBackspace
	KeySpace
	KeyEnter
	KeyEscape
	KeyCount
)

// InputState holds the input snapshot for the current frame.
// This is typically populated by a backend adapter from GLFW or ebiten.
//
// Edge state (clicked/released/pressed) is cleared by Reset; level state
// (down, held frame counts) persists until the adapter reports a change.
type InputState struct {
	// Mouse position
	MouseX, MouseY float32
	prevMouseX     float32
	prevMouseY     float32

	// Mouse buttons - current frame state
	mouseDown       [MouseButtonCount]bool
	mouseClicked    [MouseButtonCount]bool // True on the frame button was pressed
	mouseUp         [MouseButtonCount]bool // True on the frame button was released
	mouseHeldFrames [MouseButtonCount]int  // Consecutive frames the button has been down
	mousePressPos   [MouseButtonCount]Vec2 // Mouse position when the button went down

	// Mouse wheel
	MouseWheelY float32

	// Keyboard - current frame state
	keyDown       [KeyCount]bool
	keyPressed    [KeyCount]bool // True on the frame key was pressed
	keyUp         [KeyCount]bool // True on the frame key was released
	keyHeldFrames [KeyCount]int

	// Text input (Unicode characters typed this frame)
	InputChars []rune

	// TextInputActive is set by the GUI at the end of a frame when an input
	// field has focus. Adapters may use it to enable platform text input.
	TextInputActive bool

	// Modifiers
	ModCtrl  bool
	ModShift bool
	ModAlt   bool
	ModSuper bool
}

// NewInputState creates a new InputState.
func NewInputState() *InputState {
	return &InputState{
		InputChars: make([]rune, 0, 16),
	}
}

// Reset clears per-frame input state and advances held-frame counters.
// Call this at the start of each frame before collecting input.
func (s *InputState) Reset() {
	for i := range s.mouseClicked {
		s.mouseClicked[i] = false
		s.mouseUp[i] = false
		if s.mouseDown[i] {
			s.mouseHeldFrames[i]++
		}
	}
	for i := range s.keyPressed {
		s.keyPressed[i] = false
		s.keyUp[i] = false
		if s.keyDown[i] {
			s.keyHeldFrames[i]++
		}
	}
	s.InputChars = s.InputChars[:0]
	s.MouseWheelY = 0
	s.prevMouseX = s.MouseX
	s.prevMouseY = s.MouseY
}

// SetMousePos sets the mouse position.
func (s *InputState) SetMousePos(x, y float32) {
	s.MouseX = x
	s.MouseY = y
}

// MousePos returns the mouse position as a vector.
func (s *InputState) MousePos() Vec2 {
	return Vec2{s.MouseX, s.MouseY}
}

// MouseDelta returns how far the mouse moved since the last Reset.
func (s *InputState) MouseDelta() Vec2 {
	return Vec2{s.MouseX - s.prevMouseX, s.MouseY - s.prevMouseY}
}

// MouseMoved reports whether the mouse moved since the last Reset.
func (s *InputState) MouseMoved() bool {
	d := s.MouseDelta()
	return d.X != 0 || d.Y != 0
}

// SetMouseButton sets mouse button state.
func (s *InputState) SetMouseButton(button MouseButton, down bool) {
	if button < 0 || button >= MouseButtonCount {
		return
	}

	wasDown := s.mouseDown[button]
	s.mouseDown[button] = down

	if down && !wasDown {
		s.mouseClicked[button] = true
		s.mouseHeldFrames[button] = 0
		s.mousePressPos[button] = s.MousePos()
	}
	if !down && wasDown {
		s.mouseUp[button] = true
		s.mouseHeldFrames[button] = 0
	}
}

// SetKey sets key state.
func (s *InputState) SetKey(key Key, down bool) {
	if key < 0 || key >= KeyCount {
		return
	}

	wasDown := s.keyDown[key]
	s.keyDown[key] = down

	if down && !wasDown {
		s.keyPressed[key] = true
		s.keyHeldFrames[key] = 0
	}
	if !down && wasDown {
		s.keyUp[key] = true
		s.keyHeldFrames[key] = 0
	}
}

// SetMouseWheel sets the vertical mouse wheel delta.
func (s *InputState) SetMouseWheel(y float32) {
	s.MouseWheelY = y
}

// AddInputChar adds a typed character.
func (s *InputState) AddInputChar(ch rune) {
	s.InputChars = append(s.InputChars, ch)
}

// MouseDown returns true if a mouse button is currently held.
func (s *InputState) MouseDown(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseDown[button]
}

// MouseClicked returns true if a mouse button was just clicked (pressed this frame).
func (s *InputState) MouseClicked(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseClicked[button]
}

// MouseReleased returns true if a mouse button was just released.
func (s *InputState) MouseReleased(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseUp[button]
}

// MouseHeldFrames returns how many frames the button has been held after the
// frame it was pressed on. Zero on the press frame and while released.
func (s *InputState) MouseHeldFrames(button MouseButton) int {
	if button < 0 || button >= MouseButtonCount {
		return 0
	}
	return s.mouseHeldFrames[button]
}

// MouseDragDelta returns how far the mouse moved since the button went down.
// Zero while the button is released.
func (s *InputState) MouseDragDelta(button MouseButton) Vec2 {
	if button < 0 || button >= MouseButtonCount || !s.mouseDown[button] {
		return Vec2{}
	}
	return s.MousePos().Sub(s.mousePressPos[button])
}

// KeyDown returns true if a key is currently held.
func (s *InputState) KeyDown(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyDown[key]
}

// KeyPressed returns true if a key was just pressed (pressed this frame).
func (s *InputState) KeyPressed(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyPressed[key]
}

// KeyReleased returns true if a key was just released.
func (s *InputState) KeyReleased(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyUp[key]
}

// KeyHeldFrames returns how many frames the key has been held after the frame
// it was pressed on.
func (s *InputState) KeyHeldFrames(key Key) int {
	if key < 0 || key >= KeyCount {
		return 0
	}
	return s.keyHeldFrames[key]
}

// HasInputChars returns true if there are typed characters this frame.
func (s *InputState) HasInputChars() bool {
	return len(s.InputChars) > 0
}

// ConsumeInputChars clears all typed characters for this frame.
func (s *InputState) ConsumeInputChars() {
	s.InputChars = s.InputChars[:0]
}
