package gui

// InputFieldState tracks state for a text input widget between frames.
// It is created on the first Input call with a new id and lives until
// DestroyInput.
type InputFieldState struct {
	Value   string // Full text typed so far
	Focused bool   // Receiving typed characters
	Locked  bool   // Read-only; set by PushInputLock

	// Compiled is the rasterized visible text. Owned by the state and
	// released on recompile and on destroy.
	Compiled    *TextureHandle
	compiledKey TextKey

	// TrimmedLeft is how many runes are cut from the start of Value so the
	// visible text fits the field. It only grows on overflow and shrinks in
	// lockstep with deletions.
	TrimmedLeft int

	FirstRender      bool // True until the first Input call finishes
	DeletingHeld     bool // Backspace held while focused
	DeleteHoldFrames int  // Frames backspace has been held
	PendingRecompile bool // Compiled is stale
}

// newInputFieldState is the create-on-miss constructor for the input registry.
func newInputFieldState(string) InputFieldState {
	return InputFieldState{FirstRender: true, PendingRecompile: true}
}

// VisibleText returns Value with the trimmed prefix removed.
func (s *InputFieldState) VisibleText() string {
	if s.TrimmedLeft <= 0 {
		return s.Value
	}
	runes := []rune(s.Value)
	if s.TrimmedLeft >= len(runes) {
		return ""
	}
	return string(runes[s.TrimmedLeft:])
}

// AppendText adds typed text to the value.
func (s *InputFieldState) AppendText(text string) {
	if text == "" {
		return
	}
	s.Value += text
	s.PendingRecompile = true
}

// DeleteLast removes the last rune. The trim count shrinks with it so the
// visible window keeps its right edge. Returns false when the value is empty.
func (s *InputFieldState) DeleteLast() bool {
	runes := []rune(s.Value)
	if len(runes) == 0 {
		return false
	}
	s.Value = string(runes[:len(runes)-1])
	if s.TrimmedLeft > 0 {
		s.TrimmedLeft--
	}
	s.PendingRecompile = true
	return true
}

// SetValue replaces the text and resets the trim.
func (s *InputFieldState) SetValue(v string) {
	s.Value = v
	s.TrimmedLeft = 0
	s.PendingRecompile = true
}

// releaseCompiled drops the compiled texture.
func (s *InputFieldState) releaseCompiled() {
	if s.Compiled != nil {
		s.Compiled.Release()
		s.Compiled = nil
	}
	s.compiledKey = TextKey{}
}

// ScrollDragState tracks a scrollbar thumb drag.
type ScrollDragState struct {
	Active      bool
	StartMouseY float32 // Mouse Y when the drag started
	StartOffset float32 // ScrollOffset when the drag started
}

// ContainerState tracks state for a scrollable container between frames.
type ContainerState struct {
	// Viewport is the on-screen rectangle, overwritten on every begin.
	Viewport Rect

	// ContentHeight is the lowest item bottom seen since the container last
	// began, in content coordinates.
	ContentHeight float32

	// measuredHeight is ContentHeight as of the last EndContainer. Wheel
	// scrolling at begin clamps against it since this frame's height is not
	// known yet.
	measuredHeight float32

	ScrollOffset    float32
	Drag            ScrollDragState
	LastActiveFrame uint64
}

// MaxScroll returns the largest valid scroll offset for the given content
// height.
func (s *ContainerState) MaxScroll(contentHeight float32) float32 {
	return maxf(0, contentHeight-s.Viewport.H)
}

// ClampScroll clamps ScrollOffset to [0, MaxScroll(contentHeight)].
func (s *ContainerState) ClampScroll(contentHeight float32) {
	s.ScrollOffset = clampf(s.ScrollOffset, 0, s.MaxScroll(contentHeight))
}

// ScrollBy moves the offset by delta pixels and clamps it against the last
// measured content height. Positive delta scrolls down.
func (s *ContainerState) ScrollBy(delta float32) {
	s.ScrollOffset += delta
	s.ClampScroll(s.measuredHeight)
}

// MeasuredHeight returns the content height as of the last EndContainer.
func (s *ContainerState) MeasuredHeight() float32 {
	return s.measuredHeight
}

// Scrollable reports whether the content overflows the viewport.
func (s *ContainerState) Scrollable() bool {
	return s.measuredHeight > s.Viewport.H
}

// growContent records an item bottom in content coordinates.
func (s *ContainerState) growContent(bottom float32) {
	if bottom > s.ContentHeight {
		s.ContentHeight = bottom
	}
}
