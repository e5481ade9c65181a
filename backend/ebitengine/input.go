package ebitengine

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/go-theft-auto/gui/v2"
)

// keyMap lists the ebiten keys forwarded to the GUI.
var keyMap = []struct {
	ebiten ebiten.Key
	gui    gui.Key
}{
	{ebiten.KeyTab, gui.KeyTab},
	{ebiten.KeyArrowLeft, gui.KeyLeft},
	{ebiten.KeyArrowRight, gui.KeyRight},
	{ebiten.KeyArrowUp, gui.KeyUp},
	{ebiten.KeyArrowDown, gui.KeyDown},
	{ebiten.KeyPageUp, gui.KeyPageUp},
	{ebiten.KeyPageDown, gui.KeyPageDown},
	{ebiten.KeyHome, gui.KeyHome},
	{ebiten.KeyEnd, gui.KeyEnd},
	{ebiten.KeyDelete, gui.KeyDelete},
	{ebiten.KeyBackspace, gui.KeyBackspace},
	{ebiten.KeySpace, gui.KeySpace},
	{ebiten.KeyEnter, gui.KeyEnter},
	{ebiten.KeyEscape, gui.KeyEscape},
}

var buttonMap = []struct {
	ebiten ebiten.MouseButton
	gui    gui.MouseButton
}{
	{ebiten.MouseButtonLeft, gui.MouseButtonLeft},
	{ebiten.MouseButtonRight, gui.MouseButtonRight},
	{ebiten.MouseButtonMiddle, gui.MouseButtonMiddle},
}

// InputAdapter polls ebiten input into a gui.InputState.
//
// Ebiten runs Update and Draw at independent rates. Input polled by several
// Updates before a Draw is merged into one frame, and a Draw that follows no
// new Update sees the level state with its edges cleared.
type InputAdapter struct {
	input    *gui.InputState
	consumed bool
}

// NewInputAdapter creates an input adapter.
func NewInputAdapter() *InputAdapter {
	return &InputAdapter{input: gui.NewInputState()}
}

// Update polls ebiten's input. Call it from Game.Update.
func (a *InputAdapter) Update() {
	if a.consumed {
		a.input.Reset()
		a.consumed = false
	}
	in := a.input

	x, y := ebiten.CursorPosition()
	in.SetMousePos(float32(x), float32(y))
	for _, b := range buttonMap {
		in.SetMouseButton(b.gui, ebiten.IsMouseButtonPressed(b.ebiten))
	}

	_, wy := ebiten.Wheel()
	in.SetMouseWheel(in.MouseWheelY + float32(wy))

	in.InputChars = ebiten.AppendInputChars(in.InputChars)

	for _, k := range keyMap {
		in.SetKey(k.gui, ebiten.IsKeyPressed(k.ebiten))
	}
	in.ModCtrl = ebiten.IsKeyPressed(ebiten.KeyControl)
	in.ModShift = ebiten.IsKeyPressed(ebiten.KeyShift)
	in.ModAlt = ebiten.IsKeyPressed(ebiten.KeyAlt)
	in.ModSuper = ebiten.IsKeyPressed(ebiten.KeyMeta)
}

// Frame returns the input for the frame being drawn. Call it from
// Game.Draw, once per frame.
func (a *InputAdapter) Frame() *gui.InputState {
	if a.consumed {
		a.input.Reset()
	}
	a.consumed = true
	return a.input
}
