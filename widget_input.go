package gui

import (
	"unicode/utf8"

	"github.com/chewxy/math32"
)

// Input draws a single-line text field and returns its current value.
//
// id identifies the field across frames; its state is created on the first
// call and kept until DestroyInput. The field focuses when clicked, when
// FocusInput is called, or on its first render after PushAutoFocus. It
// blurs when the mouse is released outside it (never on its first render).
// While focused, typed characters are appended and backspace deletes the
// last character, repeating while held.
//
// Consumes pushed styles: font size, text align (default start/center),
// auto focus, input lock, default value, border radius, outline (default
// Style.InputBorder; thickness 0 hides it), padding (default
// Style.InputPadding).
func (ctx *Context) Input(id string, r Rect, placeholder string, bg, fg uint32) string {
	fontSize, _ := ConsumeStyle(ctx.styles, StyleFontSize)
	alignX, _ := ConsumeStyle(ctx.styles, StyleAlignX)
	alignY, _ := ConsumeStyle(ctx.styles, StyleAlignY)
	autoFocus, _ := ConsumeStyle(ctx.styles, StyleAutoFocus)
	locked, _ := ConsumeStyle(ctx.styles, StyleInputLock)
	defaultValue, _ := ConsumeStyle(ctx.styles, StyleDefaultValue)
	radii, _ := ConsumeStyle(ctx.styles, StyleBorderRadius)
	outline, ok := ConsumeStyle(ctx.styles, StyleOutline)
	if !ok {
		outline = ctx.style.InputBorder
	}
	pad, ok := ConsumeStyle(ctx.styles, StylePadding)
	if !ok {
		pad = ctx.style.InputPadding
	}
	if alignX == AlignUnset {
		alignX = AlignStart
	}
	if alignY == AlignUnset {
		alignY = AlignCenter
	}

	st := ctx.inputs.GetOrCreate(id, newInputFieldState)
	defer func() { st.FirstRender = false }()

	st.Locked = locked
	if locked {
		autoFocus = false
		st.Focused = false
	}
	if autoFocus && st.FirstRender {
		st.Focused = true
	}
	if st.FirstRender && defaultValue != "" {
		st.SetValue(defaultValue)
	}

	ctx.updateInput(st, r)
	if st.Focused {
		ctx.WantCaptureKeyboard = true
	}

	if r.W < 1 || r.H < 1 || !ctx.ready("Input") {
		return st.Value
	}

	textH := fontSize
	if textH <= 0 {
		textH = r.H - pad.Vertical()
	}
	textH = math32.Round(textH)

	fontOK := ctx.text != nil
	if fontOK {
		ctx.trimToFit(st, textH, r.W-pad.Horizontal())
	}

	// Rebuild the compiled texture when the text, size or color changed
	showPlaceholder := st.Value == ""
	str, color := st.VisibleText(), fg
	if showPlaceholder {
		str = placeholder
		_, _, _, a := UnpackRGBA(fg)
		color = WithAlpha(fg, uint8(float32(a)*ctx.style.PlaceholderFade))
	}
	key := TextKey{Text: str, Size: textH, Color: color}
	if st.PendingRecompile || st.compiledKey != key {
		st.releaseCompiled()
		if str != "" && textH >= 1 && ctx.fontReady("Input") {
			h, err := ctx.rasterize(str, textH, color)
			if err != nil {
				ctx.reportError("Input", err)
			} else {
				st.Compiled = h
				st.compiledKey = key
			}
		}
		st.PendingRecompile = false
	}

	// Background and outline
	meshes := []Mesh{ctx.rectMesh(r, radii, bg, Filled, DashStyle{})}
	if outline.Enabled() {
		meshes = append(meshes, ctx.rectMesh(r, radii, outline.Color, outline.Thickness, DashStyle{}))
	}
	ctx.fillMeshes("Input", meshes...)

	// Text
	var textW float32
	if w, h := st.Compiled.Size(); h > 0 {
		textW = textH * float32(w) / float32(h)
	}
	textRect := placeText(r, textW, textH, pad, alignX, alignY)
	if tex := st.Compiled.Texture(); tex != nil {
		ctx.blitTexture(tex, textRect)
	}

	if locked {
		ctx.fillMesh("Input", ctx.rectMesh(r, radii, ctx.style.LockedOverlay, Filled, DashStyle{}))
	}

	// Caret
	if st.Focused && ctx.caretVisible() {
		x := textRect.Right() + 1
		if showPlaceholder {
			switch alignX {
			case AlignCenter:
				x = r.X + r.W/2
			case AlignEnd:
				x = r.Right() - pad.Right
			default:
				x = r.X + pad.Left
			}
		}
		p1 := Vec2{x, r.Y + pad.Top}
		p2 := Vec2{x, r.Bottom() - pad.Bottom}
		ctx.fillMesh("Input", BuildThickLineMesh(p1, p2, fg, ctx.style.CaretWidth))
	}

	return st.Value
}

// updateInput applies this frame's mouse and keyboard input to a field.
func (ctx *Context) updateInput(st *InputFieldState, r Rect) {
	in := ctx.input
	released := in.MouseReleased(MouseButtonLeft)
	hovered := ctx.isHovered(r)

	if released && hovered && !st.Locked {
		st.Focused = true
	}
	if released && !hovered && !st.FirstRender {
		st.Focused = false
	}

	if !st.Focused || st.Locked {
		st.DeletingHeld = false
		st.DeleteHoldFrames = 0
		return
	}

	if in.HasInputChars() {
		st.AppendText(string(in.InputChars))
	}

	if !in.KeyDown(KeyBackspace) {
		st.DeletingHeld = false
		st.DeleteHoldFrames = 0
		return
	}
	if !st.DeletingHeld {
		st.DeleteLast()
		st.DeletingHeld = true
		st.DeleteHoldFrames = 0
		return
	}
	st.DeleteHoldFrames++
	if st.DeleteHoldFrames%ctx.repeatInterval() == 0 {
		st.DeleteLast()
	}
}

// trimToFit grows the left trim until the visible text fits usableW.
// The trim never shrinks here; only deletions give characters back.
func (ctx *Context) trimToFit(st *InputFieldState, textH, usableW float32) {
	if st.Value == "" || usableW <= 0 {
		return
	}
	n := utf8.RuneCountInString(st.Value)
	for st.TrimmedLeft < n-1 && ctx.measureText(st.VisibleText(), textH).X > usableW {
		st.TrimmedLeft++
		st.PendingRecompile = true
	}
}

// repeatInterval is the number of held frames between repeated deletions,
// about a fifth of a second.
func (ctx *Context) repeatInterval() int {
	return max(1, ctx.fps/5)
}

// caretVisible alternates every half second of frames, starting hidden.
func (ctx *Context) caretVisible() bool {
	period := uint64(max(1, ctx.fps/2))
	return (ctx.FrameCount/period)%2 == 1
}

// DestroyInput drops the state of a field and releases its texture. The next
// Input call with the same id starts from scratch.
func (ctx *Context) DestroyInput(id string) {
	st := ctx.inputs.Destroy(id)
	if st == nil {
		return
	}
	st.releaseCompiled()
	st.Focused = false
}

// FocusInput focuses a field. Returns false if no field with that id exists.
func (ctx *Context) FocusInput(id string) bool {
	st := ctx.inputs.Get(id)
	if st == nil || st.Locked {
		return false
	}
	st.Focused = true
	return true
}

// BlurInput removes focus from a field.
func (ctx *Context) BlurInput(id string) {
	if st := ctx.inputs.Get(id); st != nil {
		st.Focused = false
		st.DeletingHeld = false
	}
}

// SetInputValue replaces the value of an existing field.
// Returns false if no field with that id exists.
func (ctx *Context) SetInputValue(id, value string) bool {
	st := ctx.inputs.Get(id)
	if st == nil {
		guiLogger.Warn("SetInputValue: no input with that id", "id", id)
		return false
	}
	st.SetValue(value)
	return true
}

// LookupInput returns the state of a field, or nil if it doesn't exist.
func (ctx *Context) LookupInput(id string) *InputFieldState {
	return ctx.inputs.Get(id)
}
