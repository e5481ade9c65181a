package gui

import (
	"fmt"

	"github.com/chewxy/math32"
)

// CursorState is how the mouse relates to a widget in the current frame.
type CursorState int

const (
	CursorOutside  CursorState = iota // Not over the widget
	CursorHovering                    // Over the widget
	CursorDragging                    // Over the widget, left button held and moved since the press
	CursorClicked                     // Over the widget, left button released this frame
)

func (s CursorState) String() string {
	switch s {
	case CursorOutside:
		return "outside"
	case CursorHovering:
		return "hovering"
	case CursorDragging:
		return "dragging"
	case CursorClicked:
		return "clicked"
	default:
		return fmt.Sprintf("CursorState(%d)", int(s))
	}
}

// minTextArea is the smallest padded area a label is fitted into before
// padding on that axis is dropped.
const minTextArea = 10

// Button draws a button with a centered label and returns the cursor state.
// The result depends only on r and the frame's input, so calling Button
// twice in a frame with the same arguments returns the same state.
//
// Consumes pushed styles: font size, text align (default center), border
// radius, padding, outline.
func (ctx *Context) Button(label string, r Rect, bg, fg uint32) CursorState {
	fontSize, _ := ConsumeStyle(ctx.styles, StyleFontSize)
	alignX, _ := ConsumeStyle(ctx.styles, StyleAlignX)
	alignY, _ := ConsumeStyle(ctx.styles, StyleAlignY)
	radii, _ := ConsumeStyle(ctx.styles, StyleBorderRadius)
	pad, _ := ConsumeStyle(ctx.styles, StylePadding)
	outline, _ := ConsumeStyle(ctx.styles, StyleOutline)

	if r.W < 1 || r.H < 1 {
		return CursorOutside
	}

	state := ctx.cursorState(r)
	if !ctx.ready("Button") {
		return state
	}

	meshes := []Mesh{ctx.rectMesh(r, radii, bg, Filled, DashStyle{})}
	if state != CursorOutside && ctx.style.ButtonHoverTint > 0 {
		meshes = append(meshes, ctx.rectMesh(r, radii, WithAlpha(ColorWhite, ctx.style.ButtonHoverTint), Filled, DashStyle{}))
	}
	if outline.Enabled() {
		meshes = append(meshes, ctx.rectMesh(r, radii, outline.Color, outline.Thickness, DashStyle{}))
	}
	ctx.fillMeshes("Button", meshes...)

	if label == "" || !ctx.fontReady("Button") {
		return state
	}

	if fontSize <= 0 {
		fontSize, pad = ctx.fitLabel(label, r, pad)
	}
	fontSize = math32.Round(fontSize)
	if fontSize < 1 {
		return state
	}

	entry, err := ctx.cachedText(label, fontSize, fg)
	if err != nil {
		ctx.reportError("Button", err)
		return state
	}
	textRect := Rect{H: fontSize}
	if entry.Height > 0 {
		textRect.W = fontSize * entry.Width / entry.Height
	}
	if alignX == AlignUnset {
		alignX = AlignCenter
	}
	if alignY == AlignUnset {
		alignY = AlignCenter
	}
	textRect = placeText(r, textRect.W, textRect.H, pad, alignX, alignY)
	ctx.blitTexture(entry.Texture(), textRect)

	return state
}

// fitLabel picks the largest pixel height at which label fits inside r minus
// padding. Padding on an axis is dropped when it leaves less than
// minTextArea pixels.
func (ctx *Context) fitLabel(label string, r Rect, pad Padding) (float32, Padding) {
	validW := r.W - pad.Horizontal()
	validH := r.H - pad.Vertical()
	if validW < minTextArea {
		validW = r.W
		pad.Left, pad.Right = 0, 0
	}
	if validH < minTextArea {
		validH = r.H
		pad.Top, pad.Bottom = 0, 0
	}
	if ctx.measureText(label, validH).X > validW {
		return ctx.textHeightForWidth(label, validW), pad
	}
	return validH, pad
}

// placeText positions a w x h text box inside r according to the alignment.
// Start and end alignments respect padding; center ignores it.
func placeText(r Rect, w, h float32, pad Padding, alignX, alignY Align) Rect {
	out := Rect{W: w, H: h}
	switch alignX {
	case AlignCenter:
		out.X = r.X + r.W/2 - w/2
	case AlignEnd:
		out.X = r.Right() - pad.Right - w
	default:
		out.X = r.X + pad.Left
	}
	switch alignY {
	case AlignCenter:
		out.Y = r.Y + r.H/2 - h/2
	case AlignEnd:
		out.Y = r.Bottom() - pad.Bottom - h
	default:
		out.Y = r.Y + pad.Top
	}
	return out
}

// cursorState classifies the mouse against r for this frame.
func (ctx *Context) cursorState(r Rect) CursorState {
	if !ctx.isHovered(r) {
		return CursorOutside
	}
	in := ctx.input
	if in.MouseReleased(MouseButtonLeft) {
		return CursorClicked
	}
	if in.MouseDown(MouseButtonLeft) {
		if d := in.MouseDragDelta(MouseButtonLeft); d.X != 0 || d.Y != 0 {
			return CursorDragging
		}
	}
	return CursorHovering
}
