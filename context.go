package gui

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
)

// Context holds all state for UI rendering in a single frame.
// This is NOT context.Context - it's a dedicated GUI context type.
//
// A Context is bound to one render thread. Every widget call must happen on
// that thread between GUI.Begin and GUI.End; nothing here is locked.
type Context struct {
	renderer Renderer
	text     TextRasterizer

	// Styling
	style  Style
	styles *StyleStack // One-shot pushed styles

	// Input (read-only during frame)
	input *InputState

	// Screen
	DisplaySize Vec2

	// Frame info
	FrameCount uint64

	fps         int
	arcSegments int

	// Resources and widget state (persisted between frames)
	texts      *TextureCache[TextKey]
	inputs     *Registry[string, InputFieldState]
	containers *Registry[string, ContainerState]

	// Active containers, innermost last
	containerStack []*containerFrame
	wheelConsumed  bool // A container already scrolled this frame

	// Errors reported during the current frame
	frameErrors int
	lastError   error

	// Input capture flags (output from GUI to application)
	// These tell the application whether GUI wants to consume input.
	WantCaptureMouse    bool // True if mouse is over any GUI element
	WantCaptureKeyboard bool // True if a text input has focus

	inFrame bool
}

// containerFrame is one entry of the active container stack.
type containerFrame struct {
	id    string
	state *ContainerState

	// clip is the part of the viewport visible through every parent,
	// in screen coordinates. Only the vertical extent is clipped.
	clip Rect

	// clipShift is how far clip's top sits below the viewport's top.
	clipShift float32

	hidden bool // Entirely clipped away by a parent
}

// newContext creates a context with its caches and registries.
func newContext(renderer Renderer, text TextRasterizer, maxLoadedTexts int) *Context {
	return &Context{
		renderer:    renderer,
		text:        text,
		style:       DefaultStyle(),
		styles:      NewStyleStack(),
		input:       NewInputState(),
		fps:         DefaultFPS,
		arcSegments: DefaultArcSegments,
		texts:       NewTextureCache[TextKey](maxLoadedTexts),
		inputs:      NewRegistry[string, InputFieldState](),
		containers:  NewRegistry[string, ContainerState](),
	}
}

// Style returns the current style.
func (ctx *Context) Style() Style {
	return ctx.style
}

// SetStyle sets the base style.
func (ctx *Context) SetStyle(style Style) {
	ctx.style = style
}

// Styles returns the pushed style stack. Custom widgets can define their own
// StyleKey and consume it from here.
func (ctx *Context) Styles() *StyleStack {
	return ctx.styles
}

// InputState returns the input snapshot of the current frame.
func (ctx *Context) InputState() *InputState {
	return ctx.input
}

// FPS returns the frame rate used for caret blinking and key repeat.
func (ctx *Context) FPS() int {
	return ctx.fps
}

// TextCache returns the text texture cache.
func (ctx *Context) TextCache() *TextureCache[TextKey] {
	return ctx.texts
}

// FrameErrors returns how many draw failures were reported this frame.
func (ctx *Context) FrameErrors() int {
	return ctx.frameErrors
}

// LastError returns the most recent reported failure, or nil.
func (ctx *Context) LastError() error {
	return ctx.lastError
}

// reportError logs a widget failure and records it. Widget calls never return
// errors; the failed draw is skipped and the frame continues.
func (ctx *Context) reportError(op string, err error) {
	ctx.frameErrors++
	ctx.lastError = err

	var usage *UsageError
	if errors.As(err, &usage) || errors.Is(err, ErrFontNotInitialized) {
		guiLogger.Error("gui usage error", "op", op, "frame", ctx.FrameCount, "error", err)
		return
	}
	guiLogger.Warn("gui draw failed", "op", op, "frame", ctx.FrameCount, "error", err)
}

// ready reports whether draw calls can reach a renderer.
func (ctx *Context) ready(op string) bool {
	if ctx.renderer != nil {
		return true
	}
	ctx.reportError(op, &UsageError{Op: op, Err: ErrNoRenderer})
	return false
}

// fontReady reports whether text can be measured and rasterized.
func (ctx *Context) fontReady(op string) bool {
	if ctx.text != nil {
		return true
	}
	ctx.reportError(op, &UsageError{Op: op, Err: ErrFontNotInitialized})
	return false
}

// reset prepares the context for a new frame.
func (ctx *Context) reset(input *InputState, displaySize Vec2) {
	if input == nil {
		input = NewInputState()
	}
	ctx.input = input
	ctx.DisplaySize = displaySize
	ctx.FrameCount++
	ctx.texts.SetFrame(ctx.FrameCount)

	ctx.styles.Reset()
	ctx.containerStack = ctx.containerStack[:0]
	ctx.wheelConsumed = false
	ctx.frameErrors = 0
	ctx.lastError = nil

	// Reset input capture flags - widgets will set these during the frame
	ctx.WantCaptureMouse = false
	ctx.WantCaptureKeyboard = false
	ctx.inFrame = true
}

// finish closes leaked containers and publishes focus state to the input.
func (ctx *Context) finish() {
	for len(ctx.containerStack) > 0 {
		top := ctx.containerStack[len(ctx.containerStack)-1]
		guiLogger.Warn("container left open at end of frame", "id", top.id, "frame", ctx.FrameCount)
		ctx.EndContainer()
	}

	focused := false
	ctx.inputs.Range(func(_ string, st *InputFieldState) bool {
		focused = st.Focused
		return !focused
	})
	ctx.input.TextInputActive = focused
	if focused {
		ctx.WantCaptureKeyboard = true
	}
	ctx.inFrame = false
}

// currentContainer returns the innermost active container, or nil.
func (ctx *Context) currentContainer() *containerFrame {
	if n := len(ctx.containerStack); n > 0 {
		return ctx.containerStack[n-1]
	}
	return nil
}

// toScreen maps an item rectangle to the part of the screen it occupies,
// honoring the active container. ok is false when nothing is visible.
func (ctx *Context) toScreen(item Rect) (Rect, bool) {
	c := ctx.currentContainer()
	if c == nil {
		return item, !item.Empty()
	}
	if c.hidden {
		return Rect{}, false
	}
	vp := c.state.Viewport
	dst := item.Translate(vp.X, vp.Y-c.state.ScrollOffset)
	vis := dst.Intersect(c.clip)
	return vis, !vis.Empty()
}

// isHovered returns true if the visible part of the item is under the mouse.
func (ctx *Context) isHovered(item Rect) bool {
	if ctx.input == nil {
		return false
	}
	vis, ok := ctx.toScreen(item)
	if !ok {
		return false
	}
	hovered := vis.Contains(ctx.input.MousePos())
	if hovered {
		ctx.WantCaptureMouse = true
	}
	return hovered
}

// IsHovered returns true if the item is under the mouse cursor (public API).
// Inside a container item is in content coordinates.
func (ctx *Context) IsHovered(item Rect) bool {
	return ctx.isHovered(item)
}

// measureText returns the size of str at the given pixel height.
func (ctx *Context) measureText(str string, px float32) Vec2 {
	if ctx.text == nil || str == "" {
		return Vec2{}
	}
	w, h := ctx.text.MeasureText(str, px)
	return Vec2{w, h}
}

// MeasureText returns the size of rendered text at the given pixel height.
func (ctx *Context) MeasureText(str string, px float32) Vec2 {
	if !ctx.fontReady("MeasureText") {
		return Vec2{}
	}
	return ctx.measureText(str, px)
}

// cachedText returns the cached texture for (str, px, color), rasterizing it
// on a miss.
func (ctx *Context) cachedText(str string, px float32, color uint32) (*CachedTexture, error) {
	key := TextKey{Text: str, Size: px, Color: color}
	return ctx.texts.GetOrCreate(key, func() (*TextureHandle, error) {
		tex, err := ctx.text.RasterizeText(str, px, color)
		if err != nil {
			return nil, err
		}
		return NewTextureHandle(tex, ctx.renderer.DestroyTexture), nil
	})
}

// rasterize creates an uncached text texture owned by the caller.
func (ctx *Context) rasterize(str string, px float32, color uint32) (*TextureHandle, error) {
	tex, err := ctx.text.RasterizeText(str, px, color)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTextureCreateFailed, err)
	}
	if tex == nil {
		return nil, fmt.Errorf("%w: rasterizer returned no texture", ErrTextureCreateFailed)
	}
	return NewTextureHandle(tex, ctx.renderer.DestroyTexture), nil
}

// fillMesh draws a mesh, going through a scratch target when a container
// is active so it can be clipped like any other item.
func (ctx *Context) fillMesh(op string, m Mesh) {
	if m.Empty() {
		return
	}
	if ctx.currentContainer() == nil {
		if err := ctx.renderer.FillMesh(m.Vertices, m.Indices); err != nil {
			ctx.reportError(op, err)
		}
		return
	}
	ctx.fillMeshComposited(op, m)
}

// fillMeshes draws meshes in order, merging neighbours while they fit one
// 16-bit index range.
func (ctx *Context) fillMeshes(op string, meshes ...Mesh) {
	var cur Mesh
	for _, m := range meshes {
		if m.Empty() {
			continue
		}
		if !cur.Append(m) {
			ctx.fillMesh(op, cur)
			cur = m
		}
	}
	ctx.fillMesh(op, cur)
}

// fillMeshComposited renders m into a scratch target sized to its bounds and
// blits the result through the compositor. The scratch texture is released
// before returning.
func (ctx *Context) fillMeshComposited(op string, m Mesh) {
	b := meshBounds(m)
	x0, y0 := math32.Floor(b.X), math32.Floor(b.Y)
	w := math32.Ceil(b.Right()) - x0
	h := math32.Ceil(b.Bottom()) - y0
	if w < 1 || h < 1 {
		return
	}
	item := Rect{X: x0, Y: y0, W: w, H: h}

	plan := ctx.planBlit(item, w, h)
	if !plan.Visible() {
		return
	}

	tex, err := ctx.renderer.CreateOffscreenTarget(int(w), int(h))
	if err != nil {
		ctx.reportError(op, fmt.Errorf("%w: %w", ErrTextureCreateFailed, err))
		return
	}
	scratch := NewTextureHandle(tex, ctx.renderer.DestroyTexture)
	defer scratch.Release()

	if err := ctx.renderer.SetRenderTarget(tex); err != nil {
		ctx.reportError(op, err)
		return
	}
	ctx.renderer.SetDrawColor(ColorTransparent)
	if err := ctx.renderer.Clear(); err != nil {
		ctx.reportError(op, err)
	}
	m.Translate(-x0, -y0)
	if err := ctx.renderer.FillMesh(m.Vertices, m.Indices); err != nil {
		ctx.reportError(op, err)
	}
	if err := ctx.renderer.SetRenderTarget(nil); err != nil {
		ctx.reportError(op, err)
		return
	}
	if err := ctx.renderer.Blit(tex, plan.Src, plan.Dst); err != nil {
		ctx.reportError(op, err)
	}
}

// meshBounds returns the bounding box of a mesh's vertices.
func meshBounds(m Mesh) Rect {
	if len(m.Vertices) == 0 {
		return Rect{}
	}
	minX, minY := m.Vertices[0].Pos[0], m.Vertices[0].Pos[1]
	maxX, maxY := minX, minY
	for _, v := range m.Vertices[1:] {
		minX = minf(minX, v.Pos[0])
		minY = minf(minY, v.Pos[1])
		maxX = maxf(maxX, v.Pos[0])
		maxY = maxf(maxY, v.Pos[1])
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}
