package gui

import "log/slog"

// DefaultFPS is the frame rate assumed for caret blinking and key repeat
// when WithFPS isn't given.
const DefaultFPS = 60

// GUI manages the immediate mode UI system.
type GUI struct {
	renderer Renderer
	text     TextRasterizer
	style    Style
	ctx      *Context

	fps            int
	maxLoadedTexts int
	arcSegments    int
	closed         bool
}

// GUIOption configures a GUI instance.
type GUIOption func(*GUI)

// WithStyle sets the GUI style.
func WithStyle(style Style) GUIOption {
	return func(g *GUI) { g.style = style }
}

// WithFPS sets the frame rate the application runs at. It drives the caret
// blink period and the backspace repeat rate, both counted in frames.
func WithFPS(fps int) GUIOption {
	return func(g *GUI) {
		if fps > 0 {
			g.fps = fps
		}
	}
}

// WithMaxLoadedTexts caps the number of cached text textures.
// 0 means unbounded.
func WithMaxLoadedTexts(n int) GUIOption {
	return func(g *GUI) {
		if n >= 0 {
			g.maxLoadedTexts = n
		}
	}
}

// WithArcSegments sets the number of segments per rounded corner.
func WithArcSegments(n int) GUIOption {
	return func(g *GUI) {
		if n > 0 {
			g.arcSegments = n
		}
	}
}

// WithLogger routes GUI diagnostics to logger, including those of the font
// package unless it has its own logger set.
func WithLogger(logger *slog.Logger) GUIOption {
	return func(*GUI) { SetLogger(logger) }
}

// New creates a new GUI instance. text may be nil, in which case text
// widgets report ErrFontNotInitialized and draw nothing.
func New(renderer Renderer, text TextRasterizer, opts ...GUIOption) *GUI {
	g := &GUI{
		renderer:       renderer,
		text:           text,
		style:          DefaultStyle(),
		fps:            DefaultFPS,
		maxLoadedTexts: DefaultMaxLoadedTexts,
		arcSegments:    DefaultArcSegments,
	}

	for _, opt := range opts {
		opt(g)
	}

	if renderer == nil {
		guiLogger.Error("gui created without a renderer", "error", ErrNoRenderer)
	}

	g.ctx = newContext(renderer, text, g.maxLoadedTexts)
	g.ctx.fps = g.fps
	g.ctx.arcSegments = g.arcSegments
	return g
}

// Begin starts a new frame and returns the GUI context.
// Call this at the start of each frame, after the input snapshot for the
// frame is complete and before drawing any UI.
func (g *GUI) Begin(input *InputState, displaySize Vec2) *Context {
	ctx := g.ctx
	if ctx.inFrame {
		guiLogger.Warn("Begin called twice without End", "frame", ctx.FrameCount)
		ctx.finish()
	}
	ctx.SetStyle(g.style)
	ctx.text = g.text
	ctx.reset(input, displaySize)
	return ctx
}

// End finishes the frame. Containers left open are closed with a warning.
// If the renderer batches draws (implements Flusher) it is flushed here and
// its error returned.
func (g *GUI) End() error {
	ctx := g.ctx
	if !ctx.inFrame {
		return nil
	}
	ctx.finish()

	if f, ok := g.renderer.(Flusher); ok {
		return f.Flush()
	}
	return nil
}

// Close releases every cached text texture and every compiled input
// texture. Widget state is dropped. The GUI must not be used afterwards.
func (g *GUI) Close() {
	if g.closed {
		return
	}
	g.closed = true

	ctx := g.ctx
	ctx.texts.Clear()
	ctx.inputs.Range(func(_ string, st *InputFieldState) bool {
		st.releaseCompiled()
		return true
	})
	ctx.inputs.Clear()
	ctx.containers.Clear()
	guiLogger.Debug("gui closed", "frames", ctx.FrameCount)
}

// Context returns the GUI context.
// Widget calls are only valid between Begin() and End().
func (g *GUI) Context() *Context {
	return g.ctx
}

// Style returns the current GUI style.
func (g *GUI) Style() Style {
	return g.style
}

// SetStyle sets the GUI style. It takes effect on the next Begin.
func (g *GUI) SetStyle(style Style) {
	g.style = style
}

// SetTextRasterizer replaces the font collaborator. Cached text textures
// rasterized by the previous one are dropped.
func (g *GUI) SetTextRasterizer(text TextRasterizer) {
	g.text = text
	g.ctx.text = text
	g.ctx.texts.Clear()
}

// TextCacheStats returns the text texture cache counters.
func (g *GUI) TextCacheStats() TextureCacheStats {
	return g.ctx.texts.Stats()
}
