/*
Package gui provides an immediate-mode GUI toolkit drawn through a small 2D
renderer interface, designed as idiomatic Go with a dedicated Context type.

# Overview

The UI is rebuilt every frame. Widgets are plain method calls on the frame's
Context that draw immediately and return their interaction result. State
that has to survive between frames (the text typed into a field, a
container's scroll offset) lives in registries keyed by the id the caller
passes, so the calling code stays stateless.

Coordinates are pixels with the origin at the top-left corner of the screen.
Colors are packed 0xAABBGGRR, see RGBA.

# Quick Start

	// Setup
	renderer, _ := opengl.NewRenderer(1280, 720)
	text, _ := font.NewDefault(renderer)
	ui := gui.New(renderer, text, gui.WithFPS(60))
	defer ui.Close()

	// Game loop
	for !window.ShouldClose() {
	    glfw.PollEvents()
	    input := adapter.Update()

	    ctx := ui.Begin(input, gui.Vec2{X: 1280, Y: 720})

	    ctx.Text("Hello World", &gui.Rect{X: 10, Y: 10, W: -1, H: 24}, gui.ColorWhite)
	    if ctx.Button("Click Me", gui.Rect{X: 10, Y: 40, W: 120, H: 32}, gui.ColorBlue, gui.ColorWhite) == gui.CursorClicked {
	        // Button was clicked
	    }
	    name := ctx.Input("name", gui.Rect{X: 10, Y: 80, W: 200, H: 28}, "Your name", gui.ColorWhite, gui.ColorBlack)

	    if err := ui.End(); err != nil {
	        log.Fatal(err)
	    }
	    window.SwapBuffers()
	}

# Collaborators

The toolkit draws nothing itself. It needs:

	Renderer        FillMesh, Blit, offscreen targets, DestroyTexture
	TextRasterizer  MeasureText and RasterizeText (package font)
	InputState      one snapshot per frame, filled by a backend adapter

Two backends are included: backend/opengl (go-gl with a GLFW input adapter)
and backend/ebitengine (Ebitengine). Renderers that batch draws implement
Flusher and are flushed by GUI.End.

# Widgets

Shapes:

	Rect(r, color, thickness)             Filled when thickness <= 0 (Filled), outlined otherwise
	Circle(center, radius, color, thick)  Filled disc or ring
	Line(p1, p2, color, thickness)        Hairline at thickness <= 1

Text:

	Text(str, &r, color)         Cached by (text, height, color); -1 derives a dimension
	TextDynamic(str, &r, color)  Rasterized and released within the call
	Image(tex, &r)               Caller-owned texture; -1 derives a dimension

Interaction:

	Button(label, r, bg, fg) CursorState     Outside, Hovering, Dragging or Clicked
	Input(id, r, placeholder, bg, fg) string Single-line field; value persists under id

Containers:

	BeginContainer(id, r) / EndContainer()  Vertically scrollable, clipped region
	Container(id, r)(func() { ... })        Scoped form, always closed

Inside a container widget coordinates are relative to the top of the
container's content. The content height grows to the lowest item drawn and
a scrollbar appears when it overflows. The mouse wheel scrolls the innermost
container under the cursor. IsRectVisible tells whether a rectangle would
show, so callers can skip building offscreen content.

# Pushed Styles

Per-call styling is pushed before the widget and consumed by it:

	ctx.PushRounding(6)
	ctx.PushOutlineStyle(1, gui.ColorWhite)
	ctx.Button("OK", r, bg, fg) // both styles consumed here
	ctx.Button("Cancel", r2, bg, fg) // plain again

Each pushed value is read at most once. A widget that doesn't use a style
leaves it for the next widget that does; anything unconsumed is dropped at
the next Begin. Custom widgets define their own keys with NewStyleKey and
read them with ConsumeStyle.

Built-in pushes: PushFontSize, PushTextAlign, PushAlignX, PushAlignY,
PushBorderRadius, PushRounding, PushPadding, PushPaddingRect,
PushOutlineStyle, PushDashStyle, PushAutoFocus, PushInputLock,
PushDefaultValue.

# Input Fields

A field focuses when clicked, on FocusInput, or on its first render after
PushAutoFocus. It blurs when the mouse is released outside it. While
focused typed characters are appended and backspace deletes the last
character, repeating about five times a second while held (see WithFPS).
Text that doesn't fit is trimmed from the left so the end stays visible.

	ctx.PushDefaultValue("guest")
	user := ctx.Input("user", r, "User", gui.ColorWhite, gui.ColorBlack)

	ctx.SetInputValue("user", "")  // programmatic update
	ctx.DestroyInput("user")       // drop state and texture

# Errors

Widget calls never return errors. Renderer and rasterizer failures are
logged, counted in Context.FrameErrors and the draw is skipped; the frame
goes on. Misuse such as EndContainer without BeginContainer is reported as
a *UsageError. Wrapped sentinels (ErrTextureCreateFailed,
ErrFontNotInitialized, ErrContainerUnderflow, ErrNoRenderer, ErrNoTexture)
can be matched with errors.Is against Context.LastError.

# Resources

Text textures are held in a TextureCache bounded by WithMaxLoadedTexts and
evicted least recently used first. Each input field owns the texture of its
visible text. GUI.Close releases both; call it before destroying the
renderer.

# Logging

Diagnostics go through log/slog. SetVerbose(true) enables debug output such
as cache evictions and skipped draws; SetLogger or WithLogger redirects it.
The font package logs through Logger unless given its own with
font.SetLogger.

# Threading

A GUI and everything it returns belong to the render thread. Nothing is
locked.
*/
package gui
