// Example demonstrates the toolkit on GLFW and OpenGL: shapes, a button, a
// text input and a scrollable list.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/gui/v2"
	"github.com/go-theft-auto/gui/v2/backend/opengl"
	"github.com/go-theft-auto/gui/v2/font"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "gui example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()
	gui.SetVerbose(*verbose)

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Delete()

	text, err := font.NewDefault(renderer)
	if err != nil {
		return fmt.Errorf("gui font: %w", err)
	}
	defer text.Close()

	inputAdapter := opengl.NewGLFWInputAdapter(window)

	ui := gui.New(renderer, text, gui.WithFPS(60))
	defer ui.Close()

	app := &demo{}

	for !window.ShouldClose() {
		glfw.PollEvents()
		input := inputAdapter.Update()

		w, h := window.GetFramebufferSize()
		renderer.Resize(w, h)
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		ctx := ui.Begin(input, gui.Vec2{X: float32(w), Y: float32(h)})
		app.frame(ctx)
		if err := ui.End(); err != nil {
			return fmt.Errorf("gui render: %w", err)
		}

		window.SwapBuffers()
	}

	return nil
}

// demo is the application state.
type demo struct {
	clicks int
	name   string
}

func (d *demo) frame(ctx *gui.Context) {
	ctx.Text("gui demo", &gui.Rect{X: 20, Y: 16, W: -1, H: 28}, gui.ColorWhite)

	ctx.PushBorderRadius(6)
	if ctx.Button(fmt.Sprintf("Clicked %d times", d.clicks), gui.Rect{X: 20, Y: 60, W: 200, H: 36},
		gui.RGBA(40, 90, 160, 255), gui.ColorWhite) == gui.CursorClicked {
		d.clicks++
	}

	ctx.PushAutoFocus()
	d.name = ctx.Input("name", gui.Rect{X: 20, Y: 110, W: 200, H: 30}, "Your name", gui.ColorWhite, gui.ColorBlack)
	if d.name != "" {
		ctx.TextDynamic("Hello, "+d.name, &gui.Rect{X: 230, Y: 114, W: -1, H: 22}, gui.ColorLightGray)
	}

	ctx.Circle(gui.Vec2{X: 600, Y: 100}, 40, gui.ColorYellow, gui.Filled)
	ctx.PushDashStyle(6, 4)
	ctx.Rect(gui.Rect{X: 540, Y: 160, W: 120, H: 60}, gui.ColorGreen, 2)
	ctx.PushDashStyle(6, 4)
	ctx.Line(gui.Vec2{X: 540, Y: 240}, gui.Vec2{X: 660, Y: 240}, gui.ColorRed, 2)

	ctx.Rect(gui.Rect{X: 20, Y: 160, W: 300, H: 300}, gui.ColorDarkGray, gui.Filled)
	ctx.Container("rows", gui.Rect{X: 20, Y: 160, W: 300, H: 300})(func() {
		for i := range 30 {
			y := float32(i) * 32
			ctx.PushRounding(4)
			ctx.Rect(gui.Rect{X: 6, Y: y + 4, W: 280, H: 28}, gui.RGBA(60, 60, 70, 255), gui.Filled)
			ctx.Text(fmt.Sprintf("Row %d", i+1), &gui.Rect{X: 14, Y: y + 8, W: -1, H: 20}, gui.ColorWhite)
		}
	})
}
