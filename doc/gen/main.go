// Command gen renders every widget with sample data, captures framebuffer pixels,
// and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/gui/v2"
	"github.com/go-theft-auto/gui/v2/backend/opengl"
	"github.com/go-theft-auto/gui/v2/font"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single widget screenshot to capture.
type screenshot struct {
	name   string                 // filename without extension
	width  int                    // viewport width
	height int                    // viewport height
	draw   func(ctx *gui.Context) // widget drawing function
	frames int                    // extra frames to render (0 = default 2)
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
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(800, 600, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(800, 600)
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Delete()

	text, err := font.NewDefault(renderer)
	if err != nil {
		return fmt.Errorf("gui font: %w", err)
	}
	defer text.Close()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()

	for _, s := range shots {
		if err := capture(renderer, text, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(renderer *opengl.Renderer, text gui.TextRasterizer, s screenshot, outDir string) error {
	// Only update the renderer projection. GLFW processes window resizes
	// asynchronously, so the hidden window stays at 800x600 (larger than
	// every screenshot).
	renderer.Resize(s.width, s.height)

	// Fresh GUI per screenshot to avoid state leaking between captures.
	ui := gui.New(renderer, text)
	defer ui.Close()

	frames := 2
	if s.frames > 0 {
		frames = s.frames
	}

	for range frames {
		gl.Viewport(0, 0, int32(s.width), int32(s.height))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		displaySize := gui.Vec2{X: float32(s.width), Y: float32(s.height)}
		ctx := ui.Begin(gui.NewInputState(), displaySize)
		s.draw(ctx)
		if err := ui.End(); err != nil {
			return err
		}
	}

	// Read pixels
	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically (OpenGL origin is bottom-left)
	rowLen := s.width * 4
	tmp := make([]byte, rowLen)
	for y := range s.height / 2 {
		top := y * rowLen
		bot := (s.height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, pixels)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// buildScreenshots returns the list of all widget screenshots to generate.
func buildScreenshots() []screenshot {
	return []screenshot{
		{
			name: "text", width: 400, height: 140,
			draw: func(ctx *gui.Context) {
				ctx.Text("Plain text", &gui.Rect{X: 12, Y: 12, W: -1, H: 24}, gui.ColorWhite)
				ctx.Text("Colored text", &gui.Rect{X: 12, Y: 46, W: -1, H: 24}, gui.ColorYellow)
				ctx.Text("Stretched to 300px", &gui.Rect{X: 12, Y: 80, W: 300, H: -1}, gui.ColorLightGray)
			},
		},
		{
			name: "shapes", width: 400, height: 200,
			draw: func(ctx *gui.Context) {
				ctx.Rect(gui.Rect{X: 12, Y: 12, W: 100, H: 60}, gui.ColorBlue, gui.Filled)
				ctx.PushBorderRadius(gui.CornerRadii{TopLeft: 16, BottomRight: 16})
				ctx.PushOutlineStyle(2, gui.ColorWhite)
				ctx.Rect(gui.Rect{X: 124, Y: 12, W: 100, H: 60}, gui.ColorDarkGray, gui.Filled)
				ctx.PushRounding(8)
				ctx.PushDashStyle(6, 4)
				ctx.Rect(gui.Rect{X: 236, Y: 12, W: 140, H: 60}, gui.ColorGreen, 2)

				ctx.Circle(gui.Vec2{X: 60, Y: 140}, 40, gui.ColorYellow, gui.Filled)
				ctx.Circle(gui.Vec2{X: 170, Y: 140}, 40, gui.ColorRed, 4)
				ctx.Line(gui.Vec2{X: 236, Y: 110}, gui.Vec2{X: 376, Y: 170}, gui.ColorWhite, 2)
				ctx.PushDashStyle(8, 4)
				ctx.Line(gui.Vec2{X: 236, Y: 180}, gui.Vec2{X: 376, Y: 180}, gui.ColorLightGray, 1)
			},
		},
		{
			name: "button", width: 400, height: 80,
			draw: func(ctx *gui.Context) {
				ctx.Button("Default", gui.Rect{X: 12, Y: 12, W: 110, H: 36}, gui.RGBA(40, 90, 160, 255), gui.ColorWhite)
				ctx.PushRounding(8)
				ctx.PushPadding(8)
				ctx.Button("Rounded", gui.Rect{X: 134, Y: 12, W: 110, H: 36}, gui.RGBA(50, 120, 70, 255), gui.ColorWhite)
				ctx.PushOutlineStyle(1, gui.ColorWhite)
				ctx.PushTextAlign(gui.AlignStart, gui.AlignCenter)
				ctx.PushPadding(10)
				ctx.Button("Outlined", gui.Rect{X: 256, Y: 12, W: 130, H: 36}, gui.ColorTransparent, gui.ColorWhite)
			},
		},
		{
			name: "input", width: 400, height: 130,
			draw: func(ctx *gui.Context) {
				ctx.Input("empty", gui.Rect{X: 12, Y: 12, W: 300, H: 30}, "Placeholder", gui.ColorWhite, gui.ColorBlack)
				ctx.PushDefaultValue("Hello, world!")
				ctx.PushAutoFocus()
				ctx.Input("filled", gui.Rect{X: 12, Y: 52, W: 300, H: 30}, "", gui.ColorWhite, gui.ColorBlack)
				ctx.PushDefaultValue("Read only")
				ctx.PushInputLock()
				ctx.PushRounding(6)
				ctx.Input("locked", gui.Rect{X: 12, Y: 92, W: 300, H: 30}, "", gui.ColorWhite, gui.ColorBlack)
			},
		},
		{
			name: "container", width: 300, height: 240, frames: 3,
			draw: func(ctx *gui.Context) {
				vp := gui.Rect{X: 12, Y: 12, W: 276, H: 216}
				ctx.Rect(vp, gui.ColorDarkGray, gui.Filled)
				ctx.Container("list", vp)(func() {
					for i := range 20 {
						y := float32(i) * 30
						ctx.PushRounding(4)
						ctx.Rect(gui.Rect{X: 6, Y: y + 4, W: 250, H: 26}, gui.RGBA(60, 60, 70, 255), gui.Filled)
						ctx.Text(fmt.Sprintf("Item %d", i+1), &gui.Rect{X: 14, Y: y + 8, W: -1, H: 18}, gui.ColorWhite)
					}
				})
				ctx.ScrollContainer("list", 75)
			},
		},
	}
}
