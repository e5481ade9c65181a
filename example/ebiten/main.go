// Example ebiten runs the toolkit inside an Ebitengine game.
//
//	go run ./example/ebiten/
package main

import (
	"fmt"
	"image/color"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/go-theft-auto/gui/v2"
	"github.com/go-theft-auto/gui/v2/backend/ebitengine"
	"github.com/go-theft-auto/gui/v2/font"
)

const (
	screenWidth  = 640
	screenHeight = 480
)

type game struct {
	ui       *gui.GUI
	renderer *ebitengine.Renderer
	input    *ebitengine.InputAdapter

	notes []string
	draft string
}

func (g *game) Update() error {
	g.input.Update()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 24, G: 24, B: 30, A: 255})
	g.renderer.SetScreen(screen)

	b := screen.Bounds()
	ctx := g.ui.Begin(g.input.Frame(), gui.Vec2{X: float32(b.Dx()), Y: float32(b.Dy())})

	ctx.PushRounding(4)
	g.draft = ctx.Input("draft", gui.Rect{X: 20, Y: 20, W: 440, H: 32}, "Write a note", gui.ColorWhite, gui.ColorBlack)

	ctx.PushRounding(4)
	if ctx.Button("Add", gui.Rect{X: 470, Y: 20, W: 150, H: 32}, gui.RGBA(50, 120, 70, 255), gui.ColorWhite) == gui.CursorClicked && g.draft != "" {
		g.notes = append(g.notes, g.draft)
		ctx.SetInputValue("draft", "")
	}

	ctx.PushOutlineStyle(1, gui.ColorGray)
	ctx.Rect(gui.Rect{X: 20, Y: 70, W: 600, H: 390}, gui.RGBA(36, 36, 44, 255), gui.Filled)
	ctx.Container("notes", gui.Rect{X: 20, Y: 70, W: 600, H: 390})(func() {
		for i, n := range g.notes {
			ctx.Text(fmt.Sprintf("%d. %s", i+1, n), &gui.Rect{X: 10, Y: float32(i)*28 + 8, W: -1, H: 22}, gui.ColorWhite)
		}
	})

	if err := g.ui.End(); err != nil {
		slog.Error("gui frame failed", "error", err)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func main() {
	renderer := ebitengine.NewRenderer()
	text, err := font.NewDefault(renderer)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	g := &game{
		ui:       gui.New(renderer, text, gui.WithFPS(ebiten.DefaultTPS)),
		renderer: renderer,
		input:    ebitengine.NewInputAdapter(),
	}
	defer g.ui.Close()

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("gui ebiten example")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
