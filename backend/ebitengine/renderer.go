// Package ebitengine provides a gui backend on top of Ebitengine.
//
// Build the GUI frame inside Game.Draw: hand the screen to the renderer with
// SetScreen, run the widget calls between GUI.Begin and GUI.End, and poll
// input in Game.Update through an InputAdapter.
package ebitengine

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/go-theft-auto/gui/v2"
)

var (
	// ErrNoScreen is returned when drawing before SetScreen.
	ErrNoScreen = errors.New("ebitengine: no screen set")

	// ErrForeignTexture is returned when a texture created by another
	// renderer is passed in.
	ErrForeignTexture = errors.New("ebitengine: texture not created by this renderer")
)

// Texture wraps an ebiten image.
type Texture struct {
	img *ebiten.Image
}

// Size returns the texture size in pixels.
func (t *Texture) Size() (int, int) {
	if t.img == nil {
		return 0, 0
	}
	b := t.img.Bounds()
	return b.Dx(), b.Dy()
}

// Image returns the wrapped image.
func (t *Texture) Image() *ebiten.Image { return t.img }

// whiteSubImage is an opaque white pixel used as the source of untextured
// triangles. It is cut from the middle of a 3x3 image so sampling never
// bleeds into the edge.
var whiteSubImage = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}()

// Renderer implements gui.Renderer on ebiten images.
//
// Released textures are deallocated at Flush since ebiten may still hold
// queued draws that read them.
type Renderer struct {
	screen     *ebiten.Image
	target     *ebiten.Image
	clearColor uint32
	graveyard  []*ebiten.Image

	vertices []ebiten.Vertex
}

// NewRenderer creates a renderer. Call SetScreen before each frame.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// SetScreen sets the image the frame is drawn onto and makes it the
// current target.
func (r *Renderer) SetScreen(screen *ebiten.Image) {
	r.screen = screen
	r.target = screen
}

// FillMesh draws an indexed triangle list with per-vertex colors.
func (r *Renderer) FillMesh(vertices []gui.Vertex, indices []uint16) error {
	if r.target == nil {
		return ErrNoScreen
	}
	if len(indices) == 0 {
		return nil
	}
	r.vertices = r.vertices[:0]
	for _, v := range vertices {
		cr, cg, cb, ca := gui.UnpackRGBA(v.Color)
		r.vertices = append(r.vertices, ebiten.Vertex{
			DstX:   v.Pos[0],
			DstY:   v.Pos[1],
			SrcX:   1,
			SrcY:   1,
			ColorR: float32(cr) / 255,
			ColorG: float32(cg) / 255,
			ColorB: float32(cb) / 255,
			ColorA: float32(ca) / 255,
		})
	}
	r.target.DrawTriangles(r.vertices, indices, whiteSubImage, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
	return nil
}

// Blit draws src (the whole texture when nil) of tex stretched into dst.
func (r *Renderer) Blit(tex gui.Texture, src *gui.Rect, dst gui.Rect) error {
	if r.target == nil {
		return ErrNoScreen
	}
	t, ok := tex.(*Texture)
	if !ok || t == nil || t.img == nil {
		return ErrForeignTexture
	}

	img := t.img
	if src != nil {
		rect := image.Rect(int(src.X), int(src.Y), int(src.Right()+0.5), int(src.Bottom()+0.5))
		if rect.Empty() {
			return nil
		}
		img = img.SubImage(rect).(*ebiten.Image)
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 || dst.Empty() {
		return nil
	}

	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	op.GeoM.Scale(float64(dst.W)/float64(b.Dx()), float64(dst.H)/float64(b.Dy()))
	op.GeoM.Translate(float64(dst.X), float64(dst.Y))
	r.target.DrawImage(img, op)
	return nil
}

// CreateOffscreenTarget allocates a transparent image.
func (r *Renderer) CreateOffscreenTarget(w, h int) (gui.Texture, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("ebitengine: invalid target size %dx%d", w, h)
	}
	return &Texture{img: ebiten.NewImage(w, h)}, nil
}

// SetRenderTarget redirects drawing to tex, or to the screen when nil.
func (r *Renderer) SetRenderTarget(tex gui.Texture) error {
	if tex == nil {
		if r.screen == nil {
			return ErrNoScreen
		}
		r.target = r.screen
		return nil
	}
	t, ok := tex.(*Texture)
	if !ok || t == nil || t.img == nil {
		return ErrForeignTexture
	}
	r.target = t.img
	return nil
}

// SetDrawColor sets the color used by Clear.
func (r *Renderer) SetDrawColor(c uint32) {
	r.clearColor = c
}

// Clear fills the current target with the draw color.
func (r *Renderer) Clear() error {
	if r.target == nil {
		return ErrNoScreen
	}
	cr, cg, cb, ca := gui.UnpackRGBA(r.clearColor)
	if ca == 0 {
		r.target.Clear()
		return nil
	}
	r.target.Fill(color.NRGBA{R: cr, G: cg, B: cb, A: ca})
	return nil
}

// DestroyTexture schedules tex for deallocation at the next Flush.
func (r *Renderer) DestroyTexture(tex gui.Texture) {
	if t, ok := tex.(*Texture); ok && t != nil && t.img != nil {
		r.graveyard = append(r.graveyard, t.img)
		t.img = nil
	}
}

// UploadImage creates a texture from an RGBA image.
func (r *Renderer) UploadImage(img *image.RGBA) (gui.Texture, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, errors.New("ebitengine: empty image")
	}
	return &Texture{img: ebiten.NewImageFromImage(img)}, nil
}

// Flush deallocates textures released during the frame and points the
// renderer back at the screen.
func (r *Renderer) Flush() error {
	for i, img := range r.graveyard {
		img.Deallocate()
		r.graveyard[i] = nil
	}
	r.graveyard = r.graveyard[:0]
	r.target = r.screen
	return nil
}

var (
	_ gui.Renderer        = (*Renderer)(nil)
	_ gui.Flusher         = (*Renderer)(nil)
	_ gui.TextureUploader = (*Renderer)(nil)
)
