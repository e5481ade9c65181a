// Package font rasterizes text into renderer textures for the gui package.
//
// A Rasterizer implements gui.TextRasterizer on golang.org/x/image. It parses
// one OpenType font, keeps a face per pixel height and hands finished
// *image.RGBA bitmaps to a gui.TextureUploader, so it works with any backend.
//
//	r, err := font.NewDefault(renderer)
//	if err != nil {
//	    return err
//	}
//	ui := gui.New(renderer, r)
//
// The pixel height passed to MeasureText and RasterizeText is the full line
// height (ascent plus descent) of the rendered text, not the em size.
package font

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"github.com/chewxy/math32"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/go-theft-auto/gui/v2"
)

var (
	// ErrNoUploader is returned by New without a texture uploader.
	ErrNoUploader = errors.New("font: no texture uploader")

	// ErrEmptyText is returned when the text has no visible extent.
	ErrEmptyText = errors.New("font: empty text")
)

// DefaultMaxFaces bounds how many pixel heights keep a live face.
const DefaultMaxFaces = 32

// referencePPEM is the em size the line height ratio is measured at.
const referencePPEM = 64

var logger *slog.Logger

// SetLogger gives the package its own logger. By default, and after
// SetLogger(nil), diagnostics go to gui.Logger.
func SetLogger(l *slog.Logger) {
	logger = l
}

func currentLogger() *slog.Logger {
	if logger != nil {
		return logger
	}
	return gui.Logger()
}

// Rasterizer measures and renders text with a single OpenType font.
// Like the rest of the toolkit it is used from the render thread only.
type Rasterizer struct {
	font     *opentype.Font
	uploader gui.TextureUploader

	// emPerLine converts a line height in pixels to an em size.
	emPerLine float32

	faces    map[fixed.Int26_6]xfont.Face
	maxFaces int
}

// Option configures a Rasterizer.
type Option func(*Rasterizer)

// WithMaxFaces caps the number of cached faces. Values below 1 are ignored.
func WithMaxFaces(n int) Option {
	return func(r *Rasterizer) {
		if n > 0 {
			r.maxFaces = n
		}
	}
}

// New parses ttf (TrueType or OpenType data) and returns a rasterizer that
// uploads through uploader.
func New(uploader gui.TextureUploader, ttf []byte, opts ...Option) (*Rasterizer, error) {
	if uploader == nil {
		return nil, ErrNoUploader
	}
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("font: parse: %w", err)
	}

	r := &Rasterizer{
		font:     f,
		uploader: uploader,
		faces:    make(map[fixed.Int26_6]xfont.Face),
		maxFaces: DefaultMaxFaces,
	}
	for _, opt := range opts {
		opt(r)
	}

	ref, err := opentype.NewFace(f, &opentype.FaceOptions{Size: referencePPEM, DPI: 72})
	if err != nil {
		return nil, fmt.Errorf("font: reference face: %w", err)
	}
	defer ref.Close()
	m := ref.Metrics()
	line := fixedToFloat(m.Ascent + m.Descent)
	if line <= 0 {
		return nil, fmt.Errorf("font: invalid metrics (ascent %v, descent %v)", m.Ascent, m.Descent)
	}
	r.emPerLine = referencePPEM / line
	return r, nil
}

// NewDefault returns a rasterizer for the embedded Go Regular font.
func NewDefault(uploader gui.TextureUploader, opts ...Option) (*Rasterizer, error) {
	return New(uploader, goregular.TTF, opts...)
}

// face returns the face whose line height is px, creating it on first use.
func (r *Rasterizer) face(px float32) (xfont.Face, error) {
	key := fixed.Int26_6(math32.Round(px * 64))
	if f, ok := r.faces[key]; ok {
		return f, nil
	}

	f, err := opentype.NewFace(r.font, &opentype.FaceOptions{
		Size:    float64(px * r.emPerLine),
		DPI:     72,
		Hinting: xfont.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("font: face at %vpx: %w", px, err)
	}

	if len(r.faces) >= r.maxFaces {
		r.evictFace()
	}
	r.faces[key] = f
	return f, nil
}

// evictFace drops one cached face.
func (r *Rasterizer) evictFace() {
	for k, f := range r.faces {
		_ = f.Close()
		delete(r.faces, k)
		currentLogger().Debug("font face evicted", "px", fixedToFloat(k))
		return
	}
}

// Faces returns how many pixel heights have a live face.
func (r *Rasterizer) Faces() int {
	return len(r.faces)
}

// HasGlyph reports whether the font has a glyph for ch.
func (r *Rasterizer) HasGlyph(ch rune) bool {
	idx, err := r.font.GlyphIndex(nil, ch)
	return err == nil && idx != 0
}

// MeasureText returns the advance width of text and the line height, which
// is always pixelHeight.
func (r *Rasterizer) MeasureText(text string, pixelHeight float32) (w, h float32) {
	if pixelHeight <= 0 {
		return 0, 0
	}
	if text == "" {
		return 0, pixelHeight
	}
	f, err := r.face(pixelHeight)
	if err != nil {
		currentLogger().Warn("font measure failed", "error", err)
		return 0, pixelHeight
	}
	return fixedToFloat(xfont.MeasureString(f, text)), pixelHeight
}

// RasterizeText renders text in color (packed 0xAABBGGRR) onto a
// transparent bitmap ceil(width) x ceil(pixelHeight) pixels large and
// uploads it.
func (r *Rasterizer) RasterizeText(text string, pixelHeight float32, c uint32) (gui.Texture, error) {
	img, err := r.Render(text, pixelHeight, c)
	if err != nil {
		return nil, err
	}
	tex, err := r.uploader.UploadImage(img)
	if err != nil {
		return nil, fmt.Errorf("font: upload %dx%d: %w", img.Bounds().Dx(), img.Bounds().Dy(), err)
	}
	return tex, nil
}

// Render draws text into a new image without uploading it.
func (r *Rasterizer) Render(text string, pixelHeight float32, c uint32) (*image.RGBA, error) {
	if text == "" || pixelHeight < 1 {
		return nil, ErrEmptyText
	}
	f, err := r.face(pixelHeight)
	if err != nil {
		return nil, err
	}

	adv := xfont.MeasureString(f, text)
	w := adv.Ceil()
	h := int(math32.Ceil(pixelHeight))
	if w < 1 {
		return nil, fmt.Errorf("%w: %q has no advance", ErrEmptyText, text)
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	d := xfont.Drawer{
		Dst:  img,
		Src:  image.NewUniform(unpack(c)),
		Face: f,
		Dot:  fixed.Point26_6{X: 0, Y: f.Metrics().Ascent},
	}
	d.DrawString(text)
	return img, nil
}

// Close releases every cached face.
func (r *Rasterizer) Close() error {
	var errs []error
	for k, f := range r.faces {
		if err := f.Close(); err != nil {
			errs = append(errs, err)
		}
		delete(r.faces, k)
	}
	return errors.Join(errs...)
}

// unpack converts a packed 0xAABBGGRR color.
func unpack(c uint32) color.NRGBA {
	r, g, b, a := gui.UnpackRGBA(c)
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

var _ gui.TextRasterizer = (*Rasterizer)(nil)
