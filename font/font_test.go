package font_test

import (
	"bytes"
	"errors"
	"image"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/gui/v2"
	"github.com/go-theft-auto/gui/v2/font"
)

type fakeTexture struct {
	img *image.RGBA
}

func (t *fakeTexture) Size() (int, int) {
	b := t.img.Bounds()
	return b.Dx(), b.Dy()
}

type fakeUploader struct {
	uploads []*image.RGBA
	err     error
}

func (u *fakeUploader) UploadImage(img *image.RGBA) (gui.Texture, error) {
	if u.err != nil {
		return nil, u.err
	}
	u.uploads = append(u.uploads, img)
	return &fakeTexture{img: img}, nil
}

func newRasterizer(t *testing.T, opts ...font.Option) (*font.Rasterizer, *fakeUploader) {
	t.Helper()
	up := &fakeUploader{}
	r, err := font.NewDefault(up, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })
	return r, up
}

func TestNewRequiresUploader(t *testing.T) {
	_, err := font.NewDefault(nil)
	assert.ErrorIs(t, err, font.ErrNoUploader)
}

func TestNewRejectsGarbage(t *testing.T) {
	_, err := font.New(&fakeUploader{}, []byte("not a font"))
	assert.Error(t, err)
}

func TestMeasureTextHeightIsPixelHeight(t *testing.T) {
	r, _ := newRasterizer(t)

	for _, px := range []float32{8, 16, 23, 64} {
		w, h := r.MeasureText("Hello", px)
		assert.Equal(t, px, h)
		assert.Greater(t, w, float32(0))
	}
}

func TestMeasureTextScalesWithHeight(t *testing.T) {
	r, _ := newRasterizer(t)

	w16, _ := r.MeasureText("scroll", 16)
	w32, _ := r.MeasureText("scroll", 32)
	assert.InDelta(t, 2*w16, w32, 2)

	short, _ := r.MeasureText("ab", 20)
	long, _ := r.MeasureText("abcdef", 20)
	assert.Greater(t, long, short)
}

func TestMeasureTextEdgeCases(t *testing.T) {
	r, _ := newRasterizer(t)

	w, h := r.MeasureText("", 20)
	assert.Zero(t, w)
	assert.Equal(t, float32(20), h)

	w, h = r.MeasureText("x", 0)
	assert.Zero(t, w)
	assert.Zero(t, h)
}

func TestRasterizeTextUploadsBitmap(t *testing.T) {
	r, up := newRasterizer(t)

	tex, err := r.RasterizeText("Go", 20, gui.ColorRed)
	require.NoError(t, err)
	require.Len(t, up.uploads, 1)

	w, h := tex.Size()
	mw, _ := r.MeasureText("Go", 20)
	assert.Equal(t, 20, h)
	assert.InDelta(t, mw, float32(w), 1)

	// Some pixel is covered and carries the requested hue.
	img := up.uploads[0]
	covered := false
	for y := 0; y < img.Bounds().Dy() && !covered; y++ {
		for x := 0; x < img.Bounds().Dx(); x++ {
			c := img.RGBAAt(x, y)
			if c.A == 0 {
				continue
			}
			covered = true
			assert.Equal(t, c.A, c.R, "premultiplied red")
			assert.Zero(t, c.G)
			assert.Zero(t, c.B)
			break
		}
	}
	assert.True(t, covered)
}

func TestRasterizeTextErrors(t *testing.T) {
	r, up := newRasterizer(t)

	_, err := r.RasterizeText("", 20, gui.ColorWhite)
	assert.ErrorIs(t, err, font.ErrEmptyText)

	_, err = r.RasterizeText("x", 0.5, gui.ColorWhite)
	assert.ErrorIs(t, err, font.ErrEmptyText)

	boom := errors.New("gpu lost")
	up.err = boom
	_, err = r.RasterizeText("x", 20, gui.ColorWhite)
	assert.ErrorIs(t, err, boom)
}

func TestFaceCacheIsBounded(t *testing.T) {
	r, _ := newRasterizer(t, font.WithMaxFaces(2))

	r.MeasureText("a", 10)
	r.MeasureText("a", 10)
	assert.Equal(t, 1, r.Faces())

	r.MeasureText("a", 11)
	r.MeasureText("a", 12)
	assert.Equal(t, 2, r.Faces())

	require.NoError(t, r.Close())
	assert.Zero(t, r.Faces())
}

func TestHasGlyph(t *testing.T) {
	r, _ := newRasterizer(t)
	assert.True(t, r.HasGlyph('A'))
	assert.False(t, r.HasGlyph('\U0010FFFD'))
}

func TestDiagnosticsFollowGUILogger(t *testing.T) {
	var buf bytes.Buffer
	gui.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { gui.SetLogger(nil) })

	r, _ := newRasterizer(t, font.WithMaxFaces(1))
	r.MeasureText("a", 10)
	r.MeasureText("a", 20)
	assert.Contains(t, buf.String(), "font face evicted")

	var own bytes.Buffer
	font.SetLogger(slog.New(slog.NewTextHandler(&own, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { font.SetLogger(nil) })
	buf.Reset()
	r.MeasureText("a", 30)
	assert.Contains(t, own.String(), "font face evicted")
	assert.Empty(t, buf.String())
}
