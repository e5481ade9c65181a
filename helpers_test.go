package gui_test

import (
	"errors"
	"testing"

	"github.com/go-theft-auto/gui/v2"
)

var errInjected = errors.New("injected failure")

// mockTexture is a texture handed out by mockRenderer and fakeText.
type mockTexture struct {
	id     int
	w, h   int
	target bool
}

func (t *mockTexture) Size() (int, int) { return t.w, t.h }

type blitCall struct {
	tex *mockTexture
	src *gui.Rect
	dst gui.Rect
}

// mockRenderer records every call instead of drawing.
type mockRenderer struct {
	nextID int

	meshes     int
	triangles  int
	badIndices int // indices past the end of their mesh's vertices
	blits     []blitCall
	targets   []gui.Texture // SetRenderTarget arguments, nil = screen
	clears    int
	destroyed []*mockTexture
	flushes   int

	failOffscreen bool
	failBlit      bool
}

func (m *mockRenderer) texture(w, h int, target bool) *mockTexture {
	m.nextID++
	return &mockTexture{id: m.nextID, w: w, h: h, target: target}
}

func (m *mockRenderer) FillMesh(vertices []gui.Vertex, indices []uint16) error {
	m.meshes++
	m.triangles += len(indices) / 3
	for _, idx := range indices {
		if int(idx) >= len(vertices) {
			m.badIndices++
		}
	}
	return nil
}

func (m *mockRenderer) Blit(tex gui.Texture, src *gui.Rect, dst gui.Rect) error {
	if m.failBlit {
		return errInjected
	}
	var s *gui.Rect
	if src != nil {
		cp := *src
		s = &cp
	}
	m.blits = append(m.blits, blitCall{tex: tex.(*mockTexture), src: s, dst: dst})
	return nil
}

func (m *mockRenderer) CreateOffscreenTarget(w, h int) (gui.Texture, error) {
	if m.failOffscreen {
		return nil, errInjected
	}
	return m.texture(w, h, true), nil
}

func (m *mockRenderer) SetRenderTarget(tex gui.Texture) error {
	m.targets = append(m.targets, tex)
	return nil
}

func (m *mockRenderer) SetDrawColor(uint32) {}

func (m *mockRenderer) Clear() error {
	m.clears++
	return nil
}

func (m *mockRenderer) DestroyTexture(tex gui.Texture) {
	m.destroyed = append(m.destroyed, tex.(*mockTexture))
}

func (m *mockRenderer) Flush() error {
	m.flushes++
	return nil
}

// textBlits returns the blits of textures that aren't scratch targets.
func (m *mockRenderer) textBlits() []blitCall {
	var out []blitCall
	for _, b := range m.blits {
		if !b.tex.target {
			out = append(out, b)
		}
	}
	return out
}

func (m *mockRenderer) resetCalls() {
	m.meshes, m.triangles, m.badIndices, m.clears, m.flushes = 0, 0, 0, 0, 0
	m.blits, m.targets, m.destroyed = nil, nil, nil
}

// fakeText measures every rune as half the pixel height wide.
type fakeText struct {
	r *mockRenderer

	rasterized []string
	fail       bool
}

func (f *fakeText) MeasureText(text string, px float32) (float32, float32) {
	if px <= 0 {
		return 0, 0
	}
	return float32(len([]rune(text))) * px * 0.5, px
}

func (f *fakeText) RasterizeText(text string, px float32, _ uint32) (gui.Texture, error) {
	if f.fail {
		return nil, errInjected
	}
	f.rasterized = append(f.rasterized, text)
	w, h := f.MeasureText(text, px)
	return f.r.texture(int(w), int(h), false), nil
}

// harness drives a GUI frame by frame.
type harness struct {
	t     *testing.T
	r     *mockRenderer
	text  *fakeText
	ui    *gui.GUI
	input *gui.InputState
}

func newHarness(t *testing.T, opts ...gui.GUIOption) *harness {
	t.Helper()
	r := &mockRenderer{}
	text := &fakeText{r: r}
	h := &harness{
		t:     t,
		r:     r,
		text:  text,
		ui:    gui.New(r, text, opts...),
		input: gui.NewInputState(),
	}
	t.Cleanup(h.ui.Close)
	return h
}

// frame runs one frame. The input's edge state is cleared afterwards, the
// way a backend adapter does before collecting the next frame's events.
func (h *harness) frame(draw func(ctx *gui.Context)) {
	h.t.Helper()
	ctx := h.ui.Begin(h.input, gui.Vec2{X: 800, Y: 600})
	draw(ctx)
	if err := h.ui.End(); err != nil {
		h.t.Fatalf("End: %v", err)
	}
	h.input.Reset()
}

// click presses and releases the left button at (x, y) over two frames.
func (h *harness) click(x, y float32, draw func(ctx *gui.Context)) {
	h.t.Helper()
	h.input.SetMousePos(x, y)
	h.input.SetMouseButton(gui.MouseButtonLeft, true)
	h.frame(draw)
	h.input.SetMouseButton(gui.MouseButtonLeft, false)
	h.frame(draw)
}
