package gui_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/gui/v2"
)

func TestGUIBasicUsage(t *testing.T) {
	h := newHarness(t, gui.WithStyle(gui.LightStyle()))

	ctx := h.ui.Begin(h.input, gui.Vec2{X: 1920, Y: 1080})
	require.NotNil(t, ctx)
	assert.Equal(t, uint64(1), ctx.FrameCount)
	assert.Equal(t, gui.LightStyle(), ctx.Style())

	ctx.Text("Hello World", &gui.Rect{X: 10, Y: 10, W: -1, H: 20}, gui.ColorYellow)
	ctx.Rect(gui.Rect{X: 10, Y: 40, W: 100, H: 20}, gui.ColorBlue, gui.Filled)

	require.NoError(t, h.ui.End())
	assert.Equal(t, 1, h.r.flushes)
	assert.Len(t, h.r.blits, 1)
	assert.Equal(t, 1, h.r.meshes)
	assert.Zero(t, ctx.FrameErrors())
}

func TestEndWithoutBeginIsNoop(t *testing.T) {
	h := newHarness(t)
	assert.NoError(t, h.ui.End())
	assert.Zero(t, h.r.flushes)
}

func TestTextIsCachedAcrossFrames(t *testing.T) {
	h := newHarness(t)
	for range 3 {
		h.frame(func(ctx *gui.Context) {
			ctx.Text("hello", &gui.Rect{W: -1, H: 20}, gui.ColorWhite)
		})
	}

	assert.Equal(t, []string{"hello"}, h.text.rasterized)
	assert.Equal(t, gui.TextureCacheStats{Hits: 2, Misses: 1}, h.ui.TextCacheStats())
	assert.Len(t, h.r.blits, 3)
}

func TestTextDerivesMissingDimension(t *testing.T) {
	h := newHarness(t)
	wide := gui.Rect{W: -1, H: 20}
	tall := gui.Rect{W: 60, H: -1}
	h.frame(func(ctx *gui.Context) {
		ctx.Text("abc", &wide, gui.ColorWhite)
		ctx.Text("abc", &tall, gui.ColorWhite)
	})

	// fakeText is half the pixel height per rune.
	assert.Equal(t, float32(30), wide.W)
	assert.Equal(t, float32(40), tall.H)

	nothing := gui.Rect{W: -1, H: -1}
	h.frame(func(ctx *gui.Context) {
		ctx.Text("abc", &nothing, gui.ColorWhite)
		ctx.Text("", &gui.Rect{W: 10, H: 10}, gui.ColorWhite)
		ctx.Text("abc", nil, gui.ColorWhite)
	})
	assert.Len(t, h.r.blits, 2)
}

func TestTextCacheEvictsAtCapacity(t *testing.T) {
	h := newHarness(t, gui.WithMaxLoadedTexts(2))
	h.frame(func(ctx *gui.Context) {
		for _, s := range []string{"a", "b", "c"} {
			ctx.Text(s, &gui.Rect{W: -1, H: 10}, gui.ColorWhite)
		}
		assert.Equal(t, 2, ctx.TextCache().Len())
	})

	assert.Equal(t, uint64(1), h.ui.TextCacheStats().Evictions)
	assert.Len(t, h.r.destroyed, 1)
}

func TestTextDynamicReleasesTexture(t *testing.T) {
	h := newHarness(t)
	h.frame(func(ctx *gui.Context) {
		ctx.TextDynamic("fps 60", &gui.Rect{W: -1, H: 12}, gui.ColorWhite)
		assert.Zero(t, ctx.TextCache().Len())
	})

	require.Len(t, h.r.blits, 1)
	require.Len(t, h.r.destroyed, 1)
	assert.Same(t, h.r.blits[0].tex, h.r.destroyed[0])
}

func TestBlitFailureIsReportedNotFatal(t *testing.T) {
	h := newHarness(t)
	h.r.failBlit = true
	h.frame(func(ctx *gui.Context) {
		ctx.Text("x", &gui.Rect{W: -1, H: 10}, gui.ColorWhite)
		ctx.Text("y", &gui.Rect{W: -1, H: 10}, gui.ColorWhite)
		assert.Equal(t, 2, ctx.FrameErrors())
		assert.ErrorIs(t, ctx.LastError(), errInjected)
	})

	// Errors are counted per frame.
	h.r.failBlit = false
	h.frame(func(ctx *gui.Context) {
		assert.Zero(t, ctx.FrameErrors())
		assert.NoError(t, ctx.LastError())
	})
}

func TestRasterizeFailureIsNotCached(t *testing.T) {
	h := newHarness(t)
	h.text.fail = true
	h.frame(func(ctx *gui.Context) {
		ctx.Text("x", &gui.Rect{W: -1, H: 10}, gui.ColorWhite)
		assert.ErrorIs(t, ctx.LastError(), gui.ErrTextureCreateFailed)
	})

	h.text.fail = false
	h.frame(func(ctx *gui.Context) {
		ctx.Text("x", &gui.Rect{W: -1, H: 10}, gui.ColorWhite)
	})
	assert.Equal(t, []string{"x"}, h.text.rasterized)
	assert.Len(t, h.r.blits, 1)
}

func TestMissingFontIsReported(t *testing.T) {
	r := &mockRenderer{}
	ui := gui.New(r, nil)
	defer ui.Close()

	in := gui.NewInputState()
	in.SetMousePos(50, 20)
	ctx := ui.Begin(in, gui.Vec2{X: 800, Y: 600})

	ctx.Text("x", &gui.Rect{W: -1, H: 10}, gui.ColorWhite)
	assert.ErrorIs(t, ctx.LastError(), gui.ErrFontNotInitialized)

	var usage *gui.UsageError
	require.True(t, errors.As(ctx.LastError(), &usage))
	assert.Equal(t, "Text", usage.Op)

	assert.Equal(t, gui.Vec2{}, ctx.MeasureText("abc", 20))

	// Buttons still draw and report the cursor without a label.
	state := ctx.Button("OK", gui.Rect{W: 100, H: 40}, gui.ColorBlue, gui.ColorWhite)
	assert.Equal(t, gui.CursorHovering, state)
	assert.Equal(t, 1, r.meshes)
	assert.Empty(t, r.blits)
	assert.Equal(t, 3, ctx.FrameErrors())

	require.NoError(t, ui.End())
}

func TestSetTextRasterizerDropsCache(t *testing.T) {
	h := newHarness(t)
	h.frame(func(ctx *gui.Context) {
		ctx.Text("x", &gui.Rect{W: -1, H: 10}, gui.ColorWhite)
	})

	other := &fakeText{r: h.r}
	h.ui.SetTextRasterizer(other)
	assert.Zero(t, h.ui.Context().TextCache().Len())
	assert.Len(t, h.r.destroyed, 1)

	h.frame(func(ctx *gui.Context) {
		ctx.Text("x", &gui.Rect{W: -1, H: 10}, gui.ColorWhite)
	})
	assert.Equal(t, []string{"x"}, other.rasterized)
}

func TestCloseReleasesTextures(t *testing.T) {
	h := newHarness(t)
	h.frame(func(ctx *gui.Context) {
		ctx.Text("a", &gui.Rect{W: -1, H: 10}, gui.ColorWhite)
		ctx.Text("b", &gui.Rect{W: -1, H: 10}, gui.ColorWhite)
		ctx.PushDefaultValue("value")
		ctx.Input("field", gui.Rect{W: 200, H: 30}, "", gui.ColorWhite, gui.ColorBlack)
	})
	require.Len(t, h.text.rasterized, 3)
	require.Empty(t, h.r.destroyed)

	h.ui.Close()
	assert.Len(t, h.r.destroyed, 3)
	assert.Zero(t, h.ui.Context().TextCache().Len())
	assert.Nil(t, h.ui.Context().LookupInput("field"))

	h.ui.Close()
	assert.Len(t, h.r.destroyed, 3, "closing twice releases nothing more")
}

func TestBeginTwiceFinishesPreviousFrame(t *testing.T) {
	h := newHarness(t)
	ctx := h.ui.Begin(h.input, gui.Vec2{X: 100, Y: 100})
	ctx.BeginContainer("left-open", gui.Rect{W: 50, H: 50})

	ctx = h.ui.Begin(h.input, gui.Vec2{X: 100, Y: 100})
	assert.Equal(t, uint64(2), ctx.FrameCount)
	ctx.EndContainer()
	assert.ErrorIs(t, ctx.LastError(), gui.ErrContainerUnderflow, "the stack was emptied")
	require.NoError(t, h.ui.End())
}

func TestShapesOutsideContainerDrawDirectly(t *testing.T) {
	h := newHarness(t)
	h.frame(func(ctx *gui.Context) {
		ctx.Rect(gui.Rect{W: 100, H: 20}, gui.ColorRed, gui.Filled)
		ctx.Rect(gui.Rect{W: 100, H: 20}, gui.ColorRed, 2)
		ctx.Rect(gui.Rect{W: 0.5, H: 20}, gui.ColorRed, gui.Filled)
		ctx.Circle(gui.Vec2{X: 50, Y: 50}, 10, gui.ColorRed, gui.Filled)
		ctx.Circle(gui.Vec2{X: 50, Y: 50}, 0, gui.ColorRed, gui.Filled)
		ctx.Line(gui.Vec2{}, gui.Vec2{X: 10, Y: 10}, gui.ColorRed, 1)
	})

	assert.Equal(t, 4, h.r.meshes)
	assert.Empty(t, h.r.targets)
	assert.Empty(t, h.r.blits)
}

func TestLongDashedLineKeepsIndicesInRange(t *testing.T) {
	h := newHarness(t)
	h.frame(func(ctx *gui.Context) {
		ctx.PushDashStyle(1, 1)
		ctx.Line(gui.Vec2{}, gui.Vec2{X: 200000}, gui.ColorWhite, 2)
		ctx.PushDashStyle(1, 1)
		ctx.PushOutlineStyle(2, gui.ColorWhite)
		ctx.Rect(gui.Rect{W: 20000, H: 20000}, gui.ColorRed, gui.Filled)
	})

	assert.NotZero(t, h.r.meshes)
	assert.Zero(t, h.r.badIndices)
	assert.Zero(t, h.ui.Context().FrameErrors())
}

func TestNilRendererIsReported(t *testing.T) {
	ui := gui.New(nil, &fakeText{})
	ctx := ui.Begin(nil, gui.Vec2{X: 100, Y: 100})
	ctx.Rect(gui.Rect{W: 10, H: 10}, gui.ColorRed, gui.Filled)
	assert.ErrorIs(t, ctx.LastError(), gui.ErrNoRenderer)
	assert.NoError(t, ui.End())
	ui.Close()
}

func TestWithLoggerCapturesUsageErrors(t *testing.T) {
	var buf bytes.Buffer
	h := newHarness(t, gui.WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))
	t.Cleanup(func() { gui.SetLogger(nil) })

	h.frame(func(ctx *gui.Context) {
		ctx.EndContainer()
	})

	assert.Contains(t, buf.String(), "gui usage error")
	assert.Contains(t, buf.String(), "op=EndContainer")
}
