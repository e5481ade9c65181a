package gui_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/gui/v2"
)

// rows draws ten 48px rows, the last one ending at y=480.
func rows(ctx *gui.Context) {
	for i := range 10 {
		ctx.Text("row", &gui.Rect{Y: float32(i) * 48, W: 60, H: 48}, gui.ColorWhite)
	}
}

func TestContainerScrollIsClamped(t *testing.T) {
	h := newHarness(t)
	vp := gui.Rect{X: 0, Y: 0, W: 300, H: 200}
	draw := func(ctx *gui.Context) {
		ctx.Container("list", vp)(func() { rows(ctx) })
	}
	h.frame(draw)

	ctx := h.ui.Context()
	st := ctx.LookupContainer("list")
	require.NotNil(t, st)
	// Lowest item 480 plus the 20px bottom margin.
	assert.Equal(t, float32(500), st.ContentHeight)
	assert.True(t, st.Scrollable())

	require.True(t, ctx.ScrollContainer("list", 1000))
	assert.Equal(t, float32(300), st.ScrollOffset)
	ctx.ScrollContainer("list", -5)
	assert.Zero(t, st.ScrollOffset)

	assert.False(t, ctx.ScrollContainer("missing", 10))
}

func TestContainerWheelScrolls(t *testing.T) {
	h := newHarness(t)
	vp := gui.Rect{X: 0, Y: 0, W: 300, H: 200}
	draw := func(ctx *gui.Context) {
		ctx.Container("list", vp)(func() { rows(ctx) })
	}
	h.frame(draw)
	st := h.ui.Context().LookupContainer("list")

	h.input.SetMousePos(100, 100)
	h.input.SetMouseWheel(-2)
	h.frame(draw)
	assert.Equal(t, float32(40), st.ScrollOffset)

	h.input.SetMouseWheel(-100)
	h.frame(draw)
	assert.Equal(t, float32(300), st.ScrollOffset)

	h.input.SetMouseWheel(1)
	h.frame(draw)
	assert.Equal(t, float32(280), st.ScrollOffset)

	h.input.SetMousePos(500, 500)
	h.input.SetMouseWheel(1)
	h.frame(draw)
	assert.Equal(t, float32(280), st.ScrollOffset, "wheel outside the viewport is ignored")
}

func TestContainerWheelGoesToInnermost(t *testing.T) {
	h := newHarness(t)
	draw := func(ctx *gui.Context) {
		ctx.Container("outer", gui.Rect{W: 400, H: 300})(func() {
			ctx.Container("inner", gui.Rect{X: 10, Y: 10, W: 300, H: 200})(func() { rows(ctx) })
			ctx.Text("tail", &gui.Rect{Y: 900, W: 60, H: 40}, gui.ColorWhite)
		})
	}
	h.frame(draw)

	h.input.SetMousePos(100, 100)
	h.input.SetMouseWheel(-1)
	h.frame(draw)

	ctx := h.ui.Context()
	assert.Equal(t, float32(20), ctx.LookupContainer("inner").ScrollOffset)
	assert.Zero(t, ctx.LookupContainer("outer").ScrollOffset)

	// Outside the inner viewport the outer container scrolls.
	h.input.SetMousePos(350, 250)
	h.input.SetMouseWheel(-1)
	h.frame(draw)
	assert.Equal(t, float32(20), ctx.LookupContainer("outer").ScrollOffset)
}

func TestNestedContainerIsClippedByParent(t *testing.T) {
	h := newHarness(t)
	h.frame(func(ctx *gui.Context) {
		ctx.Container("outer", gui.Rect{X: 0, Y: 100, W: 400, H: 100})(func() {
			ctx.Container("inner", gui.Rect{Y: 50, W: 300, H: 200})(func() {
				ctx.Text("a", &gui.Rect{Y: 0, W: 20, H: 20}, gui.ColorWhite)
				ctx.Text("b", &gui.Rect{Y: 40, W: 20, H: 20}, gui.ColorWhite)
				ctx.Text("c", &gui.Rect{Y: 60, W: 20, H: 20}, gui.ColorWhite)
			})
		})
	})

	// inner sits at y=150 on screen and outer ends at y=200.
	blits := h.r.textBlits()
	require.Len(t, blits, 2)
	assert.Equal(t, gui.Rect{Y: 150, W: 20, H: 20}, blits[0].dst)
	assert.Equal(t, gui.Rect{Y: 190, W: 20, H: 10}, blits[1].dst)
	// fakeText rasterizes "b" 10px wide.
	assert.Equal(t, &gui.Rect{W: 10, H: 10}, blits[1].src)
}

func TestEndContainerUnderflow(t *testing.T) {
	h := newHarness(t)
	h.frame(func(ctx *gui.Context) {
		ctx.EndContainer()
		assert.Equal(t, 1, ctx.FrameErrors())
		assert.ErrorIs(t, ctx.LastError(), gui.ErrContainerUnderflow)

		var usage *gui.UsageError
		require.True(t, errors.As(ctx.LastError(), &usage))
		assert.Equal(t, "EndContainer", usage.Op)
	})
}

func TestContainerLeftOpenIsClosedAtEnd(t *testing.T) {
	h := newHarness(t)
	h.frame(func(ctx *gui.Context) {
		ctx.BeginContainer("open", gui.Rect{W: 100, H: 100})
		ctx.Text("x", &gui.Rect{W: 20, H: 20}, gui.ColorWhite)
	})

	h.frame(func(ctx *gui.Context) {
		ctx.Text("y", &gui.Rect{X: 300, Y: 300, W: 20, H: 20}, gui.ColorWhite)
	})
	blits := h.r.textBlits()
	require.Len(t, blits, 2)
	assert.Equal(t, gui.Rect{X: 300, Y: 300, W: 20, H: 20}, blits[1].dst, "drawn outside any container")
}

func TestContainerClosesChildrenLeftOpen(t *testing.T) {
	h := newHarness(t)
	h.frame(func(ctx *gui.Context) {
		ctx.Container("outer", gui.Rect{W: 100, H: 100})(func() {
			ctx.BeginContainer("inner", gui.Rect{W: 50, H: 50})
		})
		ctx.EndContainer()
		assert.ErrorIs(t, ctx.LastError(), gui.ErrContainerUnderflow)
	})
}

func TestDestroyContainer(t *testing.T) {
	h := newHarness(t)
	h.frame(func(ctx *gui.Context) {
		ctx.BeginContainer("c", gui.Rect{W: 100, H: 100})
		ctx.DestroyContainer("c")
		var usage *gui.UsageError
		assert.True(t, errors.As(ctx.LastError(), &usage))
		ctx.EndContainer()
	})

	ctx := h.ui.Context()
	require.NotNil(t, ctx.LookupContainer("c"))
	ctx.DestroyContainer("c")
	assert.Nil(t, ctx.LookupContainer("c"))
}

func TestScrollbarDrag(t *testing.T) {
	h := newHarness(t)
	vp := gui.Rect{X: 0, Y: 0, W: 300, H: 200}
	draw := func(ctx *gui.Context) {
		ctx.Container("list", vp)(func() { rows(ctx) })
	}
	h.frame(draw)
	st := h.ui.Context().LookupContainer("list")

	// Thumb is 200*200/500 = 80px tall on a 200px track, 120px of travel.
	h.input.SetMousePos(295, 10)
	h.input.SetMouseButton(gui.MouseButtonLeft, true)
	h.frame(draw)
	assert.True(t, st.Drag.Active)

	h.input.SetMousePos(295, 70)
	h.frame(draw)
	assert.InDelta(t, 150, st.ScrollOffset, 0.001)

	h.input.SetMousePos(295, 400)
	h.frame(draw)
	assert.InDelta(t, 300, st.ScrollOffset, 0.001)

	h.input.SetMouseButton(gui.MouseButtonLeft, false)
	h.frame(draw)
	assert.False(t, st.Drag.Active)
}

func TestContainerWithoutOverflowHasNoScrollbar(t *testing.T) {
	h := newHarness(t)
	h.frame(func(ctx *gui.Context) {
		ctx.Container("c", gui.Rect{W: 100, H: 100})(func() {
			ctx.Text("x", &gui.Rect{W: 20, H: 20}, gui.ColorWhite)
		})
	})
	assert.Zero(t, h.r.meshes)
	st := h.ui.Context().LookupContainer("c")
	assert.Equal(t, float32(100), st.ContentHeight, "never shorter than the viewport")
	assert.False(t, st.Scrollable())
}

func TestContainerHiddenByParentDrawsNothing(t *testing.T) {
	h := newHarness(t)
	h.frame(func(ctx *gui.Context) {
		ctx.Container("outer", gui.Rect{W: 400, H: 100})(func() {
			// Entirely below the parent's viewport.
			ctx.Container("inner", gui.Rect{Y: 200, W: 300, H: 100})(func() {
				ctx.Rect(gui.Rect{Y: -10, W: 50, H: 150}, gui.ColorRed, gui.Filled)
				ctx.Text("a", &gui.Rect{Y: -10, W: 20, H: 50}, gui.ColorWhite)
				assert.False(t, ctx.IsRectVisible(gui.Rect{Y: -10, W: 50, H: 50}))
			})
		})
	})

	assert.Empty(t, h.r.targets, "no scratch target for hidden items")
	assert.Empty(t, h.r.blits)
	// Lowest item 140 plus the 20px bottom margin.
	assert.Equal(t, float32(160), h.ui.Context().LookupContainer("inner").ContentHeight,
		"hidden items still grow the content")
}

func TestIsRectVisible(t *testing.T) {
	h := newHarness(t)
	vp := gui.Rect{W: 300, H: 200}
	h.frame(func(ctx *gui.Context) {
		assert.True(t, ctx.IsRectVisible(gui.Rect{X: 790, Y: 590, W: 20, H: 20}))
		assert.False(t, ctx.IsRectVisible(gui.Rect{X: 800, Y: 10, W: 20, H: 20}))
		assert.False(t, ctx.IsRectVisible(gui.Rect{X: -30, Y: 10, W: 20, H: 20}))

		ctx.Container("list", vp)(func() {
			rows(ctx)
			assert.True(t, ctx.IsRectVisible(gui.Rect{Y: 190, W: 20, H: 20}))
			assert.False(t, ctx.IsRectVisible(gui.Rect{Y: 200, W: 20, H: 20}))
			assert.False(t, ctx.IsRectVisible(gui.Rect{X: 300, Y: 10, W: 20, H: 20}))
			assert.False(t, ctx.IsRectVisible(gui.Rect{Y: 5000, W: 20, H: 20}))
		})
	})
	st := h.ui.Context().LookupContainer("list")
	assert.Equal(t, float32(500), st.ContentHeight, "visibility checks don't grow the content")

	h.ui.Context().ScrollContainer("list", 100)
	h.frame(func(ctx *gui.Context) {
		ctx.Container("list", vp)(func() {
			rows(ctx)
			assert.False(t, ctx.IsRectVisible(gui.Rect{Y: 0, W: 20, H: 50}))
			assert.True(t, ctx.IsRectVisible(gui.Rect{Y: 250, W: 20, H: 20}))
		})
	})
}
