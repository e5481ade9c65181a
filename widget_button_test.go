package gui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/gui/v2"
)

var buttonRect = gui.Rect{X: 0, Y: 0, W: 100, H: 40}

func TestButtonIsIdempotentWithinFrame(t *testing.T) {
	h := newHarness(t)
	h.input.SetMousePos(50, 20)

	h.frame(func(ctx *gui.Context) {
		first := ctx.Button("Test", buttonRect, gui.ColorBlue, gui.ColorWhite)
		second := ctx.Button("Test", buttonRect, gui.ColorBlue, gui.ColorWhite)
		assert.Equal(t, gui.CursorHovering, first)
		assert.Equal(t, first, second)
		assert.True(t, ctx.WantCaptureMouse)
	})
}

func TestButtonCursorStates(t *testing.T) {
	h := newHarness(t)
	var got []gui.CursorState
	draw := func(ctx *gui.Context) {
		got = append(got, ctx.Button("Go", buttonRect, gui.ColorBlue, gui.ColorWhite))
	}

	h.input.SetMousePos(500, 500)
	h.frame(draw)

	h.input.SetMousePos(50, 20)
	h.input.SetMouseButton(gui.MouseButtonLeft, true)
	h.frame(draw)

	h.input.SetMousePos(60, 22)
	h.frame(draw)

	h.input.SetMouseButton(gui.MouseButtonLeft, false)
	h.frame(draw)

	h.frame(draw)

	assert.Equal(t, []gui.CursorState{
		gui.CursorOutside,
		gui.CursorHovering,
		gui.CursorDragging,
		gui.CursorClicked,
		gui.CursorHovering,
	}, got)
}

func TestButtonClick(t *testing.T) {
	h := newHarness(t)
	clicks := 0
	h.click(50, 20, func(ctx *gui.Context) {
		if ctx.Button("Click", buttonRect, gui.ColorBlue, gui.ColorWhite) == gui.CursorClicked {
			clicks++
		}
	})
	assert.Equal(t, 1, clicks)

	h.click(300, 300, func(ctx *gui.Context) {
		if ctx.Button("Click", buttonRect, gui.ColorBlue, gui.ColorWhite) == gui.CursorClicked {
			clicks++
		}
	})
	assert.Equal(t, 1, clicks, "clicks outside don't count")
}

func TestButtonLabelFitsRect(t *testing.T) {
	tests := []struct {
		name  string
		label string
		dst   gui.Rect
	}{
		// fakeText is half the pixel height per rune.
		{"short label uses full height", "OK", gui.Rect{X: 30, Y: 0, W: 40, H: 40}},
		{"long label shrinks to width", "ABCDEFGHIJ", gui.Rect{X: 0, Y: 10, W: 100, H: 20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.input.SetMousePos(500, 500)
			h.frame(func(ctx *gui.Context) {
				ctx.Button(tt.label, buttonRect, gui.ColorBlue, gui.ColorWhite)
			})
			require.Len(t, h.r.textBlits(), 1)
			assert.Equal(t, tt.dst, h.r.textBlits()[0].dst)
		})
	}
}

func TestButtonPushedStyles(t *testing.T) {
	h := newHarness(t)
	h.input.SetMousePos(500, 500)
	h.frame(func(ctx *gui.Context) {
		ctx.PushFontSize(10)
		ctx.PushTextAlign(gui.AlignStart, gui.AlignEnd)
		ctx.PushPaddingRect(gui.Padding{Right: 2, Bottom: 4, Left: 6})
		ctx.PushRounding(6)
		ctx.PushOutlineStyle(1, gui.ColorWhite)
		ctx.Button("OK", buttonRect, gui.ColorBlue, gui.ColorWhite)
		assert.Zero(t, ctx.Styles().Pending())
	})

	require.Len(t, h.r.textBlits(), 1)
	assert.Equal(t, gui.Rect{X: 6, Y: 26, W: 10, H: 10}, h.r.textBlits()[0].dst)
	assert.Equal(t, 1, h.r.meshes, "background and outline share one mesh")
}

func TestCursorStateString(t *testing.T) {
	assert.Equal(t, "clicked", gui.CursorClicked.String())
	assert.Equal(t, "CursorState(9)", gui.CursorState(9).String())
}
