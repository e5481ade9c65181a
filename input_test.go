package gui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/gui/v2"
)

func TestMouseButtonEdges(t *testing.T) {
	in := gui.NewInputState()
	in.SetMousePos(10, 10)
	in.SetMouseButton(gui.MouseButtonLeft, true)

	assert.True(t, in.MouseDown(gui.MouseButtonLeft))
	assert.True(t, in.MouseClicked(gui.MouseButtonLeft))
	assert.Zero(t, in.MouseHeldFrames(gui.MouseButtonLeft))

	in.Reset()
	assert.False(t, in.MouseClicked(gui.MouseButtonLeft))
	assert.True(t, in.MouseDown(gui.MouseButtonLeft))
	assert.Equal(t, 1, in.MouseHeldFrames(gui.MouseButtonLeft))

	in.SetMousePos(15, 12)
	assert.Equal(t, gui.Vec2{X: 5, Y: 2}, in.MouseDragDelta(gui.MouseButtonLeft))
	assert.Equal(t, gui.Vec2{X: 5, Y: 2}, in.MouseDelta())
	assert.True(t, in.MouseMoved())

	in.SetMouseButton(gui.MouseButtonLeft, false)
	assert.True(t, in.MouseReleased(gui.MouseButtonLeft))
	assert.Zero(t, in.MouseHeldFrames(gui.MouseButtonLeft))
	assert.Equal(t, gui.Vec2{}, in.MouseDragDelta(gui.MouseButtonLeft))

	in.Reset()
	assert.False(t, in.MouseReleased(gui.MouseButtonLeft))
	assert.False(t, in.MouseMoved())
}

func TestKeyEdges(t *testing.T) {
	in := gui.NewInputState()
	in.SetKey(gui.KeyBackspace, true)
	assert.True(t, in.KeyPressed(gui.KeyBackspace))

	in.SetKey(gui.KeyBackspace, true)
	in.Reset()
	in.Reset()
	assert.False(t, in.KeyPressed(gui.KeyBackspace))
	assert.Equal(t, 2, in.KeyHeldFrames(gui.KeyBackspace))

	in.SetKey(gui.KeyBackspace, false)
	assert.True(t, in.KeyReleased(gui.KeyBackspace))
	assert.False(t, in.KeyDown(gui.KeyBackspace))
}

func TestInputOutOfRangeIsIgnored(t *testing.T) {
	in := gui.NewInputState()
	in.SetKey(gui.KeyCount, true)
	in.SetKey(-1, true)
	in.SetMouseButton(gui.MouseButtonCount, true)

	assert.False(t, in.KeyDown(gui.KeyCount))
	assert.False(t, in.KeyPressed(-1))
	assert.False(t, in.MouseDown(gui.MouseButtonCount))
	assert.Zero(t, in.MouseHeldFrames(-1))
}

func TestInputCharsAndWheel(t *testing.T) {
	in := gui.NewInputState()
	in.AddInputChar('h')
	in.AddInputChar('é')
	in.SetMouseWheel(-1.5)

	assert.True(t, in.HasInputChars())
	assert.Equal(t, "hé", string(in.InputChars))
	assert.Equal(t, float32(-1.5), in.MouseWheelY)

	in.ConsumeInputChars()
	assert.False(t, in.HasInputChars())

	in.AddInputChar('x')
	in.Reset()
	assert.False(t, in.HasInputChars())
	assert.Zero(t, in.MouseWheelY)
}
