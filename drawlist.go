package gui

import "sync"

// drawListPool provides reuse of DrawList buffers between frames.
var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 1024),
			IdxBuffer: make([]uint16, 0, 2048),
			CmdBuffer: make([]DrawCmd, 0, 16),
		}
	},
}

// AcquireDrawList gets a DrawList from the pool.
// Call ReleaseDrawList when done to return it.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList returns a DrawList to the pool for reuse.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// maxCmdVertices is the most vertices one command can address with
// 16-bit indices.
const maxCmdVertices = 1 << 16

// DrawCmd is one batched draw call.
type DrawCmd struct {
	ElemCount    uint32 // Number of indices to draw
	TextureID    uint32 // Backend texture ID (0 = untextured)
	VertexOffset uint32 // Offset into vertex buffer
	IndexOffset  uint32 // Offset into index buffer
}

// DrawList accumulates meshes and textured quads for one render target.
// Consecutive primitives that use the same texture share a command, so a
// backend can flush a whole frame of widgets in a handful of draw calls.
//
// Indices inside a command are relative to its VertexOffset.
type DrawList struct {
	CmdBuffer []DrawCmd // Draw commands
	VtxBuffer []Vertex  // Vertex data
	IdxBuffer []uint16  // Index data

	textureID    uint32 // Current texture for batching
	cmdOffset    uint32 // Vertex offset for current command
	idxCmdOffset uint32 // Index offset for current command
}

// Clear resets the DrawList. Allocated capacity is kept.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.textureID = 0
	dl.cmdOffset = 0
	dl.idxCmdOffset = 0
}

// Empty reports whether nothing has been added since the last Clear.
func (dl *DrawList) Empty() bool {
	return len(dl.IdxBuffer) == 0
}

// SetTexture sets the texture for subsequent primitives. 0 selects
// untextured drawing.
func (dl *DrawList) SetTexture(textureID uint32) {
	if dl.textureID == textureID && len(dl.CmdBuffer) > 0 {
		return
	}
	dl.textureID = textureID
	dl.splitDraw()
}

// splitDraw finalizes the current command and starts a new one.
func (dl *DrawList) splitDraw() {
	if len(dl.CmdBuffer) > 0 {
		lastCmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		lastCmd.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}

	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		TextureID:    dl.textureID,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
	})
	dl.cmdOffset = uint32(len(dl.VtxBuffer))
	dl.idxCmdOffset = uint32(len(dl.IdxBuffer))
}

// reserve makes sure the current command can take n more vertices and
// returns the index of the first one.
func (dl *DrawList) reserve(n int) uint16 {
	if len(dl.CmdBuffer) == 0 || len(dl.VtxBuffer)-int(dl.cmdOffset)+n > maxCmdVertices {
		dl.splitDraw()
	}
	return uint16(len(dl.VtxBuffer) - int(dl.cmdOffset))
}

// AddMesh appends an indexed triangle list drawn with the current texture.
// Meshes larger than one command can address are dropped with a warning.
func (dl *DrawList) AddMesh(vertices []Vertex, indices []uint16) {
	if len(indices) == 0 {
		return
	}
	if len(vertices) > maxCmdVertices {
		guiLogger.Warn("mesh too large for 16-bit indices, dropped", "vertices", len(vertices))
		return
	}
	base := dl.reserve(len(vertices))
	dl.VtxBuffer = append(dl.VtxBuffer, vertices...)
	for _, idx := range indices {
		dl.IdxBuffer = append(dl.IdxBuffer, base+idx)
	}
}

// AddImage appends a quad covering dst that samples the current texture
// between (u0, v0) and (u1, v1).
func (dl *DrawList) AddImage(dst Rect, u0, v0, u1, v1 float32, color uint32) {
	if color&0xFF000000 == 0 || dst.Empty() {
		return
	}
	idx := dl.reserve(4)
	x0, y0, x1, y1 := dst.X, dst.Y, dst.Right(), dst.Bottom()
	dl.VtxBuffer = append(dl.VtxBuffer,
		Vertex{Pos: [2]float32{x0, y0}, TexCoord: [2]float32{u0, v0}, Color: color},
		Vertex{Pos: [2]float32{x1, y0}, TexCoord: [2]float32{u1, v0}, Color: color},
		Vertex{Pos: [2]float32{x1, y1}, TexCoord: [2]float32{u1, v1}, Color: color},
		Vertex{Pos: [2]float32{x0, y1}, TexCoord: [2]float32{u0, v1}, Color: color},
	)
	dl.IdxBuffer = append(dl.IdxBuffer, idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// Finalize prepares the DrawList for rendering.
// Must be called after all primitives are added.
func (dl *DrawList) Finalize() {
	if len(dl.CmdBuffer) > 0 {
		lastCmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		lastCmd.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}

	// Remove empty commands
	filtered := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 {
			filtered = append(filtered, cmd)
		}
	}
	dl.CmdBuffer = filtered
}
