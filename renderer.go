package gui

// Renderer is the drawing backend the toolkit calls into. Every method is
// called from the render thread between GUI.Begin and GUI.End.
type Renderer interface {
	// FillMesh draws an indexed triangle list with per-vertex colors.
	FillMesh(vertices []Vertex, indices []uint16) error

	// Blit copies src (the whole texture when nil) of tex into dst.
	Blit(tex Texture, src *Rect, dst Rect) error

	// CreateOffscreenTarget allocates a texture that can be rendered into.
	CreateOffscreenTarget(w, h int) (Texture, error)

	// SetRenderTarget redirects drawing to tex, or to the screen when nil.
	SetRenderTarget(tex Texture) error

	// SetDrawColor sets the color used by Clear.
	SetDrawColor(color uint32)

	// Clear fills the current target with the draw color.
	Clear() error

	// DestroyTexture frees a texture created by this renderer.
	DestroyTexture(tex Texture)
}

// Flusher is implemented by renderers that batch work. GUI.End calls Flush
// once all widget calls for the frame are done.
type Flusher interface {
	Flush() error
}
