package gui

// Texture is an opaque renderer-owned image. Backends return their own
// concrete types; the toolkit only needs the pixel size.
type Texture interface {
	Size() (w, h int)
}

// TextureHandle is a reference-counted owner of a Texture. The texture is
// released through the release function when the last reference is dropped.
//
// Handles are not safe for concurrent use; all GUI calls happen on the
// render thread.
type TextureHandle struct {
	tex     Texture
	refs    int
	release func(Texture)
}

// NewTextureHandle wraps tex with a single reference.
// release may be nil for textures the toolkit doesn't own.
func NewTextureHandle(tex Texture, release func(Texture)) *TextureHandle {
	return &TextureHandle{tex: tex, refs: 1, release: release}
}

// Texture returns the wrapped texture, or nil once released.
func (h *TextureHandle) Texture() Texture {
	if h == nil {
		return nil
	}
	return h.tex
}

// Size returns the texture size in pixels.
func (h *TextureHandle) Size() (w, hh int) {
	if h == nil || h.tex == nil {
		return 0, 0
	}
	return h.tex.Size()
}

// Refs returns the current reference count.
func (h *TextureHandle) Refs() int {
	if h == nil {
		return 0
	}
	return h.refs
}

// Retain adds a reference and returns the handle for chaining.
func (h *TextureHandle) Retain() *TextureHandle {
	if h != nil && h.refs > 0 {
		h.refs++
	}
	return h
}

// Release drops a reference. The texture is destroyed when the count reaches
// zero. Releasing a dead handle is a no-op.
func (h *TextureHandle) Release() {
	if h == nil || h.refs <= 0 {
		return
	}
	h.refs--
	if h.refs > 0 {
		return
	}
	if h.release != nil && h.tex != nil {
		h.release(h.tex)
	}
	h.tex = nil
}
