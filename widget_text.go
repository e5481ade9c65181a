package gui

import "github.com/chewxy/math32"

// Text draws cached text stretched into r. r.H is the pixel height the text
// is rasterized at. Either r.W or r.H may be -1, in which case it's derived
// from the text's aspect ratio and written back to r.
//
// The texture is cached by (text, height, color) and reused across frames.
// Text doesn't consume pushed styles; everything is controlled through r.
func (ctx *Context) Text(str string, r *Rect, color uint32) {
	if r == nil || str == "" || (r.W < 1 && r.H < 1) {
		return
	}
	if !ctx.ready("Text") || !ctx.fontReady("Text") {
		return
	}
	if !ctx.resolveTextRect(str, r) {
		return
	}

	entry, err := ctx.cachedText(str, r.H, color)
	if err != nil {
		ctx.reportError("Text", err)
		return
	}
	ctx.blitTexture(entry.Texture(), *r)
}

// TextDynamic is Text without caching: the texture is rasterized, drawn and
// released within the call. Use it for text that changes every frame.
func (ctx *Context) TextDynamic(str string, r *Rect, color uint32) {
	if r == nil || str == "" || (r.W < 1 && r.H < 1) {
		return
	}
	if !ctx.ready("TextDynamic") || !ctx.fontReady("TextDynamic") {
		return
	}
	if !ctx.resolveTextRect(str, r) {
		return
	}

	h, err := ctx.rasterize(str, r.H, color)
	if err != nil {
		ctx.reportError("TextDynamic", err)
		return
	}
	defer h.Release()
	ctx.blitTexture(h.Texture(), *r)
}

// resolveTextRect fills in -1 dimensions of r from the text's aspect ratio.
// Derived dimensions are rounded to whole pixels. Returns false when the
// result has no area.
func (ctx *Context) resolveTextRect(str string, r *Rect) bool {
	if r.H == -1 {
		r.H = math32.Round(ctx.textHeightForWidth(str, r.W))
	}
	if r.W == -1 {
		r.W = math32.Round(ctx.measureText(str, r.H).X)
	}
	return r.W >= 1 && r.H >= 1
}

// textHeightForWidth returns the pixel height at which str is w pixels wide.
func (ctx *Context) textHeightForWidth(str string, w float32) float32 {
	const refPx = 64
	m := ctx.measureText(str, refPx)
	if m.X <= 0 {
		return 0
	}
	return m.Y * w / m.X
}
