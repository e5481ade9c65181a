package gui

import "github.com/chewxy/math32"

// Image draws tex stretched into r. Either r.W or r.H may be -1, in which
// case it's derived from the texture's aspect ratio and written back to r.
// Inside a container the image is clipped like text.
//
// The texture stays owned by the caller. Image doesn't consume pushed
// styles.
func (ctx *Context) Image(tex Texture, r *Rect) {
	if tex == nil {
		ctx.reportError("Image", &UsageError{Op: "Image", Err: ErrNoTexture})
		return
	}
	if r == nil || (r.W <= 0 && r.H <= 0) {
		if guiVerbose() {
			guiLogger.Debug("Image: invalid rect", "rect", r)
		}
		return
	}

	tw, th := tex.Size()
	if tw <= 0 || th <= 0 {
		return
	}
	if r.W == -1 {
		r.W = math32.Round(r.H * float32(tw) / float32(th))
	}
	if r.H == -1 {
		r.H = math32.Round(r.W * float32(th) / float32(tw))
	}
	if r.W < 1 || r.H < 1 || !ctx.ready("Image") {
		return
	}

	ctx.blitTexture(tex, *r)
}
