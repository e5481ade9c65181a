package gui

import "fmt"

// ClipKind classifies how an item sits relative to a scrolled viewport.
type ClipKind int

const (
	ClipNone   ClipKind = iota // No container: drawn at its own rectangle
	ClipFull                   // Entirely inside the viewport
	ClipTop                    // Cut by the viewport's top edge
	ClipBottom                 // Cut by the viewport's bottom edge
	ClipBoth                   // Taller than the viewport, cut on both edges
	ClipHidden                 // Entirely above or below the viewport
)

func (k ClipKind) String() string {
	switch k {
	case ClipNone:
		return "none"
	case ClipFull:
		return "full"
	case ClipTop:
		return "top"
	case ClipBottom:
		return "bottom"
	case ClipBoth:
		return "both"
	case ClipHidden:
		return "hidden"
	default:
		return fmt.Sprintf("ClipKind(%d)", int(k))
	}
}

// ClipPlan is the blit a compositor decided on. Src is nil when the whole
// texture is used.
type ClipPlan struct {
	Kind ClipKind
	Src  *Rect
	Dst  Rect

	// InvisibleTop is how many item pixels are cut by the top edge.
	InvisibleTop float32
}

// Visible reports whether the plan issues a blit.
func (p ClipPlan) Visible() bool {
	return p.Kind != ClipHidden
}

// ClassifyClip computes the blit for an item drawn inside a scrolled
// viewport. item is in content coordinates (origin at the top of the
// content, before scrolling); texW and texH are the source texture size.
//
// The checks run in order: fully visible (inclusive bounds), cut on both
// edges, cut on top, cut on bottom, hidden. The source rectangle is scaled
// from item pixels to texture pixels so textures rasterized at a different
// resolution than the item still line up.
func ClassifyClip(item, viewport Rect, scroll, texW, texH float32) ClipPlan {
	top := scroll
	bottom := scroll + viewport.H
	dx := viewport.X
	dy := viewport.Y - scroll

	switch {
	case item.Y >= top && item.Bottom() <= bottom:
		return ClipPlan{Kind: ClipFull, Dst: item.Translate(dx, dy)}

	case item.H <= 0:
		return ClipPlan{Kind: ClipHidden}

	case item.Y < top && item.Bottom() > bottom:
		invisibleTop := top - item.Y
		src := Rect{
			X: 0,
			Y: texH * invisibleTop / item.H,
			W: texW,
			H: texH * viewport.H / item.H,
		}
		return ClipPlan{
			Kind:         ClipBoth,
			Src:          &src,
			Dst:          Rect{X: item.X + dx, Y: viewport.Y, W: item.W, H: viewport.H},
			InvisibleTop: invisibleTop,
		}

	case item.Y < top && item.Bottom() > top:
		invisibleTop := top - item.Y
		visible := item.H - invisibleTop
		src := Rect{
			X: 0,
			Y: texH * invisibleTop / item.H,
			W: texW,
			H: texH * visible / item.H,
		}
		return ClipPlan{
			Kind:         ClipTop,
			Src:          &src,
			Dst:          Rect{X: item.X + dx, Y: viewport.Y, W: item.W, H: visible},
			InvisibleTop: invisibleTop,
		}

	case item.Y < bottom && item.Bottom() > bottom:
		visible := bottom - item.Y
		src := Rect{X: 0, Y: 0, W: texW, H: texH * visible / item.H}
		return ClipPlan{
			Kind: ClipBottom,
			Src:  &src,
			Dst:  Rect{X: item.X + dx, Y: item.Y + dy, W: item.W, H: visible},
		}
	}

	return ClipPlan{Kind: ClipHidden}
}

// planBlit decides where an item of the given content rectangle lands on
// screen. Outside a container the item is drawn where it is; inside one the
// container's content height grows to the item's bottom and the item is
// clipped against the viewport chain. Nothing is drawn in a container its
// parents clip away entirely.
func (ctx *Context) planBlit(item Rect, texW, texH float32) ClipPlan {
	c := ctx.currentContainer()
	if c == nil {
		return ClipPlan{Kind: ClipNone, Dst: item}
	}
	c.state.growContent(item.Bottom())
	if c.hidden {
		return ClipPlan{Kind: ClipHidden}
	}
	return ClassifyClip(item, c.clip, c.state.ScrollOffset+c.clipShift, texW, texH)
}

// IsRectVisible reports whether any part of r is on screen. Inside a
// container r is in content coordinates and is tested against the part of
// the container visible through its parents. Unlike drawing it doesn't grow
// the container's content.
func (ctx *Context) IsRectVisible(r Rect) bool {
	if ctx.currentContainer() == nil {
		return r.Intersects(Rect{W: ctx.DisplaySize.X, H: ctx.DisplaySize.Y})
	}
	_, ok := ctx.toScreen(r)
	return ok
}

// blitTexture composites tex at item, honoring the active container.
// Returns the plan used (for tests and callers that lay out follow-ups).
func (ctx *Context) blitTexture(tex Texture, item Rect) ClipPlan {
	w, h := tex.Size()
	plan := ctx.planBlit(item, float32(w), float32(h))
	if !plan.Visible() {
		if guiVerbose() {
			guiLogger.Debug("blit skipped", "item", item, "kind", plan.Kind)
		}
		return plan
	}
	if err := ctx.renderer.Blit(tex, plan.Src, plan.Dst); err != nil {
		ctx.reportError("blit", err)
	}
	return plan
}
