package gui

// BeginContainer starts a vertically scrollable region. Widgets drawn until
// the matching EndContainer use coordinates relative to the top of the
// container's content and are clipped to r. The content height grows to the
// lowest item drawn inside.
//
// Containers nest: inside another container r is in the parent's content
// coordinates and the child is clipped by the parent.
func (ctx *Context) BeginContainer(id string, r Rect) {
	st := ctx.containers.GetOrCreate(id, nil)

	screen := r
	clip := r
	hidden := false
	if parent := ctx.currentContainer(); parent != nil {
		parent.state.growContent(r.Bottom())
		pv := parent.state.Viewport
		screen = r.Translate(pv.X, pv.Y-parent.state.ScrollOffset)
		hidden = parent.hidden
		top := maxf(screen.Y, parent.clip.Y)
		bottom := minf(screen.Bottom(), parent.clip.Bottom())
		if bottom <= top {
			hidden = true
			bottom = top
		}
		clip = Rect{X: screen.X, Y: top, W: screen.W, H: bottom - top}
	}

	st.Viewport = screen
	st.ContentHeight = 0
	st.LastActiveFrame = ctx.FrameCount

	ctx.containerStack = append(ctx.containerStack, &containerFrame{
		id:        id,
		state:     st,
		clip:      clip,
		clipShift: clip.Y - screen.Y,
		hidden:    hidden || clip.Empty(),
	})
}

// EndContainer closes the innermost container: it settles the content
// height, applies wheel scrolling and scrollbar dragging, and draws the
// scrollbar when the content overflows.
func (ctx *Context) EndContainer() {
	n := len(ctx.containerStack)
	if n == 0 {
		ctx.reportError("EndContainer", &UsageError{Op: "EndContainer", Err: ErrContainerUnderflow})
		return
	}
	f := ctx.containerStack[n-1]
	ctx.containerStack[n-1] = nil
	ctx.containerStack = ctx.containerStack[:n-1]

	st := f.state
	st.ContentHeight = maxf(st.Viewport.H, st.ContentHeight+ctx.style.ContainerBottomMargin)
	st.measuredHeight = st.ContentHeight

	// Innermost scrollable container under the mouse takes the wheel; it
	// ends before its parents do.
	in := ctx.input
	if !f.hidden && !ctx.wheelConsumed && in.MouseWheelY != 0 &&
		st.Scrollable() && f.clip.Contains(in.MousePos()) {
		st.ScrollBy(-in.MouseWheelY * ctx.style.ScrollStep)
		ctx.wheelConsumed = true
	}
	st.ClampScroll(st.ContentHeight)

	if f.hidden {
		st.Drag = ScrollDragState{}
		return
	}
	ctx.scrollbar(f)
}

// Container is the scoped form of BeginContainer/EndContainer:
//
//	ctx.Container("list", gui.Rect{X: 10, Y: 10, W: 200, H: 300})(func() {
//	    ctx.Text("row", &gui.Rect{X: 0, Y: 0, W: -1, H: 20}, gui.ColorWhite)
//	})
//
// The container is closed even if body panics. Containers the body left
// open are closed with it.
func (ctx *Context) Container(id string, r Rect) func(body func()) {
	return func(body func()) {
		depth := len(ctx.containerStack)
		ctx.BeginContainer(id, r)
		defer ctx.endContainersTo(depth)
		body()
	}
}

// endContainersTo pops containers until depth remain.
func (ctx *Context) endContainersTo(depth int) {
	for len(ctx.containerStack) > depth+1 {
		top := ctx.containerStack[len(ctx.containerStack)-1]
		guiLogger.Warn("closing container left open", "id", top.id)
		ctx.EndContainer()
	}
	if len(ctx.containerStack) > depth {
		ctx.EndContainer()
	}
}

// scrollbar handles dragging and draws the vertical scrollbar of a
// container that was just closed. Drawing happens in screen space, clipped
// to the container's visible part.
func (ctx *Context) scrollbar(f *containerFrame) {
	st := f.state
	maxScroll := st.MaxScroll(st.ContentHeight)
	if maxScroll <= 0 {
		st.Drag = ScrollDragState{}
		return
	}

	s := ctx.style
	vp := st.Viewport
	track := Rect{X: vp.Right() - s.ScrollbarSize, Y: vp.Y, W: s.ScrollbarSize, H: vp.H}
	thumbH := minf(maxf(track.H*vp.H/st.ContentHeight, s.ScrollbarMinGrab), track.H)
	travel := track.H - thumbH

	thumbAt := func() Rect {
		y := track.Y
		if travel > 0 {
			y += st.ScrollOffset / maxScroll * travel
		}
		return Rect{X: track.X, Y: y, W: track.W, H: thumbH}
	}
	thumb := thumbAt()

	in := ctx.input
	mouse := in.MousePos()
	over := thumb.Contains(mouse) && f.clip.Contains(mouse)
	if in.MouseDown(MouseButtonLeft) {
		if !st.Drag.Active && over {
			st.Drag = ScrollDragState{Active: true, StartMouseY: mouse.Y, StartOffset: st.ScrollOffset}
		}
		if st.Drag.Active && travel > 0 {
			dy := mouse.Y - st.Drag.StartMouseY
			st.ScrollOffset = clampf(st.Drag.StartOffset+dy/travel*maxScroll, 0, maxScroll)
			thumb = thumbAt()
		}
	} else {
		st.Drag.Active = false
	}
	if over || st.Drag.Active {
		ctx.WantCaptureMouse = true
	}

	grab := s.ScrollbarGrabColor
	switch {
	case st.Drag.Active:
		grab = s.ScrollbarGrabActive
	case over:
		grab = s.ScrollbarGrabHovered
	}

	var m Mesh
	if t := track.Intersect(f.clip); !t.Empty() {
		m.Append(BuildRoundedRectMesh(t, CornerRadii{}, s.ScrollbarBgColor, 1))
	}
	if t := thumb.Intersect(f.clip); !t.Empty() {
		m.Append(BuildRoundedRectMesh(t, CornerRadii{}, grab, 1))
	}
	if m.Empty() || !ctx.ready("EndContainer") {
		return
	}
	if err := ctx.renderer.FillMesh(m.Vertices, m.Indices); err != nil {
		ctx.reportError("EndContainer", err)
	}
}

// ScrollContainer sets the scroll offset of a container. The offset is
// clamped against the last measured content height.
func (ctx *Context) ScrollContainer(id string, offset float32) bool {
	st := ctx.containers.Get(id)
	if st == nil {
		return false
	}
	st.ScrollOffset = offset
	st.ClampScroll(st.measuredHeight)
	return true
}

// LookupContainer returns the state of a container, or nil if it doesn't
// exist.
func (ctx *Context) LookupContainer(id string) *ContainerState {
	return ctx.containers.Get(id)
}

// DestroyContainer drops the state of a container. It must not be active.
func (ctx *Context) DestroyContainer(id string) {
	for _, f := range ctx.containerStack {
		if f.id == id {
			ctx.reportError("DestroyContainer", &UsageError{Op: "DestroyContainer", Err: errContainerActive})
			return
		}
	}
	ctx.containers.Destroy(id)
}
