package gui

// Filled passed as a thickness draws a filled shape instead of an outline.
const Filled float32 = -1

// Rect draws a rectangle. thickness <= 0 (see Filled) fills it, a positive
// thickness draws an outline of that width inside the rectangle.
//
// Consumes pushed styles: border radius, outline, and dash (only when an
// outline is drawn).
func (ctx *Context) Rect(r Rect, color uint32, thickness float32) {
	radii, _ := ConsumeStyle(ctx.styles, StyleBorderRadius)
	outline, _ := ConsumeStyle(ctx.styles, StyleOutline)
	var dash DashStyle
	if thickness > 0 || outline.Enabled() {
		dash, _ = ConsumeStyle(ctx.styles, StyleDash)
	}

	if r.W < 1 || r.H < 1 {
		if guiVerbose() {
			guiLogger.Debug("Rect: invalid size", "rect", r)
		}
		return
	}
	if !ctx.ready("Rect") {
		return
	}

	m := ctx.rectMesh(r, radii, color, thickness, dash)
	if thickness <= 0 && outline.Enabled() {
		ctx.fillMeshes("Rect", m, ctx.rectMesh(r, radii, outline.Color, outline.Thickness, dash))
		return
	}
	ctx.fillMesh("Rect", m)
}

// rectMesh builds the mesh for a filled, outlined or dashed rounded rect.
func (ctx *Context) rectMesh(r Rect, radii CornerRadii, color uint32, thickness float32, dash DashStyle) Mesh {
	radii = radii.Clamp(r.W, r.H)
	seg := ArcSegmentsFor(radii.Max(), ctx.arcSegments)
	switch {
	case thickness <= 0:
		return BuildRoundedRectMesh(r, radii, color, seg)
	case dash.Enabled():
		return BuildDashedRoundedRectMesh(r, radii, dash, thickness, color, seg)
	default:
		return BuildRoundedRectOutlineMesh(r, radii, thickness, color, seg)
	}
}

// Circle draws a circle. thickness <= 0 fills it, a positive thickness draws
// a ring of that width inside the radius.
//
// Consumes pushed styles: outline (drawn around a filled circle).
func (ctx *Context) Circle(center Vec2, radius float32, color uint32, thickness float32) {
	outline, _ := ConsumeStyle(ctx.styles, StyleOutline)

	if radius <= 0 {
		return
	}
	if !ctx.ready("Circle") {
		return
	}

	seg := circleSegments(radius)
	if thickness > 0 {
		ctx.fillMesh("Circle", BuildCircleOutlineMesh(center, radius, thickness, color, seg))
		return
	}
	m := BuildCircleMesh(center, radius, color, seg)
	if outline.Enabled() {
		ctx.fillMeshes("Circle", m, BuildCircleOutlineMesh(center, radius, outline.Thickness, outline.Color, seg))
		return
	}
	ctx.fillMesh("Circle", m)
}

// circleSegments returns at least 32 segments, one per pixel of radius for
// big circles.
func circleSegments(radius float32) int {
	n := int(radius)
	if n < 32 {
		return 32
	}
	if n > 256 {
		return 256
	}
	return n
}

// Line draws a segment from p1 to p2. Thickness at or below 1 draws a
// hairline.
//
// Consumes pushed styles: dash.
func (ctx *Context) Line(p1, p2 Vec2, color uint32, thickness float32) {
	dash, _ := ConsumeStyle(ctx.styles, StyleDash)

	if !ctx.ready("Line") {
		return
	}

	if !dash.Enabled() {
		ctx.fillMesh("Line", BuildThickLineMesh(p1, p2, color, thickness))
		return
	}

	segs := BuildDashedEdge(p1, p2, dash.Dash, dash.Gap, thickness)
	meshes := make([]Mesh, 0, len(segs))
	for _, s := range segs {
		meshes = append(meshes, BuildThickLineMesh(s.A, s.B, color, s.Thickness))
	}
	ctx.fillMeshes("Line", meshes...)
}
