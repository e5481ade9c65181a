package gui

import "github.com/chewxy/math32"

// geomEpsilon is the length below which a segment is treated as a point.
const geomEpsilon = 1e-4

// DefaultArcSegments is the number of straight segments used per rounded
// corner when the caller doesn't ask for a specific count.
const DefaultArcSegments = 8

// CornerRadii holds one radius per rectangle corner.
type CornerRadii struct {
	TopLeft     float32
	TopRight    float32
	BottomLeft  float32
	BottomRight float32
}

// UniformRadii returns radii with the same value on every corner.
func UniformRadii(r float32) CornerRadii {
	return CornerRadii{TopLeft: r, TopRight: r, BottomLeft: r, BottomRight: r}
}

// IsZero reports whether every corner is square.
func (c CornerRadii) IsZero() bool {
	return c.TopLeft <= 0 && c.TopRight <= 0 && c.BottomLeft <= 0 && c.BottomRight <= 0
}

// Max returns the largest of the four radii.
func (c CornerRadii) Max() float32 {
	return maxf(maxf(c.TopLeft, c.TopRight), maxf(c.BottomLeft, c.BottomRight))
}

// Clamp fits the radii to a w x h rectangle. Negative radii become zero and
// any pair of radii sharing a side whose sum exceeds that side is clamped to
// half of it. After clamping TopLeft+TopRight <= w, BottomLeft+BottomRight <= w,
// TopLeft+BottomLeft <= h and TopRight+BottomRight <= h.
func (c CornerRadii) Clamp(w, h float32) CornerRadii {
	w = maxf(w, 0)
	h = maxf(h, 0)
	out := CornerRadii{
		TopLeft:     maxf(c.TopLeft, 0),
		TopRight:    maxf(c.TopRight, 0),
		BottomLeft:  maxf(c.BottomLeft, 0),
		BottomRight: maxf(c.BottomRight, 0),
	}

	clampPair := func(a, b *float32, limit float32) {
		if *a+*b > limit {
			*a = minf(*a, limit/2)
			*b = minf(*b, limit/2)
		}
	}
	clampPair(&out.TopLeft, &out.TopRight, w)
	clampPair(&out.BottomLeft, &out.BottomRight, w)
	clampPair(&out.TopLeft, &out.BottomLeft, h)
	clampPair(&out.TopRight, &out.BottomRight, h)

	if out != c && guiVerbose() {
		guiLogger.Debug("corner radii clamped", "requested", c, "clamped", out, "w", w, "h", h)
	}
	return out
}

// inset returns radii shrunk by d, never below zero.
func (c CornerRadii) inset(d float32) CornerRadii {
	return CornerRadii{
		TopLeft:     maxf(0, c.TopLeft-d),
		TopRight:    maxf(0, c.TopRight-d),
		BottomLeft:  maxf(0, c.BottomLeft-d),
		BottomRight: maxf(0, c.BottomRight-d),
	}
}

// RoundedRectPolygon returns the boundary of a rounded rectangle, walked
// clockwise on screen starting at the top-left arc. Each corner contributes
// exactly segments+1 points, so every call with the same segment count yields
// the same number of points. A zero radius collapses its arc to repeated
// copies of the corner point.
func RoundedRectPolygon(r Rect, radii CornerRadii, segments int) []Vec2 {
	if segments < 1 {
		segments = 1
	}
	r.W = maxf(r.W, 0)
	r.H = maxf(r.H, 0)
	radii = radii.Clamp(r.W, r.H)

	pts := make([]Vec2, 0, 4*(segments+1))
	corners := [4]struct {
		cx, cy, rad, start float32
	}{
		{r.X + radii.TopLeft, r.Y + radii.TopLeft, radii.TopLeft, math32.Pi},
		{r.Right() - radii.TopRight, r.Y + radii.TopRight, radii.TopRight, 1.5 * math32.Pi},
		{r.Right() - radii.BottomRight, r.Bottom() - radii.BottomRight, radii.BottomRight, 0},
		{r.X + radii.BottomLeft, r.Bottom() - radii.BottomLeft, radii.BottomLeft, 0.5 * math32.Pi},
	}
	step := (math32.Pi / 2) / float32(segments)
	for _, c := range corners {
		for i := 0; i <= segments; i++ {
			a := c.start + step*float32(i)
			pts = append(pts, Vec2{
				X: c.cx + c.rad*math32.Cos(a),
				Y: c.cy + c.rad*math32.Sin(a),
			})
		}
	}
	return pts
}

// BuildRoundedRectMesh fills a rounded rectangle with a triangle fan from the
// rectangle center. Zero-area fan triangles (from collapsed corners) are left
// out of the index list; the vertex list always holds 1 + 4*(segments+1) entries.
func BuildRoundedRectMesh(r Rect, radii CornerRadii, color uint32, segments int) Mesh {
	poly := RoundedRectPolygon(r, radii, segments)
	center := r.Center()

	m := Mesh{
		Vertices: make([]Vertex, 0, len(poly)+1),
		Indices:  make([]uint16, 0, len(poly)*3),
	}
	m.Vertices = append(m.Vertices, Vertex{Pos: [2]float32{center.X, center.Y}, Color: color})
	for _, p := range poly {
		m.Vertices = append(m.Vertices, Vertex{Pos: [2]float32{p.X, p.Y}, Color: color})
	}

	n := len(poly)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		if triangleArea(center, poly[i], poly[j]) < geomEpsilon {
			continue
		}
		m.Indices = append(m.Indices, 0, uint16(i+1), uint16(j+1))
	}
	return m
}

// BuildRoundedRectOutlineMesh builds a ring between the rounded rectangle and
// the same shape inset by thickness. Both boundaries come from
// RoundedRectPolygon with the same segment count, so vertex i of the outer
// polygon pairs with vertex i of the inner one. Thickness is clamped to half
// the shorter side so the inner rectangle never has a negative extent.
func BuildRoundedRectOutlineMesh(r Rect, radii CornerRadii, thickness float32, color uint32, segments int) Mesh {
	r.W = maxf(r.W, 0)
	r.H = maxf(r.H, 0)
	limit := minf(r.W, r.H) / 2
	if thickness > limit {
		guiLogger.Debug("outline thickness clamped", "requested", thickness, "clamped", limit)
		thickness = limit
	}
	if thickness <= 0 {
		return Mesh{}
	}

	radii = radii.Clamp(r.W, r.H)
	outer := RoundedRectPolygon(r, radii, segments)
	innerRect := r.Inset(thickness)
	inner := RoundedRectPolygon(innerRect, radii.inset(thickness), segments)

	n := len(outer)
	m := Mesh{
		Vertices: make([]Vertex, 0, 2*n),
		Indices:  make([]uint16, 0, 6*n),
	}
	for _, p := range outer {
		m.Vertices = append(m.Vertices, Vertex{Pos: [2]float32{p.X, p.Y}, Color: color})
	}
	for _, p := range inner {
		m.Vertices = append(m.Vertices, Vertex{Pos: [2]float32{p.X, p.Y}, Color: color})
	}
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		o0, o1 := uint16(i), uint16(j)
		i0, i1 := uint16(n+i), uint16(n+j)
		m.Indices = append(m.Indices, o0, o1, i1, o0, i1, i0)
	}
	return m
}

// LineSegment is a straight stroke between two points.
type LineSegment struct {
	A, B      Vec2
	Thickness float32
}

// Length returns the distance between the segment endpoints.
func (s LineSegment) Length() float32 {
	return distance(s.A, s.B)
}

// DashLayout describes how an edge was split into dashes.
type DashLayout struct {
	Count int     // number of dashes (1 means the edge is drawn solid)
	Dash  float32 // dash length
	Gap   float32 // realized gap length
}

// MaxDashesPerEdge caps the dashes on one edge so a dashed outline stays
// within MaxMeshVertices.
const MaxDashesPerEdge = 2048

// PlanDashes picks the dash count for an edge of the given length. The edge
// starts and ends with a full dash, so count dashes and count-1 gaps must add
// up to length. Among counts from 2 to floor(length/dash)+1 the one whose gap
// is closest to the requested gap wins (the smallest count wins a tie). If no
// count gives a non-negative gap the edge is solid.
//
// A pattern that would need more than MaxDashesPerEdge dashes is scaled up,
// keeping the dash to gap ratio.
func PlanDashes(length, dash, gap float32) DashLayout {
	solid := DashLayout{Count: 1, Dash: length}
	if length <= geomEpsilon || dash <= 0 {
		return solid
	}

	if period := dash + maxf(gap, 0); length/period > MaxDashesPerEdge-1 {
		scale := length / (period * (MaxDashesPerEdge - 1))
		dash *= scale
		gap *= scale
	}

	maxCount := min(int(math32.Floor(length/dash))+1, MaxDashesPerEdge)
	best := DashLayout{}
	bestErr := math32.Inf(1)
	for n := 2; n <= maxCount; n++ {
		g := (length - float32(n)*dash) / float32(n-1)
		if g < 0 {
			continue
		}
		if e := math32.Abs(g - gap); e < bestErr {
			bestErr = e
			best = DashLayout{Count: n, Dash: dash, Gap: g}
		}
	}
	if best.Count == 0 {
		return solid
	}
	return best
}

// BuildDashedEdge splits the segment p1->p2 into whole dashes using
// PlanDashes. Each call starts its own pattern at p1; nothing carries over
// between edges. A degenerate segment yields no dashes.
func BuildDashedEdge(p1, p2 Vec2, dash, gap, thickness float32) []LineSegment {
	length := distance(p1, p2)
	if length < geomEpsilon {
		return nil
	}
	plan := PlanDashes(length, dash, gap)
	if plan.Count <= 1 {
		return []LineSegment{{A: p1, B: p2, Thickness: thickness}}
	}

	dir := p2.Sub(p1).Mul(1 / length)
	segs := make([]LineSegment, 0, plan.Count)
	for i := 0; i < plan.Count; i++ {
		start := float32(i) * (plan.Dash + plan.Gap)
		end := start + plan.Dash
		if i == plan.Count-1 {
			segs = append(segs, LineSegment{A: p1.Add(dir.Mul(start)), B: p2, Thickness: thickness})
			continue
		}
		segs = append(segs, LineSegment{
			A:         p1.Add(dir.Mul(start)),
			B:         p1.Add(dir.Mul(end)),
			Thickness: thickness,
		})
	}
	return segs
}

// BuildThickLineMesh builds a quad around p1->p2. Thickness at or below 1
// produces a one pixel hairline. A segment shorter than the epsilon returns
// an empty mesh.
func BuildThickLineMesh(p1, p2 Vec2, color uint32, thickness float32) Mesh {
	length := distance(p1, p2)
	if length < geomEpsilon {
		return Mesh{}
	}
	if thickness <= 1 {
		thickness = 1
	}

	// Unit perpendicular scaled to half the thickness
	half := thickness / 2
	nx := -(p2.Y - p1.Y) / length * half
	ny := (p2.X - p1.X) / length * half

	return Mesh{
		Vertices: []Vertex{
			{Pos: [2]float32{p1.X + nx, p1.Y + ny}, Color: color},
			{Pos: [2]float32{p2.X + nx, p2.Y + ny}, Color: color},
			{Pos: [2]float32{p2.X - nx, p2.Y - ny}, Color: color},
			{Pos: [2]float32{p1.X - nx, p1.Y - ny}, Color: color},
		},
		Indices: []uint16{0, 1, 2, 0, 2, 3},
	}
}

// BuildDashedRoundedRectMesh strokes a rounded rectangle with a dash pattern
// on its four straight edges and solid corner arcs. The stroke is centered
// thickness/2 inside the rectangle bounds so it matches the solid outline.
func BuildDashedRoundedRectMesh(r Rect, radii CornerRadii, dash DashStyle, thickness float32, color uint32, segments int) Mesh {
	if thickness <= 0 {
		thickness = 1
	}
	thickness = minf(thickness, minf(r.W, r.H)/2)
	if thickness <= 0 {
		return Mesh{}
	}
	radii = radii.Clamp(r.W, r.H)
	half := thickness / 2
	path := r.Inset(half)
	pr := radii.inset(half)

	var m Mesh
	edges := [4][2]Vec2{
		{{path.X + pr.TopLeft, path.Y}, {path.Right() - pr.TopRight, path.Y}},
		{{path.Right(), path.Y + pr.TopRight}, {path.Right(), path.Bottom() - pr.BottomRight}},
		{{path.Right() - pr.BottomRight, path.Bottom()}, {path.X + pr.BottomLeft, path.Bottom()}},
		{{path.X, path.Bottom() - pr.BottomLeft}, {path.X, path.Y + pr.TopLeft}},
	}
	for _, e := range edges {
		for _, s := range BuildDashedEdge(e[0], e[1], dash.Dash, dash.Gap, thickness) {
			m.Append(BuildThickLineMesh(s.A, s.B, color, s.Thickness))
		}
	}

	if segments < 1 {
		segments = 1
	}
	poly := RoundedRectPolygon(path, pr, segments)
	per := segments + 1
	for c := 0; c < 4; c++ {
		arc := poly[c*per : (c+1)*per]
		for i := 0; i+1 < len(arc); i++ {
			m.Append(BuildThickLineMesh(arc[i], arc[i+1], color, thickness))
		}
	}
	return m
}

// BuildCircleMesh fills a circle with a triangle fan.
func BuildCircleMesh(center Vec2, radius float32, color uint32, segments int) Mesh {
	if radius <= 0 {
		return Mesh{}
	}
	if segments < 3 {
		segments = 3
	}
	m := Mesh{
		Vertices: make([]Vertex, 0, segments+1),
		Indices:  make([]uint16, 0, segments*3),
	}
	m.Vertices = append(m.Vertices, Vertex{Pos: [2]float32{center.X, center.Y}, Color: color})
	step := 2 * math32.Pi / float32(segments)
	for i := 0; i < segments; i++ {
		a := step * float32(i)
		m.Vertices = append(m.Vertices, Vertex{
			Pos:   [2]float32{center.X + radius*math32.Cos(a), center.Y + radius*math32.Sin(a)},
			Color: color,
		})
	}
	for i := 0; i < segments; i++ {
		m.Indices = append(m.Indices, 0, uint16(i+1), uint16((i+1)%segments+1))
	}
	return m
}

// BuildCircleOutlineMesh builds a ring of the given thickness inside the
// circle's radius.
func BuildCircleOutlineMesh(center Vec2, radius, thickness float32, color uint32, segments int) Mesh {
	if radius <= 0 || thickness <= 0 {
		return Mesh{}
	}
	if thickness > radius {
		thickness = radius
	}
	if segments < 3 {
		segments = 3
	}
	inner := radius - thickness
	m := Mesh{
		Vertices: make([]Vertex, 0, segments*2),
		Indices:  make([]uint16, 0, segments*6),
	}
	step := 2 * math32.Pi / float32(segments)
	for i := 0; i < segments; i++ {
		a := step * float32(i)
		cos, sin := math32.Cos(a), math32.Sin(a)
		m.Vertices = append(m.Vertices,
			Vertex{Pos: [2]float32{center.X + radius*cos, center.Y + radius*sin}, Color: color},
			Vertex{Pos: [2]float32{center.X + inner*cos, center.Y + inner*sin}, Color: color},
		)
	}
	for i := 0; i < segments; i++ {
		j := (i + 1) % segments
		o0, i0 := uint16(2*i), uint16(2*i+1)
		o1, i1 := uint16(2*j), uint16(2*j+1)
		m.Indices = append(m.Indices, o0, o1, i1, o0, i1, i0)
	}
	return m
}

// ArcSegmentsFor picks a segment count for a corner or circle of radius r.
func ArcSegmentsFor(r float32, base int) int {
	if base < 1 {
		base = DefaultArcSegments
	}
	n := int(math32.Ceil(r / 2))
	if n < base {
		return base
	}
	if n > 64 {
		return 64
	}
	return n
}

// triangleArea returns the unsigned area of triangle abc.
func triangleArea(a, b, c Vec2) float32 {
	return math32.Abs((b.X-a.X)*(c.Y-a.Y)-(c.X-a.X)*(b.Y-a.Y)) / 2
}

func distance(a, b Vec2) float32 {
	return math32.Hypot(b.X-a.X, b.Y-a.Y)
}
