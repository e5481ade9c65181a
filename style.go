package gui

// Align positions content along one axis of its rectangle.
type Align int

const (
	AlignUnset  Align = iota // Use the widget's default
	AlignStart               // Left or top
	AlignCenter              // Center
	AlignEnd                 // Right or bottom
)

// Padding is the space between a widget's edge and its content.
type Padding struct {
	Top, Right, Bottom, Left float32
}

// UniformPadding returns the same padding on every side.
func UniformPadding(p float32) Padding {
	return Padding{Top: p, Right: p, Bottom: p, Left: p}
}

// Horizontal returns Left+Right.
func (p Padding) Horizontal() float32 { return p.Left + p.Right }

// Vertical returns Top+Bottom.
func (p Padding) Vertical() float32 { return p.Top + p.Bottom }

// DashStyle describes a dash pattern. The zero value means solid.
type DashStyle struct {
	Dash float32 // Desired dash length
	Gap  float32 // Desired gap length
}

// Enabled reports whether the style actually dashes.
func (d DashStyle) Enabled() bool {
	return d.Dash > 0 && d.Gap > 0
}

// OutlineStyle adds a border around a filled shape.
type OutlineStyle struct {
	Thickness float32
	Color     uint32
}

// Enabled reports whether an outline should be drawn.
func (o OutlineStyle) Enabled() bool {
	return o.Thickness > 0 && o.Color>>24 != 0
}

// Style defines the default appearance of widgets. Per-call overrides go
// through the pushed styles on Context, e.g. PushFontSize or PushPadding.
type Style struct {
	// Input
	CaretWidth      float32
	InputBorder     OutlineStyle // Default input outline (Thickness 0 = none)
	InputPadding    Padding
	LockedOverlay   uint32  // Drawn over read-only inputs
	PlaceholderFade float32 // Alpha multiplier for placeholder text

	// Button
	ButtonHoverTint uint8 // Alpha of the white overlay on hovered buttons

	// Scrollbar
	ScrollbarSize        float32
	ScrollbarBgColor     uint32
	ScrollbarGrabColor   uint32
	ScrollbarGrabHovered uint32
	ScrollbarGrabActive  uint32
	ScrollbarMinGrab     float32 // Minimum thumb height
	ScrollStep           float32 // Pixels scrolled per wheel notch

	// ContainerBottomMargin is added below the lowest item of a container.
	ContainerBottomMargin float32
}

// DefaultStyle returns the default style with sensible defaults.
func DefaultStyle() Style {
	return Style{
		CaretWidth:      1,
		InputBorder:     OutlineStyle{Thickness: 1, Color: ColorBlack},
		InputPadding:    Padding{Top: 3, Right: 5, Bottom: 3, Left: 5},
		LockedOverlay:   RGBA(120, 120, 120, 120),
		PlaceholderFade: 0.75,

		ButtonHoverTint: 40,

		ScrollbarSize:        8,
		ScrollbarBgColor:     RGBA(45, 45, 45, 128),
		ScrollbarGrabColor:   RGBA(180, 180, 180, 200),
		ScrollbarGrabHovered: RGBA(200, 200, 200, 220),
		ScrollbarGrabActive:  RGBA(220, 220, 220, 240),
		ScrollbarMinGrab:     20,
		ScrollStep:           20,

		ContainerBottomMargin: 20,
	}
}

// LightStyle returns a light variant of DefaultStyle.
func LightStyle() Style {
	s := DefaultStyle()
	s.InputBorder.Color = RGBA(150, 150, 150, 255)
	s.ScrollbarBgColor = RGBA(240, 240, 240, 255)
	s.ScrollbarGrabColor = RGBA(180, 180, 180, 255)
	s.ScrollbarGrabHovered = RGBA(160, 160, 160, 255)
	s.ScrollbarGrabActive = RGBA(140, 140, 140, 255)
	return s
}
