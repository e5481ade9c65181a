package gui

// StyleKey is a typed key for a pushed, one-shot style value.
// The default is returned by ConsumeStyle when nothing was pushed.
//
// Example:
//
//	var StyleGlow = gui.NewStyleKey[float32]("glow", 0)
//
//	gui.PushStyle(ctx.Styles(), StyleGlow, 4)
//	glow, ok := gui.ConsumeStyle(ctx.Styles(), StyleGlow) // 4, true
//	glow, ok = gui.ConsumeStyle(ctx.Styles(), StyleGlow)  // 0, false
type StyleKey[T any] struct {
	name string
	def  T
}

// NewStyleKey creates a typed style key with a default value.
func NewStyleKey[T any](name string, defaultValue T) StyleKey[T] {
	return StyleKey[T]{name: name, def: defaultValue}
}

// Name returns the key name (useful for debugging).
func (k StyleKey[T]) Name() string { return k.name }

// Default returns the default value for this key.
func (k StyleKey[T]) Default() T { return k.def }

// StyleStack holds pushed styles waiting for the next widget that can use
// them. Every value is read at most once: consuming resets it to unset.
type StyleStack struct {
	pending map[string]any
}

// NewStyleStack creates an empty style stack.
func NewStyleStack() *StyleStack {
	return &StyleStack{pending: make(map[string]any, 8)}
}

// PushStyle sets a style for the next widget that consumes key.
// Pushing the same key twice keeps the last value.
func PushStyle[T any](s *StyleStack, key StyleKey[T], value T) {
	if s.pending == nil {
		s.pending = make(map[string]any, 8)
	}
	s.pending[key.name] = value
}

// ConsumeStyle returns the pushed value for key and resets it.
// Returns the key's default and false if nothing was pushed.
func ConsumeStyle[T any](s *StyleStack, key StyleKey[T]) (T, bool) {
	v, ok := s.pending[key.name]
	if !ok {
		return key.def, false
	}
	delete(s.pending, key.name)
	typed, ok := v.(T)
	if !ok {
		return key.def, false
	}
	return typed, true
}

// PeekStyle returns the pushed value for key without consuming it.
func PeekStyle[T any](s *StyleStack, key StyleKey[T]) (T, bool) {
	v, ok := s.pending[key.name]
	if !ok {
		return key.def, false
	}
	typed, ok := v.(T)
	if !ok {
		return key.def, false
	}
	return typed, true
}

// Pending returns the number of styles not yet consumed.
func (s *StyleStack) Pending() int {
	return len(s.pending)
}

// Reset drops every pending style.
func (s *StyleStack) Reset() {
	if len(s.pending) > 0 && guiVerbose() {
		for name := range s.pending {
			guiLogger.Debug("dropping unconsumed style", "style", name)
		}
	}
	clear(s.pending)
}

// =============================================================================
// Built-in Style Keys
// =============================================================================

var (
	StyleFontSize     = NewStyleKey[float32]("fontSize", 0)
	StyleAlignX       = NewStyleKey("alignX", AlignUnset)
	StyleAlignY       = NewStyleKey("alignY", AlignUnset)
	StyleBorderRadius = NewStyleKey("borderRadius", CornerRadii{})
	StylePadding      = NewStyleKey("padding", Padding{})
	StyleOutline      = NewStyleKey("outline", OutlineStyle{})
	StyleDash         = NewStyleKey("dash", DashStyle{})
	StyleAutoFocus    = NewStyleKey("autoFocus", false)
	StyleInputLock    = NewStyleKey("inputLock", false)
	StyleDefaultValue = NewStyleKey("defaultValue", "")
)

// =============================================================================
// Convenience push functions
// =============================================================================

// PushFontSize sets the text pixel height of the next Button or Input.
func (ctx *Context) PushFontSize(px float32) { PushStyle(ctx.styles, StyleFontSize, px) }

// PushTextAlign sets both text alignments of the next Button or Input.
func (ctx *Context) PushTextAlign(x, y Align) {
	PushStyle(ctx.styles, StyleAlignX, x)
	PushStyle(ctx.styles, StyleAlignY, y)
}

// PushAlignX sets the horizontal text alignment of the next Button or Input.
func (ctx *Context) PushAlignX(a Align) { PushStyle(ctx.styles, StyleAlignX, a) }

// PushAlignY sets the vertical text alignment of the next Button or Input.
func (ctx *Context) PushAlignY(a Align) { PushStyle(ctx.styles, StyleAlignY, a) }

// PushBorderRadius sets per-corner radii for the next Rect, Button or Input.
func (ctx *Context) PushBorderRadius(r CornerRadii) { PushStyle(ctx.styles, StyleBorderRadius, r) }

// PushRounding is PushBorderRadius with the same radius on every corner.
func (ctx *Context) PushRounding(r float32) { ctx.PushBorderRadius(UniformRadii(r)) }

// PushPadding sets the same inner padding on every side of the next Button
// or Input.
func (ctx *Context) PushPadding(p float32) { PushStyle(ctx.styles, StylePadding, UniformPadding(p)) }

// PushPaddingRect sets per-side inner padding of the next Button or Input.
func (ctx *Context) PushPaddingRect(p Padding) { PushStyle(ctx.styles, StylePadding, p) }

// PushOutlineStyle adds an outline to the next Rect, Circle, Button or Input.
func (ctx *Context) PushOutlineStyle(thickness float32, color uint32) {
	PushStyle(ctx.styles, StyleOutline, OutlineStyle{Thickness: thickness, Color: color})
}

// PushDashStyle dashes the next Line or outlined Rect.
func (ctx *Context) PushDashStyle(dash, gap float32) {
	PushStyle(ctx.styles, StyleDash, DashStyle{Dash: dash, Gap: gap})
}

// PushAutoFocus focuses the next Input on its first render.
func (ctx *Context) PushAutoFocus() { PushStyle(ctx.styles, StyleAutoFocus, true) }

// PushInputLock makes the next Input read-only.
func (ctx *Context) PushInputLock() { PushStyle(ctx.styles, StyleInputLock, true) }

// PushDefaultValue sets the value of the next Input on its first render.
func (ctx *Context) PushDefaultValue(v string) { PushStyle(ctx.styles, StyleDefaultValue, v) }
