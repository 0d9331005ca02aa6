package cellgrid

// HAlign / VAlign are text alignment enums forwarded to Surface.SetTextAlign.
type HAlign int

const (
	AlignLeft HAlign = iota
	AlignCenter
	AlignRight
)

type VAlign int

const (
	AlignTop VAlign = iota
	AlignMiddle
	AlignBottom
)

// CompositeMode selects how strokes/fills blend with existing surface
// content. CompositeMultiply is the grid-line compositing trick from spec
// §4.3/§9; adapters fall back to pre-blending when their backend cannot do
// multiply cheaply.
type CompositeMode int

const (
	CompositeSourceOver CompositeMode = iota
	CompositeMultiply
)

// Transform is a 2D affine transform, column-major like most 2D graphics
// APIs: x' = a*x + c*y + e, y' = b*x + d*y + f.
type Transform struct {
	A, B, C, D, E, F float64
}

// IdentityTransform is the no-op transform.
var IdentityTransform = Transform{A: 1, D: 1}

// Surface is the concrete drawing backend a GraphicsContext wraps — a
// cairo.Context in the gtk adapter, a QPainter in the qt adapter. Reads are
// not part of this interface (spec §4.2: "reads go through directly" refers
// to GraphicsContext's own cached fields, which callers read without
// touching Surface at all).
type Surface interface {
	SetFillColor(c Color)
	SetStrokeColor(c Color)
	SetLineWidth(w float64)
	SetFont(family string, size float64)
	SetTextAlign(h HAlign, v VAlign)
	SetTransform(m Transform)
	SetComposite(mode CompositeMode)
	SetLineDash(pattern []float64, offset float64)

	FillRect(x, y, w, h float64)
	StrokeRect(x, y, w, h float64)
	ClipRect(x, y, w, h float64)
	DrawText(s string, x, y float64)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Stroke()

	// Blit shifts the surface's existing pixel content by (dx, dy), the
	// primitive ScrollEngine uses for incremental scroll repaint instead of
	// repainting the whole viewport.
	Blit(dx, dy float64)

	Save()
	Restore()
}

// state is the cached subset of Surface's mutable state.
type state struct {
	fillSet, strokeSet, lineWidthSet, fontSet, alignSet, transformSet, compositeSet, dashSet bool
	fill                                                                                     Color
	stroke                                                                                   Color
	lineWidth                                                                                float64
	fontFamily                                                                               string
	fontSize                                                                                 float64
	hAlign                                                                                   HAlign
	vAlign                                                                                   VAlign
	transform                                                                                Transform
	composite                                                                                CompositeMode
	dashPattern                                                                               []float64
	dashOffset                                                                                float64
}

// GraphicsContext wraps a Surface, caching its mutable paint state so that
// writing the same value twice in a row is a no-op (spec §4.2: "writing the
// same value to a surface state machine is a measurable cost"). Save/Restore
// push/pop a cached-state frame alongside the underlying surface's own
// save/restore stack; they must balance across one paint invocation, and
// Dispose pops any frames a panicking Renderer left open.
type GraphicsContext struct {
	surface Surface
	current state
	stack   []state
}

// NewGraphicsContext wraps surface.
func NewGraphicsContext(surface Surface) *GraphicsContext {
	return &GraphicsContext{surface: surface}
}

// SetSurface rebinds the context to a new backing Surface and drops any
// cached state, since the new surface starts with its own default state.
// Adapters call this when a resize forces a new backing surface to be
// allocated (e.g. a fixed-size cairo image surface that cannot grow).
func (gc *GraphicsContext) SetSurface(surface Surface) {
	gc.surface = surface
	gc.current = state{}
	gc.stack = nil
}

// Depth returns the number of unbalanced Save calls, for tests and for
// Dispose.
func (gc *GraphicsContext) Depth() int { return len(gc.stack) }

func (gc *GraphicsContext) SetFillColor(c Color) {
	if gc.current.fillSet && gc.current.fill == c {
		return
	}
	gc.current.fillSet, gc.current.fill = true, c
	gc.surface.SetFillColor(c)
}

func (gc *GraphicsContext) SetStrokeColor(c Color) {
	if gc.current.strokeSet && gc.current.stroke == c {
		return
	}
	gc.current.strokeSet, gc.current.stroke = true, c
	gc.surface.SetStrokeColor(c)
}

func (gc *GraphicsContext) SetLineWidth(w float64) {
	if gc.current.lineWidthSet && gc.current.lineWidth == w {
		return
	}
	gc.current.lineWidthSet, gc.current.lineWidth = true, w
	gc.surface.SetLineWidth(w)
}

func (gc *GraphicsContext) SetFont(family string, size float64) {
	if gc.current.fontSet && gc.current.fontFamily == family && gc.current.fontSize == size {
		return
	}
	gc.current.fontSet, gc.current.fontFamily, gc.current.fontSize = true, family, size
	gc.surface.SetFont(family, size)
}

func (gc *GraphicsContext) SetTextAlign(h HAlign, v VAlign) {
	if gc.current.alignSet && gc.current.hAlign == h && gc.current.vAlign == v {
		return
	}
	gc.current.alignSet, gc.current.hAlign, gc.current.vAlign = true, h, v
	gc.surface.SetTextAlign(h, v)
}

func (gc *GraphicsContext) SetTransform(m Transform) {
	if gc.current.transformSet && gc.current.transform == m {
		return
	}
	gc.current.transformSet, gc.current.transform = true, m
	gc.surface.SetTransform(m)
}

func (gc *GraphicsContext) SetComposite(mode CompositeMode) {
	if gc.current.compositeSet && gc.current.composite == mode {
		return
	}
	gc.current.compositeSet, gc.current.composite = true, mode
	gc.surface.SetComposite(mode)
}

func (gc *GraphicsContext) SetLineDash(pattern []float64, offset float64) {
	if gc.current.dashSet && gc.current.dashOffset == offset && floatsEqual(gc.current.dashPattern, pattern) {
		return
	}
	gc.current.dashSet, gc.current.dashPattern, gc.current.dashOffset = true, pattern, offset
	gc.surface.SetLineDash(pattern, offset)
}

func floatsEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Pass-through path/paint operations: never cached, forwarded as-is.
func (gc *GraphicsContext) FillRect(x, y, w, h float64)   { gc.surface.FillRect(x, y, w, h) }
func (gc *GraphicsContext) StrokeRect(x, y, w, h float64) { gc.surface.StrokeRect(x, y, w, h) }
func (gc *GraphicsContext) ClipRect(x, y, w, h float64)   { gc.surface.ClipRect(x, y, w, h) }
func (gc *GraphicsContext) DrawText(s string, x, y float64) { gc.surface.DrawText(s, x, y) }
func (gc *GraphicsContext) BeginPath()                    { gc.surface.BeginPath() }
func (gc *GraphicsContext) MoveTo(x, y float64)           { gc.surface.MoveTo(x, y) }
func (gc *GraphicsContext) LineTo(x, y float64)           { gc.surface.LineTo(x, y) }
func (gc *GraphicsContext) Stroke()                       { gc.surface.Stroke() }
func (gc *GraphicsContext) Blit(dx, dy float64)           { gc.surface.Blit(dx, dy) }

// Save pushes the cached state and the underlying surface's own save stack.
func (gc *GraphicsContext) Save() {
	gc.stack = append(gc.stack, gc.current)
	gc.surface.Save()
}

// Restore pops the cached state and the underlying surface's save stack. A
// Restore with nothing to pop is a no-op (defensive against unbalanced
// caller code; never panics).
func (gc *GraphicsContext) Restore() {
	if len(gc.stack) == 0 {
		return
	}
	gc.current = gc.stack[len(gc.stack)-1]
	gc.stack = gc.stack[:len(gc.stack)-1]
	gc.surface.Restore()
}

// Dispose pops any unbalanced Save frames left by a paint that exited
// abnormally (e.g. a recovered Renderer panic mid-region), per spec §4.2.
func (gc *GraphicsContext) Dispose() {
	for len(gc.stack) > 0 {
		gc.Restore()
	}
}
