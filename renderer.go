package cellgrid

// CellConfig is handed to a Renderer for each non-empty cell. (X, Y) and
// (Width, Height) are already adjusted per spec §4.3 step 6: the origin is
// offset by -1 and the extent by +1 so cells paint one pixel into their
// neighbors, under the grid lines.
type CellConfig struct {
	X, Y          float64
	Width, Height float64
	Region        CellRegion
	Row, Column   int
	Value         any
	Metadata      Metadata
}

// Renderer paints a single cell. Implementations must not throw/panic (a
// panic is recovered by PaintEngine, logged, and aborts only the current
// region — see spec §4.3/§7), must not mutate the DataModel or Grid, and
// must not draw outside [0,Height) vertically; PaintEngine has already
// clipped width via the Surface clip rect.
type Renderer interface {
	Paint(gc *GraphicsContext, cfg CellConfig)
}

// RendererFunc adapts a plain function to a Renderer.
type RendererFunc func(gc *GraphicsContext, cfg CellConfig)

// Paint implements Renderer.
func (f RendererFunc) Paint(gc *GraphicsContext, cfg CellConfig) { f(gc, cfg) }

// Striping supplies a per-index background color for alternating row/column
// shading. BackgroundColor returns (color, false) to mean "no stripe at this
// index" (the spec's "empty string" sentinel, made a bool in Go).
type Striping interface {
	BackgroundColor(index int) (Color, bool)
}

// StripingFunc adapts a plain function to a Striping provider.
type StripingFunc func(index int) (Color, bool)

// BackgroundColor implements Striping.
func (f StripingFunc) BackgroundColor(index int) (Color, bool) { return f(index) }

// Axis distinguishes rows from columns for operations that apply to either.
type Axis int

const (
	AxisRow Axis = iota
	AxisColumn
)

// Scrollbar is the minimal contract the core needs from a host scrollbar
// widget: a value/page pair to keep in sync, and edge signals the core
// reacts to. Adapters (gtk.Scrollbar, qt.QScrollBar) implement this by
// wrapping the real widget.
type Scrollbar interface {
	Value() float64
	SetValue(v float64)
	Page() float64
	SetPage(p float64)

	// OnThumbMoved, OnPageRequested and OnStepRequested register the host
	// event handlers; each returns an unsubscribe function. direction is -1
	// for decrement (up/left) and +1 for increment (down/right).
	OnThumbMoved(fn func(value float64)) (unsubscribe func())
	OnPageRequested(fn func(direction int)) (unsubscribe func())
	OnStepRequested(fn func(direction int)) (unsubscribe func())
}
