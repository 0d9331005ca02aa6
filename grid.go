package cellgrid

// GridConfig is the one-time construction parameters for a Grid: initial
// row/column counts, default section sizes, and the header strip sizes.
type GridConfig struct {
	RowCount, ColumnCount                 int
	DefaultRowHeight, DefaultColumnWidth   int
	RowHeaderWidth, ColumnHeaderHeight     int
	Viewport                              Viewport
}

// Grid is the façade a host widget drives: it owns the geometry, paint and
// scroll engines, the selection model and the input state machine, and
// keeps all of them in sync with the bound DataModel's mutation signal.
type Grid struct {
	Geom      *Geometry
	Model     DataModel
	Selection *SelectionModel
	Paint     *PaintEngine
	Scroll    *ScrollEngine
	Input     *InputStateMachine
	GC        *GraphicsContext

	unsubscribeModel func()
}

// NewGrid constructs a Grid over surface, bound to model and painted by
// renderer.
func NewGrid(surface Surface, model DataModel, renderer Renderer, cfg GridConfig) *Grid {
	geom := NewGeometry(cfg.RowCount, cfg.ColumnCount, cfg.DefaultRowHeight, cfg.DefaultColumnWidth, cfg.RowHeaderWidth, cfg.ColumnHeaderHeight)
	gc := NewGraphicsContext(surface)
	paint := &PaintEngine{Geom: geom, Renderer: renderer}
	scroll := NewScrollEngine(geom, paint, gc, cfg.Viewport)
	sel := NewSelectionModel(cfg.RowCount-1, cfg.ColumnCount-1)
	input := NewInputStateMachine(geom, scroll, sel, nil)

	g := &Grid{Geom: geom, Selection: sel, Paint: paint, Scroll: scroll, Input: input, GC: gc}
	g.bindModel(model)
	return g
}

// SetModel rebinds the grid to a new DataModel: unsubscribes the old one,
// subscribes the new one, and repopulates row/column counts and repaints.
func (g *Grid) SetModel(model DataModel) {
	g.bindModel(model)
	g.RepaintAll()
}

func (g *Grid) bindModel(model DataModel) {
	if g.unsubscribeModel != nil {
		g.unsubscribeModel()
		g.unsubscribeModel = nil
	}
	g.Model = model
	g.Paint.Model = model
	if model != nil {
		g.unsubscribeModel = model.OnChanged(g.handleChange)
	}
	g.repopulate()
}

func (g *Grid) repopulate() {
	if g.Model == nil {
		return
	}
	rowCount := g.Model.RowCount(RowRegionBody)
	colCount := g.Model.ColumnCount(ColumnRegionBody)
	g.Geom.BodyRows = NewSectionList(g.Geom.BodyRows.BaseSize(), rowCount)
	g.Geom.BodyColumns = NewSectionList(g.Geom.BodyColumns.BaseSize(), colCount)
	g.Selection.Resize(rowCount-1, colCount-1)
}

// handleChange reacts to a DataModel mutation notification, keeping the body
// SectionLists, the selection bounds and the painted surface consistent with
// it (spec §9).
func (g *Grid) handleChange(ev ChangeEvent) {
	switch ev.Kind {
	case RowsInserted:
		g.Geom.BodyRows.InsertSections(ev.Index, ev.Count)
		g.Selection.Resize(g.Geom.BodyRows.Count()-1, g.Geom.BodyColumns.Count()-1)
		g.RepaintAll()
	case RowsRemoved:
		g.Geom.BodyRows.RemoveSections(ev.Index, ev.Count)
		g.Selection.Resize(g.Geom.BodyRows.Count()-1, g.Geom.BodyColumns.Count()-1)
		g.RepaintAll()
	case ColumnsInserted:
		g.Geom.BodyColumns.InsertSections(ev.Index, ev.Count)
		g.Selection.Resize(g.Geom.BodyRows.Count()-1, g.Geom.BodyColumns.Count()-1)
		g.RepaintAll()
	case ColumnsRemoved:
		g.Geom.BodyColumns.RemoveSections(ev.Index, ev.Count)
		g.Selection.Resize(g.Geom.BodyRows.Count()-1, g.Geom.BodyColumns.Count()-1)
		g.RepaintAll()
	case RowsMoved, ColumnsMoved:
		// Reordering changes which data backs each section without changing
		// any section's size; there's nothing to recompute, just repaint.
		g.RepaintAll()
	case CellsChanged:
		g.repaintCellRange(ev.Row1, ev.Column1, ev.Row2, ev.Column2)
	case ModelReset:
		g.repopulate()
		g.RepaintAll()
	}
}

func (g *Grid) repaintCellRange(r1, c1, r2, c2 int) {
	if r2 < r1 {
		r1, r2 = r2, r1
	}
	if c2 < c1 {
		c1, c2 = c2, c1
	}
	rowOff1, ok1 := g.Geom.BodyRows.SectionOffset(r1)
	rowOff2, ok2 := g.Geom.BodyRows.SectionOffset(r2)
	rowSize2, ok3 := g.Geom.BodyRows.SectionSize(r2)
	colOff1, ok4 := g.Geom.BodyColumns.SectionOffset(c1)
	colOff2, ok5 := g.Geom.BodyColumns.SectionOffset(c2)
	colSize2, ok6 := g.Geom.BodyColumns.SectionSize(c2)
	if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 || !ok6 {
		return
	}

	vp := g.Scroll.Viewport
	headerW := float64(g.Geom.RowHeaderWidth())
	headerH := float64(g.Geom.ColumnHeaderHeight())
	x := headerW + float64(colOff1) - float64(vp.ScrollX)
	y := headerH + float64(rowOff1) - float64(vp.ScrollY)
	w := float64(colOff2 + colSize2 - colOff1)
	h := float64(rowOff2 + rowSize2 - rowOff1)
	g.Paint.Paint(g.GC, vp, x, y, w, h)
}

// RepaintAll repaints the entire current viewport.
func (g *Grid) RepaintAll() {
	vp := g.Scroll.Viewport
	g.Paint.Paint(g.GC, vp, 0, 0, vp.Width, vp.Height)
}

// FreezeRows pins the first n body rows so they stay visible regardless of
// vertical scroll (supplemental to spec.md; grounded on the original
// buffer's split panes).
func (g *Grid) FreezeRows(n int) {
	if n < 0 {
		n = 0
	}
	g.Geom.FreezeRowCount = n
	g.RepaintAll()
}

// FreezeColumns pins the first n body columns so they stay visible
// regardless of horizontal scroll.
func (g *Grid) FreezeColumns(n int) {
	if n < 0 {
		n = 0
	}
	g.Geom.FreezeColumnCount = n
	g.RepaintAll()
}

// SetRenderer swaps the cell renderer and repaints.
func (g *Grid) SetRenderer(r Renderer) {
	g.Paint.Renderer = r
	g.RepaintAll()
}

// SetBackgroundColor sets the region background fill and repaints.
func (g *Grid) SetBackgroundColor(c Color) {
	g.Paint.BackgroundColor = c
	g.Paint.HasBackground = true
	g.RepaintAll()
}

// ClearBackgroundColor disables the background fill.
func (g *Grid) ClearBackgroundColor() {
	g.Paint.HasBackground = false
	g.RepaintAll()
}

// SetGridLineColor sets the grid-line stroke color.
func (g *Grid) SetGridLineColor(c Color) {
	g.Paint.GridLineColor = c
	g.RepaintAll()
}

// SetGridLineWidth sets the grid-line stroke width. A width <= 0 disables
// grid-line drawing entirely.
func (g *Grid) SetGridLineWidth(w float64) {
	g.Paint.GridLineWidth = w
	g.RepaintAll()
}

// SetRowStriping sets (or, with nil, clears) the alternating row background.
func (g *Grid) SetRowStriping(s Striping) {
	g.Paint.RowStriping = s
	g.RepaintAll()
}

// SetColumnStriping sets (or, with nil, clears) the alternating column
// background.
func (g *Grid) SetColumnStriping(s Striping) {
	g.Paint.ColumnStriping = s
	g.RepaintAll()
}

// AttachScrollbars wires host scrollbar widgets to the grid's scroll engine.
func (g *Grid) AttachScrollbars(h, v Scrollbar) {
	g.Scroll.AttachScrollbars(h, v)
}

// SetCursorHost wires a host cursor controller for resize-handle cursor
// overrides.
func (g *Grid) SetCursorHost(host CursorHost) {
	g.Input.CursorHost = host
}

// Resize updates the viewport dimensions, repainting only what became newly
// visible.
func (g *Grid) Resize(width, height float64) {
	g.Scroll.Resize(width, height)
}

// Dispose releases the grid's external resources: it unsubscribes from the
// model, detaches scrollbars, and ends any in-flight pointer gesture
// (releasing a held cursor override and cancelling any autoscroll timer).
func (g *Grid) Dispose() {
	if g.unsubscribeModel != nil {
		g.unsubscribeModel()
		g.unsubscribeModel = nil
	}
	g.Scroll.DetachScrollbars()
	g.Input.PointerUp(0, 0)
}
