package cellgrid

// Rect is an axis-aligned pixel rectangle in surface coordinates.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) empty() bool { return r.W <= 0 || r.H <= 0 }

// intersect returns the overlap of a and b, and whether it is non-empty.
func intersect(a, b Rect) (Rect, bool) {
	x1 := max64(a.X, b.X)
	y1 := max64(a.Y, b.Y)
	x2 := min64(a.X+a.W, b.X+b.W)
	y2 := min64(a.Y+a.H, b.Y+b.H)
	r := Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
	if r.empty() {
		return Rect{}, false
	}
	return r, true
}

func max64(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func min64(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// regionScreenRect returns the fixed on-screen rectangle a region occupies;
// it never moves with scrolling (spec §4.3: only the content drawn inside it
// scrolls).
func regionScreenRect(geom *Geometry, vp Viewport, region CellRegion) Rect {
	headerW := float64(geom.RowHeaderWidth())
	headerH := float64(geom.ColumnHeaderHeight())
	switch region {
	case RegionBody:
		return Rect{headerW, headerH, vp.Width - headerW, vp.Height - headerH}
	case RegionRowHeader:
		return Rect{0, headerH, headerW, vp.Height - headerH}
	case RegionColumnHeader:
		return Rect{headerW, 0, vp.Width - headerW, headerH}
	case RegionCornerHeader:
		return Rect{0, 0, headerW, headerH}
	default:
		return Rect{}
	}
}

// regionOrigin and regionScroll report how a region's screen rect maps back
// to content coordinates: subtract origin, then add the scroll offset on
// whichever axes this region actually scrolls.
func regionOrigin(geom *Geometry, region CellRegion) (originX, originY float64) {
	headerW := float64(geom.RowHeaderWidth())
	headerH := float64(geom.ColumnHeaderHeight())
	switch region {
	case RegionBody:
		return headerW, headerH
	case RegionRowHeader:
		return 0, headerH
	case RegionColumnHeader:
		return headerW, 0
	default:
		return 0, 0
	}
}

func regionScrolls(region CellRegion) (scrollX, scrollY bool) {
	switch region {
	case RegionBody:
		return true, true
	case RegionRowHeader:
		return false, true
	case RegionColumnHeader:
		return true, false
	default:
		return false, false
	}
}

// sectionRange finds the [lo, hi] section indices covering the half-open
// pixel span [start, end). Returns ok=false if the list is empty or the span
// misses it entirely.
func sectionRange(list *SectionList, start, end float64) (lo, hi int, ok bool) {
	if list.Count() == 0 {
		return 0, 0, false
	}
	total := list.TotalSize()
	s := int(start)
	e := int(end) - 1
	if s < 0 {
		s = 0
	}
	if e >= total {
		e = total - 1
	}
	if s > e || e < 0 {
		return 0, 0, false
	}
	lo, ok1 := list.SectionIndex(s)
	if !ok1 {
		return 0, 0, false
	}
	hi, ok2 := list.SectionIndex(e)
	if !ok2 {
		hi = list.Count() - 1
	}
	return lo, hi, true
}

// isBlankValue reports whether v should be treated as an empty cell: nil, or
// a non-finite float (spec §4.3: "non-finite numeric values are skipped
// exactly like nil").
func isBlankValue(v any) bool {
	if v == nil {
		return true
	}
	switch n := v.(type) {
	case float64:
		return n != n || n > maxFinite || n < -maxFinite
	case float32:
		f := float64(n)
		return f != f || f > maxFinite || f < -maxFinite
	}
	return false
}

const maxFinite = 1.7976931348623157e+308

// PaintEngine repaints arbitrary dirty rectangles of a grid by dispatching
// across the four regions in a fixed order and running the six-step
// per-region pipeline from spec §4.3. It holds no position of its own; the
// caller (Grid) supplies geometry, viewport and data on every call.
type PaintEngine struct {
	Geom            *Geometry
	Model           DataModel
	Renderer        Renderer
	RowStriping     Striping
	ColumnStriping  Striping
	BackgroundColor Color
	HasBackground   bool
	GridLineColor   Color
	GridLineWidth   float64

	inPaint bool
}

// paintOrder is fixed: void is a no-op included only for parity with the
// region enum's iteration order described in spec §4.3.
var paintOrder = []CellRegion{RegionVoid, RegionBody, RegionRowHeader, RegionColumnHeader, RegionCornerHeader}

// Paint repaints the dirty rectangle (rx, ry, rw, rh) of the surface gc
// wraps. Reentrant calls (a Renderer that calls back into Paint) are
// dropped, each one logged as a warning, per spec §4.3's "in_paint" guard.
func (p *PaintEngine) Paint(gc *GraphicsContext, vp Viewport, rx, ry, rw, rh float64) {
	if p.inPaint {
		logger.Warn().Msg("reentrant Paint call ignored")
		return
	}
	p.inPaint = true
	defer func() { p.inPaint = false }()

	dirty := Rect{rx, ry, rw, rh}
	for _, region := range paintOrder {
		if region == RegionVoid {
			continue
		}
		p.paintRegion(gc, vp, region, dirty)
	}
}

func (p *PaintEngine) paintRegion(gc *GraphicsContext, vp Viewport, region CellRegion, dirty Rect) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error().Interface("panic", r).Str("region", region.String()).Msg("paint panic, region aborted")
			gc.Dispose()
		}
	}()

	if region == RegionBody && (p.Geom.FreezeRowCount > 0 || p.Geom.FreezeColumnCount > 0) {
		p.paintFrozenBody(gc, vp, dirty)
		return
	}

	screenRect := regionScreenRect(p.Geom, vp, region)
	inter, ok := intersect(dirty, screenRect)
	if !ok {
		return
	}

	originX, originY := regionOrigin(p.Geom, region)
	scrollX, scrollY := regionScrolls(region)
	contentLeft := inter.X - originX
	contentTop := inter.Y - originY
	if scrollX {
		contentLeft += float64(vp.ScrollX)
	}
	if scrollY {
		contentTop += float64(vp.ScrollY)
	}
	contentRight := contentLeft + inter.W
	contentBottom := contentTop + inter.H

	rows, cols := p.Geom.ListsFor(region)
	r1, r2, rok := sectionRange(rows, contentTop, contentBottom)
	c1, c2, cok := sectionRange(cols, contentLeft, contentRight)
	if !rok || !cok {
		return
	}

	toScreenX := func(contentX float64) float64 {
		x := contentX
		if scrollX {
			x -= float64(vp.ScrollX)
		}
		return x + originX
	}
	toScreenY := func(contentY float64) float64 {
		y := contentY
		if scrollY {
			y -= float64(vp.ScrollY)
		}
		return y + originY
	}

	p.paintBlock(gc, region, rows, cols, r1, r2, c1, c2, inter, toScreenX, toScreenY)
}

// paintFrozenBody handles the body region when rows and/or columns are
// frozen, splitting it into up to four quadrants (frozen/frozen,
// frozen-rows/scrolled-columns, scrolled-rows/frozen-columns,
// scrolled/scrolled) and painting whichever overlap dirty.
func (p *PaintEngine) paintFrozenBody(gc *GraphicsContext, vp Viewport, dirty Rect) {
	body := regionScreenRect(p.Geom, vp, RegionBody)
	frozenW := float64(p.Geom.FrozenWidth())
	frozenH := float64(p.Geom.FrozenHeight())
	rowBoundary := p.Geom.FrozenHeight()
	colBoundary := p.Geom.FrozenWidth()

	type quad struct {
		clip                 Rect
		rowsFrozen, colsFrozen bool
		originX, originY     float64
	}
	quads := [4]quad{
		{Rect{body.X, body.Y, frozenW, frozenH}, true, true, body.X, body.Y},
		{Rect{body.X + frozenW, body.Y, body.W - frozenW, frozenH}, true, false, body.X + frozenW, body.Y},
		{Rect{body.X, body.Y + frozenH, frozenW, body.H - frozenH}, false, true, body.X, body.Y + frozenH},
		{Rect{body.X + frozenW, body.Y + frozenH, body.W - frozenW, body.H - frozenH}, false, false, body.X + frozenW, body.Y + frozenH},
	}
	for _, q := range quads {
		if q.clip.empty() {
			continue
		}
		inter, ok := intersect(dirty, q.clip)
		if !ok {
			continue
		}
		p.paintQuadrant(gc, vp, inter, q.rowsFrozen, q.colsFrozen, rowBoundary, colBoundary, q.originX, q.originY)
	}
}

func (p *PaintEngine) paintQuadrant(gc *GraphicsContext, vp Viewport, inter Rect, rowsFrozen, colsFrozen bool, rowBoundary, colBoundary int, originX, originY float64) {
	contentLeft := inter.X - originX
	contentTop := inter.Y - originY
	if !colsFrozen {
		contentLeft += float64(colBoundary) + float64(vp.ScrollX)
	}
	if !rowsFrozen {
		contentTop += float64(rowBoundary) + float64(vp.ScrollY)
	}

	rows, cols := p.Geom.BodyRows, p.Geom.BodyColumns
	r1, r2, rok := sectionRange(rows, contentTop, contentTop+inter.H)
	c1, c2, cok := sectionRange(cols, contentLeft, contentLeft+inter.W)
	if !rok || !cok {
		return
	}

	toScreenX := func(cx float64) float64 {
		if colsFrozen {
			return originX + cx
		}
		return originX + (cx - float64(colBoundary)) - float64(vp.ScrollX)
	}
	toScreenY := func(cy float64) float64 {
		if rowsFrozen {
			return originY + cy
		}
		return originY + (cy - float64(rowBoundary)) - float64(vp.ScrollY)
	}

	p.paintBlock(gc, RegionBody, rows, cols, r1, r2, c1, c2, inter, toScreenX, toScreenY)
}

// paintBlock runs the shared six-step pipeline (clip, background, striping,
// cells, grid lines) over one rectangular block of cells. It is called once
// per header region and, for the body, once per frozen-pane quadrant.
func (p *PaintEngine) paintBlock(gc *GraphicsContext, region CellRegion, rows, cols *SectionList, r1, r2, c1, c2 int, inter Rect, toScreenX, toScreenY func(float64) float64) {
	gc.Save()
	defer gc.Restore()

	gc.ClipRect(inter.X, inter.Y, inter.W, inter.H)

	if p.HasBackground {
		gc.SetFillColor(p.BackgroundColor)
		gc.FillRect(inter.X, inter.Y, inter.W, inter.H)
	}

	if p.RowStriping != nil {
		for r := r1; r <= r2; r++ {
			color, has := p.RowStriping.BackgroundColor(r)
			if !has {
				continue
			}
			off, _ := rows.SectionOffset(r)
			size, _ := rows.SectionSize(r)
			y := toScreenY(float64(off))
			gc.SetFillColor(color)
			gc.FillRect(inter.X, y, inter.W, float64(size)+1)
		}
	}
	if p.ColumnStriping != nil {
		for c := c1; c <= c2; c++ {
			color, has := p.ColumnStriping.BackgroundColor(c)
			if !has {
				continue
			}
			off, _ := cols.SectionOffset(c)
			size, _ := cols.SectionSize(c)
			x := toScreenX(float64(off))
			gc.SetFillColor(color)
			gc.FillRect(x, inter.Y, float64(size)+1, inter.H)
		}
	}

	if p.Renderer != nil {
		// Column-major draw order: each cell bleeds 1px into its neighbors
		// above and to the left, so the column walked last wins at shared
		// edges. Zero-size rows/columns are skipped outright.
		for c := c1; c <= c2; c++ {
			colOff, _ := cols.SectionOffset(c)
			colSize, _ := cols.SectionSize(c)
			if colSize <= 0 {
				continue
			}
			for r := r1; r <= r2; r++ {
				rowOff, _ := rows.SectionOffset(r)
				rowSize, _ := rows.SectionSize(r)
				if rowSize <= 0 {
					continue
				}
				value := p.Model.Data(region, r, c)
				if isBlankValue(value) {
					continue
				}
				cfg := CellConfig{
					X:        toScreenX(float64(colOff)) - 1,
					Y:        toScreenY(float64(rowOff)) - 1,
					Width:    float64(colSize) + 1,
					Height:   float64(rowSize) + 1,
					Region:   region,
					Row:      r,
					Column:   c,
					Value:    value,
					Metadata: p.Model.Metadata(region, r, c),
				}
				p.paintCell(gc, cfg)
			}
		}
	}

	p.paintGridLines(gc, rows, cols, r1, r2, c1, c2, inter, toScreenX, toScreenY)
}

// paintCell isolates a single Renderer.Paint call so a panic there aborts
// only the remaining cells of this region, not the whole paint pass.
func (p *PaintEngine) paintCell(gc *GraphicsContext, cfg CellConfig) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error().Interface("panic", r).Int("row", cfg.Row).Int("column", cfg.Column).Msg("renderer panic")
			panic(r) // re-panic: paintRegion's recover aborts the region
		}
	}()
	p.Renderer.Paint(gc, cfg)
}

func (p *PaintEngine) paintGridLines(gc *GraphicsContext, rows, cols *SectionList, r1, r2, c1, c2 int, inter Rect, toScreenX, toScreenY func(float64) float64) {
	if p.GridLineWidth <= 0 {
		return
	}
	gc.SetComposite(CompositeMultiply)
	gc.SetStrokeColor(p.GridLineColor)
	gc.SetLineWidth(p.GridLineWidth)

	// Lines are snapped to x/y - 0.5 so a 1px stroke lands on a single
	// device pixel instead of straddling two.
	gc.BeginPath()
	for c := c1; c <= c2+1; c++ {
		var x float64
		if c <= c2 {
			off, _ := cols.SectionOffset(c)
			x = toScreenX(float64(off))
		} else {
			off, _ := cols.SectionOffset(c2)
			size, _ := cols.SectionSize(c2)
			x = toScreenX(float64(off + size))
		}
		x -= 0.5
		gc.MoveTo(x, inter.Y)
		gc.LineTo(x, inter.Y+inter.H)
	}
	for r := r1; r <= r2+1; r++ {
		var y float64
		if r <= r2 {
			off, _ := rows.SectionOffset(r)
			y = toScreenY(float64(off))
		} else {
			off, _ := rows.SectionOffset(r2)
			size, _ := rows.SectionSize(r2)
			y = toScreenY(float64(off + size))
		}
		y -= 0.5
		gc.MoveTo(inter.X, y)
		gc.LineTo(inter.X+inter.W, y)
	}
	gc.Stroke()
}
