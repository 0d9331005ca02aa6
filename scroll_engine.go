package cellgrid

// ScrollEngine owns the body's scroll position and keeps it, the attached
// scrollbars and the on-screen surface in sync. Small scrolls blit the
// surviving pixels and repaint only the newly exposed strip; scrolls larger
// than the viewport fall back to a full repaint (spec §4.4).
type ScrollEngine struct {
	Geom     *Geometry
	Paint    *PaintEngine
	GC       *GraphicsContext
	Viewport Viewport

	HScrollbar, VScrollbar Scrollbar
	unsubH, unsubV         []func()

	StepSizeX, StepSizeY int // StepUp/Down/Left/Right size in pixels; 0 uses base section size

	snapPointsX, snapPointsY []int
	snapThreshold            int
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// NewScrollEngine builds a ScrollEngine over an already-populated geometry
// and paint engine, with scroll at the origin.
func NewScrollEngine(geom *Geometry, paint *PaintEngine, gc *GraphicsContext, vp Viewport) *ScrollEngine {
	return &ScrollEngine{Geom: geom, Paint: paint, GC: gc, Viewport: vp}
}

func (s *ScrollEngine) maxScrollX() int {
	v := s.Geom.BodyColumns.TotalSize() - int(s.Geom.VisibleBodyWidth(s.Viewport))
	if v < 0 {
		return 0
	}
	return v
}

func (s *ScrollEngine) maxScrollY() int {
	v := s.Geom.BodyRows.TotalSize() - int(s.Geom.VisibleBodyHeight(s.Viewport))
	if v < 0 {
		return 0
	}
	return v
}

// SetSnapPoints configures magnetic scroll snapping on one axis (supplemental
// feature grounded on the original buffer's magnetic-threshold scroll
// normalization): ScrollTo pulls its target onto the nearest point in points
// when within threshold pixels of it.
func (s *ScrollEngine) SetSnapPoints(axis Axis, points []int, threshold int) {
	sorted := append([]int(nil), points...)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j-1] > sorted[j]; j-- {
			sorted[j-1], sorted[j] = sorted[j], sorted[j-1]
		}
	}
	if axis == AxisRow {
		s.snapPointsY = sorted
	} else {
		s.snapPointsX = sorted
	}
	s.snapThreshold = threshold
}

func snapTo(points []int, v, threshold int) int {
	if len(points) == 0 || threshold <= 0 {
		return v
	}
	best := v
	bestDist := threshold + 1
	for _, p := range points {
		d := absInt(p - v)
		if d < bestDist {
			bestDist = d
			best = p
		}
	}
	return best
}

// ScrollTo moves the body's scroll position to (x, y), clamped to content
// bounds and pulled onto any configured snap point, then repaints whatever
// became visible and resyncs the scrollbars. A no-op delta does nothing.
func (s *ScrollEngine) ScrollTo(x, y int) {
	x = clampInt(x, 0, s.maxScrollX())
	y = clampInt(y, 0, s.maxScrollY())
	x = snapTo(s.snapPointsX, x, s.snapThreshold)
	y = snapTo(s.snapPointsY, y, s.snapThreshold)

	dx := x - s.Viewport.ScrollX
	dy := y - s.Viewport.ScrollY
	if dx == 0 && dy == 0 {
		return
	}
	s.Viewport.ScrollX = x
	s.Viewport.ScrollY = y
	s.repaintAfterScroll(dx, dy)
	s.syncScrollbars()
}

// ScrollBy moves the scroll position by a relative (dx, dy).
func (s *ScrollEngine) ScrollBy(dx, dy int) {
	s.ScrollTo(s.Viewport.ScrollX+dx, s.Viewport.ScrollY+dy)
}

// repaintAfterScroll applies the vertical and horizontal deltas as two
// independent passes (spec §4.4): a vertical scroll carries the row header
// along with the body (the row header's labels move with it; the column
// header does not), and a horizontal scroll carries the column header along
// with the body. Each pass decides full-repaint-vs-blit on its own extent.
func (s *ScrollEngine) repaintAfterScroll(dx, dy int) {
	body := regionScreenRect(s.Geom, s.Viewport, RegionBody)
	rowHeader := regionScreenRect(s.Geom, s.Viewport, RegionRowHeader)
	colHeader := regionScreenRect(s.Geom, s.Viewport, RegionColumnHeader)

	if dy != 0 {
		rect := Rect{X: rowHeader.X, Y: body.Y, W: rowHeader.W + body.W, H: body.H}
		s.repaintAxis(rect, 0, dy)
	}
	if dx != 0 {
		rect := Rect{X: body.X, Y: colHeader.Y, W: body.W, H: colHeader.H + body.H}
		s.repaintAxis(rect, dx, 0)
	}
}

// repaintAxis blits or fully repaints rect for a single-axis scroll delta,
// whichever of dx/dy is nonzero: if the delta is at least as large as rect's
// extent on that axis, the whole rect is repainted; otherwise the surviving
// pixels are blitted into place and only the newly exposed strip is
// repainted.
func (s *ScrollEngine) repaintAxis(rect Rect, dx, dy int) {
	extent := rect.W
	delta := dx
	if dy != 0 {
		extent = rect.H
		delta = dy
	}
	if absInt(delta) >= int(extent) {
		s.Paint.Paint(s.GC, s.Viewport, rect.X, rect.Y, rect.W, rect.H)
		return
	}

	s.GC.Save()
	s.GC.ClipRect(rect.X, rect.Y, rect.W, rect.H)
	s.GC.Blit(-float64(dx), -float64(dy))
	s.GC.Restore()

	for _, r := range exposedStrips(rect, dx, dy) {
		s.Paint.Paint(s.GC, s.Viewport, r.X, r.Y, r.W, r.H)
	}
}

// exposedStrips returns the strip(s) of rect newly revealed by a blit of
// (-dx, -dy). A pure-axis scroll exposes one strip; a diagonal scroll's two
// strips overlap at the corner, which is harmless since painting is
// idempotent.
func exposedStrips(rect Rect, dx, dy int) []Rect {
	var strips []Rect
	if dx != 0 {
		w := float64(absInt(dx))
		x := rect.X
		if dx > 0 {
			x = rect.X + rect.W - w
		}
		strips = append(strips, Rect{x, rect.Y, w, rect.H})
	}
	if dy != 0 {
		h := float64(absInt(dy))
		y := rect.Y
		if dy > 0 {
			y = rect.Y + rect.H - h
		}
		strips = append(strips, Rect{rect.X, y, rect.W, h})
	}
	return strips
}

func (s *ScrollEngine) stepX() int {
	if s.StepSizeX > 0 {
		return s.StepSizeX
	}
	return s.Geom.BodyColumns.BaseSize()
}

func (s *ScrollEngine) stepY() int {
	if s.StepSizeY > 0 {
		return s.StepSizeY
	}
	return s.Geom.BodyRows.BaseSize()
}

func (s *ScrollEngine) StepUp()    { s.ScrollBy(0, -s.stepY()) }
func (s *ScrollEngine) StepDown()  { s.ScrollBy(0, s.stepY()) }
func (s *ScrollEngine) StepLeft()  { s.ScrollBy(-s.stepX(), 0) }
func (s *ScrollEngine) StepRight() { s.ScrollBy(s.stepX(), 0) }

func (s *ScrollEngine) PageUp()    { s.ScrollBy(0, -int(s.Geom.VisibleBodyHeight(s.Viewport))) }
func (s *ScrollEngine) PageDown()  { s.ScrollBy(0, int(s.Geom.VisibleBodyHeight(s.Viewport))) }
func (s *ScrollEngine) PageLeft()  { s.ScrollBy(-int(s.Geom.VisibleBodyWidth(s.Viewport)), 0) }
func (s *ScrollEngine) PageRight() { s.ScrollBy(int(s.Geom.VisibleBodyWidth(s.Viewport)), 0) }

// ScrollToRow/ScrollToColumn/ScrollToCell scroll by the minimum amount
// needed to bring the given section(s) fully into view, per spec §4.6's
// cursor-follows-selection behavior.
func (s *ScrollEngine) ScrollToRow(row int) {
	off, ok := s.Geom.BodyRows.SectionOffset(row)
	if !ok {
		return
	}
	size, _ := s.Geom.BodyRows.SectionSize(row)
	s.ScrollTo(s.Viewport.ScrollX, scrollIntoView(s.Viewport.ScrollY, int(s.Geom.VisibleBodyHeight(s.Viewport)), off, size))
}

func (s *ScrollEngine) ScrollToColumn(col int) {
	off, ok := s.Geom.BodyColumns.SectionOffset(col)
	if !ok {
		return
	}
	size, _ := s.Geom.BodyColumns.SectionSize(col)
	s.ScrollTo(scrollIntoView(s.Viewport.ScrollX, int(s.Geom.VisibleBodyWidth(s.Viewport)), off, size), s.Viewport.ScrollY)
}

func (s *ScrollEngine) ScrollToCell(row, col int) {
	rowOff, rok := s.Geom.BodyRows.SectionOffset(row)
	colOff, cok := s.Geom.BodyColumns.SectionOffset(col)
	if !rok || !cok {
		return
	}
	rowSize, _ := s.Geom.BodyRows.SectionSize(row)
	colSize, _ := s.Geom.BodyColumns.SectionSize(col)
	x := scrollIntoView(s.Viewport.ScrollX, int(s.Geom.VisibleBodyWidth(s.Viewport)), colOff, colSize)
	y := scrollIntoView(s.Viewport.ScrollY, int(s.Geom.VisibleBodyHeight(s.Viewport)), rowOff, rowSize)
	s.ScrollTo(x, y)
}

func scrollIntoView(scroll, visible, off, size int) int {
	if off < scroll {
		return off
	}
	if off+size > scroll+visible {
		return off + size - visible
	}
	return scroll
}

// Resize updates the viewport dimensions. A shrink needs no repaint (the
// host simply shows less of an already-correct surface); a growth repaints
// only the newly revealed strip(s) on the right and/or bottom, since the
// surviving region's pixels and scroll origin are unchanged. When a growth
// forces the scroll position to be clamped, the origin does move, and the
// whole viewport is repainted instead.
func (s *ScrollEngine) Resize(newWidth, newHeight float64) {
	oldWidth, oldHeight := s.Viewport.Width, s.Viewport.Height
	oldScrollX, oldScrollY := s.Viewport.ScrollX, s.Viewport.ScrollY
	s.Viewport.Width, s.Viewport.Height = newWidth, newHeight
	s.Viewport.ScrollX = clampInt(s.Viewport.ScrollX, 0, s.maxScrollX())
	s.Viewport.ScrollY = clampInt(s.Viewport.ScrollY, 0, s.maxScrollY())
	s.syncScrollbars()

	if s.Viewport.ScrollX != oldScrollX || s.Viewport.ScrollY != oldScrollY {
		s.Paint.Paint(s.GC, s.Viewport, 0, 0, newWidth, newHeight)
		return
	}

	if newWidth <= oldWidth && newHeight <= oldHeight {
		return
	}
	if newWidth > oldWidth {
		s.Paint.Paint(s.GC, s.Viewport, oldWidth, 0, newWidth-oldWidth, newHeight)
	}
	if newHeight > oldHeight {
		s.Paint.Paint(s.GC, s.Viewport, 0, oldHeight, newWidth, newHeight-oldHeight)
	}
}

// AttachScrollbars wires host scrollbar widgets to this engine: thumb drags
// call ScrollTo directly, page/step requests call the matching method. Any
// previously attached scrollbars are detached first.
func (s *ScrollEngine) AttachScrollbars(h, v Scrollbar) {
	s.DetachScrollbars()
	s.HScrollbar, s.VScrollbar = h, v
	if h != nil {
		s.unsubH = append(s.unsubH,
			h.OnThumbMoved(func(value float64) { s.ScrollTo(int(value), s.Viewport.ScrollY) }),
			h.OnPageRequested(func(dir int) {
				if dir < 0 {
					s.PageLeft()
				} else {
					s.PageRight()
				}
			}),
			h.OnStepRequested(func(dir int) {
				if dir < 0 {
					s.StepLeft()
				} else {
					s.StepRight()
				}
			}),
		)
	}
	if v != nil {
		s.unsubV = append(s.unsubV,
			v.OnThumbMoved(func(value float64) { s.ScrollTo(s.Viewport.ScrollX, int(value)) }),
			v.OnPageRequested(func(dir int) {
				if dir < 0 {
					s.PageUp()
				} else {
					s.PageDown()
				}
			}),
			v.OnStepRequested(func(dir int) {
				if dir < 0 {
					s.StepUp()
				} else {
					s.StepDown()
				}
			}),
		)
	}
	s.syncScrollbars()
}

// DetachScrollbars unsubscribes and drops any attached scrollbars.
func (s *ScrollEngine) DetachScrollbars() {
	for _, fn := range s.unsubH {
		fn()
	}
	for _, fn := range s.unsubV {
		fn()
	}
	s.unsubH, s.unsubV = nil, nil
	s.HScrollbar, s.VScrollbar = nil, nil
}

func (s *ScrollEngine) syncScrollbars() {
	if s.HScrollbar != nil {
		s.HScrollbar.SetValue(float64(s.Viewport.ScrollX))
		s.HScrollbar.SetPage(s.Geom.VisibleBodyWidth(s.Viewport))
	}
	if s.VScrollbar != nil {
		s.VScrollbar.SetValue(float64(s.Viewport.ScrollY))
		s.VScrollbar.SetPage(s.Geom.VisibleBodyHeight(s.Viewport))
	}
}
