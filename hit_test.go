package cellgrid

// ResizeHandle identifies which edge of a header cell a point is close
// enough to for a resize drag to start. Body cells never produce anything
// but HandleNone.
type ResizeHandle int

const (
	HandleNone ResizeHandle = iota
	HandleTop
	HandleLeft
	HandleRight
	HandleBottom
)

// resizeHandleLeadingPx/TrailingPx are the asymmetric thresholds from spec
// §4.5: the trailing edge is wider because it's the more common grab.
const (
	resizeHandleLeadingPx  = 5
	resizeHandleTrailingPx = 6
)

// HitTestResult is the outcome of mapping a pixel to a grid location.
type HitTestResult struct {
	Region        CellRegion
	Row, Column   int
	X, Y          float64 // local offset of the point inside the cell
	Width, Height float64 // the cell's size
	Handle        ResizeHandle
}

func voidHit() HitTestResult { return HitTestResult{Region: RegionVoid} }

// HitTest maps a client-space point to a (region, row, column) plus local
// offsets and, for header regions, a resize handle.
func HitTest(geom *Geometry, vp Viewport, clientX, clientY float64) HitTestResult {
	if clientX < 0 || clientY < 0 {
		return voidHit()
	}
	headerW := float64(geom.RowHeaderWidth())
	headerH := float64(geom.ColumnHeaderHeight())

	switch {
	case clientX < headerW && clientY < headerH:
		return hitTestRegion(geom, RegionCornerHeader, geom.ColumnHeaderRows, geom.RowHeaderColumns, clientY, clientX)
	case clientX < headerW:
		return hitTestRegion(geom, RegionRowHeader, geom.BodyRows, geom.RowHeaderColumns, clientY-headerH+float64(vp.ScrollY), clientX)
	case clientY < headerH:
		return hitTestRegion(geom, RegionColumnHeader, geom.ColumnHeaderRows, geom.BodyColumns, clientY, clientX-headerW+float64(vp.ScrollX))
	default:
		return hitTestRegion(geom, RegionBody, geom.BodyRows, geom.BodyColumns, clientY-headerH+float64(vp.ScrollY), clientX-headerW+float64(vp.ScrollX))
	}
}

func hitTestRegion(geom *Geometry, region CellRegion, rows, cols *SectionList, yOffset, xOffset float64) HitTestResult {
	if yOffset < 0 || xOffset < 0 {
		return voidHit()
	}
	row, ok := rows.SectionIndex(int(yOffset))
	if !ok {
		return voidHit()
	}
	col, ok := cols.SectionIndex(int(xOffset))
	if !ok {
		return voidHit()
	}
	rowOffset, _ := rows.SectionOffset(row)
	rowSize, _ := rows.SectionSize(row)
	colOffset, _ := cols.SectionOffset(col)
	colSize, _ := cols.SectionSize(col)

	res := HitTestResult{
		Region: region,
		Row:    row,
		Column: col,
		X:      xOffset - float64(colOffset),
		Y:      yOffset - float64(rowOffset),
		Width:  float64(colSize),
		Height: float64(rowSize),
	}
	res.Handle = resizeHandleFor(region, row, col, res.X, res.Y, res.Width, res.Height)
	return res
}

// resizeHandleFor implements spec §4.5: resize handles exist only in header
// regions, using 5px leading / 6px trailing thresholds. Row-header cells
// expose top/bottom (row-height) handles; column-header cells expose
// left/right (column-width) handles; the body and corner-header never
// expose a handle.
func resizeHandleFor(region CellRegion, row, col int, x, y, w, h float64) ResizeHandle {
	switch region {
	case RegionRowHeader:
		if row > 0 && y < resizeHandleLeadingPx {
			return HandleTop
		}
		if y >= h-resizeHandleTrailingPx {
			return HandleBottom
		}
	case RegionColumnHeader:
		if col > 0 && x < resizeHandleLeadingPx {
			return HandleLeft
		}
		if x >= w-resizeHandleTrailingPx {
			return HandleRight
		}
	}
	return HandleNone
}
