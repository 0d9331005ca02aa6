package cellgrid

// Geometry holds the four SectionLists a Grid needs: one row list and one
// column list for the body, plus the row-header's own column list and the
// column-header's own row list (spec §3: "headers have their own lists").
type Geometry struct {
	BodyRows         *SectionList
	BodyColumns      *SectionList
	RowHeaderColumns *SectionList
	ColumnHeaderRows *SectionList

	// FreezeRowCount/FreezeColumnCount pin that many leading body rows/columns
	// to the top/left of the body region regardless of scroll (supplemental
	// to spec.md, grounded on the original buffer's ScreenSplit panes). Zero
	// means no freeze.
	FreezeRowCount    int
	FreezeColumnCount int
}

// NewGeometry builds a Geometry over freshly created, uniformly-sized
// section lists.
func NewGeometry(rowCount, columnCount int, defaultRowHeight, defaultColumnWidth int, rowHeaderWidth, columnHeaderHeight int) *Geometry {
	return &Geometry{
		BodyRows:         NewSectionList(defaultRowHeight, rowCount),
		BodyColumns:      NewSectionList(defaultColumnWidth, columnCount),
		RowHeaderColumns: NewSectionList(rowHeaderWidth, 1),
		ColumnHeaderRows: NewSectionList(columnHeaderHeight, 1),
	}
}

// RowsFor returns the row SectionList for the given RowRegion.
func (g *Geometry) RowsFor(region RowRegion) *SectionList {
	if region == RowRegionColumnHeader {
		return g.ColumnHeaderRows
	}
	return g.BodyRows
}

// ColumnsFor returns the column SectionList for the given ColumnRegion.
func (g *Geometry) ColumnsFor(region ColumnRegion) *SectionList {
	if region == ColumnRegionRowHeader {
		return g.RowHeaderColumns
	}
	return g.BodyColumns
}

// ListsFor returns the (rows, columns) SectionLists backing region. Per
// spec §3, row-header shares the body's row list (its rows line up with
// body rows) and column-header shares the body's column list; only their
// cross-axis list (row-header's columns, column-header's rows) is their own.
func (g *Geometry) ListsFor(region CellRegion) (rows, cols *SectionList) {
	switch region {
	case RegionRowHeader:
		return g.BodyRows, g.RowHeaderColumns
	case RegionColumnHeader:
		return g.ColumnHeaderRows, g.BodyColumns
	case RegionCornerHeader:
		return g.ColumnHeaderRows, g.RowHeaderColumns
	default:
		return g.BodyRows, g.BodyColumns
	}
}

// RowHeaderWidth is the total width of the row-header region.
func (g *Geometry) RowHeaderWidth() int { return g.RowHeaderColumns.TotalSize() }

// ColumnHeaderHeight is the total height of the column-header region.
func (g *Geometry) ColumnHeaderHeight() int { return g.ColumnHeaderRows.TotalSize() }

// Viewport is the visible surface size and the body's current scroll
// position, in pixels.
type Viewport struct {
	Width, Height  float64
	ScrollX, ScrollY int
}

// VisibleBodyWidth/Height are the content-area dimensions of the body
// region, i.e. the viewport minus the header strips.
func (g *Geometry) VisibleBodyWidth(vp Viewport) float64 {
	w := vp.Width - float64(g.RowHeaderWidth())
	if w < 0 {
		return 0
	}
	return w
}

func (g *Geometry) VisibleBodyHeight(vp Viewport) float64 {
	h := vp.Height - float64(g.ColumnHeaderHeight())
	if h < 0 {
		return 0
	}
	return h
}

// FrozenHeight is the pixel height of the first FreezeRowCount body rows.
func (g *Geometry) FrozenHeight() int {
	if g.FreezeRowCount <= 0 {
		return 0
	}
	if g.FreezeRowCount >= g.BodyRows.Count() {
		return g.BodyRows.TotalSize()
	}
	off, _ := g.BodyRows.SectionOffset(g.FreezeRowCount)
	return off
}

// FrozenWidth is the pixel width of the first FreezeColumnCount body columns.
func (g *Geometry) FrozenWidth() int {
	if g.FreezeColumnCount <= 0 {
		return 0
	}
	if g.FreezeColumnCount >= g.BodyColumns.Count() {
		return g.BodyColumns.TotalSize()
	}
	off, _ := g.BodyColumns.SectionOffset(g.FreezeColumnCount)
	return off
}
