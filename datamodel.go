package cellgrid

// CellRegion identifies one of the four paintable quadrants of a grid, plus
// the void sentinel for points outside all of them.
type CellRegion int

const (
	RegionVoid CellRegion = iota
	RegionBody
	RegionRowHeader
	RegionColumnHeader
	RegionCornerHeader
)

func (r CellRegion) String() string {
	switch r {
	case RegionBody:
		return "body"
	case RegionRowHeader:
		return "row-header"
	case RegionColumnHeader:
		return "column-header"
	case RegionCornerHeader:
		return "corner-header"
	default:
		return "void"
	}
}

// RowRegion is the subset of regions that have their own row list: the body
// and the column-header (whose rows are the header's own, typically a
// handful of label rows).
type RowRegion int

const (
	RowRegionBody RowRegion = iota
	RowRegionColumnHeader
)

// ColumnRegion is the subset of regions that have their own column list:
// the body and the row-header.
type ColumnRegion int

const (
	ColumnRegionBody ColumnRegion = iota
	ColumnRegionRowHeader
)

// ChangeKind enumerates the DataModel mutation notifications the Grid façade
// understands.
type ChangeKind int

const (
	RowsInserted ChangeKind = iota
	RowsRemoved
	ColumnsInserted
	ColumnsRemoved
	RowsMoved
	ColumnsMoved
	CellsChanged
	ModelReset
)

// ChangeEvent describes one DataModel mutation. Not every field applies to
// every Kind: Index/Count apply to *Inserted/*Removed, Index/Destination to
// *Moved, and the four *Row*/*Column bounds to CellsChanged.
type ChangeEvent struct {
	Kind        ChangeKind
	Index       int
	Count       int
	Destination int

	Row1, Column1, Row2, Column2 int
}

// MetaType is the recognized value of a Metadata "type" entry.
type MetaType string

const (
	MetaString  MetaType = "string"
	MetaNumber  MetaType = "number"
	MetaInteger MetaType = "integer"
	MetaBoolean MetaType = "boolean"
	MetaDate    MetaType = "date"
)

// DynamicEnum is the sentinel Metadata["constraint"]["enum"] value meaning
// "the set of legal values must be queried dynamically", rather than being a
// fixed array.
const DynamicEnum = "dynamic"

// Metadata is an immutable, opaque-to-the-core map of cell metadata. The
// core reads well-known keys ("type", "constraint") only when a caller asks
// it to; painting never inspects Metadata itself.
type Metadata map[string]any

// DataModel is the core's only view of cell data. Implementations must not
// block the calling goroutine indefinitely; the core calls these
// synchronously from paint and hit-test paths.
type DataModel interface {
	RowCount(region RowRegion) int
	ColumnCount(region ColumnRegion) int

	// Data returns the value to render for (region, row, column), or nil to
	// skip the cell. Non-finite numeric values are treated as nil by the
	// paint pipeline even if returned here.
	Data(region CellRegion, row, column int) any

	// Metadata returns immutable metadata for (region, row, column). May
	// return nil.
	Metadata(region CellRegion, row, column int) Metadata

	// OnChanged registers a listener for model mutations. Returns an
	// unsubscribe function. The core (via Grid) is expected to be the only
	// subscriber, per spec §9.
	OnChanged(fn func(ChangeEvent)) (unsubscribe func())
}
