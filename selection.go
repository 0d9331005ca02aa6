package cellgrid

import "fmt"

// SelectionMode controls how a newly inserted selection's bounds are
// rewritten at insertion time (spec §3).
type SelectionMode int

const (
	SelectCell SelectionMode = iota
	SelectRow
	SelectColumn
)

// ClearMode controls what the Select method below clears before inserting a
// new selection.
type ClearMode int

const (
	ClearNone ClearMode = iota
	ClearCurrent
	ClearAll
)

// Selection is a rectangle (r1,c1)-(r2,c2). r1,c1 is the anchor; r2,c2 the
// far corner. Neither pair needs to be ordered. A nil bound means "to the
// last row/column at query time" — the Go replacement for the spec's
// Infinity sentinel (open question (b)); it is resolved only when the
// selection is interpreted.
type Selection struct {
	R1, C1 int
	R2, C2 *int
}

// EndRow resolves R2 against lastRow (the index of the final row).
func (s Selection) EndRow(lastRow int) int {
	if s.R2 == nil {
		return lastRow
	}
	return *s.R2
}

// EndColumn resolves C2 against lastColumn.
func (s Selection) EndColumn(lastColumn int) int {
	if s.C2 == nil {
		return lastColumn
	}
	return *s.C2
}

// Bounds returns the normalized (min/max) rectangle for the selection, with
// sentinels resolved against lastRow/lastColumn.
func (s Selection) Bounds(lastRow, lastColumn int) (r1, c1, r2, c2 int) {
	endR, endC := s.EndRow(lastRow), s.EndColumn(lastColumn)
	r1, r2 = s.R1, endR
	if r1 > r2 {
		r1, r2 = r2, r1
	}
	c1, c2 = s.C1, endC
	if c1 > c2 {
		c1, c2 = c2, c1
	}
	return
}

func intPtr(v int) *int { return &v }

// SelectionModel maintains an ordered sequence of selections, the cursor
// position owned by the last ("current") selection, and the flags/mode that
// govern how newly inserted selections get rewritten.
type SelectionModel struct {
	selections []Selection

	cursorRow, cursorColumn int

	allowMultiple bool
	allowRanges   bool
	mode          SelectionMode

	lastRow, lastColumn int

	listeners []func()
}

// NewSelectionModel creates an empty model sized against a grid with the
// given last row/column index (i.e. rowCount-1, columnCount-1).
func NewSelectionModel(lastRow, lastColumn int) *SelectionModel {
	return &SelectionModel{
		cursorRow:    -1,
		cursorColumn: -1,
		allowRanges:  true,
		lastRow:      lastRow,
		lastColumn:   lastColumn,
	}
}

// SetAllowMultiple toggles whether more than one selection may be held.
func (m *SelectionModel) SetAllowMultiple(v bool) { m.allowMultiple = v }

// AllowMultiple reports the current flag value.
func (m *SelectionModel) AllowMultiple() bool { return m.allowMultiple }

// SetAllowRanges toggles whether selections may span more than one cell.
func (m *SelectionModel) SetAllowRanges(v bool) { m.allowRanges = v }

// AllowRanges reports the current flag value.
func (m *SelectionModel) AllowRanges() bool { return m.allowRanges }

// SetMode sets the selection-mode rewrite applied to newly inserted
// selections.
func (m *SelectionModel) SetMode(mode SelectionMode) { m.mode = mode }

// Mode returns the current selection mode.
func (m *SelectionModel) Mode() SelectionMode { return m.mode }

// Resize updates the bounds used to resolve nil (infinite) selection edges
// and to clamp newly inserted selections. Call this when the DataModel's
// row/column counts change.
func (m *SelectionModel) Resize(lastRow, lastColumn int) {
	m.lastRow, m.lastColumn = lastRow, lastColumn
}

// OnChanged registers a listener fired after any mutation that spec §4.6
// calls out as emitting "changed". Returns an unsubscribe function.
func (m *SelectionModel) OnChanged(fn func()) (unsubscribe func()) {
	m.listeners = append(m.listeners, fn)
	idx := len(m.listeners) - 1
	return func() { m.listeners[idx] = nil }
}

func (m *SelectionModel) emitChanged() {
	for _, fn := range m.listeners {
		if fn != nil {
			fn()
		}
	}
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Select inserts a new selection per spec §4.6: the clear flag (or "all" if
// allowMultiple is false) controls what's dropped first, coordinates are
// clamped to the grid, the mode rewrite and range collapse are applied, and
// the cursor is recomputed to lie within the new selection's bounding box.
func (m *SelectionModel) Select(r1, c1 int, r2, c2 *int, cursorRow, cursorColumn int, clear ClearMode) Selection {
	if !m.allowMultiple {
		clear = ClearAll
	}
	switch clear {
	case ClearAll:
		m.selections = nil
	case ClearCurrent:
		if len(m.selections) > 0 {
			m.selections = m.selections[:len(m.selections)-1]
		}
	}

	r1 = clampInt(r1, 0, m.lastRow)
	c1 = clampInt(c1, 0, m.lastColumn)
	if r2 != nil {
		r2 = intPtr(clampInt(*r2, 0, m.lastRow))
	}
	if c2 != nil {
		c2 = intPtr(clampInt(*c2, 0, m.lastColumn))
	}

	sel := Selection{R1: r1, C1: c1, R2: r2, C2: c2}

	switch m.mode {
	case SelectRow:
		sel.C1 = 0
		sel.C2 = intPtr(m.lastColumn)
	case SelectColumn:
		sel.R1 = 0
		sel.R2 = intPtr(m.lastRow)
	}

	if !m.allowRanges {
		sel.R2 = intPtr(sel.R1)
		sel.C2 = intPtr(sel.C1)
	}

	minR, minC, maxR, maxC := sel.Bounds(m.lastRow, m.lastColumn)
	if cursorRow < minR || cursorRow > maxR {
		cursorRow = sel.R1
	}
	if cursorColumn < minC || cursorColumn > maxC {
		cursorColumn = sel.C1
	}

	m.selections = append(m.selections, sel)
	m.cursorRow, m.cursorColumn = cursorRow, cursorColumn
	m.emitChanged()
	return sel
}

// Clear drops all selections and resets the cursor to (-1,-1). Emits
// "changed" only if the model was non-empty.
func (m *SelectionModel) Clear() {
	wasEmpty := len(m.selections) == 0
	m.selections = nil
	m.cursorRow, m.cursorColumn = -1, -1
	if !wasEmpty {
		m.emitChanged()
	}
}

// ResizeBy adjusts the last selection's far corner by (dr, dc), with
// clamping. Returns the updated selection, or (Selection{}, false) if the
// model is empty.
func (m *SelectionModel) ResizeBy(dr, dc int) (Selection, bool) {
	if len(m.selections) == 0 {
		return Selection{}, false
	}
	i := len(m.selections) - 1
	sel := m.selections[i]
	newR2 := clampInt(sel.EndRow(m.lastRow)+dr, 0, m.lastRow)
	newC2 := clampInt(sel.EndColumn(m.lastColumn)+dc, 0, m.lastColumn)
	sel.R2 = intPtr(newR2)
	sel.C2 = intPtr(newC2)
	if !m.allowRanges {
		sel.R2 = intPtr(sel.R1)
		sel.C2 = intPtr(sel.C1)
	}
	m.selections[i] = sel
	m.emitChanged()
	return sel, true
}

// ExtendTo sets the last (current) selection's far corner to the absolute
// cell (row, column), clamped to the grid. Used by drag-select and
// shift-click/shift-arrow extension, as opposed to ResizeBy's relative
// delta. Returns (Selection{}, false) if the model is empty.
func (m *SelectionModel) ExtendTo(row, column int) (Selection, bool) {
	if len(m.selections) == 0 {
		return Selection{}, false
	}
	i := len(m.selections) - 1
	sel := m.selections[i]
	row = clampInt(row, 0, m.lastRow)
	column = clampInt(column, 0, m.lastColumn)
	sel.R2 = intPtr(row)
	sel.C2 = intPtr(column)
	if !m.allowRanges {
		sel.R2 = intPtr(sel.R1)
		sel.C2 = intPtr(sel.C1)
	}
	minR, minC, maxR, maxC := sel.Bounds(m.lastRow, m.lastColumn)
	cursorRow, cursorColumn := row, column
	if cursorRow < minR || cursorRow > maxR {
		cursorRow = sel.R1
	}
	if cursorColumn < minC || cursorColumn > maxC {
		cursorColumn = sel.C1
	}
	m.selections[i] = sel
	m.cursorRow, m.cursorColumn = cursorRow, cursorColumn
	m.emitChanged()
	return sel, true
}

// CurrentSelection returns the last (current) selection, if any.
func (m *SelectionModel) CurrentSelection() (Selection, bool) {
	if len(m.selections) == 0 {
		return Selection{}, false
	}
	return m.selections[len(m.selections)-1], true
}

// Selections returns a snapshot slice of all selections, oldest first. The
// slice is a copy; mutating it does not affect the model.
func (m *SelectionModel) Selections() []Selection {
	out := make([]Selection, len(m.selections))
	copy(out, m.selections)
	return out
}

// Cursor returns the current cursor position, or (-1,-1) if there is no
// selection.
func (m *SelectionModel) Cursor() (row, column int) {
	return m.cursorRow, m.cursorColumn
}

// SelectionText serializes the current selection's cells as a
// tab/newline-delimited string, resolving each cell's value through
// source. This is a free function (not a SelectionModel method) because it
// needs a DataModel the selection model itself does not hold — the
// clipboard-text feature from purfecterm's GetSelectedText, ported to a
// model that is opaque to cell data.
func SelectionText(m *SelectionModel, source DataModel) string {
	sel, ok := m.CurrentSelection()
	if !ok {
		return ""
	}
	r1, c1, r2, c2 := sel.Bounds(m.lastRow, m.lastColumn)

	var out []byte
	for r := r1; r <= r2; r++ {
		for c := c1; c <= c2; c++ {
			if c > c1 {
				out = append(out, '\t')
			}
			v := source.Data(RegionBody, r, c)
			if v != nil {
				out = append(out, []byte(toCellText(v))...)
			}
		}
		if r < r2 {
			out = append(out, '\n')
		}
	}
	return string(out)
}

func toCellText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(v)
	}
}
