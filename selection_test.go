package cellgrid

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelectionModelBasicSelect(t *testing.T) {
	m := NewSelectionModel(9, 9)
	sel := m.Select(2, 3, intPtr(4), intPtr(5), 2, 3, ClearAll)
	require.Equal(t, 2, sel.R1)
	require.Equal(t, 3, sel.C1)
	require.Equal(t, 4, *sel.R2)
	require.Equal(t, 5, *sel.C2)

	row, col := m.Cursor()
	require.Equal(t, 2, row)
	require.Equal(t, 3, col)
}

func TestSelectionModelClampsToGrid(t *testing.T) {
	m := NewSelectionModel(4, 4)
	sel := m.Select(2, 2, intPtr(100), intPtr(100), 2, 2, ClearAll)
	require.Equal(t, 4, *sel.R2)
	require.Equal(t, 4, *sel.C2)
}

func TestSelectionModelClearModes(t *testing.T) {
	m := NewSelectionModel(9, 9)
	m.SetAllowMultiple(true)
	m.Select(0, 0, nil, nil, 0, 0, ClearAll)
	m.Select(1, 1, nil, nil, 1, 1, ClearNone)
	require.Len(t, m.Selections(), 2)

	m.Select(2, 2, nil, nil, 2, 2, ClearCurrent)
	require.Len(t, m.Selections(), 2)

	m.Select(3, 3, nil, nil, 3, 3, ClearAll)
	require.Len(t, m.Selections(), 1)
}

func TestSelectionModelSingleWithoutAllowMultiple(t *testing.T) {
	m := NewSelectionModel(9, 9)
	m.Select(0, 0, nil, nil, 0, 0, ClearNone)
	m.Select(1, 1, nil, nil, 1, 1, ClearNone)
	// allowMultiple defaults false, so ClearNone is overridden to ClearAll.
	require.Len(t, m.Selections(), 1)
}

func TestSelectionModeRow(t *testing.T) {
	m := NewSelectionModel(9, 9)
	m.SetMode(SelectRow)
	sel := m.Select(3, 5, nil, nil, 3, 5, ClearAll)
	require.Equal(t, 0, sel.C1)
	require.Equal(t, 9, *sel.C2)
}

func TestSelectionModeColumn(t *testing.T) {
	m := NewSelectionModel(9, 9)
	m.SetMode(SelectColumn)
	sel := m.Select(3, 5, nil, nil, 3, 5, ClearAll)
	require.Equal(t, 0, sel.R1)
	require.Equal(t, 9, *sel.R2)
}

func TestSelectionNoRanges(t *testing.T) {
	m := NewSelectionModel(9, 9)
	m.SetAllowRanges(false)
	sel := m.Select(3, 5, intPtr(7), intPtr(8), 3, 5, ClearAll)
	require.Equal(t, 3, *sel.R2)
	require.Equal(t, 5, *sel.C2)
}

func TestSelectionResizeBy(t *testing.T) {
	m := NewSelectionModel(9, 9)
	m.Select(2, 2, intPtr(2), intPtr(2), 2, 2, ClearAll)
	sel, ok := m.ResizeBy(3, -1)
	require.True(t, ok)
	require.Equal(t, 5, *sel.R2)
	require.Equal(t, 1, *sel.C2)
	// Anchor is untouched by ResizeBy.
	require.Equal(t, 2, sel.R1)
}

func TestSelectionResizeByEmptyModel(t *testing.T) {
	m := NewSelectionModel(9, 9)
	_, ok := m.ResizeBy(1, 1)
	require.False(t, ok)
}

func TestSelectionExtendToAbsolute(t *testing.T) {
	m := NewSelectionModel(9, 9)
	m.Select(2, 2, intPtr(2), intPtr(2), 2, 2, ClearAll)
	sel, ok := m.ExtendTo(6, 1)
	require.True(t, ok)
	require.Equal(t, 6, *sel.R2)
	require.Equal(t, 1, *sel.C2)
	require.Equal(t, 2, sel.R1)

	row, col := m.Cursor()
	require.Equal(t, 6, row)
	require.Equal(t, 1, col)
}

func TestSelectionExtendToClampsAndCollapsesWithoutRanges(t *testing.T) {
	m := NewSelectionModel(4, 4)
	m.SetAllowRanges(false)
	m.Select(1, 1, intPtr(1), intPtr(1), 1, 1, ClearAll)
	sel, ok := m.ExtendTo(9, -9)
	require.True(t, ok)
	require.Equal(t, 1, *sel.R2)
	require.Equal(t, 1, *sel.C2)
}

func TestSelectionBoundsNormalizesReversedCorners(t *testing.T) {
	sel := Selection{R1: 5, C1: 5, R2: intPtr(2), C2: intPtr(1)}
	r1, c1, r2, c2 := sel.Bounds(9, 9)
	require.Equal(t, 2, r1)
	require.Equal(t, 1, c1)
	require.Equal(t, 5, r2)
	require.Equal(t, 5, c2)
}

func TestSelectionNilBoundResolvesToLast(t *testing.T) {
	sel := Selection{R1: 0, C1: 0, R2: nil, C2: nil}
	require.Equal(t, 9, sel.EndRow(9))
	require.Equal(t, 7, sel.EndColumn(7))
}

func TestSelectionClear(t *testing.T) {
	m := NewSelectionModel(9, 9)
	m.Select(0, 0, nil, nil, 0, 0, ClearAll)
	fired := false
	m.OnChanged(func() { fired = true })
	m.Clear()
	require.True(t, fired)
	require.Empty(t, m.Selections())
	row, col := m.Cursor()
	require.Equal(t, -1, row)
	require.Equal(t, -1, col)
}

func TestSelectionClearOnEmptyModelDoesNotEmit(t *testing.T) {
	m := NewSelectionModel(9, 9)
	fired := false
	m.OnChanged(func() { fired = true })
	m.Clear()
	require.False(t, fired)
}

func TestSelectionTextJoinsTabsAndNewlines(t *testing.T) {
	m := NewSelectionModel(2, 2)
	m.Select(0, 0, intPtr(1), intPtr(1), 0, 0, ClearAll)
	text := SelectionText(m, stubDataModel{})
	require.Equal(t, "0,0\t0,1\n1,0\t1,1", text)
}

type stubDataModel struct{}

func (stubDataModel) RowCount(RowRegion) int       { return 2 }
func (stubDataModel) ColumnCount(ColumnRegion) int { return 2 }
func (stubDataModel) Data(region CellRegion, row, column int) any {
	return cellLabel(row, column)
}
func (stubDataModel) Metadata(CellRegion, int, int) Metadata { return nil }
func (stubDataModel) OnChanged(func(ChangeEvent)) func()     { return func() {} }

func cellLabel(row, column int) string {
	return strconv.Itoa(row) + "," + strconv.Itoa(column)
}
