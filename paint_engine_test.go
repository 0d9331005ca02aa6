package cellgrid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// recordingSurface is a Surface that records every DrawText/FillRect call so
// tests can assert on what got painted without a real drawing backend.
type recordingSurface struct {
	texts     []string
	fillRects []Rect
	blits     [][2]float64
	clips     []Rect
	saves     int
	restores  int
}

func (s *recordingSurface) SetFillColor(Color)                {}
func (s *recordingSurface) SetStrokeColor(Color)               {}
func (s *recordingSurface) SetLineWidth(float64)               {}
func (s *recordingSurface) SetFont(string, float64)            {}
func (s *recordingSurface) SetTextAlign(HAlign, VAlign)        {}
func (s *recordingSurface) SetTransform(Transform)             {}
func (s *recordingSurface) SetComposite(CompositeMode)         {}
func (s *recordingSurface) SetLineDash([]float64, float64)     {}
func (s *recordingSurface) FillRect(x, y, w, h float64)        { s.fillRects = append(s.fillRects, Rect{x, y, w, h}) }
func (s *recordingSurface) StrokeRect(x, y, w, h float64)      {}
func (s *recordingSurface) ClipRect(x, y, w, h float64)        { s.clips = append(s.clips, Rect{x, y, w, h}) }
func (s *recordingSurface) DrawText(text string, x, y float64) { s.texts = append(s.texts, text) }
func (s *recordingSurface) BeginPath()                         {}
func (s *recordingSurface) MoveTo(x, y float64)                {}
func (s *recordingSurface) LineTo(x, y float64)                {}
func (s *recordingSurface) Stroke()                            {}
func (s *recordingSurface) Blit(dx, dy float64)                { s.blits = append(s.blits, [2]float64{dx, dy}) }
func (s *recordingSurface) Save()                              { s.saves++ }
func (s *recordingSurface) Restore()                           { s.restores++ }

// gridModel is a minimal in-memory DataModel for tests, returning a textual
// "row,col" label for every body cell and nothing for the headers.
type gridModel struct {
	rows, cols int
	blank      map[[2]int]bool
}

func newGridModel(rows, cols int) *gridModel {
	return &gridModel{rows: rows, cols: cols, blank: map[[2]int]bool{}}
}

func (m *gridModel) RowCount(RowRegion) int       { return m.rows }
func (m *gridModel) ColumnCount(ColumnRegion) int { return m.cols }
func (m *gridModel) Data(region CellRegion, row, column int) any {
	if region != RegionBody {
		return nil
	}
	if m.blank[[2]int{row, column}] {
		return nil
	}
	return cellLabel(row, column)
}
func (m *gridModel) Metadata(CellRegion, int, int) Metadata { return nil }
func (m *gridModel) OnChanged(func(ChangeEvent)) func()     { return func() {} }

func testPaintEngine() (*PaintEngine, *recordingSurface, *GraphicsContext) {
	geom := NewGeometry(20, 10, 20, 50, 40, 24)
	model := newGridModel(20, 10)
	renderer := RendererFunc(func(gc *GraphicsContext, cfg CellConfig) {
		gc.DrawText(cfg.Value.(string), cfg.X, cfg.Y)
	})
	p := &PaintEngine{Geom: geom, Model: model, Renderer: renderer}
	surface := &recordingSurface{}
	gc := NewGraphicsContext(surface)
	return p, surface, gc
}

func TestPaintEngineDrawsVisibleBodyCells(t *testing.T) {
	p, surface, gc := testPaintEngine()
	vp := Viewport{Width: 200, Height: 100}
	p.Paint(gc, vp, 0, 0, vp.Width, vp.Height)

	require.Contains(t, surface.texts, cellLabel(0, 0))
	require.NotContains(t, surface.texts, cellLabel(19, 9))
}

func TestPaintEngineSkipsBlankCells(t *testing.T) {
	p, surface, gc := testPaintEngine()
	p.Model.(*gridModel).blank[[2]int{0, 0}] = true
	vp := Viewport{Width: 200, Height: 100}
	p.Paint(gc, vp, 0, 0, vp.Width, vp.Height)
	require.NotContains(t, surface.texts, cellLabel(0, 0))
}

func TestPaintEngineDirtyRectLimitsRepaint(t *testing.T) {
	p, surface, gc := testPaintEngine()
	vp := Viewport{Width: 200, Height: 100}
	// Only the corner header area; body cells must not be touched.
	p.Paint(gc, vp, 0, 0, 10, 10)
	require.Empty(t, surface.texts)
}

func TestPaintEngineReentrantCallIgnored(t *testing.T) {
	p, _, gc := testPaintEngine()
	called := false
	p.Renderer = RendererFunc(func(gc *GraphicsContext, cfg CellConfig) {
		if !called {
			called = true
			vp := Viewport{Width: 200, Height: 100}
			p.Paint(gc, vp, 0, 0, vp.Width, vp.Height) // reentrant, must be a no-op
		}
	})
	vp := Viewport{Width: 200, Height: 100}
	require.NotPanics(t, func() { p.Paint(gc, vp, 0, 0, vp.Width, vp.Height) })
}

func TestPaintEnginePanicInRendererAbortsRegionOnly(t *testing.T) {
	p, _, gc := testPaintEngine()
	p.Renderer = RendererFunc(func(gc *GraphicsContext, cfg CellConfig) {
		if cfg.Row == 0 && cfg.Column == 0 {
			panic("boom")
		}
	})
	vp := Viewport{Width: 200, Height: 100}
	require.NotPanics(t, func() { p.Paint(gc, vp, 0, 0, vp.Width, vp.Height) })
	// Save/Restore must balance even after a recovered panic mid-block.
	require.Equal(t, 0, gc.Depth())
}

func TestPaintEngineSaveRestoreBalanced(t *testing.T) {
	p, surface, gc := testPaintEngine()
	vp := Viewport{Width: 200, Height: 100}
	p.Paint(gc, vp, 0, 0, vp.Width, vp.Height)
	require.Equal(t, surface.saves, surface.restores)
	require.Equal(t, 0, gc.Depth())
}

func TestPaintEngineFrozenBodySplitsIntoQuadrants(t *testing.T) {
	p, surface, gc := testPaintEngine()
	p.Geom.FreezeRowCount = 2
	p.Geom.FreezeColumnCount = 1
	vp := Viewport{Width: 200, Height: 100, ScrollX: 100, ScrollY: 100}
	p.Paint(gc, vp, 0, 0, vp.Width, vp.Height)

	// Frozen row 0, frozen column 0 must still be visible despite the scroll.
	require.Contains(t, surface.texts, cellLabel(0, 0))
}

func TestIsBlankValueTreatsNonFiniteAsBlank(t *testing.T) {
	require.True(t, isBlankValue(nil))
	require.True(t, isBlankValue(math.Inf(1)))
	require.False(t, isBlankValue(1.5))
	require.False(t, isBlankValue("x"))
}
