package cellgrid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeScrollbar struct {
	value, page float64
	thumbFns    []func(float64)
	pageFns     []func(int)
	stepFns     []func(int)
}

func (f *fakeScrollbar) Value() float64    { return f.value }
func (f *fakeScrollbar) SetValue(v float64) { f.value = v }
func (f *fakeScrollbar) Page() float64      { return f.page }
func (f *fakeScrollbar) SetPage(p float64)  { f.page = p }

func (f *fakeScrollbar) OnThumbMoved(fn func(float64)) func() {
	f.thumbFns = append(f.thumbFns, fn)
	i := len(f.thumbFns) - 1
	return func() { f.thumbFns[i] = nil }
}

func (f *fakeScrollbar) OnPageRequested(fn func(int)) func() {
	f.pageFns = append(f.pageFns, fn)
	i := len(f.pageFns) - 1
	return func() { f.pageFns[i] = nil }
}

func (f *fakeScrollbar) OnStepRequested(fn func(int)) func() {
	f.stepFns = append(f.stepFns, fn)
	i := len(f.stepFns) - 1
	return func() { f.stepFns[i] = nil }
}

func testScrollEngine() (*ScrollEngine, *recordingSurface) {
	geom := NewGeometry(100, 50, 20, 80, 50, 24)
	model := newGridModel(100, 50)
	paint := &PaintEngine{Geom: geom, Model: model}
	surface := &recordingSurface{}
	gc := NewGraphicsContext(surface)
	vp := Viewport{Width: 400, Height: 300}
	return NewScrollEngine(geom, paint, gc, vp), surface
}

func TestScrollEngineSmallScrollBlits(t *testing.T) {
	s, surface := testScrollEngine()
	s.ScrollTo(10, 5)
	require.Equal(t, 10, s.Viewport.ScrollX)
	require.Equal(t, 5, s.Viewport.ScrollY)
	// Vertical and horizontal deltas are applied as two independent passes.
	require.Len(t, surface.blits, 2)
	require.Equal(t, [2]float64{0, -5}, surface.blits[0])
	require.Equal(t, [2]float64{-10, 0}, surface.blits[1])
}

func TestScrollEngineLargeScrollFallsBackToFullRepaint(t *testing.T) {
	s, surface := testScrollEngine()
	// body width is 400-50=350; a jump of 1000 on X exceeds its axis's
	// extent, so the X pass falls back to a full repaint with no blit. Y
	// doesn't move at all, so it contributes no pass either.
	s.ScrollTo(1000, 0)
	require.Empty(t, surface.blits)
}

func TestScrollEngineMixedAxesBlitOneFullRepaintOther(t *testing.T) {
	s, surface := testScrollEngine()
	// Y delta (5) is small relative to its axis's extent and blits; X delta
	// (1000) exceeds its axis's extent and falls back to a full repaint.
	s.ScrollTo(1000, 5)
	require.Len(t, surface.blits, 1)
	require.Equal(t, [2]float64{0, -5}, surface.blits[0])
}

func TestScrollEngineNoOpDeltaDoesNothing(t *testing.T) {
	s, surface := testScrollEngine()
	s.ScrollTo(0, 0)
	require.Empty(t, surface.blits)
}

func TestScrollEngineClampsToContentBounds(t *testing.T) {
	s, _ := testScrollEngine()
	s.ScrollTo(-50, -50)
	require.Equal(t, 0, s.Viewport.ScrollX)
	require.Equal(t, 0, s.Viewport.ScrollY)

	s.ScrollTo(999999, 999999)
	require.Equal(t, s.maxScrollX(), s.Viewport.ScrollX)
	require.Equal(t, s.maxScrollY(), s.Viewport.ScrollY)
}

func TestScrollEngineScrollBy(t *testing.T) {
	s, _ := testScrollEngine()
	s.ScrollTo(100, 100)
	s.ScrollBy(10, -10)
	require.Equal(t, 110, s.Viewport.ScrollX)
	require.Equal(t, 90, s.Viewport.ScrollY)
}

func TestScrollEngineStepsUseBaseSectionSize(t *testing.T) {
	s, _ := testScrollEngine()
	s.StepDown()
	require.Equal(t, 20, s.Viewport.ScrollY) // row base size
	s.StepRight()
	require.Equal(t, 80, s.Viewport.ScrollX) // column base size
	s.StepUp()
	require.Equal(t, 0, s.Viewport.ScrollY)
	s.StepLeft()
	require.Equal(t, 0, s.Viewport.ScrollX)
}

func TestScrollEngineCustomStepSize(t *testing.T) {
	s, _ := testScrollEngine()
	s.StepSizeY = 3
	s.StepDown()
	require.Equal(t, 3, s.Viewport.ScrollY)
}

func TestScrollEnginePaging(t *testing.T) {
	s, _ := testScrollEngine()
	visible := int(s.Geom.VisibleBodyHeight(s.Viewport))
	s.PageDown()
	require.Equal(t, visible, s.Viewport.ScrollY)
	s.PageUp()
	require.Equal(t, 0, s.Viewport.ScrollY)
}

func TestScrollEngineScrollToRowBringsSectionIntoView(t *testing.T) {
	s, _ := testScrollEngine()
	s.ScrollToRow(90)
	off, _ := s.Geom.BodyRows.SectionOffset(90)
	size, _ := s.Geom.BodyRows.SectionSize(90)
	visible := int(s.Geom.VisibleBodyHeight(s.Viewport))
	require.Equal(t, off+size-visible, s.Viewport.ScrollY)
}

func TestScrollEngineScrollToRowAlreadyVisibleNoOp(t *testing.T) {
	s, _ := testScrollEngine()
	s.ScrollToRow(0)
	require.Equal(t, 0, s.Viewport.ScrollY)
}

func TestScrollEngineScrollToCell(t *testing.T) {
	s, _ := testScrollEngine()
	s.ScrollToCell(90, 40)
	require.Greater(t, s.Viewport.ScrollX, 0)
	require.Greater(t, s.Viewport.ScrollY, 0)
}

func TestScrollEngineSnapPointsPullNearbyTarget(t *testing.T) {
	s, _ := testScrollEngine()
	s.SetSnapPoints(AxisRow, []int{0, 100, 200}, 10)
	s.ScrollTo(0, 95)
	require.Equal(t, 100, s.Viewport.ScrollY)
}

func TestScrollEngineSnapPointsIgnoredOutsideThreshold(t *testing.T) {
	s, _ := testScrollEngine()
	s.SetSnapPoints(AxisRow, []int{0, 100, 200}, 10)
	s.ScrollTo(0, 50)
	require.Equal(t, 50, s.Viewport.ScrollY)
}

func TestScrollEngineResizeShrinkNoRepaint(t *testing.T) {
	s, surface := testScrollEngine()
	s.Resize(300, 200)
	require.Equal(t, 300.0, s.Viewport.Width)
	require.Empty(t, surface.fillRects)
}

func TestScrollEngineResizeGrowthRepaintsNewStrip(t *testing.T) {
	s, _ := testScrollEngine()
	s.Paint.Renderer = RendererFunc(func(gc *GraphicsContext, cfg CellConfig) {})
	s.Resize(500, 400)
	require.Equal(t, 500.0, s.Viewport.Width)
	require.Equal(t, 400.0, s.Viewport.Height)
}

func TestScrollEngineResizeClampsScrollWhenContentShrinksIntoView(t *testing.T) {
	s, _ := testScrollEngine()
	s.ScrollTo(s.maxScrollX(), s.maxScrollY())
	// Grow past the content's full extent (4000x2000 body) so no scroll room remains.
	s.Resize(5000, 3000)
	require.Equal(t, 0, s.Viewport.ScrollX)
	require.Equal(t, 0, s.Viewport.ScrollY)
}

func TestScrollEngineAttachScrollbarsSyncsInitialValues(t *testing.T) {
	s, _ := testScrollEngine()
	s.ScrollTo(10, 20)
	h, v := &fakeScrollbar{}, &fakeScrollbar{}
	s.AttachScrollbars(h, v)
	require.Equal(t, 10.0, h.value)
	require.Equal(t, 20.0, v.value)
}

func TestScrollEngineThumbMovedScrolls(t *testing.T) {
	s, _ := testScrollEngine()
	h, v := &fakeScrollbar{}, &fakeScrollbar{}
	s.AttachScrollbars(h, v)
	h.thumbFns[0](55)
	require.Equal(t, 55, s.Viewport.ScrollX)
}

func TestScrollEnginePageAndStepRequestsDelegate(t *testing.T) {
	s, _ := testScrollEngine()
	h, v := &fakeScrollbar{}, &fakeScrollbar{}
	s.AttachScrollbars(h, v)
	v.pageFns[0](1)
	require.Equal(t, int(s.Geom.VisibleBodyHeight(s.Viewport)), s.Viewport.ScrollY)
	v.stepFns[0](-1)
	require.Less(t, s.Viewport.ScrollY, int(s.Geom.VisibleBodyHeight(s.Viewport)))
}

func TestScrollEngineDetachScrollbarsStopsSyncing(t *testing.T) {
	s, _ := testScrollEngine()
	h, v := &fakeScrollbar{}, &fakeScrollbar{}
	s.AttachScrollbars(h, v)
	s.DetachScrollbars()
	require.Nil(t, s.HScrollbar)
	require.Nil(t, s.VScrollbar)
	s.ScrollTo(30, 30)
	require.NotEqual(t, 30.0, h.value)
}
