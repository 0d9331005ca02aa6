package qt

import (
	"github.com/mappu/miqt/qt"

	"github.com/phroun/cellgrid"
)

// Widget is a QWidget-backed grid, pairing a cellgrid.Grid with the real
// widgets (the painted surface and its vertical/horizontal scrollbars) a
// host packs into a layout. Construction wires every pointer, keyboard and
// resize event straight into the grid's input state machine; callers
// interact with the grid only through the embedded *Grid.
type Widget struct {
	*cellgrid.Grid

	root           *qt.QWidget
	scrollbar      *qt.QScrollBar
	horizScrollbar *qt.QScrollBar

	vbar *scrollbar
	hbar *scrollbar

	pixmap *qt.QPixmap
}

// New builds a grid widget over model, painted by renderer.
func New(model cellgrid.DataModel, renderer cellgrid.Renderer, cfg cellgrid.GridConfig) *Widget {
	w := &Widget{}

	w.root = qt.NewQWidget2()
	w.root.SetFocusPolicy(qt.StrongFocus)
	w.root.SetMouseTracking(true)

	w.scrollbar = qt.NewQScrollBar(w.root)
	w.scrollbar.SetOrientation(qt.Vertical)
	w.horizScrollbar = qt.NewQScrollBar(w.root)
	w.horizScrollbar.SetOrientation(qt.Horizontal)

	w.pixmap = qt.NewQPixmap2(1, 1)
	painter := qt.NewQPainter2(w.pixmap.QPaintDevice)
	surface := newPainterSurface(painter, w.pixmap)

	w.Grid = cellgrid.NewGrid(surface, model, renderer, cfg)
	painter.End()

	w.vbar = newScrollbar(w.scrollbar)
	w.hbar = newScrollbar(w.horizScrollbar)
	w.Grid.AttachScrollbars(w.hbar, w.vbar)
	w.Grid.SetCursorHost(newWidgetCursorHost(w.root))

	w.root.OnPaintEvent(func(super func(event *qt.QPaintEvent), event *qt.QPaintEvent) {
		w.paintEvent(event)
	})
	w.root.OnResizeEvent(func(super func(event *qt.QResizeEvent), event *qt.QResizeEvent) {
		w.resizeEvent(event)
	})
	w.root.OnMousePressEvent(func(super func(event *qt.QMouseEvent), event *qt.QMouseEvent) {
		w.mousePressEvent(event)
	})
	w.root.OnMouseReleaseEvent(func(super func(event *qt.QMouseEvent), event *qt.QMouseEvent) {
		w.mouseReleaseEvent(event)
	})
	w.root.OnMouseMoveEvent(func(super func(event *qt.QMouseEvent), event *qt.QMouseEvent) {
		w.mouseMoveEvent(event)
	})
	w.root.OnWheelEvent(func(super func(event *qt.QWheelEvent), event *qt.QWheelEvent) {
		w.wheelEvent(event)
	})
	w.root.OnKeyPressEvent(func(super func(event *qt.QKeyEvent), event *qt.QKeyEvent) {
		w.keyPressEvent(event)
	})

	return w
}

// QWidget returns the top-level widget a caller places into its own layout.
func (w *Widget) QWidget() *qt.QWidget { return w.root }

func (w *Widget) resizePixmap(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if w.pixmap.Width() >= width && w.pixmap.Height() >= height {
		return
	}
	w.pixmap = qt.NewQPixmap2(width, height)
}

func (w *Widget) resizeEvent(event *qt.QResizeEvent) {
	const scrollbarExtent = 14
	width, height := w.root.Width(), w.root.Height()
	w.resizePixmap(width, height)
	w.scrollbar.SetGeometry2(width-scrollbarExtent, 0, scrollbarExtent, height-scrollbarExtent)
	w.horizScrollbar.SetGeometry2(0, height-scrollbarExtent, width-scrollbarExtent, scrollbarExtent)
	w.Grid.Resize(float64(width-scrollbarExtent), float64(height-scrollbarExtent))
	w.root.Update()
}

func (w *Widget) paintEvent(event *qt.QPaintEvent) {
	painter := qt.NewQPainter2(w.pixmap.QPaintDevice)
	surface := newPainterSurface(painter, w.pixmap)
	w.Grid.GC.SetSurface(surface)
	w.Grid.RepaintAll()
	painter.End()

	screen := qt.NewQPainter2(w.root.QPaintDevice)
	screen.DrawPixmap2(0, 0, w.pixmap)
	screen.End()
}

func (w *Widget) mousePressEvent(event *qt.QMouseEvent) {
	if event.Button() != qt.LeftButton {
		return
	}
	pos := event.Pos()
	w.root.SetFocus()
	w.Grid.Input.PointerDown(float64(pos.X()), float64(pos.Y()), modifiersFrom(event.Modifiers()))
	w.root.Update()
}

func (w *Widget) mouseReleaseEvent(event *qt.QMouseEvent) {
	if event.Button() != qt.LeftButton {
		return
	}
	pos := event.Pos()
	w.Grid.Input.PointerUp(float64(pos.X()), float64(pos.Y()))
	w.root.Update()
}

func (w *Widget) mouseMoveEvent(event *qt.QMouseEvent) {
	pos := event.Pos()
	w.Grid.Input.PointerMove(float64(pos.X()), float64(pos.Y()))
	w.root.Update()
}

func (w *Widget) wheelEvent(event *qt.QWheelEvent) {
	delta := event.AngleDelta()
	const lineStep = 1.0 / 8.0
	w.Grid.Input.Wheel(-float64(delta.X())*lineStep, -float64(delta.Y())*lineStep, cellgrid.WheelDeltaLine)
	w.root.Update()
}

func (w *Widget) keyPressEvent(event *qt.QKeyEvent) {
	name, ok := keyName(qt.Key(event.Key()))
	if !ok {
		event.Ignore()
		return
	}
	if w.Grid.Input.KeyDown(name, modifiersFrom(event.Modifiers())) {
		event.Accept()
		w.root.Update()
		return
	}
	event.Ignore()
}

func modifiersFrom(mods int) cellgrid.Modifiers {
	return cellgrid.Modifiers{
		Ctrl:  mods&int(qt.ControlModifier) != 0,
		Shift: mods&int(qt.ShiftModifier) != 0,
		Alt:   mods&int(qt.AltModifier) != 0,
	}
}

// keyName maps the Qt keys the input state machine understands (arrow
// navigation and paging) to the portable key names KeyDown expects.
func keyName(key qt.Key) (string, bool) {
	switch key {
	case qt.Key_Up:
		return "ArrowUp", true
	case qt.Key_Down:
		return "ArrowDown", true
	case qt.Key_Left:
		return "ArrowLeft", true
	case qt.Key_Right:
		return "ArrowRight", true
	case qt.Key_PageUp:
		return "PageUp", true
	case qt.Key_PageDown:
		return "PageDown", true
	default:
		return "", false
	}
}
