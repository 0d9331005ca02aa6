package qt

import (
	"github.com/mappu/miqt/qt"

	"github.com/phroun/cellgrid"
)

var cursorStyleShapes = map[cellgrid.CursorStyle]qt.CursorShape{
	"default":    qt.ArrowCursor,
	"row-resize": qt.SizeVerCursor,
	"col-resize": qt.SizeHorCursor,
}

// widgetCursorHost implements cellgrid.CursorHost over a single QWidget,
// maintaining its own LIFO stack so PopCursor restores whatever style was
// active before the matching Push.
type widgetCursorHost struct {
	widget *qt.QWidget
	stack  []cellgrid.CursorStyle
}

func newWidgetCursorHost(widget *qt.QWidget) *widgetCursorHost {
	return &widgetCursorHost{widget: widget, stack: []cellgrid.CursorStyle{"default"}}
}

func (h *widgetCursorHost) PushCursor(style cellgrid.CursorStyle) cellgrid.CursorStyle {
	previous := h.stack[len(h.stack)-1]
	h.stack = append(h.stack, style)
	h.apply(style)
	return previous
}

func (h *widgetCursorHost) PopCursor(previous cellgrid.CursorStyle) {
	if len(h.stack) > 1 {
		h.stack = h.stack[:len(h.stack)-1]
	}
	h.apply(previous)
}

func (h *widgetCursorHost) apply(style cellgrid.CursorStyle) {
	shape, ok := cursorStyleShapes[style]
	if !ok {
		shape = qt.ArrowCursor
	}
	h.widget.SetCursor(qt.NewQCursor2(shape))
}
