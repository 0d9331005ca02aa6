package gtk

import (
	"github.com/gotk3/gotk3/gdk"

	"github.com/phroun/cellgrid"
)

// cursorStyleNames maps the core's host-opaque CursorStyle values to GDK's
// named cursor set (see gdk_cursor_new_from_name).
var cursorStyleNames = map[cellgrid.CursorStyle]string{
	"default":     "default",
	"row-resize":  "row-resize",
	"col-resize":  "col-resize",
}

// windowCursorHost implements cellgrid.CursorHost over a single GdkWindow,
// maintaining its own LIFO stack so PopCursor can restore whatever style was
// active before the matching Push, mirroring the core's scoped-acquisition
// contract.
type windowCursorHost struct {
	window *gdk.Window
	stack  []cellgrid.CursorStyle
}

func newWindowCursorHost(window *gdk.Window) *windowCursorHost {
	return &windowCursorHost{window: window, stack: []cellgrid.CursorStyle{"default"}}
}

func (h *windowCursorHost) PushCursor(style cellgrid.CursorStyle) cellgrid.CursorStyle {
	previous := h.stack[len(h.stack)-1]
	h.stack = append(h.stack, style)
	h.apply(style)
	return previous
}

func (h *windowCursorHost) PopCursor(previous cellgrid.CursorStyle) {
	if len(h.stack) > 1 {
		h.stack = h.stack[:len(h.stack)-1]
	}
	h.apply(previous)
}

func (h *windowCursorHost) apply(style cellgrid.CursorStyle) {
	if h.window == nil {
		return
	}
	name, ok := cursorStyleNames[style]
	if !ok {
		name = "default"
	}
	display, err := gdk.DisplayGetDefault()
	if err != nil {
		return
	}
	cursor, err := gdk.CursorNewFromName(display, name)
	if err != nil {
		return
	}
	h.window.SetCursor(cursor)
}
