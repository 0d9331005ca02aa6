package gtk

import (
	"github.com/gotk3/gotk3/cairo"
	"github.com/gotk3/gotk3/gdk"
	"github.com/gotk3/gotk3/gtk"

	"github.com/phroun/cellgrid"
)

// Widget is a GTK3 DrawingArea-backed grid, pairing a cellgrid.Grid with the
// real widgets (drawing area, vertical/horizontal scrollbars, their
// container boxes) a window packs in. Construction wires every pointer,
// keyboard and configure event straight into the grid's input state
// machine; callers interact with the grid only through the embedded *Grid.
type Widget struct {
	*cellgrid.Grid

	box            *gtk.Box
	innerBox       *gtk.Box
	drawingArea    *gtk.DrawingArea
	scrollbar      *gtk.Scrollbar
	horizScrollbar *gtk.Scrollbar

	vbar *scrollbar
	hbar *scrollbar

	offscreen *cairo.Surface
}

// New builds a grid widget over model, painted by renderer, with rowCount x
// columnCount body cells of the given default sizes.
func New(model cellgrid.DataModel, renderer cellgrid.Renderer, cfg cellgrid.GridConfig) (*Widget, error) {
	w := &Widget{}

	var err error
	w.box, err = gtk.BoxNew(gtk.ORIENTATION_VERTICAL, 0)
	if err != nil {
		return nil, err
	}
	w.innerBox, err = gtk.BoxNew(gtk.ORIENTATION_HORIZONTAL, 0)
	if err != nil {
		return nil, err
	}
	bottomBox, err := gtk.BoxNew(gtk.ORIENTATION_HORIZONTAL, 0)
	if err != nil {
		return nil, err
	}

	w.drawingArea, err = gtk.DrawingAreaNew()
	if err != nil {
		return nil, err
	}
	w.drawingArea.AddEvents(int(gdk.BUTTON_PRESS_MASK | gdk.BUTTON_RELEASE_MASK |
		gdk.POINTER_MOTION_MASK | gdk.SCROLL_MASK | gdk.KEY_PRESS_MASK |
		gdk.FOCUS_CHANGE_MASK | gdk.STRUCTURE_MASK))
	w.drawingArea.SetCanFocus(true)
	w.drawingArea.SetSizeRequest(100, 50)

	vAdj, _ := gtk.AdjustmentNew(0, 0, 1, 1, 10, 10)
	w.scrollbar, err = gtk.ScrollbarNew(gtk.ORIENTATION_VERTICAL, vAdj)
	if err != nil {
		return nil, err
	}
	hAdj, _ := gtk.AdjustmentNew(0, 0, 1, 1, 10, 10)
	w.horizScrollbar, err = gtk.ScrollbarNew(gtk.ORIENTATION_HORIZONTAL, hAdj)
	if err != nil {
		return nil, err
	}

	w.innerBox.PackStart(w.drawingArea, true, true, 0)
	w.innerBox.PackStart(w.scrollbar, false, false, 0)
	bottomBox.PackStart(w.horizScrollbar, true, true, 0)
	w.box.PackStart(w.innerBox, true, true, 0)
	w.box.PackStart(bottomBox, false, false, 0)

	offscreen := cairo.CreateImageSurface(cairo.FORMAT_ARGB32, 1, 1)
	w.offscreen = offscreen
	surface := newCairoSurface(cairo.Create(offscreen), offscreen)

	w.Grid = cellgrid.NewGrid(surface, model, renderer, cfg)

	w.vbar = newScrollbar(w.scrollbar)
	w.hbar = newScrollbar(w.horizScrollbar)
	w.Grid.AttachScrollbars(w.hbar, w.vbar)

	w.drawingArea.Connect("draw", w.onDraw)
	w.drawingArea.Connect("button-press-event", w.onButtonPress)
	w.drawingArea.Connect("button-release-event", w.onButtonRelease)
	w.drawingArea.Connect("motion-notify-event", w.onMotionNotify)
	w.drawingArea.Connect("scroll-event", w.onScroll)
	w.drawingArea.Connect("key-press-event", w.onKeyPress)
	w.drawingArea.Connect("configure-event", w.onConfigure)
	w.drawingArea.Connect("realize", w.onRealize)

	return w, nil
}

// Box returns the top-level container a caller packs into a window.
func (w *Widget) Box() *gtk.Box { return w.box }

// DrawingArea returns the content widget, for callers that need to grab
// focus or query allocation directly.
func (w *Widget) DrawingArea() *gtk.DrawingArea { return w.drawingArea }

func (w *Widget) onRealize() {
	win, err := w.drawingArea.GetWindow()
	if err != nil {
		return
	}
	w.Grid.SetCursorHost(newWindowCursorHost(win))
}

// resizeOffscreen grows the backing image surface to at least width x
// height; cairo image surfaces have no resize primitive, so growth means
// allocating a new one and blitting the old one's content into it first, so
// only the newly exposed right/bottom strips need repainting afterward.
func (w *Widget) resizeOffscreen(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	old := w.offscreen
	if old != nil && old.GetWidth() >= width && old.GetHeight() >= height {
		return
	}
	grown := cairo.CreateImageSurface(cairo.FORMAT_ARGB32, width, height)
	if old != nil {
		cr := cairo.Create(grown)
		cr.SetSourceSurface(old, 0, 0)
		cr.Paint()
	}
	w.offscreen = grown
}

func (w *Widget) onConfigure(da *gtk.DrawingArea, ev *gdk.Event) bool {
	alloc := da.GetAllocation()
	width, height := alloc.GetWidth(), alloc.GetHeight()
	w.resizeOffscreen(width, height)
	w.Grid.GC.SetSurface(newCairoSurface(cairo.Create(w.offscreen), w.offscreen))
	w.Grid.Resize(float64(width), float64(height))
	da.QueueDraw()
	return false
}

func (w *Widget) onDraw(da *gtk.DrawingArea, cr *cairo.Context) bool {
	cr.SetSourceSurface(w.offscreen, 0, 0)
	cr.Paint()
	return false
}

func (w *Widget) onButtonPress(da *gtk.DrawingArea, ev *gdk.Event) bool {
	btn := gdk.EventButtonNewFromEvent(ev)
	if btn.Button() != 1 {
		return false
	}
	da.GrabFocus()
	w.Grid.Input.PointerDown(btn.X(), btn.Y(), modifiersFrom(btn.State()))
	da.QueueDraw()
	return true
}

func (w *Widget) onButtonRelease(da *gtk.DrawingArea, ev *gdk.Event) bool {
	btn := gdk.EventButtonNewFromEvent(ev)
	if btn.Button() != 1 {
		return false
	}
	w.Grid.Input.PointerUp(btn.X(), btn.Y())
	da.QueueDraw()
	return true
}

func (w *Widget) onMotionNotify(da *gtk.DrawingArea, ev *gdk.Event) bool {
	motion := gdk.EventMotionNewFromEvent(ev)
	w.Grid.Input.PointerMove(motion.X(), motion.Y())
	da.QueueDraw()
	return true
}

func (w *Widget) onScroll(da *gtk.DrawingArea, ev *gdk.Event) bool {
	scroll := gdk.EventScrollNewFromEvent(ev)
	const lineStep = 3
	var dx, dy float64
	switch scroll.Direction() {
	case gdk.SCROLL_UP:
		dy = -lineStep
	case gdk.SCROLL_DOWN:
		dy = lineStep
	case gdk.SCROLL_LEFT:
		dx = -lineStep
	case gdk.SCROLL_RIGHT:
		dx = lineStep
	}
	w.Grid.Input.Wheel(dx, dy, cellgrid.WheelDeltaLine)
	da.QueueDraw()
	return true
}

func (w *Widget) onKeyPress(da *gtk.DrawingArea, ev *gdk.Event) bool {
	key := gdk.EventKeyNewFromEvent(ev)
	name, ok := keyName(key.KeyVal())
	if !ok {
		return false
	}
	handled := w.Grid.Input.KeyDown(name, modifiersFrom(key.State()))
	if handled {
		da.QueueDraw()
	}
	return handled
}

func modifiersFrom(state gdk.ModifierType) cellgrid.Modifiers {
	return cellgrid.Modifiers{
		Ctrl:  state&gdk.CONTROL_MASK != 0,
		Shift: state&gdk.SHIFT_MASK != 0,
		Alt:   state&gdk.MOD1_MASK != 0,
	}
}

// keyName maps the GDK keyvals the input state machine understands (arrow
// navigation and paging) to the portable key names KeyDown expects; any
// other keyval is reported unhandled so GTK's default focus-traversal
// bindings still apply.
func keyName(keyval uint) (string, bool) {
	switch keyval {
	case gdk.KEY_Up:
		return "ArrowUp", true
	case gdk.KEY_Down:
		return "ArrowDown", true
	case gdk.KEY_Left:
		return "ArrowLeft", true
	case gdk.KEY_Right:
		return "ArrowRight", true
	case gdk.KEY_Page_Up:
		return "PageUp", true
	case gdk.KEY_Page_Down:
		return "PageDown", true
	default:
		return "", false
	}
}
