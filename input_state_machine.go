package cellgrid

import "time"

// InputState is one of the five pointer states from spec §4.7. alt is a
// host-declared escape hatch (e.g. a marquee or drawing tool) the core
// enters and leaves on request but never acts on itself.
type InputState int

const (
	StateDefault InputState = iota
	StateResize
	StateMove
	StateSelect
	StateAlt
)

// Modifiers mirrors the keyboard modifiers a host reports alongside a
// pointer or key event.
type Modifiers struct {
	Ctrl, Shift, Alt bool
}

// WheelDeltaMode mirrors the DOM WheelEvent deltaMode convention hosts
// typically forward unchanged: pixel, line or page units.
type WheelDeltaMode int

const (
	WheelDeltaPixel WheelDeltaMode = iota
	WheelDeltaLine
	WheelDeltaPage
)

const (
	autoscrollMinDelay = 5 * time.Millisecond
	autoscrollMaxDelay = 125 * time.Millisecond
	autoscrollRampPx   = 128
)

// autoscrollDelay implements spec §4.7's ramp: 5ms once the pointer is
// autoscrollRampPx or more past the edge, rising linearly to 125ms right at
// the edge.
func autoscrollDelay(excess int) time.Duration {
	if excess < 0 {
		excess = 0
	}
	if excess > autoscrollRampPx {
		excess = autoscrollRampPx
	}
	frac := float64(excess) / float64(autoscrollRampPx)
	ms := 5 + 120*(1-frac)
	return time.Duration(ms * float64(time.Millisecond))
}

// InputStateMachine turns raw pointer/keyboard events into SectionList
// resizes, scroll requests and SelectionModel updates. It holds the
// transient per-gesture PressData and nothing else; all persistent state
// (geometry, scroll position, selections) lives in the components it drives.
type InputStateMachine struct {
	Geom       *Geometry
	Scroll     *ScrollEngine
	Selection  *SelectionModel
	CursorHost CursorHost
	Clock      Clock

	state InputState
	press *PressData
}

// NewInputStateMachine wires a state machine over already-constructed
// geometry, scroll and selection components.
func NewInputStateMachine(geom *Geometry, scroll *ScrollEngine, selection *SelectionModel, host CursorHost) *InputStateMachine {
	return &InputStateMachine{Geom: geom, Scroll: scroll, Selection: selection, CursorHost: host, Clock: time.Now}
}

// State returns the current pointer state.
func (m *InputStateMachine) State() InputState { return m.state }

// EnterAlt/ExitAlt let a host declare its own modal pointer tool (spec
// §4.7's "alt" state); the core does not interpret it further.
func (m *InputStateMachine) EnterAlt() { m.state = StateAlt }
func (m *InputStateMachine) ExitAlt() {
	if m.state == StateAlt {
		m.state = StateDefault
	}
}

// PointerDown starts a resize or select gesture depending on what was hit.
// A void hit is ignored. Only the default state accepts a new mouse-down;
// a mouse-down mid-gesture (resize, select or alt) is swallowed.
func (m *InputStateMachine) PointerDown(x, y float64, mods Modifiers) {
	if m.state != StateDefault {
		return
	}
	hit := HitTest(m.Geom, m.Scroll.Viewport, x, y)
	if hit.Region == RegionVoid {
		return
	}
	if hit.Handle != HandleNone {
		m.startResize(hit, x, y)
		return
	}
	m.startSelect(hit, x, y, mods)
}

func (m *InputStateMachine) startResize(hit HitTestResult, x, y float64) {
	var press *PressData
	var style CursorStyle
	switch hit.Handle {
	case HandleTop, HandleBottom:
		idx := hit.Row
		if hit.Handle == HandleTop {
			idx--
		}
		size, _ := m.Geom.BodyRows.SectionSize(idx)
		press = NewRowResizePress(hit.Region, idx, size, y)
		style = "row-resize"
	case HandleLeft, HandleRight:
		idx := hit.Column
		if hit.Handle == HandleLeft {
			idx--
		}
		size, _ := m.Geom.BodyColumns.SectionSize(idx)
		press = NewColumnResizePress(hit.Region, idx, size, x)
		style = "col-resize"
	default:
		return
	}
	if m.CursorHost != nil {
		press.Override = AcquireCursor(m.CursorHost, style)
		logger.Debug().Str("cursor", string(style)).Str("id", press.Override.ID().String()).Msg("cursor override acquired")
	}
	m.press = press
	m.state = StateResize
}

func (m *InputStateMachine) startSelect(hit HitTestResult, x, y float64, mods Modifiers) {
	if mods.Shift && mods.Ctrl && isHeaderRegion(hit.Region) {
		return // dead combination: recognized and swallowed, never reaches SelectionModel
	}
	if mods.Shift {
		if _, ok := m.Selection.CurrentSelection(); ok {
			m.Selection.ExtendTo(hit.Row, hit.Column)
			m.press = NewSelectPress(hit.Region, hit.Row, hit.Column, hit.X, hit.Y)
			m.press.LastClientX, m.press.LastClientY = x, y
			m.state = StateSelect
			return
		}
	}

	var r1, c1 int
	var r2, c2 *int
	switch hit.Region {
	case RegionRowHeader:
		r1, c1 = hit.Row, 0
		r2 = intPtr(hit.Row)
	case RegionColumnHeader:
		r1, c1 = 0, hit.Column
		c2 = intPtr(hit.Column)
	case RegionCornerHeader:
		r1, c1 = 0, 0
	default:
		r1, c1 = hit.Row, hit.Column
		r2, c2 = intPtr(hit.Row), intPtr(hit.Column)
	}

	clear := ClearAll
	if mods.Ctrl {
		clear = ClearNone
	}
	m.Selection.Select(r1, c1, r2, c2, r1, c1, clear)

	m.press = NewSelectPress(hit.Region, r1, c1, hit.X, hit.Y)
	m.press.LastClientX, m.press.LastClientY = x, y
	m.state = StateSelect
}

// PointerMove advances the active gesture, if any. A move in the resize or
// select state with no PressData is logged as a warning and returns the
// machine to the default state.
func (m *InputStateMachine) PointerMove(x, y float64) {
	if (m.state == StateResize || m.state == StateSelect) && m.press == nil {
		logger.Warn().Int("state", int(m.state)).Msg("pointer move without press data, returning to default state")
		m.state = StateDefault
		return
	}
	switch m.state {
	case StateResize:
		m.updateResize(x, y)
	case StateSelect:
		m.updateSelect(x, y)
	}
}

func (m *InputStateMachine) updateResize(x, y float64) {
	p := m.press
	if p == nil {
		return
	}
	switch p.Kind {
	case PressRowResize:
		newSize := p.OriginalSize + int(y-p.ClientOrigin)
		if newSize < 0 {
			newSize = 0
		}
		m.Geom.BodyRows.ResizeSection(p.Index, newSize)
	case PressColumnResize:
		newSize := p.OriginalSize + int(x-p.ClientOrigin)
		if newSize < 0 {
			newSize = 0
		}
		m.Geom.BodyColumns.ResizeSection(p.Index, newSize)
	default:
		return
	}
	vp := m.Scroll.Viewport
	m.Scroll.Paint.Paint(m.Scroll.GC, vp, 0, 0, vp.Width, vp.Height)
}

func (m *InputStateMachine) updateSelect(x, y float64) {
	p := m.press
	if p == nil {
		return
	}
	p.LastClientX, p.LastClientY = x, y
	m.extendSelectionTo(x, y)

	excessX, dirX := m.excessX(x)
	excessY, dirY := m.excessY(y)
	if dirX == 0 && dirY == 0 {
		p.autoscroll.cancel()
		p.autoscroll = nil
		return
	}
	excess := excessX
	if excessY > excess {
		excess = excessY
	}
	if p.autoscroll == nil {
		p.autoscroll = scheduleOnce(autoscrollDelay(excess), func(s *scheduler) { m.autoscrollTick(p, s) })
	}
}

func (m *InputStateMachine) autoscrollTick(p *PressData, s *scheduler) {
	excessX, dirX := m.excessX(p.LastClientX)
	excessY, dirY := m.excessY(p.LastClientY)
	if dirX == 0 && dirY == 0 {
		p.autoscroll = nil
		return
	}
	if dirX < 0 {
		m.Scroll.StepLeft()
	} else if dirX > 0 {
		m.Scroll.StepRight()
	}
	if dirY < 0 {
		m.Scroll.StepUp()
	} else if dirY > 0 {
		m.Scroll.StepDown()
	}
	m.extendSelectionTo(p.LastClientX, p.LastClientY)

	excess := excessX
	if excessY > excess {
		excess = excessY
	}
	s.reschedule(autoscrollDelay(excess), func(s *scheduler) { m.autoscrollTick(p, s) })
}

// extendSelectionTo extends the current selection toward (x, y), clamping
// the point into the body region first so a drag held past the edge still
// maps to a real cell (the edge row/column), matching the direction
// autoscroll is currently moving in.
func (m *InputStateMachine) extendSelectionTo(x, y float64) {
	body := regionScreenRect(m.Geom, m.Scroll.Viewport, RegionBody)
	cx := x
	if cx < body.X {
		cx = body.X
	}
	if cx >= body.X+body.W {
		cx = body.X + body.W - 1
	}
	cy := y
	if cy < body.Y {
		cy = body.Y
	}
	if cy >= body.Y+body.H {
		cy = body.Y + body.H - 1
	}
	hit := HitTest(m.Geom, m.Scroll.Viewport, cx, cy)
	if hit.Region != RegionBody {
		return
	}
	m.Selection.ExtendTo(hit.Row, hit.Column)
}

func (m *InputStateMachine) excessX(clientX float64) (excess, direction int) {
	body := regionScreenRect(m.Geom, m.Scroll.Viewport, RegionBody)
	if clientX < body.X {
		return int(body.X - clientX), -1
	}
	if clientX > body.X+body.W {
		return int(clientX - (body.X + body.W)), 1
	}
	return 0, 0
}

func (m *InputStateMachine) excessY(clientY float64) (excess, direction int) {
	body := regionScreenRect(m.Geom, m.Scroll.Viewport, RegionBody)
	if clientY < body.Y {
		return int(body.Y - clientY), -1
	}
	if clientY > body.Y+body.H {
		return int(clientY - (body.Y + body.H)), 1
	}
	return 0, 0
}

// PointerUp ends the active gesture, disposing its PressData (releasing any
// cursor override and cancelling any pending autoscroll).
func (m *InputStateMachine) PointerUp(x, y float64) {
	if m.press != nil {
		m.press.Dispose()
		m.press = nil
	}
	if m.state == StateResize || m.state == StateSelect {
		m.state = StateDefault
	}
}

// KeyDown handles the navigation keys assigned to the core: arrow keys move
// the cursor (ctrl jumps to the first/last row or column), shift extends the
// current selection instead of replacing it, and PageUp/PageDown move by one
// body-height's worth of rows. Any other key returns false (unhandled) for
// the host to deal with. During a resize or select drag, every key is
// swallowed and returns true instead of reaching the cursor/selection.
func (m *InputStateMachine) KeyDown(key string, mods Modifiers) bool {
	if m.state != StateDefault {
		return true // swallowed: document-level keydown during a drag is consumed, not left for the host
	}
	row, col := m.Selection.Cursor()
	if row < 0 {
		row, col = 0, 0
	}
	lastRow := m.Geom.BodyRows.Count() - 1
	lastCol := m.Geom.BodyColumns.Count() - 1
	newRow, newCol := row, col

	switch key {
	case "ArrowUp":
		if mods.Ctrl {
			newRow = 0
		} else {
			newRow = row - 1
		}
	case "ArrowDown":
		if mods.Ctrl {
			newRow = lastRow
		} else {
			newRow = row + 1
		}
	case "ArrowLeft":
		if mods.Ctrl {
			newCol = 0
		} else {
			newCol = col - 1
		}
	case "ArrowRight":
		if mods.Ctrl {
			newCol = lastCol
		} else {
			newCol = col + 1
		}
	case "PageUp":
		newRow = row - pageRows(m.Geom, m.Scroll.Viewport)
	case "PageDown":
		newRow = row + pageRows(m.Geom, m.Scroll.Viewport)
	default:
		return false
	}

	newRow = clampInt(newRow, 0, lastRow)
	newCol = clampInt(newCol, 0, lastCol)

	if mods.Shift {
		if _, ok := m.Selection.CurrentSelection(); ok {
			m.Selection.ExtendTo(newRow, newCol)
		} else {
			m.Selection.Select(row, col, intPtr(newRow), intPtr(newCol), newRow, newCol, ClearAll)
		}
	} else {
		m.Selection.Select(newRow, newCol, intPtr(newRow), intPtr(newCol), newRow, newCol, ClearAll)
	}
	m.Scroll.ScrollToCell(newRow, newCol)
	return true
}

func isHeaderRegion(region CellRegion) bool {
	switch region {
	case RegionRowHeader, RegionColumnHeader, RegionCornerHeader:
		return true
	default:
		return false
	}
}

func pageRows(geom *Geometry, vp Viewport) int {
	base := geom.BodyRows.BaseSize()
	if base <= 0 {
		return 1
	}
	rows := int(geom.VisibleBodyHeight(vp)) / base
	if rows < 1 {
		rows = 1
	}
	return rows
}

// Wheel converts a wheel event into a scroll request, interpreting delta
// according to mode the way a browser's WheelEvent.deltaMode does: pixels
// as-is, lines scaled by the row base size, pages by the visible body
// height.
func (m *InputStateMachine) Wheel(deltaX, deltaY float64, mode WheelDeltaMode) {
	if m.state != StateDefault {
		return // consumed during any non-default state
	}
	m.Scroll.ScrollBy(int(m.wheelToPixelsX(deltaX, mode)), int(m.wheelToPixelsY(deltaY, mode)))
}

func (m *InputStateMachine) wheelToPixelsX(delta float64, mode WheelDeltaMode) float64 {
	switch mode {
	case WheelDeltaLine:
		return delta * float64(m.Geom.BodyColumns.BaseSize())
	case WheelDeltaPage:
		return delta * m.Geom.VisibleBodyWidth(m.Scroll.Viewport)
	default:
		return delta
	}
}

func (m *InputStateMachine) wheelToPixelsY(delta float64, mode WheelDeltaMode) float64 {
	switch mode {
	case WheelDeltaLine:
		return delta * float64(m.Geom.BodyRows.BaseSize())
	case WheelDeltaPage:
		return delta * m.Geom.VisibleBodyHeight(m.Scroll.Viewport)
	default:
		return delta
	}
}
