// Package qt adapts cellgrid's headless core to Qt via mappu/miqt: a
// QPainter Surface, QScrollBar wrappers, and a QWidget-backed Widget that
// wires pointer/keyboard/resize events into the core's input state machine.
package qt

import (
	"github.com/mappu/miqt/qt"

	"github.com/phroun/cellgrid"
)

// painterSurface implements cellgrid.Surface over a QPainter drawing onto a
// QPixmap that the Widget keeps alive across paint events (a QPainter
// obtained directly from a paint event's QPaintDevice cannot be reused for
// Blit's self-to-self copy once the event returns, so the Widget always
// paints into this persistent pixmap and blits it to the screen separately).
type painterSurface struct {
	painter *qt.QPainter
	pixmap  *qt.QPixmap
	path    *qt.QPainterPath
	halign  cellgrid.HAlign
	valign  cellgrid.VAlign
	fill    cellgrid.Color
}

func newPainterSurface(p *qt.QPainter, pixmap *qt.QPixmap) *painterSurface {
	return &painterSurface{painter: p, pixmap: pixmap}
}

func qtColor(c cellgrid.Color) *qt.QColor {
	return qt.NewQColor4(int(c.R), int(c.G), int(c.B), int(c.A))
}

func (s *painterSurface) SetFillColor(c cellgrid.Color) {
	s.fill = c
	s.painter.SetBrush(qt.NewQBrush3(qtColor(c)))
}

func (s *painterSurface) SetStrokeColor(c cellgrid.Color) {
	s.painter.SetPen(qt.NewQPen2(qtColor(c)))
}

func (s *painterSurface) SetLineWidth(w float64) {
	pen := s.painter.Pen()
	pen.SetWidthF(w)
	s.painter.SetPen(pen)
}

func (s *painterSurface) SetFont(family string, size float64) {
	s.painter.SetFont(qt.NewQFont6(family, int(size)))
}

func (s *painterSurface) SetTextAlign(h cellgrid.HAlign, v cellgrid.VAlign) {
	s.halign, s.valign = h, v
}

func (s *painterSurface) SetTransform(m cellgrid.Transform) {
	s.painter.SetTransform(qt.NewQTransform2(m.A, m.B, m.C, m.D, m.E, m.F))
}

func (s *painterSurface) SetComposite(mode cellgrid.CompositeMode) {
	if mode == cellgrid.CompositeMultiply {
		s.painter.SetCompositionMode(qt.QPainter__CompositionMode_Multiply)
		return
	}
	s.painter.SetCompositionMode(qt.QPainter__CompositionMode_SourceOver)
}

func (s *painterSurface) SetLineDash(pattern []float64, offset float64) {
	pen := s.painter.Pen()
	if len(pattern) == 0 {
		pen.SetStyle(qt.SolidLine)
		s.painter.SetPen(pen)
		return
	}
	pen.SetStyle(qt.CustomDashLine)
	pen.SetDashPattern(pattern)
	pen.SetDashOffset(offset)
	s.painter.SetPen(pen)
}

func (s *painterSurface) FillRect(x, y, w, h float64) {
	s.painter.FillRect4(qt.NewQRectF3(x, y, w, h), qt.NewQBrush3(qtColor(s.fill)))
}

func (s *painterSurface) StrokeRect(x, y, w, h float64) {
	s.painter.DrawRect3(qt.NewQRectF3(x, y, w, h))
}

func (s *painterSurface) ClipRect(x, y, w, h float64) {
	s.painter.SetClipRect2(qt.NewQRectF3(x, y, w, h))
}

func (s *painterSurface) DrawText(text string, x, y float64) {
	flags := textAlignFlag(s.halign, s.valign)
	s.painter.DrawText3(qt.NewQRectF3(x-1000, y-1000, 2000, 2000), flags, text)
}

func textAlignFlag(h cellgrid.HAlign, v cellgrid.VAlign) int {
	flag := 0
	switch h {
	case cellgrid.AlignLeft:
		flag |= int(qt.AlignLeft)
	case cellgrid.AlignCenter:
		flag |= int(qt.AlignHCenter)
	case cellgrid.AlignRight:
		flag |= int(qt.AlignRight)
	}
	switch v {
	case cellgrid.AlignTop:
		flag |= int(qt.AlignTop)
	case cellgrid.AlignMiddle:
		flag |= int(qt.AlignVCenter)
	case cellgrid.AlignBottom:
		flag |= int(qt.AlignBottom)
	}
	return flag
}

func (s *painterSurface) BeginPath() { s.path = qt.NewQPainterPath() }
func (s *painterSurface) MoveTo(x, y float64) {
	if s.path != nil {
		s.path.MoveTo(x, y)
	}
}
func (s *painterSurface) LineTo(x, y float64) {
	if s.path != nil {
		s.path.LineTo(x, y)
	}
}
func (s *painterSurface) Stroke() {
	if s.path != nil {
		s.painter.DrawPath(s.path)
	}
}

// Blit copies the backing pixmap onto itself at an offset using a second,
// temporary painter, mirroring the gtk adapter's self-to-self cairo copy.
func (s *painterSurface) Blit(dx, dy float64) {
	if s.pixmap == nil {
		return
	}
	shifted := qt.NewQPixmap2(s.pixmap.Width(), s.pixmap.Height())
	shifted.Fill(qt.NewQColor2(qt.Transparent))
	p := qt.NewQPainter2(shifted.QPaintDevice)
	p.DrawPixmap3(int(dx), int(dy), s.pixmap)
	p.End()
	p2 := qt.NewQPainter2(s.pixmap.QPaintDevice)
	p2.DrawPixmap2(0, 0, shifted)
	p2.End()
}

func (s *painterSurface) Save()    { s.painter.Save() }
func (s *painterSurface) Restore() { s.painter.Restore() }
