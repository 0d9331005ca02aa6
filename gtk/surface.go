// Package gtk adapts cellgrid's headless core to GTK3: a cairo.Context
// Surface, gtk.Scrollbar wrappers, and a DrawingArea-backed Widget that
// wires pointer/keyboard/configure events into the core's input state
// machine.
package gtk

import (
	"math"

	"github.com/gotk3/gotk3/cairo"

	"github.com/phroun/cellgrid"
)

// cairoSurface implements cellgrid.Surface over a cairo.Context. Unlike the
// core's cached GraphicsContext, it does no state tracking of its own — it
// just forwards each call to cairo, which already tracks its own graphics
// state via Save/Restore.
type cairoSurface struct {
	cr         *cairo.Context
	backing    *cairo.Surface
	fontFamily string
	fontSize   float64
	halign     cellgrid.HAlign
	valign     cellgrid.VAlign
}

// newCairoSurface wraps a context drawing onto backing. backing is kept
// alongside cr (rather than recovered via cr.GetTarget, which gotk3 does not
// expose) so Blit can re-source the same pixels the context just painted.
func newCairoSurface(cr *cairo.Context, backing *cairo.Surface) *cairoSurface {
	return &cairoSurface{cr: cr, backing: backing, fontFamily: "sans-serif", fontSize: 12}
}

func (s *cairoSurface) SetFillColor(c cellgrid.Color) {
	s.cr.SetSourceRGBA(channel(c.R), channel(c.G), channel(c.B), channel(c.A))
}

func (s *cairoSurface) SetStrokeColor(c cellgrid.Color) {
	s.cr.SetSourceRGBA(channel(c.R), channel(c.G), channel(c.B), channel(c.A))
}

func (s *cairoSurface) SetLineWidth(w float64) { s.cr.SetLineWidth(w) }

func (s *cairoSurface) SetFont(family string, size float64) {
	s.fontFamily, s.fontSize = family, size
	s.cr.SelectFontFace(family, cairo.FONT_SLANT_NORMAL, cairo.FONT_WEIGHT_NORMAL)
	s.cr.SetFontSize(size)
}

func (s *cairoSurface) SetTextAlign(h cellgrid.HAlign, v cellgrid.VAlign) {
	s.halign, s.valign = h, v
}

// SetTransform resets the identity and applies m's translate+scale
// components. The core only ever uses Transform for axis-aligned offset and
// scale (no rotation/shear reaches a Surface), so B and C are unused here.
func (s *cairoSurface) SetTransform(m cellgrid.Transform) {
	s.cr.IdentityMatrix()
	s.cr.Translate(m.E, m.F)
	s.cr.Scale(m.A, m.D)
}

func (s *cairoSurface) SetComposite(mode cellgrid.CompositeMode) {
	if mode == cellgrid.CompositeMultiply {
		s.cr.SetOperator(cairo.OPERATOR_MULTIPLY)
		return
	}
	s.cr.SetOperator(cairo.OPERATOR_OVER)
}

func (s *cairoSurface) SetLineDash(pattern []float64, offset float64) {
	s.cr.SetDash(pattern, offset)
}

func (s *cairoSurface) FillRect(x, y, w, h float64) {
	s.cr.Rectangle(x, y, w, h)
	s.cr.Fill()
}

func (s *cairoSurface) StrokeRect(x, y, w, h float64) {
	s.cr.Rectangle(x, y, w, h)
	s.cr.Stroke()
}

func (s *cairoSurface) ClipRect(x, y, w, h float64) {
	s.cr.Rectangle(x, y, w, h)
	s.cr.Clip()
}

func (s *cairoSurface) DrawText(text string, x, y float64) {
	ext := s.cr.TextExtents(text)
	tx, ty := x, y
	switch s.halign {
	case cellgrid.AlignCenter:
		tx -= ext.Width/2 + ext.XBearing
	case cellgrid.AlignRight:
		tx -= ext.Width + ext.XBearing
	}
	switch s.valign {
	case cellgrid.AlignMiddle:
		ty -= ext.Height/2 + ext.YBearing
	case cellgrid.AlignBottom:
		ty -= ext.Height + ext.YBearing
	}
	s.cr.MoveTo(tx, ty)
	s.cr.ShowText(text)
}

func (s *cairoSurface) BeginPath()             { s.cr.NewPath() }
func (s *cairoSurface) MoveTo(x, y float64)    { s.cr.MoveTo(x, y) }
func (s *cairoSurface) LineTo(x, y float64)    { s.cr.LineTo(x, y) }
func (s *cairoSurface) Stroke()                { s.cr.Stroke() }

// Blit shifts the surface's existing pixel content by (dx, dy) by painting
// the backing surface back onto itself at an offset — cairo has no dedicated
// blit primitive, so this is the idiomatic substitute for a self-to-self
// copy.
func (s *cairoSurface) Blit(dx, dy float64) {
	s.cr.Save()
	s.cr.SetSourceSurface(s.backing, dx, dy)
	s.cr.SetOperator(cairo.OPERATOR_SOURCE)
	s.cr.Paint()
	s.cr.Restore()
}

func (s *cairoSurface) Save()    { s.cr.Save() }
func (s *cairoSurface) Restore() { s.cr.Restore() }

func channel(v uint8) float64 {
	if v == 0 {
		return 0
	}
	return math.Min(1, float64(v)/255)
}
