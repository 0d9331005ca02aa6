package qt

import "github.com/mappu/miqt/qt"

// scrollbar adapts a qt.QScrollBar to cellgrid.Scrollbar. Like the gtk
// adapter, OnPageRequested/OnStepRequested exist only to satisfy the
// interface: Qt's scrollbar already pages/steps internally and reports the
// result as a single valueChanged signal.
type scrollbar struct {
	bar      *qt.QScrollBar
	thumbFns []func(float64)
}

func newScrollbar(bar *qt.QScrollBar) *scrollbar {
	s := &scrollbar{bar: bar}
	bar.OnValueChanged(func(value int) {
		for _, fn := range s.thumbFns {
			if fn != nil {
				fn(float64(value))
			}
		}
	})
	return s
}

func (s *scrollbar) Value() float64 { return float64(s.bar.Value()) }

func (s *scrollbar) SetValue(v float64) { s.bar.SetValue(int(v)) }

func (s *scrollbar) Page() float64 { return float64(s.bar.PageStep()) }

func (s *scrollbar) SetPage(p float64) { s.bar.SetPageStep(int(p)) }

// SetRange updates the scrollbar's maximum to match the scrolled content's
// extent on this axis.
func (s *scrollbar) SetRange(upper float64) { s.bar.SetMaximum(int(upper)) }

func (s *scrollbar) OnThumbMoved(fn func(value float64)) func() {
	s.thumbFns = append(s.thumbFns, fn)
	idx := len(s.thumbFns) - 1
	return func() { s.thumbFns[idx] = nil }
}

func (s *scrollbar) OnPageRequested(fn func(direction int)) func() { return func() {} }

func (s *scrollbar) OnStepRequested(fn func(direction int)) func() { return func() {} }
