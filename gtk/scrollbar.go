package gtk

import "github.com/gotk3/gotk3/gtk"

// scrollbar adapts a gtk.Scrollbar to cellgrid.Scrollbar. A flat GTK3
// scrollbar has no separate step/page-arrow widgets — dragging the thumb and
// clicking the trough both just move the adjustment's value — so only
// OnThumbMoved ever fires; OnPageRequested/OnStepRequested exist to satisfy
// the interface and never call the handler they are given.
type scrollbar struct {
	bar        *gtk.Scrollbar
	adjustment *gtk.Adjustment
	thumbFns   []func(float64)
}

func newScrollbar(bar *gtk.Scrollbar) *scrollbar {
	s := &scrollbar{bar: bar, adjustment: bar.GetAdjustment()}
	bar.Connect("value-changed", func() {
		v := s.adjustment.GetValue()
		for _, fn := range s.thumbFns {
			if fn != nil {
				fn(v)
			}
		}
	})
	return s
}

func (s *scrollbar) Value() float64 { return s.adjustment.GetValue() }

func (s *scrollbar) SetValue(v float64) { s.adjustment.SetValue(v) }

func (s *scrollbar) Page() float64 { return s.adjustment.GetPageSize() }

func (s *scrollbar) SetPage(p float64) { s.adjustment.SetPageSize(p) }

// SetRange updates the adjustment's upper bound to match the scrolled
// content's extent on this axis.
func (s *scrollbar) SetRange(upper float64) { s.adjustment.SetUpper(upper) }

func (s *scrollbar) OnThumbMoved(fn func(value float64)) func() {
	s.thumbFns = append(s.thumbFns, fn)
	idx := len(s.thumbFns) - 1
	return func() { s.thumbFns[idx] = nil }
}

func (s *scrollbar) OnPageRequested(fn func(direction int)) func() { return func() {} }

func (s *scrollbar) OnStepRequested(fn func(direction int)) func() { return func() {} }
