package cellgrid

import "time"

// Clock is a time source carried by InputStateMachine, defaulting to
// time.Now. No code in this package reads it: autoscroll delays come from
// autoscrollDelay, a pure function of the pointer's distance past the edge,
// and autoscroll timers are armed through scheduler.
type Clock func() time.Time

// scheduler is a one-shot, self-rescheduling timer with a cooperative
// cancel, the Go equivalent of the teacher's glib.TimeoutAdd-based
// autoscroll loop (purfecterm/gtk/widget.go's startAutoScroll/stopAutoScroll):
// cancel() is safe to call even after the timer already fired, and
// reschedule checks the cancelled flag before re-arming the timer.
type scheduler struct {
	timer     *time.Timer
	cancelled bool
}

// scheduleOnce runs fn once after d, unless cancelled first. fn receives the
// scheduler, whose reschedule method it may call to repeat itself after
// another delay; reschedule is a no-op once the scheduler has been cancelled.
func scheduleOnce(d time.Duration, fn func(s *scheduler)) *scheduler {
	s := &scheduler{}
	s.timer = time.AfterFunc(d, func() {
		if s.cancelled {
			return
		}
		fn(s)
	})
	return s
}

// reschedule re-arms the timer after d, unless the scheduler has been
// cancelled in the meantime.
func (s *scheduler) reschedule(d time.Duration, fn func(s *scheduler)) {
	if s.cancelled {
		return
	}
	s.timer = time.AfterFunc(d, func() {
		if s.cancelled {
			return
		}
		fn(s)
	})
}

// cancel stops any pending fire and marks the scheduler so a callback
// already in flight will not reschedule itself.
func (s *scheduler) cancel() {
	if s == nil {
		return
	}
	s.cancelled = true
	if s.timer != nil {
		s.timer.Stop()
	}
}
