// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"github.com/slidepane/slidepane/f32"
	"github.com/slidepane/slidepane/gesture"
	"github.com/slidepane/slidepane/io/pointer"
	"github.com/slidepane/slidepane/layout"
)

// GestureState is the state of the pointer gesture handling.
type GestureState uint8

const (
	// GestureIdle means no gesture moves the sliding pane.
	GestureIdle GestureState = iota
	// GestureDragging means a pointer is dragging the sliding
	// pane.
	GestureDragging
	// GestureSettling means the sliding pane is animating to a
	// boundary.
	GestureSettling
)

// touchState is the state of the gesture in progress.
type touchState struct {
	drag gesture.Drag
	// last caches the event last fed to drag, so that an event
	// seen by both Intercept and Event is processed once.
	last struct {
		e   pointer.Event
		de  gesture.DragEvent
		ok  bool
		set bool
	}
	initial     f32.Point
	startOffset float32
	// unableToDrag is set for gestures that started outside
	// the drag area or while locked.
	unableToDrag bool
	// slidingTouched is set if the gesture started on the sliding
	// pane.
	slidingTouched bool
	// captured is set for gestures that started in the start edge
	// band.
	captured bool
	// moved is set once the gesture has moved the sliding pane.
	moved bool
	// velocity is the release velocity towards the end edge, in
	// pixels per second.
	velocity float32
}

// GestureState returns the state of gesture handling.
func (s *SlidingPane) GestureState() GestureState {
	switch {
	case s.settler.Settling():
		return GestureSettling
	case s.touch.drag.Dragging() && s.touch.moved:
		return GestureDragging
	default:
		return GestureIdle
	}
}

// Intercept inspects a pointer event before the pane contents see it.
// It reports whether the container takes over the gesture, in which
// case the host delivers the rest of the gesture to Event instead of
// the contents.
func (s *SlidingPane) Intercept(e pointer.Event) bool {
	t := &s.touch
	sl := s.slider()
	if !s.meas.Slideable && e.Kind == pointer.Press && s.meas.Visible > 1 && sl >= 0 {
		// Remember the pane that was touched last, to restore when
		// the layout becomes slideable.
		s.preservedOpen = !s.under(sl, e.Position)
	}
	if !s.meas.Slideable || t.unableToDrag && e.Kind != pointer.Press {
		t.drag.Cancel()
		return false
	}
	de, ok := s.update(e)
	if !ok {
		return false
	}
	interceptTap := false
	switch de.Kind {
	case gesture.KindUp, gesture.KindCancel:
		return s.release(de)
	case gesture.KindDown:
		s.down(de)
		interceptTap = t.slidingTouched && s.IsDimmed(sl)
	case gesture.KindMove:
		if s.swipe(de) {
			return true
		}
	}
	if interceptTap {
		return true
	}
	if abs(t.startOffset-s.offset) < 0.1 {
		return false
	}
	return t.moved
}

// Event handles a pointer event of a gesture the container has taken
// over, or that no pane content consumed. It reports whether the
// container wants the rest of the gesture.
func (s *SlidingPane) Event(e pointer.Event) bool {
	t := &s.touch
	if !s.meas.Slideable || s.locked {
		return false
	}
	de, ok := s.update(e)
	if !ok {
		return false
	}
	switch de.Kind {
	case gesture.KindDown:
		s.down(de)
	case gesture.KindMove:
		s.swipe(de)
	case gesture.KindUp, gesture.KindCancel:
		sl := s.slider()
		if s.IsDimmed(sl) {
			d := de.Position.Sub(t.initial)
			slop := float32(t.drag.TouchSlop(s.metric))
			if d.X*d.X+d.Y*d.Y < slop*slop && s.under(sl, de.Position) {
				// Taps close a dimmed open pane.
				t.velocity = 0
				s.close(true)
			}
		}
		if !t.unableToDrag {
			s.release(de)
		}
	}
	return true
}

// update feeds e to the drag detector, once.
func (s *SlidingPane) update(e pointer.Event) (gesture.DragEvent, bool) {
	l := &s.touch.last
	if l.set && l.e == e {
		return l.de, l.ok
	}
	de, ok := s.touch.drag.Update(s.metric, e)
	l.e, l.de, l.ok, l.set = e, de, ok, true
	return de, ok
}

// down starts a gesture.
func (s *SlidingPane) down(de gesture.DragEvent) {
	t := &s.touch
	t.unableToDrag = false
	t.captured = false
	t.moved = false
	t.velocity = 0
	t.initial = de.Position
	t.startOffset = s.offset
	sl := s.slider()
	if sl < 0 || sl >= len(s.rects) {
		t.unableToDrag = true
		return
	}
	d := s.params.Direction
	width := s.meas.Size.X
	x := d.ToStart(width, de.Position.X)
	lead := d.StartOf(width, s.rects[sl])
	if x > float32(lead+s.metric.Dp(s.cfg.DragArea)) || s.locked {
		t.unableToDrag = true
	}
	t.slidingTouched = s.under(sl, de.Position)
	if !s.locked && x < float32(d.Start(s.Padding)+s.metric.Dp(s.cfg.EdgeSize)) {
		t.captured = true
		t.unableToDrag = false
	}
}

// swipe moves the sliding pane with a horizontal movement past the
// touch slop. It reports whether the pane moved.
func (s *SlidingPane) swipe(de gesture.DragEvent) bool {
	t := &s.touch
	if t.unableToDrag || t.slidingTouched && !t.captured {
		return false
	}
	dx := de.Position.X - t.initial.X
	if abs(dx) <= float32(t.drag.TouchSlop(s.metric)) {
		return false
	}
	t.moved = true
	s.dragTo(s.swipeStart(dx))
	return true
}

// swipeStart converts a horizontal pointer movement since the start
// of the gesture to a position of the sliding pane's leading edge.
func (s *SlidingPane) swipeStart(dx float32) int {
	span := s.arr.DragRange
	if span <= 0 {
		return s.arr.StartBound
	}
	sign := float32(s.params.Direction.Sign())
	o := layout.Clamp(s.touch.startOffset+sign*dx/float32(span), 0, 1)
	return s.arr.StartBound + int(o*float32(span))
}

// release ends a gesture.
func (s *SlidingPane) release(de gesture.DragEvent) bool {
	if de.Kind == gesture.KindUp {
		s.touch.velocity = de.Velocity.X * float32(s.params.Direction.Sign())
	}
	s.touch.moved = false
	return s.completeSlide()
}

// completeSlide settles a pane left between the boundaries. A
// release velocity picks the boundary it points to; otherwise
// offsets from one half open.
func (s *SlidingPane) completeSlide() bool {
	if s.animating || s.offset == 0 || s.offset == 1 {
		return false
	}
	open := s.offset >= 0.5
	if v := s.touch.velocity; v != 0 {
		open = v > 0
	}
	if open {
		s.open(true)
	} else {
		s.close(true)
	}
	return true
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func (g GestureState) String() string {
	switch g {
	case GestureIdle:
		return "GestureIdle"
	case GestureDragging:
		return "GestureDragging"
	case GestureSettling:
		return "GestureSettling"
	default:
		panic("invalid GestureState")
	}
}
