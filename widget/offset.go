// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"time"

	"golang.org/x/exp/slices"

	"github.com/slidepane/slidepane/layout"
)

// Open opens the sliding pane, animated or immediately. It reports
// whether the pane is open or opening. Opening while an open or close
// is settling reports true and has no effect.
func (s *SlidingPane) Open(animate bool) bool {
	s.touch.velocity = 0
	return s.open(animate)
}

// Close closes the sliding pane, animated or immediately. It reports
// whether the pane is closed or closing.
func (s *SlidingPane) Close(animate bool) bool {
	s.touch.velocity = 0
	return s.close(animate)
}

func (s *SlidingPane) open(animate bool) bool {
	return s.commit(1, animate)
}

func (s *SlidingPane) close(animate bool) bool {
	return s.commit(0, animate)
}

// commit moves the sliding pane to the boundary target.
func (s *SlidingPane) commit(target float32, animate bool) bool {
	if s.animating {
		return true
	}
	if s.slider() < 0 || s.locked {
		return false
	}
	open := target == 1
	if animate {
		if s.awaitingFirstLayout || s.smoothSlideTo(target) {
			s.preservedOpen = open
			return true
		}
		return false
	}
	s.slideTo(target)
	s.preservedOpen = open
	return true
}

// dragTo moves the leading edge of the sliding pane to start pixels
// from the start edge and updates the slide offset to match.
func (s *SlidingPane) dragTo(start int) {
	bound, span := s.arr.StartBound, s.arr.DragRange
	offset := s.offset
	switch {
	case span > 0:
		offset = layout.Clamp(float32(start-bound)/float32(span), 0, 1)
	case start > bound:
		offset = 1
	case start < bound:
		offset = 0
	}
	s.slideTo(offset)
}

// slideTo sets the slide offset and applies its side effects.
func (s *SlidingPane) slideTo(offset float32) {
	sl := s.slider()
	if sl < 0 {
		s.offset = 0
		return
	}
	if s.locked {
		return
	}
	s.offset = offset
	s.updateSlidingState()
	s.place()
	if offset > 0 {
		s.setAllVisible()
	} else if !s.animating {
		s.updateObscured()
	}
	if s.meas.Slideable && s.parallax != 0 {
		s.parallaxOthers(offset)
	}
	if s.arr.DimWhenOffset {
		s.dimPane(sl, offset, s.cfg.FadeColor)
	}
	s.dispatchSlide()
}

// place moves the sliding pane to the current offset.
func (s *SlidingPane) place() {
	sl := s.slider()
	if !s.meas.Slideable || sl < 0 || sl >= len(s.rects) {
		return
	}
	old := s.rects[sl]
	pos := 0
	if s.arr.DragRange > 0 {
		pos = int(float32(s.arr.DragRange) * s.offset)
	}
	d := s.params.Direction
	s.rects[sl] = d.Rect(s.meas.Size.X, s.arr.StartBound+pos, old.Size(), old.Min.Y)
	s.inv.Invalidate(old.Union(s.rects[sl]))
}

// parallaxOthers shifts the panes other than the sliding pane by the
// change in parallax offset since the last call, and dims them with
// the covered fade color.
func (s *SlidingPane) parallaxOthers(offset float32) {
	sl := s.slider()
	dimOthers := s.arr.DimWhenOffset && s.params.Direction.Start(s.children[sl].Margin) <= 0
	dx := layout.ParallaxOffset(s.parallaxOffset, s.parallax) - layout.ParallaxOffset(offset, s.parallax)
	s.parallaxOffset = offset
	for i := range s.children {
		if i == sl || s.meas.Panes[i].Gone {
			continue
		}
		if dx != 0 {
			old := s.rects[i]
			s.rects[i] = s.params.Direction.Shift(old, dx)
			s.inv.Invalidate(old.Union(s.rects[i]))
		}
		if dimOthers {
			s.dimPane(i, 1-offset, s.cfg.CoveredFadeColor)
		}
	}
}

// updateSlidingState moves the slide state to match the offset. The
// opened and closed notifications fire once per boundary reached.
func (s *SlidingPane) updateSlidingState() {
	if s.slider() < 0 {
		return
	}
	switch {
	case s.offset == 0:
		if s.state != Closed {
			s.state = Closed
			s.touch.startOffset = s.offset
			for _, l := range slices.Clone(s.listeners) {
				l.OnPanelClosed()
			}
		}
	case s.offset == 1:
		if s.state != Open {
			s.state = Open
			s.touch.startOffset = s.offset
			for _, l := range slices.Clone(s.listeners) {
				l.OnPanelOpened()
			}
		}
	default:
		s.state = Idle
	}
}

func (s *SlidingPane) dispatchSlide() {
	for _, l := range slices.Clone(s.listeners) {
		l.OnPanelSlide(s.offset)
	}
	if !s.resizeOff {
		s.resize(s.offset)
	}
}

// smoothSlideTo starts settling the sliding pane towards offset. It
// reports whether a settle started.
func (s *SlidingPane) smoothSlideTo(offset float32) bool {
	s.animating = false
	if !s.meas.Slideable {
		return false
	}
	bound, span := s.arr.StartBound, s.arr.DragRange
	from := bound + int(s.offset*float32(span))
	to := bound + int(offset*float32(span))
	if !s.settler.Settle(s.cfg.Now(), from, to, s.touch.velocity, span) {
		return false
	}
	s.setAllVisible()
	s.inv.InvalidateOnAnimation()
	s.animating = true
	return true
}

// Frame advances animations to now and runs the effects deferred
// to this frame. It reports whether another frame is needed.
func (s *SlidingPane) Frame(now time.Time) bool {
	s.runEffects()
	if s.settler.Settling() {
		if !s.meas.Slideable {
			s.abortSettle()
		} else {
			pos, active := s.settler.Continue(now)
			s.dragTo(pos)
			if active {
				s.inv.InvalidateOnAnimation()
			} else {
				s.settled()
			}
		}
	}
	return s.settler.Settling() || s.effects.len() > 0
}

// settled ends a settle that reached its target.
func (s *SlidingPane) settled() {
	s.animating = false
	s.preservedOpen = s.offset != 0
	if s.offset == 0 {
		s.updateObscured()
	}
}

func (s *SlidingPane) abortSettle() {
	s.settler.Abort()
	s.animating = false
}
