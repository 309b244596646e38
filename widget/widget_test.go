// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"time"

	"github.com/slidepane/slidepane/f32"
	"github.com/slidepane/slidepane/gesture"
	"github.com/slidepane/slidepane/io/pointer"
	"github.com/slidepane/slidepane/layout"
	"github.com/slidepane/slidepane/unit"
)

var epoch = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

// settleTime is after any settle started at epoch ends.
var settleTime = epoch.Add(time.Second)

// fixedTracker reports a constant velocity.
type fixedTracker struct {
	v f32.Point
}

func (f fixedTracker) Add(time.Duration, f32.Point) {}
func (f fixedTracker) Velocity() f32.Point          { return f.v }
func (f fixedTracker) Clear()                       {}

// recorder counts slide notifications.
type recorder struct {
	slides []float32
	opened int
	closed int
}

func (r *recorder) OnPanelSlide(offset float32) { r.slides = append(r.slides, offset) }
func (r *recorder) OnPanelOpened()              { r.opened++ }
func (r *recorder) OnPanelClosed()              { r.closed++ }

// newPane returns a SlidingPane with a fixed clock and a release
// velocity of v.
func newPane(cfg Config, v float32) *SlidingPane {
	cfg.Now = func() time.Time { return epoch }
	if cfg.NewVelocityTracker == nil {
		cfg.NewVelocityTracker = func() gesture.VelocityTracker {
			return fixedTracker{v: f32.Pt(v, 0)}
		}
	}
	return NewSlidingPane(unit.Metric{}, cfg)
}

// overlapping is a fixed pane of 700px and a sliding pane of 1000px.
func overlapping() []layout.Child {
	return []layout.Child{
		{Width: 700, Height: layout.MatchParent},
		{Width: 1000, Height: layout.MatchParent, Opaque: true},
	}
}

// dimming is a sliding pane wider than the 1000px container, which
// is pushed mostly out of the container when open.
func dimming() []layout.Child {
	return []layout.Child{
		{Width: 300, Height: layout.MatchParent},
		{Width: 1600, Height: layout.MatchParent, Opaque: true},
	}
}

// sideBySide are two panes that fit a 1000px container.
func sideBySide() []layout.Child {
	return []layout.Child{
		{Width: 300, Height: layout.MatchParent},
		{Width: 300, Height: layout.MatchParent},
	}
}

func measureAndLayout(s *SlidingPane, width int, children []layout.Child) {
	s.Measure(layout.Exact(width), layout.Exact(500), children)
	s.Layout()
}

// clock hands out increasing event times.
type clock time.Duration

func (c *clock) next() time.Duration {
	*c += clock(10 * time.Millisecond)
	return time.Duration(*c)
}

func (c *clock) press(x, y float32) pointer.Event {
	return pointer.Event{Kind: pointer.Press, Source: pointer.Touch, PointerID: 1, Time: c.next(), Position: f32.Pt(x, y)}
}

func (c *clock) move(x, y float32) pointer.Event {
	return pointer.Event{Kind: pointer.Drag, Source: pointer.Touch, PointerID: 1, Time: c.next(), Position: f32.Pt(x, y)}
}

func (c *clock) release(x, y float32) pointer.Event {
	return pointer.Event{Kind: pointer.Release, Source: pointer.Touch, PointerID: 1, Time: c.next(), Position: f32.Pt(x, y)}
}
