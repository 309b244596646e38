// SPDX-License-Identifier: Unlicense OR MIT

/*
Package gesture implements the pointer gestures a sliding pane
consumes.

Drag reduces low level pointer Events to drag events carrying the
gesture origin, whether the touch slop has been exceeded and, on
release, the fling velocity. Settle animates a captured element
towards a target position over a number of frames.
*/
package gesture

import (
	"time"

	"github.com/slidepane/slidepane/f32"
	"github.com/slidepane/slidepane/internal/fling"
	"github.com/slidepane/slidepane/io/pointer"
	"github.com/slidepane/slidepane/unit"
)

// Drag detects drag gestures in the form of DragEvents.
type Drag struct {
	// Slop is the distance a pointer must travel before the
	// gesture counts as a drag. Zero means DefaultTouchSlop.
	Slop unit.Dp
	// MinFlingVelocity is the smallest release velocity reported
	// as a fling, in dp per second. Zero means
	// DefaultMinFlingVelocity.
	MinFlingVelocity unit.Dp
	// NewTracker returns the velocity tracker for a gesture. Nil
	// means NewVelocityTracker.
	NewTracker func() VelocityTracker

	dragging bool
	pastSlop bool
	pid      pointer.ID
	origin   f32.Point
	// tracker is acquired at press and released when the
	// gesture ends.
	tracker VelocityTracker
}

// DragEvent is a drag gesture event.
type DragEvent struct {
	Kind     DragKind
	Source   pointer.Source
	Time     time.Duration
	Position f32.Point
	// Origin is the position of the press that started the
	// gesture.
	Origin f32.Point
	// PastSlop reports whether the pointer has travelled further
	// than the touch slop since the press.
	PastSlop bool
	// Velocity is the release velocity in pixels per second. It
	// is only set for KindUp events, and components slower than
	// the minimum fling velocity are zero.
	Velocity f32.Point
}

type DragKind uint8

const (
	// KindDown is reported for the press that starts a gesture.
	KindDown DragKind = iota
	// KindMove is reported for every pointer movement.
	KindMove
	// KindUp is reported when the pointer is released.
	KindUp
	// KindCancel is reported when the gesture is interrupted.
	KindCancel
)

const (
	DefaultTouchSlop        = unit.Dp(8)
	DefaultMinFlingVelocity = unit.Dp(400)
)

// Update processes a pointer event and reports the resulting drag
// event, if any. Events from pointers other than the one that
// started the gesture are ignored.
func (d *Drag) Update(m unit.Metric, e pointer.Event) (DragEvent, bool) {
	de := DragEvent{
		Source:   e.Source,
		Time:     e.Time,
		Position: e.Position,
		Origin:   d.origin,
	}
	switch {
	case e.Kind == pointer.Press:
		if d.dragging {
			break
		}
		if e.Source == pointer.Mouse && e.Buttons != 0 && !e.Buttons.Contain(pointer.ButtonPrimary) {
			break
		}
		d.dragging = true
		d.pastSlop = false
		d.pid = e.PointerID
		d.origin = e.Position
		if d.tracker == nil {
			d.tracker = d.newTracker()
		} else {
			d.tracker.Clear()
		}
		d.tracker.Add(e.Time, e.Position)
		de.Kind = KindDown
		de.Origin = d.origin
		return de, true
	case e.Moved():
		if !d.dragging || e.PointerID != d.pid {
			break
		}
		d.tracker.Add(e.Time, e.Position)
		if !d.pastSlop {
			slop := float32(m.Dp(d.slop()))
			delta := e.Position.Sub(d.origin)
			d.pastSlop = delta.X*delta.X+delta.Y*delta.Y > slop*slop
		}
		de.Kind = KindMove
		de.PastSlop = d.pastSlop
		return de, true
	case e.Kind == pointer.Release:
		if !d.dragging || e.PointerID != d.pid {
			break
		}
		d.tracker.Add(e.Time, e.Position)
		v := d.tracker.Velocity()
		minv := m.DpPerSecond(d.minFlingVelocity())
		if abs(v.X) < minv {
			v.X = 0
		}
		if abs(v.Y) < minv {
			v.Y = 0
		}
		de.Kind = KindUp
		de.PastSlop = d.pastSlop
		de.Velocity = v
		d.release()
		return de, true
	case e.Kind == pointer.Cancel:
		if !d.dragging {
			break
		}
		de.Kind = KindCancel
		de.PastSlop = d.pastSlop
		d.release()
		return de, true
	}
	return DragEvent{}, false
}

// Dragging reports whether a gesture is in progress.
func (d *Drag) Dragging() bool {
	return d.dragging
}

// Cancel drops the gesture in progress, if any.
func (d *Drag) Cancel() {
	if d.dragging {
		d.release()
	}
}

// TouchSlop returns the touch slop in pixels.
func (d *Drag) TouchSlop(m unit.Metric) int {
	return m.Dp(d.slop())
}

func (d *Drag) release() {
	d.dragging = false
	if d.tracker != nil {
		d.tracker.Clear()
		d.tracker = nil
	}
}

func (d *Drag) newTracker() VelocityTracker {
	if d.NewTracker != nil {
		return d.NewTracker()
	}
	return NewVelocityTracker()
}

func (d *Drag) slop() unit.Dp {
	if d.Slop == 0 {
		return DefaultTouchSlop
	}
	return d.Slop
}

func (d *Drag) minFlingVelocity() unit.Dp {
	if d.MinFlingVelocity == 0 {
		return DefaultMinFlingVelocity
	}
	return d.MinFlingVelocity
}

// VelocityTracker estimates pointer velocity from a series of
// timestamped positions.
type VelocityTracker interface {
	// Add a position sample.
	Add(t time.Duration, p f32.Point)
	// Velocity returns the velocity in pixels per second.
	Velocity() f32.Point
	// Clear discards all samples.
	Clear()
}

type flingTracker struct {
	x, y fling.Extrapolation
}

// NewVelocityTracker returns a VelocityTracker that fits a second
// degree polynomial to the most recent samples of each axis.
func NewVelocityTracker() VelocityTracker {
	return new(flingTracker)
}

func (f *flingTracker) Add(t time.Duration, p f32.Point) {
	f.x.Sample(t, p.X)
	f.y.Sample(t, p.Y)
}

func (f *flingTracker) Velocity() f32.Point {
	return f32.Point{
		X: f.x.Estimate().Velocity,
		Y: f.y.Estimate().Velocity,
	}
}

func (f *flingTracker) Clear() {
	f.x.Reset()
	f.y.Reset()
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func (k DragKind) String() string {
	switch k {
	case KindDown:
		return "KindDown"
	case KindMove:
		return "KindMove"
	case KindUp:
		return "KindUp"
	case KindCancel:
		return "KindCancel"
	default:
		panic("invalid DragKind")
	}
}
