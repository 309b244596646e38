// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"image/color"
)

// Invalidator schedules redraws of a SlidingPane.
type Invalidator interface {
	// Invalidate marks r, in container coordinates, as needing
	// a redraw.
	Invalidate(r image.Rectangle)
	// InvalidateOnAnimation requests a call to Frame at the next
	// animation frame.
	InvalidateOnAnimation()
}

// DirtyRegion is an Invalidator that accumulates redraw requests
// until they are collected by the host.
type DirtyRegion struct {
	region image.Rectangle
	frame  bool
}

func (d *DirtyRegion) Invalidate(r image.Rectangle) {
	d.region = d.region.Union(r)
}

func (d *DirtyRegion) InvalidateOnAnimation() {
	d.frame = true
}

// Collect returns and resets the accumulated dirty region and
// whether an animation frame was requested.
func (d *DirtyRegion) Collect() (image.Rectangle, bool) {
	r, f := d.region, d.frame
	d.region, d.frame = image.Rectangle{}, false
	return r, f
}

// dim is the overlay state of a pane.
type dim struct {
	// color is the overlay color. A zero alpha means no overlay.
	color color.NRGBA
	// layer is set while the pane is drawn through an offscreen
	// layer. Its removal is deferred to the frame after the
	// overlay clears.
	layer bool
}

type effectKind uint8

const (
	// effectDropLayer removes the dim layer of a pane.
	effectDropLayer effectKind = iota
)

// effect is a deferred side effect of a slide.
type effect struct {
	kind effectKind
	pane int
	// gen is the layout generation the effect was queued in.
	// Effects from earlier generations refer to panes that may
	// since have been replaced.
	gen int
}

// effectQueue holds the side effects deferred to the next
// animation frame or to detach.
type effectQueue struct {
	pending []effect
}

func (q *effectQueue) push(e effect) {
	for _, p := range q.pending {
		if p == e {
			return
		}
	}
	q.pending = append(q.pending, e)
}

func (q *effectQueue) len() int {
	return len(q.pending)
}

// take removes and returns the queued effects.
func (q *effectQueue) take() []effect {
	p := q.pending
	q.pending = nil
	return p
}

// runEffects runs the effects queued before the call. Effects
// queued while running are left for the next call.
func (s *SlidingPane) runEffects() {
	for _, e := range s.effects.take() {
		switch e.kind {
		case effectDropLayer:
			if e.gen != s.gen || e.pane >= len(s.dims) {
				continue
			}
			d := &s.dims[e.pane]
			if d.color.A > 0 {
				// Dimmed again since the effect was queued.
				continue
			}
			d.layer = false
			s.invalidatePane(e.pane)
		}
	}
}

// dimPane sets the overlay of pane i to fade scaled by mag.
func (s *SlidingPane) dimPane(i int, mag float32, fade color.NRGBA) {
	if i < 0 || i >= len(s.dims) {
		return
	}
	d := &s.dims[i]
	if mag > 0 && fade.A > 0 {
		c := fade
		c.A = uint8(float32(fade.A) * mag)
		d.color = c
		d.layer = true
		s.invalidatePane(i)
	} else if d.layer {
		d.color = color.NRGBA{}
		s.effects.push(effect{kind: effectDropLayer, pane: i, gen: s.gen})
		s.inv.InvalidateOnAnimation()
	}
}

func (s *SlidingPane) invalidatePane(i int) {
	if i >= 0 && i < len(s.rects) {
		s.inv.Invalidate(s.rects[i])
	}
}
