// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image"
	"math"
)

// Arrangement is the result of a layout pass.
type Arrangement struct {
	// Rects are the pane rectangles in container coordinates.
	// Gone panes have empty rectangles.
	Rects []image.Rectangle
	// DragRange is the distance in pixels the sliding pane can
	// travel. It is zero when the layout is not slideable.
	DragRange int
	// StartBound is the distance of the sliding pane's leading
	// edge from the start edge when the pane is closed.
	StartBound int
	// Offset is the slide offset snapped to a whole pixel
	// position within the drag range.
	Offset float32
	// DimWhenOffset reports whether the sliding pane is mostly
	// pushed out of the container when open, and should be dimmed
	// as it slides.
	DimWhenOffset bool
}

// Arrange positions the measured panes for a slide offset. Panes are
// laid out in a row from the start edge, except the sliding pane,
// which starts at the start edge over the panes preceding it and
// moves towards the end edge by offset times the drag range. Other
// panes are shifted towards the start edge by the parallax distance
// scaled by 1-offset.
//
// The drag range uncovers at most the panes preceding the sliding
// pane, and leaves the open sliding pane at least as wide on screen
// as those panes plus the overhang:
//
//	min(covered, contentWidth - Overhang - covered) - margins
//
// where covered is the width of the preceding panes.
func Arrange(p Params, m Measurement, children []Child, offset float32, parallax int) Arrangement {
	d := p.Direction
	width := m.Size.X
	a := Arrangement{
		Rects:  make([]image.Rectangle, len(children)),
		Offset: Clamp(offset, 0, 1),
	}
	contentEnd := width - d.End(p.Padding)
	nextStart := d.Start(p.Padding)
	for i := range children {
		c := &children[i]
		pane := m.Panes[i]
		if pane.Gone {
			continue
		}
		xStart := nextStart
		marginStart := d.Start(c.Margin)
		var start int
		switch {
		case m.Slideable && i == m.Sliding:
			origin := d.Start(p.Padding)
			covered := xStart - origin
			span := min(covered, contentEnd-origin-p.Overhang-covered) - c.Margin.Horizontal()
			a.DragRange = span
			a.StartBound = origin + marginStart
			a.DimWhenOffset = a.StartBound+span+pane.Size.X/2 > contentEnd
			pos := 0
			if span > 0 {
				pos = int(float32(span) * a.Offset)
				a.Offset = float32(pos) / float32(span)
			} else {
				a.Offset = Snap(a.Offset)
			}
			start = a.StartBound + pos
		case m.Slideable && parallax != 0:
			start = xStart + marginStart - ParallaxOffset(a.Offset, parallax)
		default:
			start = xStart + marginStart
		}
		top := p.Padding.Top + c.Margin.Top
		if i == m.Fixed {
			top += p.FixedMarginTop
		}
		a.Rects[i] = d.Rect(width, start, pane.Size, top)
		nextStart = xStart + c.Margin.Horizontal() + pane.Size.X
	}
	return a
}

// ParallaxOffset returns the distance in pixels non-sliding panes
// are shifted towards the start edge at the given slide offset.
func ParallaxOffset(offset float32, parallax int) int {
	return int(math.Round(float64((1 - offset) * float32(parallax))))
}

// Snap returns the boundary, 0 or 1, nearest to offset. Ties go to 1.
func Snap(offset float32) float32 {
	if offset >= 0.5 {
		return 1
	}
	return 0
}
