// SPDX-License-Identifier: Unlicense OR MIT

package layout

import "image"

// Params are the container properties that affect pane geometry.
type Params struct {
	Direction Direction
	Padding   Insets
	// Overhang is the number of pixels of the sliding pane that
	// stay visible when it is fully open.
	Overhang int
	// FixedWidth is the preferred width of a WrapContent fixed
	// pane. Zero means the fixed pane wraps its content.
	FixedWidth int
	// FixedMarginTop and FixedMarginBottom inset the fixed pane
	// vertically.
	FixedMarginTop, FixedMarginBottom int
}

// Pane is the measured state of a child. It is recomputed on every
// measurement pass.
type Pane struct {
	Size image.Point
	// Slideable is set for the pane that overflows the
	// container and therefore slides.
	Slideable bool
	Gone      bool
}

// Measurement is the result of a measurement pass.
type Measurement struct {
	// Size is the measured size of the container content.
	Size image.Point
	// Slideable reports whether the panes overlap and the sliding
	// pane can be dragged.
	Slideable bool
	// Fixed is the index of the fixed pane, or -1.
	Fixed int
	// Sliding is the index of the pane in the sliding role, or
	// -1. The pane only moves when Slideable is set.
	Sliding int
	// Visible is the number of children that are not gone. Only
	// the first two take part in the sliding logic.
	Visible int
	Panes   []Pane
}

// Measure the children of a container. Width must be Exactly and
// height must not be Unspecified; any other spec is a host
// misconfiguration and panics.
//
// Measurement is two-pass. The first pass measures every child at
// its own width, deferring children sized by weight alone, and
// finds the first pane that no longer fits. The second pass
// resolves weights: in a sliding configuration the fixed pane is
// clamped to leave room for the overhang and weighted sliding panes
// fill the container; otherwise the leftover width is distributed in
// proportion to the weights.
func Measure(p Params, width, height Spec, children []Child) Measurement {
	if width.Mode != Exactly {
		panic("layout: width must have an exact value or MatchParent")
	}
	if height.Mode == Unspecified {
		panic("layout: height must not be Unspecified")
	}
	maxLayoutHeight := max(height.Size-p.Padding.Vertical(), 0)
	layoutHeight := 0
	if height.Mode == Exactly {
		layoutHeight = maxLayoutHeight
	}
	m := Measurement{
		Fixed:   -1,
		Sliding: -1,
		Panes:   make([]Pane, len(children)),
	}
	widthAvailable := Clamp(width.Size-p.Padding.Horizontal(), 0, width.Size)
	widthRemaining := widthAvailable
	var weightSum float32
	var participants []int
	for i := range children {
		c := &children[i]
		pane := &m.Panes[i]
		if c.Gone {
			pane.Gone = true
			continue
		}
		m.Visible++
		vi := m.Visible - 1
		if vi < 2 {
			participants = append(participants, i)
		}
		if c.Weight > 0 {
			weightSum += c.Weight
			// Sized by weight alone; measured in the second pass.
			if c.Width == 0 {
				continue
			}
		}
		childWidthSize := Clamp(widthAvailable-c.Margin.Horizontal(), 0, widthAvailable)
		var ws Spec
		switch c.Width {
		case WrapContent:
			if vi == 0 && p.FixedWidth > 0 {
				ws = Exact(Clamp(p.FixedWidth, 0, width.Size))
			} else {
				ws = UpTo(childWidthSize)
			}
		case MatchParent:
			ws = Exact(childWidthSize)
		default:
			ws = Exact(c.Width)
		}
		pane.Size = c.measure(ws, p.heightSpec(c, vi == 0, maxLayoutHeight))
		if height.Mode == AtMost && pane.Size.Y > layoutHeight {
			layoutHeight = Clamp(pane.Size.Y, 0, maxLayoutHeight)
		}
		widthRemaining -= pane.Size.X + c.Margin.Horizontal()
		if vi < 2 && m.Sliding == -1 && widthRemaining < 0 {
			pane.Slideable = true
			m.Sliding = i
			m.Slideable = true
		}
	}
	// Assign the roles of the participating panes.
	switch {
	case len(participants) == 0:
	case m.Sliding == -1:
		m.Fixed = participants[0]
		if len(participants) > 1 {
			m.Sliding = participants[1]
		}
	case m.Sliding == participants[0]:
		if len(participants) > 1 {
			m.Fixed = participants[1]
		}
	default:
		m.Fixed = participants[0]
	}

	if m.Slideable || weightSum > 0 {
		fixedLimit := width.Size - p.Overhang
		for i := range children {
			c := &children[i]
			pane := &m.Panes[i]
			if c.Gone {
				continue
			}
			skipped := c.Width == 0 && c.Weight > 0
			measured := pane.Size.X
			if skipped {
				measured = 0
			}
			hs := Exact(pane.Size.Y)
			if skipped {
				hs = p.heightSpec(c, i == m.Fixed, maxLayoutHeight)
			}
			switch {
			case m.Slideable && i != m.Sliding:
				// Fixed panes in a sliding configuration are
				// clamped to the fixed pane limit.
				if (c.Width < 0 || skipped) && (measured > fixedLimit || c.Weight > 0) {
					pane.Size = c.measure(Exact(fixedLimit), hs)
				}
			case c.Weight > 0:
				if m.Slideable {
					// Consume the available space.
					w := width.Size - c.Margin.Horizontal()
					if measured != w {
						pane.Size = c.measure(Exact(w), hs)
					}
				} else {
					extra := Clamp(widthRemaining, 0, widthAvailable)
					added := int(c.Weight * float32(extra) / weightSum)
					pane.Size = c.measure(Exact(measured+added), hs)
				}
			default:
				continue
			}
			if height.Mode == AtMost && pane.Size.Y > layoutHeight {
				layoutHeight = Clamp(pane.Size.Y, 0, maxLayoutHeight)
			}
		}
	}
	m.Size = image.Pt(width.Size, layoutHeight)
	return m
}

func (p Params) heightSpec(c *Child, fixed bool, maxHeight int) Spec {
	avail := maxHeight
	if fixed {
		avail -= p.FixedMarginTop + p.FixedMarginBottom
	}
	avail = Clamp(avail, 0, maxHeight)
	switch c.Height {
	case WrapContent:
		return UpTo(avail)
	case MatchParent:
		return Exact(avail)
	default:
		return Exact(c.Height)
	}
}
