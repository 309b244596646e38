// SPDX-License-Identifier: Unlicense OR MIT

package widget

import "github.com/slidepane/slidepane/layout"

// SetContent describes the children of the sliding pane's content
// for resizing. Padding is the horizontal padding of the sliding
// pane.
func (s *SlidingPane) SetContent(children []layout.ContentChild, padding int) {
	s.content = children
	s.panePadding = padding
	s.resized = layout.Resized{}
	if !s.resizeOff {
		s.resize(s.offset)
	}
}

// SetResizeTargets sets explicit resize targets. They take the place
// of the content children when resizing.
func (s *SlidingPane) SetResizeTargets(targets []layout.ResizeTarget) {
	s.targets = targets
	s.resized = layout.Resized{}
	if !s.resizeOff {
		s.resize(s.offset)
	}
}

// SetResizeOff disables or enables content resizing.
func (s *SlidingPane) SetResizeOff(off bool) {
	s.resizeOff = off
}

// ResizeOff reports whether content resizing is disabled.
func (s *SlidingPane) ResizeOff() bool {
	return s.resizeOff
}

// SetSinglePanel switches single-panel resizing.
func (s *SlidingPane) SetSinglePanel(single bool) {
	s.singlePanel = single
}

// SinglePanel reports whether single-panel resizing is on.
func (s *SlidingPane) SinglePanel() bool {
	return s.singlePanel
}

// SetPreferredFixedWidth sets the width of a WrapContent fixed pane.
// It takes effect at the next Measure.
func (s *SlidingPane) SetPreferredFixedWidth(e layout.Extent) {
	s.fixedWidth = e
	s.inv.Invalidate(s.bounds())
}

// PreferredFixedWidth returns the resolved preferred fixed pane
// width of the last Measure, or zero.
func (s *SlidingPane) PreferredFixedWidth() int {
	return s.params.FixedWidth
}

// SetPreferredContentWidth sets the width resized content is
// clamped to, and resizes the content.
func (s *SlidingPane) SetPreferredContentWidth(e layout.Extent) {
	s.contentWidth = e
	s.resize(s.offset)
}

// ContentWidths returns the widths computed by the last resize.
// Widths are -1 for elements that are not resized, and the slices
// are nil if nothing has been resized.
func (s *SlidingPane) ContentWidths() layout.Resized {
	return s.resized
}

// resize recomputes the content widths for the slide offset. Between
// the boundaries, widths within the resize tolerance of their current
// value are kept.
func (s *SlidingPane) resize(offset float32) {
	if !s.meas.Slideable || len(s.content) == 0 && len(s.targets) == 0 {
		return
	}
	p := layout.ResizeParams{
		Width:       s.meas.Size.X,
		Padding:     s.Padding,
		StartBound:  s.arr.StartBound,
		DragRange:   s.arr.DragRange,
		PanePadding: s.panePadding,
		Preferred:   s.contentWidth,
		Targets:     s.targets,
		SinglePanel: s.singlePanel,
	}
	r := layout.Resize(p, offset, s.content)
	tol := s.cfg.ResizeTolerance
	if offset == 0 || offset == 1 {
		tol = 0
	}
	keep(r.Children, s.resized.Children, tol)
	keep(r.Targets, s.resized.Targets, tol)
	keep(r.Inner, s.resized.Inner, tol)
	s.resized = r
}

// keep replaces the widths in next that are within tol of prev.
func keep(next, prev []int, tol int) {
	if tol <= 0 || len(next) != len(prev) {
		return
	}
	for i, w := range next {
		if w < 0 || prev[i] < 0 {
			continue
		}
		if d := w - prev[i]; d <= tol && d >= -tol {
			next[i] = prev[i]
		}
	}
}
