// SPDX-License-Identifier: Unlicense OR MIT

package layout

// Extent is a length given either in pixels or as a fraction of a
// reference length.
type Extent struct {
	Px       int
	Fraction float32
}

// ContentChild describes a child of the sliding pane's content.
type ContentChild struct {
	// Padding is the child's horizontal padding.
	Padding int
	// Toolbar children keep their full width in single-panel
	// mode.
	Toolbar bool
	// Container marks a child hosting its own content. When it
	// has exactly two children, the second is resized in
	// single-panel mode.
	Container bool
	Children  int
	// InnerMargin is the horizontal margin of the automatically
	// resized inner child.
	InnerMargin int
}

// ResizeTarget is an explicitly configured resize target inside the
// sliding pane's content.
type ResizeTarget struct {
	// Margin is the target's horizontal margin.
	Margin int
}

// ResizeParams are the inputs of Resize.
type ResizeParams struct {
	// Width is the container width.
	Width   int
	Padding Insets
	// StartBound and DragRange are the values of the current
	// Arrangement.
	StartBound int
	DragRange  int
	// PanePadding is the horizontal padding of the sliding pane.
	PanePadding int
	// Preferred is the preferred content width, relative to the
	// available container width. The zero Extent means no
	// preference.
	Preferred   Extent
	Targets     []ResizeTarget
	SinglePanel bool
}

// Resized holds the widths computed by Resize. Negative widths mean
// the element is not resized.
type Resized struct {
	// Children are the widths of the content children.
	Children []int
	// Targets are the widths of the explicit resize targets.
	Targets []int
	// Inner are the widths of the second child of each container
	// child in single-panel mode.
	Inner []int
}

// IsZero reports whether e is the zero Extent.
func (e Extent) IsZero() bool {
	return e.Px <= 0 && e.Fraction <= 0
}

// Resolve the extent against a reference length. It reports false
// for the zero Extent.
func (e Extent) Resolve(total int) (int, bool) {
	switch {
	case e.Px > 0:
		return e.Px, true
	case e.Fraction > 0:
		return int(float32(total) * e.Fraction), true
	default:
		return 0, false
	}
}

// Resize computes the content widths of the sliding pane at a slide
// offset. Each content child gets the width left visible by the
// sliding pane. With explicit targets, the targets are clamped to
// the preferred width instead; in single-panel mode the content
// itself, or the inner child of a container, is clamped.
func Resize(p ResizeParams, offset float32, content []ContentChild) Resized {
	r := Resized{
		Children: make([]int, len(content)),
		Targets:  make([]int, len(p.Targets)),
		Inner:    make([]int, len(content)),
	}
	for i := range r.Targets {
		r.Targets[i] = -1
	}
	avail := p.Width - p.Padding.Horizontal()
	for i, c := range content {
		r.Inner[i] = -1
		maxWidth := p.Width - p.StartBound - int(float32(p.DragRange)*offset) - p.PanePadding - c.Padding
		preferred, ok := p.Preferred.Resolve(avail)
		if !ok {
			preferred = maxWidth
		}
		switch {
		case len(p.Targets) > 0:
			for j, t := range p.Targets {
				r.Targets[j] = max(min(maxWidth-t.Margin, preferred), 0)
			}
		case p.SinglePanel && !c.Toolbar:
			if c.Container {
				if c.Children == 2 {
					r.Inner[i] = max(min(maxWidth-c.InnerMargin, preferred), 0)
				}
			} else {
				maxWidth = min(maxWidth, preferred)
			}
		}
		r.Children[i] = max(maxWidth, 0)
	}
	return r
}
