// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image"

	"golang.org/x/exp/constraints"
)

// Mode is the measurement mode of a Spec.
type Mode uint8

// Spec is the measurement requirement a parent imposes on a child
// in a single dimension.
type Spec struct {
	Mode Mode
	Size int
}

// Insets are the distances from each edge of a rectangle, used for
// both container padding and pane margins.
type Insets struct {
	Left, Top, Right, Bottom int
}

// MeasureFunc measures a pane's content against the width and
// height specs and returns its desired size.
type MeasureFunc func(width, height Spec) image.Point

// Child describes a direct child of a sliding pane container.
type Child struct {
	// Gone children take no space and do not participate in
	// measurement.
	Gone bool
	// Width and Height are sizes in pixels or one of MatchParent
	// and WrapContent. A zero Width with a positive Weight is
	// resolved from the weight alone.
	Width, Height int
	// Weight is the share of leftover width the child receives.
	Weight float32
	Margin Insets
	// Opaque children hide what they fully cover.
	Opaque bool
	// Measure measures the child's content. Nil means the child
	// takes the largest size the specs allow.
	Measure MeasureFunc
}

const (
	// Unspecified means the child may be any size.
	Unspecified Mode = iota
	// Exactly means the child must be exactly Size.
	Exactly
	// AtMost means the child may be at most Size.
	AtMost
)

const (
	// MatchParent sizes a child to fill its container.
	MatchParent = -1
	// WrapContent sizes a child to its content.
	WrapContent = -2
)

// Exact returns the Spec that can only be satisfied by size.
func Exact(size int) Spec {
	return Spec{Mode: Exactly, Size: size}
}

// UpTo returns the Spec for sizes no larger than size.
func UpTo(size int) Spec {
	return Spec{Mode: AtMost, Size: size}
}

// Constrain a value to the Spec.
func (s Spec) Constrain(v int) int {
	switch s.Mode {
	case Exactly:
		return s.Size
	case AtMost:
		return Clamp(v, 0, s.Size)
	default:
		return v
	}
}

func (s Spec) preferred() int {
	if s.Mode == Unspecified {
		return 0
	}
	return s.Size
}

// Horizontal returns the sum of the left and right insets.
func (in Insets) Horizontal() int {
	return in.Left + in.Right
}

// Vertical returns the sum of the top and bottom insets.
func (in Insets) Vertical() int {
	return in.Top + in.Bottom
}

func (c *Child) measure(width, height Spec) image.Point {
	var sz image.Point
	if c.Measure != nil {
		sz = c.Measure(width, height)
	} else {
		sz = image.Pt(width.preferred(), height.preferred())
	}
	return image.Pt(width.Constrain(sz.X), height.Constrain(sz.Y))
}

// Clamp v to the range [lo; hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	} else if v > hi {
		return hi
	}
	return v
}

func (m Mode) String() string {
	switch m {
	case Unspecified:
		return "Unspecified"
	case Exactly:
		return "Exactly"
	case AtMost:
		return "AtMost"
	default:
		panic("invalid Mode")
	}
}
