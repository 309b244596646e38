// SPDX-License-Identifier: Unlicense OR MIT

package layout

import "image"

// Direction is the horizontal layout direction of a container.
type Direction uint8

// Edge is a vertical edge of a container.
type Edge uint8

const (
	LTR Direction = iota
	RTL
)

const (
	EdgeLeft Edge = iota
	EdgeRight
)

// direction describes how start-relative coordinates map to
// absolute ones. Every mirrored computation goes through this table.
type direction struct {
	name string
	// sign maps an absolute horizontal delta to a delta
	// towards the end edge.
	sign int
	// edge is the start edge.
	edge Edge
	// start and end select the start and end insets.
	start, end func(Insets) int
	// span maps a start-relative span to absolute left and right
	// coordinates in a container of the given width.
	span func(width, start, size int) (left, right int)
	// toStart maps an absolute x coordinate to a distance from
	// the start edge.
	toStart func(width int, x float32) float32
}

var directions = [...]direction{
	LTR: {
		name:  "LTR",
		sign:  1,
		edge:  EdgeLeft,
		start: func(in Insets) int { return in.Left },
		end:   func(in Insets) int { return in.Right },
		span: func(width, start, size int) (int, int) {
			return start, start + size
		},
		toStart: func(width int, x float32) float32 { return x },
	},
	RTL: {
		name:  "RTL",
		sign:  -1,
		edge:  EdgeRight,
		start: func(in Insets) int { return in.Right },
		end:   func(in Insets) int { return in.Left },
		span: func(width, start, size int) (int, int) {
			return width - start - size, width - start
		},
		toStart: func(width int, x float32) float32 { return float32(width) - x },
	},
}

// Sign is 1 if moving right moves towards the end edge, and -1
// otherwise.
func (d Direction) Sign() int {
	return directions[d].sign
}

// StartEdge returns the edge layout starts from. It is also the
// edge a drag may start from to capture the sliding pane.
func (d Direction) StartEdge() Edge {
	return directions[d].edge
}

// Start returns the inset at the start edge.
func (d Direction) Start(in Insets) int {
	return directions[d].start(in)
}

// End returns the inset at the end edge.
func (d Direction) End(in Insets) int {
	return directions[d].end(in)
}

// Rect returns the rectangle of a pane of the given size whose
// leading edge is start pixels from the start edge of a container
// of the given width.
func (d Direction) Rect(width, start int, size image.Point, top int) image.Rectangle {
	l, r := directions[d].span(width, start, size.X)
	return image.Rect(l, top, r, top+size.Y)
}

// StartOf returns the distance of r's leading edge from the start
// edge of a container of the given width.
func (d Direction) StartOf(width int, r image.Rectangle) int {
	if d == RTL {
		return width - r.Max.X
	}
	return r.Min.X
}

// ToStart maps an absolute x coordinate to a distance from the
// start edge of a container of the given width.
func (d Direction) ToStart(width int, x float32) float32 {
	return directions[d].toStart(width, x)
}

// Shift moves r by delta pixels towards the end edge.
func (d Direction) Shift(r image.Rectangle, delta int) image.Rectangle {
	return r.Add(image.Pt(d.Sign()*delta, 0))
}

func (d Direction) String() string {
	if int(d) >= len(directions) {
		panic("invalid Direction")
	}
	return directions[d].name
}

func (e Edge) String() string {
	switch e {
	case EdgeLeft:
		return "EdgeLeft"
	case EdgeRight:
		return "EdgeRight"
	default:
		panic("invalid Edge")
	}
}
