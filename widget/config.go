// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"
	"time"

	"github.com/slidepane/slidepane/gesture"
	"github.com/slidepane/slidepane/layout"
	"github.com/slidepane/slidepane/unit"
)

// Config holds the construction time properties of a SlidingPane.
// Zero fields take the values of DefaultConfig.
type Config struct {
	// FadeColor dims the sliding pane as it opens.
	FadeColor color.NRGBA
	// FadeColorSet marks FadeColor as set even when it is zero. A
	// set transparent FadeColor disables dimming.
	FadeColorSet bool
	// CoveredFadeColor dims the panes covered by the sliding pane
	// as it closes. It only applies when ParallaxDistance is set.
	CoveredFadeColor color.NRGBA
	// ParallaxDistance is the distance in pixels the panes below
	// the sliding pane shift as it slides.
	ParallaxDistance int
	// Overhang is how much of the sliding pane stays visible when
	// open.
	Overhang unit.Dp
	// DragArea is the width of the band after the sliding pane's
	// leading edge where a press may start a drag.
	DragArea unit.Dp
	// EdgeSize is the width of the band along the start edge where
	// a press captures the sliding pane.
	EdgeSize         unit.Dp
	TouchSlop        unit.Dp
	MinFlingVelocity unit.Dp
	// MaxSettleDuration bounds the animation of a settle.
	MaxSettleDuration time.Duration
	// ResizeOff disables the resizing of the sliding pane's
	// content.
	ResizeOff bool
	// SinglePanel resizes the sliding pane's content itself rather
	// than explicit resize targets.
	SinglePanel bool
	// DefaultOpen opens the sliding pane at the first layout.
	DefaultOpen bool
	// PreferredFixedWidth is the width of a WrapContent fixed pane,
	// in pixels or as a fraction of the container width.
	PreferredFixedWidth layout.Extent
	// PreferredContentWidth bounds the width of resized content.
	PreferredContentWidth layout.Extent
	// FixedMarginTop and FixedMarginBottom inset the fixed pane.
	FixedMarginTop, FixedMarginBottom unit.Dp
	// ResizeTolerance is the difference in pixels below which a
	// content width is not updated.
	ResizeTolerance int
	// Orientation is the initial display orientation.
	Orientation Orientation

	// Invalidator receives redraw requests. Nil means a
	// DirtyRegion private to the SlidingPane.
	Invalidator Invalidator
	// NewSettler returns the settle primitive. Nil means
	// gesture.Settle.
	NewSettler func() gesture.Settler
	// NewVelocityTracker returns the velocity tracker of a
	// gesture. Nil means gesture.NewVelocityTracker.
	NewVelocityTracker func() gesture.VelocityTracker
	// Now returns the current time for starting animations. Nil
	// means time.Now.
	Now func() time.Time
}

const (
	defaultOverhang     = unit.Dp(32)
	defaultDragArea     = unit.Dp(48)
	defaultEdgeSize     = unit.Dp(20)
	defaultParallax     = 0
	defaultFadeColor    = 0xcccccccc
	defaultCoveredColor = 0
)

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		FadeColor:         argb(defaultFadeColor),
		CoveredFadeColor:  argb(defaultCoveredColor),
		ParallaxDistance:  defaultParallax,
		Overhang:          defaultOverhang,
		DragArea:          defaultDragArea,
		EdgeSize:          defaultEdgeSize,
		TouchSlop:         gesture.DefaultTouchSlop,
		MinFlingVelocity:  gesture.DefaultMinFlingVelocity,
		MaxSettleDuration: 600 * time.Millisecond,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if !c.FadeColorSet && c.FadeColor == (color.NRGBA{}) {
		c.FadeColor = d.FadeColor
	}
	if c.Overhang == 0 {
		c.Overhang = d.Overhang
	}
	if c.DragArea == 0 {
		c.DragArea = d.DragArea
	}
	if c.EdgeSize == 0 {
		c.EdgeSize = d.EdgeSize
	}
	if c.TouchSlop == 0 {
		c.TouchSlop = d.TouchSlop
	}
	if c.MinFlingVelocity == 0 {
		c.MinFlingVelocity = d.MinFlingVelocity
	}
	if c.MaxSettleDuration == 0 {
		c.MaxSettleDuration = d.MaxSettleDuration
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	return c
}

// argb converts a packed 0xAARRGGBB color.
func argb(c uint32) color.NRGBA {
	return color.NRGBA{A: uint8(c >> 24), R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c)}
}
