// SPDX-License-Identifier: Unlicense OR MIT

/*
Package unit implements device independent units.

Device independent pixel, or dp, is the unit for sizes independent of
the underlying display device.

Pixels, or px, is the unit for display dependent pixels. Their size
vary between platforms and displays.

The sliding pane geometry works in pixels. Sizes that must stay
visually constant across displays, such as the overhang that keeps a
slid pane grabbable, are specified in dp and converted with a Metric.
*/
package unit

import (
	"fmt"
	"math"
)

// Metric converts Values to device-dependent pixels, px. The zero
// value represents a 1-to-1 scale from dp to pixels.
type Metric struct {
	// PxPerDp is the device-dependent pixels per dp.
	PxPerDp float32
}

// Dp represents device independent pixels. 1 dp will have the same
// apparent size across platforms and display resolutions.
type Dp float32

// Dp converts v to pixels, rounded to the nearest integer value.
func (c Metric) Dp(v Dp) int {
	return int(math.Round(float64(nonZero(c.PxPerDp)) * float64(v)))
}

// DpPerSecond converts a velocity in dp per second to pixels per
// second.
func (c Metric) DpPerSecond(v Dp) float32 {
	return float32(v) * nonZero(c.PxPerDp)
}

func (v Dp) String() string {
	return fmt.Sprintf("%gdp", float32(v))
}

func nonZero(v float32) float32 {
	if v == 0. {
		return 1
	}
	return v
}
