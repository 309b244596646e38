// SPDX-License-Identifier: Unlicense OR MIT

package fling

import (
	"math"
	"time"
)

// Animation moves an integer position towards a target along an
// ease-out curve. The duration is derived from the distance to
// travel and the release velocity, in the manner of Android's
// ViewDragHelper.
type Animation struct {
	// Current offset in pixels.
	x        int
	from, to int
	// Start time.
	t0 time.Time
	// Total duration of the animation.
	dur time.Duration
}

const (
	baseSettleDuration = 256 * time.Millisecond
	// MaxSettleDuration is the default upper bound on the
	// duration of an animation.
	MaxSettleDuration = 600 * time.Millisecond
)

// Start an animation from the position from to the position to. The
// velocity is the release velocity in pixels per second and span is
// the total distance the animated element can travel. Start reports
// whether an animation was started; it is not if from equals to.
func (f *Animation) Start(now time.Time, from, to int, velocity float32, span int, max time.Duration) bool {
	f.x, f.from, f.to = from, from, to
	f.t0 = now
	f.dur = 0
	if from == to {
		return false
	}
	if max <= 0 {
		max = MaxSettleDuration
	}
	f.dur = settleDuration(to-from, velocity, span, max)
	return true
}

// Active reports whether an animation is in progress.
func (f *Animation) Active() bool {
	return f.dur > 0
}

// Tick computes and returns the position at time now.
// The animation stops once the target is reached.
func (f *Animation) Tick(now time.Time) int {
	if !f.Active() {
		return f.x
	}
	elapsed := now.Sub(f.t0)
	if elapsed >= f.dur {
		f.x = f.to
		f.dur = 0
		return f.x
	}
	t := float64(elapsed) / float64(f.dur)
	d := float64(f.to - f.from)
	f.x = f.from + int(math.Round(d*interpolate(t)))
	return f.x
}

// Stop the animation at its current position.
func (f *Animation) Stop() {
	f.dur = 0
}

// interpolate is the quintic ease-out curve.
func interpolate(t float64) float64 {
	t -= 1
	return t*t*t*t*t + 1
}

func settleDuration(delta int, velocity float32, span int, max time.Duration) time.Duration {
	if delta == 0 {
		return 0
	}
	adelta := math.Abs(float64(delta))
	width := float64(span)
	if width <= 0 {
		width = adelta
	}
	half := width / 2
	ratio := math.Min(1, adelta/width)
	distance := half + half*distanceInfluence(ratio)
	var d time.Duration
	if v := math.Abs(float64(velocity)); v > 0 {
		ms := 4 * math.Round(1000*math.Abs(distance/v))
		d = time.Duration(ms) * time.Millisecond
	} else {
		r := adelta / width
		d = time.Duration((r + 1) * float64(baseSettleDuration))
	}
	if d > max {
		d = max
	}
	if d <= 0 {
		d = time.Millisecond
	}
	return d
}

// distanceInfluence centers the ratio around zero and reduces the
// effect of long distances on the settle duration.
func distanceInfluence(f float64) float64 {
	f -= 0.5
	f *= 0.3 * math.Pi / 2
	return math.Sin(f)
}
