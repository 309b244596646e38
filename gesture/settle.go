// SPDX-License-Identifier: Unlicense OR MIT

package gesture

import (
	"time"

	"github.com/slidepane/slidepane/internal/fling"
)

// Settler smoothly moves a captured element to a target position
// over a number of animation frames.
type Settler interface {
	// Settle starts moving from the position from to the
	// position to. Velocity is the release velocity in pixels per
	// second and span the distance the element can travel.
	// Settle reports false if there is nothing to animate.
	Settle(now time.Time, from, to int, velocity float32, span int) bool
	// Continue advances the animation to now and returns the
	// current position and whether the animation is still
	// running.
	Continue(now time.Time) (int, bool)
	// Abort stops the animation at its current position.
	Abort()
	// Settling reports whether an animation is running.
	Settling() bool
}

// Settle is the default Settler.
type Settle struct {
	// MaxDuration bounds the duration of an animation. Zero
	// means 600ms.
	MaxDuration time.Duration

	anim fling.Animation
}

func (s *Settle) Settle(now time.Time, from, to int, velocity float32, span int) bool {
	return s.anim.Start(now, from, to, velocity, span, s.MaxDuration)
}

func (s *Settle) Continue(now time.Time) (int, bool) {
	x := s.anim.Tick(now)
	return x, s.anim.Active()
}

func (s *Settle) Abort() {
	s.anim.Stop()
}

func (s *Settle) Settling() bool {
	return s.anim.Active()
}
