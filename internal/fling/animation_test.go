// SPDX-License-Identifier: Unlicense OR MIT

package fling

import (
	"testing"
	"time"
)

func TestAnimationReachesTarget(t *testing.T) {
	var a Animation
	t0 := time.Unix(0, 0)
	if !a.Start(t0, 0, 268, 0, 268, 0) {
		t.Fatal("Start returned false")
	}
	prev := 0
	for now := t0; a.Active(); now = now.Add(16 * time.Millisecond) {
		x := a.Tick(now)
		if x < prev {
			t.Fatalf("animation moved backwards: %d after %d", x, prev)
		}
		prev = x
		if now.Sub(t0) > time.Second {
			t.Fatal("animation did not finish")
		}
	}
	if prev != 268 {
		t.Errorf("final position %d, want 268", prev)
	}
}

func TestAnimationNoop(t *testing.T) {
	var a Animation
	if a.Start(time.Now(), 10, 10, 100, 100, 0) {
		t.Error("Start returned true for zero distance")
	}
	if a.Active() {
		t.Error("animation active after no-op Start")
	}
}

func TestSettleDuration(t *testing.T) {
	for _, tc := range []struct {
		name     string
		delta    int
		velocity float32
		span     int
		max      time.Duration
		want     time.Duration
	}{
		{"zero", 0, 0, 100, MaxSettleDuration, 0},
		{"full span at rest", 100, 0, 100, MaxSettleDuration, 512 * time.Millisecond},
		{"half span at rest", 50, 0, 100, MaxSettleDuration, 384 * time.Millisecond},
		{"capped", 1000, 0, 100, MaxSettleDuration, MaxSettleDuration},
		{"custom cap", 100, 0, 100, 100 * time.Millisecond, 100 * time.Millisecond},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := settleDuration(tc.delta, tc.velocity, tc.span, tc.max); got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
	slow := settleDuration(100, 500, 100, MaxSettleDuration)
	fast := settleDuration(100, 5000, 100, MaxSettleDuration)
	if fast >= slow {
		t.Errorf("fast fling took %v, slow fling %v", fast, slow)
	}
}
