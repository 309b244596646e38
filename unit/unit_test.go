// SPDX-License-Identifier: Unlicense OR MIT

package unit_test

import (
	"testing"

	"github.com/slidepane/slidepane/unit"
)

func TestMetric_DpPerSecond(t *testing.T) {
	m := unit.Metric{PxPerDp: 2}
	if got := m.DpPerSecond(400); got != 800 {
		t.Errorf("DpPerSecond(400) = %v, want 800", got)
	}
	if got := (unit.Metric{}).DpPerSecond(400); got != 400 {
		t.Errorf("zero metric: DpPerSecond(400) = %v, want 400", got)
	}
}

func TestDpString(t *testing.T) {
	if got, want := unit.Dp(32).String(), "32dp"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestMetric_Overhang(t *testing.T) {
	for _, tc := range []struct {
		density float32
		want    int
	}{
		{0, 32},
		{1, 32},
		{1.5, 48},
		{2.625, 84},
	} {
		m := unit.Metric{PxPerDp: tc.density}
		if got := m.Dp(32); got != tc.want {
			t.Errorf("density %v: Dp(32) = %d, want %d", tc.density, got, tc.want)
		}
	}
}
