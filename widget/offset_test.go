// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"testing"
	"time"

	"github.com/slidepane/slidepane/layout"
)

func TestSlidingPaneGeometry(t *testing.T) {
	s := newPane(Config{}, 0)
	measureAndLayout(s, 1000, overlapping())
	if !s.IsSlideable() {
		t.Fatal("layout not slideable")
	}
	if got := s.DragRange(); got != 268 {
		t.Errorf("drag range %d, want 268", got)
	}
	if s.State() != Closed || s.Offset() != 0 || s.IsOpen() {
		t.Errorf("state %v offset %v open %v after first layout", s.State(), s.Offset(), s.IsOpen())
	}
	// Closed, the sliding pane covers the fixed pane.
	if got, want := s.Rects()[1], image.Rect(0, 0, 1000, 500); got != want {
		t.Errorf("closed sliding pane %v, want %v", got, want)
	}
	if got := s.ClipRect(0); !got.Empty() {
		t.Errorf("closed fixed pane clip %v, want empty", got)
	}
	if got, want := s.ClipRect(1), image.Rect(0, 0, 1000, 500); got != want {
		t.Errorf("sliding pane clip %v, want %v", got, want)
	}
	s.Open(false)
	if got, want := s.Rects()[1], image.Rect(268, 0, 1268, 500); got != want {
		t.Errorf("open sliding pane %v, want %v", got, want)
	}
	if got, want := s.ClipRect(0), image.Rect(0, 0, 268, 500); got != want {
		t.Errorf("open fixed pane clip %v, want %v", got, want)
	}
}

func TestOpenIdempotent(t *testing.T) {
	s := newPane(Config{}, 0)
	measureAndLayout(s, 1000, overlapping())
	r := new(recorder)
	s.AddListener(r)
	for i := 0; i < 2; i++ {
		if !s.Open(false) {
			t.Fatalf("open %d failed", i)
		}
		if s.Offset() != 1 || s.State() != Open || !s.IsOpen() {
			t.Errorf("open %d: offset %v state %v", i, s.Offset(), s.State())
		}
	}
	if r.opened != 1 {
		t.Errorf("opened %d times, want 1", r.opened)
	}
	s.Close(false)
	s.Close(false)
	if r.closed != 1 {
		t.Errorf("closed %d times, want 1", r.closed)
	}
	if s.State() != Closed {
		t.Errorf("state %v, want Closed", s.State())
	}
}

func TestCommitWithoutSlidingPane(t *testing.T) {
	s := newPane(Config{}, 0)
	if s.Open(false) || s.Open(true) {
		t.Error("open succeeded before measurement")
	}
	measureAndLayout(s, 1000, []layout.Child{{Width: 300, Height: layout.MatchParent}})
	if s.Open(false) {
		t.Error("open succeeded without a sliding pane")
	}
	if s.Offset() != 0 {
		t.Errorf("offset %v, want 0", s.Offset())
	}
}

func TestCommitWhileAnimating(t *testing.T) {
	s := newPane(Config{}, 0)
	measureAndLayout(s, 1000, overlapping())
	if !s.Open(true) {
		t.Fatal("animated open failed")
	}
	if !s.Animating() || s.GestureState() != GestureSettling {
		t.Fatalf("animating %v gesture %v", s.Animating(), s.GestureState())
	}
	// Closing while the open settles is a no-op reporting progress.
	if !s.Close(true) || !s.Close(false) {
		t.Error("close while animating reported failure")
	}
	if !s.Frame(epoch.Add(20 * time.Millisecond)) {
		t.Error("no frame requested while settling")
	}
	if o := s.Offset(); o <= 0 || o >= 1 || s.State() != Idle {
		t.Errorf("mid settle offset %v state %v", o, s.State())
	}
	s.Frame(settleTime)
	if s.Offset() != 1 || s.Animating() || s.State() != Open {
		t.Errorf("after settle: offset %v animating %v state %v", s.Offset(), s.Animating(), s.State())
	}
}

func TestCompleteSlide(t *testing.T) {
	for _, tc := range []struct {
		name     string
		offset   float32
		velocity float32
		open     bool
	}{
		{"half", 0.5, 0, true},
		{"just below half", 0.499999, 0, false},
		{"fling open", 0.2, 500, true},
		{"fling closed", 0.8, -500, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			s := newPane(Config{}, 0)
			measureAndLayout(s, 1000, overlapping())
			s.slideTo(tc.offset)
			s.touch.velocity = tc.velocity
			if !s.completeSlide() {
				t.Fatal("no slide to complete")
			}
			s.Frame(settleTime)
			if s.IsOpen() != tc.open {
				t.Errorf("open %v, want %v", s.IsOpen(), tc.open)
			}
			if s.Animating() {
				t.Error("still animating")
			}
		})
	}
}

func TestCompleteSlideAtBoundary(t *testing.T) {
	s := newPane(Config{}, 0)
	measureAndLayout(s, 1000, overlapping())
	if s.completeSlide() {
		t.Error("completed a slide at the closed boundary")
	}
}

func TestSwipeOffsetInRange(t *testing.T) {
	for _, dir := range []layout.Direction{layout.LTR, layout.RTL} {
		s := newPane(Config{}, 0)
		s.Direction = dir
		measureAndLayout(s, 1000, overlapping())
		for _, start := range []float32{0, 0.5, 1} {
			for dx := float32(-2000); dx <= 2000; dx += 37 {
				s.slideTo(start)
				s.touch.startOffset = s.Offset()
				s.dragTo(s.swipeStart(dx))
				o := s.Offset()
				if o < 0 || o > 1 {
					t.Fatalf("%v: offset %v for delta %v", dir, o, dx)
				}
				var want SlideState
				switch o {
				case 0:
					want = Closed
				case 1:
					want = Open
				default:
					want = Idle
				}
				if s.State() != want {
					t.Errorf("%v: offset %v state %v, want %v", dir, o, s.State(), want)
				}
			}
		}
	}
}

func TestZeroDragRange(t *testing.T) {
	s := newPane(Config{}, 0)
	measureAndLayout(s, 1000, []layout.Child{
		{Width: layout.MatchParent, Height: layout.MatchParent},
		{Width: 500, Height: layout.MatchParent},
	})
	if !s.IsSlideable() || s.DragRange() != 0 {
		t.Fatalf("slideable %v range %d", s.IsSlideable(), s.DragRange())
	}
	if !s.Open(false) || s.Offset() != 1 {
		t.Errorf("open with zero range: offset %v", s.Offset())
	}
	s.dragTo(s.arr.StartBound - 10)
	if s.Offset() != 0 {
		t.Errorf("offset %v, want 0", s.Offset())
	}
}

func TestParallax(t *testing.T) {
	covered := argb(0x80000000)
	s := newPane(Config{ParallaxDistance: 100, CoveredFadeColor: covered}, 0)
	measureAndLayout(s, 1000, dimming())
	if got := s.Rects()[0].Min.X; got != -100 {
		t.Errorf("closed fixed pane left %d, want -100", got)
	}
	if c, ok := s.Overlay(0); !ok || c != covered {
		t.Errorf("closed fixed pane overlay %v, %v", c, ok)
	}
	s.slideTo(0.5)
	if got := s.Rects()[0].Min.X; got != -50 {
		t.Errorf("half open fixed pane left %d, want -50", got)
	}
	s.Open(false)
	if got := s.Rects()[0].Min.X; got != 0 {
		t.Errorf("open fixed pane left %d, want 0", got)
	}
	if _, ok := s.Overlay(0); ok {
		t.Error("open fixed pane still dimmed")
	}
	if s.ParallaxDistance() != 100 {
		t.Errorf("parallax distance %d", s.ParallaxDistance())
	}
}

func TestDimming(t *testing.T) {
	s := newPane(Config{}, 0)
	measureAndLayout(s, 1000, dimming())
	if s.IsDimmed(1) {
		t.Error("closed pane dimmed")
	}
	s.slideTo(0.5)
	c, ok := s.Overlay(1)
	if !ok || c.A != 102 {
		t.Errorf("half open overlay %v, %v; want alpha 102", c, ok)
	}
	if !s.IsDimmed(1) || s.IsDimmed(0) {
		t.Errorf("dimmed: fixed %v sliding %v", s.IsDimmed(0), s.IsDimmed(1))
	}
}

func TestTransparentFadeColor(t *testing.T) {
	for _, tc := range []struct {
		name string
		cfg  Config
		dim  bool
	}{
		{"unset", Config{}, true},
		{"set", Config{FadeColorSet: true}, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			s := newPane(tc.cfg, 0)
			measureAndLayout(s, 1000, dimming())
			s.slideTo(0.5)
			if _, ok := s.Overlay(1); ok != tc.dim {
				t.Errorf("overlay %v, want %v", ok, tc.dim)
			}
		})
	}
}

func TestNoDimmingWhenMostlyVisible(t *testing.T) {
	s := newPane(Config{}, 0)
	measureAndLayout(s, 1000, overlapping())
	s.Open(false)
	if s.IsDimmed(1) {
		t.Error("open sliding pane dimmed while mostly in the container")
	}
	if _, ok := s.Overlay(1); ok {
		t.Error("open sliding pane has an overlay")
	}
}

func TestObscuredPanes(t *testing.T) {
	s := newPane(Config{}, 0)
	measureAndLayout(s, 1000, overlapping())
	if !s.IsSlideable() {
		t.Fatal("layout not slideable")
	}
	if s.Visible(0) {
		t.Error("covered pane visible")
	}
	s.Open(true)
	if !s.Visible(0) {
		t.Error("covered pane hidden while settling")
	}
	s.Frame(settleTime)
	s.Close(true)
	s.Frame(settleTime)
	if s.Offset() != 0 {
		t.Fatalf("offset %v, want 0", s.Offset())
	}
	if s.Visible(0) {
		t.Error("covered pane visible after closing")
	}
	s.Open(false)
	if !s.Visible(0) {
		t.Error("uncovered pane hidden after opening")
	}
	s.Close(false)
	if s.Visible(0) {
		t.Error("covered pane visible after closing immediately")
	}
}

func TestListeners(t *testing.T) {
	s := newPane(Config{}, 0)
	measureAndLayout(s, 1000, overlapping())
	r := new(recorder)
	s.AddListener(r)
	s.AddListener(r)
	var funcs int
	f := &ListenerFuncs{Opened: func() { funcs++ }}
	s.AddListener(f)
	s.Open(false)
	if len(r.slides) != 1 || r.slides[0] != 1 {
		t.Errorf("slides %v, want [1]", r.slides)
	}
	if r.opened != 1 || funcs != 1 {
		t.Errorf("opened %d and %d times, want 1", r.opened, funcs)
	}
	s.RemoveListener(r)
	s.RemoveListener(r)
	s.Close(false)
	if r.closed != 0 {
		t.Errorf("removed listener notified")
	}
}

func TestResizeContent(t *testing.T) {
	s := newPane(Config{}, 0)
	measureAndLayout(s, 1000, overlapping())
	s.SetContent([]layout.ContentChild{{}}, 0)
	if got := s.ContentWidths().Children; len(got) != 1 || got[0] != 1000 {
		t.Errorf("closed content widths %v, want [1000]", got)
	}
	s.Open(false)
	if got := s.ContentWidths().Children; len(got) != 1 || got[0] != 732 {
		t.Errorf("open content widths %v, want [732]", got)
	}
	s.SetResizeOff(true)
	s.Close(false)
	if got := s.ContentWidths().Children[0]; got != 732 {
		t.Errorf("content resized to %d with resizing off", got)
	}
}

func TestResizeTolerance(t *testing.T) {
	s := newPane(Config{ResizeTolerance: 5}, 0)
	measureAndLayout(s, 1000, overlapping())
	s.SetContent([]layout.ContentChild{{}}, 0)
	// 4 of 268 pixels is within the tolerance.
	s.slideTo(4.0 / 268)
	if got := s.ContentWidths().Children[0]; got != 1000 {
		t.Errorf("content width %d, want 1000", got)
	}
	s.slideTo(0.5)
	if got := s.ContentWidths().Children[0]; got != 866 {
		t.Errorf("content width %d, want 866", got)
	}
}

func TestMeasureBeforeLayout(t *testing.T) {
	t.Run("open", func(t *testing.T) {
		s := newPane(Config{}, 0)
		s.Measure(layout.Exact(1000), layout.Exact(500), overlapping())
		if !s.Open(false) || s.Offset() != 1 {
			t.Fatalf("open before layout: offset %v", s.Offset())
		}
		s.Layout()
		if !s.IsOpen() || s.Rects()[1].Min.X != 268 {
			t.Errorf("open %v sliding pane %v after layout", s.IsOpen(), s.Rects()[1])
		}
	})
	t.Run("children added", func(t *testing.T) {
		s := newPane(Config{}, 0)
		measureAndLayout(s, 1000, []layout.Child{{Width: 300, Height: layout.MatchParent}})
		s.Measure(layout.Exact(1000), layout.Exact(500), overlapping())
		if got := s.ClipRect(0); !got.Empty() {
			t.Errorf("fixed pane clip %v, want empty", got)
		}
		var c clock
		if s.Intercept(c.press(10, 50)) {
			t.Error("press intercepted")
		}
		if !s.Intercept(c.move(144, 50)) || s.Offset() != 0.5 {
			t.Errorf("offset %v after an edge drag", s.Offset())
		}
	})
}

func TestStateBeforeLayout(t *testing.T) {
	for _, children := range [][]layout.Child{
		nil,
		{{Width: 300, Height: layout.MatchParent}},
		overlapping(),
	} {
		s := newPane(Config{}, 0)
		if s.State() != Closed {
			t.Errorf("%d children: state %v before measurement", len(children), s.State())
		}
		if children != nil {
			measureAndLayout(s, 1000, children)
		}
		if s.State() != Closed || s.Offset() != 0 {
			t.Errorf("%d children: state %v offset %v", len(children), s.State(), s.Offset())
		}
	}
}
