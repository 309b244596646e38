// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"image/color"
	"log/slog"

	"golang.org/x/exp/slices"

	"github.com/slidepane/slidepane/f32"
	"github.com/slidepane/slidepane/gesture"
	"github.com/slidepane/slidepane/layout"
	"github.com/slidepane/slidepane/unit"
)

// SlidingPane is the state of a two pane container whose second pane
// slides over the first when both do not fit side by side.
type SlidingPane struct {
	metric unit.Metric
	cfg    Config
	inv    Invalidator

	// Direction is the layout direction. Changes take effect at
	// the next Measure.
	Direction layout.Direction
	// Padding is the container padding.
	Padding layout.Insets

	children []layout.Child
	meas     layout.Measurement
	arr      layout.Arrangement
	params   layout.Params
	measured bool
	// gen counts the changes to the number of children.
	gen int

	rects   []image.Rectangle
	visible []bool
	dims    []dim

	offset float32
	// parallaxOffset is the slide offset the parallax shift of the
	// non-sliding panes was last computed for.
	parallaxOffset float32
	parallax       int
	state          SlideState
	listeners      []Listener

	// animating is set while an open or close settles.
	animating bool
	settler   gesture.Settler
	effects   effectQueue

	touch touchState

	pending       PendingAction
	customPending bool
	locked        bool
	orientation   Orientation
	windowVisible bool

	// preservedOpen is the open state to restore when the
	// layout next becomes slideable.
	preservedOpen       bool
	awaitingFirstLayout bool

	content      []layout.ContentChild
	panePadding  int
	targets      []layout.ResizeTarget
	singlePanel  bool
	resizeOff    bool
	resized      layout.Resized
	fixedWidth   layout.Extent
	contentWidth layout.Extent
}

// SlideState is the observable state of the sliding pane.
type SlideState uint8

const (
	// Closed means the slide offset is 0.
	Closed SlideState = iota
	// Open means the slide offset is 1.
	Open
	// Idle means the pane is between the boundaries, dragged or
	// animating.
	Idle
)

// LockMode is the lock mode of a SlidingPane. Lock modes are
// accepted for compatibility but have no effect: a SlidingPane
// always behaves as Unlocked.
type LockMode uint8

const (
	Unlocked LockMode = iota
	LockedOpen
	LockedClosed
	Locked
)

// Orientation is the display orientation reported with
// configuration changes.
type Orientation uint8

const (
	OrientationUndefined Orientation = iota
	Portrait
	Landscape
)

// Listener receives slide notifications. Listeners are compared
// with ==, so implementations must be comparable.
type Listener interface {
	// OnPanelSlide is called for every change of the slide
	// offset.
	OnPanelSlide(offset float32)
	// OnPanelOpened is called when the pane reaches the open
	// boundary.
	OnPanelOpened()
	// OnPanelClosed is called when the pane reaches the closed
	// boundary.
	OnPanelClosed()
}

// ListenerFuncs adapts functions to a Listener. Use a pointer to
// register it.
type ListenerFuncs struct {
	Slide  func(offset float32)
	Opened func()
	Closed func()
}

var logger = slog.Default()

// SetLogger sets the logger for diagnostics. A nil logger restores
// the default logger.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	logger = l
}

// NewSlidingPane returns a SlidingPane for a display with the given
// metric.
func NewSlidingPane(m unit.Metric, cfg Config) *SlidingPane {
	cfg = cfg.withDefaults()
	s := &SlidingPane{
		metric:              m,
		cfg:                 cfg,
		inv:                 cfg.Invalidator,
		parallax:            cfg.ParallaxDistance,
		state:               Closed,
		orientation:         cfg.Orientation,
		windowVisible:       true,
		awaitingFirstLayout: true,
		singlePanel:         cfg.SinglePanel,
		resizeOff:           cfg.ResizeOff,
		fixedWidth:          cfg.PreferredFixedWidth,
		contentWidth:        cfg.PreferredContentWidth,
	}
	if s.inv == nil {
		s.inv = new(DirtyRegion)
	}
	if cfg.NewSettler != nil {
		s.settler = cfg.NewSettler()
	} else {
		s.settler = &gesture.Settle{MaxDuration: cfg.MaxSettleDuration}
	}
	s.touch.drag = gesture.Drag{
		Slop:             cfg.TouchSlop,
		MinFlingVelocity: cfg.MinFlingVelocity,
		NewTracker:       cfg.NewVelocityTracker,
	}
	if cfg.DefaultOpen {
		s.pending = PendingExpand
		s.preservedOpen = true
	}
	return s
}

// Measure the container and its children, and return the measured
// size. Width must be exact and height must not be unspecified.
func (s *SlidingPane) Measure(width, height layout.Spec, children []layout.Child) image.Point {
	if len(children) != len(s.children) {
		s.gen++
	}
	s.children = children
	s.params = layout.Params{
		Direction:         s.Direction,
		Padding:           s.Padding,
		Overhang:          s.metric.Dp(s.cfg.Overhang),
		FixedMarginTop:    s.metric.Dp(s.cfg.FixedMarginTop),
		FixedMarginBottom: s.metric.Dp(s.cfg.FixedMarginBottom),
	}
	if w, ok := s.fixedWidth.Resolve(width.Size); ok {
		s.params.FixedWidth = w
	}
	s.meas = layout.Measure(s.params, width, height, children)
	s.measured = true
	if s.meas.Visible > 2 {
		logger.Error("more than two visible children; only the first two slide",
			slog.Int("visible", s.meas.Visible))
	}
	if n := len(children); len(s.dims) != n {
		s.dims = make([]dim, n)
		s.visible = make([]bool, n)
		for i := range s.visible {
			s.visible[i] = true
		}
	}
	if !s.meas.Slideable && s.settler.Settling() {
		s.abortSettle()
	}
	s.arrange()
	return s.meas.Size
}

// Layout positions the measured panes at the current slide offset
// and applies the pending action, if any.
func (s *SlidingPane) Layout() {
	if !s.measured {
		panic("widget: Layout called before Measure")
	}
	if s.awaitingFirstLayout {
		if s.meas.Slideable && s.preservedOpen {
			s.offset = 1
		} else {
			s.offset = 0
		}
	}
	s.arrange()
	if s.awaitingFirstLayout {
		if s.meas.Slideable {
			if s.parallax != 0 {
				s.parallaxOthers(s.offset)
			}
			if s.arr.DimWhenOffset {
				s.dimPane(s.meas.Sliding, s.offset, s.cfg.FadeColor)
			}
		} else {
			for i := range s.children {
				s.dimPane(i, 0, s.cfg.FadeColor)
			}
		}
		s.updateObscured()
	}
	s.awaitingFirstLayout = false
	if !s.resizeOff {
		s.resize(s.offset)
	}
	s.updateSlidingState()
	s.resolvePending()
}

// arrange recomputes the pane rectangles for the current offset. It
// keeps the rectangles in step with the measured children, so that
// the pane is usable between Measure and Layout.
func (s *SlidingPane) arrange() {
	s.arr = layout.Arrange(s.params, s.meas, s.children, s.offset, s.parallax)
	s.offset = s.arr.Offset
	s.rects = s.arr.Rects
	s.parallaxOffset = s.offset
}

// slider returns the index of the sliding pane, or -1.
func (s *SlidingPane) slider() int {
	if !s.measured {
		return -1
	}
	return s.meas.Sliding
}

// IsOpen reports whether the sliding pane is open. A layout that is
// not slideable is always open, since both panes are visible. Before
// the first measurement IsOpen reports the open state that will be
// restored.
func (s *SlidingPane) IsOpen() bool {
	if !s.measured {
		return s.preservedOpen
	}
	return !s.meas.Slideable || s.offset == 1
}

// IsSlideable reports whether the panes overlap and the sliding pane
// can move.
func (s *SlidingPane) IsSlideable() bool {
	return s.meas.Slideable
}

// Offset returns the slide offset in [0, 1].
func (s *SlidingPane) Offset() float32 {
	return s.offset
}

// State returns the slide state. The state follows the slide offset,
// so it is Closed until a layout moves the sliding pane.
func (s *SlidingPane) State() SlideState {
	return s.state
}

// Animating reports whether an open or close is settling.
func (s *SlidingPane) Animating() bool {
	return s.animating
}

// Measurement returns the result of the last Measure.
func (s *SlidingPane) Measurement() layout.Measurement {
	return s.meas
}

// DragRange returns the distance in pixels the sliding pane travels
// between closed and open.
func (s *SlidingPane) DragRange() int {
	return s.arr.DragRange
}

// Rects returns the pane rectangles in container coordinates. The
// slice is owned by the SlidingPane and valid until the next change.
func (s *SlidingPane) Rects() []image.Rectangle {
	return s.rects
}

// Visible reports whether pane i is visible. Panes completely
// covered by an opaque sliding pane are not.
func (s *SlidingPane) Visible(i int) bool {
	if i < 0 || i >= len(s.visible) {
		return false
	}
	return s.visible[i] && !s.meas.Panes[i].Gone
}

// ClipRect returns the clip rectangle for drawing pane i. Panes below
// the sliding pane are clipped at its leading edge.
func (s *SlidingPane) ClipRect(i int) image.Rectangle {
	clip := image.Rectangle{Max: s.meas.Size}
	sl := s.slider()
	if !s.meas.Slideable || sl < 0 || sl >= len(s.rects) || i == sl {
		return clip
	}
	r := s.rects[sl]
	if s.params.Direction == layout.RTL {
		clip.Min.X = max(clip.Min.X, r.Max.X)
	} else {
		clip.Max.X = min(clip.Max.X, r.Min.X)
	}
	return clip
}

// IsDimmed reports whether pane i is the sliding pane and is dimmed
// by its offset.
func (s *SlidingPane) IsDimmed(i int) bool {
	return s.meas.Slideable && i >= 0 && i == s.slider() && s.arr.DimWhenOffset && s.offset > 0
}

// Overlay returns the dim overlay color of pane i. The second result
// is false if the pane has no overlay.
func (s *SlidingPane) Overlay(i int) (color.NRGBA, bool) {
	if i < 0 || i >= len(s.dims) {
		return color.NRGBA{}, false
	}
	d := s.dims[i]
	return d.color, d.layer && d.color.A > 0
}

// AddListener registers l for slide notifications. Adding a
// registered listener has no effect.
func (s *SlidingPane) AddListener(l Listener) {
	if slices.Contains(s.listeners, l) {
		return
	}
	s.listeners = append(s.listeners, l)
}

// RemoveListener unregisters l.
func (s *SlidingPane) RemoveListener(l Listener) {
	if i := slices.Index(s.listeners, l); i >= 0 {
		s.listeners = slices.Delete(s.listeners, i, i+1)
	}
}

// LockMode always returns Unlocked.
func (s *SlidingPane) LockMode() LockMode {
	logger.Error("lock mode is not supported")
	return Unlocked
}

// SetLockMode has no effect.
func (s *SlidingPane) SetLockMode(m LockMode) {
	logger.Error("lock mode is not supported", slog.Int("mode", int(m)))
}

// Locked reports whether the pane is locked by a locking pending
// action. A locked pane cannot be dragged, opened or closed.
func (s *SlidingPane) Locked() bool {
	return s.locked
}

// ParallaxDistance returns the parallax distance in pixels.
func (s *SlidingPane) ParallaxDistance() int {
	return s.parallax
}

// SetParallaxDistance sets the distance in pixels the non-sliding
// panes shift as the sliding pane slides.
func (s *SlidingPane) SetParallaxDistance(px int) {
	s.parallax = px
	s.inv.Invalidate(s.bounds())
}

// Attach is called when the container is attached to a window.
func (s *SlidingPane) Attach() {
	s.awaitingFirstLayout = true
}

// Detach is called when the container is detached from its window.
// Deferred effects run immediately and any settle is aborted.
func (s *SlidingPane) Detach() {
	s.awaitingFirstLayout = true
	for s.effects.len() > 0 {
		s.runEffects()
	}
	if s.settler.Settling() {
		s.abortSettle()
	}
	s.touch.drag.Cancel()
}

// SizeChanged is called when the container width changes from old
// to w.
func (s *SlidingPane) SizeChanged(w, old int) {
	if w != old {
		s.awaitingFirstLayout = true
	}
}

// WindowVisibilityChanged is called when the window of the container
// is shown or hidden. Showing the window re-applies the current open
// state at the next layout.
func (s *SlidingPane) WindowVisibilityChanged(visible bool) {
	if visible && !s.windowVisible {
		s.pending = s.openAction()
	}
	s.windowVisible = visible
}

// ChildFocused is called when pane i gains focus. Outside touch mode
// it decides the open state to restore when the layout becomes
// slideable.
func (s *SlidingPane) ChildFocused(i int, touchMode bool) {
	if !touchMode && !s.meas.Slideable {
		s.preservedOpen = i == s.slider()
	}
}

// updateObscured hides the panes before the sliding pane that it
// covers completely.
func (s *SlidingPane) updateObscured() {
	sl := s.slider()
	var cover image.Rectangle
	if sl >= 0 && s.children[sl].Opaque {
		cover = s.rects[sl]
	}
	bounds := image.Rect(s.Padding.Left, s.Padding.Top, s.meas.Size.X-s.Padding.Right, s.meas.Size.Y-s.Padding.Bottom)
	for i := range s.children {
		if i == sl {
			break
		}
		if s.meas.Panes[i].Gone {
			continue
		}
		r := s.rects[i]
		r.Min.X = max(r.Min.X, bounds.Min.X)
		r.Min.Y = max(r.Min.Y, bounds.Min.Y)
		r.Max.X = min(r.Max.X, bounds.Max.X)
		r.Max.Y = min(r.Max.Y, bounds.Max.Y)
		s.visible[i] = !(r.Min.X >= cover.Min.X && r.Min.Y >= cover.Min.Y &&
			r.Max.X <= cover.Max.X && r.Max.Y <= cover.Max.Y)
	}
}

func (s *SlidingPane) setAllVisible() {
	for i := range s.visible {
		s.visible[i] = true
	}
}

// under reports whether p is within pane i.
func (s *SlidingPane) under(i int, p f32.Point) bool {
	if i < 0 || i >= len(s.rects) {
		return false
	}
	return p.In(f32.FRect(s.rects[i]))
}

func (l *ListenerFuncs) OnPanelSlide(offset float32) {
	if l.Slide != nil {
		l.Slide(offset)
	}
}

func (l *ListenerFuncs) OnPanelOpened() {
	if l.Opened != nil {
		l.Opened()
	}
}

func (l *ListenerFuncs) OnPanelClosed() {
	if l.Closed != nil {
		l.Closed()
	}
}

func (s SlideState) String() string {
	switch s {
	case Closed:
		return "Closed"
	case Open:
		return "Open"
	case Idle:
		return "Idle"
	default:
		panic("invalid SlideState")
	}
}

func (m LockMode) String() string {
	switch m {
	case Unlocked:
		return "Unlocked"
	case LockedOpen:
		return "LockedOpen"
	case LockedClosed:
		return "LockedClosed"
	case Locked:
		return "Locked"
	default:
		panic("invalid LockMode")
	}
}

func (o Orientation) String() string {
	switch o {
	case OrientationUndefined:
		return "Undefined"
	case Portrait:
		return "Portrait"
	case Landscape:
		return "Landscape"
	default:
		panic("invalid Orientation")
	}
}

func (s *SlidingPane) bounds() image.Rectangle {
	return image.Rectangle{Max: s.meas.Size}
}
