// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/slidepane/slidepane/layout"
)

func TestPendingActions(t *testing.T) {
	s := newPane(Config{}, 0)
	measureAndLayout(s, 1000, overlapping())

	steps := []struct {
		action PendingAction
		open   bool
		locked bool
	}{
		{PendingExpand, true, false},
		{PendingCollapse, false, false},
		{PendingExpandAndLock, true, true},
		// Locked panes ignore plain actions.
		{PendingCollapse, true, true},
		{PendingCollapseAndLock, false, true},
	}
	for i, st := range steps {
		if err := s.SetPendingAction(st.action); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		s.Layout()
		if s.IsOpen() != st.open || s.Locked() != st.locked {
			t.Errorf("step %d (%v): open %v locked %v, want %v %v",
				i, st.action, s.IsOpen(), s.Locked(), st.open, st.locked)
		}
		if s.PendingAction() != PendingNone {
			t.Errorf("step %d: pending %v after layout", i, s.PendingAction())
		}
	}
	if s.Open(false) || s.Close(true) {
		t.Error("commit succeeded on a locked pane")
	}
}

func TestInvalidPendingAction(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer SetLogger(nil)

	s := newPane(Config{}, 0)
	if err := s.SetPendingAction(PendingCollapse); err != nil {
		t.Fatal(err)
	}
	for _, a := range []PendingAction{-1, 3, 256, 259} {
		err := s.SetPendingAction(a)
		if !errors.Is(err, ErrInvalidPendingAction) {
			t.Errorf("SetPendingAction(%d) = %v", a, err)
		}
	}
	if s.PendingAction() != PendingCollapse {
		t.Errorf("pending %v after invalid actions, want Collapse", s.PendingAction())
	}
	if !strings.Contains(buf.String(), "invalid pending action") {
		t.Errorf("no diagnostic logged: %q", buf.String())
	}
}

func TestDefaultOpen(t *testing.T) {
	s := newPane(Config{DefaultOpen: true}, 0)
	if !s.IsOpen() {
		t.Error("default open pane closed before layout")
	}
	measureAndLayout(s, 1000, overlapping())
	if s.Offset() != 1 || s.State() != Open {
		t.Errorf("offset %v state %v", s.Offset(), s.State())
	}
}

func TestRotationKeepsOpenState(t *testing.T) {
	s := newPane(Config{Orientation: Portrait}, 0)
	measureAndLayout(s, 1000, overlapping())
	s.Open(false)

	s.ConfigurationChanged(Portrait)
	if s.PendingAction() != PendingNone {
		t.Errorf("pending %v without a rotation", s.PendingAction())
	}
	s.ConfigurationChanged(Landscape)
	if s.PendingAction() != PendingExpand {
		t.Fatalf("pending %v after rotation, want Expand", s.PendingAction())
	}
	s.SizeChanged(800, 1000)
	measureAndLayout(s, 800, overlapping())
	if s.DragRange() != 68 {
		t.Errorf("drag range %d, want 68", s.DragRange())
	}
	if !s.IsOpen() || s.Offset() != 1 {
		t.Errorf("open %v offset %v after rotation", s.IsOpen(), s.Offset())
	}
	if s.PendingAction() != PendingNone {
		t.Errorf("pending %v after layout", s.PendingAction())
	}
}

func TestRotationKeepsHostAction(t *testing.T) {
	s := newPane(Config{Orientation: Portrait}, 0)
	measureAndLayout(s, 1000, overlapping())
	s.Open(false)
	s.SetPendingAction(PendingCollapse)
	s.ConfigurationChanged(Landscape)
	if s.PendingAction() != PendingCollapse {
		t.Errorf("pending %v, want the host's Collapse", s.PendingAction())
	}
	// A locked pane always keeps its state.
	s.locked = true
	s.ConfigurationChanged(Portrait)
	if s.PendingAction() != PendingExpand {
		t.Errorf("locked pending %v, want Expand", s.PendingAction())
	}
}

func TestWindowVisibility(t *testing.T) {
	s := newPane(Config{}, 0)
	measureAndLayout(s, 1000, overlapping())
	s.Open(false)
	s.WindowVisibilityChanged(false)
	if s.PendingAction() != PendingNone {
		t.Errorf("pending %v after hiding", s.PendingAction())
	}
	s.WindowVisibilityChanged(true)
	if s.PendingAction() != PendingExpand {
		t.Errorf("pending %v after showing, want Expand", s.PendingAction())
	}
}

func TestFirstLayoutRestoresPreservedState(t *testing.T) {
	s := newPane(Config{}, 0)
	measureAndLayout(s, 1000, sideBySide())
	s.ChildFocused(1, true)
	if s.Save().Open {
		t.Error("focus in touch mode changed the preserved state")
	}
	s.ChildFocused(1, false)
	if !s.Save().Open {
		t.Error("focusing the sliding pane did not preserve the open state")
	}
	s.Attach()
	measureAndLayout(s, 1000, overlapping())
	if s.Offset() != 1 {
		t.Errorf("offset %v, want 1", s.Offset())
	}
}

func TestMoreThanTwoChildren(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer SetLogger(nil)

	s := newPane(Config{}, 0)
	children := append(overlapping(), layout.Child{Width: 100, Height: layout.MatchParent})
	measureAndLayout(s, 1000, children)
	if !strings.Contains(buf.String(), "more than two visible children") {
		t.Errorf("no diagnostic logged: %q", buf.String())
	}
	if s.Measurement().Sliding != 1 || !s.IsSlideable() {
		t.Errorf("sliding %d slideable %v", s.Measurement().Sliding, s.IsSlideable())
	}
}

func TestLockMode(t *testing.T) {
	SetLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	defer SetLogger(nil)

	s := newPane(Config{}, 0)
	for _, m := range []LockMode{Unlocked, LockedOpen, LockedClosed, Locked} {
		s.SetLockMode(m)
		if got := s.LockMode(); got != Unlocked {
			t.Errorf("lock mode %v after setting %v", got, m)
		}
	}
	if s.Locked() {
		t.Error("lock mode locked the pane")
	}
}
