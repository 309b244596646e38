// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"errors"
	"fmt"
	"log/slog"
)

// PendingAction is an open or close request applied at the next
// layout.
type PendingAction int

const (
	PendingNone     PendingAction = 0
	PendingExpand   PendingAction = 1
	PendingCollapse PendingAction = 2
	// PendingExpandAndLock opens the pane and locks it.
	PendingExpandAndLock PendingAction = 257
	// PendingCollapseAndLock closes the pane and locks it.
	PendingCollapseAndLock PendingAction = 258
)

// ErrInvalidPendingAction is returned for values that are not one of
// the PendingAction constants.
var ErrInvalidPendingAction = errors.New("widget: invalid pending action")

// SetPendingAction requests an action for the next layout, replacing
// any previous request. Invalid actions are rejected without changing
// any state.
func (s *SlidingPane) SetPendingAction(a PendingAction) error {
	if !a.valid() {
		logger.Error("invalid pending action", slog.Int("action", int(a)))
		return fmt.Errorf("%w: %d", ErrInvalidPendingAction, int(a))
	}
	s.customPending = true
	s.pending = a
	return nil
}

// PendingAction returns the action to apply at the next layout.
func (s *SlidingPane) PendingAction() PendingAction {
	return s.pending
}

// ConfigurationChanged is called when the display configuration
// changes. A rotation keeps the current open state unless the host
// requested an action; a locked pane always keeps it.
func (s *SlidingPane) ConfigurationChanged(o Orientation) {
	if !s.customPending && o != s.orientation {
		s.pending = s.openAction()
	}
	if s.locked {
		s.pending = s.openAction()
	}
	s.orientation = o
	if s.measured && s.meas.Fixed < 0 {
		logger.Error("no fixed pane to apply the preferred width to")
		return
	}
	// The preferred fixed width is resolved against the new
	// container width at the next Measure.
	s.inv.Invalidate(s.bounds())
}

func (s *SlidingPane) openAction() PendingAction {
	if s.IsOpen() {
		return PendingExpand
	}
	return PendingCollapse
}

// resolvePending applies the pending action after a layout.
func (s *SlidingPane) resolvePending() {
	switch s.pending {
	case PendingExpand:
		if s.locked {
			s.resize(1)
		}
		s.open(false)
	case PendingCollapse:
		if s.locked {
			s.resize(0)
		}
		s.close(false)
	case PendingExpandAndLock:
		s.locked = false
		s.open(false)
		s.locked = true
	case PendingCollapseAndLock:
		s.locked = false
		s.close(false)
		s.locked = true
	default:
		return
	}
	s.pending = PendingNone
}

func (a PendingAction) valid() bool {
	switch a {
	case PendingNone, PendingExpand, PendingCollapse, PendingExpandAndLock, PendingCollapseAndLock:
		return true
	}
	return false
}

func (a PendingAction) String() string {
	switch a {
	case PendingNone:
		return "None"
	case PendingExpand:
		return "Expand"
	case PendingCollapse:
		return "Collapse"
	case PendingExpandAndLock:
		return "ExpandAndLock"
	case PendingCollapseAndLock:
		return "CollapseAndLock"
	default:
		panic("invalid PendingAction")
	}
}
