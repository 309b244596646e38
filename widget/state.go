// SPDX-License-Identifier: Unlicense OR MIT

package widget

// SavedState is the persisted state of a SlidingPane.
type SavedState struct {
	Open bool `toml:"open"`
	// LockMode is reserved and always Unlocked.
	LockMode LockMode `toml:"lock_mode"`
}

// Save returns the state to persist. A layout that is not slideable
// saves the open state it will restore when it becomes slideable.
func (s *SlidingPane) Save() SavedState {
	open := s.preservedOpen
	if s.meas.Slideable {
		open = s.IsOpen()
	}
	return SavedState{Open: open, LockMode: Unlocked}
}

// Restore opens or closes the pane to match st. It is usually called
// on a fresh SlidingPane, in which case the state is applied at the
// first layout.
func (s *SlidingPane) Restore(st SavedState) {
	if st.Open {
		s.Open(true)
	} else {
		s.Close(true)
	}
	s.preservedOpen = st.Open
}
