package textstore

// DirtyState tracks whether a line changed since the last save.
type DirtyState uint8

const (
	// LineClean means the line has not been modified since it was loaded.
	LineClean DirtyState = iota

	// LineDirty means the line was modified after the last save.
	LineDirty

	// LineSaved means the line was modified at some point and then saved.
	LineSaved
)

// String returns the name of the dirty state.
func (d DirtyState) String() string {
	switch d {
	case LineClean:
		return "clean"
	case LineDirty:
		return "dirty"
	case LineSaved:
		return "saved"
	default:
		return "unknown"
	}
}

// LineDirtyState returns the dirty state of a line.
func (s *Store) LineDirtyState(line int) (DirtyState, error) {
	if line < 0 || line >= s.LineCount() {
		return LineClean, ErrIndexOutOfRange
	}
	return s.dirty[line], nil
}

// SetLineDirtyState overwrites the dirty state of a line.
// Used by the document facade when restoring history snapshots.
func (s *Store) SetLineDirtyState(line int, state DirtyState) error {
	if line < 0 || line >= s.LineCount() {
		return ErrIndexOutOfRange
	}
	s.dirty[line] = state
	return nil
}

// DirtyStates returns a copy of the dirty states for lines [begin, end).
func (s *Store) DirtyStates(begin, end int) ([]DirtyState, error) {
	if begin < 0 || end > s.LineCount() || end < begin {
		return nil, ErrIndexOutOfRange
	}
	out := make([]DirtyState, end-begin)
	copy(out, s.dirty[begin:end])
	return out, nil
}

// SetDirtyStates overwrites dirty states starting at line begin.
// States beyond the current line count are ignored.
func (s *Store) SetDirtyStates(begin int, states []DirtyState) error {
	if begin < 0 || begin > s.LineCount() {
		return ErrIndexOutOfRange
	}
	for i, st := range states {
		if begin+i >= s.LineCount() {
			break
		}
		s.dirty[begin+i] = st
	}
	return nil
}

// MarkAllSaved transitions every dirty line to the saved state.
// Clean lines stay clean. Called when the document records a save point.
func (s *Store) MarkAllSaved() {
	for i, st := range s.dirty {
		if st == LineDirty {
			s.dirty[i] = LineSaved
		}
	}
}

// MarkAllClean resets every line to the clean state.
// Used when content is loaded wholesale.
func (s *Store) MarkAllClean() {
	for i := range s.dirty {
		s.dirty[i] = LineClean
	}
}
