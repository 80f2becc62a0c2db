package textstore

import "sort"

// isBreakAt reports whether the character at pos terminates a line.
// LF always does; CR only when not directly followed by LF, so a CR+LF pair
// counts once, at the LF.
func (s *Store) isBreakAt(pos int) bool {
	c := s.cellAt(pos).ch
	if c == '\n' {
		return true
	}
	if c != '\r' {
		return false
	}
	if pos+1 < s.Len() && s.cellAt(pos+1).ch == '\n' {
		return false
	}
	return true
}

// reconcileLines rebuilds the line-head table and the dirty-state slice for
// the neighborhood of an edit. On entry the cells already hold the new
// content while heads and dirty still describe the pre-edit state.
//
// Only a small window around the edit is rescanned: one character before the
// edit through one character after it, which is exactly the region where
// CR+LF pairs can form or split. Heads before the window survive unchanged;
// heads beyond it survive shifted by the length delta.
//
// Dirty marking is conservative at the trailing edge of the window: a line
// whose head coincides with the window end is rebuilt and marked dirty even
// when its content is untouched, because the break that starts it sits on the
// one gutter character whose break status the edit can change.
func (s *Store) reconcileLines(begin, oldLen, newLen int) {
	delta := newLen - oldLen
	newTotal := s.Len()
	oldTotal := newTotal - delta

	scanBegin := begin
	if scanBegin > 0 {
		scanBegin--
	}
	scanEnd := begin + newLen
	if scanEnd < newTotal {
		scanEnd++
	}
	oldWindowEnd := begin + oldLen
	if oldWindowEnd < oldTotal {
		oldWindowEnd++
	}

	oldHeads := s.heads
	oldDirty := s.dirty
	oldLineCount := len(oldHeads) - 1

	// Prefix: heads at or before the window start (head 0 always survives).
	keep := 1
	for keep < oldLineCount && oldHeads[keep] <= scanBegin {
		keep++
	}

	// Suffix: first old head strictly beyond the window; those survive shifted.
	suffix := keep
	for suffix < oldLineCount && oldHeads[suffix] <= oldWindowEnd {
		suffix++
	}

	newHeads := make([]int, 0, len(oldHeads)+4)
	newHeads = append(newHeads, oldHeads[:keep]...)
	for p := scanBegin; p < scanEnd; p++ {
		if s.isBreakAt(p) {
			newHeads = append(newHeads, p+1)
		}
	}
	mid := len(newHeads) - keep
	for i := suffix; i < oldLineCount; i++ {
		newHeads = append(newHeads, oldHeads[i]+delta)
	}
	newHeads = append(newHeads, newTotal)
	s.heads = newHeads

	// Dirty-state reconciliation. Lines before the window keep their state.
	// Lines inside the window that provably kept their identity (same head,
	// ending at or before the edit) carry their state over; everything else
	// in the window becomes dirty. Lines beyond the window keep their state.
	firstLine := keep - 1
	lastAffected := keep + mid - 1
	newDirty := make([]DirtyState, len(newHeads)-1)
	copy(newDirty, oldDirty[:firstLine])
	j := firstLine
	for j < lastAffected && s.heads[j+1] <= begin &&
		j+1 < len(oldHeads) && oldHeads[j+1] == s.heads[j+1] {
		newDirty[j] = oldDirty[j]
		j++
	}
	for k := j; k <= lastAffected; k++ {
		newDirty[k] = LineDirty
	}
	copy(newDirty[lastAffected+1:], oldDirty[suffix:])
	s.dirty = newDirty
}

// LineIndexOf returns the index of the line containing the given char
// offset. A line boundary belongs to the line that starts there, except the
// end of the document which belongs to the last line.
func (s *Store) LineIndexOf(charIndex int) (int, error) {
	if charIndex < 0 || charIndex > s.Len() {
		return 0, ErrIndexOutOfRange
	}
	i := sort.Search(len(s.heads), func(i int) bool {
		return s.heads[i] > charIndex
	}) - 1
	if i >= s.LineCount() {
		i = s.LineCount() - 1
	}
	return i, nil
}

// LineHead returns the char offset where the given line begins.
func (s *Store) LineHead(line int) (int, error) {
	if line < 0 || line >= s.LineCount() {
		return 0, ErrIndexOutOfRange
	}
	return s.heads[line], nil
}

// LineRangeRaw returns the line's range including its EOL sequence.
func (s *Store) LineRangeRaw(line int) (Range, error) {
	if line < 0 || line >= s.LineCount() {
		return Range{}, ErrIndexOutOfRange
	}
	return Range{Start: s.heads[line], End: s.heads[line+1]}, nil
}

// LineRange returns the line's range excluding its EOL sequence.
func (s *Store) LineRange(line int) (Range, error) {
	r, err := s.LineRangeRaw(line)
	if err != nil {
		return Range{}, err
	}
	end := r.End
	if end > r.Start {
		switch s.cellAt(end - 1).ch {
		case '\n':
			end--
			if end > r.Start && s.cellAt(end-1).ch == '\r' {
				end--
			}
		case '\r':
			end--
		}
	}
	return Range{Start: r.Start, End: end}, nil
}

// LineLength returns the line's length excluding its EOL sequence.
func (s *Store) LineLength(line int) (int, error) {
	r, err := s.LineRange(line)
	if err != nil {
		return 0, err
	}
	return r.Len(), nil
}

// LineLengthRaw returns the line's length including its EOL sequence.
func (s *Store) LineLengthRaw(line int) (int, error) {
	r, err := s.LineRangeRaw(line)
	if err != nil {
		return 0, err
	}
	return r.Len(), nil
}

// CharIndexOf converts a line/column pair to a char offset.
// The column is counted in code units from the line head and may address the
// position just past the line's raw content.
func (s *Store) CharIndexOf(line, column int) (int, error) {
	r, err := s.LineRangeRaw(line)
	if err != nil {
		return 0, err
	}
	if column < 0 || column > r.Len() {
		return 0, ErrIndexOutOfRange
	}
	return r.Start + column, nil
}
