package textstore

// MaxMarkingIDs is the number of marking bits carried per character.
const MaxMarkingIDs = 32

func validMarkingID(id int) bool {
	return id >= 0 && id < MaxMarkingIDs
}

// Mark sets the marking bit for id on every character in [begin, end).
// It returns true if at least one character changed state.
func (s *Store) Mark(begin, end, id int) (bool, error) {
	if !validMarkingID(id) {
		return false, ErrInvalidMarkingID
	}
	if err := s.validateRange(begin, end); err != nil {
		return false, err
	}
	bit := uint32(1) << uint(id)
	changed := false
	for i := begin; i < end; i++ {
		c := s.cellAt(i)
		if c.marks&bit == 0 {
			c.marks |= bit
			changed = true
		}
	}
	return changed, nil
}

// Unmark clears the marking bit for id on every character in [begin, end).
// It returns true if at least one character changed state.
func (s *Store) Unmark(begin, end, id int) (bool, error) {
	if !validMarkingID(id) {
		return false, ErrInvalidMarkingID
	}
	if err := s.validateRange(begin, end); err != nil {
		return false, err
	}
	bit := uint32(1) << uint(id)
	changed := false
	for i := begin; i < end; i++ {
		c := s.cellAt(i)
		if c.marks&bit != 0 {
			c.marks &^= bit
			changed = true
		}
	}
	return changed, nil
}

// IsMarked reports whether the character at index carries the marking bit
// for id.
func (s *Store) IsMarked(index, id int) (bool, error) {
	if !validMarkingID(id) {
		return false, ErrInvalidMarkingID
	}
	if index < 0 || index >= s.Len() {
		return false, ErrIndexOutOfRange
	}
	return s.cellAt(index).marks&(uint32(1)<<uint(id)) != 0, nil
}

// MarksAt returns the raw marking bitset of the character at index.
func (s *Store) MarksAt(index int) (uint32, error) {
	if index < 0 || index >= s.Len() {
		return 0, ErrIndexOutOfRange
	}
	return s.cellAt(index).marks, nil
}

// SetClass assigns a character class to every character in [begin, end).
func (s *Store) SetClass(begin, end int, class CharClass) error {
	if err := s.validateRange(begin, end); err != nil {
		return err
	}
	for i := begin; i < end; i++ {
		s.cellAt(i).class = class
	}
	return nil
}

// ClassAt returns the character class at index.
func (s *Store) ClassAt(index int) (CharClass, error) {
	if index < 0 || index >= s.Len() {
		return ClassNormal, ErrIndexOutOfRange
	}
	return s.cellAt(index).class, nil
}
