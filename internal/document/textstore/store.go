package textstore

// minGapSize is the smallest gap allocated when the buffer grows.
const minGapSize = 64

// cell is one UTF-16 code unit together with its out-of-band metadata.
// Marking bits and the class tag travel with the character on every edit,
// which keeps the three logical arrays of the data model in lockstep by
// construction.
type cell struct {
	ch    uint16
	marks uint32
	class CharClass
}

// Store holds document text as UTF-16 code units in a gap buffer, plus the
// incrementally maintained line-head table and per-line dirty states.
//
// The zero value is not usable; create stores with New or NewFromString.
// The store is not safe for concurrent mutation.
type Store struct {
	cells    []cell
	gapStart int
	gapEnd   int

	// heads[i] is the char offset where line i begins. The final entry is a
	// sentinel equal to Len(). When the document ends with a line break the
	// last line is empty and its head coincides with the sentinel, so the
	// table is non-decreasing rather than strictly increasing at the tail.
	heads []int

	// dirty[i] tracks whether line i changed since the last save.
	// Always len(heads)-1 entries.
	dirty []DirtyState
}

// New creates an empty store.
func New() *Store {
	return &Store{
		cells:  make([]cell, minGapSize),
		gapEnd: minGapSize,
		heads:  []int{0, 0},
		dirty:  []DirtyState{LineClean},
	}
}

// NewFromString creates a store with initial content.
// All lines start clean.
func NewFromString(content string) *Store {
	s := New()
	if content != "" {
		// Insert at 0 into an empty store cannot fail.
		_ = s.Insert(0, content)
		s.MarkAllClean()
	}
	return s
}

// Len returns the length of the document in UTF-16 code units.
func (s *Store) Len() int {
	return len(s.cells) - (s.gapEnd - s.gapStart)
}

// LineCount returns the number of logical lines.
// An empty store has one (empty) line.
func (s *Store) LineCount() int {
	return len(s.heads) - 1
}

// cellAt maps a logical char index to its cell.
// The caller must ensure 0 <= index < Len().
func (s *Store) cellAt(index int) *cell {
	if index < s.gapStart {
		return &s.cells[index]
	}
	return &s.cells[index+(s.gapEnd-s.gapStart)]
}

// CharAt returns the code unit at the given index.
func (s *Store) CharAt(index int) (uint16, error) {
	if index < 0 || index >= s.Len() {
		return 0, ErrIndexOutOfRange
	}
	return s.cellAt(index).ch, nil
}

// ValidateRange checks that [begin, end) is a valid range in the store.
func (s *Store) ValidateRange(begin, end int) error {
	return s.validateRange(begin, end)
}

func (s *Store) validateRange(begin, end int) error {
	if begin < 0 || begin > s.Len() || end < 0 || end > s.Len() {
		return ErrIndexOutOfRange
	}
	if end < begin {
		return ErrRangeInvalid
	}
	return nil
}

// Text returns the text in [begin, end) decoded to a string.
func (s *Store) Text(begin, end int) (string, error) {
	if err := s.validateRange(begin, end); err != nil {
		return "", err
	}
	if begin == end {
		return "", nil
	}
	units := make([]uint16, end-begin)
	for i := begin; i < end; i++ {
		units[i-begin] = s.cellAt(i).ch
	}
	return DecodeUTF16(units), nil
}

// String returns the full document content.
func (s *Store) String() string {
	t, _ := s.Text(0, s.Len())
	return t
}

// gapLen returns the current gap width.
func (s *Store) gapLen() int {
	return s.gapEnd - s.gapStart
}

// moveGap relocates the gap so that it starts at pos.
func (s *Store) moveGap(pos int) {
	if pos == s.gapStart {
		return
	}
	if pos < s.gapStart {
		n := s.gapStart - pos
		copy(s.cells[s.gapEnd-n:s.gapEnd], s.cells[pos:s.gapStart])
		s.gapStart = pos
		s.gapEnd -= n
	} else {
		n := pos - s.gapStart
		copy(s.cells[s.gapStart:s.gapStart+n], s.cells[s.gapEnd:s.gapEnd+n])
		s.gapStart += n
		s.gapEnd += n
	}
}

// ensureGap grows the backing array until the gap can hold n cells.
func (s *Store) ensureGap(n int) {
	if s.gapLen() >= n {
		return
	}
	grow := len(s.cells)
	if grow < n+minGapSize {
		grow = n + minGapSize
	}
	next := make([]cell, len(s.cells)+grow)
	copy(next, s.cells[:s.gapStart])
	tail := len(s.cells) - s.gapEnd
	copy(next[len(next)-tail:], s.cells[s.gapEnd:])
	s.cells = next
	s.gapEnd = len(next) - tail
}

// Insert inserts text at the given position.
// Line heads at or after the position shift by the inserted length, new line
// heads are created for line breaks contained in the text, and affected
// lines are marked dirty. New characters carry no marks and the normal class.
func (s *Store) Insert(pos int, text string) error {
	if pos < 0 || pos > s.Len() {
		return ErrIndexOutOfRange
	}
	units := EncodeUTF16(text)
	if len(units) == 0 {
		return nil
	}
	s.ensureGap(len(units))
	s.moveGap(pos)
	for _, u := range units {
		s.cells[s.gapStart] = cell{ch: u}
		s.gapStart++
	}
	s.reconcileLines(pos, 0, len(units))
	return nil
}

// Remove deletes the text in [begin, end).
// Line heads after the range shift left, heads inside the range disappear
// (lines merge), and affected lines are marked dirty.
func (s *Store) Remove(begin, end int) error {
	if err := s.validateRange(begin, end); err != nil {
		return err
	}
	if begin == end {
		return nil
	}
	s.moveGap(begin)
	n := end - begin
	// Scrub removed cells so marks and classes do not leak into reused slots.
	for i := s.gapEnd; i < s.gapEnd+n; i++ {
		s.cells[i] = cell{}
	}
	s.gapEnd += n
	s.reconcileLines(begin, n, 0)
	return nil
}
