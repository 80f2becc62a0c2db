package lineview

import (
	"iter"

	"github.com/quindle/textdoc/internal/document/textstore"
)

// View is an indexed, ordered collection of line ranges.
type View interface {
	// Line returns the range of the given line.
	Line(index int) (textstore.Range, error)

	// AtOffset returns the index and range of the line containing the given
	// char offset. A line boundary belongs to the line that starts there;
	// the end of the document belongs to the last line.
	AtOffset(charIndex int) (int, textstore.Range, error)

	// Count returns the number of lines.
	Count() int

	// All enumerates lines in ascending order.
	All() iter.Seq2[int, textstore.Range]

	// Text returns the content of the given line.
	Text(index int) (string, error)
}

// Trimmed is a View whose ranges exclude the terminating EOL sequence.
type Trimmed struct {
	store *textstore.Store
}

// NewTrimmed creates a trimmed view over the store.
func NewTrimmed(s *textstore.Store) Trimmed {
	return Trimmed{store: s}
}

func (v Trimmed) Line(index int) (textstore.Range, error) {
	return v.store.LineRange(index)
}

func (v Trimmed) AtOffset(charIndex int) (int, textstore.Range, error) {
	return atOffset(v.store, charIndex, v.Line)
}

func (v Trimmed) Count() int {
	return v.store.LineCount()
}

func (v Trimmed) All() iter.Seq2[int, textstore.Range] {
	return all(v.Count(), v.Line)
}

func (v Trimmed) Text(index int) (string, error) {
	return lineText(v.store, v.Line, index)
}

// Raw is a View whose ranges include the terminating EOL sequence.
type Raw struct {
	store *textstore.Store
}

// NewRaw creates a raw view over the store.
func NewRaw(s *textstore.Store) Raw {
	return Raw{store: s}
}

func (v Raw) Line(index int) (textstore.Range, error) {
	return v.store.LineRangeRaw(index)
}

func (v Raw) AtOffset(charIndex int) (int, textstore.Range, error) {
	return atOffset(v.store, charIndex, v.Line)
}

func (v Raw) Count() int {
	return v.store.LineCount()
}

func (v Raw) All() iter.Seq2[int, textstore.Range] {
	return all(v.Count(), v.Line)
}

func (v Raw) Text(index int) (string, error) {
	return lineText(v.store, v.Line, index)
}

func atOffset(s *textstore.Store, charIndex int, line func(int) (textstore.Range, error)) (int, textstore.Range, error) {
	idx, err := s.LineIndexOf(charIndex)
	if err != nil {
		return 0, textstore.Range{}, err
	}
	r, err := line(idx)
	if err != nil {
		return 0, textstore.Range{}, err
	}
	return idx, r, nil
}

func all(count int, line func(int) (textstore.Range, error)) iter.Seq2[int, textstore.Range] {
	return func(yield func(int, textstore.Range) bool) {
		for i := 0; i < count; i++ {
			r, err := line(i)
			if err != nil {
				return
			}
			if !yield(i, r) {
				return
			}
		}
	}
}

func lineText(s *textstore.Store, line func(int) (textstore.Range, error), index int) (string, error) {
	r, err := line(index)
	if err != nil {
		return "", err
	}
	return s.Text(r.Start, r.End)
}
