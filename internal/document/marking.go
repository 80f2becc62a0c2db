package document

import "github.com/quindle/textdoc/internal/document/textstore"

// Marking IDs partition a 32-bit per-character bitset. ID 0 is pre-registered
// as "uri"; applications register the rest, typically one per concern
// (search hits, spell errors, diagnostics).

// RegisterMarking makes a marking ID usable. Registering an already
// registered ID overwrites its name.
func (d *Document) RegisterMarking(id int, name string) error {
	if id < 0 || id >= textstore.MaxMarkingIDs {
		return textstore.ErrInvalidMarkingID
	}
	d.markings[id] = name
	return nil
}

// IsMarkingRegistered reports whether the marking ID is registered.
func (d *Document) IsMarkingRegistered(id int) bool {
	_, ok := d.markings[id]
	return ok
}

// MarkingName returns the registered name of a marking ID.
func (d *Document) MarkingName(id int) (string, bool) {
	name, ok := d.markings[id]
	return name, ok
}

func (d *Document) checkMarking(id int) error {
	if id < 0 || id >= textstore.MaxMarkingIDs {
		return textstore.ErrInvalidMarkingID
	}
	if _, ok := d.markings[id]; !ok {
		return ErrMarkingNotRegistered
	}
	return nil
}

// Mark sets the marking on every character in [begin, end). It returns true
// if at least one character changed state, so marking an already marked
// range reports false.
func (d *Document) Mark(begin, end, id int) (bool, error) {
	if err := d.checkMarking(id); err != nil {
		return false, err
	}
	return d.store.Mark(begin, end, id)
}

// Unmark clears the marking on every character in [begin, end). It returns
// true if at least one character changed state.
func (d *Document) Unmark(begin, end, id int) (bool, error) {
	if err := d.checkMarking(id); err != nil {
		return false, err
	}
	return d.store.Unmark(begin, end, id)
}

// IsMarked reports whether the character at index carries the marking.
func (d *Document) IsMarked(index, id int) (bool, error) {
	if err := d.checkMarking(id); err != nil {
		return false, err
	}
	return d.store.IsMarked(index, id)
}

// GetMarkedRange returns the contiguous marked range around index for the
// given marking. If the character at index is unmarked (or index is the
// document end) the result is the empty range at index.
func (d *Document) GetMarkedRange(index, id int) (textstore.Range, error) {
	if err := d.checkMarking(id); err != nil {
		return textstore.Range{}, err
	}
	if index < 0 || index > d.store.Len() {
		return textstore.Range{}, ErrIndexOutOfRange
	}
	if index == d.store.Len() {
		return textstore.Range{Start: index, End: index}, nil
	}
	marked, err := d.store.IsMarked(index, id)
	if err != nil {
		return textstore.Range{}, err
	}
	if !marked {
		return textstore.Range{Start: index, End: index}, nil
	}
	begin := index
	for begin > 0 {
		m, _ := d.store.IsMarked(begin-1, id)
		if !m {
			break
		}
		begin--
	}
	end := index + 1
	for end < d.store.Len() {
		m, _ := d.store.IsMarked(end, id)
		if !m {
			break
		}
		end++
	}
	return textstore.Range{Start: begin, End: end}, nil
}
