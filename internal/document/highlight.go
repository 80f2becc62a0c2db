package document

import "github.com/quindle/textdoc/internal/document/textstore"

// Highlighter assigns character classes to a region of a document, typically
// after an edit invalidated them.
type Highlighter interface {
	Highlight(d *Document, begin, end int) error
}

// SetHighlighter installs (or, with nil, removes) the highlighter and
// notifies observers.
func (d *Document) SetHighlighter(h Highlighter) {
	d.highlighter = h
	d.highlighterObs.fire(HighlighterChangedEvent{})
}

// Highlighter returns the installed highlighter, or nil.
func (d *Document) Highlighter() Highlighter {
	return d.highlighter
}

// SetCharClass assigns a character class to every character in [begin, end).
// Class changes are presentation state: they record no history and do not
// touch dirty flags.
func (d *Document) SetCharClass(begin, end int, class textstore.CharClass) error {
	return d.store.SetClass(begin, end, class)
}

// CharClassAt returns the character class at index.
func (d *Document) CharClassAt(index int) (textstore.CharClass, error) {
	return d.store.ClassAt(index)
}
