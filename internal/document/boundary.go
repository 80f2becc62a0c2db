package document

import (
	"unicode/utf16"

	"github.com/quindle/textdoc/internal/document/textstore"
)

// IsNotDividableIndex reports whether placing a caret (or a range boundary)
// at index would split an atomic character sequence: a CR+LF pair, a
// surrogate pair, or a base character from its variation selector.
// Combining marks are deliberately dividable; full grapheme clustering is a
// rendering concern, not a storage one.
//
// Index 0 and the document end are always dividable.
func (d *Document) IsNotDividableIndex(index int) bool {
	if index <= 0 || index >= d.store.Len() {
		return false
	}
	prev, _ := d.store.CharAt(index - 1)
	cur, _ := d.store.CharAt(index)
	if prev == '\r' && cur == '\n' {
		return true
	}
	if textstore.IsHighSurrogate(prev) && textstore.IsLowSurrogate(cur) {
		return true
	}
	return d.variationSelectorAt(index)
}

// variationSelectorAt reports whether the character starting at index is a
// variation selector: VS1-16 (U+FE00..FE0F), the Mongolian free variation
// selectors (U+180B..180D), or a plane-14 ideographic variation selector
// (U+E0100..E01EF) encoded as a surrogate pair.
func (d *Document) variationSelectorAt(index int) bool {
	c, _ := d.store.CharAt(index)
	if c >= 0xFE00 && c <= 0xFE0F {
		return true
	}
	if c >= 0x180B && c <= 0x180D {
		return true
	}
	if textstore.IsHighSurrogate(c) && index+1 < d.store.Len() {
		lo, _ := d.store.CharAt(index + 1)
		if textstore.IsLowSurrogate(lo) {
			r := utf16.DecodeRune(rune(c), rune(lo))
			return r >= 0xE0100 && r <= 0xE01EF
		}
	}
	return false
}

// NextGraphemeClusterIndex returns the nearest dividable index after index.
func (d *Document) NextGraphemeClusterIndex(index int) int {
	if index < 0 {
		return 0
	}
	if index >= d.store.Len() {
		return d.store.Len()
	}
	i := index + 1
	for i < d.store.Len() && d.IsNotDividableIndex(i) {
		i++
	}
	return i
}

// PrevGraphemeClusterIndex returns the nearest dividable index before index.
func (d *Document) PrevGraphemeClusterIndex(index int) int {
	if index <= 0 {
		return 0
	}
	if index > d.store.Len() {
		index = d.store.Len()
	}
	i := index - 1
	for i > 0 && d.IsNotDividableIndex(i) {
		i--
	}
	return i
}
