package document

import (
	"regexp"
	"unicode"

	"github.com/rivo/uniseg"

	"github.com/quindle/textdoc/internal/document/textstore"
)

// FindOptions controls literal search behavior.
type FindOptions struct {
	// MatchCase makes the search case-sensitive.
	MatchCase bool

	// WholeWord accepts a hit only when both of its edges fall on Unicode
	// word boundaries.
	WholeWord bool
}

// FindNext searches forward for pattern starting at begin and returns the
// first hit in code-unit offsets. Found is false when there is no hit.
func (d *Document) FindNext(pattern string, begin int, opts FindOptions) (textstore.Range, bool, error) {
	if pattern == "" {
		return textstore.Range{}, false, ErrEmptyPattern
	}
	if begin < 0 || begin > d.store.Len() {
		return textstore.Range{}, false, ErrIndexOutOfRange
	}
	text, err := d.store.Text(begin, d.store.Len())
	if err != nil {
		return textstore.Range{}, false, err
	}
	hay, needle, off := foldedRunes(text, pattern, opts)
	from := 0
	for {
		b := runeIndex(hay[from:], needle)
		if b < 0 {
			return textstore.Range{}, false, nil
		}
		b += from
		e := b + len(needle)
		if wordHit(text, off[b], off[e], opts) {
			return offsetRange(text, begin, off[b], off[e]), true, nil
		}
		from = b + 1
	}
}

// FindPrev searches backward for pattern in [0, begin) and returns the last
// hit in code-unit offsets. Found is false when there is no hit.
func (d *Document) FindPrev(pattern string, begin int, opts FindOptions) (textstore.Range, bool, error) {
	if pattern == "" {
		return textstore.Range{}, false, ErrEmptyPattern
	}
	if begin < 0 || begin > d.store.Len() {
		return textstore.Range{}, false, ErrIndexOutOfRange
	}
	text, err := d.store.Text(0, begin)
	if err != nil {
		return textstore.Range{}, false, err
	}
	hay, needle, off := foldedRunes(text, pattern, opts)
	from := len(hay)
	for {
		b := runeLastIndex(hay[:from], needle)
		if b < 0 {
			return textstore.Range{}, false, nil
		}
		e := b + len(needle)
		if wordHit(text, off[b], off[e], opts) {
			return offsetRange(text, 0, off[b], off[e]), true, nil
		}
		from = e - 1
	}
}

// FindNextRegexp searches forward with a compiled regular expression
// starting at begin.
func (d *Document) FindNextRegexp(re *regexp.Regexp, begin int) (textstore.Range, bool, error) {
	if re == nil {
		return textstore.Range{}, false, ErrEmptyPattern
	}
	if begin < 0 || begin > d.store.Len() {
		return textstore.Range{}, false, ErrIndexOutOfRange
	}
	text, err := d.store.Text(begin, d.store.Len())
	if err != nil {
		return textstore.Range{}, false, err
	}
	loc := re.FindStringIndex(text)
	if loc == nil {
		return textstore.Range{}, false, nil
	}
	return offsetRange(text, begin, loc[0], loc[1]), true, nil
}

// FindPrevRegexp searches backward with a compiled regular expression in
// [0, begin), returning the last hit.
func (d *Document) FindPrevRegexp(re *regexp.Regexp, begin int) (textstore.Range, bool, error) {
	if re == nil {
		return textstore.Range{}, false, ErrEmptyPattern
	}
	if begin < 0 || begin > d.store.Len() {
		return textstore.Range{}, false, ErrIndexOutOfRange
	}
	text, err := d.store.Text(0, begin)
	if err != nil {
		return textstore.Range{}, false, err
	}
	locs := re.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return textstore.Range{}, false, nil
	}
	loc := locs[len(locs)-1]
	return offsetRange(text, 0, loc[0], loc[1]), true, nil
}

// foldedRunes prepares a literal search: text and pattern as rune slices,
// folded when the search is case-insensitive, plus the byte offset of every
// hay rune in text (with one extra entry for the text end). Folding is
// rune-for-rune via unicode.SimpleFold, so hay positions map back to the
// unfolded text through off even when a mapping like U+0130 would change
// the byte length under ToLower.
func foldedRunes(text, pattern string, opts FindOptions) (hay, needle []rune, off []int) {
	hay = make([]rune, 0, len(text))
	off = make([]int, 0, len(text)+1)
	for i, r := range text {
		hay = append(hay, r)
		off = append(off, i)
	}
	off = append(off, len(text))
	needle = []rune(pattern)
	if !opts.MatchCase {
		foldRunes(hay)
		foldRunes(needle)
	}
	return hay, needle, off
}

// foldRunes maps each rune to the smallest rune in its simple case-fold
// orbit, in place.
func foldRunes(rs []rune) {
	for i, r := range rs {
		low := r
		for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
			if f < low {
				low = f
			}
		}
		rs[i] = low
	}
}

// runeIndex returns the index of the first occurrence of needle in hay,
// or -1 if absent.
func runeIndex(hay, needle []rune) int {
outer:
	for i := 0; i+len(needle) <= len(hay); i++ {
		for j, r := range needle {
			if hay[i+j] != r {
				continue outer
			}
		}
		return i
	}
	return -1
}

// runeLastIndex returns the index of the last occurrence of needle in hay,
// or -1 if absent.
func runeLastIndex(hay, needle []rune) int {
outer:
	for i := len(hay) - len(needle); i >= 0; i-- {
		for j, r := range needle {
			if hay[i+j] != r {
				continue outer
			}
		}
		return i
	}
	return -1
}

func wordHit(text string, b, e int, opts FindOptions) bool {
	if !opts.WholeWord {
		return true
	}
	return isWordBoundary(text, b) && isWordBoundary(text, e)
}

// isWordBoundary reports whether the byte offset pos falls on a Unicode word
// boundary of s, per UAX #29 word segmentation.
func isWordBoundary(s string, pos int) bool {
	if pos <= 0 || pos >= len(s) {
		return true
	}
	rest := s
	off := 0
	state := -1
	for len(rest) > 0 {
		var word string
		word, rest, state = uniseg.FirstWordInString(rest, state)
		off += len(word)
		if off == pos {
			return true
		}
		if off > pos {
			return false
		}
	}
	return false
}

// offsetRange converts byte offsets within text to a document range, where
// base is the code-unit offset of text's start.
func offsetRange(text string, base, b, e int) textstore.Range {
	start := base + textstore.UTF16Len(text[:b])
	return textstore.Range{
		Start: start,
		End:   start + textstore.UTF16Len(text[b:e]),
	}
}
