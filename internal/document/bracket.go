package document

import "golang.org/x/text/width"

type bracketPair struct {
	open  uint16
	close uint16
}

// bracketPairs holds the ASCII pairs plus their East Asian full-width
// counterparts, derived at init so the table never drifts from the Unicode
// width mapping.
var bracketPairs = buildBracketPairs()

func buildBracketPairs() []bracketPair {
	ascii := []bracketPair{
		{'(', ')'},
		{'{', '}'},
		{'[', ']'},
		{'<', '>'},
	}
	pairs := make([]bracketPair, 0, len(ascii)*2)
	pairs = append(pairs, ascii...)
	for _, p := range ascii {
		o := widen(rune(p.open))
		c := widen(rune(p.close))
		if o != rune(p.open) && c != rune(p.close) && o <= 0xFFFF && c <= 0xFFFF {
			pairs = append(pairs, bracketPair{open: uint16(o), close: uint16(c)})
		}
	}
	return pairs
}

func widen(r rune) rune {
	rs := []rune(width.Widen.String(string(r)))
	if len(rs) != 1 {
		return r
	}
	return rs[0]
}

func pairForChar(ch uint16) (other uint16, forward bool, ok bool) {
	for _, p := range bracketPairs {
		if ch == p.open {
			return p.close, true, true
		}
		if ch == p.close {
			return p.open, false, true
		}
	}
	return 0, false, false
}

// FindMatchedBracket scans for the bracket matching the one at index,
// forward for an opener and backward for a closer, honoring nesting.
// Characters whose class is not grammar (string and comment content) are
// skipped on both ends: a bracket inside a string literal never matches and
// is never matched.
//
// maxSearch caps the number of characters examined; zero or negative means
// unlimited. The result is -1 with a nil error when there is no match: the
// character at index is not a bracket, it sits in non-grammar text, the
// partner is missing, or the cap was hit.
func (d *Document) FindMatchedBracket(index, maxSearch int) (int, error) {
	if index < 0 || index > d.store.Len() {
		return -1, ErrIndexOutOfRange
	}
	if index == d.store.Len() {
		return -1, nil
	}
	class, err := d.store.ClassAt(index)
	if err != nil {
		return -1, err
	}
	if !class.IsGrammar() {
		return -1, nil
	}
	ch, err := d.store.CharAt(index)
	if err != nil {
		return -1, err
	}
	other, forward, ok := pairForChar(ch)
	if !ok {
		return -1, nil
	}

	depth := 1
	steps := 0
	step := func() bool {
		steps++
		return maxSearch > 0 && steps > maxSearch
	}
	if forward {
		for i := index + 1; i < d.store.Len(); i++ {
			if step() {
				return -1, nil
			}
			if !d.grammarAt(i) {
				continue
			}
			c, _ := d.store.CharAt(i)
			switch c {
			case ch:
				depth++
			case other:
				depth--
				if depth == 0 {
					return i, nil
				}
			}
		}
		return -1, nil
	}
	for i := index - 1; i >= 0; i-- {
		if step() {
			return -1, nil
		}
		if !d.grammarAt(i) {
			continue
		}
		c, _ := d.store.CharAt(i)
		switch c {
		case ch:
			depth++
		case other:
			depth--
			if depth == 0 {
				return i, nil
			}
		}
	}
	return -1, nil
}

func (d *Document) grammarAt(index int) bool {
	class, err := d.store.ClassAt(index)
	if err != nil {
		return false
	}
	return class.IsGrammar()
}
