package selection

import (
	"errors"
	"sort"

	"github.com/quindle/textdoc/internal/document/textstore"
)

// Errors returned by selection operations.
var (
	// ErrNoLayoutProvider indicates a line or rectangle selection was
	// requested without a layout provider.
	ErrNoLayoutProvider = errors.New("selection mode requires a layout provider")

	// ErrIndexOutOfRange indicates an anchor or caret outside [0, Len()].
	ErrIndexOutOfRange = errors.New("selection index out of range")

	// ErrRangesNotAscending indicates rectangle sub-ranges that are not in
	// ascending, non-overlapping order.
	ErrRangesNotAscending = errors.New("rectangle ranges not ascending")
)

// Manager tracks the document selection: an anchor/caret pair, the active
// mode, and — in rectangle mode — the derived per-row sub-ranges.
type Manager struct {
	store  *textstore.Store
	mode   Mode
	anchor int
	caret  int
	rects  []textstore.Range
}

// NewManager creates a manager with an empty selection at offset 0.
func NewManager(s *textstore.Store) *Manager {
	return &Manager{store: s}
}

// Mode returns the active selection mode.
func (m *Manager) Mode() Mode {
	return m.mode
}

// SetMode switches the selection mode. Leaving rectangle mode discards the
// derived sub-ranges; the anchor/caret pair is kept.
func (m *Manager) SetMode(mode Mode) {
	m.mode = mode
	if mode != ModeRectangle {
		m.rects = nil
	}
}

// Anchor returns the selection anchor.
func (m *Manager) Anchor() int {
	return m.anchor
}

// Caret returns the caret position.
func (m *Manager) Caret() int {
	return m.caret
}

// Selection returns the selected range [begin, end).
// For an empty selection begin == end == caret.
func (m *Manager) Selection() textstore.Range {
	if m.anchor <= m.caret {
		return textstore.Range{Start: m.anchor, End: m.caret}
	}
	return textstore.Range{Start: m.caret, End: m.anchor}
}

// RectRanges returns a copy of the rectangle sub-ranges.
// Empty outside rectangle mode.
func (m *Manager) RectRanges() []textstore.Range {
	if len(m.rects) == 0 {
		return nil
	}
	out := make([]textstore.Range, len(m.rects))
	copy(out, m.rects)
	return out
}

// SetRectRanges replaces the rectangle sub-ranges.
// Ranges must be valid, ascending and non-overlapping.
func (m *Manager) SetRectRanges(ranges []textstore.Range) error {
	for i, r := range ranges {
		if !r.IsValid() {
			return ErrRangesNotAscending
		}
		if i > 0 && r.Start < ranges[i-1].End {
			return ErrRangesNotAscending
		}
	}
	m.rects = make([]textstore.Range, len(ranges))
	copy(m.rects, ranges)
	return nil
}

// Set places the selection. The layout provider is required for line and
// rectangle modes and ignored in normal mode.
func (m *Manager) Set(anchor, caret int, lp LayoutProvider) error {
	if anchor < 0 || anchor > m.store.Len() || caret < 0 || caret > m.store.Len() {
		return ErrIndexOutOfRange
	}
	switch m.mode {
	case ModeLine:
		if lp == nil {
			return ErrNoLayoutProvider
		}
		m.setLine(anchor, caret, lp)
	case ModeRectangle:
		if lp == nil {
			return ErrNoLayoutProvider
		}
		m.anchor = anchor
		m.caret = caret
		m.rects = rectRangesFor(anchor, caret, lp)
	default:
		m.anchor = anchor
		m.caret = caret
		m.rects = nil
	}
	return nil
}

// setLine expands the anchor/caret pair to whole rows.
//
// Boundary rule: a caret (or, selecting backward, an anchor) sitting exactly
// at a row start does not pull that row into the selection.
func (m *Manager) setLine(anchor, caret int, lp LayoutProvider) {
	if caret >= anchor {
		_, ay := lp.IndexToPosition(anchor)
		begin := lp.PositionToIndex(0, ay)
		cx, cy := lp.IndexToPosition(caret)
		end := caret
		if cx != 0 {
			end = lp.PositionToIndex(0, cy+1)
		}
		m.anchor = begin
		m.caret = end
		return
	}
	_, cy := lp.IndexToPosition(caret)
	begin := lp.PositionToIndex(0, cy)
	ax, ay := lp.IndexToPosition(anchor)
	end := anchor
	if ax != 0 {
		end = lp.PositionToIndex(0, ay+1)
	}
	m.anchor = end
	m.caret = begin
}

// rectRangesFor derives the per-row sub-ranges of the rectangle spanned by
// anchor and caret. Rows are visited top to bottom, so the result is in
// ascending order; ranges are clamped so they never overlap.
func rectRangesFor(anchor, caret int, lp LayoutProvider) []textstore.Range {
	ax, ay := lp.IndexToPosition(anchor)
	cx, cy := lp.IndexToPosition(caret)
	left, right := ax, cx
	if left > right {
		left, right = right, left
	}
	top, bottom := ay, cy
	if top > bottom {
		top, bottom = bottom, top
	}

	ranges := make([]textstore.Range, 0, bottom-top+1)
	for y := top; y <= bottom; y++ {
		b := lp.PositionToIndex(left, y)
		e := lp.PositionToIndex(right, y)
		if b > e {
			b, e = e, b
		}
		if n := len(ranges); n > 0 && b < ranges[n-1].End {
			b = ranges[n-1].End
			if e < b {
				e = b
			}
		}
		ranges = append(ranges, textstore.Range{Start: b, End: e})
	}
	return ranges
}

// OnContentReplaced renormalizes every stored index after the edit
// [begin, end) was replaced with insertedLen code units: indices past the
// removed range shift by the length delta, indices inside it collapse to
// begin, indices before it are untouched.
func (m *Manager) OnContentReplaced(begin, end, insertedLen int) {
	m.anchor = transformIndex(m.anchor, begin, end, insertedLen)
	m.caret = transformIndex(m.caret, begin, end, insertedLen)
	for i := range m.rects {
		m.rects[i].Start = transformIndex(m.rects[i].Start, begin, end, insertedLen)
		m.rects[i].End = transformIndex(m.rects[i].End, begin, end, insertedLen)
	}
	if len(m.rects) > 0 {
		sort.Slice(m.rects, func(i, j int) bool {
			return m.rects[i].Start < m.rects[j].Start
		})
	}
}

// transformIndex applies the selection shift law for a single index.
func transformIndex(idx, begin, end, insertedLen int) int {
	if idx >= end {
		return idx + insertedLen - (end - begin)
	}
	if idx > begin {
		return begin
	}
	return idx
}
