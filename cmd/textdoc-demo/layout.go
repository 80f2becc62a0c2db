package main

import "github.com/quindle/textdoc/internal/document"

// GridLayout maps char offsets to line/column positions, with the column
// counted in code units. It is the layout provider behind line and
// rectangle selections in the demo; a real frontend would map through its
// rendered glyph grid instead.
type GridLayout struct {
	doc *document.Document
}

// NewGridLayout creates a layout over the document.
func NewGridLayout(d *document.Document) *GridLayout {
	return &GridLayout{doc: d}
}

// IndexToPosition converts a char offset to a column/row pair.
// Out-of-range offsets clamp to the document bounds.
func (g *GridLayout) IndexToPosition(index int) (x, y int) {
	if index < 0 {
		return 0, 0
	}
	if index > g.doc.Length() {
		index = g.doc.Length()
	}
	line, err := g.doc.LineIndexOf(index)
	if err != nil {
		return 0, 0
	}
	head, err := g.doc.LineHead(line)
	if err != nil {
		return 0, 0
	}
	return index - head, line
}

// PositionToIndex converts a column/row pair to a char offset. The column
// clamps to the row's content excluding the EOL sequence, so a position can
// never land inside or beyond a line break; a row at or past the line count
// yields the document end.
func (g *GridLayout) PositionToIndex(x, y int) int {
	if y < 0 {
		return 0
	}
	if y >= g.doc.LineCount() {
		return g.doc.Length()
	}
	head, err := g.doc.LineHead(y)
	if err != nil {
		return g.doc.Length()
	}
	r, err := g.doc.Lines().Line(y)
	if err != nil {
		return head
	}
	if x < 0 {
		x = 0
	}
	if x > r.Len() {
		x = r.Len()
	}
	return head + x
}
