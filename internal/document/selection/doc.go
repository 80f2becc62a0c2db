// Package selection implements the anchor/caret selection model of a
// document, including line and rectangle selection modes and index
// renormalization after edits.
//
// A selection always exists: an empty selection is anchor == caret. Line and
// rectangle modes need a LayoutProvider — the external view — to map char
// indices to 2-D positions and back; the manager itself has no layout
// knowledge.
package selection
