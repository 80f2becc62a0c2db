// Package textstore implements the character storage layer of a document:
// a gap buffer of UTF-16 code units with an incrementally maintained
// line-head table, per-character marking bits and class tags, and per-line
// dirty states.
//
// The store is the only component that touches raw storage. Everything above
// it (line views, selection, history, the document facade) reads through its
// accessors and mutates exclusively via Insert and Remove.
//
// Offsets are UTF-16 code unit indices. A character outside the BMP occupies
// two code units (a surrogate pair); the store itself does not prevent edits
// from splitting pairs — boundary safety is enforced by the document facade's
// grapheme queries.
package textstore
