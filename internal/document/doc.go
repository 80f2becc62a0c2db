// Package document implements the text-document core of an editor: UTF-16
// character storage with line indexing, an anchor/caret selection model with
// line and rectangle modes, grouped undo/redo with a saved-state marker,
// per-line dirty tracking, character markings, bracket matching and search.
//
// All offsets and lengths in the public API are UTF-16 code units; a
// character outside the BMP occupies two. Observers are notified
// synchronously, in registration order, after the document reached its new
// consistent state.
package document
