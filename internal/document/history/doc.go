// Package history implements the undo/redo model of a document: a linear
// list of replace actions with a cursor, grouping of consecutive edits into
// one undoable unit, and a saved-state marker.
//
// The history never touches the buffer itself. Undo and Redo hand the action
// back to the caller, which replays the inverse (or forward) replacement
// through its own mutation primitive.
//
// Dirtiness is defined purely by cursor identity: the document is dirty
// exactly when the history cursor differs from the saved marker.
package history
