package history

import "errors"

// Errors returned by history operations.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// unreachableSaved marks a saved position that was truncated away; the
// document can then never become clean again through undo alone.
const unreachableSaved = -1

// History is the undo/redo record of a document.
//
// Actions live in a single list with a cursor: everything before the cursor
// is undoable, everything at and after it is redoable. Adding an action
// truncates the redoable tail.
type History struct {
	actions []*Action
	cursor  int
	saved   int

	groupDepth int
	group      *Action
}

// New creates an empty history. The initial state counts as saved.
func New() *History {
	return &History{}
}

// Add records an action. While a group is open the action accumulates into
// the group instead; otherwise any redoable tail is discarded first.
func (h *History) Add(a *Action) {
	if a == nil || a.IsEmpty() {
		return
	}
	if h.groupDepth > 0 {
		h.group.Children = append(h.group.Children, a)
		return
	}
	h.push(a)
}

func (h *History) push(a *Action) {
	if h.saved > h.cursor {
		// The saved state lived in the tail we are about to discard.
		h.saved = unreachableSaved
	}
	h.actions = append(h.actions[:h.cursor], a)
	h.cursor = len(h.actions)
}

// Undo steps the cursor back and returns the action to reverse.
func (h *History) Undo() (*Action, error) {
	if !h.CanUndo() {
		return nil, ErrNothingToUndo
	}
	h.cursor--
	return h.actions[h.cursor], nil
}

// Redo steps the cursor forward and returns the action to re-apply.
func (h *History) Redo() (*Action, error) {
	if !h.CanRedo() {
		return nil, ErrNothingToRedo
	}
	a := h.actions[h.cursor]
	h.cursor++
	return a, nil
}

// CanUndo returns true if at least one action can be undone.
func (h *History) CanUndo() bool {
	return h.cursor > 0
}

// CanRedo returns true if at least one action can be redone.
func (h *History) CanRedo() bool {
	return h.cursor < len(h.actions)
}

// UndoCount returns the number of undoable actions.
func (h *History) UndoCount() int {
	return h.cursor
}

// RedoCount returns the number of redoable actions.
func (h *History) RedoCount() int {
	return len(h.actions) - h.cursor
}

// PeekUndo returns the next action Undo would reverse, without moving.
func (h *History) PeekUndo() (*Action, bool) {
	if !h.CanUndo() {
		return nil, false
	}
	return h.actions[h.cursor-1], true
}

// BeginGroup opens an undo group. Nested calls only deepen the counter;
// edits accumulate into one unit until the outermost group closes.
func (h *History) BeginGroup() {
	h.groupDepth++
	if h.groupDepth == 1 {
		h.group = &Action{}
	}
}

// EndGroup closes one level of grouping. Closing the outermost level
// records the accumulated unit; an empty group vanishes without a trace.
// Calling EndGroup with no group open is a no-op.
func (h *History) EndGroup() {
	if h.groupDepth == 0 {
		return
	}
	h.groupDepth--
	if h.groupDepth > 0 {
		return
	}
	g := h.group
	h.group = nil
	if g == nil || len(g.Children) == 0 {
		return
	}
	if len(g.Children) == 1 {
		// A single-edit group undoes identically to the bare edit.
		h.push(g.Children[0])
		return
	}
	// The group restores the selection captured before its first edit.
	g.PreAnchor = g.Children[0].PreAnchor
	g.PreCaret = g.Children[0].PreCaret
	h.push(g)
}

// GroupDepth returns the current nesting depth.
func (h *History) GroupDepth() int {
	return h.groupDepth
}

// SetSavedState marks the current cursor position as the saved state.
func (h *History) SetSavedState() {
	h.saved = h.cursor
}

// IsSavedState returns true if the cursor sits exactly at the saved marker.
// The comparison is by position identity, never by content. An open group
// with pending edits is already off the saved position even though the
// cursor has not moved yet.
func (h *History) IsSavedState() bool {
	if h.group != nil && len(h.group.Children) > 0 {
		return false
	}
	return h.saved == h.cursor
}

// Clear discards all history and counts the resulting state as saved.
func (h *History) Clear() {
	h.actions = nil
	h.cursor = 0
	h.saved = 0
	h.groupDepth = 0
	h.group = nil
}
