package history

import (
	"fmt"

	"github.com/quindle/textdoc/internal/document/textstore"
)

// Action is one undoable replacement: the text that was removed and
// inserted at Pos, together with the pre-edit selection and the pre-edit
// dirty states of the affected lines.
//
// A grouped action carries its constituent edits in Children (in execution
// order) and no edit data of its own.
type Action struct {
	Pos      int
	Removed  string
	Inserted string

	// Selection before the edit, restored on undo.
	PreAnchor int
	PreCaret  int

	// Dirty states of the affected lines before the edit, starting at
	// FirstLine, restored on undo.
	FirstLine   int
	DirtyBefore []textstore.DirtyState

	Children []*Action
}

// IsGroup returns true if the action bundles multiple edits.
func (a *Action) IsGroup() bool {
	return len(a.Children) > 0
}

// IsEmpty returns true if the action changes nothing.
func (a *Action) IsEmpty() bool {
	return len(a.Children) == 0 && a.Removed == "" && a.Inserted == ""
}

// String returns a human-readable description of the action.
func (a *Action) String() string {
	if a.IsGroup() {
		return fmt.Sprintf("Group(%d edits)", len(a.Children))
	}
	if a.Removed == "" {
		return fmt.Sprintf("Insert(%d, %q)", a.Pos, a.Inserted)
	}
	if a.Inserted == "" {
		return fmt.Sprintf("Delete(%d, %q)", a.Pos, a.Removed)
	}
	return fmt.Sprintf("Replace(%d, %q -> %q)", a.Pos, a.Removed, a.Inserted)
}
