package history

import (
	"errors"
	"testing"
)

func insertAction(pos int, text string) *Action {
	return &Action{Pos: pos, Inserted: text}
}

func TestNewHistoryIsSaved(t *testing.T) {
	h := New()
	if !h.IsSavedState() {
		t.Error("fresh history should be at saved state")
	}
	if h.CanUndo() || h.CanRedo() {
		t.Error("fresh history should have nothing to undo or redo")
	}
}

func TestAddUndoRedo(t *testing.T) {
	h := New()
	h.Add(insertAction(0, "a"))
	h.Add(insertAction(1, "b"))

	if h.UndoCount() != 2 {
		t.Fatalf("UndoCount() = %d, want 2", h.UndoCount())
	}
	a, err := h.Undo()
	if err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if a.Inserted != "b" {
		t.Errorf("undid %q, want %q", a.Inserted, "b")
	}
	if h.RedoCount() != 1 {
		t.Errorf("RedoCount() = %d, want 1", h.RedoCount())
	}
	a, err = h.Redo()
	if err != nil {
		t.Fatalf("Redo: %v", err)
	}
	if a.Inserted != "b" {
		t.Errorf("redid %q, want %q", a.Inserted, "b")
	}
}

func TestUndoEmpty(t *testing.T) {
	h := New()
	if _, err := h.Undo(); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("error = %v, want ErrNothingToUndo", err)
	}
	if _, err := h.Redo(); !errors.Is(err, ErrNothingToRedo) {
		t.Errorf("error = %v, want ErrNothingToRedo", err)
	}
}

func TestAddTruncatesRedoTail(t *testing.T) {
	h := New()
	h.Add(insertAction(0, "a"))
	h.Add(insertAction(1, "b"))
	if _, err := h.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	h.Add(insertAction(1, "c"))
	if h.CanRedo() {
		t.Error("redo tail should be discarded by a new action")
	}
	a, _ := h.PeekUndo()
	if a.Inserted != "c" {
		t.Errorf("top of stack = %q, want %q", a.Inserted, "c")
	}
}

func TestEmptyActionIgnored(t *testing.T) {
	h := New()
	h.Add(&Action{Pos: 3})
	h.Add(nil)
	if h.CanUndo() {
		t.Error("empty actions should not be recorded")
	}
}

func TestSavedStateIdentity(t *testing.T) {
	h := New()
	h.Add(insertAction(0, "a"))
	if h.IsSavedState() {
		t.Error("should be unsaved after an edit")
	}
	h.SetSavedState()
	if !h.IsSavedState() {
		t.Error("should be saved after SetSavedState")
	}
	if _, err := h.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if h.IsSavedState() {
		t.Error("undo moved off the saved position")
	}
	if _, err := h.Redo(); err != nil {
		t.Fatalf("Redo: %v", err)
	}
	if !h.IsSavedState() {
		t.Error("redo returned to the saved position")
	}
}

func TestSavedStateUnreachableAfterTruncation(t *testing.T) {
	h := New()
	h.Add(insertAction(0, "a"))
	h.Add(insertAction(1, "b"))
	h.SetSavedState()
	if _, err := h.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	// The saved position lived in the redo tail, which this discards.
	h.Add(insertAction(1, "c"))
	if h.IsSavedState() {
		t.Error("saved state should be unreachable")
	}
	for h.CanUndo() {
		if _, err := h.Undo(); err != nil {
			t.Fatalf("Undo: %v", err)
		}
		if h.IsSavedState() {
			t.Error("no position should compare as saved after truncation")
		}
	}
}

func TestOpenGroupWithEditsLeavesSavedState(t *testing.T) {
	h := New()
	h.BeginGroup()
	if !h.IsSavedState() {
		t.Error("an open group with no edits keeps the saved state")
	}
	h.Add(insertAction(0, "a"))
	if h.IsSavedState() {
		t.Error("a pending grouped edit moves off the saved state")
	}
	h.EndGroup()
	if h.IsSavedState() {
		t.Error("the recorded group keeps the state unsaved")
	}
}

func TestGroupCollapsesToOneStep(t *testing.T) {
	h := New()
	h.BeginGroup()
	h.Add(&Action{Pos: 0, Inserted: "a", PreAnchor: 7, PreCaret: 7})
	h.Add(&Action{Pos: 1, Inserted: "b", PreAnchor: 1, PreCaret: 1})
	h.EndGroup()

	if h.UndoCount() != 1 {
		t.Fatalf("UndoCount() = %d, want 1", h.UndoCount())
	}
	a, err := h.Undo()
	if err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if !a.IsGroup() || len(a.Children) != 2 {
		t.Fatalf("expected group of 2, got %s", a)
	}
	if a.PreAnchor != 7 || a.PreCaret != 7 {
		t.Errorf("group pre-selection = %d, %d, want 7, 7 (from first child)", a.PreAnchor, a.PreCaret)
	}
}

func TestNestedGroupsAreOneUnit(t *testing.T) {
	h := New()
	h.BeginGroup()
	h.Add(insertAction(0, "a"))
	h.BeginGroup()
	h.Add(insertAction(1, "b"))
	h.EndGroup()
	h.Add(insertAction(2, "c"))
	h.EndGroup()

	if h.UndoCount() != 1 {
		t.Fatalf("UndoCount() = %d, want 1", h.UndoCount())
	}
	a, _ := h.PeekUndo()
	if len(a.Children) != 3 {
		t.Errorf("children = %d, want 3", len(a.Children))
	}
}

func TestEmptyGroupVanishes(t *testing.T) {
	h := New()
	h.BeginGroup()
	h.EndGroup()
	if h.CanUndo() {
		t.Error("empty group should leave no trace")
	}
}

func TestSingleChildGroupFlattens(t *testing.T) {
	h := New()
	h.BeginGroup()
	h.Add(insertAction(0, "a"))
	h.EndGroup()
	a, _ := h.PeekUndo()
	if a.IsGroup() {
		t.Error("single-edit group should record the bare edit")
	}
}

func TestEndGroupWithoutBegin(t *testing.T) {
	h := New()
	h.EndGroup() // must not panic or underflow
	if h.GroupDepth() != 0 {
		t.Errorf("GroupDepth() = %d, want 0", h.GroupDepth())
	}
}

func TestGroupScopeIdempotent(t *testing.T) {
	h := New()
	scope := h.GroupScope()
	h.Add(insertAction(0, "a"))
	scope.End()
	scope.End()
	if h.GroupDepth() != 0 {
		t.Errorf("GroupDepth() = %d, want 0", h.GroupDepth())
	}
	if h.UndoCount() != 1 {
		t.Errorf("UndoCount() = %d, want 1", h.UndoCount())
	}
}

func TestClear(t *testing.T) {
	h := New()
	h.Add(insertAction(0, "a"))
	h.Clear()
	if h.CanUndo() || h.CanRedo() {
		t.Error("cleared history should be empty")
	}
	if !h.IsSavedState() {
		t.Error("cleared history should count as saved")
	}
}
