package document

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/quindle/textdoc/internal/document/history"
	"github.com/quindle/textdoc/internal/document/lineview"
	"github.com/quindle/textdoc/internal/document/selection"
	"github.com/quindle/textdoc/internal/document/textstore"
)

// eolLF is the default EOL code.
const eolLF = "\n"

// Document is the facade over the character store, the selection manager and
// the edit history. Every mutation funnels through Replace, which keeps the
// three in lockstep and notifies observers synchronously once the new state
// is fully consistent.
//
// A Document is not safe for concurrent use.
type Document struct {
	id    uint64
	store *textstore.Store
	sel   *selection.Manager
	hist  *history.History
	log   zerolog.Logger

	eol      string
	markings map[int]string

	highlighter Highlighter

	// recordHistory is cleared while undo/redo replays edits so the replay
	// does not record itself; suppressDirty holds back per-edit dirty events
	// so a replay reports at most one flip.
	recordHistory bool
	suppressDirty bool

	ids            IDSource
	initialContent string

	subSeq         Subscription
	contentObs     observerList[ContentChangedEvent]
	selectionObs   observerList[SelectionChangedEvent]
	dirtyObs       observerList[DirtyStateChangedEvent]
	highlighterObs observerList[HighlighterChangedEvent]
}

// New creates a document.
func New(opts ...Option) *Document {
	d := &Document{
		log:           zerolog.Nop(),
		eol:           eolLF,
		markings:      map[int]string{0: "uri"},
		recordHistory: true,
		ids:           &defaultIDSource,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.id = d.ids.NextID()
	d.store = textstore.NewFromString(d.initialContent)
	d.initialContent = ""
	d.sel = selection.NewManager(d.store)
	d.hist = history.New()
	return d
}

// ID returns the document's identity token.
func (d *Document) ID() uint64 {
	return d.id
}

// Length returns the document length in UTF-16 code units.
func (d *Document) Length() int {
	return d.store.Len()
}

// Text returns the full document content.
func (d *Document) Text() string {
	return d.store.String()
}

// GetText returns the text in [begin, end).
func (d *Document) GetText(begin, end int) (string, error) {
	return d.store.Text(begin, end)
}

// CharAt returns the code unit at the given index.
func (d *Document) CharAt(index int) (uint16, error) {
	return d.store.CharAt(index)
}

// LineCount returns the number of logical lines.
func (d *Document) LineCount() int {
	return d.store.LineCount()
}

// LineIndexOf returns the index of the line containing the char offset.
func (d *Document) LineIndexOf(charIndex int) (int, error) {
	return d.store.LineIndexOf(charIndex)
}

// LineHead returns the char offset where the given line begins.
func (d *Document) LineHead(line int) (int, error) {
	return d.store.LineHead(line)
}

// LineLength returns the line's length excluding its EOL sequence.
func (d *Document) LineLength(line int) (int, error) {
	return d.store.LineLength(line)
}

// CharIndexOf converts a line/column pair to a char offset.
func (d *Document) CharIndexOf(line, column int) (int, error) {
	return d.store.CharIndexOf(line, column)
}

// Lines returns the line view excluding EOL sequences.
func (d *Document) Lines() lineview.Trimmed {
	return lineview.NewTrimmed(d.store)
}

// RawLines returns the line view including EOL sequences.
func (d *Document) RawLines() lineview.Raw {
	return lineview.NewRaw(d.store)
}

// LineDirtyState returns the dirty state of a line.
func (d *Document) LineDirtyState(line int) (textstore.DirtyState, error) {
	return d.store.LineDirtyState(line)
}

// LineDirtyStates returns the dirty states of lines [begin, end), for
// gutter rendering.
func (d *Document) LineDirtyStates(begin, end int) ([]textstore.DirtyState, error) {
	return d.store.DirtyStates(begin, end)
}

// EolCode returns the EOL code used by line-oriented helpers.
func (d *Document) EolCode() string {
	return d.eol
}

// SetEolCode changes the EOL code. Only LF, CR and CR+LF are accepted.
func (d *Document) SetEolCode(code string) error {
	if !isValidEol(code) {
		return ErrUnsupportedEol
	}
	d.eol = code
	return nil
}

func isValidEol(code string) bool {
	switch code {
	case "\n", "\r", "\r\n":
		return true
	}
	return false
}

// Replace substitutes the text in [begin, end) with the given text. This is
// the single mutation primitive: insertion is Replace over an empty range,
// deletion is Replace with empty text.
//
// After the edit the selection is renormalized, the action is recorded for
// undo, and observers are notified in order: content, dirty state (only on
// an IsDirty flip), selection (only if it actually moved).
func (d *Document) Replace(text string, begin, end int) error {
	if err := d.store.ValidateRange(begin, end); err != nil {
		return err
	}
	if begin == end && text == "" {
		return nil
	}

	oldText, err := d.store.Text(begin, end)
	if err != nil {
		return err
	}

	// Snapshots must be taken before the cells change. The dirty snapshot
	// overcaptures one line on each side: an edit at a line boundary can
	// merge into a neighbor when a CR+LF pair forms or splits.
	firstLine, _ := d.store.LineIndexOf(begin)
	lastLine, _ := d.store.LineIndexOf(end)
	snapFirst := firstLine
	if snapFirst > 0 {
		snapFirst--
	}
	snapEnd := lastLine + 1
	if snapEnd < d.store.LineCount() {
		snapEnd++
	}
	dirtyBefore, _ := d.store.DirtyStates(snapFirst, snapEnd)

	preAnchor, preCaret := d.sel.Anchor(), d.sel.Caret()
	oldRects := d.sel.RectRanges()
	wasDirty := d.IsDirty()

	if end > begin {
		if err := d.store.Remove(begin, end); err != nil {
			return err
		}
	}
	if text != "" {
		if err := d.store.Insert(begin, text); err != nil {
			return fmt.Errorf("insert after remove: %w", err)
		}
	}

	insLen := textstore.UTF16Len(text)
	d.sel.OnContentReplaced(begin, end, insLen)

	if d.recordHistory {
		d.hist.Add(&history.Action{
			Pos:         begin,
			Removed:     oldText,
			Inserted:    text,
			PreAnchor:   preAnchor,
			PreCaret:    preCaret,
			FirstLine:   snapFirst,
			DirtyBefore: dirtyBefore,
		})
	}

	d.log.Debug().
		Int("begin", begin).
		Int("end", end).
		Int("inserted", insLen).
		Msg("replace")

	d.fireContentChanged(ContentChangedEvent{Index: begin, OldText: oldText, NewText: text})
	d.notifyDirtyIfChanged(wasDirty)
	if d.sel.Anchor() != preAnchor || d.sel.Caret() != preCaret ||
		!rangesEqual(oldRects, d.sel.RectRanges()) {
		d.fireSelectionChanged(SelectionChangedEvent{
			OldAnchor:        preAnchor,
			OldCaret:         preCaret,
			OldRectRanges:    oldRects,
			ByContentChanged: true,
		})
	}
	return nil
}

// SetText replaces the whole content and resets history and dirty states, as
// if the content had been loaded from disk.
func (d *Document) SetText(text string) error {
	wasDirty := d.IsDirty()
	d.suppressDirty = true
	err := d.Replace(text, 0, d.store.Len())
	d.suppressDirty = false
	if err != nil {
		return err
	}
	d.hist.Clear()
	d.store.MarkAllClean()
	d.notifyDirtyIfChanged(wasDirty)
	return nil
}

// Clear empties the document and resets history and dirty states.
func (d *Document) Clear() error {
	return d.SetText("")
}

// IsDirty reports whether the document differs from its saved state.
// The comparison is by history position, never by content.
func (d *Document) IsDirty() bool {
	return !d.hist.IsSavedState()
}

// SetSavedState marks the current state as saved. Dirty lines transition to
// the saved state. Fails while an undo group is open.
func (d *Document) SetSavedState() error {
	if d.hist.GroupDepth() > 0 {
		return ErrGroupOpen
	}
	wasDirty := d.IsDirty()
	d.hist.SetSavedState()
	d.store.MarkAllSaved()
	d.notifyDirtyIfChanged(wasDirty)
	return nil
}

// CanUndo reports whether at least one action can be undone.
func (d *Document) CanUndo() bool {
	return d.hist.CanUndo()
}

// CanRedo reports whether at least one action can be redone.
func (d *Document) CanRedo() bool {
	return d.hist.CanRedo()
}

// Undo reverses the most recent action (or group, as one step), restores the
// affected lines' dirty states and the pre-edit selection.
func (d *Document) Undo() error {
	wasDirty := d.IsDirty()
	a, err := d.hist.Undo()
	if err != nil {
		return err
	}
	d.recordHistory = false
	d.suppressDirty = true
	err = d.applyUndo(a)
	d.recordHistory = true
	d.suppressDirty = false
	if err != nil {
		d.log.Error().Err(err).Msg("undo replay failed")
		return err
	}
	d.setSelectionClamped(a.PreAnchor, a.PreCaret)
	d.log.Debug().Stringer("action", a).Msg("undo")
	d.notifyDirtyIfChanged(wasDirty)
	return nil
}

// Redo re-applies the most recently undone action (or group, as one step)
// and places the caret after the re-inserted text.
func (d *Document) Redo() error {
	wasDirty := d.IsDirty()
	a, err := d.hist.Redo()
	if err != nil {
		return err
	}
	d.recordHistory = false
	d.suppressDirty = true
	err = d.applyRedo(a)
	d.recordHistory = true
	d.suppressDirty = false
	if err != nil {
		d.log.Error().Err(err).Msg("redo replay failed")
		return err
	}
	last := a
	if a.IsGroup() {
		last = a.Children[len(a.Children)-1]
	}
	caret := last.Pos + textstore.UTF16Len(last.Inserted)
	d.setSelectionClamped(caret, caret)
	d.log.Debug().Stringer("action", a).Msg("redo")
	d.notifyDirtyIfChanged(wasDirty)
	return nil
}

// applyUndo reverses an action. Groups reverse their children back to front;
// each edit's inverse runs through Replace, then the dirty snapshot of the
// affected lines is restored.
func (d *Document) applyUndo(a *history.Action) error {
	if a.IsGroup() {
		for i := len(a.Children) - 1; i >= 0; i-- {
			if err := d.applyUndo(a.Children[i]); err != nil {
				return err
			}
		}
		return nil
	}
	insLen := textstore.UTF16Len(a.Inserted)
	if err := d.Replace(a.Removed, a.Pos, a.Pos+insLen); err != nil {
		return err
	}
	return d.store.SetDirtyStates(a.FirstLine, a.DirtyBefore)
}

// applyRedo re-applies an action. Groups replay their children in execution
// order.
func (d *Document) applyRedo(a *history.Action) error {
	if a.IsGroup() {
		for _, c := range a.Children {
			if err := d.applyRedo(c); err != nil {
				return err
			}
		}
		return nil
	}
	removedLen := textstore.UTF16Len(a.Removed)
	return d.Replace(a.Inserted, a.Pos, a.Pos+removedLen)
}

// BeginUndo opens an undo group: edits until the matching EndUndo undo and
// redo as a single step. Calls nest.
func (d *Document) BeginUndo() {
	d.hist.BeginGroup()
}

// EndUndo closes one level of undo grouping.
func (d *Document) EndUndo() {
	wasDirty := d.IsDirty()
	d.hist.EndGroup()
	d.notifyDirtyIfChanged(wasDirty)
}

// UndoScope opens an undo group and returns a scope that closes it; pair
// with defer to close on every exit path.
func (d *Document) UndoScope() *history.GroupScope {
	return d.hist.GroupScope()
}

// ClearHistory discards all undo/redo history. The current state becomes
// the saved state.
func (d *Document) ClearHistory() {
	wasDirty := d.IsDirty()
	d.hist.Clear()
	d.notifyDirtyIfChanged(wasDirty)
}

// SelectionMode returns the active selection mode.
func (d *Document) SelectionMode() selection.Mode {
	return d.sel.Mode()
}

// SetSelectionMode switches the selection mode.
func (d *Document) SetSelectionMode(mode selection.Mode) {
	d.sel.SetMode(mode)
}

// AnchorIndex returns the selection anchor.
func (d *Document) AnchorIndex() int {
	return d.sel.Anchor()
}

// CaretIndex returns the caret position.
func (d *Document) CaretIndex() int {
	return d.sel.Caret()
}

// GetSelection returns the selected range normalized so begin <= end.
func (d *Document) GetSelection() (begin, end int) {
	r := d.sel.Selection()
	return r.Start, r.End
}

// SetSelection places the selection in normal mode semantics. Line and
// rectangle modes need SetSelectionWith and a layout provider.
func (d *Document) SetSelection(anchor, caret int) error {
	return d.SetSelectionWith(anchor, caret, nil)
}

// SetSelectionWith places the selection, consulting the layout provider in
// line and rectangle modes.
func (d *Document) SetSelectionWith(anchor, caret int, lp selection.LayoutProvider) error {
	oldAnchor, oldCaret := d.sel.Anchor(), d.sel.Caret()
	oldRects := d.sel.RectRanges()
	if err := d.sel.Set(anchor, caret, lp); err != nil {
		return err
	}
	if d.sel.Anchor() != oldAnchor || d.sel.Caret() != oldCaret ||
		!rangesEqual(oldRects, d.sel.RectRanges()) {
		d.fireSelectionChanged(SelectionChangedEvent{
			OldAnchor:     oldAnchor,
			OldCaret:      oldCaret,
			OldRectRanges: oldRects,
		})
	}
	return nil
}

// RectSelectRanges returns the per-row sub-ranges of a rectangle selection.
func (d *Document) RectSelectRanges() []textstore.Range {
	return d.sel.RectRanges()
}

// SetRectSelectRanges replaces the rectangle sub-ranges directly.
func (d *Document) SetRectSelectRanges(ranges []textstore.Range) error {
	oldAnchor, oldCaret := d.sel.Anchor(), d.sel.Caret()
	oldRects := d.sel.RectRanges()
	if err := d.sel.SetRectRanges(ranges); err != nil {
		return err
	}
	d.fireSelectionChanged(SelectionChangedEvent{
		OldAnchor:     oldAnchor,
		OldCaret:      oldCaret,
		OldRectRanges: oldRects,
	})
	return nil
}

// setSelectionClamped places anchor and caret, clamped into [0, Length()],
// in normal-mode semantics. Used after undo/redo, where the recorded
// positions are always valid but clamping costs nothing.
func (d *Document) setSelectionClamped(anchor, caret int) {
	n := d.store.Len()
	anchor = clamp(anchor, 0, n)
	caret = clamp(caret, 0, n)
	oldAnchor, oldCaret := d.sel.Anchor(), d.sel.Caret()
	oldRects := d.sel.RectRanges()
	mode := d.sel.Mode()
	d.sel.SetMode(selection.ModeNormal)
	_ = d.sel.Set(anchor, caret, nil)
	d.sel.SetMode(mode)
	if d.sel.Anchor() != oldAnchor || d.sel.Caret() != oldCaret ||
		!rangesEqual(oldRects, d.sel.RectRanges()) {
		d.fireSelectionChanged(SelectionChangedEvent{
			OldAnchor:        oldAnchor,
			OldCaret:         oldCaret,
			OldRectRanges:    oldRects,
			ByContentChanged: true,
		})
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func rangesEqual(a, b []textstore.Range) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
