package document

import "github.com/quindle/textdoc/internal/document/textstore"

// ContentChangedEvent describes one completed replacement. Index is where
// the replacement happened; OldText and NewText are the removed and
// inserted text. Handlers observe the document already in its new state.
type ContentChangedEvent struct {
	Index   int
	OldText string
	NewText string
}

// SelectionChangedEvent carries the selection before the change; the
// document itself holds the new one. ByContentChanged is true when the
// selection moved as a side effect of an edit rather than an explicit set.
type SelectionChangedEvent struct {
	OldAnchor        int
	OldCaret         int
	OldRectRanges    []textstore.Range
	ByContentChanged bool
}

// DirtyStateChangedEvent fires when IsDirty flips.
type DirtyStateChangedEvent struct {
	Dirty bool
}

// HighlighterChangedEvent fires when the highlighter is replaced.
type HighlighterChangedEvent struct{}

// Subscription identifies a registered handler within one document.
type Subscription uint64

type observer[T any] struct {
	id Subscription
	fn func(T)
}

// observerList fans an event out to handlers synchronously, in
// registration order. Handlers may unsubscribe themselves during dispatch;
// the fire loop walks a snapshot.
type observerList[T any] struct {
	obs []observer[T]
}

func (l *observerList[T]) add(id Subscription, fn func(T)) {
	l.obs = append(l.obs, observer[T]{id: id, fn: fn})
}

func (l *observerList[T]) remove(id Subscription) bool {
	for i, o := range l.obs {
		if o.id == id {
			l.obs = append(l.obs[:i], l.obs[i+1:]...)
			return true
		}
	}
	return false
}

func (l *observerList[T]) fire(ev T) {
	snapshot := make([]observer[T], len(l.obs))
	copy(snapshot, l.obs)
	for _, o := range snapshot {
		o.fn(ev)
	}
}

// OnContentChanged registers a handler called after every replacement,
// including those replayed by undo and redo.
func (d *Document) OnContentChanged(fn func(ContentChangedEvent)) Subscription {
	id := d.nextSubscription()
	d.contentObs.add(id, fn)
	return id
}

// OnSelectionChanged registers a handler called after the selection moves.
func (d *Document) OnSelectionChanged(fn func(SelectionChangedEvent)) Subscription {
	id := d.nextSubscription()
	d.selectionObs.add(id, fn)
	return id
}

// OnDirtyStateChanged registers a handler called when IsDirty flips.
func (d *Document) OnDirtyStateChanged(fn func(DirtyStateChangedEvent)) Subscription {
	id := d.nextSubscription()
	d.dirtyObs.add(id, fn)
	return id
}

// OnHighlighterChanged registers a handler called when the highlighter is
// replaced.
func (d *Document) OnHighlighterChanged(fn func(HighlighterChangedEvent)) Subscription {
	id := d.nextSubscription()
	d.highlighterObs.add(id, fn)
	return id
}

// Unsubscribe removes a previously registered handler.
// Returns false if the subscription is unknown.
func (d *Document) Unsubscribe(s Subscription) bool {
	return d.contentObs.remove(s) ||
		d.selectionObs.remove(s) ||
		d.dirtyObs.remove(s) ||
		d.highlighterObs.remove(s)
}

func (d *Document) nextSubscription() Subscription {
	d.subSeq++
	return d.subSeq
}

func (d *Document) fireContentChanged(ev ContentChangedEvent) {
	d.contentObs.fire(ev)
}

func (d *Document) fireSelectionChanged(ev SelectionChangedEvent) {
	d.selectionObs.fire(ev)
}

// notifyDirtyIfChanged fires a dirty-state event when IsDirty no longer
// matches wasDirty. Suppressed while undo or redo replays edits, so that a
// whole replay reports at most one flip.
func (d *Document) notifyDirtyIfChanged(wasDirty bool) {
	if d.suppressDirty {
		return
	}
	if now := d.IsDirty(); now != wasDirty {
		d.dirtyObs.fire(DirtyStateChangedEvent{Dirty: now})
	}
}
