package history

// GroupScope closes an undo group on every exit path when paired with defer.
// Usage:
//
//	defer h.GroupScope().End()
//	// ... multiple edits ...
type GroupScope struct {
	history *History
	active  bool
}

// GroupScope opens a group and returns a scope that closes it.
func (h *History) GroupScope() *GroupScope {
	h.BeginGroup()
	return &GroupScope{history: h, active: true}
}

// End closes the scope's group level.
// Safe to call multiple times; only the first call has effect.
func (g *GroupScope) End() {
	if g.active {
		g.history.EndGroup()
		g.active = false
	}
}
