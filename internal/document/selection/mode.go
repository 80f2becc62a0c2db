package selection

// Mode governs how an anchor/caret pair is interpreted.
type Mode uint8

const (
	// ModeNormal selects the linear range between anchor and caret.
	ModeNormal Mode = iota

	// ModeLine expands the selection to cover every full line touched by
	// the anchor/caret pair.
	ModeLine

	// ModeRectangle selects the 2-D box spanned by anchor and caret,
	// yielding one sub-range per covered row.
	ModeRectangle
)

// String returns the name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeLine:
		return "line"
	case ModeRectangle:
		return "rectangle"
	default:
		return "unknown"
	}
}

// LayoutProvider maps char indices to 2-D positions and back.
// It is required for line and rectangle selection modes. Implementations
// must clamp out-of-document positions to valid indices; PositionToIndex(0,
// y) for a row past the last line returns the document end.
type LayoutProvider interface {
	// IndexToPosition converts a char index to an (x, y) position.
	IndexToPosition(index int) (x, y int)

	// PositionToIndex converts an (x, y) position to the nearest char index.
	PositionToIndex(x, y int) int
}
