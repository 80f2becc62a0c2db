package document

import (
	"errors"

	"github.com/quindle/textdoc/internal/document/history"
	"github.com/quindle/textdoc/internal/document/selection"
	"github.com/quindle/textdoc/internal/document/textstore"
)

// Errors returned by document operations. Range and selection errors are
// the underlying packages' sentinels so callers can match with errors.Is
// at either level.
var (
	// ErrIndexOutOfRange indicates an index argument outside [0, Length()].
	ErrIndexOutOfRange = textstore.ErrIndexOutOfRange

	// ErrInvalidRange indicates a range with end < begin.
	ErrInvalidRange = textstore.ErrRangeInvalid

	// ErrMarkingNotRegistered indicates a marking ID that was never registered.
	ErrMarkingNotRegistered = errors.New("marking id not registered")

	// ErrUnsupportedEol indicates an EOL code other than LF, CR or CR+LF.
	ErrUnsupportedEol = errors.New("unsupported eol code")

	// ErrGroupOpen indicates a saved-state change while an undo group is open.
	ErrGroupOpen = errors.New("undo group is open")

	// ErrNoLayoutProvider indicates a line or rectangle selection without a
	// layout provider.
	ErrNoLayoutProvider = selection.ErrNoLayoutProvider

	// ErrNothingToUndo indicates the undo stack is empty.
	ErrNothingToUndo = history.ErrNothingToUndo

	// ErrNothingToRedo indicates the redo stack is empty.
	ErrNothingToRedo = history.ErrNothingToRedo

	// ErrEmptyPattern indicates a search with an empty or nil pattern.
	ErrEmptyPattern = errors.New("empty search pattern")
)
