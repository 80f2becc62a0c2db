package document

import (
	"github.com/rs/zerolog"

	"github.com/quindle/textdoc/internal/document/textstore"
)

// Option configures a Document at construction time.
type Option func(*Document)

// WithContent sets the initial text. The document starts clean with an
// empty history.
func WithContent(content string) Option {
	return func(d *Document) {
		d.initialContent = content
	}
}

// WithLogger sets the logger. Defaults to a disabled logger.
func WithLogger(log zerolog.Logger) Option {
	return func(d *Document) {
		d.log = log
	}
}

// WithEolCode sets the EOL code used by line-oriented helpers.
// Invalid codes are ignored and the default (LF) kept.
func WithEolCode(code string) Option {
	return func(d *Document) {
		if isValidEol(code) {
			d.eol = code
		}
	}
}

// WithMarking registers a marking ID at construction. Out-of-range IDs are
// ignored.
func WithMarking(id int, name string) Option {
	return func(d *Document) {
		if id >= 0 && id < textstore.MaxMarkingIDs {
			d.markings[id] = name
		}
	}
}

// WithIDSource sets the source of document identity tokens.
func WithIDSource(src IDSource) Option {
	return func(d *Document) {
		if src != nil {
			d.ids = src
		}
	}
}
