// Package classify assigns character classes to document text by running a
// Chroma lexer over it. The classes drive bracket matching (brackets inside
// strings and comments never match) and any presentation layered on top.
package classify

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/quindle/textdoc/internal/document"
	"github.com/quindle/textdoc/internal/document/textstore"
)

// ChromaTagger tags a document with character classes derived from Chroma
// token types. It implements document.Highlighter.
type ChromaTagger struct {
	lexer chroma.Lexer
}

// NewChromaTagger creates a tagger for the given Chroma language name
// ("go", "python", ...). Unknown languages fall back to the plaintext
// lexer, which tags everything as normal.
func NewChromaTagger(language string) *ChromaTagger {
	lex := lexers.Get(language)
	if lex == nil {
		lex = lexers.Fallback
	}
	return &ChromaTagger{lexer: chroma.Coalesce(lex)}
}

// NewChromaTaggerForFile creates a tagger by file name match.
func NewChromaTaggerForFile(filename string) *ChromaTagger {
	lex := lexers.Match(filename)
	if lex == nil {
		lex = lexers.Fallback
	}
	return &ChromaTagger{lexer: chroma.Coalesce(lex)}
}

// Highlight retags the document. Lexer state (an unclosed block comment or
// string) can reach arbitrarily far from an edit, so the whole text is
// tokenized regardless of the invalidated range; begin and end are accepted
// to satisfy the Highlighter contract.
func (t *ChromaTagger) Highlight(d *document.Document, begin, end int) error {
	text := d.Text()
	it, err := t.lexer.Tokenise(nil, text)
	if err != nil {
		return err
	}
	off := 0
	for tok := it(); tok != chroma.EOF; tok = it() {
		n := textstore.UTF16Len(tok.Value)
		if n == 0 {
			continue
		}
		if err := d.SetCharClass(off, off+n, classFor(tok.Type)); err != nil {
			return err
		}
		off += n
	}
	return nil
}

// classFor maps a Chroma token type to a character class.
func classFor(tt chroma.TokenType) textstore.CharClass {
	switch {
	case tt == chroma.CommentSpecial:
		return textstore.ClassDocComment
	case tt.InCategory(chroma.Comment):
		return textstore.ClassComment
	case tt == chroma.LiteralStringChar:
		return textstore.ClassCharLiteral
	case tt.InCategory(chroma.LiteralString):
		return textstore.ClassString
	case tt.InCategory(chroma.LiteralNumber):
		return textstore.ClassNumber
	case tt.InCategory(chroma.Keyword):
		return textstore.ClassKeyword
	case tt.InCategory(chroma.Operator):
		return textstore.ClassOperator
	default:
		return textstore.ClassNormal
	}
}
