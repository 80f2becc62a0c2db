package textstore

// CharClass is the syntactic classification of a single character.
// The store only records classes; assigning them is the job of an external
// classifier (see the classify package).
type CharClass uint8

const (
	ClassNormal CharClass = iota
	ClassKeyword
	ClassNumber
	ClassOperator
	ClassComment
	ClassDocComment
	ClassString
	ClassCharLiteral
	ClassCDATA
)

// String returns the name of the class.
func (c CharClass) String() string {
	switch c {
	case ClassNormal:
		return "normal"
	case ClassKeyword:
		return "keyword"
	case ClassNumber:
		return "number"
	case ClassOperator:
		return "operator"
	case ClassComment:
		return "comment"
	case ClassDocComment:
		return "doc-comment"
	case ClassString:
		return "string"
	case ClassCharLiteral:
		return "char-literal"
	case ClassCDATA:
		return "cdata"
	default:
		return "unknown"
	}
}

// IsGrammar returns false for content that is not part of the language
// grammar: comments, string and character literals, and CDATA sections.
// Bracket matching skips characters whose class is not grammar.
func (c CharClass) IsGrammar() bool {
	switch c {
	case ClassComment, ClassDocComment, ClassString, ClassCharLiteral, ClassCDATA:
		return false
	default:
		return true
	}
}
