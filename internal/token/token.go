package token

import (
	"sable/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Line    uint32 // 1-based
	Col     uint32 // 1-based, in bytes
	Leading []Trivia
	// NewlineBefore is set when a line terminator occurs between the previous
	// token and this one (inside whitespace or a comment).
	NewlineBefore bool
}

// IsLiteral reports whether the token is a numeric, string, regex or template literal,
// or one of null/true/false.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case NumberLit, StringLit, RegExpLit, KwNull, KwTrue, KwFalse:
		return true
	default:
		return t.Kind.IsTemplate()
	}
}

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool { return t.Kind.IsPunct() }

// IsKeyword reports whether the token is a reserved word.
func (t Token) IsKeyword() bool { return t.Kind.IsKeyword() }

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsIdentName reports whether the token may appear as an IdentifierName,
// i.e. a property key or member name where reserved words are allowed.
func (t Token) IsIdentName() bool { return t.Kind == Ident || t.Kind.IsKeyword() }

// Is reports whether the token is an identifier spelled word.
// Used for contextual keywords such as "of", "get" or "from".
func (t Token) Is(word string) bool { return t.Kind == Ident && t.Text == word }
