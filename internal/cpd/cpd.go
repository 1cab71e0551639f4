// Package cpd produces the normalized token stream used for copy-paste
// detection. Literal values are replaced by placeholders so that fragments
// differing only in constants compare equal.
package cpd

import (
	"fmt"

	"sable/internal/lexer"
	"sable/internal/source"
	"sable/internal/token"
)

// Placeholders for normalized literal tokens.
const (
	Literal = "LITERAL"
	Number  = "NUMBER"
	RegExp  = "REGEXP"
)

// Token is one element of the normalized stream. Positions are 1-based;
// EndLine/EndCol address the last byte of the token.
type Token struct {
	Value   string
	Line    uint32
	Col     uint32
	EndLine uint32
	EndCol  uint32
}

func (t Token) String() string {
	return fmt.Sprintf("%d:%d %s", t.Line, t.Col, t.Value)
}

// Tokenize lexes file and normalizes the result. Comments are dropped and EOF
// is not part of the stream. On a lexical error the tokens before it are
// returned together with the error.
func Tokenize(file *source.File) ([]Token, error) {
	toks, err := lexer.Tokenize(file)
	out := make([]Token, 0, len(toks))
	for _, tok := range toks {
		if tok.Kind == token.EOF {
			break
		}
		out = append(out, normalize(file, tok))
	}
	if err != nil {
		return out, fmt.Errorf("cpd: %w", err)
	}
	return out, nil
}

func normalize(file *source.File, tok token.Token) Token {
	value := tok.Text
	switch {
	case tok.Kind == token.StringLit || tok.Kind.IsTemplate():
		value = Literal
	case tok.Kind == token.NumberLit:
		value = Number
	case tok.Kind == token.RegExpLit:
		value = RegExp
	}
	end := file.LastPosition(tok.Span.Start, tok.Span.End)
	return Token{Value: value, Line: tok.Line, Col: tok.Col, EndLine: end.Line, EndCol: end.Col}
}
