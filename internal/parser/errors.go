package parser

import (
	"fmt"

	"sable/internal/diag"
	"sable/internal/source"
)

// SyntaxError describes the token at which no grammar production matched.
type SyntaxError struct {
	Code     diag.Code
	Span     source.Span
	Line     uint32
	Col      uint32
	Msg      string
	Found    string // текст найденного токена ("" для EOF)
	Expected string // что ожидалось, если известно
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Col, e.Msg)
}

// Diagnostic converts the error into a diag.Diagnostic.
func (e *SyntaxError) Diagnostic() diag.Diagnostic {
	return diag.NewError(e.Code, e.Span, e.Msg)
}
