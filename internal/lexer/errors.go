package lexer

import (
	"fmt"

	"sable/internal/diag"
	"sable/internal/source"
)

// LexError describes the first malformed token of a file.
type LexError struct {
	Code diag.Code
	Span source.Span
	Line uint32
	Col  uint32
	Msg  string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Col, e.Msg)
}

// Diagnostic converts the error into a diag.Diagnostic.
func (e *LexError) Diagnostic() diag.Diagnostic {
	return diag.NewError(e.Code, e.Span, e.Msg)
}
