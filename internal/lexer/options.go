package lexer

import (
	"sable/internal/diag"
	"sable/internal/source"
)

type Options struct {
	// Reporter получает диагностики; может быть nil. Лексер продолжает
	// работу после ошибки, первая ошибка сохраняется (см. Lexer.Err).
	Reporter diag.Reporter
}

// errLex reports a lexical error and remembers the first one.
func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.err == nil {
		pos := lx.file.Position(sp.Start)
		lx.err = &LexError{Code: code, Span: sp, Line: pos.Line, Col: pos.Col, Msg: msg}
	}
	if lx.opts.Reporter != nil {
		diag.ReportError(lx.opts.Reporter, code, sp, msg).Emit()
	}
}
