package lexer

import (
	"sable/internal/diag"
	"sable/internal/token"
)

// scanString разбирает '...' и "...".
// Эскейпы: \x требует 2 hex-цифры, \u 4 или {...}; '\' перед терминатором
// строки означает продолжение строки. Неэкранированный терминатор является ошибкой.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	quote := lx.cursor.Bump()
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == quote {
			lx.cursor.Bump()
			return lx.emit(token.StringLit, start)
		}
		if b == '\\' {
			if !lx.scanEscape() {
				tok := lx.emit(token.Invalid, start)
				lx.errLex(diag.LexBadEscape, tok.Span, "malformed escape sequence in string literal")
				return tok
			}
			continue
		}
		if lx.cursor.Terminator() > 0 {
			tok := lx.emit(token.Invalid, start)
			lx.errLex(diag.LexUnterminatedString, tok.Span, "unterminated string literal")
			return tok
		}
		lx.cursor.Bump()
	}
	tok := lx.emit(token.Invalid, start)
	lx.errLex(diag.LexUnterminatedString, tok.Span, "unterminated string literal")
	return tok
}

// scanEscape съедает '\' и следующую за ним escape-последовательность.
func (lx *Lexer) scanEscape() bool {
	lx.cursor.Bump() // '\'
	if lx.cursor.EOF() {
		return false
	}
	if n := lx.cursor.Terminator(); n > 0 {
		lx.cursor.Skip(n)
		return true
	}
	switch lx.cursor.Peek() {
	case 'x':
		lx.cursor.Bump()
		for range 2 {
			if !isHex(lx.cursor.Peek()) {
				return false
			}
			lx.cursor.Bump()
		}
		return true
	case 'u':
		lx.cursor.Bump()
		_, ok := lx.scanUnicodeEscapeBody()
		return ok
	}
	lx.cursor.BumpRune()
	return true
}

// scanTemplate разбирает часть шаблона. head=true: от '`', иначе от '}',
// закрывающей подстановку. Результат: NoSubstTemplate/TemplateHead при head,
// TemplateMiddle/TemplateTail иначе. Эскейпы в шаблонах не валидируются
// (tagged templates допускают любые).
func (lx *Lexer) scanTemplate(head bool) token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '`' или '}'
	for !lx.cursor.EOF() {
		switch {
		case lx.cursor.Peek() == '`':
			lx.cursor.Bump()
			if head {
				return lx.emit(token.NoSubstTemplate, start)
			}
			return lx.emit(token.TemplateTail, start)
		case lx.cursor.HasPrefix("${"):
			lx.cursor.Skip(2)
			if head {
				return lx.emit(token.TemplateHead, start)
			}
			return lx.emit(token.TemplateMiddle, start)
		case lx.cursor.Peek() == '\\':
			lx.cursor.Bump()
			if n := lx.cursor.Terminator(); n > 0 {
				lx.cursor.Skip(n)
			} else {
				lx.cursor.BumpRune()
			}
		default:
			lx.cursor.BumpRune()
		}
	}
	tok := lx.emit(token.Invalid, start)
	lx.errLex(diag.LexUnterminatedTemplate, tok.Span, "unterminated template literal")
	return tok
}
