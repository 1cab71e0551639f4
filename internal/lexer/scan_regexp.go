package lexer

import (
	"sable/internal/diag"
	"sable/internal/token"
)

// scanRegExp разбирает /body/flags. Внутри класса [...] '/' не закрывает
// литерал. Терминатор строки или EOF до закрывающего '/': ошибка.
func (lx *Lexer) scanRegExp() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '/'
	inClass := false
	for {
		if lx.cursor.EOF() || lx.cursor.Terminator() > 0 {
			tok := lx.emit(token.Invalid, start)
			lx.errLex(diag.LexUnterminatedRegExp, tok.Span, "unterminated regular expression literal")
			return tok
		}
		b := lx.cursor.Peek()
		switch {
		case b == '\\':
			lx.cursor.Bump()
			if lx.cursor.EOF() || lx.cursor.Terminator() > 0 {
				continue
			}
			lx.cursor.BumpRune()
			continue
		case b == '[':
			inClass = true
		case b == ']':
			inClass = false
		case b == '/' && !inClass:
			lx.cursor.Bump()
			for {
				r, sz := lx.cursor.PeekRune()
				if sz == 0 || !isIdentContinueRune(r) {
					break
				}
				lx.cursor.BumpRune()
			}
			return lx.emit(token.RegExpLit, start)
		}
		lx.cursor.BumpRune()
	}
}
