package lexer

import (
	"strconv"

	"sable/internal/diag"
	"sable/internal/token"
)

const utf8RuneSelf = 0x80

// scanIdentOrKeyword сканирует IdentifierName и проверяет через LookupKeyword.
// Поддерживаются \uXXXX и \u{...} эскейпы; слово с эскейпами никогда не
// считается ключевым. Token.Text: ровно исходный срез.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	escaped := false

	first := true
	for !lx.cursor.EOF() {
		if lx.cursor.Peek() == '\\' {
			r, ok := lx.scanIdentEscape()
			if !ok || (first && !isIdentStartRune(r)) || (!first && !isIdentContinueRune(r)) {
				tok := lx.emit(token.Invalid, start)
				lx.errLex(diag.LexBadEscape, tok.Span, "invalid escape sequence in identifier")
				return tok
			}
			escaped = true
			first = false
			continue
		}
		b := lx.cursor.Peek()
		if b < utf8RuneSelf {
			if (first && !isIdentStartByte(b)) || (!first && !isIdentContinueByte(b)) {
				break
			}
			lx.cursor.Bump()
			first = false
			continue
		}
		r, _ := lx.cursor.PeekRune()
		if (first && !isIdentStartRune(r)) || (!first && !isIdentContinueRune(r)) {
			break
		}
		lx.cursor.BumpRune()
		first = false
	}

	if first {
		// не идентификатор: пусть разбирается как оператор/ошибка
		return lx.scanOperatorOrPunct()
	}

	tok := lx.emit(token.Ident, start)
	if !escaped {
		if k, ok := token.LookupKeyword(tok.Text); ok {
			tok.Kind = k
		}
	}
	return tok
}

// scanIdentEscape разбирает \uXXXX или \u{X...} и возвращает руну.
func (lx *Lexer) scanIdentEscape() (rune, bool) {
	if !lx.cursor.HasPrefix(`\u`) {
		return 0, false
	}
	lx.cursor.Skip(2)
	return lx.scanUnicodeEscapeBody()
}

// scanUnicodeEscapeBody разбирает часть после "\u".
func (lx *Lexer) scanUnicodeEscapeBody() (rune, bool) {
	digits := lx.cursor.Off
	if lx.cursor.Eat('{') {
		digits = lx.cursor.Off
		for isHex(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		hex := string(lx.file.Content[digits:lx.cursor.Off])
		if hex == "" || !lx.cursor.Eat('}') {
			return 0, false
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil || v > 0x10FFFF {
			return 0, false
		}
		return rune(v), true
	}
	for range 4 {
		if !isHex(lx.cursor.Peek()) {
			return 0, false
		}
		lx.cursor.Bump()
	}
	v, _ := strconv.ParseUint(string(lx.file.Content[digits:lx.cursor.Off]), 16, 32)
	return rune(v), true
}
