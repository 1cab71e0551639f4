package lexer

import (
	"sable/internal/diag"
	"sable/internal/token"
)

// Поддержка: 0, 123, 1.5, .5, 1., 1e-3, 0x1F, 0o17, 0b101 и legacy octal 017.
// Разделителей '_' в ES2015 нет. Сразу после числа не может идти
// начало идентификатора или цифра: "3in" и "1.toString" являются ошибками.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	if lx.cursor.Peek() == '0' {
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '0' {
			var valid func(byte) bool
			switch b1 {
			case 'x', 'X':
				valid = isHex
			case 'o', 'O':
				valid = isOct
			case 'b', 'B':
				valid = func(b byte) bool { return b == '0' || b == '1' }
			}
			if valid != nil {
				lx.cursor.Skip(2)
				n := 0
				for valid(lx.cursor.Peek()) {
					lx.cursor.Bump()
					n++
				}
				if n == 0 {
					return lx.badNumber(start, "missing digits after base prefix")
				}
				return lx.finishNumber(start)
			}
			if isDec(b1) {
				// legacy octal (или десятичное с ведущим нулём, как 089)
				for isDec(lx.cursor.Peek()) {
					lx.cursor.Bump()
				}
				return lx.finishNumber(start)
			}
		}
	}

	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	if lx.cursor.Eat('.') {
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		lx.cursor.Bump()
		if b := lx.cursor.Peek(); b == '+' || b == '-' {
			lx.cursor.Bump()
		}
		if !isDec(lx.cursor.Peek()) {
			return lx.badNumber(start, "expected digit after exponent")
		}
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}
	return lx.finishNumber(start)
}

func (lx *Lexer) finishNumber(start Mark) token.Token {
	if r, sz := lx.cursor.PeekRune(); sz > 0 && (isIdentStartRune(r) || r == '\\' || isDec(lx.cursor.Peek())) {
		lx.cursor.BumpRune()
		return lx.badNumber(start, "identifier starts immediately after numeric literal")
	}
	return lx.emit(token.NumberLit, start)
}

func (lx *Lexer) badNumber(start Mark, msg string) token.Token {
	tok := lx.emit(token.Invalid, start)
	lx.errLex(diag.LexBadNumber, tok.Span, msg)
	return tok
}

func isOct(b byte) bool { return b >= '0' && b <= '7' }
