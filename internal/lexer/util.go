package lexer

import (
	"unicode"
	"unicode/utf8"
)

// isSpaceAt: TAB, VT, FF, SP, NBSP, ZWNBSP и категория Zs.
func (lx *Lexer) isSpaceAt() bool {
	switch lx.cursor.Peek() {
	case ' ', '\t', '\v', '\f':
		return true
	}
	r, sz := lx.cursor.PeekRune()
	if sz <= 1 {
		return false
	}
	return r == 0xA0 || r == 0xFEFF || unicode.Is(unicode.Zs, r)
}

// ===== Классификаторы =====

// ASCII fast-path для идентификаторов; Unicode: через isIdentStartRune/Continue.
func isIdentStartByte(b byte) bool {
	return b == '_' || b == '$' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}
func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || (b >= '0' && b <= '9')
}

// ID_Start + $ + _
func isIdentStartRune(r rune) bool {
	if r < utf8.RuneSelf {
		return isIdentStartByte(byte(r))
	}
	return unicode.In(r, unicode.L, unicode.Nl, unicode.Other_ID_Start)
}

// ID_Continue + $ + ZWNJ + ZWJ
func isIdentContinueRune(r rune) bool {
	if r < utf8.RuneSelf {
		return isIdentContinueByte(byte(r))
	}
	if r == 0x200C || r == 0x200D {
		return true
	}
	return unicode.In(r, unicode.L, unicode.Nl, unicode.Other_ID_Start,
		unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc, unicode.Other_ID_Continue)
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }
func isHex(b byte) bool {
	return (b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'f') ||
		(b >= 'A' && b <= 'F')
}

// Проверка для кейса ".5": текущая точка, дальше цифра?
func (lx *Lexer) isNumberAfterDot() bool {
	b0, b1, ok := lx.cursor.Peek2()
	return ok && b0 == '.' && isDec(b1)
}

// ===== Матчеры последовательностей операторов (жадность) =====

// try2/try3/try4 пробуют "съесть" 2/3/4 байта, если совпадает.
func (lx *Lexer) try4(op string) bool {
	if len(op) != 4 || !lx.cursor.HasPrefix(op) {
		return false
	}
	lx.cursor.Skip(4)
	return true
}

func (lx *Lexer) try3(a, b, c byte) bool {
	b0, b1, b2, ok := lx.cursor.Peek3()
	if !ok || b0 != a || b1 != b || b2 != c {
		return false
	}
	lx.cursor.Skip(3)
	return true
}

func (lx *Lexer) try2(a, b byte) bool {
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || b0 != a || b1 != b {
		return false
	}
	lx.cursor.Skip(2)
	return true
}
