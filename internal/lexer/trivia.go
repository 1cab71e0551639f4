package lexer

import (
	"sable/internal/diag"
	"sable/internal/source"
	"sable/internal/token"
)

// collectLeadingTrivia собирает подряд идущие trivia перед значимым токеном.
// - пробельные символы (включая NBSP, BOM, Zs) коалесцируются в один TriviaSpace
// - терминаторы строк (LF, CR, CRLF, LS, PS) коалесцируются в один TriviaNewline
// - //... до терминатора -> TriviaLineComment
// - /* ... */ -> TriviaBlockComment (без вложенности; если не закрыт: ошибка)
func (lx *Lexer) collectLeadingTrivia() {
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()

		if lx.isSpaceAt() {
			for lx.isSpaceAt() {
				lx.cursor.BumpRune()
			}
			lx.pushTrivia(token.TriviaSpace, lx.cursor.SpanFrom(start))
			continue
		}

		if n := lx.cursor.Terminator(); n > 0 {
			for n > 0 {
				lx.cursor.Skip(n)
				n = lx.cursor.Terminator()
			}
			lx.nl = true
			lx.pushTrivia(token.TriviaNewline, lx.cursor.SpanFrom(start))
			continue
		}

		if lx.cursor.Peek() == '/' && lx.scanCommentIntoHold() {
			continue
		}

		break
	}
}

func (lx *Lexer) pushTrivia(kind token.TriviaKind, sp source.Span) {
	line, _ := lx.position(sp.Start)
	lx.hold = append(lx.hold, token.Trivia{
		Kind: kind,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
		Line: line,
	})
}

// //... , /*...*/
func (lx *Lexer) scanCommentIntoHold() bool {
	start := lx.cursor.Mark()
	switch {
	case lx.cursor.HasPrefix("//"):
		lx.cursor.Skip(2)
		for !lx.cursor.EOF() && lx.cursor.Terminator() == 0 {
			lx.cursor.Bump()
		}
		lx.pushTrivia(token.TriviaLineComment, lx.cursor.SpanFrom(start))
		return true

	case lx.cursor.HasPrefix("/*"):
		lx.cursor.Skip(2)
		closed := false
		for !lx.cursor.EOF() {
			if lx.cursor.HasPrefix("*/") {
				lx.cursor.Skip(2)
				closed = true
				break
			}
			if n := lx.cursor.Terminator(); n > 0 {
				lx.nl = true
				lx.cursor.Skip(n)
				continue
			}
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		if !closed {
			lx.errLex(diag.LexUnterminatedBlockComment, sp, "unterminated block comment")
		}
		lx.pushTrivia(token.TriviaBlockComment, sp)
		return true
	}
	return false
}
