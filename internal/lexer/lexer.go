package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"sable/internal/source"
	"sable/internal/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token   // 1 элементный буфер для токена
	hold   []token.Trivia // накопленные leading trivia
	nl     bool           // в hold встретился перевод строки

	prev token.Kind // последний значимый токен, EOF в начале файла
	// tmpl хранит глубину фигурных скобок для каждой открытой подстановки `${`.
	tmpl []int
	line int // индекс в file.LineIdx для инкрементального подсчёта строк
	// колонка (в символах) последнего смещения, переданного в position
	colOff uint32
	col    uint32
	err    *LexError
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		prev:   token.EOF,
		col:    1,
	}
}

// Err returns the first lexical error seen so far, or nil.
func (lx *Lexer) Err() error {
	if lx.err == nil {
		return nil
	}
	return lx.err
}

// Next возвращает следующий **значимый** токен с уже собранным Leading.
// После EOF всегда возвращает EOF; trivia в конце файла приклеиваются к EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.collectLeadingTrivia()

	var tok token.Token
	if lx.cursor.EOF() {
		tok = token.Token{Kind: token.EOF, Span: lx.emptySpan()}
	} else {
		tok = lx.scanToken()
	}

	tok.Leading = lx.hold
	tok.NewlineBefore = lx.nl
	tok.Line, tok.Col = lx.position(tok.Span.Start)
	lx.hold = nil
	lx.nl = false

	lx.trackBraces(tok.Kind)
	if tok.Kind != token.Invalid {
		lx.prev = tok.Kind
	}
	return tok
}

func (lx *Lexer) scanToken() token.Token {
	ch := lx.cursor.Peek()
	switch {
	case isIdentStartByte(ch) || ch == '\\' || ch >= utf8RuneSelf:
		return lx.scanIdentOrKeyword()
	case isDec(ch) || lx.isNumberAfterDot():
		return lx.scanNumber()
	case ch == '"' || ch == '\'':
		return lx.scanString()
	case ch == '`':
		return lx.scanTemplate(true)
	case ch == '}' && len(lx.tmpl) > 0 && lx.tmpl[len(lx.tmpl)-1] == 0:
		return lx.scanTemplate(false)
	case ch == '/' && token.RegexAllowedAfter(lx.prev):
		return lx.scanRegExp()
	default:
		return lx.scanOperatorOrPunct()
	}
}

// trackBraces поддерживает стек подстановок шаблонов.
func (lx *Lexer) trackBraces(k token.Kind) {
	switch k {
	case token.TemplateHead:
		lx.tmpl = append(lx.tmpl, 0)
	case token.TemplateTail:
		if n := len(lx.tmpl); n > 0 {
			lx.tmpl = lx.tmpl[:n-1]
		}
	case token.LBrace:
		if n := len(lx.tmpl); n > 0 {
			lx.tmpl[n-1]++
		}
	case token.RBrace:
		if n := len(lx.tmpl); n > 0 && lx.tmpl[n-1] > 0 {
			lx.tmpl[n-1]--
		}
	}
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	if lx.look != nil {
		return *lx.look
	}
	t := lx.Next()
	lx.look = &t
	return t
}

// Tokenize lexes the whole file. On success the slice ends with EOF. On the
// first malformed token it returns the tokens read so far and a *LexError.
func Tokenize(file *source.File) ([]token.Token, error) {
	return TokenizeWith(file, Options{})
}

// TokenizeWith is Tokenize with explicit options.
func TokenizeWith(file *source.File, opts Options) ([]token.Token, error) {
	lx := New(file, opts)
	toks := make([]token.Token, 0, len(file.Content)/4+1)
	for {
		tok := lx.Next()
		if lx.err != nil {
			return toks, lx.err
		}
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks, nil
		}
	}
}

// position переводит смещение в строку и колонку в символах. Смещения
// должны поступать в неубывающем порядке: индекс строки только растёт,
// колонка досчитывается от предыдущего токена той же строки.
func (lx *Lexer) position(off uint32) (line, col uint32) {
	idx := lx.file.LineIdx
	moved := false
	for lx.line < len(idx) && idx[lx.line] < off {
		lx.line++
		moved = true
	}
	if moved || off < lx.colOff {
		var start uint32
		if lx.line > 0 {
			start = idx[lx.line-1] + 1
		}
		lx.colOff, lx.col = start, 1
	}
	lx.col += source.ColumnOf(lx.file.Content, lx.colOff, off) - 1
	lx.colOff = off
	l, err := safecast.Conv[uint32](lx.line + 1)
	if err != nil {
		panic(fmt.Errorf("line overflow: %w", err))
	}
	return l, lx.col
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) emit(k token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: k, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
