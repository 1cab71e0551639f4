package parser

import (
	"fmt"

	"sable/internal/ast"
	"sable/internal/diag"
	"sable/internal/token"
)

func (p *Parser) peek() token.Token { return p.toks[p.pos] }

// peekAt смотрит на n токенов вперёд; за концом: EOF.
func (p *Parser) peekAt(n int) token.Token {
	if i := p.pos + n; i < len(p.toks) {
		return p.toks[i]
	}
	return p.toks[len(p.toks)-1]
}

func (p *Parser) at(k token.Kind) bool { return p.toks[p.pos].Kind == k }

// atWord: контекстное слово (let, of, get, set, from, as, static, target).
func (p *Parser) atWord(w string) bool { return p.toks[p.pos].Is(w) }

// next создаёт лист для текущего токена и сдвигается; EOF не пропускается.
func (p *Parser) next() ast.NodeID {
	id := p.b.Token(p.pos)
	if p.toks[p.pos].Kind != token.EOF {
		p.pos++
	}
	return id
}

// expect: ожидаем конкретный токен, иначе синтаксическая ошибка.
func (p *Parser) expect(k token.Kind) ast.NodeID {
	if p.at(k) {
		return p.next()
	}
	p.failExpected(fmt.Sprintf("'%s'", k))
	return ast.NoNodeID
}

// expectWord: ожидаем контекстное слово.
func (p *Parser) expectWord(w string) ast.NodeID {
	if p.atWord(w) {
		return p.next()
	}
	p.failExpected(fmt.Sprintf("'%s'", w))
	return ast.NoNodeID
}

// semicolon реализует автоматическую вставку ';' (ES2015 §11.9):
// ';' можно опустить перед '}', в конце файла и после перевода строки.
func (p *Parser) semicolon() ast.NodeID {
	if p.at(token.Semicolon) {
		return p.next()
	}
	if p.at(token.RBrace) || p.at(token.EOF) || p.peek().NewlineBefore {
		return ast.NoNodeID
	}
	p.failCode(diag.SynExpectSemicolon, "missing ';' before "+describe(p.peek()))
	return ast.NoNodeID
}

func (p *Parser) failExpected(what string) {
	p.raise(diag.SynUnexpectedToken, fmt.Sprintf("expected %s but found %s", what, describe(p.peek())), what)
}

func (p *Parser) fail(msg string) { p.raise(diag.SynUnexpectedToken, msg, "") }

func (p *Parser) failCode(code diag.Code, msg string) { p.raise(code, msg, "") }

func (p *Parser) raise(code diag.Code, msg, expected string) {
	tok := p.peek()
	panic(bailout{err: &SyntaxError{
		Code:     code,
		Span:     tok.Span,
		Line:     tok.Line,
		Col:      tok.Col,
		Msg:      msg,
		Found:    tok.Text,
		Expected: expected,
	}})
}

func describe(tok token.Token) string {
	switch tok.Kind {
	case token.EOF:
		return "end of input"
	case token.Ident:
		return "identifier '" + tok.Text + "'"
	}
	return "'" + tok.Text + "'"
}

// enter/leave ограничивают глубину рекурсии.
func (p *Parser) enter() {
	p.depth++
	if p.depth > maxDepth {
		p.fail("nesting is too deep")
	}
}

func (p *Parser) leave() { p.depth-- }

// withIn выполняет f с заданным значением noIn и восстанавливает его.
func (p *Parser) withIn(noIn bool, f func() ast.NodeID) ast.NodeID {
	saved := p.noIn
	p.noIn = noIn
	defer func() { p.noIn = saved }()
	return f()
}

// withGen выполняет f в контексте (не)генератора.
func (p *Parser) withGen(gen bool, f func() ast.NodeID) ast.NodeID {
	saved := p.inGen
	p.inGen = gen
	defer func() { p.inGen = saved }()
	return f()
}

// node: короткая форма для p.b.Node.
func (p *Parser) node(kind ast.Kind, kids ...ast.NodeID) ast.NodeID {
	return p.b.Node(kind, kids...)
}

// optional съедает токен k, если он есть.
func (p *Parser) optional(k token.Kind) ast.NodeID {
	if p.at(k) {
		return p.next()
	}
	return ast.NoNodeID
}

// canStartExpression: может ли текущий токен начинать выражение.
func (p *Parser) canStartExpression() bool {
	switch p.peek().Kind {
	case token.RParen, token.RBracket, token.RBrace, token.Comma, token.Semicolon,
		token.Colon, token.EOF, token.TemplateMiddle, token.TemplateTail, token.FatArrow,
		token.KwIn, token.KwInstanceof, token.Question:
		return false
	}
	k := p.peek().Kind
	return !(k.IsAssignOp() || isBinaryOnly(k))
}

func isBinaryOnly(k token.Kind) bool {
	switch k {
	case token.Star, token.Percent, token.Lt, token.Gt, token.LtEq, token.GtEq,
		token.EqEq, token.BangEq, token.EqEqEq, token.BangEqEq, token.Shl, token.Shr, token.UShr,
		token.Amp, token.Pipe, token.Caret, token.AndAnd, token.OrOr, token.Dot:
		return true
	}
	return false
}
