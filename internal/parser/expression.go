package parser

import (
	"sable/internal/ast"
	"sable/internal/diag"
	"sable/internal/token"
)

// parseExpression: AssignmentExpression ("," AssignmentExpression)*
func (p *Parser) parseExpression() ast.NodeID {
	first := p.parseAssignment()
	if !p.at(token.Comma) {
		return first
	}
	kids := []ast.NodeID{first}
	for p.at(token.Comma) {
		kids = append(kids, p.next(), p.parseAssignment())
	}
	return p.node(ast.KindComma, kids...)
}

func (p *Parser) parseAssignment() ast.NodeID {
	p.enter()
	defer p.leave()

	if p.inGen && p.atWord("yield") {
		return p.parseYield()
	}
	if p.isArrowAhead() {
		return p.parseArrow()
	}

	lhs := p.parseConditional()
	op := p.peek().Kind
	if !op.IsAssignOp() {
		return lhs
	}
	if !p.isAssignable(lhs, op == token.Assign) {
		p.failCode(diag.SynInvalidTarget, "invalid assignment target")
	}
	opLeaf := p.next()
	rhs := p.parseAssignment()
	return p.node(ast.KindAssignment, lhs, opLeaf, rhs)
}

// isAssignable: простые цели, а при '=' ещё и литералы-шаблоны деструктуризации.
func (p *Parser) isAssignable(id ast.NodeID, pattern bool) bool {
	for p.b.Kind(id) == ast.KindParenthesizedExpression {
		id = p.b.Children(id)[1]
	}
	switch p.b.Kind(id) {
	case ast.KindIdentifierReference, ast.KindMemberDot, ast.KindMemberBracket:
		return true
	case ast.KindObjectLiteral, ast.KindArrayLiteral:
		return pattern
	}
	return false
}

func (p *Parser) parseYield() ast.NodeID {
	kw := p.next()
	star, arg := ast.NoNodeID, ast.NoNodeID
	if !p.peek().NewlineBefore {
		if p.at(token.Star) {
			star = p.next()
			arg = p.parseAssignment()
		} else if p.canStartExpression() {
			arg = p.parseAssignment()
		}
	}
	return p.node(ast.KindYield, kw, star, arg)
}

// isArrowAhead: `ident =>` или `( ... ) =>`; перед `=>` не должно быть
// перевода строки.
func (p *Parser) isArrowAhead() bool {
	switch p.peek().Kind {
	case token.Ident:
		nxt := p.peekAt(1)
		return nxt.Kind == token.FatArrow && !nxt.NewlineBefore
	case token.LParen:
		depth := 0
		for i := p.pos; i < len(p.toks); i++ {
			switch p.toks[i].Kind {
			case token.LParen:
				depth++
			case token.RParen:
				depth--
				if depth == 0 {
					if i+1 >= len(p.toks) {
						return false
					}
					nxt := p.toks[i+1]
					return nxt.Kind == token.FatArrow && !nxt.NewlineBefore
				}
			case token.EOF:
				return false
			}
		}
	}
	return false
}

func (p *Parser) parseArrow() ast.NodeID {
	var params ast.NodeID
	if p.at(token.Ident) {
		params = p.node(ast.KindBindingIdentifier, p.next())
	} else {
		params = p.withGen(false, p.parseParams)
	}
	if p.peek().NewlineBefore {
		p.fail("line terminator before '=>'")
	}
	arrow := p.expect(token.FatArrow)

	var body ast.NodeID
	if p.at(token.LBrace) {
		body = p.withGen(false, func() ast.NodeID { return p.withIn(false, p.parseFunctionBody) })
	} else {
		body = p.withGen(false, p.parseAssignment)
	}
	return p.node(ast.KindArrowFunction, params, arrow, body)
}

func (p *Parser) parseConditional() ast.NodeID {
	cond := p.parseBinary(precOrOr)
	if !p.at(token.Question) {
		return cond
	}
	q := p.next()
	then := p.withIn(false, p.parseAssignment)
	colon := p.expect(token.Colon)
	els := p.parseAssignment()
	return p.node(ast.KindConditional, cond, q, then, colon, els)
}

// parseBinary: подъём по приоритетам; все бинарные операторы
// левоассоциативны.
func (p *Parser) parseBinary(minPrec int) ast.NodeID {
	left := p.parseUnary()
	for {
		prec := binaryPrec(p.peek().Kind, p.noIn)
		if prec == precNone || prec < minPrec {
			return left
		}
		op := p.next()
		right := p.parseBinary(prec + 1)
		left = p.node(ast.KindBinary, left, op, right)
	}
}

func (p *Parser) parseUnary() ast.NodeID {
	k := p.peek().Kind
	if !isUnaryOp(k) {
		return p.parsePostfix()
	}
	p.enter()
	defer p.leave()

	op := p.next()
	operand := p.parseUnary()
	if (k == token.PlusPlus || k == token.MinusMinus) && !p.isAssignable(operand, false) {
		p.failCode(diag.SynInvalidTarget, "invalid update target")
	}
	return p.node(ast.KindUnary, op, operand)
}

func (p *Parser) parsePostfix() ast.NodeID {
	expr := p.parseLeftHand(true)
	if (p.at(token.PlusPlus) || p.at(token.MinusMinus)) && !p.peek().NewlineBefore {
		if !p.isAssignable(expr, false) {
			p.failCode(diag.SynInvalidTarget, "invalid update target")
		}
		return p.node(ast.KindPostfix, expr, p.next())
	}
	return expr
}

// parseLeftHand разбирает MemberExpression и, если allowCall, CallExpression.
func (p *Parser) parseLeftHand(allowCall bool) ast.NodeID {
	var expr ast.NodeID
	if p.at(token.KwNew) {
		expr = p.parseNew()
	} else {
		expr = p.parsePrimary()
	}
	for {
		switch tok := p.peek(); {
		case tok.Kind == token.Dot:
			dot := p.next()
			expr = p.node(ast.KindMemberDot, expr, dot, p.parsePropertyIdentifier())
		case tok.Kind == token.LBracket:
			open := p.next()
			index := p.withIn(false, p.parseExpression)
			expr = p.node(ast.KindMemberBracket, expr, open, index, p.expect(token.RBracket))
		case tok.Kind == token.NoSubstTemplate || tok.Kind == token.TemplateHead:
			expr = p.node(ast.KindTaggedTemplate, expr, p.parseTemplate())
		case tok.Kind == token.LParen && allowCall:
			expr = p.node(ast.KindCall, expr, p.parseArguments())
		default:
			return expr
		}
	}
}

func (p *Parser) parseNew() ast.NodeID {
	p.enter()
	defer p.leave()

	kw := p.next()
	if p.at(token.Dot) {
		dot := p.next()
		return p.node(ast.KindNewTarget, kw, dot, p.expectWord("target"))
	}
	callee := p.parseLeftHand(false)
	args := ast.NoNodeID
	if p.at(token.LParen) {
		args = p.parseArguments()
	}
	return p.node(ast.KindNew, kw, callee, args)
}

// parseArguments: "(" (arg ("," arg)*)? ")"; висячая запятая не допускается.
func (p *Parser) parseArguments() ast.NodeID {
	kids := []ast.NodeID{p.expect(token.LParen)}
	for !p.at(token.RParen) {
		if len(kids) > 1 {
			kids = append(kids, p.expect(token.Comma))
			if p.at(token.RParen) {
				p.failCode(diag.SynExpectExpression, "expected expression but found ')'")
			}
		}
		kids = append(kids, p.parseSpreadOrAssignment())
	}
	kids = append(kids, p.next())
	return p.node(ast.KindArgumentList, kids...)
}

func (p *Parser) parseSpreadOrAssignment() ast.NodeID {
	if p.at(token.DotDotDot) {
		dots := p.next()
		return p.node(ast.KindSpread, dots, p.withIn(false, p.parseAssignment))
	}
	return p.withIn(false, p.parseAssignment)
}

// parsePropertyIdentifier: IdentifierName после точки (ключевые слова разрешены).
func (p *Parser) parsePropertyIdentifier() ast.NodeID {
	if !p.peek().IsIdentName() {
		p.failCode(diag.SynExpectIdentifier, "expected property name but found "+describe(p.peek()))
	}
	return p.node(ast.KindPropertyIdentifier, p.next())
}
