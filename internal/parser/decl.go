package parser

import (
	"sable/internal/ast"
	"sable/internal/diag"
	"sable/internal/token"
)

// isLetDeclaration: `let` является объявлением только перед идентификатором или шаблоном.
func (p *Parser) isLetDeclaration() bool {
	if !p.atWord("let") {
		return false
	}
	switch p.peekAt(1).Kind {
	case token.Ident, token.LBracket, token.LBrace:
		return true
	}
	return false
}

func (p *Parser) parseVarStatement() ast.NodeID {
	decls := p.parseVarDeclarations()
	return p.node(ast.KindVarStatement, decls, p.semicolon())
}

// parseVarDeclarations: ("var"|"let"|"const") decl ("," decl)*
func (p *Parser) parseVarDeclarations() ast.NodeID {
	kids := []ast.NodeID{p.next()}
	kids = append(kids, p.parseVarDeclaration())
	for p.at(token.Comma) {
		kids = append(kids, p.next(), p.parseVarDeclaration())
	}
	return p.node(ast.KindVarDeclarations, kids...)
}

func (p *Parser) parseVarDeclaration() ast.NodeID {
	target := p.parseBindingTarget()
	if !p.at(token.Assign) {
		return p.node(ast.KindVarDeclaration, target, ast.NoNodeID, ast.NoNodeID)
	}
	eq := p.next()
	return p.node(ast.KindVarDeclaration, target, eq, p.parseAssignment())
}

// parseBindingTarget: BindingIdentifier | ObjectBindingPattern | ArrayBindingPattern
func (p *Parser) parseBindingTarget() ast.NodeID {
	switch p.peek().Kind {
	case token.Ident:
		return p.node(ast.KindBindingIdentifier, p.next())
	case token.LBracket:
		return p.parseArrayBindingPattern()
	case token.LBrace:
		return p.parseObjectBindingPattern()
	}
	p.failCode(diag.SynExpectIdentifier, "expected binding name but found "+describe(p.peek()))
	return ast.NoNodeID
}

// parseBindingElement: target ("=" default)?
func (p *Parser) parseBindingElement() ast.NodeID {
	target := p.parseBindingTarget()
	if !p.at(token.Assign) {
		return target
	}
	eq := p.next()
	return p.node(ast.KindBindingElement, target, eq, p.withIn(false, p.parseAssignment))
}

func (p *Parser) parseRestElement() ast.NodeID {
	dots := p.next()
	return p.node(ast.KindRestElement, dots, p.parseBindingTarget())
}

func (p *Parser) parseArrayBindingPattern() ast.NodeID {
	kids := []ast.NodeID{p.next()}
	for !p.at(token.RBracket) {
		if p.at(token.Comma) {
			kids = append(kids, ast.NoNodeID, p.next())
			continue
		}
		if p.at(token.DotDotDot) {
			kids = append(kids, p.parseRestElement())
			if !p.at(token.RBracket) {
				p.failCode(diag.SynRestNotLast, "rest element must be last")
			}
			break
		}
		kids = append(kids, p.parseBindingElement())
		if !p.at(token.RBracket) {
			kids = append(kids, p.expect(token.Comma))
		}
	}
	kids = append(kids, p.expect(token.RBracket))
	return p.node(ast.KindArrayBindingPattern, kids...)
}

func (p *Parser) parseObjectBindingPattern() ast.NodeID {
	kids := []ast.NodeID{p.next()}
	for !p.at(token.RBrace) {
		kids = append(kids, p.parseBindingProperty())
		if !p.at(token.RBrace) {
			kids = append(kids, p.expect(token.Comma))
		}
	}
	kids = append(kids, p.next())
	return p.node(ast.KindObjectBindingPattern, kids...)
}

// parseBindingProperty: сокращение `{ a }`, `{ a = 1 }` или `name: element`.
func (p *Parser) parseBindingProperty() ast.NodeID {
	if p.at(token.Ident) && p.peekAt(1).Kind != token.Colon {
		return p.parseBindingElement()
	}
	name := p.parsePropertyName()
	colon := p.expect(token.Colon)
	return p.node(ast.KindBindingProperty, name, colon, p.parseBindingElement())
}

// parseParams: "(" (param ("," param)*)? ")"; rest-параметр только последним.
// Список собирается двухфазно: дети добавляются по мере чтения, узел
// замораживается на ')'.
func (p *Parser) parseParams() ast.NodeID {
	part := p.b.Start().Add(p.expect(token.LParen))
	p.withIn(false, func() ast.NodeID {
		for !p.at(token.RParen) {
			if part.Len() > 1 {
				part.Add(p.expect(token.Comma))
				if p.at(token.RParen) {
					p.failCode(diag.SynExpectIdentifier, "expected parameter but found ')'")
				}
			}
			if p.at(token.DotDotDot) {
				part.Add(p.parseRestElement())
				if !p.at(token.RParen) {
					p.failCode(diag.SynRestNotLast, "rest parameter must be last")
				}
				break
			}
			part.Add(p.parseBindingElement())
		}
		return ast.NoNodeID
	})
	part.Add(p.expect(token.RParen))
	return part.Freeze(ast.KindParameterList)
}

// parseFunctionBody: "{" statements "}"
func (p *Parser) parseFunctionBody() ast.NodeID {
	kids := []ast.NodeID{p.expect(token.LBrace)}
	for !p.at(token.RBrace) {
		if p.at(token.EOF) {
			p.failCode(diag.SynUnclosedDelimiter, "expected '}' but found end of input")
		}
		kids = append(kids, p.parseStatement())
	}
	kids = append(kids, p.next())
	return p.node(ast.KindFunctionBody, kids...)
}

// parseFunction разбирает function/function* объявление или выражение.
// Имя обязательно только у объявлений вне `export default`.
func (p *Parser) parseFunction(expr, anonymous bool) ast.NodeID {
	kw := p.next()
	star := p.optional(token.Star)
	gen := star != ast.NoNodeID

	name := ast.NoNodeID
	switch {
	case p.at(token.Ident):
		name = p.node(ast.KindBindingIdentifier, p.next())
	case !anonymous:
		p.failCode(diag.SynExpectIdentifier, "expected function name but found "+describe(p.peek()))
	}

	var params, body ast.NodeID
	p.withGen(gen, func() ast.NodeID {
		params = p.parseParams()
		body = p.withIn(false, p.parseFunctionBody)
		return body
	})

	var kind ast.Kind
	switch {
	case expr && gen:
		kind = ast.KindGeneratorExpression
	case expr:
		kind = ast.KindFunctionExpression
	case gen:
		kind = ast.KindGeneratorDeclaration
	default:
		kind = ast.KindFunctionDeclaration
	}
	return p.node(kind, kw, star, name, params, body)
}

// parseClass: "class" name? ("extends" expr)? "{" members "}"
func (p *Parser) parseClass(expr, anonymous bool) ast.NodeID {
	kw := p.next()
	name := ast.NoNodeID
	switch {
	case p.at(token.Ident):
		name = p.node(ast.KindBindingIdentifier, p.next())
	case !anonymous:
		p.failCode(diag.SynExpectIdentifier, "expected class name but found "+describe(p.peek()))
	}

	heritage := ast.NoNodeID
	if p.at(token.KwExtends) {
		ext := p.next()
		heritage = p.node(ast.KindClassHeritage, ext, p.parseLeftHand(true))
	}

	kids := []ast.NodeID{kw, name, heritage, p.expect(token.LBrace)}
	p.withIn(false, func() ast.NodeID {
		for !p.at(token.RBrace) {
			if p.at(token.EOF) {
				p.failCode(diag.SynUnclosedDelimiter, "expected '}' but found end of input")
			}
			kids = append(kids, p.parseClassMember())
		}
		return ast.NoNodeID
	})
	kids = append(kids, p.next())

	kind := ast.KindClassDeclaration
	if expr {
		kind = ast.KindClassExpression
	}
	return p.node(kind, kids...)
}

func (p *Parser) parseClassMember() ast.NodeID {
	if p.at(token.Semicolon) {
		return p.next()
	}
	static := ast.NoNodeID
	if p.atWord("static") && p.peekAt(1).Kind != token.LParen {
		static = p.next()
	}
	return p.parseMethodDefinition(static)
}
