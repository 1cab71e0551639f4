package parser

import (
	"sable/internal/ast"
	"sable/internal/diag"
	"sable/internal/token"
)

func (p *Parser) parsePrimary() ast.NodeID {
	switch tok := p.peek(); tok.Kind {
	case token.KwThis:
		return p.node(ast.KindThis, p.next())
	case token.KwSuper:
		return p.node(ast.KindSuper, p.next())
	case token.Ident:
		return p.node(ast.KindIdentifierReference, p.next())
	case token.NumberLit:
		return p.node(ast.KindNumericLiteral, p.next())
	case token.StringLit:
		return p.node(ast.KindStringLiteral, p.next())
	case token.KwTrue, token.KwFalse:
		return p.node(ast.KindBooleanLiteral, p.next())
	case token.KwNull:
		return p.node(ast.KindNullLiteral, p.next())
	case token.RegExpLit:
		return p.node(ast.KindRegExpLiteral, p.next())
	case token.NoSubstTemplate, token.TemplateHead:
		return p.parseTemplate()
	case token.LParen:
		open := p.next()
		if p.at(token.RParen) {
			p.failCode(diag.SynExpectExpression, "expected expression but found ')'")
		}
		inner := p.withIn(false, p.parseExpression)
		return p.node(ast.KindParenthesizedExpression, open, inner, p.expect(token.RParen))
	case token.LBracket:
		return p.parseArrayLiteral()
	case token.LBrace:
		return p.parseObjectLiteral()
	case token.KwFunction:
		return p.parseFunction(true, true)
	case token.KwClass:
		return p.parseClass(true, true)
	}
	p.failCode(diag.SynExpectExpression, "expected expression but found "+describe(p.peek()))
	return ast.NoNodeID
}

// parseTemplate: no-substitution | head expr (middle expr)* tail
func (p *Parser) parseTemplate() ast.NodeID {
	if p.at(token.NoSubstTemplate) {
		return p.node(ast.KindTemplateLiteral, p.next())
	}
	kids := []ast.NodeID{p.expect(token.TemplateHead)}
	for {
		kids = append(kids, p.withIn(false, p.parseExpression))
		switch p.peek().Kind {
		case token.TemplateMiddle:
			kids = append(kids, p.next())
		case token.TemplateTail:
			kids = append(kids, p.next())
			return p.node(ast.KindTemplateLiteral, kids...)
		default:
			p.failCode(diag.SynUnclosedDelimiter, "expected '}' to close template substitution but found "+describe(p.peek()))
		}
	}
}

// parseArrayLiteral: пропуски (elision) хранятся как NoNodeID.
func (p *Parser) parseArrayLiteral() ast.NodeID {
	kids := []ast.NodeID{p.next()}
	for !p.at(token.RBracket) {
		if p.at(token.Comma) {
			kids = append(kids, ast.NoNodeID, p.next())
			continue
		}
		kids = append(kids, p.parseSpreadOrAssignment())
		if !p.at(token.RBracket) {
			kids = append(kids, p.expect(token.Comma))
		}
	}
	kids = append(kids, p.next())
	return p.node(ast.KindArrayLiteral, kids...)
}

func (p *Parser) parseObjectLiteral() ast.NodeID {
	kids := []ast.NodeID{p.next()}
	for !p.at(token.RBrace) {
		kids = append(kids, p.parsePropertyDefinition())
		if !p.at(token.RBrace) {
			kids = append(kids, p.expect(token.Comma))
		}
	}
	kids = append(kids, p.next())
	return p.node(ast.KindObjectLiteral, kids...)
}

func (p *Parser) parsePropertyDefinition() ast.NodeID {
	// shorthand: `{ a }`, `{ a = 1 }` (только как шаблон присваивания)
	if p.at(token.Ident) {
		switch p.peekAt(1).Kind {
		case token.Comma, token.RBrace:
			return p.node(ast.KindIdentifierReference, p.next())
		case token.Assign:
			ref := p.node(ast.KindIdentifierReference, p.next())
			eq := p.next()
			return p.node(ast.KindInitializedName, ref, eq, p.withIn(false, p.parseAssignment))
		}
	}
	if p.isMethodStart() {
		return p.parseMethodDefinition(ast.NoNodeID)
	}
	name := p.parsePropertyName()
	if p.at(token.LParen) {
		return p.finishMethod(ast.KindMethod, ast.NoNodeID, ast.NoNodeID, name, false)
	}
	colon := p.expect(token.Colon)
	return p.node(ast.KindPairProperty, name, colon, p.withIn(false, p.parseAssignment))
}

// isMethodStart: `*name(`, `get name(`, `set name(`.
func (p *Parser) isMethodStart() bool {
	if p.at(token.Star) {
		return true
	}
	return (p.atWord("get") || p.atWord("set")) && isPropertyNameStart(p.peekAt(1))
}

func isPropertyNameStart(tok token.Token) bool {
	return tok.IsIdentName() || tok.Kind == token.StringLit || tok.Kind == token.NumberLit || tok.Kind == token.LBracket
}

// parsePropertyName: IdentifierName | string | number | "[" expr "]"
func (p *Parser) parsePropertyName() ast.NodeID {
	tok := p.peek()
	switch {
	case tok.IsIdentName():
		return p.node(ast.KindPropertyIdentifier, p.next())
	case tok.Kind == token.StringLit:
		return p.node(ast.KindStringLiteral, p.next())
	case tok.Kind == token.NumberLit:
		return p.node(ast.KindNumericLiteral, p.next())
	case tok.Kind == token.LBracket:
		// вычисляемое имя: узел собирается по мере чтения и замораживается после ']'
		part := p.b.Start().Add(p.next())
		part.Add(p.withIn(false, p.parseAssignment))
		part.Add(p.expect(token.RBracket))
		return part.Freeze(ast.KindComputedPropertyName)
	}
	p.failCode(diag.SynExpectIdentifier, "expected property name but found "+describe(tok))
	return ast.NoNodeID
}

// parseMethodDefinition разбирает метод, генератор-метод или аксессор;
// static: уже прочитанный лист `static` либо NoNodeID.
func (p *Parser) parseMethodDefinition(static ast.NodeID) ast.NodeID {
	switch {
	case p.at(token.Star):
		star := p.next()
		name := p.parsePropertyName()
		return p.finishMethod(ast.KindGeneratorMethod, static, star, name, true)
	case (p.atWord("get") || p.atWord("set")) && isPropertyNameStart(p.peekAt(1)):
		kind := ast.KindGetter
		if p.atWord("set") {
			kind = ast.KindSetter
		}
		word := p.next()
		name := p.parsePropertyName()
		return p.finishMethod(kind, static, word, name, false)
	}
	name := p.parsePropertyName()
	return p.finishMethod(ast.KindMethod, static, ast.NoNodeID, name, false)
}

func (p *Parser) finishMethod(kind ast.Kind, static, mod, name ast.NodeID, gen bool) ast.NodeID {
	var params, body ast.NodeID
	p.withGen(gen, func() ast.NodeID {
		params = p.parseParams()
		body = p.withIn(false, p.parseFunctionBody)
		return body
	})
	return p.node(kind, static, mod, name, params, body)
}
