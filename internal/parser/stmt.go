package parser

import (
	"sable/internal/ast"
	"sable/internal/diag"
	"sable/internal/token"
)

func (p *Parser) parseStatement() ast.NodeID {
	p.enter()
	defer p.leave()

	switch p.peek().Kind {
	case token.LBrace:
		return p.parseBlock()
	case token.KwVar, token.KwConst:
		return p.parseVarStatement()
	case token.Semicolon:
		return p.node(ast.KindEmptyStatement, p.next())
	case token.KwIf:
		return p.parseIf()
	case token.KwDo:
		return p.parseDoWhile()
	case token.KwWhile:
		kw := p.next()
		open, cond, closing := p.parseParenExpr()
		return p.node(ast.KindWhileStatement, kw, open, cond, closing, p.parseStatement())
	case token.KwFor:
		return p.parseFor()
	case token.KwContinue:
		return p.parseJump(ast.KindContinueStatement)
	case token.KwBreak:
		return p.parseJump(ast.KindBreakStatement)
	case token.KwReturn:
		return p.parseReturn()
	case token.KwWith:
		if p.module {
			p.failCode(diag.SynStrictMode, "'with' is not allowed in a module (modules are strict mode code)")
		}
		kw := p.next()
		open, obj, closing := p.parseParenExpr()
		return p.node(ast.KindWithStatement, kw, open, obj, closing, p.parseStatement())
	case token.KwSwitch:
		return p.parseSwitch()
	case token.KwThrow:
		return p.parseThrow()
	case token.KwTry:
		return p.parseTry()
	case token.KwDebugger:
		kw := p.next()
		return p.node(ast.KindDebuggerStatement, kw, p.semicolon())
	case token.KwFunction:
		return p.parseFunction(false, false)
	case token.KwClass:
		return p.parseClass(false, false)
	case token.Ident:
		if p.isLetDeclaration() {
			return p.parseVarStatement()
		}
		if p.peekAt(1).Kind == token.Colon {
			label := p.node(ast.KindLabelIdentifier, p.next())
			colon := p.next()
			return p.node(ast.KindLabelledStatement, label, colon, p.parseStatement())
		}
	}

	expr := p.withIn(false, p.parseExpression)
	return p.node(ast.KindExpressionStatement, expr, p.semicolon())
}

func (p *Parser) parseBlock() ast.NodeID {
	kids := []ast.NodeID{p.expect(token.LBrace)}
	for !p.at(token.RBrace) {
		if p.at(token.EOF) {
			p.failCode(diag.SynUnclosedDelimiter, "expected '}' but found end of input")
		}
		kids = append(kids, p.parseStatement())
	}
	kids = append(kids, p.next())
	return p.node(ast.KindBlock, kids...)
}

// parseParenExpr: "(" Expression ")"
func (p *Parser) parseParenExpr() (open, expr, closing ast.NodeID) {
	open = p.expect(token.LParen)
	expr = p.withIn(false, p.parseExpression)
	closing = p.expect(token.RParen)
	return open, expr, closing
}

func (p *Parser) parseIf() ast.NodeID {
	kw := p.next()
	open, cond, closing := p.parseParenExpr()
	then := p.parseStatement()
	els := ast.NoNodeID
	if p.at(token.KwElse) {
		elseKw := p.next()
		els = p.node(ast.KindElseClause, elseKw, p.parseStatement())
	}
	return p.node(ast.KindIfStatement, kw, open, cond, closing, then, els)
}

// parseDoWhile: ';' после do-while необязательна даже без перевода строки.
func (p *Parser) parseDoWhile() ast.NodeID {
	kw := p.next()
	body := p.parseStatement()
	while := p.expect(token.KwWhile)
	open, cond, closing := p.parseParenExpr()
	return p.node(ast.KindDoWhileStatement, kw, body, while, open, cond, closing, p.optional(token.Semicolon))
}

// parseFor различает for(;;), for-in и for-of по первому элементу заголовка,
// разобранному с запретом оператора `in`.
func (p *Parser) parseFor() ast.NodeID {
	kw := p.next()
	open := p.expect(token.LParen)

	init := ast.NoNodeID
	switch {
	case p.at(token.Semicolon):
	case p.at(token.KwVar) || p.at(token.KwConst) || p.isLetDeclaration():
		init = p.withIn(true, p.parseVarDeclarations)
		if (p.at(token.KwIn) || p.atWord("of")) && len(p.b.Children(init)) == 2 {
			return p.finishForInOf(kw, open, init)
		}
	default:
		init = p.withIn(true, p.parseExpression)
		if p.at(token.KwIn) || p.atWord("of") {
			if !p.isAssignable(init, true) {
				p.failCode(diag.SynInvalidTarget, "invalid left-hand side in for-"+p.peek().Text+" loop")
			}
			return p.finishForInOf(kw, open, init)
		}
	}

	semi1 := p.expect(token.Semicolon)
	test := ast.NoNodeID
	if !p.at(token.Semicolon) {
		test = p.withIn(false, p.parseExpression)
	}
	semi2 := p.expect(token.Semicolon)
	update := ast.NoNodeID
	if !p.at(token.RParen) {
		update = p.withIn(false, p.parseExpression)
	}
	closing := p.expect(token.RParen)
	body := p.parseStatement()
	return p.node(ast.KindForStatement, kw, open, init, semi1, test, semi2, update, closing, body)
}

func (p *Parser) finishForInOf(kw, open, left ast.NodeID) ast.NodeID {
	kind := ast.KindForInStatement
	var right ast.NodeID
	isIn := p.at(token.KwIn)
	op := p.next()
	if isIn {
		right = p.withIn(false, p.parseExpression)
	} else {
		kind = ast.KindForOfStatement
		right = p.withIn(false, p.parseAssignment)
	}
	closing := p.expect(token.RParen)
	body := p.parseStatement()
	return p.node(kind, kw, open, left, op, right, closing, body)
}

// parseJump: continue/break; метка только на той же строке.
func (p *Parser) parseJump(kind ast.Kind) ast.NodeID {
	kw := p.next()
	label := ast.NoNodeID
	if p.at(token.Ident) && !p.peek().NewlineBefore {
		label = p.node(ast.KindLabelIdentifier, p.next())
	}
	return p.node(kind, kw, label, p.semicolon())
}

func (p *Parser) parseReturn() ast.NodeID {
	kw := p.next()
	arg := ast.NoNodeID
	if !p.peek().NewlineBefore && p.canStartExpression() {
		arg = p.withIn(false, p.parseExpression)
	}
	return p.node(ast.KindReturnStatement, kw, arg, p.semicolon())
}

func (p *Parser) parseThrow() ast.NodeID {
	kw := p.next()
	if p.peek().NewlineBefore {
		p.fail("illegal newline after throw")
	}
	arg := p.withIn(false, p.parseExpression)
	return p.node(ast.KindThrowStatement, kw, arg, p.semicolon())
}

func (p *Parser) parseSwitch() ast.NodeID {
	kw := p.next()
	open, disc, closing := p.parseParenExpr()
	kids := []ast.NodeID{kw, open, disc, closing, p.expect(token.LBrace)}
	seenDefault := false
	for !p.at(token.RBrace) {
		var clause []ast.NodeID
		kind := ast.KindCaseClause
		switch p.peek().Kind {
		case token.KwCase:
			clause = append(clause, p.next(), p.withIn(false, p.parseExpression))
		case token.KwDefault:
			if seenDefault {
				p.fail("more than one default clause in switch statement")
			}
			seenDefault = true
			kind = ast.KindDefaultClause
			clause = append(clause, p.next())
		default:
			p.failExpected("'case', 'default' or '}'")
		}
		clause = append(clause, p.expect(token.Colon))
		for !p.at(token.KwCase) && !p.at(token.KwDefault) && !p.at(token.RBrace) {
			if p.at(token.EOF) {
				p.failCode(diag.SynUnclosedDelimiter, "expected '}' but found end of input")
			}
			clause = append(clause, p.parseStatement())
		}
		kids = append(kids, p.node(kind, clause...))
	}
	kids = append(kids, p.next())
	return p.node(ast.KindSwitchStatement, kids...)
}

func (p *Parser) parseTry() ast.NodeID {
	kw := p.next()
	block := p.parseBlock()
	handler, finalizer := ast.NoNodeID, ast.NoNodeID
	if p.at(token.KwCatch) {
		catchKw := p.next()
		open := p.expect(token.LParen)
		param := p.parseBindingTarget()
		closing := p.expect(token.RParen)
		handler = p.node(ast.KindCatchClause, catchKw, open, param, closing, p.parseBlock())
	}
	if p.at(token.KwFinally) {
		finKw := p.next()
		finalizer = p.node(ast.KindFinallyClause, finKw, p.parseBlock())
	}
	if handler == ast.NoNodeID && finalizer == ast.NoNodeID {
		p.failExpected("'catch' or 'finally'")
	}
	return p.node(ast.KindTryStatement, kw, block, handler, finalizer)
}
