package parser

import (
	"sable/internal/ast"
	"sable/internal/diag"
	"sable/internal/token"
)

// parseImport:
//
//	import "m";
//	import d from "m";
//	import * as ns from "m";
//	import d, { a, b as c } from "m";
func (p *Parser) parseImport() ast.NodeID {
	kw := p.next()
	if p.at(token.StringLit) {
		spec := p.node(ast.KindStringLiteral, p.next())
		return p.node(ast.KindImportModule, kw, spec, p.semicolon())
	}

	def, comma, rest := ast.NoNodeID, ast.NoNodeID, ast.NoNodeID
	if p.at(token.Ident) {
		def = p.node(ast.KindBindingIdentifier, p.next())
		if p.at(token.Comma) {
			comma = p.next()
		}
	}
	if def == ast.NoNodeID || comma != ast.NoNodeID {
		switch {
		case p.at(token.Star):
			star := p.next()
			as := p.expectWord("as")
			rest = p.node(ast.KindNamespaceImport, star, as, p.parseImportBinding())
		case p.at(token.LBrace):
			rest = p.parseNamedImports()
		default:
			p.failExpected("import specifier")
		}
	}
	clause := p.node(ast.KindImportClause, def, comma, rest)
	from := p.parseFromClause()
	return p.node(ast.KindImportDeclaration, kw, clause, from, p.semicolon())
}

func (p *Parser) parseImportBinding() ast.NodeID {
	if !p.at(token.Ident) {
		p.failCode(diag.SynExpectIdentifier, "expected binding name but found "+describe(p.peek()))
	}
	return p.node(ast.KindBindingIdentifier, p.next())
}

func (p *Parser) parseNamedImports() ast.NodeID {
	kids := []ast.NodeID{p.next()}
	for !p.at(token.RBrace) {
		kids = append(kids, p.parseImportSpecifier())
		if !p.at(token.RBrace) {
			kids = append(kids, p.expect(token.Comma))
		}
	}
	kids = append(kids, p.next())
	return p.node(ast.KindNamedImports, kids...)
}

// parseImportSpecifier: роль первого имени известна только после `as`:
// с псевдонимом это имя экспорта, без него: локальная привязка.
func (p *Parser) parseImportSpecifier() ast.NodeID {
	if !p.peek().IsIdentName() {
		p.failCode(diag.SynExpectIdentifier, "expected import name but found "+describe(p.peek()))
	}
	name := p.peek()
	leaf := p.next()
	spec := p.b.Start()
	if p.atWord("as") {
		spec.Add(p.node(ast.KindPropertyIdentifier, leaf))
		spec.Add(p.next())
		spec.Add(p.parseImportBinding())
		return spec.Freeze(ast.KindImportSpecifier)
	}
	if !name.IsIdent() {
		p.failCode(diag.SynExpectIdentifier, "unexpected reserved word '"+name.Text+"' in import")
	}
	spec.Add(p.node(ast.KindBindingIdentifier, leaf)).AddNull().AddNull()
	return spec.Freeze(ast.KindImportSpecifier)
}

func (p *Parser) parseFromClause() ast.NodeID {
	from := p.expectWord("from")
	if !p.at(token.StringLit) {
		p.failExpected("module specifier")
	}
	return p.node(ast.KindFromClause, from, p.node(ast.KindStringLiteral, p.next()))
}

// pendingExport: спецификатор экспорта до того, как стало известно,
// есть ли у списка `from`.
type pendingExport struct {
	local token.Token
	leaf  ast.NodeID
	spec  *ast.Partial
}

// parseExport:
//
//	export * from "m";
//	export { a, b as c } (from "m")?;
//	export default expr | function | class;
//	export var|let|const|function|class ...
func (p *Parser) parseExport() ast.NodeID {
	kw := p.next()
	switch {
	case p.at(token.Star):
		star := p.next()
		from := p.parseFromClause()
		return p.node(ast.KindExportAll, kw, star, from, p.semicolon())
	case p.at(token.KwDefault):
		def := p.next()
		switch {
		case p.at(token.KwFunction):
			return p.node(ast.KindExportDefault, kw, def, p.parseFunction(false, true), ast.NoNodeID)
		case p.at(token.KwClass):
			return p.node(ast.KindExportDefault, kw, def, p.parseClass(false, true), ast.NoNodeID)
		}
		expr := p.withIn(false, p.parseAssignment)
		return p.node(ast.KindExportDefault, kw, def, expr, p.semicolon())
	case p.at(token.LBrace):
		return p.parseNamedExports(kw)
	case p.at(token.KwVar) || p.at(token.KwConst) || p.isLetDeclaration():
		return p.node(ast.KindExportDeclaration, kw, p.parseVarStatement())
	case p.at(token.KwFunction):
		return p.node(ast.KindExportDeclaration, kw, p.parseFunction(false, false))
	case p.at(token.KwClass):
		return p.node(ast.KindExportDeclaration, kw, p.parseClass(false, false))
	}
	p.failExpected("declaration, '{', '*' or 'default' after 'export'")
	return ast.NoNodeID
}

func (p *Parser) parseNamedExports(kw ast.NodeID) ast.NodeID {
	open := p.next()
	var pending []pendingExport
	var commas []ast.NodeID
	for !p.at(token.RBrace) {
		if !p.peek().IsIdentName() {
			p.failCode(diag.SynExpectIdentifier, "expected export name but found "+describe(p.peek()))
		}
		pe := pendingExport{local: p.peek(), leaf: p.next(), spec: p.b.Start()}
		pe.spec.AddNull() // локальное имя, тип узла решается после '}'
		if p.atWord("as") {
			pe.spec.Add(p.next())
			pe.spec.Add(p.parsePropertyIdentifier())
		} else {
			pe.spec.AddNull().AddNull()
		}
		pending = append(pending, pe)
		if !p.at(token.RBrace) {
			commas = append(commas, p.expect(token.Comma))
		}
	}
	closing := p.next()

	from := ast.NoNodeID
	if p.atWord("from") {
		from = p.parseFromClause()
	}

	kids := []ast.NodeID{open}
	for i, pe := range pending {
		kind := ast.KindPropertyIdentifier
		if from == ast.NoNodeID {
			if !pe.local.IsIdent() {
				p.failCode(diag.SynExpectIdentifier, "unexpected reserved word '"+pe.local.Text+"' in export")
			}
			kind = ast.KindIdentifierReference
		}
		pe.spec.Set(0, p.node(kind, pe.leaf))
		kids = append(kids, pe.spec.Freeze(ast.KindExportSpecifier))
		if i < len(commas) {
			kids = append(kids, commas[i])
		}
	}
	kids = append(kids, closing)
	clause := p.node(ast.KindExportClause, kids...)
	return p.node(ast.KindNamedExports, kw, clause, from, p.semicolon())
}
