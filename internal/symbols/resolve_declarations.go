package symbols

import (
	"sable/internal/ast"
	"sable/internal/token"
)

// collect: первый проход, области видимости и объявления.
func (r *Resolver) collect(id ast.NodeID) {
	if id == ast.NoNodeID {
		return
	}
	t := r.tree
	switch t.Kind(id) {
	case ast.KindToken:
		return

	case ast.KindFunctionDeclaration, ast.KindGeneratorDeclaration:
		if name := t.Child(id, 2); name != ast.NoNodeID {
			if !r.isBlockLevel(id) {
				r.Declare(r.VarScope(), name, SymbolFunction)
			} else {
				sym := r.Declare(r.CurrentScope(), name, SymbolFunction)
				if !t.IsModule() && !r.strictAt(id) {
					r.blockFuncs = append(r.blockFuncs, blockFunction{sym: sym, block: r.CurrentScope(), outer: r.VarScope()})
				}
			}
		}
		r.collectFunction(id)

	case ast.KindFunctionExpression, ast.KindGeneratorExpression, ast.KindArrowFunction,
		ast.KindMethod, ast.KindGeneratorMethod, ast.KindGetter, ast.KindSetter:
		r.collectFunction(id)

	case ast.KindClassDeclaration:
		if name := t.Child(id, 1); name != ast.NoNodeID {
			r.Declare(r.CurrentScope(), name, SymbolClass)
		}
		r.collectClass(id)

	case ast.KindClassExpression:
		r.collectClass(id)

	case ast.KindBlock, ast.KindForStatement, ast.KindForInStatement, ast.KindForOfStatement,
		ast.KindSwitchStatement:
		r.Enter(ScopeBlock, id)
		r.collectChildren(id)
		r.Leave()

	case ast.KindCatchClause:
		scope := r.Enter(ScopeBlock, id)
		r.declareBindings(scope, t.Child(id, 2), SymbolParameter)
		r.collectChildren(id)
		r.Leave()

	case ast.KindVarDeclarations:
		kind, scope := SymbolVariable, r.VarScope()
		switch t.TokenKind(t.Child(id, 0)) {
		case token.KwConst:
			kind, scope = SymbolConst, r.CurrentScope()
		case token.Ident: // let
			kind, scope = SymbolLet, r.CurrentScope()
		}
		for _, decl := range t.Children(id) {
			if t.Kind(decl) == ast.KindVarDeclaration {
				r.declareBindings(scope, t.Child(decl, 0), kind)
			}
		}
		r.collectChildren(id)

	case ast.KindImportDeclaration:
		r.collectImports(t.Child(id, 1))

	default:
		r.collectChildren(id)
	}
}

func (r *Resolver) collectChildren(id ast.NodeID) {
	for _, c := range r.tree.Children(id) {
		r.collect(c)
	}
}

// collectFunction открывает область функции: параметры, собственное имя
// именованного функционального выражения и тело.
func (r *Resolver) collectFunction(fn ast.NodeID) {
	t := r.tree
	var params, body ast.NodeID
	switch t.Kind(fn) {
	case ast.KindArrowFunction:
		params, body = t.Child(fn, 0), t.Child(fn, 2)
	case ast.KindMethod, ast.KindGeneratorMethod, ast.KindGetter, ast.KindSetter:
		r.collect(t.Child(fn, 2)) // вычисляемое имя: во внешней области
		params, body = t.Child(fn, 3), t.Child(fn, 4)
	default:
		params, body = t.Child(fn, 3), t.Child(fn, 4)
	}

	scope := r.Enter(ScopeFunction, fn)
	if k := t.Kind(fn); k == ast.KindFunctionExpression || k == ast.KindGeneratorExpression {
		if name := t.Child(fn, 2); name != ast.NoNodeID {
			r.Declare(scope, name, SymbolFunction)
		}
	}
	if t.Kind(params) == ast.KindBindingIdentifier {
		r.Declare(scope, params, SymbolParameter)
	} else {
		for _, p := range t.Children(params) {
			r.declareBindings(scope, p, SymbolParameter)
		}
		r.collectChildren(params)
	}
	if t.Kind(body) == ast.KindFunctionBody {
		r.collectChildren(body)
	} else {
		r.collect(body)
	}
	r.Leave()
}

func (r *Resolver) collectClass(class ast.NodeID) {
	t := r.tree
	scope := r.Enter(ScopeBlock, class)
	if t.Kind(class) == ast.KindClassExpression {
		if name := t.Child(class, 1); name != ast.NoNodeID {
			r.Declare(scope, name, SymbolClass)
		}
	}
	for i, c := range t.Children(class) {
		if i == 1 {
			continue
		}
		r.collect(c)
	}
	r.Leave()
}

func (r *Resolver) collectImports(clause ast.NodeID) {
	t := r.tree
	scope := r.model.Module
	if !scope.IsValid() {
		scope = r.model.Global
	}
	if def := t.Child(clause, 0); def != ast.NoNodeID {
		r.Declare(scope, def, SymbolImport)
	}
	rest := t.Child(clause, 2)
	switch t.Kind(rest) {
	case ast.KindNamespaceImport:
		r.Declare(scope, t.Child(rest, 2), SymbolImport)
	case ast.KindNamedImports:
		for _, spec := range t.Children(rest) {
			if t.Kind(spec) != ast.KindImportSpecifier {
				continue
			}
			local := t.Child(spec, 0)
			if alias := t.Child(spec, 2); alias != ast.NoNodeID {
				local = alias
			}
			r.Declare(scope, local, SymbolImport)
		}
	}
}

// declareBindings объявляет все BindingIdentifier целевого шаблона;
// значения по умолчанию не объявляют имён.
func (r *Resolver) declareBindings(scope ScopeID, target ast.NodeID, kind SymbolKind) {
	t := r.tree
	switch t.Kind(target) {
	case ast.KindBindingIdentifier:
		r.Declare(scope, target, kind)
	case ast.KindBindingElement:
		r.declareBindings(scope, t.Child(target, 0), kind)
	case ast.KindRestElement:
		r.declareBindings(scope, t.Child(target, 1), kind)
	case ast.KindBindingProperty:
		r.declareBindings(scope, t.Child(target, 2), kind)
	case ast.KindObjectBindingPattern, ast.KindArrayBindingPattern:
		for _, c := range t.Children(target) {
			r.declareBindings(scope, c, kind)
		}
	}
}

// isBlockLevel: объявление функции внутри блока привязывается к блоку, на
// верхнем уровне функции, скрипта или модуля: поднимается.
func (r *Resolver) isBlockLevel(fn ast.NodeID) bool {
	t := r.tree
	p := t.Parent(fn)
	for t.Kind(p) == ast.KindLabelledStatement {
		p = t.Parent(p)
	}
	switch t.Kind(p) {
	case ast.KindScript, ast.KindModule, ast.KindFunctionBody,
		ast.KindExportDeclaration, ast.KindExportDefault:
		return false
	}
	return true
}
