package symbols

import (
	"sable/internal/ast"
	"sable/internal/token"
)

// resolve: второй проход, ссылки на символы.
func (r *Resolver) resolve(id ast.NodeID) {
	if id == ast.NoNodeID {
		return
	}
	t := r.tree
	switch t.Kind(id) {
	case ast.KindToken:
		return
	case ast.KindIdentifierReference:
		r.resolveReference(id)
		return
	}
	if scope, ok := r.model.scopeOf[id]; ok && id != t.Root {
		r.push(scope)
		r.resolveChildren(id)
		r.Leave()
		return
	}
	r.resolveChildren(id)
}

func (r *Resolver) resolveChildren(id ast.NodeID) {
	if id == r.tree.Root && r.model.Module.IsValid() {
		r.push(r.model.Module)
		defer r.Leave()
	}
	for _, c := range r.tree.Children(id) {
		r.resolve(c)
	}
}

func (r *Resolver) resolveReference(id ast.NodeID) {
	name := r.tree.Name(id)
	scope := r.CurrentScope()
	symID := r.Lookup(scope, name)
	if name == "arguments" {
		symID = r.argumentsBinding(symID)
	}
	if !symID.IsValid() {
		symID = r.globalFallback(name)
	}
	r.model.symbolOf[id] = symID

	u := Usage{Node: id, Span: r.tree.Span(id)}
	if r.isWriteTarget(id) {
		u.Flags |= UsageWrite
	}
	sym := r.table.Symbols.Get(symID)
	if sym.Kind.IsLexical() && len(sym.Decls) > 0 &&
		u.Span.Start < r.tree.Span(sym.Decls[0]).Start &&
		r.model.VarScope(scope) == r.model.VarScope(sym.Scope) {
		u.Flags |= UsageBeforeDeclaration
	}
	sym.Usages = append(sym.Usages, u)
}

// argumentsBinding: внутри обычной функции (не стрелочной) `arguments`
// без собственного объявления относится к неявному объекту этой функции.
// Символ создаётся в её области при первом обращении.
func (r *Resolver) argumentsBinding(found SymbolID) SymbolID {
	fn := NoScopeID
	for i := len(r.stack) - 1; i >= 0; i-- {
		sc := r.table.Scopes.Get(r.stack[i])
		if sc != nil && sc.Kind == ScopeFunction && r.tree.Kind(sc.Node) != ast.KindArrowFunction {
			fn = sc.ID
			break
		}
	}
	if !fn.IsValid() {
		return found
	}
	if sym := r.table.Symbols.Get(found); sym != nil && r.within(sym.Scope, fn) {
		return found // параметр или переменная с именем arguments
	}
	id := r.table.Symbols.New(&Symbol{Name: "arguments", Kind: SymbolBuiltin, Scope: fn})
	sc := r.table.Scopes.Get(fn)
	sc.Names["arguments"] = id
	sc.Symbols = append(sc.Symbols, id)
	return id
}

// within reports whether scope is outer or nested inside it.
func (r *Resolver) within(scope, outer ScopeID) bool {
	for scope.IsValid() {
		if scope == outer {
			return true
		}
		sc := r.table.Scopes.Get(scope)
		if sc == nil {
			return false
		}
		scope = sc.Parent
	}
	return false
}

// isWriteTarget: цель присваивания, операнд ++/--, левая часть for-in/of,
// в том числе внутри деструктурирующего литерала.
func (r *Resolver) isWriteTarget(id ast.NodeID) bool {
	t := r.tree
	child, pattern := id, false
	for p := t.Parent(child); p != ast.NoNodeID; child, p = p, t.Parent(p) {
		switch t.Kind(p) {
		case ast.KindParenthesizedExpression:
			continue
		case ast.KindArrayLiteral, ast.KindObjectLiteral, ast.KindSpread:
			pattern = true
			continue
		case ast.KindPairProperty:
			if t.Child(p, 2) != child {
				return false
			}
			continue
		case ast.KindInitializedName:
			if t.Child(p, 0) != child {
				return false
			}
			continue
		case ast.KindAssignment:
			if t.Child(p, 0) != child {
				return false
			}
			return !pattern || t.TokenKind(t.Child(p, 1)) == token.Assign
		case ast.KindForInStatement, ast.KindForOfStatement:
			return t.Child(p, 2) == child
		case ast.KindUnary, ast.KindPostfix:
			if pattern {
				return false
			}
			op := t.TokenKind(t.Child(p, 0))
			if t.Kind(p) == ast.KindPostfix {
				op = t.TokenKind(t.Child(p, 1))
			}
			return op == token.PlusPlus || op == token.MinusMinus
		}
		return false
	}
	return false
}
