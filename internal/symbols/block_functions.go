package symbols

import "sable/internal/ast"

// blockFunction: объявление функции внутри блока в нестрогом скрипте.
type blockFunction struct {
	sym   SymbolID
	block ScopeID // область блока, где объявлена функция
	outer ScopeID // ближайшая var-область
}

// hoistBlockFunctions делает блочные функции видимыми в var-области.
// Символ остаётся владельцем блока, во внешней области появляется только
// ещё одно имя, указывающее на него. Если по пути уже есть привязка с тем
// же именем (let/const/class, параметр, var), внешнее имя не создаётся.
func (r *Resolver) hoistBlockFunctions() {
	for _, bf := range r.blockFuncs {
		sym := r.table.Symbols.Get(bf.sym)
		// `let f; { function f(){} }` в том же блоке: символ не функция
		if sym == nil || sym.Kind != SymbolFunction {
			continue
		}
		if r.hoistBlocked(bf, sym.Name) {
			continue
		}
		r.table.Scopes.Get(bf.outer).Names[sym.Name] = bf.sym
	}
	r.blockFuncs = nil
}

func (r *Resolver) hoistBlocked(bf blockFunction, name string) bool {
	block := r.table.Scopes.Get(bf.block)
	if block == nil || bf.block == bf.outer {
		return true
	}
	for id := block.Parent; id != NoScopeID; {
		sc := r.table.Scopes.Get(id)
		if sc == nil {
			return true
		}
		if _, ok := sc.Names[name]; ok {
			return true
		}
		if id == bf.outer {
			return false
		}
		id = sc.Parent
	}
	return true
}

// strictAt reports whether fn sits in strict mode code: inside a class or
// under a "use strict" directive of an enclosing function or the script.
func (r *Resolver) strictAt(fn ast.NodeID) bool {
	t := r.tree
	for p := t.Parent(fn); p != ast.NoNodeID; p = t.Parent(p) {
		switch k := t.Kind(p); {
		case k.IsClass(), k == ast.KindModule:
			return true
		case k == ast.KindFunctionBody, k == ast.KindScript:
			if r.hasUseStrict(p) {
				return true
			}
		}
	}
	return false
}

// hasUseStrict scans the directive prologue of a Script or FunctionBody.
func (r *Resolver) hasUseStrict(body ast.NodeID) bool {
	t := r.tree
	for _, c := range t.Children(body) {
		switch t.Kind(c) {
		case ast.KindToken:
			continue // "{" / "}" / EOF
		case ast.KindExpressionStatement:
			lit := t.Child(c, 0)
			if t.Kind(lit) != ast.KindStringLiteral {
				return false
			}
			if txt := t.Text(lit); txt == `"use strict"` || txt == `'use strict'` {
				return true
			}
		default:
			return false
		}
	}
	return false
}
