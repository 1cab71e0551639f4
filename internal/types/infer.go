package types

import (
	"sable/internal/ast"
	"sable/internal/symbols"
	"sable/internal/token"
)

// Result holds the inferred tag sets of one file.
type Result struct {
	model     *symbols.Model
	tree      *ast.Tree
	table     *Table
	tags      map[symbols.SymbolID]Set
	functions map[symbols.SymbolID][]ast.NodeID
}

// evidence: узлы, которые могут добавить теги символу.
var evidence = ast.NewKindSet(
	ast.KindVarDeclaration, ast.KindAssignment,
	ast.KindFunctionDeclaration, ast.KindGeneratorDeclaration,
	ast.KindFunctionExpression, ast.KindGeneratorExpression,
	ast.KindClassDeclaration, ast.KindClassExpression,
)

// Infer tags symbols from syntactic evidence in one source-order pass.
// Evidence only adds tags. An identifier on the right-hand side contributes
// the tags its symbol has at that point of the pass, so a subclass takes
// its base's tags as they are when the subclass is declared.
func Infer(model *symbols.Model, tree *ast.Tree, table *Table) *Result {
	if table == nil {
		table = DefaultTable()
	}
	r := &Result{
		model:     model,
		tree:      tree,
		table:     table,
		tags:      make(map[symbols.SymbolID]Set),
		functions: make(map[symbols.SymbolID][]ast.NodeID),
	}
	tree.Preorder(evidence, r.observe)
	return r
}

func (r *Result) observe(id ast.NodeID) {
	t := r.tree
	switch t.Kind(id) {
	case ast.KindVarDeclaration:
		target, init := t.Child(id, 0), t.Child(id, 2)
		if init != ast.NoNodeID && t.Kind(target) == ast.KindBindingIdentifier {
			r.bind(r.model.SymbolOf(target), init)
		}
	case ast.KindAssignment:
		target := t.Unparen(t.Child(id, 0))
		if t.TokenKind(t.Child(id, 1)) == token.Assign && t.Kind(target) == ast.KindIdentifierReference {
			r.bind(r.model.SymbolOf(target), t.Child(id, 2))
		}
	case ast.KindFunctionDeclaration, ast.KindGeneratorDeclaration,
		ast.KindFunctionExpression, ast.KindGeneratorExpression:
		if name := t.Child(id, 2); name != ast.NoNodeID {
			sym := r.model.SymbolOf(name)
			r.add(sym, NewSet(TagFunction))
			r.functions[sym] = append(r.functions[sym], id)
		}
	case ast.KindClassDeclaration, ast.KindClassExpression:
		if name := t.Child(id, 1); name != ast.NoNodeID {
			r.add(r.model.SymbolOf(name), NewSet(TagClass))
		}
	}
}

// bind записывает значение выражения в символ.
func (r *Result) bind(sym symbols.SymbolID, value ast.NodeID) {
	if !sym.IsValid() {
		return
	}
	value = r.tree.Unparen(value)
	r.add(sym, r.exprTags(value))
	switch k := r.tree.Kind(value); {
	case isFunctionLiteral(k):
		r.functions[sym] = append(r.functions[sym], value)
	case k == ast.KindIdentifierReference:
		// `var alias = F` разделяет функции F
		r.functions[sym] = append(r.functions[sym], r.functions[r.model.SymbolOf(value)]...)
	}
}

func (r *Result) add(sym symbols.SymbolID, s Set) {
	if sym.IsValid() && !s.Empty() {
		r.tags[sym] = r.tags[sym].Union(s)
	}
}

func isFunctionLiteral(k ast.Kind) bool {
	switch k {
	case ast.KindFunctionExpression, ast.KindGeneratorExpression, ast.KindArrowFunction:
		return true
	}
	return false
}

// Of returns the tags of a symbol.
func (r *Result) Of(sym symbols.SymbolID) Set { return r.tags[sym] }

// Functions returns the function nodes (declarations and function-valued
// initialisers or assignments) bound to sym, in source order. Binding an
// identifier copies the functions known for it at that point.
func (r *Result) Functions(sym symbols.SymbolID) []ast.NodeID { return r.functions[sym] }

// ExprTags returns the tags of an expression given the final symbol tags.
func (r *Result) ExprTags(node ast.NodeID) Set {
	return r.exprTags(r.tree.Unparen(node))
}

func (r *Result) exprTags(e ast.NodeID) Set {
	t := r.tree
	switch t.Kind(e) {
	case ast.KindObjectLiteral:
		return NewSet(TagObject)
	case ast.KindArrayLiteral:
		return NewSet(TagArray)
	case ast.KindFunctionExpression, ast.KindGeneratorExpression, ast.KindArrowFunction,
		ast.KindFunctionDeclaration, ast.KindGeneratorDeclaration:
		return NewSet(TagFunction)
	case ast.KindClassExpression, ast.KindClassDeclaration:
		return NewSet(TagClass)
	case ast.KindStringLiteral, ast.KindTemplateLiteral:
		return NewSet(TagString)
	case ast.KindNumericLiteral:
		return NewSet(TagNumber)
	case ast.KindBooleanLiteral:
		return NewSet(TagBoolean)
	case ast.KindRegExpLiteral:
		return NewSet(TagRegExp)
	case ast.KindIdentifierReference:
		return r.tags[r.model.SymbolOf(e)]
	case ast.KindParenthesizedExpression:
		return r.exprTags(t.Unparen(e))
	case ast.KindAssignment:
		return r.exprTags(t.Unparen(t.Child(e, 2)))
	case ast.KindCall:
		return r.callTags(e)
	case ast.KindNew:
		return r.newTags(e)
	}
	return 0
}

func (r *Result) callTags(call ast.NodeID) Set {
	t := r.tree
	callee := t.Unparen(t.Child(call, 0))
	switch t.Kind(callee) {
	case ast.KindIdentifierReference:
		tag, ok := r.table.call(t.Name(callee))
		if !ok {
			return 0
		}
		// локально объявленная `$`: уже не jQuery
		if sym := r.model.Symbol(r.model.SymbolOf(callee)); sym == nil || !sym.IsGlobalFallback() {
			return 0
		}
		return NewSet(tag)
	case ast.KindMemberDot:
		obj := t.Unparen(t.Child(callee, 0))
		method := t.Name(t.Child(callee, 2))
		var out Set
		for _, p := range r.table.Extends {
			if p.Method != method {
				continue
			}
			if dottedName(t, obj) == p.Base || r.exprTags(obj).Has(p.ClassTag) {
				out = out.Add(p.ClassTag)
			}
		}
		return out
	}
	return 0
}

func (r *Result) newTags(n ast.NodeID) Set {
	ctor := r.exprTags(r.tree.Unparen(r.tree.Child(n, 1)))
	var out Set
	for _, p := range r.table.Extends {
		if ctor.Has(p.ClassTag) {
			out = out.Add(p.InstanceTag)
		}
	}
	if out.Empty() && (ctor.Has(TagClass) || ctor.Has(TagFunction)) {
		out = NewSet(TagObject)
	}
	return out
}

// dottedName: `a.b.c` для цепочки MemberDot от идентификатора, иначе "".
func dottedName(t *ast.Tree, e ast.NodeID) string {
	switch t.Kind(e) {
	case ast.KindIdentifierReference:
		return t.Name(e)
	case ast.KindMemberDot:
		if base := dottedName(t, t.Unparen(t.Child(e, 0))); base != "" {
			return base + "." + t.Name(t.Child(e, 2))
		}
	}
	return ""
}
