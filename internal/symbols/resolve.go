package symbols

import "sable/internal/ast"

// Resolve builds the scope tree and symbol table of tree. It never fails:
// an undeclared name becomes a built-in or implicit global symbol.
//
// Resolution runs in two passes. The first creates scopes top-down and
// declares every binding, hoisting `var` and top-level function
// declarations to the nearest function, module or global scope. The second
// attributes every IdentifierReference to the nearest scope that declares
// its name, so references that textually precede a hoisted declaration
// still resolve to the symbol created at that declaration.
//
// In sloppy scripts a function declared inside a block is also visible
// from the enclosing function or global scope (web-compat semantics), unless
// a lexical binding of the same name sits in between.
func Resolve(tree *ast.Tree) *Model {
	return ResolveWithHints(tree, Hints{})
}

// ResolveWithHints is Resolve with arena capacity hints.
func ResolveWithHints(tree *ast.Tree, h Hints) *Model {
	r := NewResolver(tree, h)
	if tree.IsModule() {
		r.model.Module = r.Enter(ScopeModule, tree.Root)
	}
	r.collectChildren(tree.Root)
	r.hoistBlockFunctions()
	r.stack = r.stack[:0]
	r.push(r.model.Global)
	r.resolveChildren(tree.Root)
	return r.finish()
}
