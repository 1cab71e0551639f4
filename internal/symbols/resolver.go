package symbols

import (
	"cmp"
	"slices"

	"sable/internal/ast"
)

// Resolver drives scope management and declaration/lookup routines for one
// tree. It is not safe for concurrent use; create one per file.
type Resolver struct {
	tree       *ast.Tree
	table      *Table
	builtins   *BuiltinTable
	stack      []ScopeID
	model      *Model
	blockFuncs []blockFunction
}

// NewResolver prepares a resolver with a fresh global scope on the stack.
func NewResolver(tree *ast.Tree, h Hints) *Resolver {
	table := NewTable(h)
	m := &Model{
		Table:    table,
		Tree:     tree,
		scopeOf:  make(map[ast.NodeID]ScopeID),
		symbolOf: make(map[ast.NodeID]SymbolID),
	}
	r := &Resolver{
		tree:     tree,
		table:    table,
		builtins: Builtins(),
		stack:    make([]ScopeID, 0, 16),
		model:    m,
	}
	m.Global = r.Enter(ScopeGlobal, tree.Root)
	return r
}

// CurrentScope returns the scope at the top of the stack.
func (r *Resolver) CurrentScope() ScopeID {
	if len(r.stack) == 0 {
		return NoScopeID
	}
	return r.stack[len(r.stack)-1]
}

// Enter creates a child scope owned by node and pushes it.
func (r *Resolver) Enter(kind ScopeKind, node ast.NodeID) ScopeID {
	scope := r.table.Scopes.New(kind, r.CurrentScope(), node)
	// для корня модуля побеждает модульная область
	r.model.scopeOf[node] = scope
	r.stack = append(r.stack, scope)
	return scope
}

// Leave pops the current scope.
func (r *Resolver) Leave() {
	if len(r.stack) > 0 {
		r.stack = r.stack[:len(r.stack)-1]
	}
}

// push re-enters a scope created by the collection pass.
func (r *Resolver) push(scope ScopeID) { r.stack = append(r.stack, scope) }

// VarScope returns the nearest scope that receives hoisted declarations.
func (r *Resolver) VarScope() ScopeID {
	for i := len(r.stack) - 1; i >= 0; i-- {
		if sc := r.table.Scopes.Get(r.stack[i]); sc != nil && sc.Kind.IsVarScope() {
			return sc.ID
		}
	}
	return r.model.Global
}

// Declare binds the identifier node in scope. A repeated name attaches to
// the existing symbol: the node becomes another declaration site and a
// declaration usage.
func (r *Resolver) Declare(scope ScopeID, node ast.NodeID, kind SymbolKind) SymbolID {
	sc := r.table.Scopes.Get(scope)
	if sc == nil {
		return NoSymbolID
	}
	name := r.tree.Name(node)
	if id, ok := sc.Names[name]; ok {
		sym := r.table.Symbols.Get(id)
		sym.Decls = append(sym.Decls, node)
		sym.Usages = append(sym.Usages, Usage{Node: node, Span: r.tree.Span(node), Flags: UsageDeclaration})
		r.model.symbolOf[node] = id
		return id
	}
	id := r.table.Symbols.New(&Symbol{
		Name:  name,
		Kind:  kind,
		Scope: scope,
		Decls: []ast.NodeID{node},
	})
	sc = r.table.Scopes.Get(scope) // arena may have grown
	sc.Names[name] = id
	sc.Symbols = append(sc.Symbols, id)
	r.model.symbolOf[node] = id
	return id
}

// Lookup searches the scope chain starting at scope.
func (r *Resolver) Lookup(scope ScopeID, name string) SymbolID {
	return r.model.Lookup(scope, name)
}

// globalFallback materialises a built-in or implicit symbol in the global
// scope for an undeclared name.
func (r *Resolver) globalFallback(name string) SymbolID {
	g := r.table.Scopes.Get(r.model.Global)
	if id, ok := g.Names[name]; ok {
		return id
	}
	kind := SymbolImplicit
	if r.builtins.Has(name) {
		kind = SymbolBuiltin
	}
	id := r.table.Symbols.New(&Symbol{Name: name, Kind: kind, Scope: r.model.Global})
	g = r.table.Scopes.Get(r.model.Global)
	g.Names[name] = id
	g.Symbols = append(g.Symbols, id)
	return id
}

// finish orders usages by position; declarations are recorded in the first
// pass and references in the second, so the raw order is not positional.
func (r *Resolver) finish() *Model {
	for i := range r.table.Symbols.Data() {
		sym := &r.table.Symbols.Data()[i]
		slices.SortStableFunc(sym.Usages, func(a, b Usage) int {
			return cmp.Compare(a.Span.Start, b.Span.Start)
		})
	}
	return r.model
}
