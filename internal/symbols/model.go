package symbols

import "sable/internal/ast"

// Model is the result of resolving one tree. It owns every scope and
// symbol of the file; scope parents and symbol scopes are plain IDs into
// its arenas. Read-only after Resolve returns.
type Model struct {
	*Table
	Tree   *ast.Tree
	Global ScopeID
	Module ScopeID // NoScopeID для скриптов

	scopeOf  map[ast.NodeID]ScopeID
	symbolOf map[ast.NodeID]SymbolID
	byName   map[string][]SymbolID
}

// Root returns the module scope for modules and the global scope otherwise.
func (m *Model) Root() ScopeID {
	if m.Module.IsValid() {
		return m.Module
	}
	return m.Global
}

func (m *Model) Scope(id ScopeID) *Scope { return m.Scopes.Get(id) }

func (m *Model) Symbol(id SymbolID) *Symbol { return m.Symbols.Get(id) }

// ScopeOf returns the innermost scope enclosing node. A node that opens a
// scope (function, block, class...) maps to the scope it opens.
func (m *Model) ScopeOf(node ast.NodeID) ScopeID {
	for id := node; id != ast.NoNodeID; id = m.Tree.Parent(id) {
		if id == m.Tree.Root {
			return m.Root()
		}
		if scope, ok := m.scopeOf[id]; ok {
			return scope
		}
	}
	return m.Root()
}

// SymbolOf returns the symbol bound to a BindingIdentifier or referenced by
// an IdentifierReference.
func (m *Model) SymbolOf(ident ast.NodeID) SymbolID { return m.symbolOf[ident] }

// Lookup searches the scope chain starting at scope.
func (m *Model) Lookup(scope ScopeID, name string) SymbolID {
	for sc := m.Scopes.Get(scope); sc != nil; sc = m.Scopes.Get(sc.Parent) {
		if id, ok := sc.Names[name]; ok {
			return id
		}
	}
	return NoSymbolID
}

// SymbolsNamed returns every symbol called name, in creation order.
func (m *Model) SymbolsNamed(name string) []SymbolID {
	if m.byName == nil {
		m.byName = make(map[string][]SymbolID, m.Symbols.Len())
		for _, sym := range m.Symbols.Data() {
			m.byName[sym.Name] = append(m.byName[sym.Name], sym.ID)
		}
	}
	return m.byName[name]
}

// VarScope returns the nearest function, module or global scope.
func (m *Model) VarScope(scope ScopeID) ScopeID {
	for sc := m.Scopes.Get(scope); sc != nil; sc = m.Scopes.Get(sc.Parent) {
		if sc.Kind.IsVarScope() {
			return sc.ID
		}
	}
	return m.Global
}

// DeclSpan returns the span of the symbol's first declaration, or of its
// first usage for built-in and implicit globals.
func (m *Model) DeclSpan(sym *Symbol) (start, end uint32, ok bool) {
	switch {
	case len(sym.Decls) > 0:
		sp := m.Tree.Span(sym.Decls[0])
		return sp.Start, sp.End, true
	case len(sym.Usages) > 0:
		sp := sym.Usages[0].Span
		return sp.Start, sp.End, true
	}
	return 0, 0, false
}
