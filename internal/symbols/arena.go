package symbols

import (
	"sable/internal/ast"
)

// Scopes владеет всеми областями файла. ID совпадают с 1-based индексами
// ast.Arena, так что NoScopeID (0) никогда не выдаётся.
type Scopes struct {
	arena *ast.Arena[Scope]
}

func NewScopes(capacity uint32) *Scopes {
	return &Scopes{arena: ast.NewArena[Scope](uint(max(capacity, 32)))}
}

// New allocates a scope and links it into its parent's children.
func (s *Scopes) New(kind ScopeKind, parent ScopeID, node ast.NodeID) ScopeID {
	id := ScopeID(s.arena.Allocate(Scope{
		Kind:   kind,
		Parent: parent,
		Node:   node,
		Names:  make(map[string]SymbolID),
	}))
	s.Get(id).ID = id
	if p := s.Get(parent); p != nil {
		p.Children = append(p.Children, id)
	}
	return id
}

// Get returns nil for NoScopeID and out-of-range IDs.
func (s *Scopes) Get(id ScopeID) *Scope { return s.arena.Get(uint32(id)) }

func (s *Scopes) Len() int { return int(s.arena.Len()) }

// Data exposes scopes in creation order; Data()[i] has ID i+1. Read-only.
func (s *Scopes) Data() []Scope { return s.arena.Slice() }

// Symbols владеет всеми символами файла.
type Symbols struct {
	arena *ast.Arena[Symbol]
}

func NewSymbols(capacity uint32) *Symbols {
	return &Symbols{arena: ast.NewArena[Symbol](uint(max(capacity, 64)))}
}

// New copies sym into the arena, stamps its ID and returns it.
func (s *Symbols) New(sym *Symbol) SymbolID {
	if sym == nil {
		panic("symbols.New: nil symbol")
	}
	id := SymbolID(s.arena.Allocate(*sym))
	s.Get(id).ID = id
	sym.ID = id
	return id
}

// Get returns nil for NoSymbolID and out-of-range IDs.
func (s *Symbols) Get(id SymbolID) *Symbol { return s.arena.Get(uint32(id)) }

func (s *Symbols) Len() int { return int(s.arena.Len()) }

// Data exposes symbols in creation order; Data()[i] has ID i+1. Read-only.
func (s *Symbols) Data() []Symbol { return s.arena.Slice() }
