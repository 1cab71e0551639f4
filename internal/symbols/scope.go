package symbols

import "sable/internal/ast"

// ScopeKind enumerates supported scope categories.
type ScopeKind uint8

const (
	ScopeInvalid  ScopeKind = iota
	ScopeGlobal             // корень каждого файла; хранит встроенные и неявные глобалы
	ScopeModule             // верхний уровень модуля
	ScopeFunction           // параметры и тело функции
	ScopeBlock              // блок, заголовок for, switch, catch, тело класса
)

func (k ScopeKind) String() string {
	switch k {
	case ScopeGlobal:
		return "global"
	case ScopeModule:
		return "module"
	case ScopeFunction:
		return "function"
	case ScopeBlock:
		return "block"
	default:
		return "invalid"
	}
}

// IsVarScope reports whether `var` and top-level function declarations
// are hoisted into scopes of this kind.
func (k ScopeKind) IsVarScope() bool {
	return k == ScopeGlobal || k == ScopeModule || k == ScopeFunction
}

// Scope models a lexical scope with a parent-child hierarchy. Parent is a
// lookup-only association; all scopes are owned by the Model.
type Scope struct {
	ID       ScopeID
	Kind     ScopeKind
	Parent   ScopeID
	Node     ast.NodeID // узел, открывший область
	Names    map[string]SymbolID
	Symbols  []SymbolID // в порядке объявления
	Children []ScopeID
}
