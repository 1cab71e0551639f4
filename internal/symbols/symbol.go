package symbols

import (
	"strings"

	"sable/internal/ast"
	"sable/internal/source"
)

// SymbolKind classifies the declaration that created a symbol.
type SymbolKind uint8

const (
	SymbolInvalid SymbolKind = iota
	SymbolVariable
	SymbolLet
	SymbolConst
	SymbolFunction
	SymbolParameter
	SymbolClass
	SymbolImport
	SymbolBuiltin
	SymbolImplicit
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolVariable:
		return "variable"
	case SymbolLet:
		return "let"
	case SymbolConst:
		return "const"
	case SymbolFunction:
		return "function"
	case SymbolParameter:
		return "parameter"
	case SymbolClass:
		return "class"
	case SymbolImport:
		return "import"
	case SymbolBuiltin:
		return "built-in"
	case SymbolImplicit:
		return "implicit"
	default:
		return "invalid"
	}
}

// IsLexical reports whether the binding has a temporal dead zone.
func (k SymbolKind) IsLexical() bool {
	return k == SymbolLet || k == SymbolConst || k == SymbolClass
}

// UsageFlags describe a single occurrence of a symbol.
type UsageFlags uint8

const (
	UsageWrite UsageFlags = 1 << iota
	UsageDeclaration
	UsageBeforeDeclaration
)

// Strings returns a slice of textual flag labels.
func (f UsageFlags) Strings() []string {
	if f == 0 {
		return nil
	}
	labels := make([]string, 0, 3)
	if f&UsageWrite != 0 {
		labels = append(labels, "write")
	}
	if f&UsageDeclaration != 0 {
		labels = append(labels, "declaration")
	}
	if f&UsageBeforeDeclaration != 0 {
		labels = append(labels, "before-declaration")
	}
	return labels
}

func (f UsageFlags) String() string { return strings.Join(f.Strings(), "|") }

// Usage is an occurrence of a symbol other than its first declaration.
type Usage struct {
	Node  ast.NodeID
	Span  source.Span
	Flags UsageFlags
}

// IsWrite reports whether the occurrence assigns the symbol.
func (u Usage) IsWrite() bool { return u.Flags&UsageWrite != 0 }

// IsDeclaration reports whether the occurrence is a repeated declaration.
func (u Usage) IsDeclaration() bool { return u.Flags&UsageDeclaration != 0 }

// Symbol is a named binding. Its identity is fixed by the first declaration
// encountered; later declarations of the same name in the same scope extend
// Decls and add a declaration Usage.
type Symbol struct {
	ID     SymbolID
	Name   string
	Kind   SymbolKind
	Scope  ScopeID
	Decls  []ast.NodeID // BindingIdentifier узлы, по порядку
	Usages []Usage
}

// IsGlobalFallback reports whether the symbol was materialised for an
// undeclared reference. The implicit `arguments` of a function counts too,
// though it lives in the function scope.
func (s *Symbol) IsGlobalFallback() bool {
	return s.Kind == SymbolBuiltin || s.Kind == SymbolImplicit
}

// References returns usages that are not declarations.
func (s *Symbol) References() []Usage {
	out := make([]Usage, 0, len(s.Usages))
	for _, u := range s.Usages {
		if !u.IsDeclaration() {
			out = append(out, u)
		}
	}
	return out
}

// IsRead reports whether any usage reads the symbol.
func (s *Symbol) IsRead() bool {
	for _, u := range s.Usages {
		if !u.IsWrite() && !u.IsDeclaration() {
			return true
		}
	}
	return false
}
