package checks

import (
	"fmt"

	"github.com/spf13/pflag"

	"sable/internal/ast"
	"sable/internal/check"
	"sable/internal/symbols"
)

// RedeclaredSymbol flags every declaration of a name after the first one in
// the same scope.
type RedeclaredSymbol struct{}

func (*RedeclaredSymbol) Key() string { return "RedeclaredSymbol" }
func (*RedeclaredSymbol) Description() string {
	return "Variables and functions should not be redeclared"
}
func (*RedeclaredSymbol) Kinds() ast.KindSet               { return ast.KindSet{} }
func (*RedeclaredSymbol) Visit(*check.Context, ast.NodeID) {}

func (*RedeclaredSymbol) End(ctx *check.Context) error {
	for _, sym := range ctx.Model.Symbols.Data() {
		if len(sym.Decls) < 2 {
			continue
		}
		first := ctx.Tree.Span(sym.Decls[0])
		line := ctx.Tree.Position(first.Start).Line
		for _, d := range sym.Decls[1:] {
			msg := fmt.Sprintf("Rename %q as this name is already used in declaration at line %d.", sym.Name, line)
			ctx.Report(d, msg).Secondary(sym.Decls[0], "Initial declaration")
		}
	}
	return nil
}

// UnusedVariable flags local variables and functions that are never read.
// Symbols of the global and module scopes are skipped: other scripts or
// exports may use them.
type UnusedVariable struct{}

func (*UnusedVariable) Key() string { return "UnusedVariable" }
func (*UnusedVariable) Description() string {
	return "Unused local variables and functions should be removed"
}
func (*UnusedVariable) Kinds() ast.KindSet               { return ast.KindSet{} }
func (*UnusedVariable) Visit(*check.Context, ast.NodeID) {}

func (*UnusedVariable) End(ctx *check.Context) error {
	syms := ctx.Model.Symbols.Data()
	for i := range syms {
		sym := &syms[i]
		switch sym.Kind {
		case symbols.SymbolVariable, symbols.SymbolLet, symbols.SymbolConst, symbols.SymbolFunction:
		default:
			continue
		}
		if sc := ctx.Model.Scope(sym.Scope); sc == nil || sc.Kind == symbols.ScopeGlobal || sc.Kind == symbols.ScopeModule {
			continue
		}
		if len(sym.Decls) == 0 || isOwnExpressionName(ctx.Tree, sym.Decls[0]) || sym.IsRead() {
			continue
		}
		ctx.Report(sym.Decls[0], fmt.Sprintf("Remove the declaration of the unused '%s' %s.", sym.Name, unusedNoun(sym.Kind)))
	}
	return nil
}

func unusedNoun(k symbols.SymbolKind) string {
	if k == symbols.SymbolFunction {
		return "function"
	}
	return "variable"
}

// isOwnExpressionName: имя `function g() {}` в выражении видно только изнутри.
func isOwnExpressionName(t *ast.Tree, decl ast.NodeID) bool {
	switch t.Kind(t.Parent(decl)) {
	case ast.KindFunctionExpression, ast.KindGeneratorExpression, ast.KindClassExpression:
		return true
	}
	return false
}

// ImplicitGlobal flags references to names that are declared nowhere in
// the file and are not known globals.
type ImplicitGlobal struct {
	// Globals lists extra names provided by the environment, comma separated.
	Globals []string
}

func (*ImplicitGlobal) Key() string                      { return "ImplicitGlobal" }
func (*ImplicitGlobal) Description() string              { return "Variables should be declared explicitly" }
func (*ImplicitGlobal) Kinds() ast.KindSet               { return ast.KindSet{} }
func (*ImplicitGlobal) Visit(*check.Context, ast.NodeID) {}

func (c *ImplicitGlobal) Params(fs *pflag.FlagSet) {
	fs.StringSliceVar(&c.Globals, "globals", nil, "additional global names, comma separated")
}

func (c *ImplicitGlobal) End(ctx *check.Context) error {
	known := make(map[string]bool, len(c.Globals))
	for _, g := range c.Globals {
		known[g] = true
	}
	for _, sym := range ctx.Model.Symbols.Data() {
		if sym.Kind != symbols.SymbolImplicit || known[sym.Name] {
			continue
		}
		for _, u := range sym.Usages {
			if u.IsWrite() {
				ctx.ReportSpan(u.Span, fmt.Sprintf("Add the \"let\", \"const\" or \"var\" keyword to this declaration of %q to make it explicit.", sym.Name))
			} else {
				ctx.ReportSpan(u.Span, fmt.Sprintf("%q is not declared.", sym.Name))
			}
		}
	}
	return nil
}

// UseBeforeDeclaration flags let, const and class bindings referenced
// before their declaration in the same function.
type UseBeforeDeclaration struct{}

func (*UseBeforeDeclaration) Key() string { return "UseBeforeDeclaration" }
func (*UseBeforeDeclaration) Description() string {
	return "Variables should be declared before they are used"
}
func (*UseBeforeDeclaration) Kinds() ast.KindSet               { return ast.KindSet{} }
func (*UseBeforeDeclaration) Visit(*check.Context, ast.NodeID) {}

func (*UseBeforeDeclaration) End(ctx *check.Context) error {
	for _, sym := range ctx.Model.Symbols.Data() {
		for _, u := range sym.Usages {
			if u.Flags&symbols.UsageBeforeDeclaration == 0 {
				continue
			}
			ctx.ReportSpan(u.Span, fmt.Sprintf("Move the declaration of %q before this usage.", sym.Name)).
				Secondary(sym.Decls[0], "Declaration")
		}
	}
	return nil
}
