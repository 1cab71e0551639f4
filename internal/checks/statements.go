package checks

import (
	"fmt"

	"sable/internal/ast"
	"sable/internal/check"
	"sable/internal/token"
)

// WithStatement flags every `with` statement.
type WithStatement struct{}

func (*WithStatement) Key() string         { return "WithStatement" }
func (*WithStatement) Description() string { return "\"with\" statements should not be used" }
func (*WithStatement) Kinds() ast.KindSet  { return ast.NewKindSet(ast.KindWithStatement) }

func (*WithStatement) Visit(ctx *check.Context, id ast.NodeID) {
	ctx.Report(ctx.Tree.Child(id, 0), "Remove this use of \"with\".")
}

// DebuggerStatement flags `debugger` statements left in code.
type DebuggerStatement struct{}

func (*DebuggerStatement) Key() string         { return "DebuggerStatement" }
func (*DebuggerStatement) Description() string { return "Debugger statements should not be used" }
func (*DebuggerStatement) Kinds() ast.KindSet  { return ast.NewKindSet(ast.KindDebuggerStatement) }

func (*DebuggerStatement) Visit(ctx *check.Context, id ast.NodeID) {
	ctx.Report(id, "Remove this debugger statement.")
}

// EqEqEq flags the coercing equality operators.
type EqEqEq struct{}

func (*EqEqEq) Key() string { return "EqEqEq" }
func (*EqEqEq) Description() string {
	return "\"===\" and \"!==\" should be used instead of \"==\" and \"!=\""
}
func (*EqEqEq) Kinds() ast.KindSet { return ast.NewKindSet(ast.KindBinary) }

func (*EqEqEq) Visit(ctx *check.Context, id ast.NodeID) {
	op := ctx.Tree.Child(id, 1)
	var strict string
	switch ctx.Tree.TokenKind(op) {
	case token.EqEq:
		strict = "==="
	case token.BangEq:
		strict = "!=="
	default:
		return
	}
	ctx.Report(op, fmt.Sprintf("Replace %q with %q.", ctx.Tree.Text(op), strict))
}
