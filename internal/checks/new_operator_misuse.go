package checks

import (
	"regexp"
	"strings"

	"github.com/spf13/pflag"

	"sable/internal/ast"
	"sable/internal/check"
	"sable/internal/types"
)

// NewOperatorMisuse flags `new` applied to values that are known not to be
// constructors. Only callees with exactly one inferred tag are judged.
type NewOperatorMisuse struct {
	// ConsiderJSDoc also requires plain functions to carry a JSDoc
	// @constructor or @class tag.
	ConsiderJSDoc bool
}

func (*NewOperatorMisuse) Key() string { return "NewOperatorMisuse" }
func (*NewOperatorMisuse) Description() string {
	return "\"new\" operators should be used with functions"
}
func (*NewOperatorMisuse) Kinds() ast.KindSet { return ast.NewKindSet(ast.KindNew) }

func (c *NewOperatorMisuse) Params(fs *pflag.FlagSet) {
	fs.BoolVar(&c.ConsiderJSDoc, "considerJSDoc", false,
		"require functions used with new to be documented with @constructor or @class")
}

func (c *NewOperatorMisuse) Visit(ctx *check.Context, id ast.NodeID) {
	t := ctx.Tree
	callee := t.Child(id, 1)
	res := ctx.Types()
	tag, ok := res.ExprTags(callee).Unique()
	if !ok {
		return
	}
	switch {
	case tag == types.TagFunction:
		if !c.ConsiderJSDoc || c.documented(ctx, res, t.Unparen(callee)) {
			return
		}
	case tag.IsConstructor():
		return
	}
	ctx.Report(callee, "Replace "+t.Text(callee)+" with a constructor function.")
}

// documented reports whether some function bound to the callee has a
// constructor JSDoc.
func (c *NewOperatorMisuse) documented(ctx *check.Context, res *types.Result, callee ast.NodeID) bool {
	fns := []ast.NodeID{callee}
	if ctx.Tree.Kind(callee) == ast.KindIdentifierReference {
		fns = res.Functions(ctx.Model.SymbolOf(callee))
	}
	for _, fn := range fns {
		if hasConstructorDoc(ctx.Tree, fn) {
			return true
		}
	}
	return false
}

var constructorTag = regexp.MustCompile(`@(?:constructor|class)\b`)

// docCarriers: узлы, чей первый токен может нести JSDoc функции:
// `/** @constructor */ var F = function () {};`
var docCarriers = ast.NewKindSet(
	ast.KindVarDeclaration, ast.KindVarDeclarations, ast.KindVarStatement,
	ast.KindAssignment, ast.KindExpressionStatement, ast.KindParenthesizedExpression,
	ast.KindExportDeclaration, ast.KindExportDefault,
)

func hasConstructorDoc(t *ast.Tree, fn ast.NodeID) bool {
	for id := fn; id != ast.NoNodeID; id = t.Parent(id) {
		if id != fn && !docCarriers.Has(t.Kind(id)) {
			return false
		}
		first := t.FirstToken(id)
		if first < 0 {
			return false
		}
		for _, tr := range t.Tokens[first].Leading {
			if isJSDoc(tr.Text) && constructorTag.MatchString(tr.Text) {
				return true
			}
		}
	}
	return false
}

func isJSDoc(comment string) bool {
	return strings.HasPrefix(comment, "/**") && comment != "/**/"
}
