package checks

import (
	"fmt"

	"github.com/spf13/pflag"

	"sable/internal/ast"
	"sable/internal/check"
)

const defaultMaximumFunctionParameters = 7

// ExcessiveParameterList flags functions declaring more parameters than allowed.
type ExcessiveParameterList struct {
	Maximum int
}

func NewExcessiveParameterList() *ExcessiveParameterList {
	return &ExcessiveParameterList{Maximum: defaultMaximumFunctionParameters}
}

func (*ExcessiveParameterList) Key() string { return "ExcessiveParameterList" }
func (*ExcessiveParameterList) Description() string {
	return "Functions should not have too many parameters"
}

func (*ExcessiveParameterList) Kinds() ast.KindSet {
	return ast.NewKindSet(
		ast.KindFunctionDeclaration, ast.KindFunctionExpression,
		ast.KindGeneratorDeclaration, ast.KindGeneratorExpression,
		ast.KindArrowFunction, ast.KindMethod, ast.KindGeneratorMethod,
		ast.KindGetter, ast.KindSetter,
	)
}

func (c *ExcessiveParameterList) Params(fs *pflag.FlagSet) {
	fs.IntVar(&c.Maximum, "maximumFunctionParameters", defaultMaximumFunctionParameters,
		"maximum authorized number of parameters")
}

func (c *ExcessiveParameterList) Visit(ctx *check.Context, id ast.NodeID) {
	t := ctx.Tree
	params := t.Child(id, 3)
	if t.Kind(id) == ast.KindArrowFunction {
		params = t.Child(id, 0)
	}
	if t.Kind(params) != ast.KindParameterList {
		return // `x => ...`
	}
	n := 0
	for _, p := range t.Children(params) {
		if t.Kind(p) != ast.KindToken {
			n++
		}
	}
	if n > c.Maximum {
		ctx.Report(params, fmt.Sprintf("Function has %d parameters which is greater than %d authorized.", n, c.Maximum))
	}
}
