package parser_test

import (
	"testing"

	"sable/internal/parser"
)

func TestExpressionShapes(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"a + b * c", "(Binary ref:a (Binary ref:b ref:c))"},
		{"a - b - c", "(Binary (Binary ref:a ref:b) ref:c)"},
		{"a || b && c", "(Binary ref:a (Binary ref:b ref:c))"},
		{"a = b = c", "(Assignment ref:a (Assignment ref:b ref:c))"},
		{"a += 1", "(Assignment ref:a 1)"},
		{"x ? y : z", "(Conditional ref:x ref:y ref:z)"},
		{"a, b", "(Comma ref:a ref:b)"},
		{"new Foo", "(New ref:Foo _)"},
		{"new Foo(1).bar()", "(Call (MemberDot (New ref:Foo (ArgumentList 1)) prop:bar) (ArgumentList))"},
		{"new a.b.c()", "(New (MemberDot (MemberDot ref:a prop:b) prop:c) (ArgumentList))"},
		{"a.b[c](d)", "(Call (MemberBracket (MemberDot ref:a prop:b) ref:c) (ArgumentList ref:d))"},
		{"a.class.new", "(MemberDot (MemberDot ref:a prop:class) prop:new)"},
		{"tag`x${y}z`", "(TaggedTemplate ref:tag (TemplateLiteral ref:y))"},
		{"`a${b}c${d}e`", "(TemplateLiteral ref:b ref:d)"},
		{"-x++", "(Unary (Postfix ref:x))"},
		{"typeof a === 'b'", "(Binary (Unary ref:a) 'b')"},
		{"!a instanceof B", "(Binary (Unary ref:a) ref:B)"},
		{"'k' in o", "(Binary 'k' ref:o)"},
		{"x => x * 2", "(ArrowFunction bind:x (Binary ref:x 2))"},
		{"(a, b = 1, ...c) => {}", "(ArrowFunction (ParameterList bind:a (BindingElement bind:b 1) (RestElement bind:c)) (FunctionBody))"},
		{"() => ({})", "(ArrowFunction (ParameterList) (ParenthesizedExpression (ObjectLiteral)))"},
		{"({a}) => a", "(ArrowFunction (ParameterList (ObjectBindingPattern bind:a)) ref:a)"},
		{"(a, b)", "(ParenthesizedExpression (Comma ref:a ref:b))"},
		{"[a, , ...b]", "(ArrayLiteral ref:a _ (Spread ref:b))"},
		{"[, a]", "(ArrayLiteral _ ref:a)"},
		{"[a, b] = [b, a]", "(Assignment (ArrayLiteral ref:a ref:b) (ArrayLiteral ref:b ref:a))"},
		{"({a, b: 1, [c]: 2, d() {}, get e() {}, *f() {}, set: 3})",
			"(ParenthesizedExpression (ObjectLiteral ref:a (PairProperty prop:b 1) (PairProperty (ComputedPropertyName ref:c) 2) " +
				"(Method _ _ prop:d (ParameterList) (FunctionBody)) (Getter _ prop:e (ParameterList) (FunctionBody)) " +
				"(GeneratorMethod _ prop:f (ParameterList) (FunctionBody)) (PairProperty prop:set 3)))"},
		{"({a = 1} = b)", "(ParenthesizedExpression (Assignment (ObjectLiteral (InitializedName ref:a 1)) ref:b))"},
		{"f(...args, 1)", "(Call ref:f (ArgumentList (Spread ref:args) 1))"},
		{"/ab+c/g.test(s)", "(Call (MemberDot /ab+c/g prop:test) (ArgumentList ref:s))"},
		{"a / b / c", "(Binary (Binary ref:a ref:b) ref:c)"},
		{"this.x = null", "(Assignment (MemberDot (This) prop:x) null)"},
		{"(function () {})()", "(Call (ParenthesizedExpression (FunctionExpression _ _ (ParameterList) (FunctionBody))) (ArgumentList))"},
		{"(class extends B {})", "(ParenthesizedExpression (ClassExpression _ (ClassHeritage ref:B)))"},
		{"new.target", "(NewTarget)"},
		{"void 0", "(Unary 0)"},
		{"a >>>= 2", "(Assignment ref:a 2)"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			tree := parseSource(t, tt.src, parser.GoalScript)
			if got := sexpr(tree, firstExpr(t, tree)); got != tt.want {
				t.Fatalf("got  %s\nwant %s", got, tt.want)
			}
		})
	}
}

func TestYieldOnlyInGenerators(t *testing.T) {
	tree := parseSource(t, "function* g() { yield; yield* a; yield b }", parser.GoalScript)
	want := "(Script (GeneratorDeclaration bind:g (ParameterList) (FunctionBody " +
		"(ExpressionStatement (Yield _ _)) (ExpressionStatement (Yield ref:a)) (ExpressionStatement (Yield _ ref:b) _))))"
	if got := sexpr(tree, tree.Root); got != want {
		t.Fatalf("got  %s\nwant %s", got, want)
	}

	// вне генератора yield: обычный идентификатор
	tree = parseSource(t, "yield = 1", parser.GoalScript)
	if got := sexpr(tree, firstExpr(t, tree)); got != "(Assignment ref:yield 1)" {
		t.Fatalf("got %s", got)
	}
}
