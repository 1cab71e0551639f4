package parser_test

import (
	"strings"
	"testing"

	"sable/internal/ast"
	"sable/internal/diag"
	"sable/internal/lexer"
	"sable/internal/parser"
	"sable/internal/source"
)

// parseSource токенизирует и разбирает src; ошибки: фатальны.
func parseSource(t *testing.T, src string, goal parser.Goal) *ast.Tree {
	t.Helper()
	tree, err := tryParse(t, src, goal)
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	return tree
}

func tryParse(t *testing.T, src string, goal parser.Goal) (*ast.Tree, error) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.js", []byte(src)))
	toks, err := lexer.Tokenize(file)
	if err != nil {
		t.Fatalf("Tokenize(%q): %v", src, err)
	}
	return parser.Parse(file, toks, parser.Options{Goal: goal})
}

// sexpr печатает поддерево без листьев-токенов: пустые слоты как "_",
// идентификаторы как ref:/bind:/prop:/label:, литералы их текстом.
func sexpr(tree *ast.Tree, id ast.NodeID) string {
	var sb strings.Builder
	writeSexpr(&sb, tree, id)
	return sb.String()
}

func writeSexpr(sb *strings.Builder, tree *ast.Tree, id ast.NodeID) {
	if id == ast.NoNodeID {
		sb.WriteString("_")
		return
	}
	switch tree.Kind(id) {
	case ast.KindIdentifierReference:
		sb.WriteString("ref:" + tree.Name(id))
		return
	case ast.KindBindingIdentifier:
		sb.WriteString("bind:" + tree.Name(id))
		return
	case ast.KindPropertyIdentifier:
		sb.WriteString("prop:" + tree.Name(id))
		return
	case ast.KindLabelIdentifier:
		sb.WriteString("label:" + tree.Name(id))
		return
	case ast.KindNumericLiteral, ast.KindStringLiteral, ast.KindBooleanLiteral,
		ast.KindNullLiteral, ast.KindRegExpLiteral:
		sb.WriteString(tree.Text(id))
		return
	}
	sb.WriteString("(" + tree.Kind(id).String())
	for _, c := range tree.Children(id) {
		if c != ast.NoNodeID && tree.Kind(c) == ast.KindToken {
			continue
		}
		sb.WriteString(" ")
		writeSexpr(sb, tree, c)
	}
	sb.WriteString(")")
}

// firstExpr возвращает выражение первой инструкции-выражения.
func firstExpr(t *testing.T, tree *ast.Tree) ast.NodeID {
	t.Helper()
	stmt := tree.Child(tree.Root, 0)
	if tree.Kind(stmt) != ast.KindExpressionStatement {
		t.Fatalf("first item is %v, want ExpressionStatement", tree.Kind(stmt))
	}
	return tree.Child(stmt, 0)
}

// collectReporter собирает диагностики
type collectReporter struct {
	items []diag.Diagnostic
}

func (r *collectReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	r.items = append(r.items, diag.Diagnostic{Severity: sev, Code: code, Message: msg, Primary: primary, Notes: notes})
}
