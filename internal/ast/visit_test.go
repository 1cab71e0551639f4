package ast_test

import (
	"testing"

	"sable/internal/ast"
)

type countingVisitor struct {
	kinds []ast.Kind
	ends  int
}

func (v *countingVisitor) Visit(t *ast.Tree, id ast.NodeID) ast.Visitor {
	if id == ast.NoNodeID {
		v.ends++
		return nil
	}
	v.kinds = append(v.kinds, t.Kind(id))
	return v
}

func TestWalkPreorder(t *testing.T) {
	tree := buildAssign(t)
	v := &countingVisitor{}
	ast.Walk(v, tree, tree.Root)

	want := []ast.Kind{
		ast.KindScript, ast.KindExpressionStatement, ast.KindAssignment,
		ast.KindIdentifierReference, ast.KindToken, ast.KindToken,
		ast.KindIdentifierReference, ast.KindToken, ast.KindToken, ast.KindToken,
	}
	if len(v.kinds) != len(want) {
		t.Fatalf("visited %v", v.kinds)
	}
	for i := range want {
		if v.kinds[i] != want[i] {
			t.Fatalf("node %d: got %v want %v", i, v.kinds[i], want[i])
		}
	}
	if v.ends != len(want) {
		t.Fatalf("end calls = %d", v.ends)
	}
}

func TestPreorderMatchesWalk(t *testing.T) {
	tree := buildAssign(t)
	set := ast.NewKindSet(ast.KindIdentifierReference, ast.KindAssignment)
	var got []string
	tree.Preorder(set, func(id ast.NodeID) { got = append(got, tree.Text(id)) })
	want := []string{"x = y", "x", "y"}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v want %v", got, want)
		}
	}
}

func TestDispatcher(t *testing.T) {
	tree := buildAssign(t)
	refs, other := 0, 0
	d := (&ast.Dispatcher{Default: func(*ast.Tree, ast.NodeID) { other++ }}).
		On(func(*ast.Tree, ast.NodeID) { refs++ }, ast.KindIdentifierReference)
	ast.Walk(d, tree, tree.Root)
	if refs != 2 || other != 8 {
		t.Fatalf("refs=%d other=%d", refs, other)
	}
	if !tree.Accept(tree.Root, d) || !d.Handles(ast.KindIdentifierReference) || d.Handles(ast.KindCall) {
		t.Fatalf("Accept/Handles mismatch")
	}
}

func TestKindSet(t *testing.T) {
	s := ast.NewKindSet(ast.KindToken, ast.KindYield)
	if !s.Has(ast.KindYield) || s.Has(ast.KindCall) || s.Empty() {
		t.Fatalf("membership broken")
	}
	u := s.Union(ast.NewKindSet(ast.KindCall))
	if got := u.Kinds(); len(got) != 3 || got[0] != ast.KindToken || got[2] != ast.KindYield {
		t.Fatalf("Kinds = %v", got)
	}
	all := ast.AllKinds()
	for k := ast.KindToken; k < ast.KindCount; k++ {
		if !all.Has(k) {
			t.Fatalf("AllKinds misses %v", k)
		}
		if k.String() == "Kind(?)" {
			t.Fatalf("kind %d has no name", k)
		}
		if back, ok := ast.KindByName(k.String()); !ok || back != k {
			t.Fatalf("KindByName(%s) = %v", k, back)
		}
	}
}
