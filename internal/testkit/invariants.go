// Package testkit holds shared assertions for tests and fuzz harnesses.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"sable/internal/ast"
)

// CheckTreeInvariants runs the structural invariants on a parsed tree:
// 1) the root has no parent and every child points back to its parent
// 2) every node with tokens under it lies inside its parent's span and inside the file
// 3) flattening the leaves in order yields Tree.Tokens exactly, EOF included
func CheckTreeInvariants(t *ast.Tree) error {
	if t == nil || t.File == nil {
		return fmt.Errorf("nil tree or file")
	}
	root := t.Node(t.Root)
	if root == nil {
		return fmt.Errorf("root node not found")
	}
	if root.Parent != ast.NoNodeID {
		return fmt.Errorf("root has parent %d", root.Parent)
	}
	lenContent, err := safecast.Conv[uint32](len(t.File.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	var walkErr error
	ast.Inspect(t, t.Root, func(id ast.NodeID) bool {
		if walkErr != nil {
			return false
		}
		n := t.Node(id)
		if n.Span.End > lenContent || n.Span.Start > n.Span.End {
			walkErr = fmt.Errorf("%s span %v outside content [0,%d)", n.Kind, n.Span, lenContent)
			return false
		}
		if n.Span.File != t.File.ID {
			walkErr = fmt.Errorf("%s span file mismatch: got=%d want=%d", n.Kind, n.Span.File, t.File.ID)
			return false
		}
		for _, c := range n.Children {
			child := t.Node(c)
			if child == nil {
				continue
			}
			if child.Parent != id {
				walkErr = fmt.Errorf("%s child %s has parent %d, want %d", n.Kind, child.Kind, child.Parent, id)
				return false
			}
			// узлы без токенов имеют пустой span в начале файла
			if t.FirstToken(c) < 0 {
				continue
			}
			if child.Span.Start < n.Span.Start || child.Span.End > n.Span.End {
				walkErr = fmt.Errorf("%s span %v is outside parent %s span %v", child.Kind, child.Span, n.Kind, n.Span)
				return false
			}
		}
		return true
	})
	if walkErr != nil {
		return walkErr
	}

	// сначала считаем листья: лист может ссылаться за конец потока
	count := 0
	ast.Inspect(t, t.Root, func(id ast.NodeID) bool {
		if t.Kind(id) == ast.KindToken {
			count++
		}
		return true
	})
	if count != len(t.Tokens) {
		return fmt.Errorf("tree has %d leaves, token stream has %d", count, len(t.Tokens))
	}
	leaves := t.Leaves(t.Root)
	for i := range leaves {
		if leaves[i].Kind != t.Tokens[i].Kind || leaves[i].Span != t.Tokens[i].Span {
			return fmt.Errorf("leaf %d is %s %v, token is %s %v", i, leaves[i].Kind, leaves[i].Span, t.Tokens[i].Kind, t.Tokens[i].Span)
		}
	}
	return nil
}
