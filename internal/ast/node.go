package ast

import (
	"sable/internal/source"
)

// Node is a frozen tree node. Children may contain NoNodeID placeholders
// for absent optional elements; their positions are fixed by the Kind.
type Node struct {
	Kind     Kind
	Span     source.Span
	Children []NodeID
	Parent   NodeID
	// Tok: индекс токена в Tree.Tokens для KindToken, иначе -1.
	Tok int32
}

// IsLeaf reports whether the node wraps a token.
func (n *Node) IsLeaf() bool { return n.Kind == KindToken }
