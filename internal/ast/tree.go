package ast

import (
	"sable/internal/source"
	"sable/internal/token"
)

// Tree is the read-only syntax tree of one file. Flattening its KindToken
// leaves in order yields Tokens exactly, EOF included.
type Tree struct {
	File   *source.File
	Tokens []token.Token
	Root   NodeID
	nodes  *Arena[Node]
}

// Len returns the number of nodes, leaves included.
func (t *Tree) Len() int { return len(t.nodes.Slice()) }

// Node returns the node for id or nil for NoNodeID.
func (t *Tree) Node(id NodeID) *Node { return t.nodes.Get(uint32(id)) }

// Kind returns KindInvalid for NoNodeID.
func (t *Tree) Kind(id NodeID) Kind {
	if n := t.Node(id); n != nil {
		return n.Kind
	}
	return KindInvalid
}

// IsModule reports whether the file was parsed with the module goal.
func (t *Tree) IsModule() bool { return t.Kind(t.Root) == KindModule }

// Children returns the child slots of id, nulls included. Read-only.
func (t *Tree) Children(id NodeID) []NodeID {
	if n := t.Node(id); n != nil {
		return n.Children
	}
	return nil
}

// Child returns the i-th child slot or NoNodeID when out of range.
func (t *Tree) Child(id NodeID, i int) NodeID {
	kids := t.Children(id)
	if i < 0 || i >= len(kids) {
		return NoNodeID
	}
	return kids[i]
}

func (t *Tree) Parent(id NodeID) NodeID {
	if n := t.Node(id); n != nil {
		return n.Parent
	}
	return NoNodeID
}

func (t *Tree) Span(id NodeID) source.Span {
	if n := t.Node(id); n != nil {
		return n.Span
	}
	return source.Span{}
}

// Text returns the source text covered by id.
func (t *Tree) Text(id NodeID) string {
	sp := t.Span(id)
	if sp.End <= sp.Start {
		return ""
	}
	return string(t.File.Content[sp.Start:sp.End])
}

// Token returns the token of a KindToken leaf, nil otherwise.
func (t *Tree) Token(id NodeID) *token.Token {
	n := t.Node(id)
	if n == nil || n.Kind != KindToken || n.Tok < 0 || int(n.Tok) >= len(t.Tokens) {
		return nil
	}
	return &t.Tokens[n.Tok]
}

// TokenKind returns the token kind of a leaf, token.Invalid otherwise.
func (t *Tree) TokenKind(id NodeID) token.Kind {
	if tok := t.Token(id); tok != nil {
		return tok.Kind
	}
	return token.Invalid
}

// FirstToken returns the index of the first token under id, or -1.
func (t *Tree) FirstToken(id NodeID) int {
	n := t.Node(id)
	if n == nil {
		return -1
	}
	if n.Kind == KindToken {
		return int(n.Tok)
	}
	for _, c := range n.Children {
		if i := t.FirstToken(c); i >= 0 {
			return i
		}
	}
	return -1
}

// LastToken returns the index of the last token under id, or -1.
func (t *Tree) LastToken(id NodeID) int {
	n := t.Node(id)
	if n == nil {
		return -1
	}
	if n.Kind == KindToken {
		return int(n.Tok)
	}
	for i := len(n.Children) - 1; i >= 0; i-- {
		if j := t.LastToken(n.Children[i]); j >= 0 {
			return j
		}
	}
	return -1
}

// Leaves returns the tokens under id in source order.
func (t *Tree) Leaves(id NodeID) []token.Token {
	var out []token.Token
	Inspect(t, id, func(n NodeID) bool {
		if tok := t.Token(n); tok != nil {
			out = append(out, *tok)
		}
		return true
	})
	return out
}

// Name returns the identifier text of an identifier node (binding,
// reference, property or label) or of a token leaf.
func (t *Tree) Name(id NodeID) string {
	switch t.Kind(id) {
	case KindToken:
		return t.Token(id).Text
	case KindBindingIdentifier, KindIdentifierReference, KindPropertyIdentifier, KindLabelIdentifier:
		if tok := t.Token(t.Child(id, 0)); tok != nil {
			return tok.Text
		}
	}
	return ""
}

// Position returns the 1-based line and column of a byte offset.
func (t *Tree) Position(off uint32) source.LineCol {
	return t.File.Position(off)
}

// Ancestor returns the closest proper ancestor of id whose kind is in set.
func (t *Tree) Ancestor(id NodeID, set KindSet) NodeID {
	for p := t.Parent(id); p != NoNodeID; p = t.Parent(p) {
		if set.Has(t.Kind(p)) {
			return p
		}
	}
	return NoNodeID
}

// Unparen strips ParenthesizedExpression wrappers.
func (t *Tree) Unparen(id NodeID) NodeID {
	for t.Kind(id) == KindParenthesizedExpression {
		id = t.Child(id, 1)
	}
	return id
}
