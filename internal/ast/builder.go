package ast

import (
	"fmt"

	"fortio.org/safecast"

	"sable/internal/source"
	"sable/internal/token"
)

// Builder allocates nodes for one file. Nodes created through Node, Token or
// Partial.Freeze are frozen: nothing in the package mutates them afterwards
// except Finish, which links parents.
type Builder struct {
	file   *source.File
	tokens []token.Token
	nodes  *Arena[Node]
	done   bool
}

func NewBuilder(file *source.File, tokens []token.Token) *Builder {
	hint, err := safecast.Conv[uint](len(tokens) * 2)
	if err != nil {
		hint = 0
	}
	return &Builder{
		file:   file,
		tokens: tokens,
		nodes:  NewArena[Node](hint),
	}
}

// Token creates a leaf for tokens[i].
func (b *Builder) Token(i int) NodeID {
	idx, err := safecast.Conv[int32](i)
	if err != nil {
		panic(fmt.Errorf("token index overflow: %w", err))
	}
	return NodeID(b.nodes.Allocate(Node{
		Kind: KindToken,
		Span: b.tokens[i].Span,
		Tok:  idx,
	}))
}

// Node creates a frozen node with the given children (NoNodeID allowed).
func (b *Builder) Node(kind Kind, children ...NodeID) NodeID {
	if b.done {
		panic("ast: Builder used after Finish")
	}
	kids := make([]NodeID, len(children))
	copy(kids, children)
	return NodeID(b.nodes.Allocate(Node{
		Kind:     kind,
		Span:     b.cover(kids),
		Children: kids,
		Tok:      -1,
	}))
}

// Kind returns the kind of an already created node.
func (b *Builder) Kind(id NodeID) Kind {
	if n := b.nodes.Get(uint32(id)); n != nil {
		return n.Kind
	}
	return KindInvalid
}

// Children returns the children of an already created node.
// The slice must not be modified.
func (b *Builder) Children(id NodeID) []NodeID {
	if n := b.nodes.Get(uint32(id)); n != nil {
		return n.Children
	}
	return nil
}

func (b *Builder) cover(kids []NodeID) source.Span {
	sp := source.Span{File: b.file.ID}
	first := true
	for _, c := range kids {
		n := b.nodes.Get(uint32(c))
		if n == nil {
			continue
		}
		if first {
			sp.Start, sp.End = n.Span.Start, n.Span.End
			first = false
			continue
		}
		sp = sp.Cover(n.Span)
	}
	return sp
}

// Start begins a two-phase node: children are accumulated while the parser
// still lacks information to fix the node's shape, then frozen once.
func (b *Builder) Start() *Partial {
	return &Partial{b: b}
}

// Partial is a node under construction. It is not part of any tree until
// Freeze is called and cannot be changed after that.
type Partial struct {
	b      *Builder
	kids   []NodeID
	frozen bool
}

// Add appends known children.
func (p *Partial) Add(ids ...NodeID) *Partial {
	p.mustOpen()
	p.kids = append(p.kids, ids...)
	return p
}

// AddNull appends an absent optional element.
func (p *Partial) AddNull() *Partial {
	return p.Add(NoNodeID)
}

// Set replaces the i-th child, completing a slot whose final shape was
// only known after later tokens were read.
func (p *Partial) Set(i int, id NodeID) *Partial {
	p.mustOpen()
	p.kids[i] = id
	return p
}

// Child returns the i-th accumulated child.
func (p *Partial) Child(i int) NodeID {
	if i < 0 || i >= len(p.kids) {
		return NoNodeID
	}
	return p.kids[i]
}

// Len returns the number of accumulated children.
func (p *Partial) Len() int { return len(p.kids) }

// Freeze creates the immutable node. A Partial can be frozen exactly once.
func (p *Partial) Freeze(kind Kind) NodeID {
	p.mustOpen()
	p.frozen = true
	return p.b.Node(kind, p.kids...)
}

func (p *Partial) mustOpen() {
	if p.frozen {
		panic("ast: Partial modified after Freeze")
	}
}

// Finish links parents and returns the read-only tree rooted at root.
func (b *Builder) Finish(root NodeID) *Tree {
	b.done = true
	nodes := b.nodes.Slice()
	for i := range nodes {
		parent := NodeID(i + 1) //nolint:gosec // arena size is checked on Allocate
		for _, c := range nodes[i].Children {
			if c != NoNodeID {
				nodes[c-1].Parent = parent
			}
		}
	}
	return &Tree{
		File:   b.file,
		Tokens: b.tokens,
		Root:   root,
		nodes:  b.nodes,
	}
}
