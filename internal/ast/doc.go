// Package ast holds the syntax tree model.
//
// A Tree is an arena of Nodes addressed by 1-based NodeID. Every node has a
// Kind from a closed enumeration (KindCount is the sentinel), a span, its
// ordered children and a non-owning Parent link. Optional grammar elements
// that are absent occupy their slot as NoNodeID, so child positions are
// fixed per Kind (see the comments on the Kind constants). Every lexical
// token of the file, EOF included, is exactly one KindToken leaf.
//
// Nodes are created through a Builder. Productions whose shape depends on
// later tokens use a Partial, which collects children and is frozen once.
// Builder.Finish returns the Tree; nothing mutates it afterwards.
//
// Traversal: Walk/Inspect (pre-order, go/ast style), Tree.Preorder over a
// KindSet, and Dispatcher with Tree.Accept for per-kind double dispatch.
package ast
