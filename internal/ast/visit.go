package ast

// Visitor's Visit method is invoked for each node encountered by Walk.
// If the result visitor w is not nil, Walk visits each non-null child of the
// node with w, followed by a call of w.Visit(t, NoNodeID).
// Visitors must not mutate the tree.
type Visitor interface {
	Visit(t *Tree, id NodeID) (w Visitor)
}

// Walk traverses the subtree rooted at id in depth-first pre-order.
func Walk(v Visitor, t *Tree, id NodeID) {
	if id == NoNodeID {
		return
	}
	if v = v.Visit(t, id); v == nil {
		return
	}
	for _, c := range t.Children(id) {
		if c != NoNodeID {
			Walk(v, t, c)
		}
	}
	v.Visit(t, NoNodeID)
}

type inspector func(NodeID) bool

func (f inspector) Visit(_ *Tree, id NodeID) Visitor {
	if id != NoNodeID && f(id) {
		return f
	}
	return nil
}

// Inspect traverses the subtree in depth-first pre-order calling f for each
// node; children are skipped when f returns false.
func Inspect(t *Tree, id NodeID, f func(NodeID) bool) {
	Walk(inspector(f), t, id)
}

// Preorder calls fn for every node of the tree whose kind is in set, in
// depth-first pre-order. It uses an explicit stack, so deeply nested input
// does not grow the goroutine stack.
func (t *Tree) Preorder(set KindSet, fn func(NodeID)) {
	if t.Root == NoNodeID {
		return
	}
	stack := []NodeID{t.Root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := t.Node(id)
		if set.Has(n.Kind) {
			fn(id)
		}
		for i := len(n.Children) - 1; i >= 0; i-- {
			if c := n.Children[i]; c != NoNodeID {
				stack = append(stack, c)
			}
		}
	}
}

// Handler processes one node of a specific kind.
type Handler func(t *Tree, id NodeID)

// Dispatcher routes nodes to per-kind handlers. The table is sized by
// KindCount, so every kind has a slot; Default handles kinds with no handler.
type Dispatcher struct {
	handlers [KindCount]Handler
	Default  Handler
}

// On registers h for the given kinds, replacing earlier registrations.
func (d *Dispatcher) On(h Handler, kinds ...Kind) *Dispatcher {
	for _, k := range kinds {
		d.handlers[k] = h
	}
	return d
}

// Handles reports whether a specific handler is registered for k.
func (d *Dispatcher) Handles(k Kind) bool { return d.handlers[k] != nil }

// Visit lets a Dispatcher drive a full Walk.
func (d *Dispatcher) Visit(t *Tree, id NodeID) Visitor {
	if id != NoNodeID {
		t.Accept(id, d)
	}
	return d
}

// Accept dispatches id to the handler registered for its kind.
// It reports whether any handler ran.
func (t *Tree) Accept(id NodeID, d *Dispatcher) bool {
	k := t.Kind(id)
	if h := d.handlers[k]; h != nil {
		h(t, id)
		return true
	}
	if d.Default != nil {
		d.Default(t, id)
		return true
	}
	return false
}
