package types

import (
	"sync"
	"sync/atomic"

	"sable/internal/ast"
	"sable/internal/symbols"
)

// Lazy defers inference until the first Result call.
type Lazy struct {
	once  sync.Once
	model *symbols.Model
	tree  *ast.Tree
	table *Table
	res   *Result
	done  atomic.Bool
}

// NewLazy uses DefaultTable.
func NewLazy(model *symbols.Model, tree *ast.Tree) *Lazy {
	return NewLazyWithTable(model, tree, DefaultTable())
}

func NewLazyWithTable(model *symbols.Model, tree *ast.Tree, table *Table) *Lazy {
	return &Lazy{model: model, tree: tree, table: table}
}

// Result computes the tags on first use and caches them.
func (l *Lazy) Result() *Result {
	l.once.Do(func() {
		l.res = Infer(l.model, l.tree, l.table)
		l.done.Store(true)
	})
	return l.res
}

// Computed reports whether inference has already run.
func (l *Lazy) Computed() bool { return l.done.Load() }
