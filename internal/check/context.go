package check

import (
	"sable/internal/ast"
	"sable/internal/source"
	"sable/internal/symbols"
	"sable/internal/types"
)

// Context is handed to one check for one file. Tree and Model are shared
// read-only between the checks of a run.
type Context struct {
	Tree  *ast.Tree
	Model *symbols.Model

	check  string
	types  *types.Lazy
	issues []Issue
	seq    *int
}

// Types returns the tag inference result, computing it on first use.
func (c *Context) Types() *types.Result { return c.types.Result() }

// File returns the source file of the tree.
func (c *Context) File() *source.File { return c.Tree.File }

// Report records an issue on node.
func (c *Context) Report(node ast.NodeID, msg string) *IssueBuilder {
	return c.ReportSpan(c.Tree.Span(node), msg)
}

// ReportSpan records an issue on an arbitrary span, e.g. a comment.
func (c *Context) ReportSpan(sp source.Span, msg string) *IssueBuilder {
	*c.seq++
	c.issues = append(c.issues, Issue{
		Check:    c.check,
		Message:  msg,
		Location: locate(c.Tree.File, sp),
		Seq:      *c.seq,
	})
	return &IssueBuilder{ctx: c, idx: len(c.issues) - 1}
}

// Locate converts a span of the current file to a Location.
func (c *Context) Locate(sp source.Span) Location { return locate(c.Tree.File, sp) }
