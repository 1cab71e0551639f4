package check

import (
	"fmt"

	"sable/internal/ast"
	"sable/internal/source"
)

// Location is a source range with 1-based positions. EndLine/EndCol point at
// the last byte of the range (inclusive); for an empty range they equal
// Line/Col. Span keeps the byte offsets, end exclusive.
type Location struct {
	Span    source.Span
	Line    uint32
	Col     uint32
	EndLine uint32
	EndCol  uint32
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d-%d:%d", l.Line, l.Col, l.EndLine, l.EndCol)
}

// Secondary is an additional location attached to an issue.
type Secondary struct {
	Location
	Message string
}

// Issue is one finding of a check.
type Issue struct {
	Check       string
	Message     string
	Location    Location
	Secondaries []Secondary
	// Seq is the emission order within one Engine.Run.
	Seq int
}

func (i Issue) String() string {
	return fmt.Sprintf("%d:%d: %s (%s)", i.Location.Line, i.Location.Col, i.Message, i.Check)
}

func locate(f *source.File, sp source.Span) Location {
	start, end := f.Position(sp.Start), f.LastPosition(sp.Start, sp.End)
	return Location{Span: sp, Line: start.Line, Col: start.Col, EndLine: end.Line, EndCol: end.Col}
}

// IssueBuilder adds secondary locations to a reported issue.
type IssueBuilder struct {
	ctx *Context
	idx int
}

// Secondary attaches a node location with a message.
func (b *IssueBuilder) Secondary(node ast.NodeID, msg string) *IssueBuilder {
	return b.SecondarySpan(b.ctx.Tree.Span(node), msg)
}

// SecondarySpan attaches a span location with a message.
func (b *IssueBuilder) SecondarySpan(sp source.Span, msg string) *IssueBuilder {
	is := &b.ctx.issues[b.idx]
	is.Secondaries = append(is.Secondaries, Secondary{Location: locate(b.ctx.Tree.File, sp), Message: msg})
	return b
}

// Issue returns the issue as recorded so far.
func (b *IssueBuilder) Issue() Issue { return b.ctx.issues[b.idx] }
