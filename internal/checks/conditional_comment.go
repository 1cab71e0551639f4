package checks

import (
	"strings"

	"sable/internal/ast"
	"sable/internal/check"
)

// ConditionalComment flags Internet Explorer conditional compilation comments.
type ConditionalComment struct{}

func (*ConditionalComment) Key() string        { return "ConditionalComment" }
func (*ConditionalComment) Kinds() ast.KindSet { return leafKinds }
func (*ConditionalComment) Description() string {
	return "Internet Explorer's conditional comments should not be used"
}

var conditionalPrefixes = []string{"/*@cc_on", "/*@if", "//@cc_on"}

func (*ConditionalComment) Visit(ctx *check.Context, id ast.NodeID) {
	for _, c := range comments(ctx, id) {
		for _, p := range conditionalPrefixes {
			if strings.HasPrefix(c.Text, p) {
				ctx.ReportSpan(c.Span, "Refactor your code to avoid using Internet Explorer's conditional comments.")
				break
			}
		}
	}
}
