package checks

import (
	"sable/internal/ast"
	"sable/internal/check"
	"sable/internal/token"
)

// comments returns the comment trivia in front of a token leaf. Trivia after
// the last token belongs to EOF, so visiting every leaf sees every comment.
func comments(ctx *check.Context, leaf ast.NodeID) []token.Trivia {
	tok := ctx.Tree.Token(leaf)
	if tok == nil {
		return nil
	}
	var out []token.Trivia
	for _, tr := range tok.Leading {
		if tr.IsComment() {
			out = append(out, tr)
		}
	}
	return out
}

var leafKinds = ast.NewKindSet(ast.KindToken)
