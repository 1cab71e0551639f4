package checks

import (
	"fmt"
	"regexp"

	"github.com/spf13/pflag"

	"sable/internal/ast"
	"sable/internal/check"
)

const defaultCommentMessage = "The regular expression matches this comment"

// CommentRegularExpression flags comments whose whole text matches a
// configured regular expression. With an empty expression it reports nothing.
type CommentRegularExpression struct {
	Expression string
	Message    string

	re *regexp.Regexp
}

func NewCommentRegularExpression() *CommentRegularExpression {
	return &CommentRegularExpression{Message: defaultCommentMessage}
}

func (*CommentRegularExpression) Key() string { return "CommentRegularExpression" }
func (*CommentRegularExpression) Description() string {
	return "Regular expression on comment"
}
func (*CommentRegularExpression) Kinds() ast.KindSet { return leafKinds }

func (c *CommentRegularExpression) Params(fs *pflag.FlagSet) {
	fs.StringVar(&c.Expression, "regularExpression", "", "regular expression the comment text must fully match")
	fs.StringVar(&c.Message, "message", defaultCommentMessage, "issue message")
}

func (c *CommentRegularExpression) Begin(*check.Context) error {
	c.re = nil
	if c.Expression == "" {
		return nil
	}
	re, err := regexp.Compile(`^(?:` + c.Expression + `)$`)
	if err != nil {
		return fmt.Errorf("regularExpression: %w", err)
	}
	c.re = re
	return nil
}

func (c *CommentRegularExpression) Visit(ctx *check.Context, id ast.NodeID) {
	if c.re == nil {
		return
	}
	for _, tr := range comments(ctx, id) {
		if c.re.MatchString(tr.Text) {
			ctx.ReportSpan(tr.Span, c.Message)
		}
	}
}
