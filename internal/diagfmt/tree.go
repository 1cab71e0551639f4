package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"sable/internal/ast"
	"sable/internal/source"
)

type ASTNodeOutput struct {
	Type     string          `json:"type"`
	Token    string          `json:"token,omitempty"`
	Span     *source.Span    `json:"span,omitempty"`
	Text     string          `json:"text,omitempty"`
	Children []ASTNodeOutput `json:"children,omitempty"`
}

// FormatTreePretty prints the tree as an outline. Absent optional children
// are shown as "<none>" so every child keeps its positional slot.
func FormatTreePretty(w io.Writer, tree *ast.Tree, fs *source.FileSet) error {
	header := "Tree"
	if fs != nil {
		header = tree.File.FormatPath("auto", fs.BaseDir())
	}
	if _, err := fmt.Fprintf(w, "%s\n", header); err != nil {
		return err
	}
	formatNodePretty(w, tree, tree.Root, fs, "", true)
	return nil
}

func formatNodePretty(w io.Writer, tree *ast.Tree, id ast.NodeID, fs *source.FileSet, prefix string, last bool) {
	branch, next := "├─ ", "│  "
	if last {
		branch, next = "└─ ", "   "
	}
	if !id.IsValid() {
		fmt.Fprintf(w, "%s%s<none>\n", prefix, branch) //nolint:errcheck
		return
	}
	if tok := tree.Token(id); tok != nil {
		fmt.Fprintf(w, "%s%s%s %q (span: %s)\n", prefix, branch, tok.Kind, tok.Text, formatSpan(tok.Span, fs)) //nolint:errcheck
		return
	}
	fmt.Fprintf(w, "%s%s%s (span: %s)\n", prefix, branch, tree.Kind(id), formatSpan(tree.Span(id), fs)) //nolint:errcheck
	kids := tree.Children(id)
	for i, kid := range kids {
		formatNodePretty(w, tree, kid, fs, prefix+next, i == len(kids)-1)
	}
}

// FormatTreeJSON encodes the tree; absent children become {"type":"None"}.
func FormatTreeJSON(w io.Writer, tree *ast.Tree) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildNodeJSON(tree, tree.Root))
}

func buildNodeJSON(tree *ast.Tree, id ast.NodeID) ASTNodeOutput {
	if !id.IsValid() {
		return ASTNodeOutput{Type: "None"}
	}
	sp := tree.Span(id)
	out := ASTNodeOutput{Type: tree.Kind(id).String(), Span: &sp}
	if tok := tree.Token(id); tok != nil {
		out.Token = tok.Kind.String()
		out.Text = tok.Text
		return out
	}
	for _, kid := range tree.Children(id) {
		out.Children = append(out.Children, buildNodeJSON(tree, kid))
	}
	return out
}
