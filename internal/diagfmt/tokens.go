package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"sable/internal/cpd"
	"sable/internal/source"
	"sable/internal/token"
)

type TokenOutput struct {
	Kind    string      `json:"kind"`
	Text    string      `json:"text,omitempty"`
	Line    uint32      `json:"line"`
	Col     uint32      `json:"col"`
	Span    source.Span `json:"span"`
	Leading []string    `json:"leading,omitempty"`
	// NewlineBefore: между предыдущим токеном и этим был перевод строки
	NewlineBefore bool `json:"newline_before,omitempty"`
}

func leadingKinds(tok token.Token) []string {
	var leading []string
	for _, trivia := range tok.Leading {
		leading = append(leading, trivia.Kind.String())
	}
	return leading
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		// Получаем позицию токена
		startPos, endPos := fs.Resolve(tok.Span)

		if _, err := fmt.Fprintf(w, "%3d: %-15s", i+1, tok.Kind.String()); err != nil {
			return err
		}
		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text) //nolint:errcheck
		}
		fmt.Fprintf(w, " at %d:%d-%d:%d", startPos.Line, startPos.Col, endPos.Line, endPos.Col) //nolint:errcheck

		if leading := leadingKinds(tok); len(leading) > 0 {
			fmt.Fprintf(w, " (leading: %s)", strings.Join(leading, ", ")) //nolint:errcheck
		}
		fmt.Fprintln(w) //nolint:errcheck

		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		output = append(output, TokenOutput{
			Kind:          tok.Kind.String(),
			Text:          tok.Text,
			Line:          tok.Line,
			Col:           tok.Col,
			Span:          tok.Span,
			Leading:       leadingKinds(tok), // nil убирается из JSON
			NewlineBefore: tok.NewlineBefore,
		})
		if tok.Kind == token.EOF {
			break
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// FormatCPDPretty prints the normalized duplicate-detection stream, one
// token per line.
func FormatCPDPretty(w io.Writer, tokens []cpd.Token) error {
	for _, tok := range tokens {
		if _, err := fmt.Fprintf(w, "%d:%d-%d:%d\t%s\n", tok.Line, tok.Col, tok.EndLine, tok.EndCol, tok.Value); err != nil {
			return err
		}
	}
	return nil
}

// FormatCPDJSON encodes the normalized stream.
func FormatCPDJSON(w io.Writer, tokens []cpd.Token) error {
	type cpdTokenJSON struct {
		Value   string `json:"value"`
		Line    uint32 `json:"line"`
		Col     uint32 `json:"col"`
		EndLine uint32 `json:"end_line"`
		EndCol  uint32 `json:"end_col"`
	}
	out := make([]cpdTokenJSON, len(tokens))
	for i, tok := range tokens {
		out[i] = cpdTokenJSON{tok.Value, tok.Line, tok.Col, tok.EndLine, tok.EndCol}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
