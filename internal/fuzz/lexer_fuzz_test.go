package fuzztests

import (
	"testing"

	"sable/internal/diag"
	"sable/internal/lexer"
	"sable/internal/source"
	"sable/internal/token"
)

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampSeed(input)

		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.js", input))

		bag := diag.NewBag(64)
		toks, err := lexer.TokenizeWith(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
		if err != nil {
			if bag.Len() == 0 {
				t.Fatalf("lexer error %v without a diagnostic", err)
			}
			return
		}
		if len(toks) == 0 || toks[len(toks)-1].Kind != token.EOF {
			t.Fatalf("token stream does not end with EOF")
		}
		var prev uint32
		for i, tok := range toks {
			if tok.Span.Start < prev || tok.Span.End < tok.Span.Start {
				t.Fatalf("token %d %v span %v overlaps previous end %d", i, tok.Kind, tok.Span, prev)
			}
			if tok.Text != string(file.Content[tok.Span.Start:tok.Span.End]) {
				t.Fatalf("token %d text %q does not match its span", i, tok.Text)
			}
			prev = tok.Span.End
		}
	})
}
