package symbols_test

import (
	"slices"
	"testing"

	"sable/internal/symbols"
)

func TestHighlightDeclaredSymbols(t *testing.T) {
	m := resolveSnippet(t, "var x = 1;\nfunction f() {}\nf(x, x);\n")
	var got []symbols.Occurrence
	symbols.Highlight(m, symbols.OccurrenceFunc(func(o symbols.Occurrence) {
		got = append(got, o)
	}))
	want := []symbols.Occurrence{
		{Name: "x", Kind: symbols.SymbolVariable, DeclStart: 4, DeclEnd: 5, References: []uint32{29, 32}},
		{Name: "f", Kind: symbols.SymbolFunction, DeclStart: 20, DeclEnd: 21, References: []uint32{27}},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d occurrences, want %d", len(got), len(want))
	}
	for i := range want {
		g, w := got[i], want[i]
		if g.Name != w.Name || g.Kind != w.Kind || g.DeclStart != w.DeclStart || g.DeclEnd != w.DeclEnd ||
			!slices.Equal(g.References, w.References) {
			t.Errorf("occurrence %d = %+v, want %+v", i, g, w)
		}
	}
}

func TestHighlightBuiltinUsesFirstUsage(t *testing.T) {
	m := resolveSnippet(t, "console.log(1); console.log(2);")
	var got []symbols.Occurrence
	symbols.Highlight(m, symbols.OccurrenceFunc(func(o symbols.Occurrence) {
		got = append(got, o)
	}))
	if len(got) != 1 {
		t.Fatalf("got %d occurrences", len(got))
	}
	o := got[0]
	if o.Kind != symbols.SymbolBuiltin || o.DeclStart != 0 || o.DeclEnd != 7 || !slices.Equal(o.References, []uint32{16}) {
		t.Fatalf("occurrence = %+v", o)
	}
}
