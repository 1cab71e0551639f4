package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"sable/internal/cpd"
	"sable/internal/lexer"
	"sable/internal/parser"
	"sable/internal/source"
	"sable/internal/symbols"
)

func TestTreeDumps(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("a.js", []byte("var a;")))
	res := parser.ParseFile(file, parser.Options{})
	if res.Err != nil {
		t.Fatal(res.Err)
	}

	var buf bytes.Buffer
	if err := FormatTreePretty(&buf, res.Tree, fs); err != nil {
		t.Fatal(err)
	}
	output := buf.String()
	for _, want := range []string{"└─ Script (span: 1:1-1:7)", "VarStatement", `var "var"`, `Ident "a"`, "<none>", "EOF"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, output)
		}
	}

	buf.Reset()
	if err := FormatTreeJSON(&buf, res.Tree); err != nil {
		t.Fatal(err)
	}
	var root ASTNodeOutput
	if err := json.Unmarshal(buf.Bytes(), &root); err != nil {
		t.Fatal(err)
	}
	if root.Type != "Script" || len(root.Children) != 2 || root.Children[0].Type != "VarStatement" {
		t.Errorf("root = %+v", root)
	}
}

func TestTokenDumps(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("a.js", []byte("// c\nx = 'y';")))
	toks, err := lexer.TokenizeWith(file, lexer.Options{})
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, toks, fs); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "(leading: LineComment, Newline)") {
		t.Errorf("leading trivia missing:\n%s", buf.String())
	}

	buf.Reset()
	if err := FormatTokensJSON(&buf, toks); err != nil {
		t.Fatal(err)
	}
	var out []TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != len(toks) || out[0].Line != 2 || !out[0].NewlineBefore {
		t.Errorf("tokens = %+v", out)
	}

	ctoks, err := cpd.Tokenize(file)
	if err != nil {
		t.Fatal(err)
	}
	buf.Reset()
	if err := FormatCPDPretty(&buf, ctoks); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "2:5-2:7\tLITERAL") {
		t.Errorf("cpd dump:\n%s", buf.String())
	}
}

func TestOccurrenceDumps(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("a.js", []byte("var a = 1;\na++;")))
	res := parser.ParseFile(file, parser.Options{})
	if res.Err != nil {
		t.Fatal(res.Err)
	}
	var occ []symbols.Occurrence
	symbols.Highlight(symbols.Resolve(res.Tree), symbols.OccurrenceFunc(func(o symbols.Occurrence) {
		occ = append(occ, o)
	}))

	var buf bytes.Buffer
	if err := FormatOccurrencesPretty(&buf, file, occ); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "1:5-1:5 -> 2:1") {
		t.Errorf("occurrences:\n%s", buf.String())
	}
}
