package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"sable/internal/check"
	"sable/internal/diag"
	"sable/internal/source"
)

// TestPathModes проверяет различные режимы форматирования путей
func TestPathModes(t *testing.T) {
	fs := source.NewFileSetWithBase("/home/user/project")
	content := []byte("var s = \"unterminated string\n")
	fileID := fs.AddVirtual("/home/user/project/src/test.js", content)

	bag := diag.NewBag(10)
	bag.Add(diag.New(diag.SevError, diag.LexUnterminatedString, source.Span{File: fileID, Start: 8, End: 28}, "Unterminated string literal"))

	tests := []struct {
		name     string
		mode     PathMode
		contains string
	}{
		{"Absolute path", PathModeAbsolute, "/home/user/project/src/test.js:1:9"},
		{"Relative path", PathModeRelative, "src/test.js:1:9"},
		{"Basename only", PathModeBasename, "test.js:1:9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Pretty(&buf, bag, fs, PrettyOpts{Context: 1, PathMode: tt.mode})
			output := buf.String()

			if !strings.Contains(output, tt.contains) {
				t.Errorf("Expected output to contain %q, got:\n%s", tt.contains, output)
			}
			if !strings.Contains(output, "ERROR LEX1002: Unterminated string literal") {
				t.Errorf("Expected header in output, got:\n%s", output)
			}
		})
	}
}

func TestPrettyCaret(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		start uint32
		end   uint32
		want  []string
	}{
		{"plain", "var s = \"open\n", 8, 13, []string{" 1 | var s = \"open", "  |         ^~~~~"}},
		{"tab", "\tx = 1;\n", 1, 2, []string{" 1 |     x = 1;", "  |     ^\n"}},
		{"wide", "s = '世界' + x\n", 15, 16, []string{"a.js:1:12: ", "  | " + strings.Repeat(" ", 13) + "^\n"}},
		{"crlf", "a;\r\nbad b;\r\n", 4, 7, []string{"a.js:2:1: ", " 2 | bad b;", "  | ^~~\n"}},
		{"empty-span", "a b\n", 2, 2, []string{"  |   ^\n"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := source.NewFileSet()
			id := fs.AddVirtual("a.js", []byte(tt.src))
			bag := diag.NewBag(0)
			bag.Add(diag.New(diag.SevWarning, diag.SynUnexpectedToken, source.Span{File: id, Start: tt.start, End: tt.end}, "msg"))

			var buf bytes.Buffer
			Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename})
			for _, w := range tt.want {
				if !strings.Contains(buf.String(), w) {
					t.Errorf("Expected output to contain %q, got:\n%s", w, buf.String())
				}
			}
		})
	}
}

func TestPrettyContextAndNotes(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("a.js", []byte("one\ntwo\nthree\nfour\n"))
	bag := diag.NewBag(0)
	d := diag.New(diag.SevError, diag.SynUnexpectedToken, source.Span{File: id, Start: 8, End: 13}, "unexpected")
	d = d.WithNote(source.Span{File: id, Start: 0, End: 3}, "opened here")
	bag.Add(d)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Context: 1, PathMode: PathModeBasename, ShowNotes: true})
	output := buf.String()
	for _, want := range []string{" 2 | two", " 3 | three", " 4 | four", "note: a.js:1:1: opened here"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, output)
		}
	}
	if strings.Contains(output, "1 | one") {
		t.Errorf("context too wide:\n%s", output)
	}

	buf.Reset()
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename})
	if strings.Contains(buf.String(), "note:") {
		t.Errorf("notes must be hidden without ShowNotes:\n%s", buf.String())
	}
}

func TestPrettyColor(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("a.js", []byte("x\n"))
	bag := diag.NewBag(0)
	bag.Add(diag.New(diag.SevError, diag.SynUnexpectedToken, source.Span{File: id, Start: 0, End: 1}, "m"))

	var plain, colored bytes.Buffer
	Pretty(&plain, bag, fs, PrettyOpts{})
	Pretty(&colored, bag, fs, PrettyOpts{Color: true})
	if strings.Contains(plain.String(), "\x1b[") {
		t.Errorf("unexpected escape codes:\n%q", plain.String())
	}
	if !strings.Contains(colored.String(), "\x1b[") {
		t.Errorf("expected escape codes:\n%q", colored.String())
	}
}

func sampleIssues(fs *source.FileSet) []check.Issue {
	id := fs.AddVirtual("a.js", []byte("var x;\nvar x;\ndebugger;\n"))
	return []check.Issue{
		{
			Check:    "RedeclaredSymbol",
			Message:  `Rename "x" as this name is already used in declaration at line 1.`,
			Location: check.Location{Span: source.Span{File: id, Start: 11, End: 12}, Line: 2, Col: 5, EndLine: 2, EndCol: 5},
			Secondaries: []check.Secondary{{
				Location: check.Location{Span: source.Span{File: id, Start: 4, End: 5}, Line: 1, Col: 5, EndLine: 1, EndCol: 5},
				Message:  "Initial declaration",
			}},
		},
		{
			Check:    "DebuggerStatement",
			Message:  "Remove this debugger statement.",
			Location: check.Location{Span: source.Span{File: id, Start: 14, End: 23}, Line: 3, Col: 1, EndLine: 3, EndCol: 9},
			Seq:      1,
		},
	}
}

func TestIssuesPretty(t *testing.T) {
	fs := source.NewFileSet()
	issues := sampleIssues(fs)

	var buf bytes.Buffer
	IssuesPretty(&buf, issues, fs, PrettyOpts{PathMode: PathModeBasename})
	output := buf.String()
	for _, want := range []string{
		`a.js:2:5: ISSUE RedeclaredSymbol: Rename "x"`,
		"note: a.js:1:5: Initial declaration",
		"a.js:3:1: ISSUE DebuggerStatement: Remove this debugger statement.",
		" 3 | debugger;",
		"  | ^~~~~~~~~\n",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, output)
		}
	}
}
