package parser_test

import (
	"errors"
	"strings"
	"testing"

	"sable/internal/ast"
	"sable/internal/diag"
	"sable/internal/lexer"
	"sable/internal/parser"
	"sable/internal/source"
	"sable/internal/testkit"
)

const sampleProgram = `'use strict';
/* header */
var $ = require('jquery'), re = /a[/]b/i;
function Model(attrs) { this.attrs = attrs || {}; }
Model.prototype.get = function (k) { return this.attrs[k] };
let [first, ...others] = list, {x: {y = 2}} = obj;
const sum = (...n) => n.reduce((a, b) => a + b, 0);
label: for (const key in obj) { if (!key) continue label; }
class View extends Base {
  static create() { return new View }
  *items() { yield* this.list }
  get size() { return this.list.length }
  set size(v) {}
  ['x' + 1]() {}
}
switch (a) { case 1: case 2: b(); break; default: c() }
try { risky() } catch (e) { log(e) } finally { done() }
do x--; while (x > 0)
var s = ` + "`a ${b + `${c}`} d`" + `, t = tag` + "`x`" + `;
if (a) b(); else if (c) d(); else { e() }
`

// Листья дерева в порядке обхода совпадают с потоком токенов.
func TestLeavesRoundTrip(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("sample.js", []byte(sampleProgram)))
	toks, err := lexer.Tokenize(file)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	tree, err := parser.Parse(file, toks, parser.Options{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	leaves := tree.Leaves(tree.Root)
	if len(leaves) != len(toks) {
		t.Fatalf("got %d leaves, want %d tokens", len(leaves), len(toks))
	}
	for i := range toks {
		if leaves[i].Kind != toks[i].Kind || leaves[i].Span != toks[i].Span {
			t.Fatalf("leaf %d = %v %q, token = %v %q", i, leaves[i].Kind, leaves[i].Text, toks[i].Kind, toks[i].Text)
		}
	}
}

func TestParentsAndSpans(t *testing.T) {
	tree := parseSource(t, sampleProgram, parser.GoalAuto)
	ast.Inspect(tree, tree.Root, func(id ast.NodeID) bool {
		for _, c := range tree.Children(id) {
			if c == ast.NoNodeID {
				continue
			}
			if tree.Parent(c) != id {
				t.Fatalf("parent of %v is %d, want %d", tree.Kind(c), tree.Parent(c), id)
			}
			if sp, csp := tree.Span(id), tree.Span(c); csp.Start < sp.Start || csp.End > sp.End {
				t.Fatalf("child %v span %v escapes parent %v span %v", tree.Kind(c), csp, tree.Kind(id), sp)
			}
		}
		return true
	})
}

func TestSyntaxErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		goal parser.Goal
		code diag.Code
		line uint32
		col  uint32
	}{
		{"missing-semicolon", "a b", parser.GoalScript, diag.SynExpectSemicolon, 1, 3},
		{"throw-newline", "throw\nx", parser.GoalScript, diag.SynUnexpectedToken, 2, 1},
		{"arrow-newline", "x\n=> 1", parser.GoalScript, diag.SynExpectExpression, 2, 1},
		{"import-in-script", "import a from 'm'", parser.GoalScript, diag.SynModuleItemInScript, 1, 1},
		{"trailing-comma-call", "f(a,)", parser.GoalScript, diag.SynExpectExpression, 1, 5},
		{"rest-not-last", "function f(...a, b) {}", parser.GoalScript, diag.SynRestNotLast, 1, 16},
		{"bad-target", "1 = 2", parser.GoalScript, diag.SynInvalidTarget, 1, 3},
		{"bad-update", "f()++", parser.GoalScript, diag.SynInvalidTarget, 1, 4},
		{"unclosed-block", "{ a;", parser.GoalScript, diag.SynUnclosedDelimiter, 1, 5},
		{"try-alone", "try {}", parser.GoalScript, diag.SynUnexpectedToken, 1, 7},
		{"function-name", "function () {}", parser.GoalScript, diag.SynExpectIdentifier, 1, 10},
		{"reserved-export", "export { default }", parser.GoalModule, diag.SynExpectIdentifier, 1, 19},
		{"empty-parens", "()", parser.GoalScript, diag.SynExpectExpression, 1, 2},
		{"with-in-module", "with (a) {}", parser.GoalModule, diag.SynStrictMode, 1, 1},
		{"with-after-export", "export var x; with (a) {}", parser.GoalAuto, diag.SynStrictMode, 1, 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, err := tryParse(t, tt.src, tt.goal)
			if err == nil {
				t.Fatalf("expected error, got tree %s", sexpr(tree, tree.Root))
			}
			if tree != nil {
				t.Fatalf("tree must be nil on error")
			}
			var se *parser.SyntaxError
			if !errors.As(err, &se) {
				t.Fatalf("error %T is not *SyntaxError", err)
			}
			if se.Code != tt.code || se.Line != tt.line || se.Col != tt.col {
				t.Fatalf("got %s at %d:%d (%s), want %s at %d:%d",
					se.Code.ID(), se.Line, se.Col, se.Msg, tt.code.ID(), tt.line, tt.col)
			}
		})
	}
}

func TestParseFileReportsDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	rep := &collectReporter{}

	file := fs.Get(fs.AddVirtual("bad.js", []byte("var x = ;")))
	res := parser.ParseFile(file, parser.Options{Reporter: rep})
	if res.Err == nil || res.Tree != nil {
		t.Fatalf("expected syntax error, got %+v", res)
	}
	if !res.Bag.HasErrors() || len(rep.items) != 1 {
		t.Fatalf("diagnostics: bag=%d reporter=%d", res.Bag.Len(), len(rep.items))
	}
	if rep.items[0].Code != diag.SynExpectExpression {
		t.Fatalf("code = %s", rep.items[0].Code.ID())
	}
	if !strings.Contains(res.Err.Error(), "1:9:") {
		t.Fatalf("error = %q", res.Err.Error())
	}

	file = fs.Get(fs.AddVirtual("lex.js", []byte("var s = 'open")))
	res = parser.ParseFile(file, parser.Options{})
	var le *lexer.LexError
	if !errors.As(res.Err, &le) {
		t.Fatalf("error %T is not *LexError", res.Err)
	}
	if res.Bag.Len() != 1 {
		t.Fatalf("bag len = %d", res.Bag.Len())
	}

	file = fs.Get(fs.AddVirtual("ok.js", []byte("var ok = true")))
	res = parser.ParseFile(file, parser.Options{})
	if res.Err != nil || res.Tree == nil || res.Bag.Len() != 0 {
		t.Fatalf("unexpected result: err=%v bag=%d", res.Err, res.Bag.Len())
	}
}

func TestParseRejectsMissingEOF(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("x.js", nil))
	if _, err := parser.Parse(file, nil, parser.Options{}); err == nil {
		t.Fatalf("expected error for empty token stream")
	}
}

func TestDeepNestingFails(t *testing.T) {
	src := strings.Repeat("(", 5000) + "a" + strings.Repeat(")", 5000)
	if _, err := tryParse(t, src, parser.GoalScript); err == nil {
		t.Fatalf("expected nesting error")
	}
}

func TestTreeInvariants(t *testing.T) {
	sources := []struct {
		src  string
		goal parser.Goal
	}{
		{sampleProgram, parser.GoalAuto},
		{"", parser.GoalScript},
		{"// only a comment\n", parser.GoalScript},
		{"a\n++b\n", parser.GoalScript},
		{"import d, {a as b} from 'm';\nexport default class {}\nexport * from 'n';", parser.GoalModule},
		{"for (var i = 0, n = xs.length; i < n; i++) { if (i in o) break }", parser.GoalScript},
		{"x = a ? b : c => ({y: [,, ...z]})", parser.GoalScript},
	}
	for _, tc := range sources {
		tree := parseSource(t, tc.src, tc.goal)
		if err := testkit.CheckTreeInvariants(tree); err != nil {
			t.Errorf("%q: %v", tc.src, err)
		}
	}
}
