package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/uuid"

	"sable/internal/diag"
	"sable/internal/source"
)

func TestJSONDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("a.js", []byte("var = 1;\n"))
	bag := diag.NewBag(0)
	bag.Add(diag.New(diag.SevError, diag.SynExpectIdentifier, source.Span{File: id, Start: 4, End: 5}, "expected identifier").
		WithNote(source.Span{File: id, Start: 0, End: 3}, "declaration"))
	bag.Add(diag.New(diag.SevWarning, diag.ChkFailure, source.Span{File: id}, "check failed"))

	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{IncludePositions: true, PathMode: PathModeBasename, Max: 1}); err != nil {
		t.Fatal(err)
	}
	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, buf.String())
	}
	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("count = %d, want 1 (Max)", out.Count)
	}
	d := out.Diagnostics[0]
	if d.Code != "SYN2003" || d.Severity != "ERROR" || d.Location.File != "a.js" {
		t.Errorf("unexpected diagnostic %+v", d)
	}
	if d.Location.StartLine != 1 || d.Location.StartCol != 5 {
		t.Errorf("position = %d:%d", d.Location.StartLine, d.Location.StartCol)
	}
	if len(d.Notes) != 0 {
		t.Errorf("notes must be omitted without IncludeNotes")
	}
}

func TestIssuesJSON(t *testing.T) {
	fs := source.NewFileSet()
	issues := sampleIssues(fs)

	var buf bytes.Buffer
	if err := IssuesJSON(&buf, issues, fs, JSONOpts{PathMode: PathModeBasename}); err != nil {
		t.Fatal(err)
	}
	var out IssuesOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if out.Count != 2 {
		t.Fatalf("count = %d", out.Count)
	}
	first := out.Issues[0]
	if first.Check != "RedeclaredSymbol" || first.Location.StartLine != 2 || first.Location.EndCol != 5 {
		t.Errorf("unexpected issue %+v", first)
	}
	if len(first.Secondaries) != 1 || first.Secondaries[0].Message != "Initial declaration" {
		t.Errorf("secondaries = %+v", first.Secondaries)
	}
	if out.Issues[1].Location.EndCol != 9 {
		t.Errorf("end col = %d", out.Issues[1].Location.EndCol)
	}
}

func TestIssuesSARIF(t *testing.T) {
	fs := source.NewFileSetWithBase("/src")
	id := fs.AddVirtual("/src/lib/a.js", []byte("debugger;\n"))
	issues := sampleIssues(source.NewFileSet())[1:]
	issues[0].Location.Span.File = id

	meta := SarifRunMeta{
		ToolName:    "sable",
		ToolVersion: "1.0",
		Rules:       []SarifRule{{ID: "DebuggerStatement", Description: "Debugger statements should not be used"}},
	}
	var buf bytes.Buffer
	if err := IssuesSARIF(&buf, issues, fs, meta); err != nil {
		t.Fatal(err)
	}
	var log sarifLog
	if err := json.Unmarshal(buf.Bytes(), &log); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if log.Version != "2.1.0" || len(log.Runs) != 1 {
		t.Fatalf("log = %+v", log)
	}
	run := log.Runs[0]
	if _, err := uuid.Parse(run.AutomationDetails.GUID); err != nil {
		t.Errorf("guid %q: %v", run.AutomationDetails.GUID, err)
	}
	if len(run.Tool.Driver.Rules) != 1 || run.Tool.Driver.Rules[0].DefaultConfig.Level != "warning" {
		t.Errorf("rules = %+v", run.Tool.Driver.Rules)
	}
	if len(run.Results) != 1 {
		t.Fatalf("results = %d", len(run.Results))
	}
	res := run.Results[0]
	loc := res.Locations[0].Physical
	if res.RuleID != "DebuggerStatement" || loc.Artifact.URI != "lib/a.js" {
		t.Errorf("result = %+v", res)
	}
	if loc.Region.StartColumn != 1 || loc.Region.EndColumn != 10 {
		t.Errorf("region = %+v", loc.Region)
	}
}

func TestSarifDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("a.js", []byte("x y\n"))
	bag := diag.NewBag(0)
	bag.Add(diag.New(diag.SevError, diag.SynExpectSemicolon, source.Span{File: id, Start: 2, End: 3}, "expected ;"))
	bag.Add(diag.New(diag.SevInfo, diag.SynExpectSemicolon, source.Span{File: id, Start: 0, End: 1}, "again"))

	var buf bytes.Buffer
	if err := Sarif(&buf, bag, fs, SarifRunMeta{ToolName: "sable"}); err != nil {
		t.Fatal(err)
	}
	var log sarifLog
	if err := json.Unmarshal(buf.Bytes(), &log); err != nil {
		t.Fatal(err)
	}
	run := log.Runs[0]
	if len(run.Tool.Driver.Rules) != 1 || run.Tool.Driver.Rules[0].ID != "SYN2002" {
		t.Errorf("rules = %+v", run.Tool.Driver.Rules)
	}
	if run.Results[0].Level != "error" || run.Results[1].Level != "note" {
		t.Errorf("levels = %s, %s", run.Results[0].Level, run.Results[1].Level)
	}
	if r := run.Results[0].Locations[0].Physical.Region; r.StartColumn != 3 || r.EndColumn != 4 {
		t.Errorf("region = %+v", r)
	}
}
