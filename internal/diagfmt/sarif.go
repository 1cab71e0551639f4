package diagfmt

import (
	"encoding/json"
	"io"
	"net/url"

	"github.com/google/uuid"

	"sable/internal/check"
	"sable/internal/diag"
	"sable/internal/source"
)

const (
	sarifVersion = "2.1.0"
	sarifSchema  = "https://json.schemastore.org/sarif-2.1.0.json"
)

type sarifLog struct {
	Version string     `json:"version"`
	Schema  string     `json:"$schema"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool              sarifTool         `json:"tool"`
	Invocations       []sarifInvocation `json:"invocations,omitempty"`
	AutomationDetails sarifAutomation   `json:"automationDetails"`
	Results           []sarifResult     `json:"results"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name    string      `json:"name"`
	Version string      `json:"version,omitempty"`
	Rules   []sarifRule `json:"rules,omitempty"`
}

type sarifRule struct {
	ID               string       `json:"id"`
	ShortDescription *sarifText   `json:"shortDescription,omitempty"`
	DefaultConfig    *sarifConfig `json:"defaultConfiguration,omitempty"`
}

type sarifConfig struct {
	Level string `json:"level"`
}

type sarifInvocation struct {
	Arguments           []string `json:"arguments,omitempty"`
	ExecutionSuccessful bool     `json:"executionSuccessful"`
}

type sarifAutomation struct {
	GUID string `json:"guid"`
}

type sarifText struct {
	Text string `json:"text"`
}

type sarifResult struct {
	RuleID           string          `json:"ruleId"`
	Level            string          `json:"level"`
	Message          sarifText       `json:"message"`
	Locations        []sarifLocation `json:"locations"`
	RelatedLocations []sarifLocation `json:"relatedLocations,omitempty"`
}

type sarifLocation struct {
	ID       int                   `json:"id,omitempty"`
	Physical sarifPhysicalLocation `json:"physicalLocation"`
	Message  *sarifText            `json:"message,omitempty"`
}

type sarifPhysicalLocation struct {
	Artifact sarifArtifact `json:"artifactLocation"`
	Region   sarifRegion   `json:"region"`
}

type sarifArtifact struct {
	URI string `json:"uri"`
}

// sarifRegion: колонки 1-based, endColumn исключающий.
type sarifRegion struct {
	StartLine   uint32 `json:"startLine"`
	StartColumn uint32 `json:"startColumn"`
	EndLine     uint32 `json:"endLine"`
	EndColumn   uint32 `json:"endColumn"`
	ByteOffset  uint32 `json:"byteOffset"`
	ByteLength  uint32 `json:"byteLength"`
}

func sarifLevel(sev diag.Severity) string {
	switch sev {
	case diag.SevError:
		return "error"
	case diag.SevWarning:
		return "warning"
	default:
		return "note"
	}
}

func artifactURI(fs *source.FileSet, f *source.File) string {
	u := url.URL{Path: formatPath(fs, f, PathModeRelative)}
	return u.EscapedPath()
}

func newRun(meta SarifRunMeta) sarifRun {
	run := sarifRun{
		Tool: sarifTool{Driver: sarifDriver{Name: meta.ToolName, Version: meta.ToolVersion}},
		Invocations: []sarifInvocation{{
			Arguments:           meta.InvocationArgs,
			ExecutionSuccessful: true,
		}},
		AutomationDetails: sarifAutomation{GUID: uuid.NewString()},
		Results:           []sarifResult{},
	}
	for _, r := range meta.Rules {
		rule := sarifRule{ID: r.ID}
		if r.Description != "" {
			rule.ShortDescription = &sarifText{Text: r.Description}
		}
		run.Tool.Driver.Rules = append(run.Tool.Driver.Rules, rule)
	}
	return run
}

func writeSarif(w io.Writer, run sarifRun) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(sarifLog{Version: sarifVersion, Schema: sarifSchema, Runs: []sarifRun{run}})
}

// Sarif форматирует диагностики в SARIF формат (v2.1.0). Коды диагностик
// становятся правилами прогона.
func Sarif(w io.Writer, bag *diag.Bag, fs *source.FileSet, meta SarifRunMeta) error {
	run := newRun(meta)
	seen := make(map[diag.Code]bool)
	for _, d := range bag.Items() {
		if !seen[d.Code] {
			seen[d.Code] = true
			run.Tool.Driver.Rules = append(run.Tool.Driver.Rules, sarifRule{
				ID:               d.Code.ID(),
				ShortDescription: &sarifText{Text: d.Code.Title()},
			})
		}
		f := fs.Get(d.Primary.File)
		start, end := fs.Resolve(d.Primary)
		res := sarifResult{
			RuleID:  d.Code.ID(),
			Level:   sarifLevel(d.Severity),
			Message: sarifText{Text: d.Message},
			Locations: []sarifLocation{{Physical: sarifPhysicalLocation{
				Artifact: sarifArtifact{URI: artifactURI(fs, f)},
				Region: sarifRegion{
					StartLine: start.Line, StartColumn: start.Col,
					EndLine: end.Line, EndColumn: end.Col,
					ByteOffset: d.Primary.Start, ByteLength: d.Primary.End - d.Primary.Start,
				},
			}}},
		}
		for i, n := range d.Notes {
			res.RelatedLocations = append(res.RelatedLocations, spanLocation(fs, n.Span, i+1, n.Msg))
		}
		run.Results = append(run.Results, res)
	}
	return writeSarif(w, run)
}

func spanLocation(fs *source.FileSet, sp source.Span, id int, msg string) sarifLocation {
	start, end := fs.Resolve(sp)
	loc := sarifLocation{
		ID: id,
		Physical: sarifPhysicalLocation{
			Artifact: sarifArtifact{URI: artifactURI(fs, fs.Get(sp.File))},
			Region: sarifRegion{
				StartLine: start.Line, StartColumn: start.Col,
				EndLine: end.Line, EndColumn: end.Col,
				ByteOffset: sp.Start, ByteLength: sp.End - sp.Start,
			},
		},
	}
	if msg != "" {
		loc.Message = &sarifText{Text: msg}
	}
	return loc
}

func issueRegion(l check.Location) sarifRegion {
	r := sarifRegion{
		StartLine: l.Line, StartColumn: l.Col,
		EndLine: l.EndLine, EndColumn: l.EndCol,
		ByteOffset: l.Span.Start, ByteLength: l.Span.End - l.Span.Start,
	}
	if l.Span.End > l.Span.Start {
		r.EndColumn++ // Location включает конец, SARIF нет
	}
	return r
}

// IssuesSARIF writes issues as a SARIF 2.1.0 log with one run. Every issue
// is a warning-level result whose ruleId is the check key; meta.Rules
// should list the checks that ran.
func IssuesSARIF(w io.Writer, issues []check.Issue, fs *source.FileSet, meta SarifRunMeta) error {
	run := newRun(meta)
	for i := range run.Tool.Driver.Rules {
		run.Tool.Driver.Rules[i].DefaultConfig = &sarifConfig{Level: "warning"}
	}
	for _, is := range issues {
		f := fs.Get(is.Location.Span.File)
		res := sarifResult{
			RuleID:  is.Check,
			Level:   "warning",
			Message: sarifText{Text: is.Message},
			Locations: []sarifLocation{{Physical: sarifPhysicalLocation{
				Artifact: sarifArtifact{URI: artifactURI(fs, f)},
				Region:   issueRegion(is.Location),
			}}},
		}
		for j, sec := range is.Secondaries {
			loc := sarifLocation{
				ID: j + 1,
				Physical: sarifPhysicalLocation{
					Artifact: sarifArtifact{URI: artifactURI(fs, fs.Get(sec.Span.File))},
					Region:   issueRegion(sec.Location),
				},
			}
			if sec.Message != "" {
				loc.Message = &sarifText{Text: sec.Message}
			}
			res.RelatedLocations = append(res.RelatedLocations, loc)
		}
		run.Results = append(run.Results, res)
	}
	return writeSarif(w, run)
}
