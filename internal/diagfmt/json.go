package diagfmt

import (
	"encoding/json"
	"io"

	"sable/internal/check"
	"sable/internal/diag"
	"sable/internal/source"
)

// LocationJSON представляет местоположение в файле для JSON
type LocationJSON struct {
	File      string `json:"file"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	StartLine uint32 `json:"start_line,omitempty"`
	StartCol  uint32 `json:"start_col,omitempty"`
	EndLine   uint32 `json:"end_line,omitempty"`
	EndCol    uint32 `json:"end_col,omitempty"`
}

// NoteJSON представляет дополнительную заметку для JSON
type NoteJSON struct {
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
}

// DiagnosticJSON представляет диагностику в JSON формате
type DiagnosticJSON struct {
	Severity string       `json:"severity"`
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
	Notes    []NoteJSON   `json:"notes,omitempty"`
}

// DiagnosticsOutput представляет корневую структуру JSON вывода
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

// IssueJSON is one check issue. Positions are 1-based, end inclusive.
type IssueJSON struct {
	Check       string       `json:"check"`
	Message     string       `json:"message"`
	Location    LocationJSON `json:"location"`
	Secondaries []NoteJSON   `json:"secondaries,omitempty"`
}

// IssuesOutput is the root of the issues JSON document.
type IssuesOutput struct {
	Issues []IssueJSON `json:"issues"`
	Count  int         `json:"count"`
}

// makeLocation создаёт LocationJSON из Span
func makeLocation(span source.Span, fs *source.FileSet, pathMode PathMode, includePositions bool) LocationJSON {
	f := fs.Get(span.File)
	loc := LocationJSON{
		File:      formatPath(fs, f, pathMode),
		StartByte: span.Start,
		EndByte:   span.End,
	}

	// Добавляем позиции строк/колонок если требуется
	if includePositions {
		startPos, endPos := fs.Resolve(span)
		loc.StartLine = startPos.Line
		loc.StartCol = startPos.Col
		loc.EndLine = endPos.Line
		loc.EndCol = endPos.Col
	}

	return loc
}

func issueLocation(l check.Location, fs *source.FileSet, pathMode PathMode) LocationJSON {
	return LocationJSON{
		File:      formatPath(fs, fs.Get(l.Span.File), pathMode),
		StartByte: l.Span.Start,
		EndByte:   l.Span.End,
		StartLine: l.Line,
		StartCol:  l.Col,
		EndLine:   l.EndLine,
		EndCol:    l.EndCol,
	}
}

// BuildDiagnosticsOutput формирует структуру JSON-вывода без сериализации.
func BuildDiagnosticsOutput(bag *diag.Bag, fs *source.FileSet, opts JSONOpts) DiagnosticsOutput {
	items := bag.Items()
	maxItems := len(items)
	if opts.Max > 0 && opts.Max < maxItems {
		maxItems = opts.Max
	}
	diagnostics := make([]DiagnosticJSON, 0, maxItems)

	for i := range maxItems {
		d := items[i]

		diagJSON := DiagnosticJSON{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Message:  d.Message,
			Location: makeLocation(d.Primary, fs, opts.PathMode, opts.IncludePositions),
		}

		includeNotes := opts.IncludeNotes || d.Code == diag.ObsTimings
		if includeNotes && len(d.Notes) > 0 {
			diagJSON.Notes = make([]NoteJSON, len(d.Notes))
			for j, note := range d.Notes {
				diagJSON.Notes[j] = NoteJSON{
					Message:  note.Msg,
					Location: makeLocation(note.Span, fs, opts.PathMode, opts.IncludePositions),
				}
			}
		}
		diagnostics = append(diagnostics, diagJSON)
	}

	return DiagnosticsOutput{
		Diagnostics: diagnostics,
		Count:       len(diagnostics),
	}
}

// JSON форматирует диагностики в JSON формат
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildDiagnosticsOutput(bag, fs, opts))
}

// BuildIssuesOutput converts issues; opts.Max truncates, positions are
// always included.
func BuildIssuesOutput(issues []check.Issue, fs *source.FileSet, opts JSONOpts) IssuesOutput {
	n := len(issues)
	if opts.Max > 0 && opts.Max < n {
		n = opts.Max
	}
	out := make([]IssueJSON, 0, n)
	for _, is := range issues[:n] {
		ij := IssueJSON{
			Check:    is.Check,
			Message:  is.Message,
			Location: issueLocation(is.Location, fs, opts.PathMode),
		}
		for _, sec := range is.Secondaries {
			ij.Secondaries = append(ij.Secondaries, NoteJSON{
				Message:  sec.Message,
				Location: issueLocation(sec.Location, fs, opts.PathMode),
			})
		}
		out = append(out, ij)
	}
	return IssuesOutput{Issues: out, Count: len(out)}
}

// IssuesJSON writes issues as an indented JSON document.
func IssuesJSON(w io.Writer, issues []check.Issue, fs *source.FileSet, opts JSONOpts) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildIssuesOutput(issues, fs, opts))
}
