// Package diag defines the diagnostic model shared by all pipeline phases.
//
// A Diagnostic carries a Severity, a numeric Code with a stable string form
// (LEX/SYN/CHK/IO/CFG/OBS prefixes), a short message, the primary
// source.Span and optional Notes pointing at related spans.
//
// Phases emit through a Reporter so that they do not depend on storage or
// formatting. The lexer and parser build a ReportBuilder via ReportError and
// friends, chain WithNote and call Emit. BagReporter collects into a Bag which
// supports sorting, deduplication and merging.
//
// Rendering lives in internal/diagfmt. Check issues are not diagnostics: they
// are produced by internal/check and only converted to ChkIssue diagnostics at
// the reporting boundary.
package diag
