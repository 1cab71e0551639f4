package driver

import "fmt"

// Phase names the pipeline stage in which a file was aborted.
type Phase string

const (
	PhaseLoad   Phase = "load"
	PhaseLex    Phase = "lex"
	PhaseParse  Phase = "parse"
	PhaseConfig Phase = "config"
)

// AnalysisError aborts one file. Err is the underlying *lexer.LexError,
// *parser.SyntaxError or I/O error; use errors.As to get at it.
type AnalysisError struct {
	Path  string
	Phase Phase
	Err   error
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Path, e.Phase, e.Err)
}

func (e *AnalysisError) Unwrap() error { return e.Err }
