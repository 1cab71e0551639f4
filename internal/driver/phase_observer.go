package driver

import "time"

// Stage is the pipeline step a progress event refers to.
type Stage uint8

const (
	StageQueued Stage = iota
	StageLex
	StageParse
	StageResolve
	StageCheck
)

func (s Stage) String() string {
	switch s {
	case StageLex:
		return "lexing"
	case StageParse:
		return "parsing"
	case StageResolve:
		return "resolving"
	case StageCheck:
		return "checking"
	default:
		return "queued"
	}
}

// Status reports whether a stage started or how the file ended.
type Status uint8

const (
	StatusQueued Status = iota
	StatusWorking
	StatusDone
	StatusCached
	StatusError
)

// Event describes the progress of one file. File is the path as listed.
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Elapsed time.Duration
	Issues  int
	Err     error
}

// ProgressSink receives events from concurrent workers; implementations
// must be safe for concurrent use.
type ProgressSink func(Event)

func (s ProgressSink) emit(ev Event) {
	if s != nil {
		s(ev)
	}
}
