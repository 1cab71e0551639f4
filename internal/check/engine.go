package check

import (
	"cmp"
	"fmt"
	"runtime/debug"
	"slices"

	"sable/internal/ast"
	"sable/internal/diag"
	"sable/internal/source"
	"sable/internal/symbols"
	"sable/internal/types"
)

// Phase names the stage of a check in which a failure happened.
type Phase string

const (
	PhaseBegin Phase = "begin"
	PhaseVisit Phase = "visit"
	PhaseEnd   Phase = "end"
)

// Failure records a check that returned an error or panicked on a file.
// All issues of that check for the file are dropped.
type Failure struct {
	Check string
	Phase Phase
	Err   error
}

func (f Failure) Error() string {
	return fmt.Sprintf("check %s failed in %s: %v", f.Check, f.Phase, f.Err)
}

func (f Failure) Unwrap() error { return f.Err }

// PanicError wraps a value recovered from a panicking check.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string { return fmt.Sprintf("panic: %v", e.Value) }

// Result is the outcome of one Engine.Run.
type Result struct {
	Issues   []Issue
	Failures []Failure
}

// EngineOptions configure an Engine. All fields are optional.
type EngineOptions struct {
	// Reporter receives a ChkFailure diagnostic per failed check.
	Reporter diag.Reporter
	// OnFailure is called for every failure, e.g. to count it.
	OnFailure func(Failure)
	// Table overrides the framework pattern table used for tag inference.
	Table *types.Table
}

// Engine runs checks over files. It holds no per-file state and may be used
// from several goroutines, provided each run gets its own check instances.
type Engine struct {
	opts EngineOptions
}

func NewEngine(opts EngineOptions) *Engine {
	if opts.Table == nil {
		opts.Table = types.DefaultTable()
	}
	return &Engine{opts: opts}
}

type runner struct {
	check  Check
	kinds  ast.KindSet
	ctx    *Context
	failed bool
}

// Run executes checks over tree in one pre-order traversal. Each node is
// dispatched to the interested checks in registration order. lazy may be
// nil, in which case tag inference is set up here and runs on first use.
func (e *Engine) Run(tree *ast.Tree, model *symbols.Model, lazy *types.Lazy, checks []Check) Result {
	if lazy == nil {
		lazy = types.NewLazyWithTable(model, tree, e.opts.Table)
	}
	var (
		seq      int
		res      Result
		interest ast.KindSet
	)
	runners := make([]*runner, 0, len(checks))
	for _, c := range checks {
		r := &runner{
			check: c,
			kinds: c.Kinds(),
			ctx:   &Context{Tree: tree, Model: model, check: c.Key(), types: lazy, seq: &seq},
		}
		runners = append(runners, r)
		interest = interest.Union(r.kinds)
	}

	for _, r := range runners {
		if s, ok := r.check.(Starter); ok {
			e.guard(r, PhaseBegin, &res, func() error { return s.Begin(r.ctx) })
		}
	}
	if !interest.Empty() {
		tree.Preorder(interest, func(id ast.NodeID) {
			k := tree.Kind(id)
			for _, r := range runners {
				if r.failed || !r.kinds.Has(k) {
					continue
				}
				e.guard(r, PhaseVisit, &res, func() error {
					r.check.Visit(r.ctx, id)
					return nil
				})
			}
		})
	}
	for _, r := range runners {
		if f, ok := r.check.(Finisher); ok && !r.failed {
			e.guard(r, PhaseEnd, &res, func() error { return f.End(r.ctx) })
		}
	}

	for _, r := range runners {
		if !r.failed {
			res.Issues = append(res.Issues, r.ctx.issues...)
		}
	}
	SortIssues(res.Issues)
	return res
}

// guard runs fn for r, turning an error or panic into a Failure.
func (e *Engine) guard(r *runner, phase Phase, res *Result, fn func() error) {
	if r.failed {
		return
	}
	err := func() (err error) {
		defer func() {
			if v := recover(); v != nil {
				err = &PanicError{Value: v, Stack: debug.Stack()}
			}
		}()
		return fn()
	}()
	if err == nil {
		return
	}
	r.failed = true
	f := Failure{Check: r.check.Key(), Phase: phase, Err: err}
	res.Failures = append(res.Failures, f)
	if e.opts.OnFailure != nil {
		e.opts.OnFailure(f)
	}
	if e.opts.Reporter != nil {
		sp := source.Span{File: r.ctx.Tree.File.ID}
		diag.ReportWarning(e.opts.Reporter, diag.ChkFailure, sp, f.Error()).Emit()
	}
}

// SortIssues orders issues by line, column and emission sequence.
func SortIssues(issues []Issue) {
	slices.SortStableFunc(issues, func(a, b Issue) int {
		return cmp.Or(
			cmp.Compare(a.Location.Line, b.Location.Line),
			cmp.Compare(a.Location.Col, b.Location.Col),
			cmp.Compare(a.Seq, b.Seq),
		)
	})
}
