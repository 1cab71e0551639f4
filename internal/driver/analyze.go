package driver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"sable/internal/ast"
	"sable/internal/check"
	"sable/internal/diag"
	"sable/internal/lexer"
	"sable/internal/observ"
	"sable/internal/parser"
	"sable/internal/profile"
	"sable/internal/source"
	"sable/internal/symbols"
	"sable/internal/types"
)

// Options configure file and directory analysis. Zero values are usable.
type Options struct {
	Profile        *profile.Profile // nil: profile.Default()
	MaxDiagnostics int
	Jobs           int // <=0: GOMAXPROCS
	Cache          *DiskCache
	Metrics        *observ.Metrics
	Logger         *slog.Logger
	Progress       ProgressSink
	// Timings appends an ObsTimings diagnostic per file.
	Timings bool
	// KeepTrees keeps Tree and Model in results; otherwise they are dropped
	// once checks ran, so large directories do not pin every tree.
	KeepTrees bool
}

func (o *Options) normalize() {
	if o.Profile == nil {
		o.Profile = profile.Default()
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
}

// FileResult is the outcome for one file.
type FileResult struct {
	Path     string
	File     *source.File // nil when loading failed
	Tree     *ast.Tree
	Model    *symbols.Model
	Issues   []check.Issue
	Failures []check.Failure
	Bag      *diag.Bag
	// Err is an *AnalysisError when the file was aborted.
	Err    error
	Cached bool
	Timing observ.Report
}

// AnalyzeFile runs the whole pipeline over a loaded file.
func AnalyzeFile(ctx context.Context, file *source.File, opts Options) FileResult {
	opts.normalize()
	res := FileResult{Path: file.Path, File: file, Bag: diag.NewBag(opts.MaxDiagnostics)}
	a := &analysis{opts: opts, res: &res, timer: observ.NewTimer()}
	a.run(ctx)
	res.Timing = a.timer.Report()
	opts.Metrics.ObserveReport(res.Timing)
	if opts.Timings {
		appendTimingDiagnostic(res.Bag, file.ID, timingPayload{Path: file.Path, TotalMS: res.Timing.TotalMS, Phases: res.Timing.Phases})
	}
	a.count()
	if !opts.KeepTrees {
		res.Tree, res.Model = nil, nil
	}
	return res
}

type analysis struct {
	opts  Options
	res   *FileResult
	timer *observ.Timer
}

func (a *analysis) run(ctx context.Context) {
	file, log := a.res.File, a.opts.Logger
	// лексер и парсер могут сообщить об одной и той же позиции дважды
	rep := diag.NewDedupReporter(diag.BagReporter{Bag: a.res.Bag})

	if err := ctx.Err(); err != nil {
		a.abort(PhaseLoad, err)
		return
	}
	var key profile.Digest
	if a.opts.Cache != nil {
		key = CacheKey(file, a.opts.Profile)
		if a.fromCache(key) {
			return
		}
	}

	a.emit(StageLex, StatusWorking)
	stop := a.timer.Track("lex")
	toks, err := lexer.TokenizeWith(file, lexer.Options{Reporter: rep})
	stop(fmt.Sprintf("%d tokens", len(toks)))
	if err != nil {
		a.abort(PhaseLex, err)
		return
	}

	a.emit(StageParse, StatusWorking)
	stop = a.timer.Track("parse")
	tree, err := parser.Parse(file, toks, parser.Options{Goal: a.opts.Profile.Goal, Reporter: rep})
	stop("")
	if err != nil {
		a.abort(PhaseParse, err)
		return
	}
	a.res.Tree = tree

	a.emit(StageResolve, StatusWorking)
	stop = a.timer.Track("resolve")
	model := symbols.Resolve(tree)
	stop(fmt.Sprintf("%d symbols", len(model.Symbols.Data())))
	a.res.Model = model

	checks, err := a.opts.Profile.Checks()
	if err != nil {
		diag.ReportError(rep, diag.ChkConfig, source.Span{File: file.ID}, err.Error()).Emit()
		a.abort(PhaseConfig, err)
		return
	}

	a.emit(StageCheck, StatusWorking)
	stop = a.timer.Track("check")
	eng := check.NewEngine(check.EngineOptions{
		Reporter: rep,
		OnFailure: func(f check.Failure) {
			log.Warn("check failed", "path", file.Path, "check", f.Check, "phase", string(f.Phase), "error", f.Err)
			if a.opts.Metrics != nil {
				a.opts.Metrics.CheckFailures.WithLabelValues(f.Check).Inc()
			}
		},
	})
	out := eng.Run(tree, model, types.NewLazy(model, tree), checks)
	stop(fmt.Sprintf("%d issues", len(out.Issues)))
	a.res.Issues, a.res.Failures = out.Issues, out.Failures

	if a.opts.Cache != nil && len(out.Failures) == 0 {
		if err := a.opts.Cache.Put(key, &DiskPayload{Path: file.Path, Issues: out.Issues}); err != nil {
			log.Warn("cache write failed", "path", file.Path, "error", err)
			diag.ReportWarning(rep, diag.IOCacheError, source.Span{File: file.ID}, err.Error()).Emit()
		}
	}
	log.Debug("analysed", "path", file.Path, "issues", len(out.Issues), "failures", len(out.Failures))
	a.opts.Progress.emit(Event{File: a.res.Path, Stage: StageCheck, Status: StatusDone, Issues: len(out.Issues)})
}

func (a *analysis) fromCache(key profile.Digest) bool {
	var payload DiskPayload
	ok, err := a.opts.Cache.Get(key, &payload)
	if err != nil {
		a.opts.Logger.Warn("cache read failed", "path", a.res.Path, "error", err)
		return false
	}
	if !ok {
		return false
	}
	// FileID в кэше от другого запуска
	for i := range payload.Issues {
		is := &payload.Issues[i]
		is.Location.Span.File = a.res.File.ID
		for j := range is.Secondaries {
			is.Secondaries[j].Span.File = a.res.File.ID
		}
	}
	a.res.Issues = payload.Issues
	a.res.Cached = true
	if a.opts.Metrics != nil {
		a.opts.Metrics.CacheHits.Inc()
	}
	a.opts.Progress.emit(Event{File: a.res.Path, Stage: StageCheck, Status: StatusCached, Issues: len(payload.Issues)})
	return true
}

func (a *analysis) emit(stage Stage, status Status) {
	a.opts.Progress.emit(Event{File: a.res.Path, Stage: stage, Status: status})
}

func (a *analysis) abort(phase Phase, err error) {
	a.res.Err = &AnalysisError{Path: a.res.Path, Phase: phase, Err: err}
	if a.opts.Metrics != nil {
		a.opts.Metrics.PhaseFailures.WithLabelValues(string(phase)).Inc()
	}
	if !errors.Is(err, context.Canceled) {
		a.opts.Logger.Debug("file aborted", "path", a.res.Path, "phase", string(phase), "error", err)
	}
	a.opts.Progress.emit(Event{File: a.res.Path, Status: StatusError, Err: a.res.Err})
}

func (a *analysis) count() {
	m := a.opts.Metrics
	if m == nil {
		return
	}
	status := "ok"
	switch {
	case a.res.Err != nil:
		status = "error"
	case a.res.Cached:
		status = "cached"
	}
	m.FilesTotal.WithLabelValues(status).Inc()
	for _, is := range a.res.Issues {
		m.IssuesTotal.WithLabelValues(is.Check).Inc()
	}
}
