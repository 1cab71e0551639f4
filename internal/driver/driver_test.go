package driver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sable/internal/diag"
	"sable/internal/lexer"
	"sable/internal/parser"
	"sable/internal/profile"
	"sable/internal/source"
)

func virtual(name, src string) *source.File {
	fs := source.NewFileSet()
	return fs.Get(fs.AddVirtual(name, []byte(src)))
}

func writeFile(t *testing.T, dir, rel, src string) string {
	t.Helper()
	path := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))
	return path
}

func TestAnalyzeFileReportsIssues(t *testing.T) {
	res := AnalyzeFile(context.Background(), virtual("a.js", "debugger;\nif (a == b) {}\n"), Options{KeepTrees: true})
	require.NoError(t, res.Err)
	require.NotNil(t, res.Tree)
	require.NotNil(t, res.Model)

	var keys []string
	for _, is := range res.Issues {
		keys = append(keys, is.Check)
	}
	assert.Contains(t, keys, "DebuggerStatement")
	assert.Contains(t, keys, "EqEqEq")
	assert.Equal(t, uint32(1), res.Issues[0].Location.Line)
	assert.Empty(t, res.Failures)
	assert.False(t, res.Cached)
}

func TestAnalyzeFileDropsTrees(t *testing.T) {
	res := AnalyzeFile(context.Background(), virtual("a.js", "var x = 1;"), Options{})
	require.NoError(t, res.Err)
	assert.Nil(t, res.Tree)
	assert.Nil(t, res.Model)
}

func TestAnalyzeFileAbortPhases(t *testing.T) {
	res := AnalyzeFile(context.Background(), virtual("lex.js", "var s = 'open"), Options{})
	var aerr *AnalysisError
	require.True(t, errors.As(res.Err, &aerr))
	assert.Equal(t, PhaseLex, aerr.Phase)
	var le *lexer.LexError
	assert.True(t, errors.As(res.Err, &le))
	assert.True(t, res.Bag.HasErrors())
	assert.Empty(t, res.Issues)

	res = AnalyzeFile(context.Background(), virtual("syn.js", "var x = ;"), Options{})
	require.True(t, errors.As(res.Err, &aerr))
	assert.Equal(t, PhaseParse, aerr.Phase)
	var se *parser.SyntaxError
	assert.True(t, errors.As(res.Err, &se))
	assert.Equal(t, 1, res.Bag.Len())
	assert.Equal(t, diag.SynExpectExpression, res.Bag.Items()[0].Code)
}

func TestAnalyzeFileHonoursGoal(t *testing.T) {
	prof := profile.Default()
	prof.Goal = parser.GoalScript
	res := AnalyzeFile(context.Background(), virtual("m.js", "import a from 'm';"), Options{Profile: prof})
	var aerr *AnalysisError
	require.True(t, errors.As(res.Err, &aerr))
	assert.Equal(t, PhaseParse, aerr.Phase)

	res = AnalyzeFile(context.Background(), virtual("m.js", "import a from 'm';"), Options{})
	assert.NoError(t, res.Err)
}

func TestAnalyzeFileCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res := AnalyzeFile(ctx, virtual("a.js", "debugger;"), Options{})
	assert.ErrorIs(t, res.Err, context.Canceled)
}

func TestAnalyzeFileTimings(t *testing.T) {
	res := AnalyzeFile(context.Background(), virtual("a.js", "var x = 1;"), Options{Timings: true})
	require.NoError(t, res.Err)
	require.Equal(t, 1, res.Bag.Len())
	d := res.Bag.Items()[0]
	assert.Equal(t, diag.ObsTimings, d.Code)
	assert.Equal(t, diag.SevInfo, d.Severity)
	require.Len(t, d.Notes, 1)
	assert.Contains(t, d.Notes[0].Msg, `"phases"`)
	assert.Len(t, res.Timing.Phases, 4)
}

func TestCacheRoundTrip(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	require.NoError(t, err)

	src := "function f() { var unused; }\ndebugger;\n"
	first := AnalyzeFile(context.Background(), virtual("a.js", src), Options{Cache: cache})
	require.NoError(t, first.Err)
	require.False(t, first.Cached)
	require.NotEmpty(t, first.Issues)

	file := virtual("a.js", src)
	second := AnalyzeFile(context.Background(), file, Options{Cache: cache})
	require.NoError(t, second.Err)
	assert.True(t, second.Cached)
	require.Len(t, second.Issues, len(first.Issues))
	for i := range first.Issues {
		assert.Equal(t, first.Issues[i].Message, second.Issues[i].Message)
		assert.Equal(t, first.Issues[i].Location.Line, second.Issues[i].Location.Line)
		assert.Equal(t, file.ID, second.Issues[i].Location.Span.File)
	}

	// другой профиль даёт другой ключ
	prof := profile.Default()
	prof.Disabled = map[string]bool{"DebuggerStatement": true}
	third := AnalyzeFile(context.Background(), virtual("a.js", src), Options{Cache: cache, Profile: prof})
	assert.False(t, third.Cached)
	assert.Len(t, third.Issues, len(first.Issues)-1)

	require.NoError(t, cache.DropAll())
	fourth := AnalyzeFile(context.Background(), virtual("a.js", src), Options{Cache: cache})
	assert.False(t, fourth.Cached)
}

func TestListFilesAndExclusions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.js", "var b;")
	writeFile(t, dir, "a.mjs", "export var a;")
	writeFile(t, dir, "lib/jquery.min.js", "var $;")
	writeFile(t, dir, "vendor/x.js", "var x;")
	writeFile(t, dir, "README.md", "# readme")

	prof := profile.Default()
	require.NoError(t, prof.SetExclude([]string{"*.min.js", "vendor"}))

	files, err := ListFiles(dir, prof)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.mjs"), filepath.Join(dir, "b.js")}, files)

	files, err = ListFiles(dir, nil)
	require.NoError(t, err)
	assert.Len(t, files, 4)
}

func TestAnalyzeDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ok.js", "debugger;\n")
	writeFile(t, dir, "broken.js", "var = 1;\n")
	writeFile(t, dir, "sub/clean.js", "var x = 1;\nx++;\n")

	var (
		mu     sync.Mutex
		events []Event
	)
	opts := Options{
		Jobs: 2,
		Progress: func(ev Event) {
			mu.Lock()
			events = append(events, ev)
			mu.Unlock()
		},
	}
	fs, results, err := AnalyzeDir(context.Background(), dir, opts)
	require.NoError(t, err)
	require.NotNil(t, fs)
	require.Len(t, results, 3)

	byName := make(map[string]FileResult)
	for _, r := range results {
		rel, relErr := filepath.Rel(dir, r.Path)
		require.NoError(t, relErr)
		byName[filepath.ToSlash(rel)] = r
	}
	var aerr *AnalysisError
	require.True(t, errors.As(byName["broken.js"].Err, &aerr))
	assert.Equal(t, PhaseParse, aerr.Phase)
	require.NoError(t, byName["ok.js"].Err)
	require.Len(t, byName["ok.js"].Issues, 1)
	assert.Equal(t, "DebuggerStatement", byName["ok.js"].Issues[0].Check)
	assert.NoError(t, byName["sub/clean.js"].Err)

	finals := map[string]Status{}
	for _, ev := range events {
		if ev.Status != StatusQueued && ev.Status != StatusWorking {
			finals[filepath.Base(ev.File)] = ev.Status
		}
	}
	assert.Len(t, finals, 3)
	assert.Equal(t, StatusError, finals["broken.js"])
	assert.Equal(t, StatusDone, finals["ok.js"])
}

func TestAnalyzePathsLoadFailure(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.js", "var a = 1;")
	missing := filepath.Join(dir, "missing.js")

	results, err := AnalyzePaths(context.Background(), source.NewFileSet(), []string{good, missing}, Options{})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.NoError(t, results[0].Err)

	var aerr *AnalysisError
	require.True(t, errors.As(results[1].Err, &aerr))
	assert.Equal(t, PhaseLoad, aerr.Phase)
	require.Equal(t, 1, results[1].Bag.Len())
	assert.Equal(t, diag.IOLoadFileError, results[1].Bag.Items()[0].Code)
}

func TestAnalyzePathsRepeatedPath(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.js", "debugger;")

	fs := source.NewFileSet()
	results, err := AnalyzePaths(context.Background(), fs, []string{path, path}, Options{})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, 1, fs.Len(), "a repeated path is loaded once")
	assert.Same(t, results[0].File, results[1].File)
	assert.Equal(t, len(results[0].Issues), len(results[1].Issues))
}

func TestTokenizeAndParse(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.js", "var a = 'open")

	tr, err := Tokenize(path, "", 0)
	require.NoError(t, err)
	assert.Error(t, tr.Err)
	assert.NotEmpty(t, tr.Tokens)

	path = writeFile(t, dir, "b.js", "var b = 1;")
	pr, err := Parse(path, "", parser.GoalAuto, 0)
	require.NoError(t, err)
	require.NoError(t, pr.Err)
	assert.NotNil(t, pr.Tree)

	_, err = Parse(filepath.Join(dir, "none.js"), "", parser.GoalAuto, 0)
	assert.Error(t, err)
}
