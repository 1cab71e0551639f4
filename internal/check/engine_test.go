package check_test

import (
	"errors"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sable/internal/ast"
	"sable/internal/check"
	"sable/internal/diag"
	"sable/internal/parser"
	"sable/internal/source"
	"sable/internal/symbols"
)

func parse(t *testing.T, src string) (*ast.Tree, *symbols.Model) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("engine.js", []byte(src)))
	res := parser.ParseFile(file, parser.Options{})
	require.NoError(t, res.Err)
	return res.Tree, symbols.Resolve(res.Tree)
}

// kindCheck reports every node of one kind.
type kindCheck struct {
	key   string
	kind  ast.Kind
	msg   string
	panic bool
	seen  int
}

func (c *kindCheck) Key() string        { return c.key }
func (c *kindCheck) Kinds() ast.KindSet { return ast.NewKindSet(c.kind) }
func (c *kindCheck) Visit(ctx *check.Context, id ast.NodeID) {
	c.seen++
	if c.panic && c.seen == 2 {
		panic("boom")
	}
	ctx.Report(id, c.msg)
}

// endCheck reports once from End, or fails there.
type endCheck struct {
	err    error
	begun  bool
	MaxLen int
}

func (c *endCheck) Key() string                      { return "End" }
func (c *endCheck) Kinds() ast.KindSet               { return ast.KindSet{} }
func (c *endCheck) Visit(*check.Context, ast.NodeID) {}
func (c *endCheck) Begin(*check.Context) error       { c.begun = true; return nil }
func (c *endCheck) Params(fs *pflag.FlagSet)         { fs.IntVar(&c.MaxLen, "maxLen", 3, "maximum length") }
func (c *endCheck) End(ctx *check.Context) error {
	if c.err != nil {
		return c.err
	}
	ctx.Report(ctx.Tree.Root, "end").Secondary(ctx.Tree.Root, "whole file")
	return nil
}

func TestEngineOrdersIssues(t *testing.T) {
	tree, model := parse(t, "var a = 1;\nvar b = a == 2;\n")
	ids := &kindCheck{key: "Ids", kind: ast.KindIdentifierReference, msg: "ref"}
	bins := &kindCheck{key: "Bin", kind: ast.KindBinary, msg: "binary"}
	end := &endCheck{}

	res := check.NewEngine(check.EngineOptions{}).Run(tree, model, nil, []check.Check{ids, bins, end})
	require.Empty(t, res.Failures)
	require.True(t, end.begun)
	require.Len(t, res.Issues, 3)

	// End сообщает о корне, он начинается в 1:1.
	assert.Equal(t, "End", res.Issues[0].Check)
	assert.Equal(t, uint32(1), res.Issues[0].Location.Line)
	require.Len(t, res.Issues[0].Secondaries, 1)
	assert.Equal(t, "whole file", res.Issues[0].Secondaries[0].Message)

	// `a == 2` и `a` начинаются в 2:9; Binary посещается раньше.
	assert.Equal(t, "Bin", res.Issues[1].Check)
	assert.Equal(t, "Ids", res.Issues[2].Check)
	assert.Equal(t, uint32(2), res.Issues[1].Location.Line)
	assert.Equal(t, uint32(9), res.Issues[1].Location.Col)
	assert.Equal(t, uint32(14), res.Issues[1].Location.EndCol)
	assert.Less(t, res.Issues[1].Seq, res.Issues[2].Seq)
}

func TestEngineIsolatesFailures(t *testing.T) {
	tree, model := parse(t, "a; b; c;")
	bag := diag.NewBag(10)
	var counted []check.Failure
	eng := check.NewEngine(check.EngineOptions{
		Reporter:  diag.BagReporter{Bag: bag},
		OnFailure: func(f check.Failure) { counted = append(counted, f) },
	})

	crash := &kindCheck{key: "Crash", kind: ast.KindIdentifierReference, msg: "x", panic: true}
	healthy := &kindCheck{key: "Healthy", kind: ast.KindIdentifierReference, msg: "y"}
	failing := &endCheck{err: errors.New("broken")}
	res := eng.Run(tree, model, nil, []check.Check{crash, healthy, failing})

	require.Len(t, res.Failures, 2)
	assert.Equal(t, "Crash", res.Failures[0].Check)
	assert.Equal(t, check.PhaseVisit, res.Failures[0].Phase)
	var pe *check.PanicError
	assert.ErrorAs(t, res.Failures[0], &pe)
	assert.Equal(t, "boom", pe.Value)

	assert.Equal(t, check.PhaseEnd, res.Failures[1].Phase)
	assert.EqualError(t, res.Failures[1].Err, "broken")

	// после сбоя Crash больше не вызывается, а его issues отброшены
	assert.Equal(t, 2, crash.seen)
	assert.Equal(t, 3, healthy.seen)
	require.Len(t, res.Issues, 3)
	for _, is := range res.Issues {
		assert.Equal(t, "Healthy", is.Check)
	}
	assert.Len(t, counted, 2)
	assert.Equal(t, 2, bag.Len())
}

func TestConfigure(t *testing.T) {
	c := &endCheck{}
	require.NoError(t, check.Configure(c, nil))
	assert.Equal(t, 0, c.MaxLen)

	require.NoError(t, check.Configure(c, map[string]string{"maxLen": "9"}))
	assert.Equal(t, 9, c.MaxLen)

	err := check.Configure(c, map[string]string{"nope": "1"})
	require.ErrorIs(t, err, check.ErrUnknownOption)

	err = check.Configure(c, map[string]string{"maxLen": "many"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "maxLen")

	opts := check.Options(c)
	require.Len(t, opts, 1)
	assert.Equal(t, check.Option{Name: "maxLen", Type: "int", Default: "3", Usage: "maximum length"}, opts[0])
}

func TestConfigureNonConfigurable(t *testing.T) {
	c := &kindCheck{key: "Plain"}
	err := check.Configure(c, map[string]string{"x": "1"})
	require.ErrorIs(t, err, check.ErrUnknownOption)
	assert.Empty(t, check.Options(c))
}
