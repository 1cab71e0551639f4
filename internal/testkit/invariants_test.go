package testkit_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"sable/internal/parser"
	"sable/internal/source"
	"sable/internal/testkit"
)

func TestCheckTreeInvariants(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("ok.js", []byte("function f(a, b) { return a + b }\nf(1, 2);\n")))
	res := parser.ParseFile(file, parser.Options{})
	require.NoError(t, res.Err)
	require.NoError(t, testkit.CheckTreeInvariants(res.Tree))
}

func TestCheckTreeInvariantsRejectsMismatch(t *testing.T) {
	require.Error(t, testkit.CheckTreeInvariants(nil))

	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("ok.js", []byte("a; b;")))
	res := parser.ParseFile(file, parser.Options{})
	require.NoError(t, res.Err)

	// дерево, чей поток токенов потерял последний элемент
	broken := *res.Tree
	broken.Tokens = broken.Tokens[:len(broken.Tokens)-1]
	require.ErrorContains(t, testkit.CheckTreeInvariants(&broken), "leaves")
}
