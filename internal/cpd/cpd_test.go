package cpd_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sable/internal/cpd"
	"sable/internal/lexer"
	"sable/internal/source"
)

func file(src string) *source.File {
	fs := source.NewFileSet()
	return fs.Get(fs.AddVirtual("cpd.js", []byte(src)))
}

func values(toks []cpd.Token) []string {
	out := make([]string, len(toks))
	for i, t := range toks {
		out[i] = t.Value
	}
	return out
}

func TestNormalization(t *testing.T) {
	toks, err := cpd.Tokenize(file("var s = 'a' + `b${1}c`; // note\nx = /re/g.test(0x1F);"))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"var", "s", "=", "LITERAL", "+", "LITERAL", "NUMBER", "LITERAL", ";",
		"x", "=", "REGEXP", ".", "test", "(", "NUMBER", ")", ";",
	}, values(toks))
}

func TestPositions(t *testing.T) {
	toks, err := cpd.Tokenize(file("a\n  'str'\n`x\ny`"))
	require.NoError(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, cpd.Token{Value: "LITERAL", Line: 2, Col: 3, EndLine: 2, EndCol: 7}, toks[1])
	assert.Equal(t, cpd.Token{Value: "LITERAL", Line: 3, Col: 1, EndLine: 4, EndCol: 2}, toks[2])
}

func TestPositionsCountCharacters(t *testing.T) {
	toks, err := cpd.Tokenize(file("'日本' + é"))
	require.NoError(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, cpd.Token{Value: "LITERAL", Line: 1, Col: 1, EndLine: 1, EndCol: 4}, toks[0])
	assert.Equal(t, cpd.Token{Value: "é", Line: 1, Col: 8, EndLine: 1, EndCol: 8}, toks[2])
}

func TestLexErrorKeepsPrefix(t *testing.T) {
	toks, err := cpd.Tokenize(file("var a = 1;\nvar b = 'open"))
	require.Error(t, err)
	var lexErr *lexer.LexError
	assert.True(t, errors.As(err, &lexErr))
	assert.Equal(t, []string{"var", "a", "=", "NUMBER", ";", "var", "b", "="}, values(toks))
}
