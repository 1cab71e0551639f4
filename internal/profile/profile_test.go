package profile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sable/internal/checks"
	"sable/internal/parser"
	"sable/internal/profile"
)

func writeProfile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, profile.FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeProfile(t, t.TempDir(), `
[profile]
name = "team"
encoding = "windows-1252"
goal = "module"
exclude = ["**/vendor/**", "*.min.js"]
checks = ["NewOperatorMisuse", "ExcessiveParameterList", "ImplicitGlobal"]

[checks.NewOperatorMisuse]
considerJSDoc = true

[checks.ExcessiveParameterList]
maximumFunctionParameters = 3

[checks.ImplicitGlobal]
globals = ["$", "jQuery"]
`)
	p, err := profile.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "team", p.Name)
	assert.Equal(t, "windows-1252", p.Encoding)
	assert.Equal(t, parser.GoalModule, p.Goal)
	assert.Equal(t, map[string]string{"considerJSDoc": "true"}, p.Options["NewOperatorMisuse"])
	assert.Equal(t, map[string]string{"maximumFunctionParameters": "3"}, p.Options["ExcessiveParameterList"])
	assert.Equal(t, map[string]string{"globals": "$,jQuery"}, p.Options["ImplicitGlobal"])

	cs, err := p.Checks()
	require.NoError(t, err)
	require.Len(t, cs, 3)
	assert.True(t, cs[0].(*checks.NewOperatorMisuse).ConsiderJSDoc)
	assert.Equal(t, 3, cs[1].(*checks.ExcessiveParameterList).Maximum)
	assert.Equal(t, []string{"$", "jQuery"}, cs[2].(*checks.ImplicitGlobal).Globals)
}

func TestDefaultAndDisabled(t *testing.T) {
	p, err := profile.Load(writeProfile(t, t.TempDir(), `
[checks.WithStatement]
enabled = false
`))
	require.NoError(t, err)
	assert.Equal(t, "default", p.Name)
	assert.Nil(t, p.Active)
	assert.False(t, p.Enabled("WithStatement"))
	assert.True(t, p.Enabled("EqEqEq"))

	cs, err := p.Checks()
	require.NoError(t, err)
	assert.Len(t, cs, len(checks.Keys())-1)
	for _, c := range cs {
		assert.NotEqual(t, "WithStatement", c.Key())
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{"goal", "[profile]\ngoal = \"strict\"\n", profile.ErrUnknownGoal},
		{"encoding", "[profile]\nencoding = \"klingon\"\n", profile.ErrUnknownEncoding},
		{"pattern", "[profile]\nexclude = [\"[a-\"]\n", profile.ErrBadPattern},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := profile.Load(writeProfile(t, t.TempDir(), tt.content))
			require.ErrorIs(t, err, tt.want)
		})
	}

	_, err := profile.Load(writeProfile(t, t.TempDir(), "[profile\n"))
	require.Error(t, err)
}

func TestUnknownCheckAndOption(t *testing.T) {
	p, err := profile.Load(writeProfile(t, t.TempDir(), "[checks.Nope]\nx = 1\n"))
	require.NoError(t, err)
	_, err = p.Checks()
	require.ErrorIs(t, err, checks.ErrUnknownCheck)

	p, err = profile.Load(writeProfile(t, t.TempDir(), "[checks.EqEqEq]\nstrict = true\n"))
	require.NoError(t, err)
	_, err = p.Checks()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "strict")
}

func TestExcluded(t *testing.T) {
	p := profile.Default()
	require.NoError(t, p.SetExclude([]string{"**/vendor/**", "*.min.js", "build/*.js"}))
	assert.True(t, p.Excluded("lib/vendor/jquery.js"))
	assert.True(t, p.Excluded("deep/dir/app.min.js"))
	assert.True(t, p.Excluded("build/out.js"))
	assert.False(t, p.Excluded("build/sub/out.js"))
	assert.False(t, p.Excluded("src/app.js"))
}

func TestFindAndResolve(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	path := writeProfile(t, root, "[profile]\nname = \"found\"\n")

	got, ok, err := profile.Find(nested)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, path, got)

	p, err := profile.Resolve("", nested)
	require.NoError(t, err)
	assert.Equal(t, "found", p.Name)
}

func TestFingerprint(t *testing.T) {
	a := profile.Default()
	b := profile.Default()
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())

	b.Options["EqEqEq"] = map[string]string{"x": "1"}
	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())

	c := profile.Default()
	c.Disabled["WithStatement"] = true
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())

	var content profile.Digest
	assert.NotEqual(t, profile.Combine(content, a.Fingerprint()), profile.Combine(content, c.Fingerprint()))
}
