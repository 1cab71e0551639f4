package main

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	level, err := parseLogLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	level, err = parseLogLevel(" WARN ")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)

	_, err = parseLogLevel("loud")
	assert.Error(t, err)
}

func TestReadUIMode(t *testing.T) {
	for in, want := range map[string]uiMode{"": uiModeAuto, "ON": uiModeOn, "off": uiModeOff} {
		got, err := readUIMode(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := readUIMode("maybe")
	assert.Error(t, err)
}

func TestCheckFormat(t *testing.T) {
	f, err := checkFormat("JSON", "pretty", "json")
	require.NoError(t, err)
	assert.Equal(t, "json", f)

	_, err = checkFormat("xml", "pretty", "json")
	assert.ErrorContains(t, err, "pretty|json")
}

func TestVersionReport(t *testing.T) {
	rep := buildVersionReport(true, false, true)
	rep.Version = "1.2.3"

	var buf bytes.Buffer
	require.NoError(t, writeVersionJSON(&buf, rep))
	var payload versionReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &payload))
	assert.Equal(t, "sable", payload.Tool)
	assert.Equal(t, "1.2.3", payload.Version)
	assert.Equal(t, "ES2015", payload.Grammar)
	assert.NotEmpty(t, payload.GitCommit)
	assert.Empty(t, payload.BuildDate)
	assert.Contains(t, payload.Checks, "EqEqEq")

	buf.Reset()
	writeVersionPretty(&buf, rep)
	assert.Contains(t, buf.String(), "sable 1.2.3 (ES2015)")
	assert.Contains(t, buf.String(), "checks: ")
	assert.Equal(t, "unknown", orUnknown("  "))
}

func TestRenderRulesPretty(t *testing.T) {
	var buf bytes.Buffer
	renderRulesPretty(&buf, []ruleOutput{{Key: "EqEqEq", Enabled: false}})
	assert.Contains(t, buf.String(), "EqEqEq")
	assert.Contains(t, buf.String(), "[off]")
}

func TestOpenCache(t *testing.T) {
	newCmd := func(args ...string) *cobra.Command {
		c := &cobra.Command{Use: "check"}
		analysisFlags(c)
		require.NoError(t, c.Flags().Parse(args))
		return c
	}
	assert.Nil(t, openCache(newCmd()))

	dir := filepath.Join(t.TempDir(), "cache")
	require.NotNil(t, openCache(newCmd("--cache", "--cache-dir", dir)))
	stale := filepath.Join(dir, "stale.msgpack")
	require.NoError(t, os.WriteFile(stale, []byte("x"), 0o600))

	// --clear-cache включает кэш и очищает каталог
	require.NotNil(t, openCache(newCmd("--clear-cache", "--cache-dir", dir)))
	_, err := os.Stat(stale)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
