package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"sable/internal/diag"
	"sable/internal/diagfmt"
	"sable/internal/parser"
	"sable/internal/profile"
	"sable/internal/source"
)

// loadProfile находит профиль для target: явный --profile или ближайший
// sable.toml выше target.
func loadProfile(cmd *cobra.Command, target string) (*profile.Profile, error) {
	explicit, err := cmd.Root().PersistentFlags().GetString("profile")
	if err != nil {
		return nil, fmt.Errorf("failed to get profile flag: %w", err)
	}
	startDir := target
	if info, statErr := os.Stat(target); statErr == nil && !info.IsDir() {
		startDir = filepath.Dir(target)
	}
	prof, err := profile.Resolve(explicit, startDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return prof, nil
}

// goalFlag adds --goal to commands that parse.
func goalFlag(cmd *cobra.Command) {
	cmd.Flags().String("goal", "", "grammar goal (auto|script|module); default from profile")
}

func resolveGoal(cmd *cobra.Command, prof *profile.Profile) (parser.Goal, error) {
	value, err := cmd.Flags().GetString("goal")
	if err != nil {
		return 0, fmt.Errorf("failed to get goal flag: %w", err)
	}
	if value == "" {
		return prof.Goal, nil
	}
	return profile.ParseGoal(value)
}

func maxDiagnostics(cmd *cobra.Command) (int, error) {
	n, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return 0, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	return n, nil
}

func checkFormat(format string, allowed ...string) (string, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	for _, a := range allowed {
		if format == a {
			return format, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (expected %s)", format, strings.Join(allowed, "|"))
}

// printDiagnostics выводит диагностики в stderr.
func printDiagnostics(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet) {
	if bag == nil || bag.Len() == 0 {
		return
	}
	bag.Sort()
	bag.Dedup()
	diagfmt.Pretty(os.Stderr, bag, fs, diagfmt.PrettyOpts{
		Color:     useColor(cmd, os.Stderr),
		Context:   1,
		PathMode:  diagfmt.PathModeAuto,
		ShowNotes: true,
	})
	if n := bag.Dropped(); n > 0 {
		fmt.Fprintf(os.Stderr, "... %d more diagnostic(s) not shown (raise --max-diagnostics)\n", n) //nolint:errcheck
	}
}
