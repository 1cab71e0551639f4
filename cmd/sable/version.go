package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"sable/internal/checks"
	"sable/internal/version"
)

// grammarEdition is the only ECMAScript edition the parser accepts.
const grammarEdition = "ES2015"

// versionReport is both the JSON payload and the source of the pretty output.
type versionReport struct {
	Tool      string   `json:"tool"`
	Version   string   `json:"version"`
	Grammar   string   `json:"grammar"`
	GitCommit string   `json:"git_commit,omitempty"`
	BuildDate string   `json:"build_date,omitempty"`
	Checks    []string `json:"checks,omitempty"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show sable build information",
	RunE:  runVersion,
}

func init() {
	versionCmd.Flags().Bool("hash", false, "include git commit hash")
	versionCmd.Flags().Bool("date", false, "include build timestamp")
	versionCmd.Flags().Bool("full", false, "show build metadata and the check catalogue")
	versionCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runVersion(cmd *cobra.Command, _ []string) error {
	formatStr, _ := cmd.Flags().GetString("format")
	format, err := checkFormat(formatStr, "pretty", "json")
	if err != nil {
		return err
	}
	full, _ := cmd.Flags().GetBool("full")
	hash, _ := cmd.Flags().GetBool("hash")
	date, _ := cmd.Flags().GetBool("date")

	rep := buildVersionReport(hash || full, date || full, full)
	if format == "json" {
		return writeVersionJSON(cmd.OutOrStdout(), rep)
	}
	writeVersionPretty(cmd.OutOrStdout(), rep)
	return nil
}

// buildVersionReport собирает сведения о сборке; пустые поля становятся "unknown",
// только если их запросили.
func buildVersionReport(withHash, withDate, withChecks bool) versionReport {
	rep := versionReport{
		Tool:    "sable",
		Version: strings.TrimSpace(version.Version),
		Grammar: grammarEdition,
	}
	if rep.Version == "" {
		rep.Version = "dev"
	}
	if withHash {
		rep.GitCommit = orUnknown(version.GitCommit)
	}
	if withDate {
		rep.BuildDate = orUnknown(version.BuildDate)
	}
	if withChecks {
		rep.Checks = checks.Keys()
	}
	return rep
}

func writeVersionPretty(out io.Writer, rep versionReport) {
	v := rep.Version
	if v == version.Version {
		v = version.Colored()
	}
	fmt.Fprintf(out, "sable %s (%s)\n", v, rep.Grammar) //nolint:errcheck
	if rep.GitCommit != "" {
		fmt.Fprintf(out, "commit: %s\n", rep.GitCommit) //nolint:errcheck
	}
	if rep.BuildDate != "" {
		fmt.Fprintf(out, "built:  %s\n", rep.BuildDate) //nolint:errcheck
	}
	if len(rep.Checks) > 0 {
		fmt.Fprintf(out, "checks: %s\n", strings.Join(rep.Checks, ", ")) //nolint:errcheck
	}
}

func writeVersionJSON(out io.Writer, rep versionReport) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

func orUnknown(s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return "unknown"
	}
	return s
}
