package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"sable/internal/check"
	"sable/internal/checks"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the available checks and their options",
	Args:  cobra.NoArgs,
	RunE:  runRules,
}

func init() {
	rulesCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

type ruleOutput struct {
	Key         string         `json:"key"`
	Description string         `json:"description,omitempty"`
	Enabled     bool           `json:"enabled"`
	Options     []check.Option `json:"options,omitempty"`
}

func runRules(cmd *cobra.Command, _ []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format, err = checkFormat(format, "pretty", "json"); err != nil {
		return err
	}
	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	prof, err := loadProfile(cmd, wd)
	if err != nil {
		return err
	}

	var rules []ruleOutput
	for _, c := range checks.All() {
		rules = append(rules, ruleOutput{
			Key:         c.Key(),
			Description: check.Describe(c),
			Enabled:     prof.Enabled(c.Key()),
			Options:     check.Options(c),
		})
	}

	if format == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(rules)
	}
	renderRulesPretty(os.Stdout, rules)
	return nil
}

func renderRulesPretty(out io.Writer, rules []ruleOutput) {
	for _, r := range rules {
		state := "on"
		if !r.Enabled {
			state = "off"
		}
		fmt.Fprintf(out, "%-26s [%s] %s\n", r.Key, state, r.Description) //nolint:errcheck
		for _, o := range r.Options {
			fmt.Fprintf(out, "    %s (%s, default %q): %s\n", o.Name, o.Type, o.Default, o.Usage) //nolint:errcheck
		}
	}
	if len(rules) == 0 {
		fmt.Fprintln(out, "no checks registered") //nolint:errcheck
	}
}
