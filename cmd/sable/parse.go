package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sable/internal/diagfmt"
	"sable/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.js",
	Short: "Parse a JavaScript source file and print its tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	goalFlag(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format, err = checkFormat(format, "pretty", "json"); err != nil {
		return err
	}
	maxDiag, err := maxDiagnostics(cmd)
	if err != nil {
		return err
	}
	prof, err := loadProfile(cmd, filePath)
	if err != nil {
		return err
	}
	goal, err := resolveGoal(cmd, prof)
	if err != nil {
		return err
	}

	result, err := driver.Parse(filePath, prof.Encoding, goal, maxDiag)
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}
	printDiagnostics(cmd, result.Bag, result.FileSet)
	if result.Err != nil {
		return &exitError{code: 1}
	}

	switch format {
	case "json":
		return diagfmt.FormatTreeJSON(os.Stdout, result.Tree)
	default:
		return diagfmt.FormatTreePretty(os.Stdout, result.Tree, result.FileSet)
	}
}
