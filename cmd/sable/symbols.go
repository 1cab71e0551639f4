package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sable/internal/diagfmt"
	"sable/internal/driver"
	"sable/internal/symbols"
)

var symbolsCmd = &cobra.Command{
	Use:   "symbols [flags] file.js",
	Short: "Resolve symbols and print declarations with their references",
	Args:  cobra.ExactArgs(1),
	RunE:  runSymbols,
}

func init() {
	symbolsCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	symbolsCmd.Flags().Bool("builtins", false, "include built-in and implicit globals")
	goalFlag(symbolsCmd)
}

func runSymbols(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format, err = checkFormat(format, "pretty", "json"); err != nil {
		return err
	}
	withBuiltins, err := cmd.Flags().GetBool("builtins")
	if err != nil {
		return fmt.Errorf("failed to get builtins flag: %w", err)
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

	var occ []symbols.Occurrence
	symbols.Highlight(symbols.Resolve(result.Tree), symbols.OccurrenceFunc(func(o symbols.Occurrence) {
		if withBuiltins || (o.Kind != symbols.SymbolBuiltin && o.Kind != symbols.SymbolImplicit) {
			occ = append(occ, o)
		}
	}))

	switch format {
	case "json":
		return diagfmt.FormatOccurrencesJSON(os.Stdout, result.File, occ)
	default:
		return diagfmt.FormatOccurrencesPretty(os.Stdout, result.File, occ)
	}
}
