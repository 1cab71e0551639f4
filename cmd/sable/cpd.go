package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sable/internal/cpd"
	"sable/internal/diagfmt"
	"sable/internal/source"
)

var cpdCmd = &cobra.Command{
	Use:   "cpd [flags] file.js",
	Short: "Print the normalized token stream used for duplicate detection",
	Args:  cobra.ExactArgs(1),
	RunE:  runCPD,
}

func init() {
	cpdCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runCPD(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format, err = checkFormat(format, "pretty", "json"); err != nil {
		return err
	}
	prof, err := loadProfile(cmd, filePath)
	if err != nil {
		return err
	}

	fs := source.NewFileSet()
	fileID, err := fs.LoadEncoded(filePath, prof.Encoding)
	if err != nil {
		return fmt.Errorf("failed to load file: %w", err)
	}
	tokens, tokErr := cpd.Tokenize(fs.Get(fileID))

	switch format {
	case "json":
		err = diagfmt.FormatCPDJSON(os.Stdout, tokens)
	default:
		err = diagfmt.FormatCPDPretty(os.Stdout, tokens)
	}
	if err != nil {
		return err
	}
	// префикс до лексической ошибки уже выведен
	return tokErr
}
