package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"sable/internal/driver"
	"sable/internal/source"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file.js|directory>",
	Short: "Run quality checks on a JavaScript file or directory",
	Long: `Run the checks enabled by the profile on one file or on every *.js, *.mjs and *.cjs
file within a directory. Exits with status 2 when issues were found and 1 when a
file could not be analysed.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	analysisFlags(checkCmd)
	checkCmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
	checkCmd.Flags().Bool("exit-zero", false, "exit with status 0 even when issues were found")
}

func runCheck(cmd *cobra.Command, args []string) error {
	target := args[0]
	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", target, err)
	}

	prof, err := loadProfile(cmd, target)
	if err != nil {
		return err
	}
	// проверяем конфигурацию до запуска, чтобы не получить ошибку на каждый файл
	if _, err := prof.Checks(); err != nil {
		return err
	}
	setup, err := newAnalysisSetup(cmd, prof)
	if err != nil {
		return err
	}
	defer setup.close()

	uiValue, _ := cmd.Flags().GetString("ui")
	mode, err := readUIMode(uiValue)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	files := []string{target}
	fs := source.NewFileSet()
	if info.IsDir() {
		fs = source.NewFileSetWithBase(target)
		if files, err = driver.ListFiles(target, prof); err != nil {
			return fmt.Errorf("failed to list files: %w", err)
		}
	}

	start := time.Now()
	var results []driver.FileResult
	if setup.format == "pretty" && shouldUseTUI(mode) && len(files) > 1 {
		results, err = runCheckWithUI(ctx, "sable check", fs, files, setup.opts)
	} else {
		results, err = driver.AnalyzePaths(ctx, fs, files, setup.opts)
	}
	if err != nil && !isCancel(err) {
		return err
	}

	sum, reportErr := setup.report(cmd, os.Stdout, fs, results)
	if reportErr != nil {
		return reportErr
	}
	printSummary(cmd, sum, time.Since(start))

	exitZero, _ := cmd.Flags().GetBool("exit-zero")
	switch {
	case err != nil:
		return &exitError{code: 130, msg: "interrupted"}
	case sum.aborted > 0:
		return &exitError{code: 1}
	case sum.issues > 0 && !exitZero:
		return &exitError{code: 2}
	}
	return nil
}

func isCancel(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
