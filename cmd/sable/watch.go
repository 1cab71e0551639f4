package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"sable/internal/driver"
	"sable/internal/source"
	"sable/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch [flags] <directory>",
	Short: "Check a directory and re-check files as they change",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func init() {
	analysisFlags(watchCmd)
	watchCmd.Flags().Duration("debounce", watcher.DefaultDebounce, "wait this long after the last change before re-checking")
}

func runWatch(cmd *cobra.Command, args []string) error {
	root := args[0]
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", root)
	}
	prof, err := loadProfile(cmd, root)
	if err != nil {
		return err
	}
	if _, err := prof.Checks(); err != nil {
		return err
	}
	setup, err := newAnalysisSetup(cmd, prof)
	if err != nil {
		return err
	}
	defer setup.close()
	debounce, _ := cmd.Flags().GetDuration("debounce")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	// первый проход по всей директории
	start := time.Now()
	fs, results, err := driver.AnalyzeDir(ctx, root, setup.opts)
	if err != nil {
		return err
	}
	sum, err := setup.report(cmd, os.Stdout, fs, results)
	if err != nil {
		return err
	}
	printSummary(cmd, sum, time.Since(start))

	w, err := watcher.New(root, watcher.Options{
		Profile:  prof,
		Debounce: debounce,
		Logger:   slog.Default(),
		Metrics:  setup.opts.Metrics,
	}, func(paths []string) {
		recheck(cmd, setup, root, paths)
	})
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := w.Start(); err != nil {
		return fmt.Errorf("failed to watch %s: %w", root, err)
	}
	defer w.Close()

	if quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet"); !quiet {
		fmt.Fprintf(os.Stderr, "watching %s (Ctrl+C to stop)\n", root) //nolint:errcheck
	}
	<-ctx.Done()
	return nil
}

// recheck анализирует изменённые файлы; удалённые только упоминаются.
func recheck(cmd *cobra.Command, setup *analysisSetup, root string, paths []string) {
	existing := make([]string, 0, len(paths))
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			slog.Info("file removed", "path", p)
			continue
		}
		existing = append(existing, p)
	}
	if len(existing) == 0 {
		return
	}

	start := time.Now()
	fs := source.NewFileSetWithBase(root)
	results, err := driver.AnalyzePaths(cmd.Context(), fs, existing, setup.opts)
	if err != nil {
		slog.Warn("re-check failed", "error", err)
		return
	}
	if quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet"); !quiet {
		rel := make([]string, len(existing))
		for i, p := range existing {
			if r, relErr := filepath.Rel(root, p); relErr == nil {
				rel[i] = r
			} else {
				rel[i] = p
			}
		}
		fmt.Fprintf(os.Stderr, "\nchanged: %v\n", rel) //nolint:errcheck
	}
	sum, err := setup.report(cmd, os.Stdout, fs, results)
	if err != nil {
		slog.Warn("report failed", "error", err)
		return
	}
	printSummary(cmd, sum, time.Since(start))
}
