package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"sable/internal/check"
	"sable/internal/diag"
	"sable/internal/diagfmt"
	"sable/internal/driver"
	"sable/internal/observ"
	"sable/internal/profile"
	"sable/internal/source"
	"sable/internal/version"
)

// analysisFlags registers the flags shared by check and watch.
func analysisFlags(cmd *cobra.Command) {
	cmd.Flags().String("format", "pretty", "output format (pretty|json|sarif)")
	cmd.Flags().String("path-mode", "auto", "how to print file paths (auto|absolute|relative|basename)")
	cmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	cmd.Flags().Bool("cache", false, "reuse issues of unchanged files from the on-disk cache")
	cmd.Flags().String("cache-dir", "", "cache directory (default: $XDG_CACHE_HOME/sable)")
	cmd.Flags().Bool("clear-cache", false, "drop the on-disk cache before the run (implies --cache)")
	cmd.Flags().String("metrics-addr", "", "serve Prometheus metrics on this address (e.g. :9464)")
	cmd.Flags().Bool("timings", false, "show per-file phase timings")
	goalFlag(cmd)
}

type analysisSetup struct {
	opts     driver.Options
	format   string
	pathMode diagfmt.PathMode
	server   *observ.Server
	stopProf func()
}

func (s *analysisSetup) close() {
	if s.stopProf != nil {
		s.stopProf()
	}
	if s.server == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.server.Stop(ctx); err != nil {
		slog.Warn("metrics server shutdown failed", "error", err)
	}
}

func newAnalysisSetup(cmd *cobra.Command, prof *profile.Profile) (*analysisSetup, error) {
	flags := cmd.Flags()
	format, err := flags.GetString("format")
	if err != nil {
		return nil, fmt.Errorf("failed to get format flag: %w", err)
	}
	if format, err = checkFormat(format, "pretty", "json", "sarif"); err != nil {
		return nil, err
	}
	pathModeStr, _ := flags.GetString("path-mode")
	pathMode, ok := diagfmt.ParsePathMode(pathModeStr)
	if !ok {
		return nil, fmt.Errorf("invalid --path-mode %q", pathModeStr)
	}
	jobs, _ := flags.GetInt("jobs")
	timings, _ := flags.GetBool("timings")
	maxDiag, err := maxDiagnostics(cmd)
	if err != nil {
		return nil, err
	}
	goal, err := resolveGoal(cmd, prof)
	if err != nil {
		return nil, err
	}
	prof.Goal = goal

	setup := &analysisSetup{
		format:   format,
		pathMode: pathMode,
		opts: driver.Options{
			Profile:        prof,
			MaxDiagnostics: maxDiag,
			Jobs:           jobs,
			Logger:         slog.Default(),
			Timings:        timings,
		},
	}

	setup.opts.Cache = openCache(cmd)

	if addr, _ := flags.GetString("metrics-addr"); addr != "" {
		m := observ.NewMetrics()
		srv := observ.NewServer(addr, m)
		if err := srv.Start(); err != nil {
			return nil, fmt.Errorf("failed to start metrics server: %w", err)
		}
		slog.Info("serving metrics", "addr", srv.Addr())
		setup.opts.Metrics = m
		setup.server = srv
	}

	stop, err := startProfiling(cmd)
	if err != nil {
		setup.close()
		return nil, err
	}
	setup.stopProf = stop
	return setup, nil
}

// summary counts the outcome of a run.
type summary struct {
	files    int
	aborted  int
	failures int
	issues   int
}

// report печатает диагностики в stderr и issues в out в выбранном формате.
func (s *analysisSetup) report(cmd *cobra.Command, out io.Writer, fs *source.FileSet, results []driver.FileResult) (summary, error) {
	sum := summary{files: len(results)}
	bag := diag.NewBag(s.opts.MaxDiagnostics)
	var issues []check.Issue
	for _, r := range results {
		if r.Err != nil {
			sum.aborted++
		}
		sum.failures += len(r.Failures)
		if r.Bag != nil {
			if r.File == nil {
				// файл не загрузился: диагностика без позиции
				for _, d := range r.Bag.Items() {
					fmt.Fprintf(os.Stderr, "%s: %s %s: %s\n", r.Path, d.Severity, d.Code.ID(), d.Message) //nolint:errcheck
				}
			} else {
				bag.Merge(r.Bag)
			}
		}
		issues = append(issues, r.Issues...)
	}
	sum.issues = len(issues)
	printDiagnostics(cmd, bag, fs)
	if s.opts.Timings && s.format == "pretty" {
		for _, r := range results {
			if len(r.Timing.Phases) > 0 {
				fmt.Fprintf(os.Stderr, "%s\n%s", r.Path, r.Timing.Summary()) //nolint:errcheck
			}
		}
	}

	var err error
	switch s.format {
	case "json":
		err = diagfmt.IssuesJSON(out, issues, fs, diagfmt.JSONOpts{PathMode: s.pathMode})
	case "sarif":
		err = diagfmt.IssuesSARIF(out, issues, fs, s.sarifMeta())
	default:
		diagfmt.IssuesPretty(out, issues, fs, diagfmt.PrettyOpts{
			Color:    useColor(cmd, os.Stdout),
			Context:  0,
			PathMode: s.pathMode,
		})
	}
	return sum, err
}

func (s *analysisSetup) sarifMeta() diagfmt.SarifRunMeta {
	meta := diagfmt.SarifRunMeta{
		ToolName:       "sable",
		ToolVersion:    version.Version,
		InvocationArgs: os.Args[1:],
	}
	active, err := s.opts.Profile.Checks()
	if err != nil {
		return meta
	}
	for _, c := range active {
		meta.Rules = append(meta.Rules, diagfmt.SarifRule{ID: c.Key(), Description: check.Describe(c)})
	}
	return meta
}

func printSummary(cmd *cobra.Command, sum summary, elapsed time.Duration) {
	if quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet"); quiet {
		return
	}
	fmt.Fprintf(os.Stderr, "%d issue(s) in %d file(s)", sum.issues, sum.files) //nolint:errcheck
	if sum.aborted > 0 {
		fmt.Fprintf(os.Stderr, ", %d file(s) not analysed", sum.aborted) //nolint:errcheck
	}
	if sum.failures > 0 {
		fmt.Fprintf(os.Stderr, ", %d check failure(s)", sum.failures) //nolint:errcheck
	}
	fmt.Fprintf(os.Stderr, " [%.1f ms]\n", float64(elapsed.Microseconds())/1000) //nolint:errcheck
}

// openCache открывает дисковый кэш, если его запросили --cache или
// --clear-cache. Недоступный кэш не мешает анализу: nil и предупреждение.
func openCache(cmd *cobra.Command) *driver.DiskCache {
	flags := cmd.Flags()
	useCache, _ := flags.GetBool("cache")
	clearCache, _ := flags.GetBool("clear-cache")
	if !useCache && !clearCache {
		return nil
	}
	cacheDir, _ := flags.GetString("cache-dir")
	var cache *driver.DiskCache
	var err error
	if cacheDir != "" {
		cache, err = driver.OpenDiskCacheAt(cacheDir)
	} else {
		cache, err = driver.OpenDiskCache("sable")
	}
	if err != nil {
		slog.Warn("disk cache unavailable", "error", err)
		return nil
	}
	if clearCache {
		if err := cache.DropAll(); err != nil {
			slog.Warn("failed to clear disk cache", "error", err)
		}
	}
	return cache
}
