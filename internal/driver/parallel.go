package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"sable/internal/diag"
	"sable/internal/profile"
	"sable/internal/source"
	"sable/internal/symbols"
)

// sourceExts lists the file extensions analysed in directories.
var sourceExts = []string{".js", ".mjs", ".cjs"}

// IsSource reports whether path has an analysed JavaScript extension.
func IsSource(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range sourceExts {
		if ext == e {
			return true
		}
	}
	return false
}

// ListFiles возвращает отсортированный список JS-файлов в директории,
// кроме исключённых профилем (пути сопоставляются относительно dir).
func ListFiles(dir string, prof *profile.Profile) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, relErr := filepath.Rel(dir, path)
		if relErr != nil {
			rel = path
		}
		if d.IsDir() {
			if path != dir && prof != nil && prof.Excluded(rel) {
				return filepath.SkipDir
			}
			return nil
		}
		if IsSource(path) && (prof == nil || !prof.Excluded(rel)) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// AnalyzeDir analyses every source file under dir in parallel. Results are
// in ListFiles order. The returned error is a walk error or the context
// error; per-file failures are reported in the results.
func AnalyzeDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []FileResult, error) {
	opts.normalize()
	files, err := ListFiles(dir, opts.Profile)
	if err != nil {
		return nil, nil, err
	}
	fileSet := source.NewFileSetWithBase(dir)
	results, err := AnalyzePaths(ctx, fileSet, files, opts)
	return fileSet, results, err
}

// AnalyzePaths loads paths into fileSet and analyses them in parallel.
func AnalyzePaths(ctx context.Context, fileSet *source.FileSet, paths []string, opts Options) ([]FileResult, error) {
	opts.normalize()
	if len(paths) == 0 {
		return nil, nil
	}

	// таблица встроенных имён строится до запуска воркеров
	symbols.Builtins()

	// FileSet не потокобезопасен: загружаем всё заранее
	fileIDs := make([]source.FileID, len(paths))
	loadErrors := make(map[int]error)
	loaded := make(map[string]bool, len(paths))
	for i, path := range paths {
		// повтор пути в одном запуске: берём уже загруженную версию
		if loaded[path] {
			if id, ok := fileSet.GetLatest(path); ok {
				fileIDs[i] = id
				continue
			}
		}
		id, err := fileSet.LoadEncoded(path, opts.Profile.Encoding)
		if err != nil {
			loadErrors[i] = err
			continue
		}
		fileIDs[i] = id
		loaded[path] = true
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	for _, path := range paths {
		opts.Progress.emit(Event{File: path, Status: StatusQueued})
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]FileResult, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))

	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if loadErr, failed := loadErrors[i]; failed {
				results[i] = loadFailure(path, loadErr, opts)
				return nil
			}
			results[i] = AnalyzeFile(gctx, fileSet.Get(fileIDs[i]), opts)
			results[i].Path = path
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func loadFailure(path string, err error, opts Options) FileResult {
	bag := diag.NewBag(opts.MaxDiagnostics)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.IOLoadFileError,
		Message:  "failed to load file: " + err.Error(),
	})
	aerr := &AnalysisError{Path: path, Phase: PhaseLoad, Err: err}
	if opts.Metrics != nil {
		opts.Metrics.PhaseFailures.WithLabelValues(string(PhaseLoad)).Inc()
		opts.Metrics.FilesTotal.WithLabelValues("error").Inc()
	}
	opts.Logger.Warn("failed to load file", "path", path, "error", err)
	opts.Progress.emit(Event{File: path, Status: StatusError, Err: aerr})
	return FileResult{Path: path, Bag: bag, Err: aerr}
}
