// Package watcher re-runs analysis when JavaScript files under a root
// change. Events are debounced and delivered as one sorted batch.
package watcher

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"sable/internal/driver"
	"sable/internal/observ"
	"sable/internal/profile"
)

// DefaultDebounce is used when Options.Debounce is zero.
const DefaultDebounce = 200 * time.Millisecond

var ErrNoCallback = errors.New("watcher: nil change callback")

type Options struct {
	Profile  *profile.Profile // исключения; nil: без исключений
	Debounce time.Duration
	Logger   *slog.Logger
	Metrics  *observ.Metrics
}

type Watcher struct {
	fsWatcher *fsnotify.Watcher
	root      string
	opts      Options
	onChange  func([]string)
	// callbackMu сериализует вызовы onChange
	callbackMu sync.Mutex

	pending   map[string]struct{}
	pendingMu sync.Mutex
	timer     *time.Timer
	done      chan struct{}
	closeOnce sync.Once
}

// New creates a watcher for root. onChange receives the paths of changed
// source files, removed ones included.
func New(root string, opts Options, onChange func([]string)) (*Watcher, error) {
	if onChange == nil {
		return nil, ErrNoCallback
	}
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fsWatcher: fsw,
		root:      root,
		opts:      opts,
		onChange:  onChange,
		pending:   make(map[string]struct{}),
		done:      make(chan struct{}),
	}, nil
}

// Start registers root recursively and begins delivering changes.
func (w *Watcher) Start() error {
	if err := w.watchRecursive(w.root); err != nil {
		return err
	}
	go w.run()
	return nil
}

// Close stops the watcher; a pending batch is dropped.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		w.pendingMu.Lock()
		if w.timer != nil {
			w.timer.Stop()
		}
		w.pendingMu.Unlock()
		err = w.fsWatcher.Close()
	})
	return err
}

func (w *Watcher) rel(path string) string {
	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		return path
	}
	return rel
}

func (w *Watcher) excluded(path string) bool {
	return w.opts.Profile != nil && path != w.root && w.opts.Profile.Excluded(w.rel(path))
}

func (w *Watcher) watchRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if w.excluded(path) {
			return filepath.SkipDir
		}
		return w.fsWatcher.Add(path)
	})
}

func (w *Watcher) run() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handle(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.opts.Logger.Error("watcher error", "error", err)
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if w.excluded(event.Name) {
				return
			}
			if err := w.watchRecursive(event.Name); err != nil {
				w.opts.Logger.Warn("failed to watch new directory", "path", event.Name, "error", err)
				return
			}
			w.enqueueExistingFiles(event.Name)
			return
		}
	}
	if !driver.IsSource(event.Name) || w.excluded(event.Name) {
		return
	}
	if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
		w.scheduleChange(event.Name)
	}
}

// enqueueExistingFiles: файлы, появившиеся вместе с новой директорией,
// событий Create не получат.
func (w *Watcher) enqueueExistingFiles(dir string) {
	files, err := driver.ListFiles(dir, nil)
	if err != nil {
		w.opts.Logger.Warn("failed to list new directory", "path", dir, "error", err)
		return
	}
	for _, f := range files {
		if !w.excluded(f) {
			w.scheduleChange(f)
		}
	}
}

func (w *Watcher) scheduleChange(path string) {
	w.pendingMu.Lock()
	defer w.pendingMu.Unlock()

	w.pending[path] = struct{}{}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.opts.Debounce, w.flushChanges)
}

func (w *Watcher) flushChanges() {
	w.pendingMu.Lock()
	paths := make([]string, 0, len(w.pending))
	for path := range w.pending {
		paths = append(paths, path)
	}
	w.pending = make(map[string]struct{})
	w.pendingMu.Unlock()

	if len(paths) == 0 {
		return
	}
	select {
	case <-w.done:
		return
	default:
	}
	sort.Strings(paths)

	w.callbackMu.Lock()
	defer w.callbackMu.Unlock()
	if w.opts.Metrics != nil {
		w.opts.Metrics.WatcherRebuilds.Inc()
	}
	w.opts.Logger.Debug("files changed", "count", len(paths))
	w.onChange(paths)
}
