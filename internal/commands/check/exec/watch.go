package exec

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/charj-lang/charj/internal/log/semconv"
	"github.com/charj-lang/charj/internal/util/timeutil"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

const debounceInterval = 200 * time.Millisecond

// Watcher re-checks files when they change on disk. Changes are collected
// and checked together on the next tick.
type Watcher struct {
	checker   *Checker
	files     map[string]struct{}
	fsWatcher *fsnotify.Watcher
	newTicker timeutil.NewTickerFunc

	mu      sync.Mutex
	pending map[string]struct{}

	hookEventQueued chan<- string
}

// NewWatcher watches the directories holding files. fsnotify does not
// follow files that editors replace on save, so the parent directory is
// watched and events are filtered by path.
func NewWatcher(checker *Checker, files []string, options ...func(*Watcher)) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}

	watcher := Watcher{
		checker:         checker,
		files:           make(map[string]struct{}, len(files)),
		fsWatcher:       fsWatcher,
		newTicker:       timeutil.Generic(timeutil.NewTicker),
		mu:              sync.Mutex{},
		pending:         make(map[string]struct{}),
		hookEventQueued: nil,
	}

	for _, apply := range options {
		apply(&watcher)
	}

	dirs := make(map[string]struct{})
	for _, file := range files {
		watcher.files[filepath.Clean(file)] = struct{}{}
		dirs[filepath.Dir(file)] = struct{}{}
	}

	for dir := range dirs {
		if err := fsWatcher.Add(dir); err != nil {
			fsWatcher.Close()
			return nil, fmt.Errorf("watch directory %s: %w", dir, err)
		}
	}

	return &watcher, nil
}

// Run blocks until ctx is cancelled, calling report with the reports of
// every batch of changed files.
func (w *Watcher) Run(ctx context.Context, report func([]Report)) error {
	defer w.fsWatcher.Close()

	logger := zerolog.Ctx(ctx)

	ticker := w.newTicker(debounceInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return nil
			}

			w.queue(event)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return nil
			}

			logger.Error().Err(err).Msg("watch files")

		case <-ticker.Chan():
			paths := w.takePending()
			if len(paths) == 0 {
				continue
			}

			logger.Debug().Int(semconv.FileCount, len(paths)).Msg("files changed")

			reports, err := w.checker.Check(ctx, paths)
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}

				return fmt.Errorf("check changed files: %w", err)
			}

			report(reports)
		}
	}
}

func (w *Watcher) queue(event fsnotify.Event) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}

	path := filepath.Clean(event.Name)
	if _, ok := w.files[path]; !ok {
		return
	}

	w.mu.Lock()
	w.pending[path] = struct{}{}
	w.mu.Unlock()

	// for testing
	if w.hookEventQueued != nil {
		w.hookEventQueued <- path
	}
}

func (w *Watcher) takePending() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	paths := make([]string, 0, len(w.pending))
	for path := range w.pending {
		paths = append(paths, path)
	}

	w.pending = make(map[string]struct{})

	slices.Sort(paths)

	return paths
}

func WithNewTickerFunc(f timeutil.NewTickerFunc) func(*Watcher) {
	return func(w *Watcher) {
		w.newTicker = f
	}
}

func WithHookEventQueued(ch chan<- string) func(*Watcher) {
	return func(w *Watcher) {
		w.hookEventQueued = ch
	}
}
