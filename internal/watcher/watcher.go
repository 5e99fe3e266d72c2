// Package watcher re-runs a callback when catalog files change.
package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"chronicle/internal/logger"
)

// Watcher watches a directory tree for changes to JSON files.
type Watcher struct {
	fs       *fsnotify.Watcher
	log      *logger.Logger
	debounce time.Duration
}

// New creates a watcher that batches changes arriving within debounce of each other.
func New(debounce time.Duration, log *logger.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	return &Watcher{fs: fw, log: log, debounce: debounce}, nil
}

// AddTree watches root and every directory below it.
// fsnotify is not recursive, so each directory is added on its own.
func (w *Watcher) AddTree(root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() {
			return nil
		}

		if strings.HasPrefix(d.Name(), ".") && path != root {
			return filepath.SkipDir
		}

		if err := w.fs.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}

		return nil
	})
}

// Run blocks until ctx is done, calling onChange with the sorted set of
// changed JSON paths after each quiet period.
func (w *Watcher) Run(ctx context.Context, onChange func(paths []string)) error {
	pending := map[string]struct{}{}

	timer := time.NewTimer(w.debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()

		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}

			if event.Op&fsnotify.Create == fsnotify.Create {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.AddTree(event.Name); err != nil {
						w.log.Warn("failed to watch new directory", "path", event.Name, "error", err)
					}

					continue
				}
			}

			if !isJSON(event.Name) || event.Op == fsnotify.Chmod {
				continue
			}

			w.log.Debug("catalog file changed", "path", event.Name, "op", event.Op.String())
			pending[event.Name] = struct{}{}
			timer.Reset(w.debounce)

		case <-timer.C:
			if len(pending) == 0 {
				continue
			}

			paths := make([]string, 0, len(pending))
			for p := range pending {
				paths = append(paths, p)
			}

			sort.Strings(paths)
			clear(pending)

			onChange(paths)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}

			w.log.Error("watch error", "error", err)
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.fs.Close()
}

func isJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}
