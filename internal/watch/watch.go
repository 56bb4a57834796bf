// Package watch reruns a callback when a file changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period required before a change is reported.
const DefaultDebounce = 200 * time.Millisecond

// File watches a single file. Editors that save by renaming are handled by
// watching the containing directory.
type File struct {
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration
}

// NewFile starts watching path. Close the returned File or cancel the
// context passed to Run to release it.
func NewFile(path string, debounce time.Duration) (*File, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", path, err)
	}
	return &File{watcher: w, path: path, debounce: debounce}, nil
}

// Close stops watching.
func (f *File) Close() error {
	return f.watcher.Close()
}

// Run blocks until ctx is done, calling onChange after each debounced burst
// of write, create or rename events on the file. Errors from onChange and
// from the watcher are passed to onError, which may be nil.
func (f *File) Run(ctx context.Context, onChange func() error, onError func(error)) error {
	defer f.watcher.Close()

	absPath, _ := filepath.Abs(f.path)
	baseName := filepath.Base(f.path)

	var timer *time.Timer
	var fire <-chan time.Time
	report := func(err error) {
		if err != nil && onError != nil {
			onError(err)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return ctx.Err()

		case event, ok := <-f.watcher.Events:
			if !ok {
				return nil
			}
			eventAbs, _ := filepath.Abs(event.Name)
			if filepath.Base(event.Name) != baseName && eventAbs != absPath {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(f.debounce)
			fire = timer.C

		case <-fire:
			timer, fire = nil, nil
			report(onChange())

		case err, ok := <-f.watcher.Errors:
			if !ok {
				return nil
			}
			report(err)
		}
	}
}
