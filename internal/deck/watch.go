package deck

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	fsnotify "github.com/fsnotify/fsnotify"

	"deckctl/internal/system"
)

// DefaultDebounce coalesces the burst of events an editor save produces.
const DefaultDebounce = 120 * time.Millisecond

// Watch calls onChange after the deck file at path is written, created or
// replaced, until ctx is done. The parent directory is watched so editors
// that save by rename keep being tracked.
func Watch(ctx context.Context, path string, debounce time.Duration, onChange func()) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return fmt.Errorf("watch %s: %w", path, err)
	}
	go func() {
		defer w.Close()
		var timer *time.Timer
		defer func() {
			if timer != nil {
				timer.Stop()
			}
		}()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
					continue
				}
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(debounce, onChange)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				system.Logger.Warn("deck watcher", "path", path, "err", err)
			}
		}
	}()
	return nil
}
