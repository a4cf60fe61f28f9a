package generator

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce coalesces the event bursts editors emit on save.
const watchDebounce = 100 * time.Millisecond

// Watch re-runs the pipeline whenever the style file changes, until
// ctx is canceled. The containing directory is watched rather than the
// file itself so that save-by-rename (the common editor save dance)
// keeps working after the original inode is replaced.
//
// A failed regeneration is reported to errw and watching continues;
// only watcher failures end the loop.
func Watch(ctx context.Context, opts Options, errw io.Writer) error {
	if errw == nil {
		errw = os.Stderr
	}

	target, err := filepath.Abs(opts.StylePath)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(target), err)
	}

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Rename) {
				continue
			}
			// Debounce: restart the timer on each event in a burst.
			if timer == nil {
				timer = time.NewTimer(watchDebounce)
				timerC = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(watchDebounce)
			}

		case <-timerC:
			timer = nil
			timerC = nil
			if err := Run(opts); err != nil {
				fmt.Fprintf(errw, "regenerate failed: %v\n", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watcher error: %w", err)
		}
	}
}
