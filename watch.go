package display

import (
	"context"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchSettleDelay gives editors time to finish replace-on-save before the
// options file is re-added and re-read.
const watchSettleDelay = 100 * time.Millisecond

// Watch observes a TOML options file and re-applies it whenever it
// changes, so a running program can be retuned without a restart. Reload
// failures are reported on the WARNING stream and the previous
// configuration stays in effect. The watcher runs until ctx is cancelled.
func (d *Display) Watch(ctx context.Context, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create options watcher: %w", err)
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}
	go d.watchLoop(ctx, watcher, path)
	return nil
}

func (d *Display) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, path string) {
	defer watcher.Close()
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				d.reload(path)
			}
			if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				// editors replace the file on save; re-add once the new one settles
				time.Sleep(watchSettleDelay)
				if err := watcher.Add(path); err != nil {
					d.PrintWarning("watchLoop", "lost options file %s: %v", path, err)
					return
				}
				d.reload(path)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			d.PrintWarning("watchLoop", "options watcher error: %v", err)
		}
	}
}

// reload loads and applies the options file, keeping the previous
// configuration on any failure.
func (d *Display) reload(path string) {
	opts, err := LoadOptions(path)
	if err != nil {
		d.PrintWarning("reload", "options reload failed: %v", err)
		return
	}
	if err := d.Apply(*opts); err != nil {
		d.PrintWarning("reload", "options reload failed: %v", err)
		return
	}
	d.Print("reload", "options reloaded from %s", path)
}
