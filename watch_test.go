package display

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_Display_Watch(t *testing.T) {
	write := func(t *testing.T, path, content string) {
		assert.NoError(t, os.WriteFile(path, []byte(content), 0o644), "cannot write options file")
	}
	t.Run("reapplies_on_write", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "display.toml")
		write(t, path, "verbose = true\n")
		d := newTestDisplay(&SafeWriter{})
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		assert.NoError(t, d.Watch(ctx, path), "unexpected error")
		write(t, path, "verbose = false\n")
		assert.Eventually(t, func() bool {
			return d.Verbose() == DISABLE
		}, 2*time.Second, 10*time.Millisecond, "rewrite not applied")
	})
	t.Run("replace_on_save", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "display.toml")
		write(t, path, "show_trace = true\n")
		d := newTestDisplay(&SafeWriter{})
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		assert.NoError(t, d.Watch(ctx, path), "unexpected error")
		// editors save by writing a sibling and renaming it over the target
		next := filepath.Join(dir, "display.toml.next")
		write(t, next, "show_trace = false\n")
		assert.NoError(t, os.Rename(next, path), "cannot replace options file")
		assert.Eventually(t, func() bool {
			return d.ShowTrace() == DISABLE
		}, 3*time.Second, 10*time.Millisecond, "replaced file not applied")
	})
	t.Run("bad_rewrite_keeps_settings_and_warns", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "display.toml")
		write(t, path, "verbose = true\n")
		out := &SafeWriter{}
		d := newTestDisplay(out)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		assert.NoError(t, d.Watch(ctx, path), "unexpected error")
		write(t, path, "verbose = false\n\n[streams]\nstandard = \"nowhere\"\n")
		assert.Eventually(t, func() bool {
			return strings.Contains(out.String(), "options reload failed")
		}, 2*time.Second, 10*time.Millisecond, "no reload warning")
		assert.Equal(t, ENABLE, d.Verbose(), "invalid delta partially applied")
	})
	t.Run("missing_file", func(t *testing.T) {
		d := newTestDisplay(&SafeWriter{})
		err := d.Watch(context.Background(), filepath.Join(t.TempDir(), "absent.toml"))
		assert.ErrorContains(t, err, "failed to watch", "wrong or missing error")
	})
	t.Run("cancel_stops_watcher", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "display.toml")
		write(t, path, "verbose = true\n")
		d := newTestDisplay(&SafeWriter{})
		ctx, cancel := context.WithCancel(context.Background())
		assert.NoError(t, d.Watch(ctx, path), "unexpected error")
		cancel()
		time.Sleep(300 * time.Millisecond)
		write(t, path, "verbose = false\n")
		time.Sleep(300 * time.Millisecond)
		assert.Equal(t, ENABLE, d.Verbose(), "rewrite applied after cancel")
	})
}
