package display

import (
	"fmt"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Display_Writer(t *testing.T) {
	out := &FakeWriter{}
	var d *Display
	prep := func() {
		out.Clear()
		d = newTestDisplay(out)
		d.colorfulness = DISABLE
	}
	t.Run("framed_line", func(t *testing.T) {
		prep()
		w := d.Writer(STANDARD, "adapter")
		n, err := fmt.Fprintf(w, "count=%d", 7)
		assert.NoError(t, err, "unexpected error")
		assert.Equal(t, len("count=7"), n, "wrong reported length")
		assert.Equal(t, "["+teststamp+"][app][adapter] count=7\n", out.String(), "wrong framed line")
	})
	t.Run("warning_category", func(t *testing.T) {
		prep()
		w := d.Writer(WARNING, "adapter")
		_, err := fmt.Fprint(w, "caution")
		assert.NoError(t, err, "unexpected error")
		assert.Equal(t, "["+teststamp+"][app][adapter][WARNING] caution\n", out.String(), "wrong warning line")
	})
	t.Run("forced_style_applies", func(t *testing.T) {
		prep()
		d.colorfulness = ENABLE
		w := d.Writer(ERROR, "adapter")
		_, err := fmt.Fprint(w, "broken")
		assert.NoError(t, err, "unexpected error")
		assert.Equal(t, string(BOLD+RED)+"["+teststamp+"][app][adapter][ERROR] broken"+string(RESET)+"\n", out.String(), "wrong styled error line")
	})
	t.Run("suppressed_still_full_write", func(t *testing.T) {
		prep()
		d.verbose = DISABLE
		w := d.Writer(STANDARD, "adapter")
		n, err := w.Write([]byte("hidden"))
		assert.NoError(t, err, "suppression reported as error")
		assert.Equal(t, len("hidden"), n, "suppressed write reported short")
		assert.Empty(t, out.buffer, "suppressed write reached the stream")
	})
	t.Run("nil_payload", func(t *testing.T) {
		prep()
		w := d.Writer(STANDARD, "adapter")
		n, err := w.Write(nil)
		assert.NoError(t, err, "error on nil payload")
		assert.Zero(t, n, "non-zero length for nil payload")
		assert.Empty(t, out.buffer, "nil payload reached the stream")
	})
	t.Run("custom_category_rejected", func(t *testing.T) {
		prep()
		w := d.Writer(CUSTOM, "adapter")
		n, err := w.Write([]byte("x"))
		assert.ErrorIs(t, err, ErrInvalidCategory, "no error on CUSTOM adapter")
		assert.Zero(t, n, "non-zero length on error")
	})
	t.Run("overlong_payload_truncated", func(t *testing.T) {
		prep()
		d.showTrace = DISABLE
		d.autoNewline = DISABLE
		payload := strings.Repeat("A", 2*MSG_BUFFLEN)
		n, err := d.Writer(STANDARD, "adapter").Write([]byte(payload))
		assert.NoError(t, err, "unexpected error")
		assert.Equal(t, len(payload), n, "truncation reported as a short write")
		assert.Equal(t, payload[:MSG_BUFFLEN-1], out.String(), "wrong truncated body")
	})
	t.Run("write_failure", func(t *testing.T) {
		d := newTestDisplay(&ErrorWriter{})
		n, err := d.Writer(STANDARD, "adapter").Write([]byte("lost"))
		assert.ErrorContains(t, err, errorStr, "wrong error")
		assert.Zero(t, n, "non-zero length on failed write")
	})
	t.Run("closed_display", func(t *testing.T) {
		prep()
		w := d.Writer(STANDARD, "adapter")
		d.Close()
		n, err := w.Write([]byte("late"))
		assert.ErrorIs(t, err, ErrNotInitialized, "no error writing to a closed display")
		assert.Zero(t, n, "non-zero length on error")
	})
	t.Run("stdlib_log", func(t *testing.T) {
		prep()
		d.autoNewline = DISABLE // the log package terminates lines itself
		lg := log.New(d.Writer(STANDARD, "stdlog"), "", 0)
		lg.Print("routed")
		assert.Equal(t, "["+teststamp+"][app][stdlog] routed\n", out.String(), "wrong line via the log package")
	})
}
