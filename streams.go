package display

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// isRedirected reports whether f does not reach a terminal, i.e. the
// process was started with the stream piped or sent to a file.
func isRedirected(f *os.File) bool {
	fd := f.Fd()
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}

// redirectedFor reports whether colorization must be dropped for cat
// because its conventional std stream is redirected. The decision follows
// the category, not the currently registered writer: a STANDARD print
// stays monochrome on a redirected stdout even after the registry has been
// rebound elsewhere. CUSTOM destinations are the caller's business.
func (d *Display) redirectedFor(cat Category) bool {
	switch cat {
	case STANDARD:
		return d.stdoutRedirected
	case WARNING, ERROR:
		return d.stderrRedirected
	}
	return false
}

// Binds a destination for one of the registry-backed categories. CUSTOM
// has no registry slot and is rejected with ErrInvalidCategory, as is any
// value outside the category range; a nil writer is rejected with
// ErrInvalidValue.
func (d *Display) SetStream(cat Category, w io.Writer) error {
	if cat >= CUSTOM {
		return ErrInvalidCategory
	}
	if w == nil {
		return ErrInvalidValue
	}
	return d.change(func() { d.streams[cat] = w })
}

// Stream returns the destination currently bound to cat.
func (d *Display) Stream(cat Category) (io.Writer, error) {
	if cat >= CUSTOM {
		return nil, ErrInvalidCategory
	}
	acquired := d.acquire()
	defer d.release(acquired)
	if !d.ready() {
		return nil, ErrNotInitialized
	}
	return d.streams[cat], nil
}
