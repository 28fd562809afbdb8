// A thread-safe console/file tracing facility for Go. Provides timestamped,
// colorized and severity-tagged trace output with per-category destinations,
// an advisory locking protocol for grouped prints and hot-reloadable options.
package display

import (
	"bytes"
	"errors"
	"os"
	"time"
)

// Errors returned by configuration and print operations.
var (
	// ErrInvalidValue rejects configuration values outside their domain:
	// toggles beyond ENABLE, empty filenames, nil writers.
	ErrInvalidValue = errors.New("invalid configuration value")
	// ErrInvalidCategory rejects stream registry operations addressed to
	// CUSTOM or to values outside the category range.
	ErrInvalidCategory = errors.New("invalid stream category")
	// ErrNotInitialized reports use of a zero-value or closed Display.
	ErrNotInitialized = errors.New("display is not initialized")
)

// Display is the central state holder. It contains the single mutex all
// operations serialize on, the advisory lock owner, the configuration
// toggles, the stream registry and the buffer reused while building lines.
//
// The zero value is unusable; construct instances with New or Init.
type Display struct {
	mtx mutexDomain // single lock shared by prints, setters and getters

	verbose      Toggle // gates STANDARD prints
	colorfulness Toggle // gates ANSI styling
	autoNewline  Toggle // appends '\n' to every line
	showTrace    Toggle // gates the [time][file][function] header

	filename string      // trace header file field (bounded)
	streams  streamTable // destinations for STANDARD, WARNING, ERROR

	// probed once at construction; colorization is dropped per call when
	// the category's conventional std stream does not reach a terminal
	stdoutRedirected bool
	stderrRedirected bool

	msgbuf *bytes.Buffer // buffer reused while building lines, nil once closed
	clock  clockFn       // trace timestamp source
}

// New constructs a Display with default settings overridden by opts. The
// defaults are: every toggle ENABLE, STANDARD bound to stdout, WARNING and
// ERROR bound to stderr, and the trace filename set to the base name of the
// caller's source file. Returns an error if opts fails validation.
func New(opts Options) (*Display, error) {
	d := newDefaults()
	d.filename = callerBase(1)
	if err := d.Apply(opts); err != nil {
		return nil, err
	}
	return d, nil
}

// Init constructs a Display with default settings adjusted by the provided
// argument slice, usually os.Args[1:]. Recognized arguments:
//
//	--silent, -s      disable STANDARD prints
//	--no-color, -n    disable ANSI styling
//
// Anything else is ignored so the slice can be shared with the host
// program's own flag handling. The trace filename is set to the base name
// of the caller's source file.
//
// Preferred usage example:
//
//	func main() {
//	    d := display.Init(os.Args[1:])
//	    defer d.Close()
//	    ...
//	}
func Init(args []string) *Display {
	d := newDefaults()
	d.filename = callerBase(1)
	d.scanArgs(args)
	return d
}

// newDefaults builds the fully-enabled default state shared by New and Init.
func newDefaults() *Display {
	d := &Display{
		verbose:      ENABLE,
		colorfulness: ENABLE,
		autoNewline:  ENABLE,
		showTrace:    ENABLE,
		filename:     DEFAULT_FILENAME,
		msgbuf:       bytes.NewBuffer(make([]byte, 0, MSG_BUFFLEN)),
		clock:        time.Now,
	}
	d.streams[STANDARD] = os.Stdout
	d.streams[WARNING] = os.Stderr
	d.streams[ERROR] = os.Stderr
	d.stdoutRedirected = isRedirected(os.Stdout)
	d.stderrRedirected = isRedirected(os.Stderr)
	return d
}

// scanArgs applies the recognized command-line switches and ignores the rest.
func (d *Display) scanArgs(args []string) {
	for _, arg := range args {
		switch arg {
		case "--silent", "-s":
			d.verbose = DISABLE
		case "--no-color", "-n":
			d.colorfulness = DISABLE
		}
	}
}

// Close releases the instance: the stream registry and render buffer are
// cleared and every subsequent print or mutating operation reports
// ErrNotInitialized. Closing an already closed or zero-value Display is a
// no-op. Close never fails; the error return satisfies io.Closer.
func (d *Display) Close() error {
	acquired := d.acquire()
	defer d.release(acquired)
	if !d.ready() {
		return nil
	}
	d.msgbuf = nil
	d.filename = ""
	for i := range d.streams {
		d.streams[i] = nil
	}
	return nil
}

// ready reports whether the instance is initialized and not closed. Must be
// called inside the mutex domain.
func (d *Display) ready() bool {
	return d.msgbuf != nil
}
