package display

/*
Defines the core data types used by the tracing facility:
  - Toggle and Category: byte-sized enums for configuration switches and
    message severities
  - Style: ANSI escape fragments composable by concatenation
  - streamTable: fixed destination slot per registry-assignable category
  - printRequest: the unit of work handed to the print engine
  - traceFrame: per-call snapshot of everything the renderer needs

Also defines package-wide constants (buffer bounds, default values, the
trace timestamp layout) and small helper utilities shared across files.
*/

import (
	"io"
	"time"
)

type basetype uint8 // basetype is the underlying byte-sized representation used for enums

// Toggle is a two-state configuration switch. Only DISABLE and ENABLE are
// valid; setters reject anything else.
type Toggle basetype

// Category classifies a message and selects its destination and decoration.
type Category basetype

// Style is an ANSI escape fragment written before the trace header when
// colorization is active. Styles combine by concatenation:
//
//	d.PrintStyled("main", display.BOLD+display.CYAN, "ready")
type Style string

// clockFn supplies the wall-clock time for trace headers. Replaceable in
// tests for deterministic output.
type clockFn func() time.Time

// streamTable holds one destination per registry-assignable category.
// CUSTOM prints carry their own destination and have no slot here.
type streamTable [CUSTOM]io.Writer

// printRequest is the unit handed to the print engine: a category, the
// decoration to use, the originating function name and the message itself.
// dest is set only for CUSTOM requests.
type printRequest struct {
	dest     io.Writer
	style    Style
	function string
	format   string
	args     []any
	category Category
}

// traceFrame is the snapshot the renderer works from: configuration
// captured inside the critical section plus the precomputed line parts.
// Snapshotting keeps one print internally consistent even while setters
// queue up behind it.
type traceFrame struct {
	stamp    string
	filename string
	function string
	body     string
	style    Style
	category Category
	colorful Toggle
	trace    Toggle
	newline  Toggle
}

/////////////////////////////////////////////////////////////////////////////////////////

const (
	// Toggle values. The trailing _TOGGLE_MAX_for_checks_only is used as an
	// exclusive upper bound for validation.
	DISABLE Toggle = iota
	ENABLE
	_TOGGLE_MAX_for_checks_only
)

const (
	// Message categories. STANDARD through ERROR address slots in the
	// stream registry; CUSTOM prints bypass the registry entirely.
	STANDARD Category = iota
	WARNING
	ERROR
	CUSTOM
	_CATEGORY_MAX_for_checks_only
)

const (
	MSG_BUFFLEN      = 256 // formatted message body capacity (bodies truncate at MSG_BUFFLEN-1 bytes)
	FILENAME_BUFFLEN = 32  // trace filename capacity (names truncate at FILENAME_BUFFLEN-1 bytes)

	DEFAULT_FILENAME = "?"        // used when no source file can be resolved
	TIME_LAYOUT      = "15:04:05" // trace header timestamp layout
)

const (
	// ANSI styles for PrintStyled and the stream decorations. RESET is also
	// the closing sequence appended after every colorized line.
	RESET Style = "\x1b[0m"

	BLACK   Style = "\x1b[30m"
	RED     Style = "\x1b[31m"
	GREEN   Style = "\x1b[32m"
	YELLOW  Style = "\x1b[33m"
	BLUE    Style = "\x1b[34m"
	MAGENTA Style = "\x1b[35m"
	CYAN    Style = "\x1b[36m"
	WHITE   Style = "\x1b[37m"

	BOLD      Style = "\x1b[1m"
	FAINT     Style = "\x1b[2m"
	ITALIC    Style = "\x1b[3m"
	UNDERLINE Style = "\x1b[4m"
)

const (
	// Severity tags written between the trace header and the message body.
	// Unlike the header they appear even when trace decoration is off.
	_TAG_WARNING = "[WARNING] "
	_TAG_ERROR   = "[ERROR] "
)

/////////////////////////////////////////////////////////////////////////////////////////

// checkToggle rejects values outside the DISABLE/ENABLE domain.
func checkToggle(mode Toggle) error {
	if mode >= _TOGGLE_MAX_for_checks_only {
		return ErrInvalidValue
	}
	return nil
}

// bound truncates s to at most max bytes. Counting is byte-wise, so a
// multi-byte rune crossing the limit is cut mid-sequence, the same way a
// fixed-size buffer would cut it.
func bound(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}

// styleFor returns the forced decoration for a category: warnings and
// errors always carry their conventional styles, everything else defaults
// to RESET.
func styleFor(cat Category) Style {
	switch cat {
	case WARNING:
		return BOLD + YELLOW
	case ERROR:
		return BOLD + RED
	}
	return RESET
}
