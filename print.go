package display

/*
The print engine. Converts a printRequest into one write on the resolved
destination. Responsible for:
 - entering the mutex domain (honoring an open advisory bracket)
 - the readiness check and the verbosity gate
 - snapshotting configuration so a line is internally consistent
 - rendering the full line into the reused buffer
 - the single Write and error reporting
*/

import (
	"bytes"
	"fmt"
	"io"
)

// print runs the full pipeline for one request. The stages are strictly
// ordered: enter the mutex domain, check readiness, apply the verbosity
// gate, resolve the destination, snapshot the configuration, render into
// the reused buffer, write the line in one call.
func (d *Display) print(req *printRequest) (err error) {
	acquired := d.acquire()
	defer d.release(acquired)
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic writing trace to stream: %v", r)
		}
	}()
	if !d.ready() {
		return ErrNotInitialized
	}
	if req.category == STANDARD && d.verbose == DISABLE {
		// suppressed, not an error
		return nil
	}
	dest := req.dest
	if req.category != CUSTOM {
		dest = d.streams[req.category]
	}
	frame := traceFrame{
		stamp:    d.clock().Format(TIME_LAYOUT),
		filename: d.filename,
		function: req.function,
		body:     bound(fmt.Sprintf(req.format, req.args...), MSG_BUFFLEN-1),
		style:    req.style,
		category: req.category,
		colorful: d.colorfulness,
		trace:    d.showTrace,
		newline:  d.autoNewline,
	}
	if frame.colorful == ENABLE && d.redirectedFor(req.category) {
		frame.colorful = DISABLE
	}
	n, werr := renderTraceLine(d.msgbuf, &frame).WriteTo(dest)
	if werr != nil {
		return fmt.Errorf("error writing trace to stream (%d bytes written): %w", n, werr)
	}
	return nil
}

// renderTraceLine builds the complete output line for a frame into buf and
// returns the same buffer. Layout, in order: style, [time][file][function]
// header, severity tag or separator, bounded body, RESET, newline. The
// style is emitted only together with the header; RESET and the severity
// tags do not depend on the header toggle.
func renderTraceLine(buf *bytes.Buffer, f *traceFrame) *bytes.Buffer {
	buf.Reset()
	if f.trace == ENABLE {
		if f.colorful == ENABLE {
			buf.WriteString(string(f.style))
		}
		buf.WriteByte('[')
		buf.WriteString(f.stamp)
		buf.WriteString("][")
		buf.WriteString(f.filename)
		buf.WriteString("][")
		buf.WriteString(f.function)
		buf.WriteByte(']')
	}
	switch f.category {
	case ERROR:
		buf.WriteString(_TAG_ERROR)
	case WARNING:
		buf.WriteString(_TAG_WARNING)
	default:
		if f.trace == ENABLE {
			buf.WriteByte(' ')
		}
	}
	buf.WriteString(f.body)
	if f.colorful == ENABLE {
		buf.WriteString(string(RESET))
	}
	if f.newline == ENABLE {
		buf.WriteByte('\n')
	}
	return buf
}

/////////////////////////////////////////////////////////////////////////////////////////
/*
The caller-facing print family. Every variant takes the originating
function name explicitly; pass a literal or use Caller(). All variants
format with the fmt verbs and truncate the rendered body at MSG_BUFFLEN-1
bytes, never failing on length.
*/

// Print emits a STANDARD message to the registered STANDARD stream. The
// call is silently suppressed (nil error) while verbosity is disabled.
//
// Use this for regular progress output that operators may turn off.
func (d *Display) Print(function, format string, args ...any) error {
	return d.print(&printRequest{category: STANDARD, style: RESET, function: function, format: format, args: args})
}

// PrintStyled is Print with an explicit style for the line. The style
// appears only when colorization is active; suppression and routing match
// Print exactly.
func (d *Display) PrintStyled(function string, style Style, format string, args ...any) error {
	return d.print(&printRequest{category: STANDARD, style: style, function: function, format: format, args: args})
}

// PrintWarning emits a WARNING message to the registered WARNING stream,
// tagged "[WARNING] " and styled bold yellow. Warnings ignore the
// verbosity toggle.
//
// Use for recoverable or noteworthy conditions that deserve attention.
func (d *Display) PrintWarning(function, format string, args ...any) error {
	return d.print(&printRequest{category: WARNING, style: styleFor(WARNING), function: function, format: format, args: args})
}

// PrintError emits an ERROR message to the registered ERROR stream, tagged
// "[ERROR] " and styled bold red. Errors ignore the verbosity toggle.
func (d *Display) PrintError(function, format string, args ...any) error {
	return d.print(&printRequest{category: ERROR, style: styleFor(ERROR), function: function, format: format, args: args})
}

// PrintTo emits a CUSTOM message to an explicit destination, bypassing the
// stream registry and the verbosity gate. The line is framed like any
// other print; colorization follows the current toggle and is never forced
// off by std stream redirection, since the destination is the caller's.
// A nil destination is rejected with ErrInvalidValue.
func (d *Display) PrintTo(dest io.Writer, function, format string, args ...any) error {
	if dest == nil {
		return ErrInvalidValue
	}
	return d.print(&printRequest{category: CUSTOM, dest: dest, style: RESET, function: function, format: format, args: args})
}
