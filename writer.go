package display

/*********************************************************************************
io.Writer interface adapter

Writer returns a handle bound to one category and function name so the
facility can sit behind fmt.Fprintf, the stdlib log package and anything
else that writes bytes:

	w := d.Writer(display.WARNING, "importer")
	fmt.Fprintf(w, "skipped %d rows", n)

Every Write becomes one framed line. A suppressed STANDARD write still
reports len(p) so wrappers never treat suppression as a short write.
*/

import "io"

// streamWriter forwards byte payloads into the print engine under a fixed
// category and function name.
type streamWriter struct {
	disp     *Display
	function string
	category Category
}

// Writer returns an io.Writer that emits each payload as one line of the
// given category, framed exactly like the print family. The returned
// writer must not be registered back into the same Display with SetStream.
func (d *Display) Writer(cat Category, function string) io.Writer {
	return &streamWriter{disp: d, category: cat, function: function}
}

// Write implements io.Writer. The payload is rendered verbatim as the
// message body of one framed line. On success it returns n=len(p), also
// for lines suppressed by the verbosity gate. A nil payload is a
// zero-length write with no error.
func (w *streamWriter) Write(p []byte) (n int, err error) {
	if p == nil {
		return 0, nil
	}
	if w.category >= CUSTOM {
		return 0, ErrInvalidCategory
	}
	err = w.disp.print(&printRequest{
		category: w.category,
		style:    styleFor(w.category),
		function: w.function,
		format:   "%s",
		args:     []any{p},
	})
	if err != nil {
		return 0, err
	}
	return len(p), nil
}
