package display

/*
Configuration store. Every setter validates first and mutates only inside
the mutex domain, so settings never change underneath an in-flight print
and a half-applied state is never observable. Setters called while the
calling goroutine holds the advisory bracket apply immediately without
re-acquiring.
*/

// change runs a mutation inside the mutex domain after the readiness check.
func (d *Display) change(f func()) error {
	acquired := d.acquire()
	defer d.release(acquired)
	if !d.ready() {
		return ErrNotInitialized
	}
	f()
	return nil
}

// Sets whether STANDARD prints are emitted at all. WARNING, ERROR and
// CUSTOM prints are never gated by verbosity.
func (d *Display) SetVerbose(mode Toggle) error {
	if err := checkToggle(mode); err != nil {
		return err
	}
	return d.change(func() { d.verbose = mode })
}

// Sets whether lines carry ANSI styling. Styling is additionally dropped
// per call when the category's conventional std stream is redirected.
func (d *Display) SetColorfulness(mode Toggle) error {
	if err := checkToggle(mode); err != nil {
		return err
	}
	return d.change(func() { d.colorfulness = mode })
}

// Sets whether every line is terminated with '\n'. Disable to compose a
// single line from several prints, typically inside a Lock/Unlock bracket.
func (d *Display) SetAutoNewline(mode Toggle) error {
	if err := checkToggle(mode); err != nil {
		return err
	}
	return d.change(func() { d.autoNewline = mode })
}

// Sets whether lines carry the [time][file][function] trace header.
func (d *Display) SetShowTrace(mode Toggle) error {
	if err := checkToggle(mode); err != nil {
		return err
	}
	return d.change(func() { d.showTrace = mode })
}

// Sets the file field of the trace header. The name must be non-empty and
// is truncated to the filename capacity.
func (d *Display) SetFilename(name string) error {
	if name == "" {
		return ErrInvalidValue
	}
	return d.change(func() { d.filename = bound(name, FILENAME_BUFFLEN-1) })
}

// read returns a snapshot taken inside the mutex domain.
func read[T any](d *Display, f func() T) T {
	acquired := d.acquire()
	defer d.release(acquired)
	return f()
}

// Current verbosity toggle.
func (d *Display) Verbose() Toggle {
	return read(d, func() Toggle { return d.verbose })
}

// Current colorfulness toggle.
func (d *Display) Colorfulness() Toggle {
	return read(d, func() Toggle { return d.colorfulness })
}

// Current auto-newline toggle.
func (d *Display) AutoNewline() Toggle {
	return read(d, func() Toggle { return d.autoNewline })
}

// Current trace header toggle.
func (d *Display) ShowTrace() Toggle {
	return read(d, func() Toggle { return d.showTrace })
}

// Current trace header file field. Empty once the Display is closed.
func (d *Display) Filename() string {
	return read(d, func() string { return d.filename })
}
