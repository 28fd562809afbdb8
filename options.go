package display

/*
Declarative options layer. An Options value describes a configuration
delta: nil fields leave the current setting untouched, set fields are
validated and applied as one unit so concurrent prints observe either the
old or the new configuration, never a mixture.

Options load from TOML files:

	verbose = false
	auto_newline = true
	filename = "worker"

	[streams]
	standard = "stdout"
	warning = "stderr"
	error = "discard"
*/

import (
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	// report violations under the toml field names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// StreamOptions names destinations for the registry-backed categories.
type StreamOptions struct {
	Standard *string `toml:"standard" validate:"omitnil,oneof=stdout stderr discard"`
	Warning  *string `toml:"warning" validate:"omitnil,oneof=stdout stderr discard"`
	Error    *string `toml:"error" validate:"omitnil,oneof=stdout stderr discard"`
}

// Options is a configuration delta for a Display. Every field is optional;
// nil keeps the current setting.
type Options struct {
	Verbose      *bool          `toml:"verbose"`
	Colorfulness *bool          `toml:"colorfulness"`
	AutoNewline  *bool          `toml:"auto_newline"`
	ShowTrace    *bool          `toml:"show_trace"`
	Filename     *string        `toml:"filename" validate:"omitnil,min=1,max=31"`
	Streams      *StreamOptions `toml:"streams"`
}

// Validate checks the options against their field constraints.
func (o *Options) Validate() error {
	if err := validate.Struct(o); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	return nil
}

// LoadOptions reads and validates a TOML options file.
func LoadOptions(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read options file: %w", err)
	}
	var opts Options
	if err := toml.Unmarshal(data, &opts); err != nil {
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			row, col := decodeErr.Position()
			return nil, fmt.Errorf("failed to parse options file at row %d column %d: %w", row, col, err)
		}
		return nil, fmt.Errorf("failed to parse options file: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &opts, nil
}

// Apply validates opts and folds the set fields into the configuration as
// one unit inside the mutex domain.
func (d *Display) Apply(opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	acquired := d.acquire()
	defer d.release(acquired)
	if !d.ready() {
		return ErrNotInitialized
	}
	if opts.Verbose != nil {
		d.verbose = toggleOf(*opts.Verbose)
	}
	if opts.Colorfulness != nil {
		d.colorfulness = toggleOf(*opts.Colorfulness)
	}
	if opts.AutoNewline != nil {
		d.autoNewline = toggleOf(*opts.AutoNewline)
	}
	if opts.ShowTrace != nil {
		d.showTrace = toggleOf(*opts.ShowTrace)
	}
	if opts.Filename != nil {
		d.filename = bound(*opts.Filename, FILENAME_BUFFLEN-1)
	}
	if opts.Streams != nil {
		if s := opts.Streams.Standard; s != nil {
			d.streams[STANDARD] = namedStream(*s)
		}
		if s := opts.Streams.Warning; s != nil {
			d.streams[WARNING] = namedStream(*s)
		}
		if s := opts.Streams.Error; s != nil {
			d.streams[ERROR] = namedStream(*s)
		}
	}
	return nil
}

// toggleOf maps a boolean onto the Toggle domain.
func toggleOf(b bool) Toggle {
	if b {
		return ENABLE
	}
	return DISABLE
}

// namedStream resolves one of the validated stream names.
func namedStream(name string) io.Writer {
	switch name {
	case "stdout":
		return os.Stdout
	case "stderr":
		return os.Stderr
	}
	return io.Discard
}
