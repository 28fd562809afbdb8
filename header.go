package display

import (
	"path/filepath"
	"runtime"
	"strings"
)

// Caller returns the bare name of the calling function for use as the
// function field of a trace header:
//
//	d.Print(display.Caller(), "checkpoint reached")
//
// Resolution costs a stack lookup per call; hot paths may prefer a literal.
func Caller() string {
	pc, _, _, ok := runtime.Caller(1)
	if !ok {
		return DEFAULT_FILENAME
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return DEFAULT_FILENAME
	}
	name := fn.Name()
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// callerBase resolves the base name of the source file skip+1 frames up,
// bounded to the filename capacity. DEFAULT_FILENAME when unresolvable.
func callerBase(skip int) string {
	_, file, _, ok := runtime.Caller(skip + 1)
	if !ok {
		return DEFAULT_FILENAME
	}
	return bound(filepath.Base(file), FILENAME_BUFFLEN-1)
}
