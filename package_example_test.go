package display_test

import (
	"bytes"
	"fmt"
	"log"
	"os"

	"github.com/tracekit/display"
)

// quiet makes output reproducible: no timestamped header, no
// colorization, every category routed to stdout.
func quiet(d *display.Display) {
	d.SetShowTrace(display.DISABLE)
	d.SetColorfulness(display.DISABLE)
	d.SetStream(display.WARNING, os.Stdout)
	d.SetStream(display.ERROR, os.Stdout)
}

func Example() {
	d := display.Init(os.Args[1:])
	defer d.Close()
	quiet(d)

	d.Print("main", "Hello, %s!", "World")
	d.PrintWarning("main", "disk usage at %d%%", 87)
	d.PrintError("main", "connection %s", "refused")
	// Output:
	// Hello, World!
	// [WARNING] disk usage at 87%
	// [ERROR] connection refused
}

func ExampleInit() {
	d := display.Init([]string{"--silent"})
	defer d.Close()
	quiet(d)

	d.Print("main", "progress hidden")
	d.PrintError("main", "errors always print")
	// Output:
	// [ERROR] errors always print
}

func ExampleDisplay_Lock() {
	d := display.Init(nil)
	defer d.Close()
	quiet(d)

	// compose one line from several prints without another goroutine
	// squeezing its output in between
	d.Lock()
	d.SetAutoNewline(display.DISABLE)
	d.Print("worker", "progress:")
	for _, pct := range []int{25, 50, 75, 100} {
		d.Print("worker", " %d%%", pct)
	}
	d.SetAutoNewline(display.ENABLE)
	d.Print("worker", " done")
	d.Unlock()
	// Output:
	// progress: 25% 50% 75% 100% done
}

func ExampleDisplay_PrintTo() {
	d := display.Init(nil)
	defer d.Close()
	quiet(d)

	var report bytes.Buffer
	d.PrintTo(&report, "export", "%d rows exported", 42)
	fmt.Print(report.String())
	// Output:
	// 42 rows exported
}

func ExampleDisplay_Writer() {
	d := display.Init(nil)
	defer d.Close()
	quiet(d)
	// the log package terminates its own lines
	d.SetAutoNewline(display.DISABLE)

	logger := log.New(d.Writer(display.WARNING, "stdlog"), "", 0)
	logger.Print("routed through the facility")
	// Output:
	// [WARNING] routed through the facility
}

func ExampleCaller() {
	fmt.Println(display.Caller())
	// Output:
	// ExampleCaller
}
