// Command display-demo walks through the display facility: standard,
// warning and error prints, styling, header toggles, grouped output under
// an advisory lock, custom destinations and options files.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/tracekit/display"
)

var version = "dev"

func main() {
	cmd := &cli.Command{
		Name:    "display-demo",
		Usage:   "Showcase of the display tracing facility",
		Version: version,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "silent",
				Aliases: []string{"s"},
				Usage:   "disable standard prints",
			},
			&cli.BoolFlag{
				Name:    "no-color",
				Aliases: []string{"n"},
				Usage:   "disable ANSI styling",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "TOML options file to apply",
			},
			&cli.BoolFlag{
				Name:  "watch",
				Usage: "keep running and re-apply the options file on change",
			},
			&cli.StringFlag{
				Name:  "out",
				Usage: "file for the custom destination part of the demo",
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, c *cli.Command) error {
	// Init recognizes the same --silent/--no-color switches the command
	// declares above and ignores everything else on the line.
	d := display.Init(os.Args[1:])
	defer d.Close()

	if path := c.String("config"); path != "" {
		opts, err := display.LoadOptions(path)
		if err != nil {
			return err
		}
		if err := d.Apply(*opts); err != nil {
			return err
		}
	}

	d.Print("run", "display-demo %s starting", version)
	d.PrintStyled("run", display.GREEN, "a green line")
	d.PrintStyled("run", display.BOLD+display.CYAN, "a bold cyan line")
	d.PrintStyled("run", display.UNDERLINE, "an underlined line")
	d.PrintWarning("run", "disk usage at %d%%", 87)
	d.PrintError("run", "connection to %s refused", "db01")

	grouped(d)
	bareLines(d)
	stdlibLog(d)

	if path := c.String("out"); path != "" {
		if err := customDestination(d, path); err != nil {
			return err
		}
	}

	if c.Bool("watch") && c.String("config") != "" {
		return watchOptions(ctx, d, c.String("config"))
	}
	return nil
}

// grouped composes one progress line from several prints inside an
// advisory bracket so concurrent output cannot tear it apart.
func grouped(d *display.Display) {
	d.Lock()
	defer d.Unlock()
	d.SetAutoNewline(display.DISABLE)
	d.Print("grouped", "progress: ")
	for pct := 25; pct <= 100; pct += 25 {
		d.Print("grouped", "%d%% ", pct)
	}
	d.SetAutoNewline(display.ENABLE)
	d.Print("grouped", "done")
}

// bareLines shows output with the trace header suppressed.
func bareLines(d *display.Display) {
	d.SetShowTrace(display.DISABLE)
	d.Print("bareLines", "a line without its trace header")
	d.PrintWarning("bareLines", "warnings keep their tag regardless")
	d.SetShowTrace(display.ENABLE)
}

// stdlibLog routes the standard library logger through the facility.
func stdlibLog(d *display.Display) {
	// the log package terminates its own lines
	d.SetAutoNewline(display.DISABLE)
	defer d.SetAutoNewline(display.ENABLE)
	lg := log.New(d.Writer(display.STANDARD, "stdlog"), "", 0)
	lg.Print("emitted via the stdlib log package")
}

// customDestination writes framed lines into an explicit file and then
// rebinds the WARNING stream to it.
func customDestination(d *display.Display, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	d.PrintTo(f, "customDestination", "a line for %s only", path)

	if err := d.SetStream(display.WARNING, f); err != nil {
		return err
	}
	d.PrintWarning("customDestination", "this warning lands in %s", path)
	if err := d.SetStream(display.WARNING, os.Stderr); err != nil {
		return err
	}
	d.Print("customDestination", "wrote custom output to %s", path)
	return nil
}

// watchOptions re-applies the options file on change until interrupted.
func watchOptions(ctx context.Context, d *display.Display, path string) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := d.Watch(ctx, path); err != nil {
		return err
	}
	d.Print("watchOptions", "watching %s, Ctrl-C to stop", path)
	<-ctx.Done()
	return nil
}
