package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/cyp0633/textcal/calendar"
	"github.com/cyp0633/textcal/command"
	"github.com/cyp0633/textcal/export"
	"github.com/cyp0633/textcal/internal/config"
	"github.com/cyp0633/textcal/internal/logging"
	"github.com/cyp0633/textcal/recurrence"
	"github.com/urfave/cli"
)

var RunCmd = cli.Command{
	Name:      "run",
	Usage:     "Runs a command file (or stdin) against an empty calendar",
	ArgsUsage: "[file]",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "ics",
			Usage: "Write the resulting events as iCalendar to this path",
		},
		&cli.StringFlag{
			Name:  "xcal",
			Usage: "Write the resulting events as xCal to this path",
		},
		&cli.BoolFlag{
			Name:  "keep-going",
			Usage: "Continue after a rejected command",
		},
	},
	Action: runCommands,
}

var ParseCmd = cli.Command{
	Name:      "parse",
	Usage:     "Prints the command type and fields of one line",
	ArgsUsage: "<line...>",
	Action: func(c *cli.Context) error {
		cmd := command.Parse(strings.Join(c.Args(), " "))
		fmt.Fprintf(c.App.Writer, "%d %s %q\n", cmd.Type, cmd.Type, cmd.Fields)
		return nil
	},
}

func runCommands(c *cli.Context) error {
	cfg, err := config.Load(c.GlobalString("config"))
	if err != nil {
		return fmt.Errorf("unable to load config: %w", err)
	}
	logger := logging.New(cfg.LogLevel, os.Stderr)

	store, err := newStore(cfg, logger)
	if err != nil {
		return err
	}

	in := io.Reader(os.Stdin)
	if path := c.Args().First(); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("unable to open command file: %w", err)
		}
		defer f.Close()
		in = f
	}

	if err := runScript(store, in, c.App.Writer, c.Bool("keep-going"), logger); err != nil {
		return err
	}

	opts := export.Options{ProductID: cfg.ProductID}
	if path := c.String("ics"); path != "" {
		if err := writeFile(path, func(w io.Writer) error { return export.WriteICS(w, store.Events(), opts) }); err != nil {
			return err
		}
	}
	if path := c.String("xcal"); path != "" {
		if err := writeFile(path, func(w io.Writer) error { return export.WriteXCal(w, store.Events(), opts) }); err != nil {
			return err
		}
	}
	return nil
}

func newStore(cfg *config.Config, logger *slog.Logger) (*calendar.Store, error) {
	window, err := cfg.AllDayWindow()
	if err != nil {
		return nil, err
	}
	engine := recurrence.NewEngineWithOptions(recurrence.ExpansionOptions{MaxOccurrences: cfg.MaxOccurrences})
	return calendar.New(
		calendar.WithLogger(logger),
		calendar.WithEngine(engine),
		calendar.WithAllDayWindow(window),
	), nil
}

// runScript applies every line of in to store, printing query results to out.
// Blank lines and lines starting with '#' are skipped. It stops at "exit" and,
// unless keepGoing is set, at the first rejected command.
func runScript(store *calendar.Store, in io.Reader, out io.Writer, keepGoing bool, logger *slog.Logger) error {
	sc := bufio.NewScanner(in)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		res, err := store.Apply(command.Parse(line))
		if err != nil {
			logger.Warn("command rejected",
				"line", n,
				"input", line,
				"error", err)
			if keepGoing {
				continue
			}
			return fmt.Errorf("line %d: %w", n, err)
		}
		logger.Debug("command applied",
			"line", n,
			"type", res.Command.Type.String(),
			"events", len(res.Events))

		if res.Exit {
			return nil
		}
		printResult(out, res)
	}
	return sc.Err()
}

func printResult(out io.Writer, res calendar.Result) {
	switch res.Command.Type {
	case command.TypeList, command.TypePrintOn, command.TypePrintBetween:
		if len(res.Events) == 0 {
			fmt.Fprintln(out, "nothing found")
		}
		for _, e := range res.Events {
			fmt.Fprintf(out, "- %s\n", e)
		}
	case command.TypeShowStatus:
		if res.Busy {
			fmt.Fprintln(out, "busy")
		} else {
			fmt.Fprintln(out, "available")
		}
	}
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
