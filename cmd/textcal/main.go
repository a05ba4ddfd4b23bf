package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
)

var version = "(unknown)"

func main() {
	var err error

	app := cli.App{
		Name:    "textcal",
		Usage:   "Apply line commands to an in-memory calendar",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "Path to the YAML configuration file",
			},
		},
		Commands: []cli.Command{
			RunCmd,
			ParseCmd,
		},
	}

	err = app.Run(os.Args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
