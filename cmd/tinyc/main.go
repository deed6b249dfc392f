// Package main implements the tinyc driver: it loads a TINY source file,
// runs the front end and reports the result.
package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/urfave/cli/v2"
)

// Version information
const Version = "0.1.0"

func main() {
	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newApp builds the command tree writing to stdout and stderr.
func newApp(stdout, stderr io.Writer) *cli.App {
	d := &driver{stdout: stdout, stderr: stderr}

	inputFlag := &cli.StringFlag{
		Name:    "input-str",
		Aliases: []string{"s"},
		Usage:   "Compile a string instead of a file",
	}
	formatFlag := &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "AST output format: text, json or yaml",
	}

	return &cli.App{
		Name:                   "tinyc",
		Usage:                  "Front end for the TINY language",
		Version:                fmt.Sprintf("%s (%s)", Version, runtime.Version()),
		Writer:                 stdout,
		ErrWriter:              stderr,
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Load configuration from `FILE` (default: tinyc.yaml, tinyc.yml or tinyc.toml in the working directory)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level: debug, info, warn or error",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "Log format: text or json",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable colored output",
			},
		},
		Before: d.setup,
		Commands: []*cli.Command{
			{
				Name:      "tokens",
				Usage:     "Print the token stream of a TINY file",
				ArgsUsage: "<file.tny>",
				Flags:     []cli.Flag{inputFlag},
				Action:    d.tokens,
			},
			{
				Name:      "parse",
				Usage:     "Parse a TINY file and print its syntax tree",
				ArgsUsage: "<file.tny>",
				Flags:     []cli.Flag{inputFlag, formatFlag},
				Action:    d.parse,
			},
			{
				Name:      "check",
				Usage:     "Parse and analyze a TINY file",
				ArgsUsage: "<file.tny>",
				Flags: []cli.Flag{
					inputFlag,
					formatFlag,
					&cli.BoolFlag{
						Name:  "symbols",
						Usage: "Print the symbol table",
					},
					&cli.BoolFlag{
						Name:  "ast",
						Usage: "Print the typed syntax tree",
					},
				},
				Action: d.check,
			},
		},
	}
}
