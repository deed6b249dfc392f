package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/you-not-fish/tinyc/internal/config"
	"github.com/you-not-fish/tinyc/internal/diag"
	"github.com/you-not-fish/tinyc/internal/frontend"
	"github.com/you-not-fish/tinyc/internal/syntax"
)

// driver holds the state shared by all commands.
type driver struct {
	stdout io.Writer
	stderr io.Writer

	cfg *config.Config
	log *slog.Logger
}

// setup loads the configuration, applies flag overrides and builds
// the logger. It runs before any command.
func (d *driver) setup(c *cli.Context) error {
	cfg, err := loadConfig(c.String("config"))
	if err != nil {
		return cli.Exit(color.RedString("error: %s", err), 1)
	}

	if c.IsSet("log-level") {
		cfg.Log.Level = c.String("log-level")
	}
	if c.IsSet("log-format") {
		cfg.Log.Format = c.String("log-format")
	}
	if c.Bool("no-color") {
		no := false
		cfg.Output.Color = &no
	}
	if err := cfg.Validate(); err != nil {
		return cli.Exit(color.RedString("error: %s", err), 1)
	}

	if cfg.Output.Color != nil {
		color.NoColor = !*cfg.Output.Color
	}

	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	var h slog.Handler
	if cfg.Log.Format == "json" {
		h = slog.NewJSONHandler(d.stderr, opts)
	} else {
		h = slog.NewTextHandler(d.stderr, opts)
	}

	d.cfg = cfg
	d.log = slog.New(h)
	return nil
}

// loadConfig loads path, or the configuration file found in the working
// directory when path is empty. No file at all means the defaults.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	found, err := config.Find(".")
	if errors.Is(err, config.ErrNotFound) {
		return config.Default(), nil
	}
	if err != nil {
		return nil, err
	}
	return config.Load(found)
}

// input returns the label and contents of the source to compile.
func (d *driver) input(c *cli.Context) (string, []byte, error) {
	if c.IsSet("input-str") {
		return "<string>", []byte(c.String("input-str")), nil
	}
	filename := c.Args().First()
	if filename == "" {
		return "", nil, cli.Exit(color.RedString("error: no input file"), 1)
	}
	src, err := os.ReadFile(filename)
	if err != nil {
		return "", nil, cli.Exit(color.RedString("error: %s", err), 1)
	}
	return filename, src, nil
}

// format returns the AST output format for c.
func (d *driver) format(c *cli.Context) (string, error) {
	f := d.cfg.Output.Format
	if c.IsSet("format") {
		f = c.String("format")
	}
	switch f {
	case "text", "json", "yaml":
		return f, nil
	}
	return "", cli.Exit(color.RedString("error: unknown format %q", f), 1)
}

// tokens prints every token with its position.
func (d *driver) tokens(c *cli.Context) error {
	filename, src, err := d.input(c)
	if err != nil {
		return err
	}

	bad := 0
	fmt.Fprintf(d.stdout, "%-20s %-8s %s\n", "POSITION", "TOKEN", "LEXEME")
	for _, tok := range frontend.Scan(filename, src) {
		kind := tok.Kind.String()
		if tok.Kind.IsError() {
			bad++
			kind = color.RedString("%-8s", kind)
		} else {
			kind = fmt.Sprintf("%-8s", kind)
		}
		fmt.Fprintf(d.stdout, "%-20s %s %q\n", tok.Pos, kind, tok.Lit)
	}

	d.log.Debug("scanned", slog.String("file", filename), slog.Int("errors", bad))
	if bad > 0 {
		return cli.Exit("", 1)
	}
	return nil
}

// parse prints the syntax tree of the input.
func (d *driver) parse(c *cli.Context) error {
	format, err := d.format(c)
	if err != nil {
		return err
	}
	filename, src, err := d.input(c)
	if err != nil {
		return err
	}

	file, err := syntax.Parse(filename, src)
	defer file.Release()
	if err != nil {
		return d.fail(err)
	}
	return d.printTree(file, format)
}

// check parses and analyzes the input.
func (d *driver) check(c *cli.Context) error {
	format, err := d.format(c)
	if err != nil {
		return err
	}
	filename, src, err := d.input(c)
	if err != nil {
		return err
	}

	res, err := frontend.Compile(filename, src, frontend.Options{Logger: d.log})
	if err != nil {
		return d.fail(err)
	}
	defer res.Release()

	if c.Bool("ast") {
		if err := d.printTree(res.File, format); err != nil {
			return err
		}
	}
	if c.Bool("symbols") || d.cfg.Output.Symbols {
		fmt.Fprint(d.stdout, res.Symbols)
	}
	fmt.Fprintf(d.stderr, "%s: %s\n", filename, color.GreenString("ok"))
	return nil
}

func (d *driver) printTree(file *syntax.File, format string) error {
	var err error
	switch format {
	case "json":
		err = syntax.FprintJSON(d.stdout, file)
	case "yaml":
		err = syntax.FprintYAML(d.stdout, file)
	default:
		syntax.Fprint(d.stdout, file)
	}
	if err != nil {
		return cli.Exit(color.RedString("error: encoding AST: %s", err), 1)
	}
	return nil
}

// fail reports err and returns the exit error for it.
func (d *driver) fail(err error) error {
	e, ok := diag.As(err)
	if !ok {
		return cli.Exit(color.RedString("error: %s", err), 1)
	}
	printDiag(d.stderr, e)
	return cli.Exit("", 1)
}

// printDiag writes e as "location: stage error: detail".
func printDiag(w io.Writer, e *diag.Error) {
	bold := color.New(color.Bold)
	red := color.New(color.FgRed, color.Bold)
	fmt.Fprintf(w, "%s: %s %s\n", bold.Sprint(e.Location()), red.Sprintf("%s error:", e.Stage), e.Detail)
}
