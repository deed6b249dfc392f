package types2

import (
	"context"
	"log/slog"
	"time"

	"github.com/you-not-fish/tinyc/internal/diag"
	"github.com/you-not-fish/tinyc/internal/symtab"
	"github.com/you-not-fish/tinyc/internal/syntax"
	"github.com/you-not-fish/tinyc/internal/types"
)

// Checker is the analyzer state for one file.
type Checker struct {
	conf *Config
	info *Info

	filename string
	symbols  *symtab.Table

	// Error tracking
	first *diag.Error // first error; checking stops once set
}

// checkFile runs both passes over file.
func (c *Checker) checkFile(file *syntax.File) {
	c.filename = file.Pos().Filename()

	// Pass 1: collect symbols
	start := time.Now()
	c.collectSymbols(file)
	c.logPass("symbols", start, slog.Int("symbols", c.symbols.Len()))
	if c.first != nil {
		return
	}

	// Pass 2: check types
	start = time.Now()
	c.checkTypes(file)
	c.logPass("types", start)
}

// logPass emits a debug record for a finished pass.
func (c *Checker) logPass(pass string, start time.Time, attrs ...slog.Attr) {
	if c.conf.Logger == nil {
		return
	}
	attrs = append(attrs,
		slog.String("pass", pass),
		slog.Bool("ok", c.first == nil),
		slog.Duration("elapsed", time.Since(start)),
	)
	c.conf.Logger.LogAttrs(context.Background(), slog.LevelDebug, "analysis pass done", attrs...)
}

// record sets the type of e and records it in Info.Types.
func (c *Checker) record(e syntax.Expr, typ types.Type) {
	e.SetType(typ)
	if c.info.Types != nil {
		c.info.Types[e] = typ
	}
}
