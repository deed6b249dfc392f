// Package frontend runs the TINY front end over one source buffer:
// parse, then analyze. It is the single entry point used by the driver.
package frontend

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/you-not-fish/tinyc/internal/diag"
	"github.com/you-not-fish/tinyc/internal/symtab"
	"github.com/you-not-fish/tinyc/internal/syntax"
	"github.com/you-not-fish/tinyc/internal/types2"
)

// Options configures a compilation.
type Options struct {
	// Logger receives stage records. If nil, nothing is logged.
	Logger *slog.Logger
}

// Result is the output of a successful compilation.
type Result struct {
	File    *syntax.File  // validated tree, every expression typed
	Symbols *symtab.Table // identifier occurrences
}

// Release frees the tree. It is safe to call more than once.
func (r *Result) Release() {
	if r != nil && r.File != nil {
		r.File.Release()
	}
}

// Compile parses and analyzes src. The filename only labels diagnostics.
//
// On failure it returns the first error, a *diag.Error, and no result;
// a syntax error skips analysis, and the partial tree is released.
func Compile(filename string, src []byte, opts Options) (*Result, error) {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	log = log.With(slog.String("file", filename))

	start := time.Now()
	file, err := syntax.Parse(filename, src)
	log.LogAttrs(context.Background(), slog.LevelDebug, "stage done",
		slog.String("stage", "parse"),
		slog.Int("bytes", len(src)),
		slog.Int("nodes", file.NumNodes()),
		slog.Duration("elapsed", time.Since(start)),
	)
	if err != nil {
		file.Release()
		logFailure(log, err)
		return nil, err
	}

	start = time.Now()
	info := &types2.Info{Symbols: symtab.New()}
	err = types2.Check(file, &types2.Config{Logger: log}, info)
	log.LogAttrs(context.Background(), slog.LevelDebug, "stage done",
		slog.String("stage", "analyze"),
		slog.Int("symbols", info.Symbols.Len()),
		slog.Duration("elapsed", time.Since(start)),
	)
	if err != nil {
		file.Release()
		logFailure(log, err)
		return nil, err
	}

	log.Info("compiled", slog.Int("nodes", file.NumNodes()), slog.Int("symbols", info.Symbols.Len()))
	return &Result{File: file, Symbols: info.Symbols}, nil
}

// CompileFile reads path fully into memory and compiles it.
func CompileFile(path string, opts Options) (*Result, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("frontend: read %s: %w", path, err)
	}
	return Compile(path, src, opts)
}

func logFailure(log *slog.Logger, err error) {
	if e, ok := diag.As(err); ok {
		log.Warn("compile failed",
			slog.String("stage", e.Stage.String()),
			slog.String("kind", e.Kind.String()),
			slog.Int("line", e.Line),
		)
		return
	}
	log.Warn("compile failed", slog.Any("err", err))
}
