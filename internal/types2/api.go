package types2

import (
	"log/slog"

	"github.com/you-not-fish/tinyc/internal/symtab"
	"github.com/you-not-fish/tinyc/internal/syntax"
	"github.com/you-not-fish/tinyc/internal/types"
)

// Config specifies the configuration for checking.
type Config struct {
	// Logger receives one debug record per pass.
	// If nil, nothing is logged.
	Logger *slog.Logger
}

// Info holds the results of checking.
type Info struct {
	// Symbols receives every identifier occurrence found by the symbol
	// pass. If nil, Check allocates a fresh table.
	Symbols *symtab.Table

	// Types maps expressions to their inferred type.
	// If nil, types are only recorded on the nodes themselves.
	Types map[syntax.Expr]types.Type
}

// TypeOf returns the recorded type of e, or types.Invalid.
func (info *Info) TypeOf(e syntax.Expr) types.Type {
	if info == nil || info.Types == nil {
		return types.Invalid
	}
	return info.Types[e]
}

// Check analyzes a parsed file in two passes: the symbol pass builds the
// symbol table and rejects undeclared identifiers, then the type pass
// annotates every expression with its type and rejects mismatches. The
// second pass runs only if the first succeeded.
//
// It returns the first error encountered as a *diag.Error, or nil.
// The file must be a complete tree as returned by a successful parse.
func Check(file *syntax.File, conf *Config, info *Info) error {
	if conf == nil {
		conf = &Config{}
	}
	if info == nil {
		info = &Info{}
	}
	if info.Symbols == nil {
		info.Symbols = symtab.New()
	}

	c := &Checker{
		conf:    conf,
		info:    info,
		symbols: info.Symbols,
	}

	c.checkFile(file)

	if c.first != nil {
		return c.first
	}
	return nil
}
