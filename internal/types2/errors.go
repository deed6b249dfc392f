// Package types2 implements semantic analysis for the TINY language:
// a symbol pass that records identifier occurrences, followed by a type
// pass that annotates expressions and checks them against the type rules.
package types2

import (
	"fmt"

	"github.com/you-not-fish/tinyc/internal/diag"
	"github.com/you-not-fish/tinyc/internal/syntax"
)

// errorf records an error of the given kind at pos and returns it.
// Only the first error is kept; it is returned to stop the traversal.
func (c *Checker) errorf(pos syntax.Pos, kind diag.Kind, format string, args ...interface{}) *diag.Error {
	e := diag.New(kind, c.filename, pos.Line(), pos.Col(), fmt.Sprintf(format, args...))
	if c.first == nil {
		c.first = e
	}
	return e
}

// invalidOp reports an operand mismatch of an operation.
func (c *Checker) invalidOp(x syntax.Expr, format string, args ...interface{}) *diag.Error {
	return c.errorf(x.Pos(), diag.OperandMismatch, "invalid operation: "+format, args...)
}
