package types2

import (
	"github.com/you-not-fish/tinyc/internal/syntax"
	"github.com/you-not-fish/tinyc/internal/types"
)

// expr types e. Operands of an operation are typed before the operation.
func (c *Checker) expr(e syntax.Expr) error {
	switch e := e.(type) {
	case *syntax.BasicLit:
		c.record(e, types.Int)

	case *syntax.Name:
		// Every variable holds an integer.
		c.record(e, types.Int)

	case *syntax.Operation:
		return c.binary(e)
	}
	return nil
}

// binary checks that both operands of e are integers and types e.
func (c *Checker) binary(e *syntax.Operation) error {
	for _, x := range [...]syntax.Expr{e.X, e.Y} {
		if typ := x.Type(); !types.IsInteger(typ) {
			return c.invalidOp(x, "operand %s of %s is %s, not integer",
				syntax.ExprString(x), e.Op, typ)
		}
	}

	if e.Op.IsComparison() {
		c.record(e, types.Bool)
	} else {
		c.record(e, types.Int)
	}
	return nil
}
