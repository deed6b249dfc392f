package types2

import (
	"github.com/you-not-fish/tinyc/internal/diag"
	"github.com/you-not-fish/tinyc/internal/syntax"
	"github.com/you-not-fish/tinyc/internal/types"
)

// checkTypes is the type pass. It walks the tree in post-order so every
// child is typed before its parent looks at it.
func (c *Checker) checkTypes(file *syntax.File) {
	_ = syntax.Traverse(file, nil, c.check)
}

// check dispatches on the node kind.
func (c *Checker) check(n syntax.Node) error {
	switch n := n.(type) {
	case syntax.Expr:
		return c.expr(n)
	case syntax.Stmt:
		return c.stmt(n)
	}
	return nil
}

// stmt checks a single statement whose expressions are already typed.
func (c *Checker) stmt(s syntax.Stmt) error {
	switch s := s.(type) {
	case *syntax.AssignStmt:
		return c.assignStmt(s)

	case *syntax.IfStmt:
		return c.condition(s.Cond, "if")

	case *syntax.RepeatStmt:
		return c.condition(s.Cond, "repeat")

	case *syntax.WriteStmt:
		return c.writeStmt(s)

	case *syntax.ReadStmt:
		// Nothing to check
	}
	return nil
}

// assignStmt checks that the assigned value is an integer.
func (c *Checker) assignStmt(s *syntax.AssignStmt) error {
	if typ := s.X.Type(); !types.IsInteger(typ) {
		e := c.errorf(s.X.Pos(), diag.AssignMismatch,
			"cannot assign %s value to %s (integer required)", typ, s.Name)
		e.Name = s.Name
		return e
	}
	return nil
}

// condition checks the condition of an if or repeat statement.
func (c *Checker) condition(cond syntax.Expr, stmt string) error {
	if typ := cond.Type(); !types.IsBoolean(typ) {
		return c.errorf(cond.Pos(), diag.ConditionMismatch,
			"non-boolean condition in %s statement (%s)", stmt, typ)
	}
	return nil
}

// writeStmt checks that the written value is an integer.
func (c *Checker) writeStmt(s *syntax.WriteStmt) error {
	if typ := s.X.Type(); !types.IsInteger(typ) {
		return c.errorf(s.X.Pos(), diag.WriteMismatch,
			"cannot write %s value (integer required)", typ)
	}
	return nil
}
