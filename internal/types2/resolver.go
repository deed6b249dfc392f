package types2

import (
	"github.com/you-not-fish/tinyc/internal/diag"
	"github.com/you-not-fish/tinyc/internal/syntax"
)

// collectSymbols is the symbol pass. It walks the tree in pre-order so
// that an assignment or read target is recorded before the statement's
// expression is visited; an identifier that has not been recorded yet
// is undeclared.
func (c *Checker) collectSymbols(file *syntax.File) {
	_ = syntax.Traverse(file, c.declare, nil)
}

// declare records the effect of n on the symbol table.
func (c *Checker) declare(n syntax.Node) error {
	switch n := n.(type) {
	case *syntax.AssignStmt:
		c.symbols.Insert(n.Name, n.Pos().Line())

	case *syntax.ReadStmt:
		c.symbols.Insert(n.Name, n.Pos().Line())

	case *syntax.Name:
		return c.resolve(n)
	}
	return nil
}

// resolve records an occurrence of name.
// Reports an error if the name has not been assigned or read before.
func (c *Checker) resolve(name *syntax.Name) error {
	if !c.symbols.Find(name.Value) {
		e := c.errorf(name.Pos(), diag.Undeclared, "undeclared identifier: %s", name.Value)
		e.Name = name.Value
		return e
	}
	c.symbols.Insert(name.Value, name.Pos().Line())
	return nil
}
