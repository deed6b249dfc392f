// Package types implements the type tags inferred for TINY expressions.
// This package has no AST dependencies.
package types

import "fmt"

// Type is the inferred value category of an expression.
// The zero value, Invalid, marks an expression that has not been checked.
type Type int

const (
	Invalid Type = iota // unresolved
	Int
	Bool

	typeCount
)

var typeNames = [...]string{
	Invalid: "invalid",
	Int:     "integer",
	Bool:    "boolean",
}

// String returns the name of the type.
func (t Type) String() string {
	if t >= 0 && t < typeCount {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", int(t))
}
