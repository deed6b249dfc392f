// Package diag defines the structured error record shared by every stage
// of the front end. Errors are values: the core never prints, and
// presentation is left to the caller.
package diag

import (
	"errors"
	"fmt"
)

// Stage identifies the front-end stage that produced an error.
type Stage int

const (
	Lexical Stage = iota
	Syntax
	Semantic
)

var stageNames = [...]string{
	Lexical:  "lexical",
	Syntax:   "syntax",
	Semantic: "semantic",
}

// String returns the stage name.
func (s Stage) String() string {
	if s >= 0 && int(s) < len(stageNames) {
		return stageNames[s]
	}
	return fmt.Sprintf("Stage(%d)", int(s))
}

// Kind classifies an error within its stage.
type Kind int

const (
	// Lexical
	BadChar             Kind = iota // character outside the token alphabet
	BadAssign                       // ':' not followed by '='
	UnterminatedComment             // end of input inside { ... }

	// Syntax
	Unexpected // lookahead does not match the grammar
	BadNumber  // integer literal does not fit in int

	// Semantic: declaration
	Undeclared // identifier used before assignment or read

	// Semantic: type
	OperandMismatch   // non-integer operand of a binary operator
	AssignMismatch    // non-integer right-hand side of :=
	ConditionMismatch // non-boolean condition of if/repeat
	WriteMismatch     // non-integer operand of write

	kindCount
)

var kindNames = [...]string{
	BadChar:             "bad-char",
	BadAssign:           "bad-assign",
	UnterminatedComment: "unterminated-comment",
	Unexpected:          "unexpected-token",
	BadNumber:           "bad-number",
	Undeclared:          "undeclared",
	OperandMismatch:     "operand-mismatch",
	AssignMismatch:      "assign-mismatch",
	ConditionMismatch:   "condition-mismatch",
	WriteMismatch:       "write-mismatch",
}

// String returns a short, stable name for the kind.
func (k Kind) String() string {
	if k >= 0 && k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Stage returns the stage a kind belongs to.
func (k Kind) Stage() Stage {
	switch {
	case k <= UnterminatedComment:
		return Lexical
	case k <= BadNumber:
		return Syntax
	default:
		return Semantic
	}
}

// Error is the single diagnostic produced by a failing run.
type Error struct {
	Stage Stage
	Kind  Kind

	File string // label of the source buffer, may be empty
	Line int    // 1-based
	Col  int    // 1-based, 0 if unknown

	Expected string // syntax errors: what the grammar required
	Found    string // syntax errors: the lexeme actually seen
	Name     string // undeclared identifier / assignment target
	Detail   string // human-readable message
}

// New returns an error of the given kind at file:line:col.
// The stage is derived from the kind.
func New(kind Kind, file string, line, col int, detail string) *Error {
	return &Error{
		Stage:  kind.Stage(),
		Kind:   kind,
		File:   file,
		Line:   line,
		Col:    col,
		Detail: detail,
	}
}

// Location returns "file:line:col", dropping the parts that are unknown.
func (e *Error) Location() string {
	loc := fmt.Sprintf("%d", e.Line)
	if e.Col > 0 {
		loc = fmt.Sprintf("%d:%d", e.Line, e.Col)
	}
	if e.File != "" {
		loc = e.File + ":" + loc
	}
	return loc
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s error: %s", e.Location(), e.Stage, e.Detail)
}

// As reports whether err (or an error it wraps) is an *Error and returns it.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
