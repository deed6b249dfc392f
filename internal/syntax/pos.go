package syntax

import "fmt"

// Pos represents a position in a source buffer.
// The zero value is an invalid position.
type Pos struct {
	filename string // label of the source buffer, may be empty
	line     int    // 1-based line number
	col      int    // 1-based column number (byte offset in line)
}

// NewPos creates a new Pos with the given label, line, and column.
func NewPos(filename string, line, col int) Pos {
	return Pos{filename: filename, line: line, col: col}
}

// String returns the position as "filename:line:col",
// or "line:col" if the buffer has no label.
func (p Pos) String() string {
	if p.filename != "" {
		return fmt.Sprintf("%s:%d:%d", p.filename, p.line, p.col)
	}
	return fmt.Sprintf("%d:%d", p.line, p.col)
}

// IsValid reports whether the position is valid (line > 0).
func (p Pos) IsValid() bool {
	return p.line > 0
}

// Line returns the 1-based line number.
func (p Pos) Line() int { return p.line }

// Col returns the 1-based column number.
func (p Pos) Col() int { return p.col }

// Filename returns the label of the source buffer.
func (p Pos) Filename() string { return p.filename }
