package syntax

import "math"

// eof is returned by readch past the end of the buffer.
const eof = -1

// noLine marks that no further line boundary exists in the buffer.
const noLine = math.MaxInt

// source is a byte reader over an in-memory buffer with one character of
// pushback and lazy line tracking.
//
// Line tracking keeps the start of the current line and the offset where
// the next line starts. When the read cursor reaches that offset the next
// boundary is located by scanning forward; \n, \r and \r\n all end a line.
// The start of the previous line is remembered so that pushing back one
// character across a boundary returns to the previous line.
type source struct {
	buf      []byte
	filename string

	// offs is the offset of the next character to read. It may run one
	// past len(buf) after reading eof; unread always undoes the last read.
	offs int

	line      int // 1-based line containing offs
	lineStart int // offset of the first character of line
	nextLine  int // offset where line+1 starts, or noLine
	prevStart int // lineStart of line-1
}

// reset points the source at the start of a fresh buffer.
func (s *source) reset(filename string, buf []byte) {
	s.buf = buf
	s.filename = filename
	s.offs = 0
	s.line = 1
	s.lineStart = 0
	s.prevStart = 0
	s.nextLine = s.findNextLine(0)
}

// readch returns the next character and advances the cursor.
// Past the end of the buffer it returns eof.
func (s *source) readch() rune {
	ch := rune(eof)
	if s.offs < len(s.buf) {
		ch = rune(s.buf[s.offs])
	}
	s.offs++
	if s.offs >= s.nextLine {
		s.prevStart = s.lineStart
		s.lineStart = s.nextLine
		s.nextLine = s.findNextLine(s.lineStart)
		s.line++
	}
	return ch
}

// unread pushes back the character returned by the last readch.
func (s *source) unread() {
	s.offs--
	if s.offs < s.lineStart {
		s.nextLine = s.lineStart
		s.lineStart = s.prevStart
		s.line--
	}
}

// findNextLine returns the offset just past the first line terminator
// at or after from, or noLine.
func (s *source) findNextLine(from int) int {
	for i := from; i < len(s.buf); i++ {
		switch s.buf[i] {
		case '\n':
			return i + 1
		case '\r':
			if i+1 < len(s.buf) && s.buf[i+1] == '\n' {
				return i + 2
			}
			return i + 1
		}
	}
	return noLine
}

// pos returns the position of the next character to read.
func (s *source) pos() Pos {
	return NewPos(s.filename, s.line, s.offs-s.lineStart+1)
}

// Character classification helpers

// isLetter reports whether r is an ASCII letter.
func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}

// isDigit reports whether r is a decimal digit (0-9).
func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isWhitespace reports whether r separates tokens. Line terminators are
// whitespace: TINY has no newline-sensitive syntax.
func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
